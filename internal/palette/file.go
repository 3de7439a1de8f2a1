package palette

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nodewire/nodewire/core/editor"
)

// File is the on-disk palette format:
//
//	kinds:
//	  - label: Sine
//	    category: Math
//	    inputs:
//	      - name: x
//	        type: scalar
//	        default: 0
//	    outputs:
//	      - name: out
//	        type: scalar
type File struct {
	Kinds []Kind `yaml:"kinds"`
}

// Load parses a palette file into a kind catalog.
func Load(r io.Reader) (editor.Kinds, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	ks := make(editor.Kinds, 0, len(f.Kinds))
	for i, k := range f.Kinds {
		if k.Name == "" {
			return nil, fmt.Errorf("palette: kind %d: missing label", i)
		}
		if k.Group == "" {
			k.Group = "User"
		}
		for _, p := range k.Inputs {
			if err := p.validate(k.Name); err != nil {
				return nil, err
			}
		}
		for _, p := range k.Outputs {
			if err := p.validate(k.Name); err != nil {
				return nil, err
			}
		}
		ks = append(ks, k)
	}
	return ks, nil
}

// LoadFile reads a palette from disk.
func LoadFile(path string) (editor.Kinds, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (p Port) validate(kind string) error {
	if p.Name == "" {
		return fmt.Errorf("palette: kind %q: port missing name", kind)
	}
	if _, ok := typeByName[p.Type]; !ok {
		return fmt.Errorf("palette: kind %q: port %q: unknown type %q", kind, p.Name, p.Type)
	}
	switch p.Mode {
	case "", "constant", "connection":
	default:
		return fmt.Errorf("palette: kind %q: port %q: unknown mode %q", kind, p.Name, p.Mode)
	}
	return nil
}
