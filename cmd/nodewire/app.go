package main

import (
	"fmt"

	"github.com/nodewire/nodewire/core/editor"
	"github.com/nodewire/nodewire/internal/palette"
)

// catalog builds the creation-menu kind list: the built-in kinds, plus any
// user palette loaded from a YAML file.
func catalog(path string) (editor.Kinds, error) {
	kinds := palette.Builtin()
	if path == "" {
		return kinds, nil
	}
	loaded, err := palette.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Infof("[APP] loaded %d kinds from %s", len(loaded), path)
	return append(kinds, loaded...), nil
}

// reportResponses wires the editor's event stream to the demo outputs: print
// requests dump their node's expression to stdout, and any structural change
// logs the expression of every sink.
func reportResponses(state *editor.EditorState) func([]editor.NodeResponse) {
	return func(responses []editor.NodeResponse) {
		structural := false
		for _, r := range responses {
			switch r := r.(type) {
			case editor.UserEvent:
				if req, ok := r.Value.(palette.PrintRequest); ok {
					fmt.Println(palette.Expr(state.Graph, req.Node))
				}
			case editor.CreatedNode, editor.ConnectEventEnded, editor.DisconnectEvent, editor.DeleteNodeFull:
				structural = true
			}
		}
		if !structural {
			return
		}
		for _, sink := range palette.Sinks(state.Graph) {
			logger.Infof("[APP] %s", palette.Expr(state.Graph, sink))
		}
	}
}
