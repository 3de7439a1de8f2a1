package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nodewire/nodewire/core/editor"
	"github.com/nodewire/nodewire/core/geom"
	"github.com/nodewire/nodewire/core/graph"
	app_log "github.com/nodewire/nodewire/internal/log"
)

// gridCell is the background lattice pitch in editor units.
const gridCell = 40

/* ───────────────────────── view ───────────────────────── */

// View hosts one editor surface. Each tick it polls Ebiten input, runs the
// interaction pass over the editor state, lays the graph out again and
// publishes the fresh geometry for the next tick's hit-tests. It implements
// ebiten.Game.
type View struct {
	/* subsystems */
	cam    *Camera
	gest   gesture
	host   *paintHost
	logger *app_log.Logger

	/* editor state */
	state     *editor.EditorState
	kinds     editor.KindCatalog
	userState any

	/* per-frame results */
	layouts []editor.NodeLayout
	snap    *editor.SnapTarget
	pointer geom.Vec2

	// OnResponses, when set, receives every frame's ordered event list after
	// the pass applied it. Set it before the first Update.
	OnResponses func([]editor.NodeResponse)

	frame      int64
	winW, winH int
}

func New(state *editor.EditorState, kinds editor.KindCatalog, userState any, logger *app_log.Logger) *View {
	v := &View{
		cam:       NewCamera(),
		state:     state,
		kinds:     kinds,
		userState: userState,
		logger:    logger,
	}
	v.host = &paintHost{state: state}
	return v
}

func (v *View) Layout(w, h int) (int, int) {
	if w != v.winW || h != v.winH {
		v.logger.Infof("[VIEW] Layout: winW=%d winH=%d", w, h)
	}
	v.winW, v.winH = w, h
	return w, h
}

/* ───────────────────────── update ───────────────────────── */

func (v *View) Update() error {
	// wheel zoom first so this tick's pointer unprojects with the new scale
	if corr := v.cam.HandleWheel(); !corr.IsZero() {
		v.state.PanZoom.Pan = v.state.PanZoom.Pan.Add(corr)
		v.logger.Debugf("[VIEW] zoom=%.2f", v.cam.Scale)
	}
	v.state.PanZoom.Zoom = v.cam.Scale

	in := v.gest.read(v.cam, v.winW, v.winH)
	v.pointer = in.Pointer
	v.host.begin(in)

	res := editor.Frame(v.state, in, v.kinds, v.userState, v.host, nil)
	v.snap = res.Snap
	for _, r := range res.Responses {
		v.logger.Debugf("[VIEW] frame=%d response=%#v", v.frame, r)
	}
	if len(res.Responses) > 0 && v.OnResponses != nil {
		v.OnResponses(res.Responses)
	}

	// publish geometry for the next tick
	v.layouts = editor.Relayout(v.state)
	v.state.RecordGeometry(v.layouts)
	if v.state.Menu != nil {
		v.state.MenuRect = editor.MenuBounds(v.state.Menu.Pos, len(v.kinds.AllKinds()))
	}

	v.frame++
	return nil
}

/* ───────────────────────── draw ───────────────────────── */

func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)
	cam := v.cam.GeoM()

	v.drawGrid(screen, &cam)
	v.drawWires(screen, &cam)
	for _, lay := range v.layouts {
		v.drawNode(screen, &cam, lay)
	}
	v.drawDragWire(screen, &cam)
	v.drawWidgets(screen, &cam)
	v.drawBoxSelection(screen, &cam)
	v.drawMenu(screen, &cam)
}

// drawGrid strokes the graph-space lattice across the visible viewport.
func (v *View) drawGrid(screen *ebiten.Image, cam *ebiten.GeoM) {
	viewW := float64(v.winW) / v.cam.Scale
	viewH := float64(v.winH) / v.cam.Scale
	pan := v.state.PanZoom.Pan

	startI := int((-pan.X) / gridCell)
	endI := int((viewW-pan.X)/gridCell) + 1
	for i := startI - 1; i <= endI; i++ {
		x := float64(i*gridCell) + pan.X
		drawLineCam(screen, x, 0, x, viewH, cam, colGridLine, 1)
	}
	startJ := int((-pan.Y) / gridCell)
	endJ := int((viewH-pan.Y)/gridCell) + 1
	for j := startJ - 1; j <= endJ; j++ {
		y := float64(j*gridCell) + pan.Y
		drawLineCam(screen, 0, y, viewW, y, cam, colGridLine, 1)
	}
}

// portSign is +1 when the port pin sits on the node's right edge, -1 on the
// left, so wires leave pointing away from the body.
func (v *View) portSign(node graph.NodeID, isOutput bool) float64 {
	sign := -1.0
	if isOutput {
		sign = 1.0
	}
	if v.state.NodeOrientations[node] == editor.RightToLeft {
		sign = -sign
	}
	return sign
}

func (v *View) drawWires(screen *ebiten.Image, cam *ebiten.GeoM) {
	for _, link := range v.state.Graph.Connections() {
		from, okF := v.state.PortPositions[link.Output]
		to, okT := v.state.PortPositions[link.Input]
		if !okF || !okT {
			continue
		}
		out := v.state.Graph.Output(link.Output)
		in := v.state.Graph.Input(link.Input)
		col := portColor(out.Type)
		drawWire(screen, from, v.portSign(out.Node, true), to, v.portSign(in.Node, false), cam, col, 2)
	}
}

func (v *View) drawDragWire(screen *ebiten.Image, cam *ebiten.GeoM) {
	drag := v.state.ConnectionInProgress
	if drag == nil || v.snap == nil {
		return
	}
	from, ok := v.state.PortPositions[drag.Param]
	if !ok {
		return
	}
	typ, err := v.state.Graph.AnyParamType(drag.Param)
	if err != nil {
		return
	}
	_, fromOutput := graph.AsOutput(drag.Param)
	toSign := 0.0
	if v.snap.Port != nil {
		if _, snapOutput := graph.AsOutput(v.snap.Port); snapOutput {
			toSign = 1.0
		} else {
			toSign = -1.0
		}
	}
	drawWire(screen, from, v.portSign(drag.Node, fromOutput), v.snap.Pos, toSign, cam, portColor(typ), 2)
	if v.snap.Port != nil {
		drawCircle(screen, v.snap.Pos, editor.SnapRadius, cam, v.cam.Scale, colWireDrag)
	}
}

func (v *View) drawNode(screen *ebiten.Image, cam *ebiten.GeoM, lay editor.NodeLayout) {
	node := v.state.Graph.Node(lay.Node)

	drawRect(screen, lay.Rect, cam, colNodeFill, true)
	drawRect(screen, lay.Title, cam, colTitleBar, true)
	border := colNodeBorder
	if v.state.Selected(lay.Node) {
		border = colSelected
	}
	drawRect(screen, lay.Rect, cam, border, false)

	tx, ty := v.cam.ScreenPos(geom.V(lay.Title.Min.X+8, lay.Title.Min.Y+(editor.TitleBarHeight-debugCharH)/2))
	drawTextAt(screen, node.Label, int(tx), int(ty))

	canDelete := true
	if veto, ok := node.Payload.(editor.DeleteVetoer); ok {
		canDelete = veto.CanDelete(lay.Node, v.state.Graph, v.userState)
	}
	if canDelete {
		closeR := editor.CloseRect(lay.Rect)
		drawRect(screen, closeR, cam, colCloseBtn, true)
		cx, cy := v.cam.ScreenPos(closeR.Min)
		drawTextCentered(screen, "x", cx, cy, closeR.W()*v.cam.Scale, closeR.H()*v.cam.Scale)
	}
	flipR := editor.FlipRect(lay.Rect)
	drawRect(screen, flipR, cam, colFlipBtn, true)
	fx, fy := v.cam.ScreenPos(flipR.Min)
	drawTextCentered(screen, "<>", fx, fy, flipR.W()*v.cam.Scale, flipR.H()*v.cam.Scale)

	for _, row := range lay.Rows {
		typ, err := v.state.Graph.AnyParamType(row.Param)
		if err != nil {
			continue
		}
		drawCircle(screen, row.Port, 5, cam, v.cam.Scale, portColor(typ))

		// label hugs the pin's edge of the row
		var lx float64
		if row.Port.X <= row.Rect.Min.X {
			lx = row.Rect.Min.X + 12
		} else {
			lx = row.Rect.Max.X - 12 - float64(debugCharW*len(row.Name))
		}
		sx, sy := v.cam.ScreenPos(geom.V(lx, row.Rect.Min.Y+(editor.PortRowHeight-debugCharH)/2))
		drawTextAt(screen, row.Name, int(sx), int(sy))
	}

	if lay.Bottom.H() > 0 {
		drawRect(screen, lay.Bottom, cam, colNodeBorder, false)
	}
}

func (v *View) drawWidgets(screen *ebiten.Image, cam *ebiten.GeoM) {
	for _, c := range v.host.cmds {
		fill := colWidgetFill
		if c.hot {
			fill = colMenuHover
		}
		drawRect(screen, c.rect, cam, fill, true)
		if c.kind == widgetButton {
			drawRect(screen, c.rect, cam, colWidgetBorder, false)
		}
		sx, sy := v.cam.ScreenPos(c.rect.Min)
		drawTextCentered(screen, c.text, sx, sy, c.rect.W()*v.cam.Scale, c.rect.H()*v.cam.Scale)
	}
}

func (v *View) drawBoxSelection(screen *ebiten.Image, cam *ebiten.GeoM) {
	if v.state.BoxSelection == nil {
		return
	}
	band := geom.R(*v.state.BoxSelection, v.pointer)
	drawRect(screen, band, cam, colBoxSel, true)
	drawRect(screen, band, cam, colBoxEdge, false)
}

func (v *View) drawMenu(screen *ebiten.Image, cam *ebiten.GeoM) {
	if v.state.Menu == nil {
		return
	}
	bounds := v.state.MenuRect
	drawRect(screen, bounds, cam, colMenuFill, true)
	drawRect(screen, bounds, cam, colMenuBorder, false)
	for i, kind := range v.kinds.AllKinds() {
		row := editor.MenuRow(bounds, i)
		if row.Contains(v.pointer) {
			drawRect(screen, row, cam, colMenuHover, true)
		}
		sx, sy := v.cam.ScreenPos(geom.V(row.Min.X+8, row.Min.Y+(editor.MenuRowHeight-debugCharH)/2))
		drawTextAt(screen, kind.MenuLabel(v.userState), int(sx), int(sy))
	}
}
