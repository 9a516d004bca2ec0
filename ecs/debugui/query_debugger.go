package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/flapecs/ecs"
)

// QueryDebugger shows which entities a component query would visit.
type QueryDebugger struct {
	selected ecs.Kind
}

func NewQueryDebugger() *QueryDebugger {
	return &QueryDebugger{}
}

func (qd *QueryDebugger) Render(entities ecs.Entities) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selected = 0
	}

	for _, kind := range ecs.AllKinds() {
		checked := qd.selected&kind != 0
		if imgui.Checkbox(kind.String(), &checked) {
			qd.selected = toggleKind(qd.selected, kind, checked)
		}
	}

	imgui.Separator()

	if qd.selected == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matches := queryMatches(entities, qd.selected)
	imgui.Text(fmt.Sprintf("Query: %s", qd.selected))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matches)))

	if imgui.TreeNodeStr("Matching Ids") {
		for _, id := range matches {
			imgui.BulletText(fmt.Sprintf("%d", id))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func toggleKind(set, kind ecs.Kind, on bool) ecs.Kind {
	if on {
		return set | kind
	}
	return set &^ kind
}

func queryMatches(entities ecs.Entities, kinds ecs.Kind) []ecs.EntityId {
	var ids []ecs.EntityId
	for e := range entities.Query(kinds) {
		ids = append(ids, e.Id)
	}
	return ids
}
