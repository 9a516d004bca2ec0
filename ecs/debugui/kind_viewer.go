package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/flapecs/ecs"
)

// KindViewer lists every distinct component set and how many entities have
// it. Clicking a row returns its kinds so the browser can filter on them.
type KindViewer struct {
	selected      *ecs.Kind
	sortColumn    int
	sortAscending bool
}

func NewKindViewer() *KindViewer {
	return &KindViewer{
		sortColumn: 2,
	}
}

func (kv *KindViewer) Render(entities ecs.Entities) *ecs.Kind {
	if !imgui.BeginV("Kind Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	breakdown := ecs.CollectStats(entities).ArchetypeBreakdown

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if !imgui.BeginTableV("KindTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.End()
		return nil
	}

	imgui.TableSetupColumn("Components")
	imgui.TableSetupColumn("Comp Count")
	imgui.TableSetupColumn("Entity Count")
	imgui.TableHeadersRow()

	sortSpecs := imgui.TableGetSortSpecs()
	if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
		spec := sortSpecs.Specs()
		kv.sortColumn = int(spec.ColumnIndex())
		kv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
		sortSpecs.SetSpecsDirty(false)
	}
	sortKinds(breakdown, kv.sortColumn, kv.sortAscending)

	maxEntityCount := 0
	for _, arch := range breakdown {
		maxEntityCount = max(maxEntityCount, arch.EntityCount)
	}

	var clicked *ecs.Kind
	for _, arch := range breakdown {
		imgui.TableNextRow()

		imgui.TableNextColumn()
		isSelected := kv.selected != nil && *kv.selected == arch.Kinds
		if imgui.SelectableBoolV(arch.Kinds.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
			kinds := arch.Kinds
			clicked = &kinds
			kv.selected = &kinds
		}

		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", arch.Kinds.Len()))

		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", arch.EntityCount))

		if maxEntityCount > 0 {
			barWidth := float32(arch.EntityCount) / float32(maxEntityCount) * 80.0
			imgui.SameLine()
			drawList := imgui.WindowDrawList()
			pos := imgui.CursorScreenPos()
			color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
			drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
		}
	}

	imgui.EndTable()
	imgui.End()
	return clicked
}

func sortKinds(breakdown []ecs.ArchetypeStats, column int, ascending bool) {
	sort.SliceStable(breakdown, func(i, j int) bool {
		a, b := breakdown[i], breakdown[j]
		if !ascending {
			a, b = b, a
		}

		switch column {
		case 0:
			return a.Kinds.String() < b.Kinds.String()
		case 1:
			return a.Kinds.Len() < b.Kinds.Len()
		default:
			return a.EntityCount < b.EntityCount
		}
	})
}
