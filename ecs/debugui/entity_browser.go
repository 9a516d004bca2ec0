package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/flapecs/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityId
	Kinds          ecs.Kind
	ComponentCount int
}

type EntityBrowser struct {
	entities           []EntityInfo
	selectedEntityId   ecs.EntityId
	filterText         string
	filterKinds        *ecs.Kind
	maxEntitiesPerPage int
	currentPage        int
	sortColumn         int
	sortAscending      bool
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		maxEntitiesPerPage: maxEntitiesPerPage,
		sortAscending:      true,
	}
}

// Selected returns the id picked in the table, or 0.
func (eb *EntityBrowser) Selected() ecs.EntityId {
	return eb.selectedEntityId
}

// FilterKinds restricts the table to entities with exactly kinds.
func (eb *EntityBrowser) FilterKinds(kinds ecs.Kind) {
	eb.filterKinds = &kinds
	eb.currentPage = 0
}

func (eb *EntityBrowser) Render(entities ecs.Entities) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	// Snapshots are replaced every tick, so the rows are rebuilt every frame.
	eb.entities = entityRows(entities)
	sortEntities(eb.entities, eb.sortColumn, eb.sortAscending)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterKinds = nil
	}
	if eb.filterKinds != nil {
		imgui.Text(fmt.Sprintf("Kinds: %s", *eb.filterKinds))
	}

	filtered := filterEntities(eb.entities, eb.filterText, eb.filterKinds)
	var start, end, totalPages int
	start, end, eb.currentPage, totalPages = pageBounds(len(filtered), eb.currentPage, eb.maxEntitiesPerPage)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 240), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortEntities(eb.entities, eb.sortColumn, eb.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, entity := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(entity.Kinds.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.ComponentCount))
		}

		imgui.EndTable()
	}

	if totalPages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func entityRows(entities ecs.Entities) []EntityInfo {
	rows := make([]EntityInfo, len(entities))
	for i, e := range entities {
		kinds := e.Kinds()
		rows[i] = EntityInfo{
			ID:             e.Id,
			Kinds:          kinds,
			ComponentCount: kinds.Len(),
		}
	}
	return rows
}

func sortEntities(rows []EntityInfo, column int, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !ascending {
			a, b = b, a
		}

		switch column {
		case 1:
			return a.Kinds.String() < b.Kinds.String()
		case 2:
			return a.ComponentCount < b.ComponentCount
		default:
			return a.ID < b.ID
		}
	})
}

// filterEntities keeps rows whose id or component names contain text, case
// insensitively, and whose component set equals kinds when kinds is set.
func filterEntities(rows []EntityInfo, text string, kinds *ecs.Kind) []EntityInfo {
	if text == "" && kinds == nil {
		return rows
	}

	filtered := make([]EntityInfo, 0, len(rows))
	filterLower := strings.ToLower(text)

	for _, entity := range rows {
		if kinds != nil && entity.Kinds != *kinds {
			continue
		}

		if text != "" {
			idStr := fmt.Sprintf("%d", entity.ID)
			componentsStr := strings.ToLower(strings.Join(entity.Kinds.Names(), " "))
			if !strings.Contains(idStr, filterLower) && !strings.Contains(componentsStr, filterLower) {
				continue
			}
		}

		filtered = append(filtered, entity)
	}
	return filtered
}

// pageBounds clamps page into range and returns the half-open row range it
// shows along with the number of pages.
func pageBounds(total, page, perPage int) (start, end, clamped, pages int) {
	if perPage <= 0 || total == 0 {
		return 0, total, 0, 1
	}
	pages = (total + perPage - 1) / perPage
	clamped = min(max(page, 0), pages-1)
	start = clamped * perPage
	end = min(start+perPage, total)
	return start, end, clamped, pages
}
