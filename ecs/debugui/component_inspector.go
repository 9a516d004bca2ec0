package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/flapecs/ecs"
)

// ComponentInspector shows the components of the selected entity. Values
// are read only: the entity is a snapshot.
type ComponentInspector struct{}

func NewComponentInspector() *ComponentInspector {
	return &ComponentInspector{}
}

type componentView struct {
	Name   string
	Fields []fieldView
}

type fieldView struct {
	Name  string
	Value string
}

func (ci *ComponentInspector) Render(entities ecs.Entities, selected ecs.EntityId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if selected == 0 {
		imgui.Text("No entity selected")
		return
	}

	entity, ok := entities.Lookup(selected)
	if !ok {
		imgui.Text(fmt.Sprintf("Entity %d is gone", selected))
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", entity.Id))
	imgui.Text(fmt.Sprintf("Kinds: %s", entity.Kinds()))
	imgui.Separator()

	for _, component := range inspectEntity(entity) {
		if len(component.Fields) == 0 {
			imgui.BulletText(component.Name)
			continue
		}
		if imgui.TreeNodeStr(component.Name) {
			for _, field := range component.Fields {
				imgui.Text(fmt.Sprintf("%s: %s", field.Name, field.Value))
			}
			imgui.TreePop()
		}
	}
}

// inspectEntity lists the attached components of e with their field values.
func inspectEntity(e ecs.Entity) []componentView {
	val := reflect.ValueOf(e)
	var views []componentView

	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		if !field.IsPointer {
			continue
		}
		ptr := val.Field(field.Index)
		if ptr.IsNil() {
			continue
		}
		views = append(views, componentView{
			Name:   field.Name,
			Fields: inspectValue(ptr.Elem()),
		})
	}
	return views
}

func inspectValue(val reflect.Value) []fieldView {
	var fields []fieldView
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fields = append(fields, fieldView{
			Name:  field.Name,
			Value: formatValue(val.Field(field.Index)),
		})
	}
	return fields
}

func formatValue(val reflect.Value) string {
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.3f", val.Float())
	default:
		if s, ok := val.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%v", val.Interface())
	}
}
