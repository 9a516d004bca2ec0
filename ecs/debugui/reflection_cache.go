package debugui

import (
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

// ReflectionCache remembers the exported fields of struct types.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: field.Type.Kind() == reflect.Pointer,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()
