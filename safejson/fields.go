package safejson

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

type field struct {
	name      string
	index     []int
	omitEmpty bool
}

var fieldCache sync.Map // reflect.Type -> []field

func cachedFields(t reflect.Type) []field {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]field)
	}
	fields := typeFields(t)
	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]field)
}

// typeFields lists the JSON-visible fields of struct type t in declaration
// order. Names are resolved breadth first so shallower fields shadow promoted
// ones.
func typeFields(t reflect.Type) []field {
	type pending struct {
		typ   reflect.Type
		index []int
	}
	var out []field
	seen := map[string]bool{}
	visited := map[reflect.Type]bool{}
	queue := []pending{{typ: t}}
	for len(queue) > 0 {
		level := queue
		queue = nil
		var levelFields []field
		for _, p := range level {
			if visited[p.typ] {
				continue
			}
			visited[p.typ] = true
			for i := range p.typ.NumField() {
				sf := p.typ.Field(i)
				tag := sf.Tag.Get("json")
				if tag == "-" {
					continue
				}
				name, opts, _ := strings.Cut(tag, ",")
				index := append(append([]int(nil), p.index...), i)
				if sf.Anonymous && name == "" {
					ft := sf.Type
					if ft.Kind() == reflect.Pointer {
						ft = ft.Elem()
					}
					if ft.Kind() == reflect.Struct {
						queue = append(queue, pending{typ: ft, index: index})
						continue
					}
				}
				if !sf.IsExported() {
					continue
				}
				if name == "" {
					name = sf.Name
				}
				levelFields = append(levelFields, field{
					name:      name,
					index:     index,
					omitEmpty: hasOption(opts, "omitempty"),
				})
			}
		}
		for _, f := range levelFields {
			if seen[f.name] {
				continue
			}
			seen[f.name] = true
			out = append(out, f)
		}
	}
	slices.SortFunc(out, func(a, b field) int { return slices.Compare(a.index, b.index) })
	return out
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}
