package nslog

import (
	"reflect"
	"runtime"
	"strings"
)

const unknownName = "unknown"

// keyName derives a namespace segment from a For key. Strings are used as
// is, functions by their trimmed runtime name and anything else by its
// dereferenced type name. Nil and anonymous keys yield "", which adds no
// segment.
func keyName(key any) string {
	switch k := key.(type) {
	case nil:
		return ""
	case string:
		return k
	}
	v := reflect.ValueOf(key)
	if v.Kind() == reflect.Func {
		if v.IsNil() {
			return ""
		}
		return functionNameForPC(v.Pointer())
	}
	t := v.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func functionNameForPC(pc uintptr) string {
	if pc == 0 {
		return unknownName
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownName
	}
	return trimFunctionName(fn.Name())
}

func trimFunctionName(name string) string {
	// Method values carry a "-fm" suffix.
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return unknownName
	}
	return name
}

// CurrentFn returns the name of the calling function without package path,
// handy as a For key or namespace segment. It returns "unknown" when the
// caller cannot be determined.
func CurrentFn() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return unknownName
	}
	return functionNameForPC(pc)
}
