package safejson

import (
	"bytes"
	"encoding"
	"encoding/base64"
	"encoding/json"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxIndent = 10

var (
	marshalerType     = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// Stringify returns the JSON rendering of v. When indent is positive the
// output is pretty printed with that many spaces per level (capped at 10).
func Stringify(v any, indent int) string {
	e := &encoder{}
	e.value(reflect.ValueOf(v))
	if indent <= 0 {
		return string(e.buf)
	}
	indent = min(indent, maxIndent)
	var out bytes.Buffer
	if err := json.Indent(&out, e.buf, "", strings.Repeat(" ", indent)); err != nil {
		return string(e.buf)
	}
	return out.String()
}

type identity struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type frame struct {
	id    identity
	depth int
}

type encoder struct {
	buf   []byte
	stack []frame
	path  []string
}

// circular returns the placeholder for id when it is already being encoded
// further up the current branch.
func (e *encoder) circular(id identity) (string, bool) {
	for _, f := range e.stack {
		if f.id != id {
			continue
		}
		if f.depth == 0 {
			return "[Circular ~]", true
		}
		return "[Circular ~." + strings.Join(e.path[:f.depth], ".") + "]", true
	}
	return "", false
}

// enter records id as an ancestor and reports false when it closes a cycle,
// in which case the placeholder has already been written.
func (e *encoder) enter(id identity) bool {
	if marker, ok := e.circular(id); ok {
		e.buf = appendString(e.buf, marker)
		return false
	}
	e.stack = append(e.stack, frame{id: id, depth: len(e.path)})
	return true
}

func (e *encoder) leave() {
	e.stack = e.stack[:len(e.stack)-1]
}

func (e *encoder) push(key string) { e.path = append(e.path, key) }
func (e *encoder) pop()            { e.path = e.path[:len(e.path)-1] }

func (e *encoder) value(v reflect.Value) {
	if !v.IsValid() {
		e.buf = append(e.buf, "null"...)
		return
	}
	if done := e.marshaler(v); done {
		return
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			e.buf = append(e.buf, "null"...)
			return
		}
		e.value(v.Elem())
	case reflect.Pointer:
		if v.IsNil() {
			e.buf = append(e.buf, "null"...)
			return
		}
		if !e.enter(identity{ptr: v.Pointer(), typ: v.Type()}) {
			return
		}
		e.value(v.Elem())
		e.leave()
	case reflect.Map:
		if v.IsNil() {
			e.buf = append(e.buf, "null"...)
			return
		}
		if !e.enter(identity{ptr: v.Pointer(), typ: v.Type()}) {
			return
		}
		e.mapValue(v)
		e.leave()
	case reflect.Slice:
		if v.IsNil() {
			e.buf = append(e.buf, "null"...)
			return
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			e.bytesValue(v)
			return
		}
		if !e.enter(identity{ptr: v.Pointer(), typ: v.Type(), len: v.Len()}) {
			return
		}
		e.arrayValue(v)
		e.leave()
	case reflect.Array:
		e.arrayValue(v)
	case reflect.Struct:
		e.structValue(v)
	case reflect.String:
		e.buf = appendString(e.buf, v.String())
	case reflect.Bool:
		e.buf = strconv.AppendBool(e.buf, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buf = strconv.AppendInt(e.buf, v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.buf = strconv.AppendUint(e.buf, v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		e.buf = appendFloat(e.buf, v.Float(), v.Type().Bits())
	default:
		e.buf = append(e.buf, "null"...)
	}
}

// marshaler renders v through json.Marshaler or encoding.TextMarshaler when it
// implements either. Nil pointers fall through to the regular null handling.
func (e *encoder) marshaler(v reflect.Value) bool {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	if v.Kind() == reflect.Interface || !v.CanInterface() {
		return false
	}
	t := v.Type()
	switch {
	case t.Implements(marshalerType):
		raw, err := v.Interface().(json.Marshaler).MarshalJSON()
		if err != nil {
			e.buf = appendString(e.buf, err.Error())
			return true
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			e.buf = appendString(e.buf, string(raw))
			return true
		}
		e.buf = append(e.buf, compact.Bytes()...)
		return true
	case t.Implements(textMarshalerType):
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			e.buf = appendString(e.buf, err.Error())
			return true
		}
		e.buf = appendString(e.buf, string(text))
		return true
	}
	return false
}

func (e *encoder) mapValue(v reflect.Value) {
	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		val := iter.Value()
		if skippable(val) {
			continue
		}
		key, ok := mapKey(iter.Key())
		if !ok {
			continue
		}
		entries = append(entries, entry{key: key, value: val})
	}
	slices.SortFunc(entries, func(a, b entry) int { return strings.Compare(a.key, b.key) })

	e.buf = append(e.buf, '{')
	for i, ent := range entries {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.buf = appendString(e.buf, ent.key)
		e.buf = append(e.buf, ':')
		e.push(ent.key)
		e.value(ent.value)
		e.pop()
	}
	e.buf = append(e.buf, '}')
}

func mapKey(k reflect.Value) (string, bool) {
	if k.Kind() == reflect.String {
		return k.String(), true
	}
	if k.Type().Implements(textMarshalerType) {
		if k.Kind() == reflect.Pointer && k.IsNil() {
			return "", false
		}
		text, err := k.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", false
		}
		return string(text), true
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), true
	}
	return "", false
}

func (e *encoder) arrayValue(v reflect.Value) {
	e.buf = append(e.buf, '[')
	n := v.Len()
	for i := range n {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		elem := v.Index(i)
		if skippable(elem) {
			e.buf = append(e.buf, "null"...)
			continue
		}
		e.push(strconv.Itoa(i))
		e.value(elem)
		e.pop()
	}
	e.buf = append(e.buf, ']')
}

func (e *encoder) bytesValue(v reflect.Value) {
	e.buf = append(e.buf, '"')
	e.buf = base64.StdEncoding.AppendEncode(e.buf, v.Bytes())
	e.buf = append(e.buf, '"')
}

func (e *encoder) structValue(v reflect.Value) {
	e.buf = append(e.buf, '{')
	first := true
	for _, f := range cachedFields(v.Type()) {
		fv, err := v.FieldByIndexErr(f.index)
		if err != nil {
			continue
		}
		if skippable(fv) || (f.omitEmpty && isEmptyValue(fv)) {
			continue
		}
		if !first {
			e.buf = append(e.buf, ',')
		}
		first = false
		e.buf = appendString(e.buf, f.name)
		e.buf = append(e.buf, ':')
		e.push(f.name)
		e.value(fv)
		e.pop()
	}
	e.buf = append(e.buf, '}')
}

// skippable reports values JSON.stringify treats as undefined.
func skippable(v reflect.Value) bool {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

func appendFloat(buf []byte, f float64, bits int) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(buf, "null"...)
	}
	// Same cut-over points as encoding/json (ES6 number formatting).
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	start := len(buf)
	buf = strconv.AppendFloat(buf, f, format, -1, bits)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(buf) - start
		if n >= 4 && buf[len(buf)-4] == 'e' && buf[len(buf)-3] == '-' && buf[len(buf)-2] == '0' {
			buf[len(buf)-2] = buf[len(buf)-1]
			buf = buf[:len(buf)-1]
		}
	}
	return buf
}

func appendString(buf []byte, s string) []byte {
	const hex = "0123456789abcdef"
	buf = append(buf, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			buf = append(buf, s[start:i]...)
			switch c {
			case '\\', '"':
				buf = append(buf, '\\', c)
			case '\b':
				buf = append(buf, '\\', 'b')
			case '\f':
				buf = append(buf, '\\', 'f')
			case '\n':
				buf = append(buf, '\\', 'n')
			case '\r':
				buf = append(buf, '\\', 'r')
			case '\t':
				buf = append(buf, '\\', 't')
			default:
				buf = append(buf, '\\', 'u', '0', '0', hex[c>>4], hex[c&0x0f])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf = append(buf, s[start:i]...)
			buf = append(buf, `\ufffd`...)
			i += size
			start = i
			continue
		}
		i += size
	}
	buf = append(buf, s[start:]...)
	return append(buf, '"')
}
