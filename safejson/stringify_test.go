package safejson

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestStringifyMatchesEncodingJSONForAcyclicValues(t *testing.T) {
	type inner struct {
		C int `json:"c"`
	}
	type payload struct {
		Name    string            `json:"name"`
		Count   int               `json:"count"`
		Ratio   float64           `json:"ratio"`
		Tags    map[string]string `json:"tags"`
		List    []any             `json:"list"`
		Skip    string            `json:"-"`
		Empty   string            `json:"empty,omitempty"`
		Nested  *inner            `json:"nested"`
		Missing *inner            `json:"missing"`
		Plain   bool
	}
	values := []any{
		map[string]any{"a": 1, "b": "test", "c": true},
		[]any{1, 2, 3, "test"},
		"test",
		42,
		3.14,
		nil,
		map[string]any{},
		[]int{},
		payload{
			Name:   "checkout",
			Count:  3,
			Ratio:  0.5,
			Tags:   map[string]string{"env": "prod", "b": "x"},
			List:   []any{1, "two", map[string]any{"d": 3}},
			Skip:   "hidden",
			Nested: &inner{C: 2},
			Plain:  true,
		},
		time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC),
		[]byte("bytes"),
		map[int]string{2: "b", 1: "a"},
		"quotes \" and \\ and \n newline",
	}
	for _, v := range values {
		want, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("json.Marshal(%#v): %v", v, err)
		}
		if got := Stringify(v, 0); got != string(want) {
			t.Fatalf("Stringify(%#v)\n got: %s\nwant: %s", v, got, want)
		}
	}
}

func TestStringifySelfReference(t *testing.T) {
	obj := map[string]any{"a": 1}
	obj["b"] = obj
	got := Stringify(obj, 0)
	if got != `{"a":1,"b":"[Circular ~]"}` {
		t.Fatalf("unexpected output %s", got)
	}
	if !strings.Contains(got, `"[Circular`) {
		t.Fatalf("missing circular marker in %s", got)
	}
}

func TestStringifyAncestorReference(t *testing.T) {
	nested := map[string]any{"b": 2}
	obj := map[string]any{"a": 1, "nested": nested}
	deeper := map[string]any{}
	nested["child"] = deeper
	deeper["up"] = nested
	deeper["root"] = obj

	got := Stringify(obj, 0)
	want := `{"a":1,"nested":{"b":2,"child":{"root":"[Circular ~]","up":"[Circular ~.nested]"}}}`
	if got != want {
		t.Fatalf("Stringify\n got: %s\nwant: %s", got, want)
	}
}

func TestStringifyPointerCycle(t *testing.T) {
	type node struct {
		Name string `json:"name"`
		Next *node  `json:"next"`
	}
	a := &node{Name: "a"}
	b := &node{Name: "b", Next: a}
	a.Next = b

	got := Stringify(a, 0)
	want := `{"name":"a","next":{"name":"b","next":"[Circular ~]"}}`
	if got != want {
		t.Fatalf("Stringify\n got: %s\nwant: %s", got, want)
	}
}

func TestStringifySliceCycleUsesIndexPath(t *testing.T) {
	list := make([]any, 2)
	inner := map[string]any{}
	list[0] = "x"
	list[1] = inner
	inner["list"] = list
	inner["self"] = inner

	got := Stringify(map[string]any{"items": list}, 0)
	want := `{"items":["x",{"list":"[Circular ~.items]","self":"[Circular ~.items.1]"}]}`
	if got != want {
		t.Fatalf("Stringify\n got: %s\nwant: %s", got, want)
	}
}

func TestStringifySharedReferenceIsNotACycle(t *testing.T) {
	shared := map[string]any{"v": 1}
	got := Stringify(map[string]any{"x": shared, "y": shared}, 0)
	if got != `{"x":{"v":1},"y":{"v":1}}` {
		t.Fatalf("shared siblings should serialise twice, got %s", got)
	}
}

func TestStringifyUndefinedLikeValues(t *testing.T) {
	type withFunc struct {
		A  any    `json:"a"`
		Fn func() `json:"fn"`
	}
	got := Stringify(withFunc{A: nil, Fn: func() {}}, 0)
	if got != `{"a":null}` {
		t.Fatalf("func field should be omitted, got %s", got)
	}
	got = Stringify([]any{func() {}, make(chan int), math.NaN(), math.Inf(1)}, 0)
	if got != `[null,null,null,null]` {
		t.Fatalf("unexpected array rendering %s", got)
	}
	got = Stringify(map[string]any{"a": nil, "f": func() {}}, 0)
	if got != `{"a":null}` {
		t.Fatalf("unexpected map rendering %s", got)
	}
}

func TestStringifyIndent(t *testing.T) {
	got := Stringify(map[string]any{"a": 1, "b": map[string]any{"c": 2}}, 2)
	want := "{\n  \"a\": 1,\n  \"b\": {\n    \"c\": 2\n  }\n}"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("indent mismatch (-want +got):\n%s", diff)
	}
}

func TestStringifyEmbeddedAndErrors(t *testing.T) {
	type Base struct {
		ID   int    `json:"id"`
		Kind string `json:"kind"`
	}
	type record struct {
		Base
		Kind string `json:"kind"`
	}
	got := Stringify(record{Base: Base{ID: 7, Kind: "inner"}, Kind: "outer"}, 0)
	if got != `{"id":7,"kind":"outer"}` {
		t.Fatalf("unexpected embedded rendering %s", got)
	}
	if got := Stringify(errors.New("boom"), 0); got != "{}" {
		t.Fatalf("errors carry no exported fields, got %s", got)
	}
}

func TestStringifyInvalidUTF8(t *testing.T) {
	got := Stringify("a\xffb", 0)
	want, _ := json.Marshal("a\xffb")
	if got != string(want) {
		t.Fatalf("got %s want %s", got, want)
	}
}
