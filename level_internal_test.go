package nslog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"error", ErrorLevel, true},
		{" WARN ", WarnLevel, true},
		{"warning", WarnLevel, true},
		{"Info", InfoLevel, true},
		{"debug", DebugLevel, true},
		{"none", NoLevel, true},
		{"trace", InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
	if diff := cmp.Diff([]Level{ErrorLevel, DebugLevel}, ParseLevels("error,,nope, debug,none")); diff != "" {
		t.Fatalf("ParseLevels mismatch (-want +got):\n%s", diff)
	}
}

func TestCanEmit(t *testing.T) {
	cases := []struct {
		level, threshold Level
		want             bool
	}{
		{ErrorLevel, ErrorLevel, true},
		{WarnLevel, ErrorLevel, false},
		{ErrorLevel, DebugLevel, true},
		{DebugLevel, InfoLevel, false},
		{InfoLevel, InfoLevel, true},
		{NoLevel, DebugLevel, false},
		{ErrorLevel, NoLevel, false},
	}
	for _, tc := range cases {
		if got := CanEmit(tc.level, tc.threshold); got != tc.want {
			t.Fatalf("CanEmit(%v, %v) = %v, want %v", tc.level, tc.threshold, got, tc.want)
		}
	}
}

func TestLevelSet(t *testing.T) {
	var unset levelSet
	if unset.present() {
		t.Fatalf("zero set should be absent")
	}
	empty := newLevelSet(Level(9))
	if !empty.present() || empty.allows(ErrorLevel) || len(empty.levels()) != 0 {
		t.Fatalf("set of unknown levels should be present and empty: %b", empty)
	}
	set := newLevelSet(DebugLevel, WarnLevel, DebugLevel)
	if diff := cmp.Diff([]Level{WarnLevel, DebugLevel}, set.levels()); diff != "" {
		t.Fatalf("levels mismatch (-want +got):\n%s", diff)
	}
	if len(levelSetAll.levels()) != 4 {
		t.Fatalf("levelSetAll should allow every level")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"text": FormatText, "JSON": FormatJSON, "structured": FormatJSON, "console": FormatText} {
		if got, ok := ParseFormat(in); !ok || got != want {
			t.Fatalf("ParseFormat(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseFormat("xml"); ok {
		t.Fatalf("xml should be rejected")
	}
}

func TestMergeContexts(t *testing.T) {
	cfg := defaultConfig()
	major := &Context{
		Namespace: []string{"a"},
		Tags:      Tags{"t": 1},
		Extra:     Extra{"x": 1},
		Config:    &cfg,
	}
	merged := mergeContexts(major,
		SubContext{Namespace: "b", Extra: Extra{"x": 2}},
		SubContext{Tags: Tags{"t": 3}},
		SubContext{Namespace: "c"},
	)
	if diff := cmp.Diff([]string{"a", "b", "c"}, merged.Namespace); diff != "" {
		t.Fatalf("namespace mismatch (-want +got):\n%s", diff)
	}
	if merged.Tags["t"] != 3 || merged.Extra["x"] != 2 {
		t.Fatalf("later subs should win: %+v", merged)
	}
	if major.Tags["t"] != 1 || major.Extra["x"] != 1 || len(major.Namespace) != 1 {
		t.Fatalf("major mutated: %+v", major)
	}
	if merged.Config != major.Config {
		t.Fatalf("config pointer not shared")
	}
	if got := merged.NamespacePath(); got != "a/b/c" {
		t.Fatalf("NamespacePath = %q", got)
	}
}

func TestRuntimeIgnoresInvalidLevel(t *testing.T) {
	rt := NewRuntime()
	rt.SetLogLevel(Level(7))
	rt.SetLogLevel(NoLevel)
	if rt.LogLevel() != InfoLevel {
		t.Fatalf("invalid levels should be ignored, got %v", rt.LogLevel())
	}
}

func TestClassifyLineLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		msg  string
	}{
		{"[error] x", ErrorLevel, "x"},
		{"[none] x", InfoLevel, "[none] x"},
		{"Fatal: y", ErrorLevel, "y"},
		{"trace-z", DebugLevel, "z"},
		{"just text", InfoLevel, "just text"},
	}
	for _, tc := range cases {
		level, msg := classifyLineLevel(tc.in)
		if level != tc.want || msg != tc.msg {
			t.Fatalf("classifyLineLevel(%q) = %v %q, want %v %q", tc.in, level, msg, tc.want, tc.msg)
		}
	}
}

type keyedStruct struct{}

func (keyedStruct) handle() {}

func TestKeyName(t *testing.T) {
	cases := []struct {
		name string
		key  any
		want string
	}{
		{"string", "billing", "billing"},
		{"func", TestKeyName, "TestKeyName"},
		{"method value", keyedStruct{}.handle, "handle"},
		{"pointer", &keyedStruct{}, "keyedStruct"},
		{"value", keyedStruct{}, "keyedStruct"},
		{"nil", nil, ""},
		{"nil func", (func())(nil), ""},
		{"anonymous", struct{}{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyName(tc.key); got != tc.want {
				t.Fatalf("keyName = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTrimFunctionName(t *testing.T) {
	cases := map[string]string{
		"pkt.systems/nslog.TestTrim": "TestTrim",
		"main.(*server).serve-fm":    "serve",
		"example.com/a/b.Func.func1": "func1",
		"":                           "unknown",
		"pkt.systems/nslog.":         "unknown",
	}
	for in, want := range cases {
		if got := trimFunctionName(in); got != want {
			t.Fatalf("trimFunctionName(%q) = %q, want %q", in, got, want)
		}
	}
	if got := CurrentFn(); got != "TestTrimFunctionName" {
		t.Fatalf("CurrentFn = %q", got)
	}
}

func TestIgnoreList(t *testing.T) {
	list := parseIgnoreList(" a, B ,,c ")
	for _, name := range []string{"A", "b", "C"} {
		if !list.contains(name) {
			t.Fatalf("expected %q to be ignored", name)
		}
	}
	if list.contains("d") || parseIgnoreList("").contains("") {
		t.Fatalf("unexpected ignore match")
	}
}
