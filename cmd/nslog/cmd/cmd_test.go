package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestColorCommand(t *testing.T) {
	out, err := execute(t, "", "color", "--no-swatch", "app", "test")
	if err != nil {
		t.Fatalf("color: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"app\thash=rgb(207,91,19)\timproved=rgb(12,91,19)\thex=#0c5b13\tansi256=28",
		"test\thash=rgb(127,103,85)\timproved=rgb(63,103,85)\thex=#3f6755\tansi256=66",
	}
	if len(lines) != len(want) {
		t.Fatalf("unexpected output %q", out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d:\n got %q\nwant %q", i, lines[i], want[i])
		}
	}
}

func TestColorCommandSwatch(t *testing.T) {
	out, err := execute(t, "", "color", "app")
	if err != nil {
		t.Fatalf("color: %v", err)
	}
	if !strings.Contains(out, "\x1b[48;5;28m\x1b[38;5;231m app \x1b[39m\x1b[49m") {
		t.Fatalf("missing swatch in %q", out)
	}
}

func TestColorCommandStripsEscapes(t *testing.T) {
	out, err := execute(t, "", "color", "--no-swatch", "\x1b[48;5;28m\x1b[38;5;231mapp\x1b[39m\x1b[49m")
	if err != nil {
		t.Fatalf("color: %v", err)
	}
	if want := "app\thash=rgb(207,91,19)\timproved=rgb(12,91,19)\thex=#0c5b13\tansi256=28\n"; out != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out, want)
	}
}

func TestColorCommandRequiresArgs(t *testing.T) {
	if _, err := execute(t, "", "color"); err == nil {
		t.Fatalf("expected an error without arguments")
	}
}

func TestDemoCommandJSON(t *testing.T) {
	out, err := execute(t, "", "demo", "--format", "json", "--level", "debug")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 records, got %d: %q", len(lines), out)
	}
	if want := `{"level":"info","namespace":["api"],"tags":{"component":"http"},"extra":{},"messages":["server listening",8080]}`; lines[0] != want {
		t.Fatalf("first record:\n got %s\nwant %s", lines[0], want)
	}
	if want := `{"level":"error","namespace":["api","orders","payment"],"tags":{"component":"http"},"extra":{"attempt":2,"tenant":"acme"},"messages":["charge declined","card expired"]}`; lines[3] != want {
		t.Fatalf("last record:\n got %s\nwant %s", lines[3], want)
	}
	if strings.Contains(out, "never shown") {
		t.Fatalf("ignored namespace leaked: %q", out)
	}
}

func TestDemoCommandSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	content := "level: warn\nrenderer: plain\nappend_tags: false\nappend_extra: false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	out, err := execute(t, "", "demo", "--config", path)
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	want := `api/orders slow query {"ms":1250,"table":"orders"}` + "\n" +
		"api/orders/payment charge declined card expired\n"
	if out != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDemoCommandReportsWriteFailures(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(failingWriter{})
	root.SetErr(io.Discard)
	root.SetArgs([]string{"demo", "--renderer", "plain"})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "writes failed: disk full") {
		t.Fatalf("expected write failure error, got %v", err)
	}
}

func TestDemoCommandRejectsFormat(t *testing.T) {
	if _, err := execute(t, "", "demo", "--format", "xml"); err == nil {
		t.Fatalf("expected unknown format to fail")
	}
}

func TestStringifyCommand(t *testing.T) {
	out, err := execute(t, `{"b":1,"a":[true,null]} "x"`, "stringify")
	if err != nil {
		t.Fatalf("stringify: %v", err)
	}
	if want := "{\"a\":[true,null],\"b\":1}\n\"x\"\n"; out != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out, want)
	}

	out, err = execute(t, `{"a":{"b":2}}`, "stringify", "--indent", "2")
	if err != nil {
		t.Fatalf("stringify --indent: %v", err)
	}
	if want := "{\n  \"a\": {\n    \"b\": 2\n  }\n}\n"; out != want {
		t.Fatalf("unexpected indented output:\n got %q\nwant %q", out, want)
	}
}

func TestStringifyCommandRejectsInvalidJSON(t *testing.T) {
	_, err := execute(t, `{"a":`, "stringify")
	if err == nil || !strings.Contains(err.Error(), "decode input") {
		t.Fatalf("expected decode error, got %v", err)
	}
}
