package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewTextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(WithWriter(&buf))
	l.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "key=value") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDebugLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(WithWriter(&buf)).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug leaked at info level: %q", buf.String())
	}

	buf.Reset()
	New(WithWriter(&buf), WithDebug(true)).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("debug suppressed: %q", buf.String())
	}
}

func TestJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(WithWriter(&buf), WithJSON(true)).Info("structured", "n", 3)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "structured" || record["n"] != float64(3) {
		t.Fatalf("record = %v", record)
	}
}

func TestPrettyLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(WithWriter(&buf), WithPretty(true)).Info("shiny", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "shiny") || !strings.Contains(out, "value") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestMultipleWriters(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	New(WithWriters(&a, &b)).Info("fanout")
	if !strings.Contains(a.String(), "fanout") || !strings.Contains(b.String(), "fanout") {
		t.Fatal("log not written to all writers")
	}
}
