package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugfRespectsVerbosity(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 2, "test")

	r.Debugf(1, "shown %d", 1)
	r.Debugf(2, "shown %d", 2)
	r.Debugf(3, "hidden %d", 3)

	out := buf.String()
	if !strings.Contains(out, "shown 1") || !strings.Contains(out, "shown 2") {
		t.Errorf("expected levels 1 and 2 in output, got %q", out)
	}
	if strings.Contains(out, "hidden 3") {
		t.Errorf("level 3 should be suppressed at verbosity 2, got %q", out)
	}
}

func TestZeroVerbosityIsSilentForDebug(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 0, "test")

	r.Debugf(0, "level zero")
	r.Debugf(1, "level one")

	if strings.Contains(buf.String(), "level one") {
		t.Errorf("debug output leaked at verbosity 0: %q", buf.String())
	}
}

func TestNilAndNopAreSafe(t *testing.T) {
	var r *Reporter
	r.Debugf(1, "nothing")
	r.Info("nothing")
	r.Warn("nothing")
	if r.Enabled(0) {
		t.Error("nil reporter should never be enabled")
	}

	n := Nop()
	n.Debugf(1, "nothing")
	n.Error("nothing")
	if n.Verbosity() != 0 {
		t.Errorf("Nop verbosity = %d, want 0", n.Verbosity())
	}
}
