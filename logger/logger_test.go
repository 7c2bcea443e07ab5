package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	defer SetVerbose(false)

	SetVerbose(false)
	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no debug output but got: %q", buf.String())
	}

	SetVerbose(true)
	Debugf("shown %d", 2)
	Infof("info %s", "line")
	Errorf("error %s", "line")

	out := buf.String()
	for _, want := range []string{"[DEBUG] ", "shown 2", "[INFO]  ", "info line", "[ERROR] ", "error line"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q but got: %q", want, out)
		}
	}
}
