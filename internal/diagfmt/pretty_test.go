package diagfmt

import (
	"strings"
	"testing"

	"parsefloat/internal/diag"
	"parsefloat/internal/source"
)

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("v.txt", []byte("first line\nsecond line\n"))
	f := fs.Get(id)

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.ChkMismatch64,
		Message:  "got 0x0, want 0x1",
		Primary:  f.LineSpan(2),
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Context: true})
	out := sb.String()

	if !strings.Contains(out, "v.txt:2:1: ERROR CHK2002: got 0x0, want 0x1") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "second line") {
		t.Errorf("context line missing:\n%s", out)
	}
	if !strings.Contains(out, "~~~") {
		t.Errorf("marker missing:\n%s", out)
	}
}
