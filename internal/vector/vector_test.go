package vector

import (
	"testing"

	"parsefloat/internal/diag"
	"parsefloat/internal/source"
)

const sample = `# comment line
3C00 3F800000 3FF0000000000000 1

0000 00000000 0000000000000000 0.0
bad line here
3C00 3F800000 3FF000000000000 1
3C00 ZZ800000 3FF0000000000000 1
`

// TestParseFile: комментарии и пустые строки молча пропускаются, кривые
// строки дают диагностику, но не останавливают разбор.
func TestParseFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.txt", []byte(sample))
	bag := diag.NewBag(16)
	vectors := ParseFile(fs.Get(id), diag.BagReporter{Bag: bag})

	if len(vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vectors))
	}
	v := vectors[0]
	if v.Bits16 != 0x3C00 || v.Bits32 != 0x3F800000 || v.Bits64 != 0x3FF0000000000000 ||
		v.Literal != "1" {
		t.Errorf("vector 0 = %+v", v)
	}
	if vectors[1].Literal != "0.0" || vectors[1].Bits64 != 0 {
		t.Errorf("vector 1 = %+v", vectors[1])
	}

	if bag.Len() != 3 {
		t.Fatalf("got %d diagnostics, want 3", bag.Len())
	}
	codes := []diag.Code{bag.Items()[0].Code, bag.Items()[1].Code, bag.Items()[2].Code}
	want := []diag.Code{diag.VecBadLine, diag.VecBadWidth, diag.VecBadBits}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("diag %d = %v, want %v", i, codes[i], want[i])
		}
	}
}

func TestParseFileSpans(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("s.txt", []byte("3C00 3F800000 3FF0000000000000 1\n"))
	vectors := ParseFile(fs.Get(id), diag.NopReporter{})
	if len(vectors) != 1 {
		t.Fatalf("got %d vectors", len(vectors))
	}
	sp := vectors[0].Span
	f := fs.Get(id)
	if string(f.Content[sp.Start:sp.End]) != "3C00 3F800000 3FF0000000000000 1" {
		t.Errorf("span text = %q", f.Content[sp.Start:sp.End])
	}
}
