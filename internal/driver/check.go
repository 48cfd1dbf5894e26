package driver

import (
	"fmt"
	"math"

	"parsefloat/internal/diag"
	"parsefloat/internal/floatconv"
	"parsefloat/internal/source"
	"parsefloat/internal/vector"
)

// CheckResult содержит итог проверки одного файла векторов.
type CheckResult struct {
	Path      string
	FileID    source.FileID
	Total     int // сколько векторов проверено
	Failed    int // сколько разошлось с эталоном
	Bag       *diag.Bag // nil у результатов из кеша
	FromCache bool
}

// CheckFile parses every literal of one vector file with both targets and
// compares the produced bit patterns with the recorded ones. The result is
// independent of every other file, which is what makes the parallel walk and
// the cache safe.
func CheckFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *CheckResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	vectors := vector.ParseFile(file, reporter)
	if len(vectors) == 0 {
		diag.ReportWarning(reporter, diag.VecEmptyFile,
			source.Span{File: fileID}, "no vectors found")
	}

	result := &CheckResult{
		Path:   file.Path,
		FileID: fileID,
		Total:  len(vectors),
		Bag:    bag,
	}
	for _, v := range vectors {
		if !checkVector(v, reporter) {
			result.Failed++
		}
	}
	return result
}

// checkVector возвращает false при любом расхождении.
func checkVector(v vector.Vector, reporter diag.Reporter) bool {
	ok := true

	got64, err := floatconv.ParseFloat64(v.Literal)
	if err != nil {
		diag.ReportError(reporter, diag.ChkParseError, v.Span,
			fmt.Sprintf("%q: %v", v.Literal, err))
		return false
	}
	if bits := math.Float64bits(got64); bits != v.Bits64 {
		ok = false
		diag.ReportError(reporter, diag.ChkMismatch64, v.Span,
			fmt.Sprintf("%q -> 0x%016X, want 0x%016X", v.Literal, bits, v.Bits64))
	}

	got32, err := floatconv.ParseFloat32(v.Literal)
	if err != nil {
		diag.ReportError(reporter, diag.ChkParseError, v.Span,
			fmt.Sprintf("%q: %v", v.Literal, err))
		return false
	}
	if bits := math.Float32bits(got32); bits != v.Bits32 {
		ok = false
		diag.ReportError(reporter, diag.ChkMismatch32, v.Span,
			fmt.Sprintf("%q -> 0x%08X, want 0x%08X", v.Literal, bits, v.Bits32))
	}
	return ok
}
