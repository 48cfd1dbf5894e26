// Package vector reads conformance vector files: one test per line, four
// whitespace-separated fields
//
//	<f16-hex> <f32-hex> <f64-hex> <literal>
//
// where the hex fields are the IEEE-754 bit patterns expected after parsing
// literal. The f16 field is carried for suite compatibility; the parser has
// no half-precision target.
package vector

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"parsefloat/internal/diag"
	"parsefloat/internal/source"
)

// Vector — одна строка набора: ожидаемые биты и сам литерал.
type Vector struct {
	Bits16  uint16
	Bits32  uint32
	Bits64  uint64
	Literal string
	Span    source.Span // строка целиком, для диагностик
}

// ParseFile extracts every vector from f. Blank lines and #-comments are
// skipped; malformed lines are reported and dropped, parsing continues.
func ParseFile(f *source.File, reporter diag.Reporter) []Vector {
	var out []Vector
	lines := strings.Split(string(f.Content), "\n")
	for idx, line := range lines {
		lineNum, err := safecast.Conv[uint32](idx + 1)
		if err != nil {
			panic(fmt.Errorf("line number overflow: %w", err))
		}
		span := f.LineSpan(lineNum)

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) != 4 {
			diag.ReportError(reporter, diag.VecBadLine, span,
				fmt.Sprintf("expected 4 fields, got %d", len(fields)))
			continue
		}
		v := Vector{Literal: fields[3], Span: span}
		b16, ok := parseBits(fields[0], 16, span, reporter)
		if !ok {
			continue
		}
		b32, ok := parseBits(fields[1], 32, span, reporter)
		if !ok {
			continue
		}
		b64, ok := parseBits(fields[2], 64, span, reporter)
		if !ok {
			continue
		}
		v.Bits16 = uint16(b16)
		v.Bits32 = uint32(b32)
		v.Bits64 = b64
		out = append(out, v)
	}
	return out
}

func parseBits(field string, width int, span source.Span, reporter diag.Reporter) (uint64, bool) {
	if len(field) != width/4 {
		diag.ReportError(reporter, diag.VecBadWidth, span,
			fmt.Sprintf("bit field %q must be %d hex digits", field, width/4))
		return 0, false
	}
	bits, err := strconv.ParseUint(field, 16, width)
	if err != nil {
		diag.ReportError(reporter, diag.VecBadBits, span,
			fmt.Sprintf("bit field %q: %v", field, err))
		return 0, false
	}
	return bits, true
}
