package diag

import "parsefloat/internal/source"

// Reporter — минимальный контракт получения диагностик от фаз проверки.
// Реализации: BagReporter (кладёт в Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// NopReporter глотает всё.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string, []Note) {}

// ReportError is a shortcut for SevError diagnostics without notes.
func ReportError(r Reporter, code Code, primary source.Span, msg string) {
	if r != nil {
		r.Report(code, SevError, primary, msg, nil)
	}
}

// ReportWarning is a shortcut for SevWarning diagnostics without notes.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) {
	if r != nil {
		r.Report(code, SevWarning, primary, msg, nil)
	}
}
