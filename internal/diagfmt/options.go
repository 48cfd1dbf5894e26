package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   bool // печатать ли исходную строку с подчёркиванием
	ShowNotes bool
}
