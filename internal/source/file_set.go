package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet manages the vector files of one run and resolves spans back to
// line/column positions.
type FileSet struct {
	files []File
	index map[string]FileID
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		index: make(map[string]FileID),
	}
}

// Add stores normalized content, computes the line index and digest, and
// returns a fresh FileID.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	lenFiles, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fs.index[path] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file (stdin, test) with the FileVirtual flag.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file metadata for the given ID.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// Resolve converts a span into line and column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// LineSpan возвращает Span всей строки с данным номером (1-based), без \n.
func (f *File) LineSpan(lineNum uint32) Span {
	start, end := f.lineBounds(lineNum)
	return Span{File: f.ID, Start: start, End: end}
}

// GetLine returns the text of the 1-based line, or "" when out of range.
func (f *File) GetLine(lineNum uint32) string {
	start, end := f.lineBounds(lineNum)
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

func (f *File) lineBounds(lineNum uint32) (start, end uint32) {
	if lineNum == 0 {
		return 0, 0
	}
	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return 0, 0
	}
	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}
	if end > lenContent {
		end = lenContent
	}
	return start, end
}
