package driver

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Suite describes a parsefloat.toml manifest: a named set of vector files
// with run defaults, so a whole conformance suite launches from one path.
type Suite struct {
	Name  string
	Files []string // уже с каталогом манифеста в начале пути
	Jobs  int
}

type suiteManifest struct {
	Suite struct {
		Name  string   `toml:"name"`
		Files []string `toml:"files"`
		Jobs  int      `toml:"jobs"`
	} `toml:"suite"`
}

// LoadSuite parses a suite manifest and resolves its file globs against the
// manifest's directory.
func LoadSuite(path string) (*Suite, error) {
	var m suiteManifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("suite") {
		return nil, fmt.Errorf("%s: missing [suite]", path)
	}
	if len(m.Suite.Files) == 0 {
		return nil, fmt.Errorf("%s: [suite].files is empty", path)
	}

	dir := filepath.Dir(path)
	s := &Suite{
		Name: m.Suite.Name,
		Jobs: m.Suite.Jobs,
	}
	for _, pattern := range m.Suite.Files {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("%s: bad pattern %q: %w", path, pattern, err)
		}
		s.Files = append(s.Files, matches...)
	}
	if len(s.Files) == 0 {
		return nil, fmt.Errorf("%s: no files matched", path)
	}
	return s, nil
}
