package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"parsefloat/internal/source"
)

// Options управляет прогоном: параллелизм, лимиты, кеш.
type Options struct {
	Jobs           int  // <=0 — GOMAXPROCS
	MaxDiagnostics int
	NoCache        bool
}

// listVectorFiles возвращает отсортированный список всех *.txt файлов в
// директории.
func listVectorFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".txt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ExpandArgs разворачивает аргументы командной строки: директории заменяются
// своими векторными файлами, файлы проходят как есть.
func ExpandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := listVectorFiles(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		} else {
			files = append(files, arg)
		}
	}
	return files, nil
}

// CheckFiles проверяет файлы параллельно, с кешем результатов по дайджесту
// содержимого. Порядок результатов совпадает с порядком files.
func CheckFiles(ctx context.Context, files []string, cache *ResultCache, opts Options) (*source.FileSet, []*CheckResult, error) {
	fileSet := source.NewFileSet()
	results := make([]*CheckResult, len(files))

	// Загружаем все файлы заранее: FileSet не рассчитан на конкурентный Add.
	ids := make([]source.FileID, len(files))
	loadErr := make([]error, len(files))
	for i, path := range files {
		ids[i], loadErr[i] = fileSet.Load(path)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(files), 1)))

	for i := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr[i] != nil {
				return loadErr[i]
			}

			file := fileSet.Get(ids[i])
			if cache != nil && !opts.NoCache {
				if cached, ok := cache.Get(file.Hash); ok && cached.Failed == 0 {
					// Перепроверяем только файлы с былыми провалами:
					// зелёный результат по тому же содержимому не меняется.
					results[i] = &CheckResult{
						Path:      file.Path,
						FileID:    ids[i],
						Total:     cached.Total,
						Failed:    0,
						Bag:       nil,
						FromCache: true,
					}
					return nil
				}
			}

			res := CheckFile(fileSet, ids[i], opts.MaxDiagnostics)
			results[i] = res
			if cache != nil && !opts.NoCache {
				// Ошибку кеша не превращаем в ошибку прогона.
				_ = cache.Put(file.Hash, &CachedResult{
					Total:  res.Total,
					Failed: res.Failed,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
