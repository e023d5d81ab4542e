package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"tokmark/internal/config"
)

// bundleExts are the file extensions MarkDir picks up.
var bundleExts = map[string]bool{".json": true, ".tmb": true, ".msgpack": true}

// listBundleFiles returns the sorted list of bundle files under dir.
func listBundleFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && bundleExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// MarkDir marks every bundle under dir, jobs files at a time. Each bundle
// gets its own marker, so goroutines share no mutable state; results come
// back in path order. The first failure cancels the remaining work.
func MarkDir(ctx context.Context, dir string, cfg config.Config, jobs int) ([]*Result, error) {
	files, err := listBundleFiles(dir)
	if err != nil {
		return nil, err
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]*Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := MarkFile(path, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
