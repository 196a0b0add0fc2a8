package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"tangent/internal/source"
)

// ScriptExt is the file extension ParseDir picks up.
const ScriptExt = ".tan"

type DirResult struct {
	FileSet *source.FileSet
	// Files holds one ParseResult per script, in path order. All entries
	// share the FileSet; builders and bags are per file, so the parses are
	// fully isolated from each other.
	Files []*ParseResult
}

// ParseDir loads every script directly under dir and parses them in
// parallel. Files are loaded into the shared FileSet up front; only the
// read-only parse phase runs concurrently.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, workers int) (*DirResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read script directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ScriptExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	fs := source.NewFileSetWithBase(dir)
	ids := make([]source.FileID, len(paths))
	for i, path := range paths {
		ids[i], err = fs.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	results := make([]*ParseResult, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g.SetLimit(workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = parseFile(fs, fs.Get(id), maxDiagnostics)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DirResult{FileSet: fs, Files: results}, nil
}
