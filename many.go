// SPDX-License-Identifier: EPL-2.0

package raff

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/raff/container"
)

// Result is one file's outcome of a ScanMany call.
type Result struct {
	Path   string
	Master container.Master
	Chunks []*container.Chunk
}

// ScanMany walks several container files concurrently, with parallelism
// bounded by the CPU count. The first failure cancels the remaining work
// and is returned, annotated with the offending path.
func ScanMany(ctx context.Context, cfg container.Config, paths ...string) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Result, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			master, chunks, err := ScanFile(path, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = &Result{Path: path, Master: master, Chunks: chunks}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
