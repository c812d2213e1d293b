// Package assets loads sprite images in the background and hands the results
// to the engine goroutine on demand.
//
// Loading is fire-and-forget: every file settles exactly once, either with an
// image or with an error, and nothing is retried. Results travel over a
// channel so the engine can drain them at the start of a tick without locks.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentLoads bounds the decoder goroutines of one batch.
const maxConcurrentLoads = 4

// Entry names one sprite to load.
type Entry struct {
	Key  string // Sprite key used by the renderer
	File string // Path relative to the batch file system
}

// Result is the settled outcome of one entry.
type Result struct {
	Key   string
	File  string
	Image image.Image // Nil when Err is set
	Err   error
}

// Batch is an in-flight set of loads.
type Batch struct {
	total   int
	settled int
	results chan Result
}

// EntriesFromMap turns a key->file map into entries sorted by key.
func EntriesFromMap(files map[string]string) []Entry {
	entries := make([]Entry, 0, len(files))
	for key, file := range files {
		entries = append(entries, Entry{Key: key, File: file})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// LoadDir starts loading entries from a directory on disk.
func LoadDir(ctx context.Context, basePath string, entries []Entry) *Batch {
	return Load(ctx, os.DirFS(basePath), entries)
}

// Load starts decoding every entry from fsys on background goroutines and
// returns immediately. A canceled context settles the remaining entries with
// the context error.
func Load(ctx context.Context, fsys fs.FS, entries []Entry) *Batch {
	b := &Batch{
		total:   len(entries),
		results: make(chan Result, len(entries)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	go func() {
		for _, e := range entries {
			g.Go(func() error {
				b.results <- decode(ctx, fsys, e)
				// Failures are reported per entry, never through the group,
				// so one bad file does not cancel its siblings.
				return nil
			})
		}
		//nolint:errcheck // Goroutines always return nil
		g.Wait()
		close(b.results)
	}()

	return b
}

// decode opens and decodes a single image.
func decode(ctx context.Context, fsys fs.FS, e Entry) Result {
	res := Result{Key: e.Key, File: e.File}

	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("assets: cannot load %s: %w", e.File, err)
		return res
	}

	f, err := fsys.Open(e.File)
	if err != nil {
		res.Err = fmt.Errorf("assets: cannot open %s: %w", e.File, err)
		return res
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		res.Err = fmt.Errorf("assets: cannot decode %s: %w", e.File, err)
		return res
	}

	res.Image = img
	return res
}

// Poll returns the results that settled since the last call without blocking,
// and whether every entry of the batch has now settled.
func (b *Batch) Poll() ([]Result, bool) {
	var out []Result
	for {
		select {
		case r, ok := <-b.results:
			if !ok {
				return out, true
			}
			out = append(out, r)
			b.settled++
		default:
			return out, b.settled == b.total
		}
	}
}

// Wait blocks until every entry settled and returns all remaining results.
func (b *Batch) Wait() []Result {
	var out []Result
	for r := range b.results {
		out = append(out, r)
		b.settled++
	}
	return out
}

// Total returns the number of entries in the batch.
func (b *Batch) Total() int {
	return b.total
}
