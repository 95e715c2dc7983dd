package gen

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Renderer turns a unit into source text.
type Renderer interface {
	Render(w io.Writer, f *File) error
}

// Writer renders units in parallel and writes them below the output
// directory, one directory per package segment.
type Writer struct {
	renderer Renderer
	outDir   string
	workers  int

	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics accumulates over every unit the writer has written.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
	RenderTime     time.Duration
	WriteTime      time.Duration
}

// NewWriter creates a writer that renders with r into outDir.
func NewWriter(r Renderer, outDir string) *Writer {
	return &Writer{
		renderer: r,
		outDir:   outDir,
		workers:  runtime.GOMAXPROCS(0),
		metrics:  &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns the generation metrics.
func (w *Writer) Metrics() *WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	m := *w.metrics
	return &m
}

// WriteAll renders and writes all units in parallel. It returns the paths
// of the written files in unit order.
func (w *Writer) WriteAll(ctx context.Context, files []*File) ([]string, error) {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return nil, NewGenerationError("write", w.outDir, "create output directory", err)
	}
	paths := make([]string, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for i, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			path, err := w.writeFile(f)
			paths[i] = path
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// writeFile renders a unit into memory first so a failed render leaves
// no partial file behind.
func (w *Writer) writeFile(f *File) (string, error) {
	fullPath := filepath.Join(w.outDir, filepath.FromSlash(f.Path()))

	start := time.Now()
	var buf bytes.Buffer
	if err := w.renderer.Render(&buf, f); err != nil {
		return "", NewGenerationError("render", f.Path(), "", err)
	}
	rendered := time.Since(start)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", NewGenerationError("write", f.Path(), "create directory", err)
	}
	start = time.Now()
	if err := os.WriteFile(fullPath, buf.Bytes(), 0o644); err != nil {
		return "", NewGenerationError("write", f.Path(), "", err)
	}
	written := time.Since(start)

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(buf.Len())
	w.metrics.RenderTime += rendered
	w.metrics.WriteTime += written
	w.mu.Unlock()

	return fullPath, nil
}

// Generate emits the graph and writes the units into the configured
// target directory.
func Generate(ctx context.Context, g *Graph, r Renderer) ([]string, error) {
	if g.Config == nil || g.Output().Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory in config")
	}
	out := g.Output()
	if r == nil {
		return nil, NewConfigError("Renderer", nil, "renderer cannot be nil")
	}
	w := NewWriter(r, out.Target)
	paths, err := w.WriteAll(ctx, Emit(g))
	if err != nil {
		return nil, err
	}
	m := w.Metrics()
	g.Logger.Debug().
		Int("files", m.FilesGenerated).
		Int64("bytes", m.TotalBytes).
		Dur("render", m.RenderTime).
		Dur("write", m.WriteTime).
		Str("target", out.Target).
		Msg("units written")
	return paths, nil
}
