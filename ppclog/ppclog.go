// Package ppclog wraps log/slog with a handler that tags every record
// with the current run's image path and output directory, so that
// translator/recompiler diagnostics (unrecognized opcode, RC-bit audit
// miss, missing switch-table entry) can be told apart across runs
// without threading those values through every call site.
package ppclog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Handler decorates an underlying slog.Handler with a fixed set of
// run-scoped attributes and serializes writes to out.
type Handler struct {
	out  io.Writer
	h    slog.Handler
	mu   *sync.Mutex
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithAttrs(attrs), mu: h.mu}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithGroup(name), mu: h.mu}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.h.Handle(ctx, r)
}

// New builds a Handler writing text-formatted records to out, tagged
// with the run's image path and output directory.
func New(out io.Writer, imagePath, outDir string) *Handler {
	base := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := &Handler{out: out, h: base, mu: &sync.Mutex{}}
	return &Handler{
		out: out,
		h: h.h.WithAttrs([]slog.Attr{
			slog.String("image", imagePath),
			slog.String("out", outDir),
		}),
		mu: h.mu,
	}
}

// NewLogger is a convenience constructor returning a ready-to-use
// *slog.Logger for a run, defaulting to stderr when out is nil.
func NewLogger(out io.Writer, imagePath, outDir string) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}
	return slog.New(New(out, imagePath, outDir))
}
