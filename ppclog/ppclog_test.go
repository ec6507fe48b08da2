package ppclog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerTagsImageAndOutDir(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "/images/default.bin", "/out/dir")
	logger.Info("loaded")

	out := buf.String()
	if !strings.Contains(out, "image=/images/default.bin") {
		t.Fatalf("expected the image path attribute, got: %s", out)
	}
	if !strings.Contains(out, "out=/out/dir") {
		t.Fatalf("expected the out dir attribute, got: %s", out)
	}
	if !strings.Contains(out, "loaded") {
		t.Fatalf("expected the log message, got: %s", out)
	}
}

func TestHandlerWithAttrsPreservesRunScopedTags(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, "img.bin", "out")
	logger := slog.New(h).With(slog.String("function", "sub_1000"))
	logger.Warn("unrecognized opcode")

	out := buf.String()
	if !strings.Contains(out, "image=img.bin") || !strings.Contains(out, "function=sub_1000") {
		t.Fatalf("expected both run-scoped and call-scoped attributes, got: %s", out)
	}
}
