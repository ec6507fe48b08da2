// Command ppcrecomp reads a guest executable image and a switch-table
// side file, and emits one ppc_recomp.N.cpp source file per batch of
// recompiled functions plus the shared headers a host build links
// against.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"

	"github.com/xenonrecomp/ppcrecomp/config"
	"github.com/xenonrecomp/ppcrecomp/disasm"
	"github.com/xenonrecomp/ppcrecomp/guest"
	"github.com/xenonrecomp/ppcrecomp/image"
	"github.com/xenonrecomp/ppcrecomp/ppclog"
	"github.com/xenonrecomp/ppcrecomp/recompile"
	"github.com/xenonrecomp/ppcrecomp/sink"
	"github.com/xenonrecomp/ppcrecomp/switchtable"
)

func main() {
	optImage := getopt.StringLong("image", 'i', "", "Path to the guest executable image (flat container)")
	optOut := getopt.StringLong("out", 'o', "out", "Output directory for recompiled sources")
	optSwitchTable := getopt.StringLong("switch-table", 's', "", "Path to the switch-table TOML document")
	optConfig := getopt.StringLong("config", 'c', "", "Path to the recompiler config TOML document")
	optSetJmp := getopt.Uint64Long("set-jmp", 0, 0, "Guest address of setjmp, for call-site lowering")
	optLongJmp := getopt.Uint64Long("long-jmp", 0, 0, "Guest address of longjmp, for call-site lowering")
	optHelp := getopt.BoolLong("help", 'h', "Show usage")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}
	if *optImage == "" {
		fmt.Fprintln(os.Stderr, "ppcrecomp: --image is required")
		getopt.Usage()
		os.Exit(2)
	}

	logger := ppclog.NewLogger(os.Stderr, *optImage, *optOut)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *optImage, *optOut, *optSwitchTable, *optConfig, uint32(*optSetJmp), uint32(*optLongJmp)); err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, imagePath, outDir, switchTablePath, configPath string, setJmp, longJmp uint32) error {
	var loader image.Loader = image.FlatLoader{}
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	logger.Info("image loaded",
		slog.Int("functions", len(img.Functions)),
		slog.Int("symbols", len(img.Symbols)))

	switches := switchtable.NewStore()
	if switchTablePath != "" {
		switches, err = switchtable.Load(switchTablePath)
		if err != nil {
			return fmt.Errorf("load switch table: %w", err)
		}
	}

	cfg := guest.DefaultConfig()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if setJmp != 0 {
		cfg.SetJmpAddress = setJmp
	}
	if longJmp != 0 {
		cfg.LongJmpAddress = longJmp
	}

	out, err := sink.New(outDir)
	if err != nil {
		return fmt.Errorf("open output directory: %w", err)
	}

	var dec disasm.Disassembler = disasm.Decoder{}
	incomplete := 0
	for _, fn := range img.Functions {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		name, ok := img.SymbolAt(fn.Base)
		fname := fmt.Sprintf("sub_%08X", fn.Base)
		if ok {
			fname = name.Name
		}

		result := recompile.Function(ctx, cfg, img, dec, switches, logger, fn, fname)
		if !result.Complete {
			incomplete++
		}
		if err := out.Add(sink.Function{Name: result.Name, Lines: result.Lines}); err != nil {
			return fmt.Errorf("write %s: %w", result.Name, err)
		}
	}

	if err := out.Finish(); err != nil {
		return fmt.Errorf("finish output: %w", err)
	}

	logger.Info("recompilation complete",
		slog.Int("total_functions", len(img.Functions)),
		slog.Int("incomplete_functions", incomplete))
	return nil
}
