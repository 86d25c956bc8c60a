package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/script-runtime/engine"
	"github.com/wippyai/script-runtime/journal"
	"github.com/wippyai/script-runtime/runtime"
)

var errNoScript = errors.New("no script given")

func main() {
	cfg, args, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, args); err != nil {
		if errors.Is(err, errNoScript) {
			printUsage()
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: run -e '<script>' [-engine js|lua]")
	fmt.Fprintln(os.Stderr, "       run <file> [-engine js|lua]")
	fmt.Fprintln(os.Stderr, "       run -i  (interactive mode)")
	fmt.Fprintln(os.Stderr, "       run -history <db> -last <n>  (show recent executions)")
}

func run(cfg Config, args []string) error {
	ctx := context.Background()

	logger := zap.NewNop()
	if cfg.Debug {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer dev.Sync()
		logger = dev
		engine.SetLogger(logger)
	}

	var rec journal.Recorder
	if cfg.History != "" {
		r, err := journal.NewSQLiteRecorder(cfg.History)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer r.Close()
		rec = r
	}

	if cfg.ShowLast > 0 {
		if rec == nil {
			return fmt.Errorf("-last needs a history database; set -history or SCRIPT_RUN_HISTORY")
		}
		return showHistory(ctx, rec, cfg.ShowLast)
	}

	if cfg.Interactive {
		return runInteractive(cfg, logger, rec)
	}

	script, err := resolveScript(cfg, args)
	if err != nil {
		return err
	}

	rt, err := runtime.NewWithConfig(ctx, &runtime.Config{
		Engine:   cfg.Engine,
		Logger:   logger,
		Recorder: rec,
	})
	if err != nil {
		return fmt.Errorf("create runtime: %w", err)
	}
	defer rt.Close(ctx)

	res, err := rt.Execute(ctx, script)
	if err != nil {
		return err
	}

	if res.Output != "" {
		fmt.Print(res.Output)
	}
	logger.Debug("script finished",
		zap.String("call_id", res.ID),
		zap.Duration("duration", res.Duration))
	return nil
}

// resolveScript picks the script source: -e wins, then a file argument,
// then piped stdin.
func resolveScript(cfg Config, args []string) (string, error) {
	if cfg.Script != "" {
		return cfg.Script, nil
	}

	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read script: %w", err)
		}
		return string(data), nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) != "" {
			return string(data), nil
		}
	}

	return "", errNoScript
}

func showHistory(ctx context.Context, rec journal.Recorder, limit int) error {
	entries, err := rec.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No history entries.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-4s %-12s %s  %dms\n",
			e.ID, e.Engine, e.Outcome, e.CreatedAt.Format(time.RFC3339), e.DurationMS)
		fmt.Printf("  script: %s\n", firstLine(e.Script))
		if e.Output != "" {
			fmt.Printf("  output: %s\n", firstLine(e.Output))
		}
		if e.Diagnostic != "" {
			fmt.Printf("  error:  %s\n", firstLine(e.Diagnostic))
		}
	}
	return nil
}

// firstLine trims a blob down to its first line for one-line summaries.
func firstLine(s string) string {
	s = strings.TrimRight(s, "\n")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
