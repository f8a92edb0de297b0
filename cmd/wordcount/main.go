// Command wordcount prints how often each word occurs in a text file.
//
// Usage:
//
//	wordcount [flags] <file>
//
//	wordcount notes.txt                      # "word: count" lines
//	wordcount -format yaml notes.txt         # YAML mapping
//	wordcount -config wordcount.toml -watch notes.txt
//	wordcount -schema                        # print the config JSON schema
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/randalmurphal/wordkit/wordcount"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath string
	format     string
	delims     string
	fold       bool
	watch      bool
	schema     bool
	logLevel   string
	poll       time.Duration
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wordcount", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: wordcount [flags] <file>")
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "YAML or TOML config file")
	fs.StringVar(&opts.format, "format", "", "report format: text or yaml")
	fs.StringVar(&opts.delims, "delims", "", "delimiter characters (default: .,!? and whitespace)")
	fs.BoolVar(&opts.fold, "fold", false, "count words case-insensitively")
	fs.BoolVar(&opts.watch, "watch", false, "re-report whenever the file changes")
	fs.BoolVar(&opts.schema, "schema", false, "print the config JSON schema and exit")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.DurationVar(&opts.poll, "poll", 0, "poll interval when file events are unavailable")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.schema {
		data, err := wordcount.ConfigSchema()
		if err != nil {
			fmt.Fprintf(stderr, "wordcount: %v\n", err)
			return exitError
		}
		fmt.Fprintln(stdout, string(data))
		return exitOK
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	path := fs.Arg(0)

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		fmt.Fprintf(stderr, "wordcount: %v\n", err)
		return exitError
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	defer func() { _ = logger.Sync() }()

	counter := wordcount.NewCounterFromConfig(cfg)
	format, err := cfg.ReportFormat()
	if err != nil {
		fmt.Fprintf(stderr, "wordcount: %v\n", err)
		return exitError
	}

	if !cfg.Watch {
		table, err := counter.CountFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "wordcount: %v\n", err)
			return exitError
		}
		logger.Debug("counted", zap.String("path", path), zap.Int("words", table.Size()))
		if err := wordcount.WriteReport(stdout, table, format); err != nil {
			fmt.Fprintf(stderr, "wordcount: %v\n", err)
			return exitError
		}
		return exitOK
	}

	first := true
	w := wordcount.NewWatcher(path, counter, func(table *wordcount.Table) {
		if !first && format == wordcount.FormatYAML {
			fmt.Fprintln(stdout, "---")
		}
		first = false
		if err := wordcount.WriteReport(stdout, table, format); err != nil {
			logger.Error("write report", zap.Error(err))
		}
	},
		wordcount.WithLogger(logger),
		wordcount.WithPollInterval(cfg.PollInterval),
	)

	logger.Info("watching", zap.String("path", path))
	if err := w.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "wordcount: %v\n", err)
		return exitError
	}
	return exitOK
}

// loadConfig layers explicitly set flags over the config file (or defaults).
func loadConfig(fs *flag.FlagSet, opts options) (*wordcount.Config, error) {
	cfg := wordcount.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := wordcount.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = opts.format
		case "delims":
			cfg.Delimiters = opts.delims
		case "fold":
			cfg.FoldCase = opts.fold
		case "watch":
			cfg.Watch = opts.watch
		case "log-level":
			cfg.LogLevel = opts.logLevel
		case "poll":
			cfg.PollInterval = opts.poll
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level, format string, out io.Writer) *zap.Logger {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info":
		lvl = zapcore.InfoLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.WarnLevel
	}

	var encoder zapcore.Encoder
	if format == "json" {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), zap.NewAtomicLevelAt(lvl))
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
}
