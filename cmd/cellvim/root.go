package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/dshills/cellvim/internal/app"
	"github.com/dshills/cellvim/internal/config"
	"github.com/dshills/cellvim/internal/input/key"
	"github.com/dshills/cellvim/internal/input/vim"
	"github.com/dshills/cellvim/internal/project/watcher"
	"github.com/dshills/cellvim/internal/renderer"
	"github.com/dshills/cellvim/internal/renderer/backend"
)

// flags are the command line values that are not settings.
type flags struct {
	configFile  string
	keys        string
	lineNumbers bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var f flags

	cmd := &cobra.Command{
		Use:   "cellvim [file]",
		Short: "A modal line editor",
		Long: `cellvim edits one file with Normal and Insert modes.

Without a terminal, or with --keys, the key script is replayed and the
final screen is printed.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, f.configFile)
			if err != nil {
				return err
			}
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			return runEditor(cmd.Context(), cfg, file, f, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	defaults := config.Defaults()
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "",
		"config file (default: "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&f.keys, "keys", "",
		`key script to replay headless, e.g. "ihello<Esc>:wq<CR>"`)
	cmd.Flags().BoolVarP(&f.lineNumbers, "number", "n", false, "show line numbers")
	cmd.Flags().String("log-level", defaults.Log.Level, "log level (trace, debug, info, warn, error)")
	cmd.Flags().String("log-file", defaults.Log.File, "log file")
	cmd.Flags().Int("wrap-width", defaults.Editor.WrapWidth, "wrap typed text at this line length")

	_ = v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag("log.file", cmd.Flags().Lookup("log-file"))
	_ = v.BindPFlag("editor.wrap_width", cmd.Flags().Lookup("wrap-width"))

	return cmd
}

// loadConfig merges defaults, the config file, CELLVIM_ environment
// variables and flags. Without --config the user config is used, and
// created with the defaults when missing.
func loadConfig(v *viper.Viper, cfgFile string) (config.Config, error) {
	defaults := config.Defaults()
	v.SetDefault("watch", defaults.Watch)
	v.SetDefault("editor.wrap_width", defaults.Editor.WrapWidth)
	v.SetDefault("editor.history_size", defaults.Editor.HistorySize)
	v.SetDefault("editor.clipboard", defaults.Editor.Clipboard)
	v.SetDefault("history.file", defaults.History.File)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	v.SetEnvPrefix("CELLVIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			// Without a writable config dir the defaults still apply.
			_ = config.WriteDefault(path)
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runEditor(ctx context.Context, cfg config.Config, file string, f flags, in io.Reader, out io.Writer) error {
	logger, closeLog, err := app.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closeLog()

	opts := app.Options{
		Config:    cfg,
		File:      file,
		Clipboard: vim.SystemClipboard{},
		Logger:    logger,
	}

	if f.keys != "" || !isTerminal(in) {
		logger.Info().Str("file", file).Msg("headless start")
		return runHeadless(ctx, opts, f, in, out)
	}
	logger.Info().Str("file", file).Msg("start")
	return runTerminal(ctx, opts, f)
}

func isTerminal(in io.Reader) bool {
	fd, ok := in.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fd.Fd()))
}

// runHeadless replays a key script, from --keys or else from in, and
// prints the final frame.
func runHeadless(ctx context.Context, opts app.Options, f flags, in io.Reader, out io.Writer) error {
	script := f.keys
	if script == "" {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading keys: %w", err)
		}
		script = strings.TrimRight(string(data), "\r\n")
	}

	src, err := key.NewScriptSource(script)
	if err != nil {
		return err
	}
	opts.Source = src

	a, err := app.New(ctx, opts)
	if err != nil {
		return err
	}
	if err := a.Run(ctx); err != nil {
		return err
	}

	textOpts := renderer.DefaultTextOptions()
	textOpts.LineNumbers = f.lineNumbers
	return renderer.NewText(out, textOpts).Render(renderer.Capture(a.Editor()))
}

func runTerminal(ctx context.Context, opts app.Options, f flags) error {
	t, err := backend.NewTerminal()
	if err != nil {
		return err
	}
	if err := t.Init(); err != nil {
		return err
	}
	defer t.Close()
	t.SetLineNumbers(f.lineNumbers)

	if opts.Config.Watch {
		w, err := watcher.NewFSNotifyWatcher()
		if err != nil {
			opts.Logger.Warn().Err(err).Msg("file watching disabled")
		} else {
			defer func() { _ = w.Close() }()
			opts.Watcher = w
		}
	}

	opts.Source = t
	opts.Renderer = t
	a, err := app.New(ctx, opts)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}
