package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/withgalaxy/tsxkit/pkg/config"
	"github.com/withgalaxy/tsxkit/pkg/studio"
	"github.com/withgalaxy/tsxkit/pkg/watch"
)

var (
	watchOut    string
	watchColor  string
	watchPrefix string
)

var watchCmd = &cobra.Command{
	Use:   "watch <svgdir>",
	Short: "Convert a directory of SVG files and keep it in sync",
	Long: `Convert every .svg file in a directory into <out>/<Name>.tsx, then keep
converting files as they are created or changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "icons", "output directory")
	watchCmd.Flags().StringVar(&watchColor, "color", "", "default color (default from config)")
	watchCmd.Flags().StringVar(&watchPrefix, "prefix", "", "component name prefix (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w, err := newIconWatcher(cfg, args[0], watchOut)
	if err != nil {
		return err
	}

	written, err := w.Converter.ConvertAll(w.Dir)
	if err != nil {
		status("⚠️  %v\n", err)
	}
	status("📦 Converted %d icon(s) into %s\n", len(written), w.Converter.OutDir)
	status("👀 Watching %s (Ctrl+C to stop)\n", w.Dir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.Run(ctx)
}

func newIconWatcher(cfg *config.Config, dir, out string) (*watch.Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("svg dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("svg dir: %s is not a directory", dir)
	}

	if out == "" {
		out = "icons"
	}
	if !filepath.IsAbs(out) {
		if root, err := projectDir(); err == nil {
			out = filepath.Join(root, out)
		}
	}

	color := cfg.Icon.DefaultColor
	if watchColor != "" {
		color = watchColor
	}
	prefix := cfg.Icon.Prefix
	if watchPrefix != "" {
		prefix = watchPrefix
	}

	conv := &watch.Converter{
		OutDir:   out,
		Prefix:   prefix,
		Color:    color,
		Options:  studio.IconOptions(cfg),
		Notifier: terminalNotifier(),
	}
	return watch.NewWatcher(dir, conv), nil
}
