package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/withgalaxy/tsxkit/pkg/server"
	"github.com/withgalaxy/tsxkit/pkg/watch"
)

var (
	servePort      int
	serveHost      string
	serveOpen      bool
	serveWatch     string
	serveOut       string
	serveSystemClp bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web studio",
	Long:  `Start the local web studio with the SVG and props pages`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to run server on (default from config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "host to bind to (default from config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open browser on start")
	serveCmd.Flags().StringVar(&serveWatch, "watch", "", "also watch this SVG directory")
	serveCmd.Flags().StringVarP(&serveOut, "out", "o", "icons", "output directory for --watch")
	serveCmd.Flags().BoolVar(&serveSystemClp, "system-clipboard", false, "copy on this machine instead of in the browser")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	var w *watch.Watcher
	if serveWatch != "" {
		w, err = newIconWatcher(cfg, serveWatch, serveOut)
		if err != nil {
			return err
		}
	}

	srv, err := server.New(server.Options{
		Config:          cfg,
		Verbose:         verbose,
		SystemClipboard: serveSystemClp,
		Watcher:         w,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx, func(addr string) {
		url := "http://" + addr
		status("🚀 Studio running at %s\n", url)
		if w != nil {
			status("👀 Watching %s → %s\n", w.Dir, w.Converter.OutDir)
		}
		status("\n")
		if serveOpen {
			openBrowser(url)
		}
	})
}
