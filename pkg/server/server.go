// Package server runs the local web studio: the SVG and props pages, their
// JSON actions and the toast websocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/withgalaxy/tsxkit/pkg/clipboard"
	"github.com/withgalaxy/tsxkit/pkg/config"
	"github.com/withgalaxy/tsxkit/pkg/notify"
	"github.com/withgalaxy/tsxkit/pkg/render"
	"github.com/withgalaxy/tsxkit/pkg/security"
	"github.com/withgalaxy/tsxkit/pkg/watch"
)

type Options struct {
	Config  *config.Config
	Verbose bool
	// SystemClipboard copies on the machine running the server instead of
	// leaving the copy to the browser.
	SystemClipboard bool
	// Watcher, when set, runs alongside the HTTP server. Its toasts and
	// generated files are pushed to every open page.
	Watcher *watch.Watcher
}

type Server struct {
	cfg     *config.Config
	verbose bool
	sysClip bool
	watcher *watch.Watcher

	hub   *notify.Hub
	md    *render.Renderer
	pages *pageSet
}

func New(opts Options) (*Server, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	md := render.New(cfg.Markdown.SyntaxHighlight)
	pages, err := loadPages(md)
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		verbose: opts.Verbose,
		sysClip: opts.SystemClipboard,
		watcher: opts.Watcher,
		hub:     notify.NewHub(),
		md:      md,
		pages:   pages,
	}

	if s.watcher != nil && s.watcher.Converter != nil {
		conv := s.watcher.Converter
		conv.Notifier = notify.Multi(conv.Notifier, s.hub)
		prev := conv.OnGenerated
		conv.OnGenerated = func(path, content string) {
			if prev != nil {
				prev(path, content)
			}
			s.hub.Generated(path, content)
		}
	}

	return s, nil
}

func (s *Server) Hub() *notify.Hub {
	return s.hub
}

// Handler builds the studio router.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()

	if s.verbose {
		r.Use(middleware.Logger)
	}
	r.Use(
		middleware.Recoverer,
		security.Headers(s.cfg.Security.Headers),
	)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/svg", http.StatusFound)
	})
	r.Get("/svg", s.handleSVGPage)
	r.Get("/props", s.handlePropsPage)
	r.Handle("/static/*", staticHandler())
	r.Get("/__toasts", s.hub.HandleWebSocket)

	r.Route("/api", func(r chi.Router) {
		r.Use(
			security.CSRF(s.cfg.Security.CSRF),
			security.BodyLimit(s.cfg.Security.BodyLimit),
		)
		r.Get("/kinds", s.handleKinds)
		r.Post("/svg", s.handleSVG)
		r.Post("/props", s.handleProps)
	})

	return r
}

func (s *Server) clipboard() (clipboard.Writer, *clipboard.Deferred) {
	if s.sysClip {
		return clipboard.System{}, nil
	}
	d := &clipboard.Deferred{}
	return d, d
}

// Serve listens on the configured address and blocks until ctx is
// cancelled. ready, when non-nil, receives the bound address.
func (s *Server) Serve(ctx context.Context, ready func(addr string)) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.serve(ctx, ln, ready)
}

func (s *Server) serve(ctx context.Context, ln net.Listener, ready func(addr string)) error {
	s.hub.Start()
	defer s.hub.Close()

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watcher != nil {
		eg.Go(func() error {
			if _, err := s.watcher.Converter.ConvertAll(s.watcher.Dir); err != nil {
				log.Printf("initial conversion: %v", err)
			}
			return s.watcher.Run(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if ready != nil {
		ready(ln.Addr().String())
	}

	return eg.Wait()
}
