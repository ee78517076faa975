// Package server exposes brand extraction and kit generation over
// HTTP: live identity extraction, logo/OG previews (both rendered PNGs
// and the raw HTML documents) and a zip download of the complete kit.
package server

import (
	"context"
	"log"
	"net/http"
	"time"
)

// DefaultCacheSize bounds the rendered-image cache.
const DefaultCacheSize = 50

// Options configures the HTTP server.
type Options struct {
	// Timeout applies to page and stylesheet fetches during extraction.
	Timeout time.Duration

	// CacheSize caps the rendered-image cache entries. Zero means
	// DefaultCacheSize.
	CacheSize int
}

// Server handles the brand kit HTTP API.
type Server struct {
	timeout time.Duration
	cache   *renderCache
	mux     *http.ServeMux
}

// New builds a server and registers its routes.
func New(opts Options) *Server {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	s := &Server{
		timeout: opts.Timeout,
		cache:   newRenderCache(size),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/extract", s.handleExtract)
	s.mux.HandleFunc("/api/effects", s.handleEffects)
	s.mux.HandleFunc("/preview/logo.html", s.handlePreviewLogoHTML)
	s.mux.HandleFunc("/preview/og.html", s.handlePreviewOGHTML)
	s.mux.HandleFunc("/preview/logo", s.handlePreviewLogo)
	s.mux.HandleFunc("/preview/og", s.handlePreviewOG)
	s.mux.HandleFunc("/download", s.handleDownload)

	return s
}

// Handler returns the server's routing handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
