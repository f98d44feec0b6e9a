package server

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/acme/autocert"

	"github.com/verdex-org/verdex/config"
	"github.com/verdex-org/verdex/engine"
)

// shutdownGrace is how long in-flight requests get to finish.
const shutdownGrace = 10 * time.Second

// Server serves the analytics API over HTTP.
type Server struct {
	cfg     *config.Config
	ectx    *engine.Context
	logger  *zap.Logger
	started time.Time
}

// New wires an engine context to the HTTP surface.
func New(cfg *config.Config, ectx *engine.Context, logger *zap.Logger) *Server {
	catalogPlants.Set(float64(ectx.Catalog().Len()))
	defaultClusterK.Set(float64(ectx.DefaultClusterK()))
	return &Server{cfg: cfg, ectx: ectx, logger: logger, started: time.Now()}
}

// NewLogger builds the structured logger at the configured level.
// Dev mode gets the human-readable console encoder, production gets JSON.
func NewLogger(level string, dev bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}

// Handler returns the full middleware chain around the route table.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.routes()
	h = withCORS(s.cfg.AllowedOrigins, h)
	h = withMetrics(h)
	h = withAccessLog(s.logger, h)
	h = withRequestID(h)
	return h
}

// Run serves until SIGINT/SIGTERM, then drains for up to 10 seconds.
// Dev mode binds plain HTTP on Listen; with a Domain set it serves HTTPS
// on :443 via Let's Encrypt plus an :80 redirect.
func (s *Server) Run() error {
	handler := s.Handler()
	errCh := make(chan error, 1)
	var srv *http.Server

	if s.cfg.DevMode || s.cfg.Domain == "" {
		srv = &http.Server{Addr: s.cfg.Listen, Handler: handler}
		s.logger.Info("serving HTTP",
			zap.String("addr", s.cfg.Listen),
			zap.Int("plants", s.ectx.Catalog().Len()))
		go func() { errCh <- srv.ListenAndServe() }()
	} else {
		certManager := autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(s.cfg.Domain),
			Cache:      autocert.DirCache(s.cfg.CertDir),
		}
		srv = &http.Server{
			Addr:    ":443",
			Handler: handler,
			TLSConfig: &tls.Config{
				GetCertificate: certManager.GetCertificate,
				MinVersion:     tls.VersionTLS12,
			},
		}

		redirect := &http.Server{
			Addr:    ":80",
			Handler: certManager.HTTPHandler(http.HandlerFunc(redirectHTTPS)),
		}
		go func() {
			if err := redirect.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				s.logger.Warn("redirect server", zap.Error(err))
			}
		}()

		s.logger.Info("serving HTTPS",
			zap.String("domain", s.cfg.Domain),
			zap.Int("plants", s.ectx.Catalog().Len()))
		go func() { errCh <- srv.ListenAndServeTLS("", "") }()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		s.logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func redirectHTTPS(w http.ResponseWriter, r *http.Request) {
	target := "https://" + r.Host + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}
