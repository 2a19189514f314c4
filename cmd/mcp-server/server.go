package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	cas "github.com/njchilds90/gocas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const requestIDHeader = "X-Request-Id"

type server struct {
	cfg    *Config
	logger *zap.Logger
	router *mux.Router
}

func newServer(cfg *Config, logger *zap.Logger) *server {
	s := &server{cfg: cfg, logger: logger, router: mux.NewRouter()}
	s.router.HandleFunc("/tool", s.apiHandler(s.handleTool)).Methods(http.MethodPost)
	s.router.HandleFunc("/schema", s.apiHandler(s.handleSchema)).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.apiHandler(s.handleHealth)).Methods(http.MethodGet)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	})
	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

// apiHandler tags every request with an id and turns handler panics into 500s.
func (s *server) apiHandler(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		log := s.logger.With(zap.String("request_id", id))

		defer func() {
			if rec := recover(); rec != nil {
				log.Error("recovered handler panic",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			}
		}()

		log.Debug("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		h(w, r)
	}
}

func (s *server) handleTool(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	defer r.Body.Close()

	// The JSON decoder flattens reader errors into text, so the size check
	// runs on the raw read.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{
				"error": fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	dec.UseNumber()

	var req cas.ToolRequest
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if dec.More() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: trailing data"})
		return
	}

	start := time.Now()
	resp := cas.HandleToolCall(req)
	fields := []zap.Field{
		zap.String("tool", req.Tool),
		zap.String("request_id", w.Header().Get(requestIDHeader)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if resp.Error != "" {
		s.logger.Info("tool call failed", append(fields, zap.String("error", resp.Error))...)
	} else {
		s.logger.Debug("tool call", fields...)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, cas.MCPToolSpec())
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// serve runs the HTTP server on ln until ctx is cancelled, then drains
// in-flight requests for at most cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg *Config, logger *zap.Logger, ln net.Listener) error {
	srv := &http.Server{
		Handler:           newServer(cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
