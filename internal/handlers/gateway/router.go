// Package gateway exposes the arena service over JSON/HTTP
package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/wallet-arena/internal/errors"
	"github.com/KirkDiggler/wallet-arena/internal/handlers/arena/v1alpha1"
	"github.com/KirkDiggler/wallet-arena/internal/orchestrators/arena"
)

const (
	maxBodyBytes   = 1 << 20
	requestTimeout = 30 * time.Second
)

// Config holds dependencies for the gateway
type Config struct {
	ArenaService arena.Service
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil || c.ArenaService == nil {
		return errors.InvalidArgument("arena service is required")
	}
	return nil
}

type gateway struct {
	arenaService arena.Service
}

// NewRouter builds the HTTP routes
func NewRouter(cfg *Config) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &gateway{arenaService: cfg.ArenaService}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1/battles", func(r chi.Router) {
		r.Post("/", g.fight)
		r.Post("/verify", g.verify)
		r.Get("/{addr1}/{addr2}/{nonce}", g.getBattle)
	})

	return r, nil
}

func (g *gateway) fight(w http.ResponseWriter, r *http.Request) {
	var req v1alpha1.FightRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := g.arenaService.Fight(r.Context(), &arena.FightInput{
		Fighters:  req.Fighters,
		Nonce:     req.Nonce,
		SkipCache: req.SkipCache,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusCreated
	if out.Cached {
		status = http.StatusOK
	}
	writeJSON(w, status, &v1alpha1.FightResponse{Result: out.Result, Cached: out.Cached})
}

func (g *gateway) getBattle(w http.ResponseWriter, r *http.Request) {
	out, err := g.arenaService.GetBattle(r.Context(), &arena.GetBattleInput{
		Addresses: [2]string{chi.URLParam(r, "addr1"), chi.URLParam(r, "addr2")},
		Nonce:     chi.URLParam(r, "nonce"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &v1alpha1.GetBattleResponse{
		Result:    out.Result,
		CachedAt:  out.CachedAt.Unix(),
		ExpiresAt: out.ExpiresAt.Unix(),
	})
}

func (g *gateway) verify(w http.ResponseWriter, r *http.Request) {
	var req v1alpha1.VerifyBattleRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := g.arenaService.VerifyBattle(r.Context(), &arena.VerifyBattleInput{Result: req.Result})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &v1alpha1.VerifyBattleResponse{
		Valid:    out.Valid,
		Mismatch: out.Mismatch,
		Expected: out.Expected,
	})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request body"))
		return false
	}
	return true
}

type errorBody struct {
	Code    errors.Code    `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeInternal {
		slog.Error("Request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
	}

	writeJSON(w, code.HTTPStatus(), &errorBody{
		Code:    code,
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		slog.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
