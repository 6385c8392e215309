// Package api exposes the conversion engine over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	"github.com/unitconv-cli/unitconv/internal/metrics"
	"github.com/unitconv-cli/unitconv/log"
	"github.com/unitconv-cli/unitconv/unit"
)

// Server serves /convert, /units, /healthz and /metrics.
type Server struct {
	httpServer *http.Server
	metrics    *metrics.Metrics
}

// ConversionResponse is the body of a successful /convert request.
type ConversionResponse struct {
	unit.Result
	Formatted string `json:"formatted"`
	Text      string `json:"text"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// NewServer creates a server listening on addr; metrics are registered on reg and exposed through gatherer.
func NewServer(addr string, reg prometheus.Registerer, gatherer prometheus.Gatherer) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		metrics: metrics.New(reg),
	}

	mux.HandleFunc("GET /convert", s.handleConvert)
	mux.HandleFunc("GET /units", handleUnits)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	log.Infof("http server starting on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		s.metrics.ConversionDuration.Observe(time.Since(start).Seconds())
	}()

	q := r.URL.Query()
	category, value, from, to := q.Get("category"), q.Get("value"), q.Get("from"), q.Get("to")

	fail := func(status int, outcome string, label string, body ErrorResponse) {
		s.metrics.Conversions.WithLabelValues(label, outcome).Inc()
		log.WithFields(logrus.Fields{
			"category": category,
			"from":     from,
			"to":       to,
			"outcome":  outcome,
		}).Warn(body.Error)
		writeJSON(w, status, body)
	}

	c, err := unit.ParseCategory(category)
	if err != nil {
		fail(http.StatusBadRequest, metrics.OutcomeBadRequest, "unknown", ErrorResponse{Error: err.Error()})
		return
	}

	v := 0.0
	if value != "" {
		v, err = strconv.ParseFloat(value, 64)
		if err != nil || !unit.IsFinite(v) {
			fail(http.StatusBadRequest, metrics.OutcomeBadRequest, c.String(), ErrorResponse{Error: "value must be a finite number"})
			return
		}
	}

	result, err := unit.Do(c, v, from, to)
	if err != nil {
		var invalid *unit.InvalidUnitError
		if errors.As(err, &invalid) {
			fail(http.StatusBadRequest, metrics.OutcomeInvalidUnit, c.String(), ErrorResponse{
				Error:      err.Error(),
				Suggestion: invalid.Suggestion,
			})
			return
		}
		if errors.Is(err, unit.ErrNotFinite) {
			fail(http.StatusUnprocessableEntity, metrics.OutcomeOutOfRange, c.String(), ErrorResponse{Error: err.Error()})
			return
		}
		fail(http.StatusBadRequest, metrics.OutcomeBadRequest, c.String(), ErrorResponse{Error: err.Error()})
		return
	}

	s.metrics.Conversions.WithLabelValues(c.String(), metrics.OutcomeSuccess).Inc()
	log.WithFields(logrus.Fields{"category": c.String(), "from": from, "to": to}).Debug("converted")

	writeJSON(w, http.StatusOK, ConversionResponse{
		Result:    result,
		Formatted: result.Formatted(),
		Text:      result.String(),
	})
}

func handleUnits(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, lo.SliceToMap(unit.Categories(), func(c unit.Category) (string, []string) {
		return c.String(), unit.Units(c)
	}))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// writeJSON encodes v before committing the status, so an encoding failure becomes a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Errorf("encode response: %v", err)
		status = http.StatusInternalServerError
		data = lo.Must(json.Marshal(ErrorResponse{Error: "failed to encode response"}))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		log.Errorf("write response: %v", err)
	}
}
