// Package server exposes the schedule engine over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/iwvelando/fleet-forecast/internal/cache"
	"github.com/iwvelando/fleet-forecast/internal/config"
	"github.com/iwvelando/fleet-forecast/internal/forecast"
	"github.com/iwvelando/fleet-forecast/internal/metrics"
	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/datetime"
	"github.com/iwvelando/fleet-forecast/pkg/depreciation"
	"github.com/iwvelando/fleet-forecast/pkg/output"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

const shutdownTimeout = 10 * time.Second

// Computer is the engine as seen by the handlers. *cache.Cache satisfies it.
type Computer interface {
	forecast.Computer
	ComputeWithStatus(ctx context.Context, params forecast.Parameters) (forecast.Result, bool, error)
}

type handler struct {
	logger        *zap.Logger
	computer      Computer
	maxUploadSize int64
	version       string
}

type requestIDKey struct{}

// NewHandler constructs the HTTP handler that serves the schedule API. A nil
// computer runs the engine without memoization.
func NewHandler(logger *zap.Logger, computer Computer, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if computer == nil {
		computer = cache.New(nil, cache.WithLogger(logger))
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, computer: computer, maxUploadSize: maxUploadSize, version: trimmedVersion}

	router := mux.NewRouter()
	router.Use(h.requestID, h.instrument)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/schedule", h.handleSchedule).Methods(http.MethodPost)
	api.HandleFunc("/forecast", h.handleForecast).Methods(http.MethodPost)
	api.HandleFunc("/version", h.handleVersion).Methods(http.MethodGet)

	router.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

// Serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests.
func Serve(ctx context.Context, logger *zap.Logger, address string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", "server.Serve"),
			zap.String("address", address),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("server shutting down", zap.String("op", "server.Serve"))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

type scheduleRequest struct {
	forecast.Parameters
	StartDate string `json:"startDate,omitempty"`
}

type scheduleResponse struct {
	Parameters forecast.Parameters `json:"parameters"`
	Schedule   forecast.Schedule   `json:"schedule"`
	Summary    forecast.Summary    `json:"summary"`
	Labels     []string            `json:"labels,omitempty"`
	Cached     bool                `json:"cached"`
	Duration   string              `json:"duration"`
}

type forecastResponse struct {
	Fleets   []forecast.Forecast `json:"fleets"`
	Warnings []string            `json:"warnings,omitempty"`
	CSV      string              `json:"csv"`
	Duration string              `json:"duration"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedule"
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req scheduleRequest
	if err := decoder.Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode parameters: %v", err), op)
		return
	}

	result, cached, err := h.computer.ComputeWithStatus(r.Context(), req.Parameters)
	if err != nil {
		h.respondError(w, r, statusFor(err), err.Error(), op)
		return
	}

	var labels []string
	if req.StartDate != "" {
		labels, err = datetime.PeriodLabels(req.StartDate, len(result.Schedule))
		if err != nil {
			h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid startDate: %v", err), op)
			return
		}
	}

	h.logger.Debug("schedule computed",
		zap.String("op", op),
		zap.String("requestID", requestIDFrom(r.Context())),
		zap.Bool("cached", cached),
		zap.Int("periods", len(result.Schedule)),
	)

	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Parameters: result.Parameters,
		Schedule:   result.Schedule,
		Summary:    result.Summary,
		Labels:     labels,
		Cached:     cached,
		Duration:   time.Since(start).String(),
	})
}

func (h *handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleForecast"
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}
	warnings := cfg.ValidateConfiguration()

	fleets, err := cfg.ForecastFleets()
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	results, err := forecast.GetForecast(r.Context(), h.logger, h.computer, fleets)
	if err != nil {
		h.respondError(w, r, statusFor(err), fmt.Sprintf("failed to compute forecast: %v", err), op)
		return
	}
	if results == nil {
		results = []forecast.Forecast{}
	}

	csvData, err := output.CsvString(results)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to render CSV: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("forecast computed",
		zap.String("op", op),
		zap.String("requestID", requestIDFrom(r.Context())),
		zap.Int("fleets", len(results)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, forecastResponse{
		Fleets:   results,
		Warnings: warnings,
		CSV:      csvData,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps engine errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, forecast.ErrInvalidParameter), errors.Is(err, depreciation.ErrUnknownModel):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.String("requestID", requestIDFrom(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON encodes payload before committing the status so an encoding
// failure still reaches the client as a 500.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]string{"error": "failed to encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// requestID propagates the caller's X-Request-ID or assigns a new one.
func (h *handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// instrument writes the access log and request metrics.
func (h *handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if template, err := current.GetPathTemplate(); err == nil {
				route = template
			}
		}
		metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(recorder.status)).Inc()

		h.logger.Info("request served",
			zap.String("op", "server.instrument"),
			zap.String("requestID", requestIDFrom(r.Context())),
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
