package platform

import (
	"encoding/json"
	stderrors "errors"
	"ink-functions/errors"
	"ink-functions/observability"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	maxBodyBytes      = 1 << 20
	executionIDHeader = "Function-Execution-Id"
)

// Verifier checks verification codes minted by the identity adapter.
type Verifier interface {
	Verify(oobCode string) (string, error)
}

// Server is the HTTP front door the hosting platform calls.
type Server struct {
	log      *slog.Logger
	registry *Registry
	metrics  *observability.Metrics
	health   *observability.Health
	verifier Verifier
	gatherer prometheus.Gatherer
}

func NewServer(log *slog.Logger, registry *Registry, metrics *observability.Metrics,
	health *observability.Health, verifier Verifier, gatherer prometheus.Gatherer) *Server {
	return &Server{
		log:      log,
		registry: registry,
		metrics:  metrics,
		health:   health,
		verifier: verifier,
		gatherer: gatherer,
	}
}

// Routes mounts every endpoint on a fresh router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/functions/{name}", s.HandleFunction)
	r.Get("/auth/verify-email", s.HandleVerifyEmail)
	r.Get("/healthz", s.HandleHealth)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// HandleFunction handles POST /functions/{name}.
func (s *Server) HandleFunction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	name := chi.URLParam(r, "name")
	executionID := uuid.NewString()
	w.Header().Set(executionIDHeader, executionID)
	log := s.log.With("function", name, "execution_id", executionID)

	code := s.invoke(w, r, name, log)

	s.metrics.ObserveInvocation(name, strconv.Itoa(code), time.Since(start))
	log.DebugContext(ctx, "Function finished", "code", code, "duration_ms", time.Since(start).Milliseconds())
}

func (s *Server) invoke(w http.ResponseWriter, r *http.Request, name string, log *slog.Logger) int {
	ctx := r.Context()

	fn, ok := s.registry.Get(name)
	if !ok {
		return writeError(w, http.StatusNotFound, "NOT_FOUND", errors.ErrUnknownFunc.Error()+": "+name)
	}

	var env envelope
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&env); err != nil {
		log.WarnContext(ctx, "Malformed envelope", "err", err)
		return writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed request body")
	}
	if env.ID != "" {
		log = log.With("event_id", env.ID, "event_type", env.Type)
	}

	res, err := fn.invoke(ctx, env)
	if err != nil {
		status, code := statusFor(err)
		log.WarnContext(ctx, "Function returned an error", "kind", fn.kind, "err", err)
		return writeError(w, status, code, err.Error())
	}

	if fn.kind == kindEvent {
		w.WriteHeader(http.StatusNoContent)
		return http.StatusNoContent
	}
	return writeJSON(w, http.StatusOK, map[string]any{"result": res})
}

// HandleVerifyEmail handles GET /auth/verify-email?oobCode=...
func (s *Server) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	oobCode := r.URL.Query().Get("oobCode")
	if oobCode == "" || s.verifier == nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "oobCode is required")
		return
	}
	email, err := s.verifier.Verify(oobCode)
	if err != nil {
		s.log.InfoContext(r.Context(), "Rejected verification code", "err", err)
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", errors.ErrInvalidToken.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}

// HandleHealth handles GET /healthz.
func (s *Server) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	writeJSON(w, http.StatusOK, s.health.Report())
}

// statusFor maps error kinds to the callable protocol statuses.
func statusFor(err error) (int, string) {
	switch {
	case stderrors.Is(err, errors.ErrInvalidPayload), stderrors.Is(err, errors.ErrValidation):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case stderrors.Is(err, errors.ErrModelNotFound):
		return http.StatusBadRequest, "FAILED_PRECONDITION"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) int {
	return writeJSON(w, status, map[string]errorBody{"error": {Status: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
	return status
}
