// Package http exposes path extraction over a JSON HTTP API.
package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"

	"github.com/otabase/asnpath"
	"github.com/otabase/asnpath/pkg/extract"
	"github.com/otabase/asnpath/pkg/ports"
)

//go:embed openapi.yaml
var specYAML []byte

// Extractor defines the interface for the path extraction core.
type Extractor interface {
	Messages(ctx context.Context) ([]string, error)
	Extract(ctx context.Context, message string, targets extract.TargetSet) ([]extract.Path, error)
}

// Server handles the HTTP routes.
type Server struct {
	extractor Extractor
	logger    *slog.Logger
	metrics   *metrics
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the structured logger used by the handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler for the extractor.
func NewHandler(extractor Extractor, opts ...Option) http.Handler {
	server := &Server{
		extractor: extractor,
		logger:    slog.Default(),
		metrics:   newMetrics(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/messages", server.GetMessages)
	r.Post("/extract", server.Extract)
	r.Handle("/metrics", server.metrics.handler())

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(specYAML)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>asnpath API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// ExtractRequest is the POST /extract request body.
type ExtractRequest struct {
	Message string   `json:"message"`
	Targets []string `json:"targets,omitempty"`
}

// ExtractResponse is the POST /extract response body.
type ExtractResponse struct {
	Message string         `json:"message"`
	Count   int            `json:"count"`
	Paths   []extract.Path `json:"paths"`
}

// Extract handles the POST /extract request.
func (s *Server) Extract(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, "extract", http.StatusBadRequest, "Invalid request body")
		s.logger.Warn("Extract: Invalid request body", "error", err)
		return
	}
	if body.Message == "" {
		s.fail(w, "extract", http.StatusBadRequest, "Missing message name")
		return
	}

	targets := extract.AllTargets()
	if len(body.Targets) > 0 {
		var err error
		targets, err = extract.ParseTargets(body.Targets)
		if err != nil {
			s.fail(w, "extract", http.StatusBadRequest, fmt.Sprintf("Invalid targets: %v", err))
			s.logger.Warn("Extract: Invalid targets", "error", err)
			return
		}
	}

	paths, err := s.extractor.Extract(r.Context(), body.Message, targets)
	if err != nil {
		var budgetErr *extract.BudgetError
		switch {
		case errors.Is(err, ports.ErrMessageNotFound):
			s.fail(w, "extract", http.StatusNotFound, fmt.Sprintf("Unknown message: %s", body.Message))
		case errors.As(err, &budgetErr):
			s.metrics.budgetTrips.Inc()
			s.fail(w, "extract", http.StatusUnprocessableEntity, fmt.Sprintf("Extract error: %v", err))
			s.logger.Warn("Extract: Budget exhausted", "message", body.Message, "limit", budgetErr.Limit)
		default:
			s.fail(w, "extract", http.StatusInternalServerError, fmt.Sprintf("Extract error: %v", err))
			s.logger.Error("Extract failed", "message", body.Message, "error", err)
		}
		return
	}

	s.metrics.observe("extract", http.StatusOK, time.Since(start))
	s.metrics.pathsExtracted.Add(float64(len(paths)))

	if paths == nil {
		paths = []extract.Path{}
	}
	resp := ExtractResponse{Message: body.Message, Count: len(paths), Paths: paths}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Extract response encode failed", "error", err)
	}
}

// GetMessages handles the GET /messages request.
func (s *Server) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.extractor.Messages(r.Context())
	if err != nil {
		s.fail(w, "messages", http.StatusInternalServerError, fmt.Sprintf("Messages error: %v", err))
		s.logger.Error("Messages failed", "error", err)
		return
	}
	if messages == nil {
		messages = []string{}
	}

	s.metrics.observe("messages", http.StatusOK, 0)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(messages); err != nil {
		s.logger.Error("Messages response encode failed", "error", err)
	}
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"app":         "asnpath-http",
		"version":     strings.TrimSpace(asnpath.Version),
		"api_version": apiVersion(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) fail(w http.ResponseWriter, handler string, code int, msg string) {
	s.metrics.observe(handler, code, 0)
	http.Error(w, msg, code)
}

var apiVersionOnce struct {
	sync.Once
	version string
}

// apiVersion reads the version out of the embedded OpenAPI document.
func apiVersion() string {
	apiVersionOnce.Do(func() {
		apiVersionOnce.version = "unknown"
		doc, err := openapi3.NewLoader().LoadFromData(specYAML)
		if err != nil {
			slog.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		if doc.Info != nil {
			apiVersionOnce.version = doc.Info.Version
		}
	})
	return apiVersionOnce.version
}
