package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	channelService "github.com/kentcanonigo/slack-search-generator/internal/modules/channel/service"
	queryDomain "github.com/kentcanonigo/slack-search-generator/internal/modules/query/domain"
	queryService "github.com/kentcanonigo/slack-search-generator/internal/modules/query/service"
	"github.com/kentcanonigo/slack-search-generator/internal/shared/config"
	sharedErrors "github.com/kentcanonigo/slack-search-generator/internal/shared/errors"
	sloghttp "github.com/samber/slog-http"
)

// Server exposes the query builder and channel list over HTTP
type Server struct {
	cfg            *config.Config
	queryService   *queryService.Service
	channelService *channelService.Service
	logger         *slog.Logger
	server         *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, queryService *queryService.Service, channelService *channelService.Service) *Server {
	s := &Server{
		cfg:            cfg,
		queryService:   queryService,
		channelService: channelService,
		logger:         slog.Default(),
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.server.Handler = s.Handler()
	return s
}

// SetLogger sets the logger. Call before Start.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
	s.server.Handler = s.Handler()
}

// Handler builds the routed handler with logging and recovery middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/query", s.handleQuery)
	mux.HandleFunc("GET /api/channels", s.handleListChannels)
	mux.HandleFunc("POST /api/channels", s.handleAddChannel)
	mux.HandleFunc("PUT /api/channels/{name}", s.handleRenameChannel)
	mux.HandleFunc("DELETE /api/channels/{name}", s.handleDeleteChannel)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "addr", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server. A later Start returns immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// maxBodyBytes caps channel request bodies
const maxBodyBytes = 4 << 10

type channelRequest struct {
	Name string `json:"name"`
}

func decodeChannelRequest(w http.ResponseWriter, r *http.Request) (channelRequest, bool) {
	var req channelRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
			return req, false
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return req, false
	}
	return req, true
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := queryDomain.RawSelection{
		Channel:     q.Get("channel"),
		User:        q.Get("user"),
		FileType:    q.Get("file_type"),
		Keywords:    q.Get("keywords"),
		ExactPhrase: q.Get("exact") == "true" || q.Get("exact") == "1",
		DateMode:    q.Get("date_mode"),
		DateFormat:  q.Get("date_format"),
		Date:        q.Get("date"),
		After:       q.Get("after"),
		Before:      q.Get("before"),
	}

	query, err := s.queryService.Render(raw)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"query": query})
}

func (s *Server) handleListChannels(w http.ResponseWriter, r *http.Request) {
	names, err := s.channelService.Names(s.cfg.SortChannels)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"channels": names})
}

func (s *Server) handleAddChannel(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeChannelRequest(w, r)
	if !ok {
		return
	}

	if err := s.channelService.Add(req.Name); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (s *Server) handleRenameChannel(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeChannelRequest(w, r)
	if !ok {
		return
	}

	if err := s.channelService.Rename(r.PathValue("name"), req.Name); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "renamed"})
}

func (s *Server) handleDeleteChannel(w http.ResponseWriter, r *http.Request) {
	if err := s.channelService.Delete(r.PathValue("name")); err != nil {
		s.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Slack Search Query Wizard</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Slack Search Query Wizard</h1>
    <div class="info">
        <p>Build a query: <code>/api/query?channel=eng&amp;user=bob&amp;file_type=pdf&amp;keywords=budget</code></p>
        <p>Date filters: <code>date_mode=during&amp;date=2024-01-15</code> or <code>date_mode=range&amp;after=today</code></p>
        <p>Saved channels: <code>GET/POST /api/channels</code>, <code>PUT/DELETE /api/channels/{name}</code></p>
    </div>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, sharedErrors.ErrInvalidName), errors.Is(err, sharedErrors.ErrInvalidSelection):
		return http.StatusBadRequest
	case errors.Is(err, sharedErrors.ErrChannelNotFound):
		return http.StatusNotFound
	case errors.Is(err, sharedErrors.ErrDuplicateChannel):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
