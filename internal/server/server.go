package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"MiniCheck/internal/checker"
	"MiniCheck/internal/config"
	l "MiniCheck/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type validateRequest struct {
	Source string `json:"source"`
}

type validateResponse struct {
	ID      string `json:"id"`
	Valid   bool   `json:"valid"`
	Stage   string `json:"stage,omitempty"`
	Message string `json:"message,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Tokens  int    `json:"tokens"`
}

type Server struct {
	cfg      config.ServerConfig
	logger   *l.Logger
	upgrader websocket.Upgrader
}

func New(cfg config.ServerConfig, logger *l.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health & readiness
	mux.HandleFunc("/health", health)

	// POST /validate -> check one program, JSON in and out
	mux.HandleFunc("/validate", s.validateHandler)

	// GET /ws -> every text frame is checked, one JSON reply per frame
	mux.HandleFunc("/ws", s.wsHandler)

	return mux
}

// httpServer builds the listener-side server. Request contexts keep ctx's
// values but not its cancellation, so Shutdown can drain them.
func (s *Server) httpServer(ctx context.Context) *http.Server {
	base := context.WithoutCancel(ctx)
	return &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout.Duration,
		WriteTimeout: s.cfg.WriteTimeout.Duration,
		BaseContext:  func(net.Listener) context.Context { return base },
	}
}

// ListenAndServe blocks until ctx is cancelled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := s.httpServer(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.WriteTimeout.Duration)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newResponse(id string, result checker.Result) validateResponse {
	return validateResponse{
		ID:      id,
		Valid:   result.Valid,
		Stage:   string(result.Stage),
		Message: result.Message,
		Line:    result.Line,
		Column:  result.Column,
		Tokens:  len(result.Tokens),
	}
}

func (s *Server) analyze(id, source string) validateResponse {
	result := checker.Analyze(normalizeNewlines(source))
	if result.Valid {
		s.logger.Debug("[%s] program accepted (%d tokens)", id, len(result.Tokens))
	} else {
		s.logger.Debug("[%s] program rejected: %s", id, result.Message)
	}
	return newResponse(id, result)
}

// health returns 200 OK for liveness checks
func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// validateHandler reports syntax errors with 200; only a malformed request is
// a client error.
func (s *Server) validateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.logger.Error("Invalid method used: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.logger.Error("Request body over %d bytes", tooLarge.Limit)
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		s.logger.Error("Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response := s.analyze(uuid.NewString(), req.Source)
	responseBytes, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("Failed to marshal response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(responseBytes)
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	s.logger.Info("[%s] WebSocket session opened", session)
	conn.SetReadLimit(s.cfg.MaxBodyBytes)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Error("[%s] WebSocket read failed: %v", session, err)
			}
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}

		if err := conn.WriteJSON(s.analyze(uuid.NewString(), string(data))); err != nil {
			s.logger.Error("[%s] WebSocket write failed: %v", session, err)
			break
		}
	}

	s.logger.Info("[%s] WebSocket session closed", session)
}

func normalizeNewlines(src string) string {
	return strings.ReplaceAll(src, "\r\n", "\n")
}
