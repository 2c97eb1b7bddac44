// path: internal/httpx/server.go
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"shogi_kifu/internal/kifu"
	"shogi_kifu/internal/legality"
	"shogi_kifu/internal/usi"
)

// Server wires the HTTP layer to the notation engine. Rendering is
// stateless, so requests carry the full position every time.
type Server struct {
	srvMu sync.Mutex
	srv   *http.Server
}

const (
	maxJSONBodyBytes int64 = 1 << 20
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
)

func NewServer() *Server {
	return &Server{}
}

// Listen starts the HTTP server.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	log.Printf("HTTP listening on %s", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// routes configures the ServeMux with the JSON APIs and health check.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/render", s.withJSON(s.handleRender))
	mux.HandleFunc("/api/moves", s.withJSON(s.handleMoves))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// ---- API: render ----

type renderBody struct {
	SFEN  string `json:"sfen"`
	Move  string `json:"move"`
	Style string `json:"style"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()
	var body renderBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	style, ok := kifu.ParseStyle(strings.TrimSpace(body.Style))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid style")
		return
	}
	pos, err := usi.ParsePosition(body.SFEN)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sfen: "+err.Error())
		return
	}
	mv, err := usi.ParseMove(strings.TrimSpace(body.Move))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid move: "+err.Error())
		return
	}
	rendered, err := kifu.Render(pos, mv, style)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, map[string]any{
		"move":   mv.String(),
		"kifu":   rendered,
		"narrow": kifu.Narrow(rendered),
	})
}

// ---- API: moves ----

type movesBody struct {
	SFEN  string `json:"sfen"`
	Style string `json:"style"`
}

type renderedMove struct {
	USI  string `json:"usi"`
	Kifu string `json:"kifu"`
}

// handleMoves renders every legal move of the position, which is
// handy for move pickers and for eyeballing disambiguation output.
func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()
	var body movesBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	style, ok := kifu.ParseStyle(strings.TrimSpace(body.Style))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid style")
		return
	}
	pos, err := usi.ParsePosition(body.SFEN)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sfen: "+err.Error())
		return
	}
	all := legality.AllMoves(pos)
	out := make([]renderedMove, 0, len(all))
	for _, mv := range all {
		rendered, err := kifu.Render(pos, mv, style)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "render "+mv.String()+": "+err.Error())
			return
		}
		out = append(out, renderedMove{USI: mv.String(), Kifu: rendered})
	}
	writeJSON(w, map[string]any{
		"sfen":  usi.FormatPosition(pos),
		"moves": out,
	})
}
