// path: internal/httpx/server_test.go
package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleRenderReturnsKifu(t *testing.T) {
	srv := NewServer()

	reqBody := `{"sfen":"4k4/9/9/8P/9/9/9/4G4/4K4 b G 1","move":"5h4h","style":"arabic"}`
	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	srv.handleRender(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var payload struct {
		Move   string `json:"move"`
		Kifu   string `json:"kifu"`
		Narrow string `json:"narrow"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.Kifu != "▲４８金" {
		t.Errorf("kifu = %q, want ▲４８金", payload.Kifu)
	}
	if payload.Narrow != "▲48金" {
		t.Errorf("narrow = %q, want ▲48金", payload.Narrow)
	}
	if payload.Move != "5h4h" {
		t.Errorf("move echoed as %q", payload.Move)
	}
}

func TestHandleRenderTraditionalStyle(t *testing.T) {
	srv := NewServer()

	reqBody := `{"sfen":"4k4/9/9/8P/9/9/9/4G4/4K4 b G 1","move":"5h4h","style":"traditional"}`
	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()

	srv.handleRender(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var payload struct {
		Kifu string `json:"kifu"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.Kifu != "▲４八金" {
		t.Errorf("kifu = %q, want ▲４八金", payload.Kifu)
	}
}

func TestHandleRenderRejectsBadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"bad sfen", `{"sfen":"nonsense","move":"7g7f"}`, http.StatusBadRequest},
		{"bad move", `{"sfen":"startpos","move":"xyz"}`, http.StatusBadRequest},
		{"bad style", `{"sfen":"startpos","move":"7g7f","style":"roman"}`, http.StatusBadRequest},
		{"illegal move", `{"sfen":"startpos","move":"5e5d"}`, http.StatusUnprocessableEntity},
	}
	srv := NewServer()
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(c.body))
			rr := httptest.NewRecorder()
			srv.handleRender(rr, req)
			if rr.Code != c.want {
				t.Errorf("status = %d, want %d: %s", rr.Code, c.want, rr.Body.String())
			}
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/render", nil)
	rr := httptest.NewRecorder()
	srv.handleRender(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want 405", rr.Code)
	}
}

func TestHandleMovesRendersEveryMove(t *testing.T) {
	srv := NewServer()

	reqBody := `{"sfen":"4k4/9/9/9/9/9/9/4G4/4K4 b G 1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/moves", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()

	srv.handleMoves(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var payload struct {
		SFEN  string `json:"sfen"`
		Moves []struct {
			USI  string `json:"usi"`
			Kifu string `json:"kifu"`
		} `json:"moves"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(payload.Moves) == 0 {
		t.Fatal("no moves rendered")
	}
	found := false
	for _, m := range payload.Moves {
		if m.USI == "" || m.Kifu == "" {
			t.Fatalf("incomplete entry %+v", m)
		}
		if m.USI == "G*4h" {
			found = true
			if m.Kifu != "▲４８金打" {
				t.Errorf("G*4h rendered %q, want ▲４８金打", m.Kifu)
			}
		}
	}
	if !found {
		t.Error("G*4h missing from the move list")
	}
	if payload.SFEN != "4k4/9/9/9/9/9/9/4G4/4K4 b G 1" {
		t.Errorf("echoed sfen = %q", payload.SFEN)
	}
}

func TestRoutesHealthz(t *testing.T) {
	srv := NewServer()
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status = %d", resp.StatusCode)
	}
}
