package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"Omikuji/internal/logger"
	"Omikuji/internal/model"
	"Omikuji/internal/omikuji"
	"Omikuji/internal/scheduler"
	"Omikuji/internal/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *scheduler.Scheduler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := omikuji.NewEngine(storage.NewMemoryStore(), nil, nil, "", 0)
	sched := scheduler.NewScheduler(engine, time.UTC, 10, nil)
	return NewRouter(NewHandler(sched, "Hello World"), logger.Nop()), sched
}

func do(r http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz_SetsRequestID(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(headerRequestID) == "" {
		t.Error("expected X-Request-Id header")
	}
}

func TestDrawAndHistoryAPI(t *testing.T) {
	r, _ := newTestRouter(t)

	for i := 0; i < 3; i++ {
		w := do(r, http.MethodPost, "/api/draw", "")
		if w.Code != http.StatusOK {
			t.Fatalf("draw: expected 200, got %d", w.Code)
		}
		var resp struct {
			Result struct {
				FortuneLevel string            `json:"fortune_level"`
				Ratings      map[string]string `json:"ratings"`
				Timestamp    string            `json:"timestamp"`
			} `json:"result"`
			HistorySize int `json:"history_size"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode draw: %v", err)
		}
		if !model.FortuneLevel(resp.Result.FortuneLevel).Valid() {
			t.Errorf("invalid level %q", resp.Result.FortuneLevel)
		}
		if len(resp.Result.Ratings) != 5 {
			t.Errorf("expected 5 ratings, got %d", len(resp.Result.Ratings))
		}
		if resp.HistorySize != i+1 {
			t.Errorf("history size: got %d want %d", resp.HistorySize, i+1)
		}
	}

	w := do(r, http.MethodGet, "/api/history?limit=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", w.Code)
	}
	var hist struct {
		History []json.RawMessage `json:"history"`
		Total   int               `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &hist); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(hist.History) != 2 || hist.Total != 3 {
		t.Errorf("history: got %d entries, total %d", len(hist.History), hist.Total)
	}

	if w := do(r, http.MethodDelete, "/api/history", ""); w.Code != http.StatusNoContent {
		t.Errorf("clear: expected 204, got %d", w.Code)
	}
	w = do(r, http.MethodGet, "/api/history", "")
	if !strings.Contains(w.Body.String(), `"history":[]`) {
		t.Errorf("expected empty history, got %s", w.Body.String())
	}
}

func TestHistoryAPI_InvalidLimit(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, q := range []string{"0", "-1", "101", "abc"} {
		if w := do(r, http.MethodGet, "/api/history?limit="+q, ""); w.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected 400, got %d", q, w.Code)
		}
	}
}

func TestClockAPI(t *testing.T) {
	r, sched := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/clock", "")
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["now"] != sched.Now() {
		t.Errorf("clock: got %q want %q", body["now"], sched.Now())
	}
}

func TestAdviceAPI_FallsBack(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/advice/unknown", "")
	var a model.AdviceBundle
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatal(err)
	}
	if a.Text == "" || a.LuckyItem == "" || a.LuckyColor == "" {
		t.Errorf("incomplete advice: %+v", a)
	}
}

func TestPage(t *testing.T) {
	r, sched := newTestRouter(t)

	w := do(r, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	page := w.Body.String()
	if !strings.Contains(page, "Hello World") || !strings.Contains(page, sched.Now()) {
		t.Error("page missing greeting or clock")
	}
	if strings.Contains(page, `id="omikuji-result"`) {
		t.Error("result should be hidden before drawing")
	}

	w = do(r, http.MethodPost, "/draw", "history=1")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/?drawn=1&history=1" {
		t.Fatalf("draw form: got %d %q", w.Code, w.Header().Get("Location"))
	}

	w = do(r, http.MethodGet, "/?drawn=1&history=1", "")
	page = w.Body.String()
	current := sched.Engine.Current()
	if !strings.Contains(page, `id="omikuji-result"`) || !strings.Contains(page, string(current.FortuneLevel)) {
		t.Error("page missing drawn result")
	}
	if strings.Count(page, `class="history-item"`) != 1 {
		t.Errorf("expected one history item")
	}

	w = do(r, http.MethodPost, "/clear", "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("clear form: got %d", w.Code)
	}
	w = do(r, http.MethodGet, "/?history=1", "")
	if !strings.Contains(w.Body.String(), "まだ履歴がありません") {
		t.Error("expected empty history message")
	}
}
