package scheduler

import (
	"strings"
	"sync"
	"testing"
	"time"

	"Omikuji/internal/omikuji"
	"Omikuji/internal/presenter"
	"Omikuji/internal/storage"
)

func newTestScheduler() *Scheduler {
	engine := omikuji.NewEngine(storage.NewMemoryStore(), nil, nil, "", 0)
	return NewScheduler(engine, time.UTC, 10, nil)
}

func TestRegisterClock_InvalidSpec(t *testing.T) {
	s := newTestScheduler()
	if err := s.RegisterClock("not a cron spec"); err == nil {
		t.Error("expected error for invalid spec")
	}
	if err := s.RegisterClock("* * * * * *"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTick_UpdatesNowAndCallsBack(t *testing.T) {
	s := newTestScheduler()
	s.clock = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 1, 0, time.UTC) }

	var got []string
	s.OnTick(func(now string) { got = append(got, now) })
	s.tick()

	want := "2026年10月17日 12:00:01 UTC"
	if s.Now() != want {
		t.Errorf("now: got %q want %q", s.Now(), want)
	}
	if len(got) != 1 || got[0] != want {
		t.Errorf("callback: got %v", got)
	}
}

func TestClock_TicksWhileRunning(t *testing.T) {
	s := newTestScheduler()
	if err := s.RegisterClock("* * * * * *"); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	ticks := 0
	s.OnTick(func(string) {
		mu.Lock()
		ticks++
		mu.Unlock()
	})

	s.Start()
	time.Sleep(1500 * time.Millisecond)
	s.Stop()

	mu.Lock()
	defer mu.Unlock()
	// One tick on Start plus at least one from cron.
	if ticks < 2 {
		t.Errorf("expected at least 2 ticks, got %d", ticks)
	}
}

func TestHandleCommand(t *testing.T) {
	s := newTestScheduler()

	if reply := s.HandleCommand("/history"); reply != presenter.EmptyHistory {
		t.Errorf("history before draw: got %q", reply)
	}

	reply := s.HandleCommand("おみくじを引く")
	if !strings.Contains(reply, "運勢:") {
		t.Errorf("draw reply missing level:\n%s", reply)
	}
	if h := s.Engine.Load(); len(h) != 1 {
		t.Fatalf("expected draw to be saved, got %d entries", len(h))
	}

	if reply := s.HandleCommand("/history"); !strings.Contains(reply, "(1件)") {
		t.Errorf("history after draw:\n%s", reply)
	}

	if reply := s.HandleCommand("/clear"); reply != "履歴を消去しました" {
		t.Errorf("clear reply: %q", reply)
	}
	if h := s.Engine.Load(); len(h) != 0 {
		t.Errorf("expected empty history after clear, got %d", len(h))
	}

	if reply := s.HandleCommand("/time"); reply != s.Now() {
		t.Errorf("time reply: %q", reply)
	}
	if reply := s.HandleCommand("hello"); !strings.Contains(reply, "/draw") {
		t.Errorf("help reply: %q", reply)
	}
}

func TestDrawAndSave(t *testing.T) {
	s := newTestScheduler()
	var last time.Time
	for i := 0; i < 3; i++ {
		r, h := s.DrawAndSave()
		if len(h) != i+1 {
			t.Fatalf("draw %d: expected %d entries, got %d", i, i+1, len(h))
		}
		if !h[0].Timestamp.Equal(r.Timestamp) {
			t.Errorf("draw %d: newest entry is not the latest draw", i)
		}
		last = r.Timestamp
	}
	if last.IsZero() {
		t.Error("expected timestamp")
	}
}
