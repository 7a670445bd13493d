package scheduler

import (
	"fmt"
	"sync"
	"time"

	"Omikuji/internal/logger"
	"Omikuji/internal/model"
	"Omikuji/internal/omikuji"
	"Omikuji/internal/presenter"

	"github.com/robfig/cron/v3"
)

// TickFunc receives the formatted clock on every tick.
type TickFunc func(now string)

// Scheduler drives the clock and turns user commands into engine calls.
type Scheduler struct {
	Cron         *cron.Cron
	Engine       *omikuji.Engine
	Location     *time.Location
	DisplayLimit int
	Log          *logger.Logger

	clock   func() time.Time
	mu      sync.RWMutex
	now     string
	onTicks []TickFunc
}

// NewScheduler creates a new Scheduler.
func NewScheduler(engine *omikuji.Engine, loc *time.Location, displayLimit int, log *logger.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &Scheduler{
		Cron:         cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		Engine:       engine,
		Location:     loc,
		DisplayLimit: displayLimit,
		Log:          log.With("component", "scheduler"),
		clock:        time.Now,
	}
	s.now = presenter.FormatClock(s.clock(), loc)
	return s
}

// RegisterClock registers the clock redraw at the given cron spec (with seconds).
func (s *Scheduler) RegisterClock(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.tick); err != nil {
		return fmt.Errorf("register clock task: %w", err)
	}
	return nil
}

// OnTick adds a callback invoked after every clock update.
func (s *Scheduler) OnTick(fn TickFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTicks = append(s.onTicks, fn)
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.tick()
	s.Cron.Start()
	s.Log.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Info("scheduler stopped")
}

// Now returns the clock text from the latest tick.
func (s *Scheduler) Now() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

func (s *Scheduler) tick() {
	now := presenter.FormatClock(s.clock(), s.Location)

	s.mu.Lock()
	s.now = now
	callbacks := append([]TickFunc(nil), s.onTicks...)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(now)
	}
}

// DrawAndSave draws a fortune, persists it and returns it with the refreshed history.
func (s *Scheduler) DrawAndSave() (model.DrawResult, model.History) {
	result := s.Engine.Draw()
	s.Engine.Save(&result)
	history := s.Engine.Load()
	s.Log.Info("omikuji drawn", "level", result.FortuneLevel, "history", len(history))
	return result, history
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "おみくじを引く", "/draw":
		result, _ := s.DrawAndSave()
		return presenter.FormatResult(result, s.Location)
	case "履歴を表示", "/history":
		return presenter.FormatHistory(s.Engine.Load(), s.DisplayLimit, s.Location)
	case "履歴を消去", "/clear":
		s.Engine.Clear()
		return "履歴を消去しました"
	case "現在時刻", "/time":
		return s.Now()
	default:
		return "使えるコマンド:\n• おみくじを引く (/draw)\n• 履歴を表示 (/history)\n• 履歴を消去 (/clear)\n• 現在時刻 (/time)"
	}
}
