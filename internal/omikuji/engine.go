package omikuji

import (
	"encoding/json"
	"sync"
	"time"

	"Omikuji/internal/model"
	"Omikuji/internal/storage"
)

const (
	// DefaultKey is the storage key holding the serialized history.
	DefaultKey = "omikuji-history"
	// DefaultLimit is the number of draws kept in history.
	DefaultLimit = 50
)

// WarnFunc receives contained failures. Matches logger.Logger.Warn.
type WarnFunc func(msg string, keysAndValues ...interface{})

// Engine draws fortunes and keeps a capped, newest-first history in a Store.
// Storage and input failures never reach the caller; they are passed to the
// warn func and degrade to an empty or unchanged history.
type Engine struct {
	mu      sync.Mutex
	store   storage.Store
	rng     RNG
	warn    WarnFunc
	key     string
	limit   int
	now     func() time.Time
	current model.DrawResult
}

// NewEngine creates an Engine and performs an initial draw. A nil store behaves
// as unavailable storage, a nil rng uses math/rand/v2 and a nil warn discards.
func NewEngine(store storage.Store, rng RNG, warn WarnFunc, key string, limit int) *Engine {
	if store == nil {
		store = storage.NewNoopStore()
	}
	if rng == nil {
		rng = stdRNG{}
	}
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	if key == "" {
		key = DefaultKey
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	e := &Engine{
		store: store,
		rng:   rng,
		warn:  warn,
		key:   key,
		limit: limit,
		now:   time.Now,
	}
	e.current = e.generate()
	return e
}

// Limit returns the retention cap.
func (e *Engine) Limit() int { return e.limit }

// Draw performs a new draw and makes it the current result. It does not persist.
func (e *Engine) Draw() model.DrawResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.current = e.generate()
	return e.current.Clone()
}

// Current returns the most recent draw.
func (e *Engine) Current() model.DrawResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current.Clone()
}

// AdviceFor resolves an advice bundle for level. Unknown levels use DefaultLevel's advice.
func (e *Engine) AdviceFor(level model.FortuneLevel) model.AdviceBundle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.advice(level)
}

// Save prepends result to the stored history and truncates it to the cap.
// A nil or invalid result is ignored.
func (e *Engine) Save(result *model.DrawResult) {
	if err := result.Validate(); err != nil {
		e.warn("invalid draw result, not saved", "error", err)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	history := append(model.History{result.Clone()}, e.load()...)
	if len(history) > e.limit {
		history = history[:e.limit]
	}

	data, err := json.Marshal(history)
	if err != nil {
		e.warn("encode history failed", "error", err)
		return
	}
	if err := e.store.Set(e.key, string(data)); err != nil {
		e.warn("save history failed", "key", e.key, "error", err)
	}
}

// Load returns the stored history, newest first. Missing or corrupt data yields
// an empty history.
func (e *Engine) Load() model.History {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load()
}

// Clear removes the stored history.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Remove(e.key); err != nil {
		e.warn("clear history failed", "key", e.key, "error", err)
	}
}

func (e *Engine) generate() model.DrawResult {
	level := pick(e.rng, model.FortuneLevels)

	ratings := make(map[model.Category]model.Rating, len(model.Categories))
	for _, c := range model.Categories {
		ratings[c] = pick(e.rng, model.Ratings)
	}

	return model.DrawResult{
		FortuneLevel: level,
		Ratings:      ratings,
		Advice:       e.advice(level),
		Timestamp:    e.now().UTC().Truncate(time.Millisecond),
	}
}

func (e *Engine) advice(level model.FortuneLevel) model.AdviceBundle {
	return model.AdviceBundle{
		Text:       pick(e.rng, adviceFor(level)),
		LuckyItem:  pick(e.rng, LuckyItems),
		LuckyColor: pick(e.rng, LuckyColors),
	}
}

func (e *Engine) load() model.History {
	history := model.History{}

	raw, ok, err := e.store.Get(e.key)
	if err != nil {
		e.warn("read history failed", "key", e.key, "error", err)
		return history
	}
	if !ok || raw == "" {
		return history
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		e.warn("stored history is corrupt, ignoring", "key", e.key, "error", err)
		return history
	}

	for _, item := range items {
		if len(history) == e.limit {
			break
		}
		var r model.DrawResult
		if err := json.Unmarshal(item, &r); err != nil {
			continue
		}
		if err := r.Validate(); err != nil {
			continue
		}
		history = append(history, r)
	}
	return history
}
