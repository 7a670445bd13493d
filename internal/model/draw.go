package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is the persisted timestamp format: fixed-width ISO-8601 in UTC
// with milliseconds, so stored values sort lexically.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// AdviceBundle is the advice shown alongside a fortune level.
type AdviceBundle struct {
	Text       string `json:"text"`
	LuckyItem  string `json:"lucky_item"`
	LuckyColor string `json:"lucky_color"`
}

// DrawResult is the outcome of one omikuji draw.
type DrawResult struct {
	FortuneLevel FortuneLevel        `json:"fortune_level"`
	Ratings      map[Category]Rating `json:"ratings"`
	Advice       AdviceBundle        `json:"advice"`
	Timestamp    time.Time           `json:"timestamp"`
}

// Validate checks that r carries everything needed to render and persist it.
func (r *DrawResult) Validate() error {
	if r == nil {
		return errors.New("draw result is nil")
	}
	if !r.FortuneLevel.Valid() {
		return fmt.Errorf("invalid fortune level %q", r.FortuneLevel)
	}
	for _, c := range Categories {
		if r.Ratings[c] == "" {
			return fmt.Errorf("missing rating for %s", c)
		}
	}
	if r.Timestamp.IsZero() {
		return errors.New("timestamp is required")
	}
	return nil
}

// Clone returns a deep copy of r.
func (r DrawResult) Clone() DrawResult {
	out := r
	if r.Ratings != nil {
		out.Ratings = make(map[Category]Rating, len(r.Ratings))
		for k, v := range r.Ratings {
			out.Ratings[k] = v
		}
	}
	return out
}

// MarshalJSON writes the timestamp with TimestampLayout.
func (r DrawResult) MarshalJSON() ([]byte, error) {
	type alias DrawResult
	return json.Marshal(struct {
		alias
		Timestamp string `json:"timestamp"`
	}{
		alias:     alias(r),
		Timestamp: r.Timestamp.UTC().Format(TimestampLayout),
	})
}

// History holds past draws, newest first.
type History []DrawResult

// Latest returns at most n of the newest entries.
func (h History) Latest(n int) History {
	if n < 0 || n >= len(h) {
		return h
	}
	return h[:n]
}
