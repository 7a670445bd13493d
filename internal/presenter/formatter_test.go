package presenter

import (
	"strings"
	"testing"
	"time"

	"Omikuji/internal/model"
)

func sampleResult(ts time.Time) model.DrawResult {
	return model.DrawResult{
		FortuneLevel: model.MiddleBlessing,
		Ratings: map[model.Category]model.Rating{
			model.Overall: model.RatingExcellent,
			model.Love:    model.RatingGood,
			model.Work:    model.RatingFair,
			model.Money:   model.RatingPoor,
			model.Health:  model.RatingGood,
		},
		Advice: model.AdviceBundle{
			Text:       "安定した幸運に恵まれています。",
			LuckyItem:  "招き猫",
			LuckyColor: "金",
		},
		Timestamp: ts,
	}
}

func TestFormatClock(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	ts := time.Date(2026, 10, 17, 3, 4, 5, 0, time.UTC)

	if got, want := FormatClock(ts, tokyo), "2026年10月17日 12:04:05 JST"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got, want := FormatClock(ts, nil), "2026年10月17日 03:04:05 UTC"; got != want {
		t.Errorf("nil location: got %q want %q", got, want)
	}
}

func TestFormatResult(t *testing.T) {
	out := FormatResult(sampleResult(time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)), nil)

	for _, want := range []string{"運勢: 中吉", "総合運: ◎", "金運: ×", "アドバイス: 安定した幸運", "開運アイテム: 招き猫", "ラッキーカラー: 金", "2026年1月2日 03:04"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	// Categories render in fixed order.
	if strings.Index(out, "総合運") > strings.Index(out, "健康運") {
		t.Error("categories out of order")
	}
}

func TestFormatHistory(t *testing.T) {
	if got := FormatHistory(nil, 10, nil); got != EmptyHistory {
		t.Errorf("empty history: got %q", got)
	}

	var h model.History
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		h = append(h, sampleResult(base.Add(-time.Duration(i)*time.Hour)))
	}
	out := FormatHistory(h, 10, nil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header, blank line, 10 entries
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "(15件)") {
		t.Errorf("expected total count in header:\n%s", out)
	}
	if !strings.HasPrefix(lines[2], "2026年1月1日 00:00") {
		t.Errorf("expected newest entry first, got %q", lines[2])
	}
}
