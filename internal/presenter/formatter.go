package presenter

import (
	"fmt"
	"strings"
	"time"

	"Omikuji/internal/model"
)

// EmptyHistory is shown when there are no past draws.
const EmptyHistory = "まだ履歴がありません"

// FormatClock formats t in Japanese long form, e.g. "2026年10月17日 12:34:56 JST".
func FormatClock(t time.Time, loc *time.Location) string {
	t = inLocation(t, loc)
	return fmt.Sprintf("%d年%d月%d日 %s", t.Year(), int(t.Month()), t.Day(), t.Format("15:04:05 MST"))
}

// FormatHistoryDate formats a history timestamp to the minute.
func FormatHistoryDate(t time.Time, loc *time.Location) string {
	t = inLocation(t, loc)
	return fmt.Sprintf("%d年%d月%d日 %s", t.Year(), int(t.Month()), t.Day(), t.Format("15:04"))
}

// FormatResult formats a single draw for display.
func FormatResult(r model.DrawResult, loc *time.Location) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("⛩️ おみくじ結果 | %s\n\n", FormatHistoryDate(r.Timestamp, loc)))
	b.WriteString(fmt.Sprintf("運勢: %s\n\n", r.FortuneLevel))

	b.WriteString("詳細運勢:\n")
	for _, c := range model.Categories {
		b.WriteString(fmt.Sprintf("  %s: %s\n", c, r.Ratings[c]))
	}

	b.WriteString(fmt.Sprintf("\nアドバイス: %s\n", r.Advice.Text))
	b.WriteString(fmt.Sprintf("開運アイテム: %s\n", r.Advice.LuckyItem))
	b.WriteString(fmt.Sprintf("ラッキーカラー: %s\n", r.Advice.LuckyColor))

	return b.String()
}

// FormatHistory formats the newest n entries of h, one per line.
func FormatHistory(h model.History, n int, loc *time.Location) string {
	if len(h) == 0 {
		return EmptyHistory
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📜 おみくじ履歴 (%d件)\n\n", len(h)))
	for _, r := range h.Latest(n) {
		b.WriteString(fmt.Sprintf("%s  %s  開運アイテム: %s | ラッキーカラー: %s\n",
			FormatHistoryDate(r.Timestamp, loc), r.FortuneLevel, r.Advice.LuckyItem, r.Advice.LuckyColor))
	}
	return b.String()
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t.UTC()
	}
	return t.In(loc)
}
