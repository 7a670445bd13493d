package server

import (
	"Omikuji/internal/model"
	"Omikuji/internal/presenter"
	"Omikuji/internal/scheduler"
)

type ratingView struct {
	Category string
	Rating   string
}

type resultView struct {
	Level      string
	Ratings    []ratingView
	Advice     string
	LuckyItem  string
	LuckyColor string
	Date       string
}

type historyView struct {
	Date       string
	Level      string
	LuckyItem  string
	LuckyColor string
}

type pageView struct {
	Greeting     string
	Clock        string
	Result       *resultView
	ShowHistory  bool
	History      []historyView
	EmptyHistory string
}

func newResultView(r model.DrawResult, sched *scheduler.Scheduler) resultView {
	v := resultView{
		Level:      string(r.FortuneLevel),
		Advice:     r.Advice.Text,
		LuckyItem:  r.Advice.LuckyItem,
		LuckyColor: r.Advice.LuckyColor,
		Date:       presenter.FormatHistoryDate(r.Timestamp, sched.Location),
	}
	for _, c := range model.Categories {
		v.Ratings = append(v.Ratings, ratingView{Category: string(c), Rating: string(r.Ratings[c])})
	}
	return v
}

const indexTemplate = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>おみくじ</title>
</head>
<body>
<h1>{{.Greeting}}</h1>
<p id="datetime-text">{{.Clock}}</p>

<form method="post" action="/draw">
  {{if .ShowHistory}}<input type="hidden" name="history" value="1">{{end}}
  <button id="draw-omikuji-btn" type="submit">おみくじを引く</button>
</form>

{{with .Result}}
<section id="omikuji-result">
  <div id="fortune-level" class="fortune-level {{.Level}}">{{.Level}}</div>
  <div id="detailed-fortune">
    {{range .Ratings}}<div class="fortune-item"><div class="type">{{.Category}}</div><div class="rating">{{.Rating}}</div></div>
    {{end}}
  </div>
  <p id="advice-text">{{.Advice}}</p>
  <p>開運アイテム: <span id="lucky-item">{{.LuckyItem}}</span></p>
  <p>ラッキーカラー: <span id="lucky-color">{{.LuckyColor}}</span></p>
  <p class="history-date">{{.Date}}</p>
</section>
{{end}}

{{if .ShowHistory}}
<a id="toggle-history-btn" href="/">履歴を隠す</a>
<section id="history-container">
  {{range .History}}
  <div class="history-item">
    <div class="history-date">{{.Date}}</div>
    <div class="history-fortune">{{.Level}}</div>
    <div class="history-details">開運アイテム: {{.LuckyItem}} | ラッキーカラー: {{.LuckyColor}}</div>
  </div>
  {{else}}
  <p>{{.EmptyHistory}}</p>
  {{end}}
  <form method="post" action="/clear"><button type="submit">履歴を消去</button></form>
</section>
{{else}}
<a id="toggle-history-btn" href="/?history=1">履歴を表示</a>
{{end}}
</body>
</html>
`
