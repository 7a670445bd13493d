package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Omikuji/internal/model"
	"Omikuji/internal/presenter"
	"Omikuji/internal/scheduler"
)

const maxHistoryLimit = 100

// Handler serves the omikuji page and API on top of a Scheduler.
type Handler struct {
	Sched    *scheduler.Scheduler
	Greeting string
}

func NewHandler(sched *scheduler.Scheduler, greeting string) *Handler {
	return &Handler{Sched: sched, Greeting: greeting}
}

// ErrorResponse is the JSON body of failed API calls.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DrawResponse is returned by POST /api/draw.
type DrawResponse struct {
	Result      model.DrawResult `json:"result"`
	HistorySize int              `json:"history_size"`
}

// HistoryResponse is returned by GET /api/history.
type HistoryResponse struct {
	History model.History `json:"history"`
	Total   int           `json:"total"`
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "omikuji"})
}

// Draw draws, saves and returns the new result.
// POST /api/draw
func (h *Handler) Draw(c *gin.Context) {
	result, history := h.Sched.DrawAndSave()
	c.JSON(http.StatusOK, DrawResponse{Result: result, HistorySize: len(history)})
}

// History returns the newest entries.
// GET /api/history?limit=10
func (h *Handler) History(c *gin.Context) {
	limit := h.Sched.DisplayLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer between 1 and 100"})
			return
		}
		limit = n
	}

	history := h.Sched.Engine.Load()
	c.JSON(http.StatusOK, HistoryResponse{History: history.Latest(limit), Total: len(history)})
}

// ClearHistory removes all stored draws.
// DELETE /api/history
func (h *Handler) ClearHistory(c *gin.Context) {
	h.Sched.Engine.Clear()
	c.Status(http.StatusNoContent)
}

// Clock returns the text of the latest clock tick.
// GET /api/clock
func (h *Handler) Clock(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"now": h.Sched.Now()})
}

// Advice resolves an advice bundle for a level; unknown levels get the default advice.
// GET /api/advice/:level
func (h *Handler) Advice(c *gin.Context) {
	level := model.FortuneLevel(c.Param("level"))
	c.JSON(http.StatusOK, h.Sched.Engine.AdviceFor(level))
}

// DrawForm handles the page's draw button.
// POST /draw
func (h *Handler) DrawForm(c *gin.Context) {
	h.Sched.DrawAndSave()
	target := "/?drawn=1"
	if c.PostForm("history") == "1" {
		target += "&history=1"
	}
	c.Redirect(http.StatusSeeOther, target)
}

// ClearForm handles the page's clear button.
// POST /clear
func (h *Handler) ClearForm(c *gin.Context) {
	h.Sched.Engine.Clear()
	c.Redirect(http.StatusSeeOther, "/?history=1")
}

// Index renders the page.
// GET /?drawn=1&history=1
func (h *Handler) Index(c *gin.Context) {
	view := pageView{
		Greeting:    h.Greeting,
		Clock:       h.Sched.Now(),
		ShowHistory: c.Query("history") == "1",
	}
	if c.Query("drawn") == "1" {
		r := newResultView(h.Sched.Engine.Current(), h.Sched)
		view.Result = &r
	}
	if view.ShowHistory {
		history := h.Sched.Engine.Load()
		for _, r := range history.Latest(h.Sched.DisplayLimit) {
			view.History = append(view.History, historyView{
				Date:       presenter.FormatHistoryDate(r.Timestamp, h.Sched.Location),
				Level:      string(r.FortuneLevel),
				LuckyItem:  r.Advice.LuckyItem,
				LuckyColor: r.Advice.LuckyColor,
			})
		}
		view.EmptyHistory = presenter.EmptyHistory
	}
	c.HTML(http.StatusOK, "index", view)
}
