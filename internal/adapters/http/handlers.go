package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/puzzlefeed/internal/domain"
	"svw.info/puzzlefeed/internal/usecase"
	"svw.info/puzzlefeed/internal/variations"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.handleHealth)
	api := r.Group("/api")
	api.POST("/generate", h.handleGenerate)
	api.POST("/validate", h.handleValidate)
	api.POST("/validate-solution", h.handleValidateSolution)
	api.POST("/solve", h.handleSolve)
	api.POST("/hint", h.handleHint)
	api.GET("/variations/available", h.handleVariations)
	api.GET("/puzzle-of-the-day", h.handleDaily)
	api.POST("/check-solution", h.handleCheckDaily)
	api.POST("/submit-score", h.handleSubmitScore)
	api.GET("/leaderboard", h.handleLeaderboard)
}

// statusFor maps engine errors onto HTTP codes: bad difficulty is the
// caller's fault, an unterminated search is ours.
func statusFor(err error) int {
	var invalid *domain.InvalidDifficultyError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ---- Generate ----

type generateReq struct {
	Difficulty      string   `json:"difficulty"`
	Seed            int64    `json:"seed,omitempty"`
	Variation       string   `json:"variation,omitempty"`
	Theme           string   `json:"theme,omitempty"`
	CustomSymbols   []string `json:"customSymbols,omitempty"`
	Language        string   `json:"language,omitempty"`
	IncludeSolution bool     `json:"includeSolution,omitempty"`
}

type generateResp struct {
	Puzzle     domain.Grid   `json:"puzzle"`
	Solution   *domain.Grid  `json:"solution,omitempty"`
	Difficulty string        `json:"difficulty"`
	Label      string        `json:"difficultyLabel,omitempty"`
	Seed       int64         `json:"seed"`
	Themed     *[9][9]string `json:"themed,omitempty"`
	Symbols    []string      `json:"symbols,omitempty"`
	DurationMs int64         `json:"durationMs"`
	Nodes      int           `json:"nodes"`
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	p, st, err := h.UC.NewPuzzle(c.Request.Context(), req.Difficulty, req.Seed)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	lang := req.Language
	if lang == "" {
		lang = "en"
	}
	resp := generateResp{
		Puzzle:     p.Puzzle,
		Difficulty: p.Difficulty.String(),
		Label:      localizedLabel(lang, p.Difficulty),
		Seed:       p.Seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	}
	if req.IncludeSolution {
		resp.Solution = &p.Solution
	}
	if req.Variation != "" && req.Variation != string(variations.Classic) {
		themed, syms := variations.Convert(&p.Puzzle, variations.Kind(req.Variation), req.Theme, req.CustomSymbols)
		resp.Themed = &themed
		resp.Symbols = syms[:]
	}
	c.JSON(http.StatusOK, resp)
}

// ---- Validate (conflict check) ----

type validateReq struct {
	Board domain.Grid `json:"board"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Conflicts(c.Request.Context(), &req.Board)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if conflicts == nil {
		conflicts = []domain.CellCoord{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": ok, "conflicts": conflicts})
}

// ---- Validate solution ----

type validateSolutionReq struct {
	Puzzle   domain.Grid `json:"puzzle"`
	Solution domain.Grid `json:"solution"`
}

func (h *Handler) handleValidateSolution(c *gin.Context) {
	var req validateSolutionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	ok, err := h.UC.ValidateSolution(c.Request.Context(), &req.Puzzle, &req.Solution)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": ok})
}

// ---- Solve ----

type solveReq struct {
	Board domain.Grid `json:"board"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	// The solver assumes a consistent board: it only tries candidates 1..9
	// and never re-checks givens, so reject bad input here.
	for r := 0; r < 9; r++ {
		for col := 0; col < 9; col++ {
			if req.Board[r][col] > 9 {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("cell %d,%d out of range", r, col)})
				return
			}
		}
	}
	if ok, conflicts, err := h.UC.Conflicts(c.Request.Context(), &req.Board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	} else if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board has conflicts", "conflicts": conflicts})
		return
	}
	out, st, err := h.UC.Solve(c.Request.Context(), &req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "nodes": st.Nodes})
		return
	}
	c.JSON(http.StatusOK, gin.H{"board": out, "durationMs": st.Duration.Milliseconds(), "nodes": st.Nodes})
}

// ---- Hint ----

func (h *Handler) handleHint(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	hint, found, err := h.UC.Hint(c.Request.Context(), &req.Board)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": found, "hint": hint})
}

// ---- Variations ----

func (h *Handler) handleVariations(c *gin.Context) {
	c.JSON(http.StatusOK, variations.Available())
}

// ---- Daily puzzle ----

func (h *Handler) handleDaily(c *gin.Context) {
	p, err := h.UC.DailyPuzzle(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	lang := c.DefaultQuery("language", "en")
	c.JSON(http.StatusOK, gin.H{
		"puzzle":          p.Puzzle,
		"difficulty":      p.Difficulty.String(),
		"difficultyLabel": localizedLabel(lang, p.Difficulty),
		"date":            time.Now().Format("2006-01-02"),
	})
}

type checkDailyReq struct {
	Solution domain.Grid `json:"solution"`
}

func (h *Handler) handleCheckDaily(c *gin.Context) {
	var req checkDailyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	ok, err := h.UC.CheckDaily(c.Request.Context(), time.Now(), &req.Solution)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"correct": ok})
}

// ---- Scores ----

type submitScoreReq struct {
	Name        string `json:"name" binding:"required"`
	Difficulty  string `json:"difficulty" binding:"required"`
	TimeSeconds int    `json:"timeSeconds"`
	HintsUsed   int    `json:"hintsUsed"`
}

func (h *Handler) handleSubmitScore(c *gin.Context) {
	var req submitScoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	e, err := h.UC.SubmitScore(c.Request.Context(), req.Name, req.Difficulty, req.TimeSeconds, req.HintsUsed)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": e})
}

func (h *Handler) handleLeaderboard(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	scores, err := h.UC.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if scores == nil {
		scores = []domain.ScoreEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": scores})
}
