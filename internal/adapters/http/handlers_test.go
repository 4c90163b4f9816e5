package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/puzzlefeed/internal/domain"
	"svw.info/puzzlefeed/internal/generator"
	"svw.info/puzzlefeed/internal/hint"
	"svw.info/puzzlefeed/internal/infrastructure/storage"
	"svw.info/puzzlefeed/internal/solver"
	"svw.info/puzzlefeed/internal/usecase"
	"svw.info/puzzlefeed/internal/validator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := solver.NewBacktrackingSolver()
	uc := usecase.NewService(
		s,
		generator.NewUniqueGenerator(s),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(t.TempDir()),
	)
	r := gin.New()
	New(uc).Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/generate", map[string]any{
		"difficulty":      "easy",
		"seed":            42,
		"includeSolution": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Puzzle     domain.Grid  `json:"puzzle"`
		Solution   *domain.Grid `json:"solution"`
		Difficulty string       `json:"difficulty"`
		Seed       int64        `json:"seed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "easy", resp.Difficulty)
	assert.Equal(t, int64(42), resp.Seed)
	require.NotNil(t, resp.Solution)

	blanks := resp.Puzzle.EmptyCount()
	assert.GreaterOrEqual(t, blanks, 35)
	assert.LessOrEqual(t, blanks, 40)
	assert.Equal(t, 0, resp.Solution.EmptyCount())
}

func TestGenerateRejectsUnknownDifficulty(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/generate", map[string]any{"difficulty": "invalid_tier"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown difficulty")
}

func TestGenerateThemed(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/generate", map[string]any{
		"difficulty": "easy",
		"seed":       7,
		"variation":  "emoji",
		"theme":      "animals",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Themed  *[9][9]string `json:"themed"`
		Symbols []string      `json:"symbols"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Themed)
	require.Len(t, resp.Symbols, 9)
	assert.Equal(t, "🐶", resp.Symbols[0])
}

func TestValidateSolutionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	// get a real pair first
	w := doJSON(t, r, http.MethodPost, "/api/generate", map[string]any{
		"difficulty":      "easy",
		"seed":            42,
		"includeSolution": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var pair struct {
		Puzzle   domain.Grid `json:"puzzle"`
		Solution domain.Grid `json:"solution"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))

	w = doJSON(t, r, http.MethodPost, "/api/validate-solution", map[string]any{
		"puzzle":   pair.Puzzle,
		"solution": pair.Solution,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)

	// contradict a given
	bad := pair.Solution
loop:
	for r2 := 0; r2 < 9; r2++ {
		for c := 0; c < 9; c++ {
			if pair.Puzzle[r2][c] != 0 {
				bad[r2][c] = bad[r2][c]%9 + 1
				break loop
			}
		}
	}
	w = doJSON(t, r, http.MethodPost, "/api/validate-solution", map[string]any{
		"puzzle":   pair.Puzzle,
		"solution": bad,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
}

func TestValidateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	clean := domain.Grid{}
	clean[0][0] = 5
	w := doJSON(t, r, http.MethodPost, "/api/validate", map[string]any{"board": clean})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Contains(t, w.Body.String(), `"conflicts":[]`)

	// duplicate 5 in row 0
	dirty := clean
	dirty[0][4] = 5
	w = doJSON(t, r, http.MethodPost, "/api/validate", map[string]any{"board": dirty})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK        bool               `json:"ok"`
		Conflicts []domain.CellCoord `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Conflicts)
}

func TestSolveRejectsBadBoards(t *testing.T) {
	r := newTestRouter(t)

	var outOfRange domain.Grid
	outOfRange[2][3] = 12
	w := doJSON(t, r, http.MethodPost, "/api/solve", map[string]any{"board": outOfRange})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "out of range")

	var conflicting domain.Grid
	conflicting[0][0] = 7
	conflicting[0][8] = 7
	w = doJSON(t, r, http.MethodPost, "/api/solve", map[string]any{"board": conflicting})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "board has conflicts")
}

func TestSolveEndpoint(t *testing.T) {
	r := newTestRouter(t)
	board := domain.Grid{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	w := doJSON(t, r, http.MethodPost, "/api/solve", map[string]any{"board": board})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Board domain.Grid `json:"board"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Board.EmptyCount())
}

func TestVariationsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/variations/available", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "classic")
	assert.Contains(t, w.Body.String(), "animals")
}

func TestDailyAndCheckSolution(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/puzzle-of-the-day", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"puzzle"`)

	// a second request serves the identical grid
	w2 := doJSON(t, r, http.MethodGet, "/api/puzzle-of-the-day", nil)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.JSONEq(t, w.Body.String(), w2.Body.String())
}

func TestScoreFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/submit-score", map[string]any{
		"name":        "ana",
		"difficulty":  "medium",
		"timeSeconds": 240,
		"hintsUsed":   1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/leaderboard?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana")

	// score requires a name
	w = doJSON(t, r, http.MethodPost, "/api/submit-score", map[string]any{"difficulty": "easy"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
