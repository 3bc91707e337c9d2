package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ucakyunus/sudoku/internal/domain"
	"github.com/ucakyunus/sudoku/internal/game"
	"github.com/ucakyunus/sudoku/internal/solver"
	"github.com/ucakyunus/sudoku/internal/usecase"
	"github.com/ucakyunus/sudoku/internal/validator"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new-game", h.handleNewGame)
	mux.HandleFunc("/api/game", h.handleGame)
	mux.HandleFunc("/api/move", h.handleMove)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/suggest", h.handleSuggest)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/scores", h.handleScores)
	mux.HandleFunc("/ws/game", h.handleEvents)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

// statusFor maps expected domain errors onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, validator.ErrOutOfRange),
		errors.Is(err, game.ErrInitialCell),
		errors.Is(err, game.ErrNoEmptyCell):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errResp{Error: "method not allowed"})
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// ---- New game / session state ----

type newGameReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type newGameResp struct {
	Game       game.State `json:"game"`
	Seed       int64      `json:"seed"`
	DurationMs int64      `json:"durationMs,omitempty"`
	Nodes      int        `json:"nodes,omitempty"`
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if !decode(w, r, &req) {
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, st, err := h.UC.NewGame(r.Context(), seed, domain.ParseDifficulty(req.Difficulty))
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, newGameResp{
		Game:       s.Snapshot(),
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

func (h *Handler) handleGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errResp{Error: "method not allowed"})
		return
	}
	st, err := h.UC.Session(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ---- Move ----

type moveReq struct {
	ID string `json:"id"`
	game.Move
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveReq
	if !decode(w, r, &req) {
		return
	}
	res, err := h.UC.Move(r.Context(), req.ID, req.Move)
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ---- Hints ----

// handleHint reveals a solution digit inside a session. Row/col are
// optional; the default picks the first empty or wrong cell.
type hintReq struct {
	ID  string `json:"id"`
	Row *int   `json:"row,omitempty"`
	Col *int   `json:"col,omitempty"`
}

type hintResp struct {
	Cell domain.Cell `json:"cell"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if !decode(w, r, &req) {
		return
	}
	row, col := -1, -1
	if req.Row != nil && req.Col != nil {
		row, col = *req.Row, *req.Col
	}
	cell, err := h.UC.RevealCell(r.Context(), req.ID, row, col)
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Cell: cell})
}

// handleSuggest runs the logic hinter over an arbitrary board.
type suggestReq struct {
	Board domain.Grid `json:"board"`
}

type suggestResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if !decode(w, r, &req) {
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), &req.Board, domain.StrategySingles)
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, suggestResp{Found: ok, Hint: hh})
}

// ---- Solve / Validate / Generate ----

type solveReq struct {
	Board domain.Grid `json:"board"`
}

type solveResp struct {
	Solvable   bool        `json:"solvable"`
	Board      domain.Grid `json:"board,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decode(w, r, &req) {
		return
	}
	out, st, err := h.UC.Solve(r.Context(), &req.Board)
	if errors.Is(err, solver.ErrNoSolution) {
		// An unsolvable grid is an answer, not a server failure.
		writeJSON(w, http.StatusOK, solveResp{Solvable: false, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{Solvable: true, Board: out, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

type validateReq struct {
	Board domain.Grid `json:"board"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Complete  bool               `json:"complete"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if !decode(w, r, &req) {
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &req.Board)
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Complete: ok && req.Board.Full(), Conflicts: conflicts})
}

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Grid `json:"board"`
	Seed       int64       `json:"seed"`
	Difficulty string      `json:"difficulty"`
	Givens     int         `json:"givens"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !decode(w, r, &req) {
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, _, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		writeJSON(w, statusFor(err), errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Board:      p.Givens,
		Seed:       seed,
		Difficulty: diff.String(),
		Givens:     p.Givens.Filled(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Leaderboard ----

type submitScoreReq struct {
	ID     string `json:"id"`
	Player string `json:"player"`
}

type scoresResp struct {
	Difficulty string              `json:"difficulty"`
	Scores     []domain.ScoreEntry `json:"scores"`
}

func (h *Handler) handleScores(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		diff := domain.ParseDifficulty(r.URL.Query().Get("difficulty"))
		scores, err := h.UC.TopScores(r.Context(), diff)
		if err != nil {
			writeJSON(w, statusFor(err), errResp{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, scoresResp{Difficulty: diff.String(), Scores: scores})
	case http.MethodPost:
		var req submitScoreReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
			writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON or missing id"})
			return
		}
		e, err := h.UC.SubmitScore(r.Context(), req.ID, req.Player)
		if err != nil {
			writeJSON(w, statusFor(err), errResp{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, e)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errResp{Error: "method not allowed"})
	}
}
