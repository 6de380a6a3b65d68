package handlers

import (
	"net/http"

	"github.com/Shamsear/kickoff/middleware"
	"github.com/Shamsear/kickoff/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

// organizerMatchIDs reads the tournament and match ids and the caller.
func organizerMatchIDs(w http.ResponseWriter, r *http.Request) (userID, tournamentID, matchID int, ok bool) {
	ids, err := getIDsFromURL(r, "tournamentID", "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return 0, 0, 0, false
	}
	userID, err = middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return 0, 0, 0, false
	}
	return userID, ids[0], ids[1], true
}

// List godoc
// @Summary List the matches of a tournament
// @Tags matches
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} map[string]interface{}
// @Router /tournaments/{tournamentID}/matches [get]
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.ListMatches(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get godoc
// @Summary Get a match with its legs
// @Tags matches
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param matchID path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /tournaments/{tournamentID}/matches/{matchID} [get]
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	ids, err := getIDsFromURL(r, "tournamentID", "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetMatch(r.Context(), ids[0], ids[1])
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SaveResult godoc
// @Summary Record the result of a match
// @Tags matches
// @Description Solo matches take score1/score2. Team matches take team1_player_goals/team2_player_goals or a list of sub_matches, which replaces every stored leg. A level knockout result with tiebreaker_type creates the tiebreaker series.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param matchID path int true "Match ID"
// @Param input body services.ResultInput true "Result"
// @Success 200 {object} services.ResultOutcome
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string "Invalid score or player"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/matches/{matchID}/result [post]
func (h *MatchHandler) SaveResult(w http.ResponseWriter, r *http.Request) {
	userID, tournamentID, matchID, ok := organizerMatchIDs(w, r)
	if !ok {
		return
	}

	var input services.ResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	outcome, err := h.matchService.SaveResult(r.Context(), userID, tournamentID, matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, outcome, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, tournamentID, matchID, ok := organizerMatchIDs(w, r)
	if !ok {
		return
	}

	match, err := h.matchService.StartMatch(r.Context(), userID, tournamentID, matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reset godoc
// @Summary Clear the result and legs of a match
// @Tags matches
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param matchID path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/matches/{matchID}/reset [post]
func (h *MatchHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, tournamentID, matchID, ok := organizerMatchIDs(w, r)
	if !ok {
		return
	}

	match, err := h.matchService.ResetMatch(r.Context(), userID, tournamentID, matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, tournamentID, matchID, ok := organizerMatchIDs(w, r)
	if !ok {
		return
	}

	if err := h.matchService.DeleteMatch(r.Context(), userID, tournamentID, matchID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
