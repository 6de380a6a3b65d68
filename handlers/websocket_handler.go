package handlers

import (
	"net/http"

	"github.com/Shamsear/kickoff/logging"
	"github.com/Shamsear/kickoff/models"
	"github.com/Shamsear/kickoff/realtime"
	"github.com/Shamsear/kickoff/services"
)

type WebSocketHandler struct {
	hub               *realtime.Hub
	tournamentService services.TournamentService
	logger            *logging.Logger
}

func NewWebSocketHandler(hub *realtime.Hub, ts services.TournamentService, logger *logging.Logger) *WebSocketHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WebSocketHandler{
		hub:               hub,
		tournamentService: ts,
		logger:            logger.With("handler", "websocket"),
	}
}

// ServeWs attaches a viewer to the room of one tournament.
// Clients connect to /ws/tournaments/{tournamentID}.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.tournamentService.GetTournament(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	room := models.TournamentRoom(tournamentID)
	// The upgrader has already answered the client when this fails.
	if err := h.hub.ServeWS(w, r, room); err != nil {
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", "tournament_id", tournamentID, "error", err)
		return
	}
	h.logger.DebugContext(r.Context(), "viewer connected", "room", room)
}
