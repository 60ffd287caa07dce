package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/services"
)

// EventHandler, etkinlik endpoint'lerini yöneten struct.
type EventHandler struct {
	eventService services.EventService
}

// NewEventHandler, constructor.
func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List godoc
// GET /events
// Tüm etkinlikleri döner — kulüp filtresi yok.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, events)
}

// Create godoc
// POST /events
// Body: { "username", "name", "date", "club_id" }
// date formatı YYYY-MM-DD — aksi halde 400.
// Yanıt: 201, oluşturulan etkinlik.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.eventService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, event)
}
