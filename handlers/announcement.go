package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/services"
)

// AnnouncementHandler, duyuru endpoint'lerini yöneten struct.
type AnnouncementHandler struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementHandler, constructor.
func NewAnnouncementHandler(announcementService services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// List godoc
// GET /announcements
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, announcements)
}

// Create godoc
// POST /announcements
// Body: { "announcement", "club_id", "user_id" }
// Yanıt: 201 {"content": "..."} — kontrat sadece içeriği geri döner.
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAnnouncementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	announcement, err := h.announcementService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, map[string]string{"content": announcement.Content})
}

// ListByClub godoc
// GET /club/{id}/announcements
// Bilinmeyen kulüp için 404 dönmez — boş liste döner.
func (h *AnnouncementHandler) ListByClub(w http.ResponseWriter, r *http.Request) {
	clubID := r.PathValue("id")

	announcements, err := h.announcementService.ListByClub(r.Context(), clubID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, announcements)
}
