package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/services"
)

// ClubHandler, kulüp ve üyelik endpoint'lerini yöneten struct.
type ClubHandler struct {
	clubService       services.ClubService
	membershipService services.MembershipService
}

// NewClubHandler, constructor.
func NewClubHandler(clubService services.ClubService, membershipService services.MembershipService) *ClubHandler {
	return &ClubHandler{
		clubService:       clubService,
		membershipService: membershipService,
	}
}

// List godoc
// GET /clubs
// Tüm kulüpleri düz liste olarak döner (detaysız — event/duyuru yok).
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, clubs)
}

// Create godoc
// POST /clubs
// Body: { "name", "description" }
// Yanıt: 201, oluşturulan kulüp.
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClubRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	club, err := h.clubService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, club)
}

// Get godoc
// GET /clubs/{id}
// Kulübü etkinlik ve duyuru listeleriyle birlikte döner. Listeler boşsa
// bile yanıtta boş array olarak bulunur (null değil).
func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	clubID := r.PathValue("id")

	detail, err := h.clubService.GetDetail(r.Context(), clubID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, detail)
}

// Join godoc
// POST /api/clubs/{id}
// Body: { "username" }
// Katılan kullanıcı body'deki username'den çözülür, token'dan değil.
func (h *ClubHandler) Join(w http.ResponseWriter, r *http.Request) {
	clubID := r.PathValue("id")

	var req models.MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.membershipService.Join(r.Context(), clubID, req.Username); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Joined club successfully"})
}

// Leave godoc
// POST /clubs/{id}/leave
// Body: { "username" }
func (h *ClubHandler) Leave(w http.ResponseWriter, r *http.Request) {
	clubID := r.PathValue("id")

	var req models.MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.membershipService.Leave(r.Context(), clubID, req.Username); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Left club successfully"})
}
