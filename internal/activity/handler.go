package activity

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fairsplit/pkg/response"
)

// Handler handles HTTP requests for the activity feed
type Handler struct {
	service *Service
}

// NewHandler creates a new activity handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for activity endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

// List handles GET /activity
// @Summary      Activity feed
// @Description  List recent activity entries, optionally scoped to one group
// @Tags         activity
// @Produce      json
// @Param        group_id query int false "Group ID"
// @Param        limit query int false "Max entries" default(20)
// @Success      200 {object} response.APIResponse{data=[]Activity}
// @Failure      400 {object} response.APIResponse
// @Router       /activity [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var groupID int64
	if raw := r.URL.Query().Get("group_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid group_id")
			return
		}
		groupID = parsed
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	activities, err := h.service.List(r.Context(), groupID, limit)
	if err != nil {
		response.InternalError(w, "Failed to list activities")
		return
	}

	response.JSON(w, http.StatusOK, activities)
}
