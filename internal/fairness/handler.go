package fairness

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fairsplit/pkg/middleware"
	"fairsplit/pkg/response"
)

// Handler handles HTTP requests for fairness insights
type Handler struct {
	service *Service
}

// NewHandler creates a new fairness handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for insight endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/fairness", h.Fairness)
	return r
}

// Fairness handles GET /insights/fairness
// @Summary      Fairness insights
// @Description  Analyze the current user's contribution history: scores, trend, patterns, and recommendations
// @Tags         insights
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Report}
// @Router       /insights/fairness [get]
func (h *Handler) Fairness(w http.ResponseWriter, r *http.Request) {
	subject := middleware.GetSubject(r.Context())

	report, err := h.service.Insights(r.Context(), subject)
	if err != nil {
		response.InternalError(w, "Failed to load fairness insights")
		return
	}

	response.JSON(w, http.StatusOK, report)
}
