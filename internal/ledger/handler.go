package ledger

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fairsplit/pkg/middleware"
	"fairsplit/pkg/response"
)

// Handler handles HTTP requests for balance reads
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for balance endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.Current)
	r.Get("/summary", h.Summary)
	r.Get("/groups", h.Groups)
	r.Get("/groups/{groupId}", h.Group)
	r.Post("/refresh", h.Refresh)

	return r
}

// Current handles GET /balances/me
// @Summary      Consolidated balance
// @Description  Get the current user's cross-group balance record
// @Tags         balances
// @Produce      json
// @Success      200 {object} response.APIResponse{data=BalanceRecord}
// @Router       /balances/me [get]
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	subject := middleware.GetSubject(r.Context())

	rec, err := h.service.CurrentBalance(r.Context(), subject)
	if err != nil {
		response.InternalError(w, "Failed to get balance")
		return
	}

	response.JSON(w, http.StatusOK, rec)
}

// Summary handles GET /balances/summary
// @Summary      Balance summary
// @Description  Get headline totals and counterparty counts for the current user
// @Tags         balances
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Summary}
// @Router       /balances/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	subject := middleware.GetSubject(r.Context())

	summary, err := h.service.Summary(r.Context(), subject)
	if err != nil {
		response.InternalError(w, "Failed to get balance summary")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// Groups handles GET /balances/groups
// @Summary      Per-group balances
// @Description  Get the current user's balance record for every group
// @Tags         balances
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]BalanceRecord}
// @Router       /balances/groups [get]
func (h *Handler) Groups(w http.ResponseWriter, r *http.Request) {
	subject := middleware.GetSubject(r.Context())

	records, err := h.service.GroupBalances(r.Context(), subject)
	if err != nil {
		response.InternalError(w, "Failed to get group balances")
		return
	}
	if records == nil {
		records = []*BalanceRecord{}
	}

	response.JSON(w, http.StatusOK, records)
}

// Group handles GET /balances/groups/{groupId}
// @Summary      Group balance
// @Description  Get the current user's balance record for one group
// @Tags         balances
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=BalanceRecord}
// @Router       /balances/groups/{groupId} [get]
func (h *Handler) Group(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}
	subject := middleware.GetSubject(r.Context())

	rec, err := h.service.GroupBalance(r.Context(), subject, groupID)
	if err != nil {
		response.InternalError(w, "Failed to get group balance")
		return
	}

	response.JSON(w, http.StatusOK, rec)
}

// Refresh handles POST /balances/refresh
// @Summary      Rebuild balances
// @Description  Rebuild the current user's balance records from unsettled expenses. Clears prior settlement state.
// @Tags         balances
// @Produce      json
// @Success      200 {object} response.APIResponse{data=BalanceRecord}
// @Router       /balances/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	subject := middleware.GetSubject(r.Context())

	if err := h.service.Refresh(r.Context(), subject); err != nil {
		response.InternalError(w, "Failed to refresh balances")
		return
	}

	rec, err := h.service.CurrentBalance(r.Context(), subject)
	if err != nil {
		response.InternalError(w, "Failed to get balance")
		return
	}

	response.JSON(w, http.StatusOK, rec)
}
