package settlement

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fairsplit/pkg/middleware"
	"fairsplit/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/all", h.SettleAll)
	r.Post("/groups/{groupId}", h.SettleGroup)
	r.Post("/counterparty/{name}", h.SettleWithCounterparty)

	return r
}

// SettleAll handles POST /settlements/all
// @Summary      Settle everything
// @Description  Clear the current user's consolidated balance. Underlying expenses stay unsettled.
// @Tags         settlements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=ledger.BalanceRecord}
// @Router       /settlements/all [post]
func (h *Handler) SettleAll(w http.ResponseWriter, r *http.Request) {
	subject := middleware.GetSubject(r.Context())

	rec, err := h.service.SettleAll(r.Context(), subject)
	if err != nil {
		response.InternalError(w, "Failed to settle balances")
		return
	}

	response.JSON(w, http.StatusOK, rec)
}

// SettleGroup handles POST /settlements/groups/{groupId}
// @Summary      Settle one group
// @Description  Clear the current user's balance in one group and rebuild the consolidated view
// @Tags         settlements
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=ledger.BalanceRecord}
// @Router       /settlements/groups/{groupId} [post]
func (h *Handler) SettleGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}
	subject := middleware.GetSubject(r.Context())

	rec, err := h.service.SettleGroup(r.Context(), subject, groupID)
	if err != nil {
		response.InternalError(w, "Failed to settle group balance")
		return
	}

	response.JSON(w, http.StatusOK, rec)
}

// SettleWithCounterparty handles POST /settlements/counterparty/{name}
// @Summary      Settle with one person
// @Description  Remove a counterparty from both sides of the consolidated balance, across all groups
// @Tags         settlements
// @Produce      json
// @Param        name path string true "Counterparty display name"
// @Success      200 {object} response.APIResponse{data=ledger.BalanceRecord}
// @Router       /settlements/counterparty/{name} [post]
func (h *Handler) SettleWithCounterparty(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		response.BadRequest(w, "Invalid counterparty name")
		return
	}
	subject := middleware.GetSubject(r.Context())

	rec, err := h.service.SettleWithCounterparty(r.Context(), subject, name)
	if err != nil {
		response.InternalError(w, "Failed to settle with counterparty")
		return
	}

	response.JSON(w, http.StatusOK, rec)
}
