package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fairsplit/internal/expense/split"
	"fairsplit/internal/group"
	"fairsplit/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Post("/preview", h.Preview)
	r.Post("/scan-receipt", h.ScanReceipt)
	r.Get("/search", h.Search)
	r.Get("/recent", h.Recent)
	r.Get("/range", h.ByDateRange)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/settle", h.Settle)

	// Group-based listing
	r.Get("/group/{groupId}", h.ListByGroup)

	return r
}

// Create handles POST /expenses
// @Summary      Create a new expense
// @Description  Create an expense with splits calculated by the equal, custom, or percentage method
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.APIResponse{data=Expense}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	e, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound), errors.Is(err, ErrMemberNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, split.ErrSplitMismatch):
			response.UnprocessableEntity(w, err.Error())
		case errors.Is(err, split.ErrNoMembers),
			errors.Is(err, split.ErrNonPositiveAmount),
			errors.Is(err, split.ErrNilMethod),
			errors.Is(err, ErrUnknownSplitMethod):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to create expense")
		}
		return
	}

	response.JSON(w, http.StatusCreated, e)
}

// Preview handles POST /expenses/preview
// @Summary      Preview split amounts
// @Description  Run the split calculator without creating an expense, for live previews
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body PreviewSplitRequest true "Preview request"
// @Success      200 {object} response.APIResponse{data=PreviewSplitResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses/preview [post]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	preview, err := h.service.PreviewSplits(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound), errors.Is(err, ErrMemberNotFound):
			response.NotFound(w, err.Error())
		default:
			response.BadRequest(w, err.Error())
		}
		return
	}

	response.JSON(w, http.StatusOK, preview)
}

// ScanReceipt handles POST /expenses/scan-receipt
// @Summary      Scan a receipt
// @Description  Mocked receipt OCR returning extracted fields to prefill the expense form
// @Tags         expenses
// @Produce      json
// @Success      200 {object} response.APIResponse{data=ReceiptScan}
// @Router       /expenses/scan-receipt [post]
func (h *Handler) ScanReceipt(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.ScanReceipt(r.Context()))
}

// GetByID handles GET /expenses/{id}
// @Summary      Get expense by ID
// @Description  Get an expense with all its splits
// @Tags         expenses
// @Produce      json
// @Param        id path int true "Expense ID"
// @Success      200 {object} response.APIResponse{data=Expense}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	e, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get expense")
		return
	}

	response.JSON(w, http.StatusOK, e)
}

// ListByGroup handles GET /expenses/group/{groupId}
// @Summary      List expenses by group
// @Description  Get a paginated list of expenses for a group
// @Tags         expenses
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]Expense}
// @Router       /expenses/group/{groupId} [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	expenses, total, err := h.service.ListByGroup(r.Context(), groupID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, expenses, meta)
}

// Update handles PATCH /expenses/{id}
// @Summary      Update an expense
// @Description  Update an expense's description, category, receipt reference, or settled flag
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id path int true "Expense ID"
// @Param        request body UpdateExpenseRequest true "Expense update request"
// @Success      200 {object} response.APIResponse{data=Expense}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	var req UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	e, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update expense")
		return
	}

	response.JSON(w, http.StatusOK, e)
}

// Delete handles DELETE /expenses/{id}
// @Summary      Delete an expense
// @Description  Delete an expense and its splits
// @Tags         expenses
// @Produce      json
// @Param        id path int true "Expense ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete expense")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}

// Settle handles POST /expenses/{id}/settle
// @Summary      Settle an expense
// @Description  Mark an expense settled so it stops contributing to balances
// @Tags         expenses
// @Produce      json
// @Param        id path int true "Expense ID"
// @Success      200 {object} response.APIResponse{data=Expense}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id}/settle [post]
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	e, err := h.service.Settle(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to settle expense")
		return
	}

	response.JSON(w, http.StatusOK, e)
}

// Search handles GET /expenses/search
// @Summary      Search expenses
// @Description  Find expenses by description, payer name, or category
// @Tags         expenses
// @Produce      json
// @Param        q query string true "Search query"
// @Success      200 {object} response.APIResponse{data=[]Expense}
// @Router       /expenses/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.InternalError(w, "Failed to search expenses")
		return
	}

	response.JSON(w, http.StatusOK, expenses)
}

// Recent handles GET /expenses/recent
// @Summary      Recent expenses
// @Description  Get the most recently created expenses
// @Tags         expenses
// @Produce      json
// @Param        limit query int false "Number of expenses" default(5)
// @Success      200 {object} response.APIResponse{data=[]Expense}
// @Router       /expenses/recent [get]
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	expenses, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		response.InternalError(w, "Failed to list recent expenses")
		return
	}

	response.JSON(w, http.StatusOK, expenses)
}

// ByDateRange handles GET /expenses/range
// @Summary      Expenses by date range
// @Description  Get expenses created between two dates (YYYY-MM-DD)
// @Tags         expenses
// @Produce      json
// @Param        start query string true "Start date"
// @Param        end query string true "End date"
// @Success      200 {object} response.APIResponse{data=[]Expense}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses/range [get]
func (h *Handler) ByDateRange(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		response.BadRequest(w, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		response.BadRequest(w, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	expenses, err := h.service.ByDateRange(r.Context(), start, end.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	response.JSON(w, http.StatusOK, expenses)
}
