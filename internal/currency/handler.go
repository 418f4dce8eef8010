package currency

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fairsplit/internal/money"
	"fairsplit/pkg/response"
)

// ConvertRequest represents a conversion request
type ConvertRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	From   string  `json:"from" validate:"required,len=3"`
	To     string  `json:"to" validate:"required,len=3"`
}

// ConvertResponse represents a conversion result
type ConvertResponse struct {
	Amount    money.Amount `json:"amount"`
	Converted money.Amount `json:"converted"`
	From      string       `json:"from"`
	To        string       `json:"to"`
}

// Handler handles HTTP requests for currency operations
type Handler struct {
	service *Service
}

// NewHandler creates a new currency handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for currency endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Supported)
	r.Get("/rates", h.Rates)
	r.Post("/convert", h.Convert)
	r.Get("/{code}/history", h.History)

	return r
}

// Supported handles GET /currencies
// @Summary      Supported currencies
// @Description  List supported currencies with symbols and current USD rates
// @Tags         currencies
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Currency}
// @Router       /currencies [get]
func (h *Handler) Supported(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Supported())
}

// Rates handles GET /currencies/rates
// @Summary      Exchange rates
// @Description  Refresh and return the simulated USD-based rate table
// @Tags         currencies
// @Produce      json
// @Success      200 {object} response.APIResponse
// @Router       /currencies/rates [get]
func (h *Handler) Rates(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Rates())
}

// Convert handles POST /currencies/convert
// @Summary      Convert an amount
// @Description  Convert an amount between two currencies, for display only
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        request body ConvertRequest true "Conversion request"
// @Success      200 {object} response.APIResponse{data=ConvertResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /currencies/convert [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	amount := money.FromFloat(req.Amount)
	converted, err := h.service.Convert(amount, req.From, req.To)
	if err != nil {
		if errors.Is(err, ErrUnsupportedCurrency) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to convert currency")
		return
	}

	response.JSON(w, http.StatusOK, &ConvertResponse{
		Amount:    amount,
		Converted: converted,
		From:      req.From,
		To:        req.To,
	})
}

// History handles GET /currencies/{code}/history
// @Summary      Rate history
// @Description  Get simulated daily rate history for a currency
// @Tags         currencies
// @Produce      json
// @Param        code path string true "Currency code"
// @Param        days query int false "Number of days" default(7)
// @Success      200 {object} response.APIResponse{data=[]RatePoint}
// @Failure      400 {object} response.APIResponse
// @Router       /currencies/{code}/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	points, err := h.service.Historical(code, days)
	if err != nil {
		if errors.Is(err, ErrUnsupportedCurrency) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get rate history")
		return
	}

	response.JSON(w, http.StatusOK, points)
}
