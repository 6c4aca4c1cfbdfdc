package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"budgetpilot/domain"
	"budgetpilot/service"
)

const defaultRecentLimit = 20

type BudgetHandler struct {
	service *service.BudgetService
}

func NewBudgetHandler(service *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: service}
}

// Calculate handles POST /budget/calculate. Validation failures in the
// engine map to 400, everything else to 500.
func (h *BudgetHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		respondError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var input domain.BudgetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Debug().Err(err).Msg("failed to decode budget request")
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Msg("budget calculation failed")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// encode into a buffer first so a failure never writes a partial body
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		log.Error().Err(err).Msg("failed to encode budget response")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Debug().Err(err).Msg("failed to write budget response")
	}
}

// Recent handles GET /budget/recent.
func (h *BudgetHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"calculations": h.service.Recent(limit),
	})
}
