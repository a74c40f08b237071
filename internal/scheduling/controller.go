package scheduling

import (
	"encoding/json"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "tavola/internal/errors"
	"tavola/internal/validation"
)

// Controller serves the customer-facing scheduling endpoints: delivery
// quotes, available dates, time slots and pickup locations.
type Controller struct {
	service  *Service
	validate *validatorv10.Validate
	logger   *zap.Logger
}

func NewController(service *Service, validate *validatorv10.Validate, logger *zap.Logger) *Controller {
	return &Controller{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

func (c *Controller) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve)
		return
	}

	quote, err := c.service.QuoteDelivery(r.Context(), req.Zip, req.Subtotal)
	if err != nil {
		c.logger.Error("delivery quote failed", zap.String("zip", req.Zip), zap.Error(err))
		c.writeInternalError(w)
		return
	}

	if quote.Zone == nil {
		c.writeJSON(w, http.StatusOK, QuoteResponse{
			Deliverable: false,
			Message:     "we don't deliver to this address yet",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, QuoteResponse{
		Deliverable:        true,
		ZoneID:             quote.Zone.ID,
		ZoneName:           quote.Zone.Name,
		Fee:                quote.Fee,
		MinimumOrderAmount: quote.MinimumOrderAmount,
		MeetsMinimum:       quote.MeetsMinimum,
		EstimatedTime:      quote.EstimatedTime,
	})
}

func (c *Controller) HandleAvailableDates(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, map[string][]string{"dates": c.service.AvailableDates()})
}

func (c *Controller) HandleSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		c.writeValidationError(w, apperrors.NewValidationError("date is required", apperrors.ValidationDetail{
			Field:   "date",
			Message: "date query parameter is required",
		}))
		return
	}

	result, err := c.service.SlotsForDate(r.Context(), date)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, ve)
			return
		}
		c.logger.Error("loading time slots failed", zap.String("date", date), zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusOK, SlotsResponse{
		Date:            result.Date,
		Slots:           result.Slots,
		HasSpecialSlots: result.HasSpecialSlots,
		EventNames:      result.EventNames,
	})
}

func (c *Controller) HandlePickupLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.service.PickupLocations(r.Context())
	if err != nil {
		c.logger.Error("loading pickup locations failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{"locations": locations})
}

func (c *Controller) writeValidationError(w http.ResponseWriter, ve *apperrors.ValidationError) {
	c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "VALIDATION_ERROR",
		"message": ve.Message,
		"details": ve.Details,
	})
}

func (c *Controller) writeInternalError(w http.ResponseWriter) {
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
