package scheduling

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tavola/internal/domain"
	apperrors "tavola/internal/errors"
	"tavola/internal/validation"
)

// AdminController owns the back-office CRUD for delivery zones, pickup
// locations and special events.
type AdminController struct {
	zones     ZoneRepository
	locations LocationRepository
	events    EventRepository
	validate  *validatorv10.Validate
	logger    *zap.Logger
}

func NewAdminController(
	zones ZoneRepository,
	locations LocationRepository,
	events EventRepository,
	validate *validatorv10.Validate,
	logger *zap.Logger,
) *AdminController {
	return &AdminController{
		zones:     zones,
		locations: locations,
		events:    events,
		validate:  validate,
		logger:    logger,
	}
}

// Zones

func (c *AdminController) HandleListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := c.zones.List(r.Context())
	if err != nil {
		c.handleError(w, "listing zones", err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]interface{}{"zones": zones})
}

func (c *AdminController) HandleGetZone(w http.ResponseWriter, r *http.Request) {
	zone, err := c.zones.GetByID(r.Context(), chi.URLParam(r, "zoneId"))
	if err != nil {
		c.handleError(w, "getting zone", err)
		return
	}
	c.writeJSON(w, http.StatusOK, zone)
}

func (c *AdminController) HandleCreateZone(w http.ResponseWriter, r *http.Request) {
	var req ZonePayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "creating zone", err)
		return
	}

	zone := domain.DeliveryZone{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		ZipCodes:           req.ZipCodes,
		Fee:                req.Fee,
		MinimumOrderAmount: req.MinimumOrderAmount,
		EstimatedTime:      req.EstimatedTime,
		Active:             req.Active,
	}

	if err := c.zones.Create(r.Context(), zone); err != nil {
		c.handleError(w, "creating zone", err)
		return
	}

	c.writeJSON(w, http.StatusCreated, zone)
}

func (c *AdminController) HandleUpdateZone(w http.ResponseWriter, r *http.Request) {
	var req ZonePayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "updating zone", err)
		return
	}

	zone := domain.DeliveryZone{
		ID:                 chi.URLParam(r, "zoneId"),
		Name:               req.Name,
		ZipCodes:           req.ZipCodes,
		Fee:                req.Fee,
		MinimumOrderAmount: req.MinimumOrderAmount,
		EstimatedTime:      req.EstimatedTime,
		Active:             req.Active,
	}

	if err := c.zones.Update(r.Context(), zone); err != nil {
		c.handleError(w, "updating zone", err)
		return
	}

	c.writeJSON(w, http.StatusOK, zone)
}

func (c *AdminController) HandleDeleteZone(w http.ResponseWriter, r *http.Request) {
	c.handleDelete(w, r.Context(), "deleting zone", func(ctx context.Context) error {
		return c.zones.Delete(ctx, chi.URLParam(r, "zoneId"))
	})
}

// Pickup locations

func (c *AdminController) HandleListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.locations.List(r.Context())
	if err != nil {
		c.handleError(w, "listing locations", err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]interface{}{"locations": locations})
}

func (c *AdminController) HandleGetLocation(w http.ResponseWriter, r *http.Request) {
	location, err := c.locations.GetByID(r.Context(), chi.URLParam(r, "locationId"))
	if err != nil {
		c.handleError(w, "getting location", err)
		return
	}
	c.writeJSON(w, http.StatusOK, location)
}

func (c *AdminController) HandleCreateLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationPayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "creating location", err)
		return
	}

	location := domain.PickupLocation{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Address:       req.Address,
		Hours:         req.Hours,
		EstimatedTime: req.EstimatedTime,
		Active:        req.Active,
	}

	if err := c.locations.Create(r.Context(), location); err != nil {
		c.handleError(w, "creating location", err)
		return
	}

	c.writeJSON(w, http.StatusCreated, location)
}

func (c *AdminController) HandleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationPayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "updating location", err)
		return
	}

	location := domain.PickupLocation{
		ID:            chi.URLParam(r, "locationId"),
		Name:          req.Name,
		Address:       req.Address,
		Hours:         req.Hours,
		EstimatedTime: req.EstimatedTime,
		Active:        req.Active,
	}

	if err := c.locations.Update(r.Context(), location); err != nil {
		c.handleError(w, "updating location", err)
		return
	}

	c.writeJSON(w, http.StatusOK, location)
}

func (c *AdminController) HandleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	c.handleDelete(w, r.Context(), "deleting location", func(ctx context.Context) error {
		return c.locations.Delete(ctx, chi.URLParam(r, "locationId"))
	})
}

// Special events

func (c *AdminController) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.events.List(r.Context())
	if err != nil {
		c.handleError(w, "listing events", err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

func (c *AdminController) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.events.GetByID(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		c.handleError(w, "getting event", err)
		return
	}
	c.writeJSON(w, http.StatusOK, event)
}

func (c *AdminController) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	req, err := c.decodeEventPayload(r)
	if err != nil {
		c.handleError(w, "creating event", err)
		return
	}

	event := domain.SpecialEvent{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Slots:          req.toSlots(),
		Holiday:        req.Holiday,
		Active:         req.Active,
		SpecialMenu:    req.SpecialMenu,
		SpecialPricing: req.SpecialPricing,
	}

	if err := c.events.Create(r.Context(), event); err != nil {
		c.handleError(w, "creating event", err)
		return
	}

	c.writeJSON(w, http.StatusCreated, event)
}

func (c *AdminController) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	req, err := c.decodeEventPayload(r)
	if err != nil {
		c.handleError(w, "updating event", err)
		return
	}

	event := domain.SpecialEvent{
		ID:             chi.URLParam(r, "eventId"),
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Slots:          req.toSlots(),
		Holiday:        req.Holiday,
		Active:         req.Active,
		SpecialMenu:    req.SpecialMenu,
		SpecialPricing: req.SpecialPricing,
	}

	if err := c.events.Update(r.Context(), event); err != nil {
		c.handleError(w, "updating event", err)
		return
	}

	c.writeJSON(w, http.StatusOK, event)
}

func (c *AdminController) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	c.handleDelete(w, r.Context(), "deleting event", func(ctx context.Context) error {
		return c.events.Delete(ctx, chi.URLParam(r, "eventId"))
	})
}

func (c *AdminController) decodeEventPayload(r *http.Request) (*EventPayload, error) {
	var req EventPayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		return nil, err
	}
	if req.EndDate < req.StartDate {
		return nil, apperrors.NewValidationError("invalid date range", apperrors.ValidationDetail{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}
	return &req, nil
}

func (c *AdminController) handleDelete(w http.ResponseWriter, ctx context.Context, action string, del func(context.Context) error) {
	if err := del(ctx); err != nil {
		c.handleError(w, action, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *AdminController) handleError(w http.ResponseWriter, action string, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "VALIDATION_ERROR",
			"message": ve.Message,
			"details": ve.Details,
		})
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	c.logger.Error(action+" failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *AdminController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
