package menu

import (
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

type ItemPayload struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Price         int    `json:"price" validate:"required,gt=0"`
	Category      string `json:"category" validate:"required"`
	Available     bool   `json:"available"`
	AgeRestricted bool   `json:"ageRestricted"`
}

type Controller struct {
	repo     Repository
	validate *validatorv10.Validate
	logger   *zap.Logger
}

func NewController(repo Repository, validate *validatorv10.Validate, logger *zap.Logger) *Controller {
	return &Controller{
		repo:     repo,
		validate: validate,
		logger:   logger,
	}
}

// HandleListMenu serves the customer-facing menu: available items only.
func (c *Controller) HandleListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := c.repo.ListAvailable(r.Context())
	if err != nil {
		c.handleError(w, "listing menu", err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]interface{}{"items": toItemResponses(items)})
}

// Admin CRUD

func (c *Controller) HandleAdminListItems(w http.ResponseWriter, r *http.Request) {
	items, err := c.repo.List(r.Context())
	if err != nil {
		c.handleError(w, "listing menu items", err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]interface{}{"items": toItemResponses(items)})
}

func (c *Controller) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := c.repo.GetByID(r.Context(), chi.URLParam(r, "itemId"))
	if err != nil {
		c.handleError(w, "getting menu item", err)
		return
	}
	c.writeJSON(w, http.StatusOK, toItemResponse(*item))
}

func (c *Controller) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemPayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "creating menu item", err)
		return
	}

	item := domain.MenuItem{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Available:     req.Available,
		AgeRestricted: req.AgeRestricted,
	}

	if err := c.repo.Create(r.Context(), item); err != nil {
		c.handleError(w, "creating menu item", err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toItemResponse(item))
}

func (c *Controller) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemPayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "updating menu item", err)
		return
	}

	item := domain.MenuItem{
		ID:            chi.URLParam(r, "itemId"),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Available:     req.Available,
		AgeRestricted: req.AgeRestricted,
	}

	if err := c.repo.Update(r.Context(), item); err != nil {
		c.handleError(w, "updating menu item", err)
		return
	}

	c.writeJSON(w, http.StatusOK, toItemResponse(item))
}

func (c *Controller) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := c.repo.Delete(r.Context(), chi.URLParam(r, "itemId")); err != nil {
		c.handleError(w, "deleting menu item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type itemResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Price         int    `json:"price"`
	Category      string `json:"category"`
	Available     bool   `json:"available"`
	AgeRestricted bool   `json:"ageRestricted"`
}

func toItemResponse(item domain.MenuItem) itemResponse {
	return itemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		Price:         item.Price,
		Category:      item.Category,
		Available:     item.Available,
		AgeRestricted: item.AgeRestricted,
	}
}

func toItemResponses(items []domain.MenuItem) []itemResponse {
	responses := make([]itemResponse, len(items))
	for i, item := range items {
		responses[i] = toItemResponse(item)
	}
	return responses
}

func (c *Controller) handleError(w http.ResponseWriter, action string, err error) {
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

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
