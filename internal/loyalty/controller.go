package loyalty

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "tavola/internal/errors"
	"tavola/internal/validation"
)

// Controller serves the customer-facing loyalty endpoints.
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

func (c *Controller) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	balance, err := c.service.Balance(r.Context(), email)
	if err != nil {
		c.handleError(w, "loading loyalty balance", err)
		return
	}

	resp := balanceResponse{
		Email:          balance.Account.Email,
		Points:         balance.Account.Points,
		LifetimePoints: balance.Account.LifetimePoints,
		Redemptions:    make([]redemptionResponse, 0, len(balance.Redemptions)),
	}
	if balance.Tier != nil {
		tier := toTierResponse(*balance.Tier)
		resp.Tier = &tier
	}
	for _, redemption := range balance.Redemptions {
		resp.Redemptions = append(resp.Redemptions, redemptionResponse{
			ID:          redemption.ID,
			RewardID:    redemption.RewardID,
			PointsSpent: redemption.PointsSpent,
			CreatedAt:   redemption.CreatedAt.Format(time.RFC3339),
		})
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleListRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := c.service.ActiveRewards(r.Context())
	if err != nil {
		c.handleError(w, "listing rewards", err)
		return
	}

	resp := make([]rewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		resp = append(resp, toRewardResponse(reward))
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{"rewards": resp})
}

func (c *Controller) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	var req RedeemRequest
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "redeeming reward", err)
		return
	}

	redemption, err := c.service.Redeem(r.Context(), req.Email, req.RewardID)
	if err != nil {
		c.handleError(w, "redeeming reward", err)
		return
	}

	c.writeJSON(w, http.StatusCreated, redemptionResponse{
		ID:          redemption.ID,
		RewardID:    redemption.RewardID,
		PointsSpent: redemption.PointsSpent,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
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

	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "CONFLICT",
			"message": ce.Message,
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
