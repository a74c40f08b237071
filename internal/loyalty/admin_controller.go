package loyalty

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

// AdminController owns the back-office CRUD for loyalty tiers and rewards.
type AdminController struct {
	tiers    TierRepository
	rewards  RewardRepository
	validate *validatorv10.Validate
	logger   *zap.Logger
}

func NewAdminController(
	tiers TierRepository,
	rewards RewardRepository,
	validate *validatorv10.Validate,
	logger *zap.Logger,
) *AdminController {
	return &AdminController{
		tiers:    tiers,
		rewards:  rewards,
		validate: validate,
		logger:   logger,
	}
}

// Tiers

func (c *AdminController) HandleListTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := c.tiers.List(r.Context())
	if err != nil {
		c.handleError(w, "listing tiers", err)
		return
	}

	resp := make([]tierResponse, 0, len(tiers))
	for _, tier := range tiers {
		resp = append(resp, toTierResponse(tier))
	}
	c.writeJSON(w, http.StatusOK, map[string]interface{}{"tiers": resp})
}

func (c *AdminController) HandleGetTier(w http.ResponseWriter, r *http.Request) {
	tier, err := c.tiers.GetByID(r.Context(), chi.URLParam(r, "tierId"))
	if err != nil {
		c.handleError(w, "getting tier", err)
		return
	}
	c.writeJSON(w, http.StatusOK, toTierResponse(*tier))
}

func (c *AdminController) HandleCreateTier(w http.ResponseWriter, r *http.Request) {
	var req TierPayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "creating tier", err)
		return
	}

	tier := domain.LoyaltyTier{
		ID:         uuid.New().String(),
		Name:       req.Name,
		MinPoints:  req.MinPoints,
		Multiplier: req.Multiplier,
		Benefits:   req.Benefits,
		Active:     req.Active,
	}

	if err := c.tiers.Create(r.Context(), tier); err != nil {
		c.handleError(w, "creating tier", err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toTierResponse(tier))
}

func (c *AdminController) HandleUpdateTier(w http.ResponseWriter, r *http.Request) {
	var req TierPayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "updating tier", err)
		return
	}

	tier := domain.LoyaltyTier{
		ID:         chi.URLParam(r, "tierId"),
		Name:       req.Name,
		MinPoints:  req.MinPoints,
		Multiplier: req.Multiplier,
		Benefits:   req.Benefits,
		Active:     req.Active,
	}

	if err := c.tiers.Update(r.Context(), tier); err != nil {
		c.handleError(w, "updating tier", err)
		return
	}

	c.writeJSON(w, http.StatusOK, toTierResponse(tier))
}

func (c *AdminController) HandleDeleteTier(w http.ResponseWriter, r *http.Request) {
	c.handleDelete(w, r.Context(), "deleting tier", func(ctx context.Context) error {
		return c.tiers.Delete(ctx, chi.URLParam(r, "tierId"))
	})
}

// Rewards

func (c *AdminController) HandleListRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := c.rewards.List(r.Context())
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

func (c *AdminController) HandleGetReward(w http.ResponseWriter, r *http.Request) {
	reward, err := c.rewards.GetByID(r.Context(), chi.URLParam(r, "rewardId"))
	if err != nil {
		c.handleError(w, "getting reward", err)
		return
	}
	c.writeJSON(w, http.StatusOK, toRewardResponse(*reward))
}

func (c *AdminController) HandleCreateReward(w http.ResponseWriter, r *http.Request) {
	var req RewardPayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "creating reward", err)
		return
	}

	reward := domain.Reward{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		PointsCost:  req.PointsCost,
		Active:      req.Active,
	}

	if err := c.rewards.Create(r.Context(), reward); err != nil {
		c.handleError(w, "creating reward", err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toRewardResponse(reward))
}

func (c *AdminController) HandleUpdateReward(w http.ResponseWriter, r *http.Request) {
	var req RewardPayload
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		c.handleError(w, "updating reward", err)
		return
	}

	reward := domain.Reward{
		ID:          chi.URLParam(r, "rewardId"),
		Name:        req.Name,
		Description: req.Description,
		PointsCost:  req.PointsCost,
		Active:      req.Active,
	}

	if err := c.rewards.Update(r.Context(), reward); err != nil {
		c.handleError(w, "updating reward", err)
		return
	}

	c.writeJSON(w, http.StatusOK, toRewardResponse(reward))
}

func (c *AdminController) HandleDeleteReward(w http.ResponseWriter, r *http.Request) {
	c.handleDelete(w, r.Context(), "deleting reward", func(ctx context.Context) error {
		return c.rewards.Delete(ctx, chi.URLParam(r, "rewardId"))
	})
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
