package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/morrow-app/morrow/internal/gateway/domain"
)

const (
	LimitQueryKey = "limit"
)

type payoutAddressRequestBody struct {
	Address string `json:"address" binding:"required"`
}

type redeemRequestBody struct {
	GiftCardID string      `json:"gift_card_id" binding:"required"`
	Amount     json.Number `json:"amount" binding:"required"`
}

type donateRequestBody struct {
	CharityID string      `json:"charity_id" binding:"required"`
	Amount    json.Number `json:"amount" binding:"required"`
}

type streakBonusRequestBody struct {
	StreakWeeks int32 `json:"streak_weeks" binding:"required,gt=0"`
}

type RewardsHandler struct {
	service domain.RewardsService
}

func NewRewardsHandler(service domain.RewardsService) *RewardsHandler {
	return &RewardsHandler{
		service: service,
	}
}

func (h *RewardsHandler) GetWallet(c *gin.Context) {
	wallet, err := h.service.GetWallet(c)
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

func (h *RewardsHandler) ListEntries(c *gin.Context) {
	var limit int32

	if raw := c.Query(LimitQueryKey); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": "limit must be a positive integer"})
			return
		}
		limit = int32(parsed)
	}

	entries, err := h.service.ListEntries(c, limit)
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *RewardsHandler) SetPayoutAddress(c *gin.Context) {
	var body payoutAddressRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	err := h.service.SetPayoutAddress(c, body.Address)
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RewardsHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.service.GetCatalog(c)
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalog)
}

func (h *RewardsHandler) Redeem(c *gin.Context) {
	var body redeemRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	entry, err := h.service.Redeem(c, body.GiftCardID, body.Amount.String())
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *RewardsHandler) Donate(c *gin.Context) {
	var body donateRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	entry, err := h.service.Donate(c, body.CharityID, body.Amount.String())
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *RewardsHandler) ClaimStreakBonus(c *gin.Context) {
	var body streakBonusRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	entry, err := h.service.ClaimStreakBonus(c, body.StreakWeeks)
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}
