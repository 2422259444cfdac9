package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
	"github.com/morrow-app/morrow/internal/gateway/domain"
)

// Amounts are accepted as JSON numbers or numeric strings.

type withdrawalImpactRequestBody struct {
	GoalAmount     json.Number `json:"goal_amount" binding:"required"`
	CurrentBalance json.Number `json:"current_balance" binding:"required"`
	WithdrawAmount json.Number `json:"withdraw_amount" binding:"required"`
}

type transactionBody struct {
	ID           string      `json:"id" binding:"required"`
	Date         string      `json:"date" binding:"required"`
	Amount       json.Number `json:"amount" binding:"required"`
	MerchantName string      `json:"merchant_name"`
	CategoryTag  string      `json:"category_tag"`
}

type syncRequestBody struct {
	Transactions []transactionBody `json:"transactions" binding:"required,dive"`
}

type claimRequestBody struct {
	EntityID      string      `json:"entity_id" binding:"required"`
	FromAccountID string      `json:"from_account_id"`
	ToAccountID   string      `json:"to_account_id"`
	Amount        json.Number `json:"amount" binding:"required"`
	Kind          string      `json:"kind" binding:"required,oneof=windfall sweep roundup"`
}

type createVaultRequestBody struct {
	EntityID string `json:"entity_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type chatMessageBody struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type chatRequestBody struct {
	EntityID string            `json:"entity_id"`
	Messages []chatMessageBody `json:"messages" binding:"required,min=1,dive"`
}

type SavingsHandler struct {
	service domain.SavingsService
}

func NewSavingsHandler(service domain.SavingsService) *SavingsHandler {
	return &SavingsHandler{
		service: service,
	}
}

func (h *SavingsHandler) GetOpportunities(c *gin.Context) {
	opportunities, err := h.service.GetOpportunities(c)
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, opportunities)
}

func (h *SavingsHandler) GetFreshStart(c *gin.Context) {
	freshStart, err := h.service.GetFreshStart(c)
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, freshStart)
}

func (h *SavingsHandler) CalculateWithdrawalImpact(c *gin.Context) {
	var body withdrawalImpactRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	impact, err := h.service.CalculateWithdrawalImpact(c, &savingsapi.WithdrawalImpactRequest{
		GoalAmount:     body.GoalAmount.String(),
		CurrentBalance: body.CurrentBalance.String(),
		WithdrawAmount: body.WithdrawAmount.String(),
	})
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, impact)
}

func (h *SavingsHandler) SyncTransactions(c *gin.Context) {
	var body syncRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	transactions := make([]*savingsapi.Transaction, 0, len(body.Transactions))
	for _, t := range body.Transactions {
		transactions = append(transactions, &savingsapi.Transaction{
			ID:           t.ID,
			Date:         t.Date,
			Amount:       t.Amount.String(),
			MerchantName: t.MerchantName,
			CategoryTag:  t.CategoryTag,
		})
	}

	result, err := h.service.SyncTransactions(c, transactions)
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SavingsHandler) Claim(c *gin.Context) {
	var body claimRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	result, err := h.service.Claim(c, &savingsapi.ClaimRequest{
		EntityID:      body.EntityID,
		FromAccountID: body.FromAccountID,
		ToAccountID:   body.ToAccountID,
		Amount:        body.Amount.String(),
		Kind:          body.Kind,
	})
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *SavingsHandler) CreateVault(c *gin.Context) {
	var body createVaultRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	vault, err := h.service.CreateVault(c, body.EntityID, body.Name)
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vault)
}

func (h *SavingsHandler) Chat(c *gin.Context) {
	var body chatRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	messages := make([]*savingsapi.ChatMessage, 0, len(body.Messages))
	for _, m := range body.Messages {
		messages = append(messages, &savingsapi.ChatMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	reply, err := h.service.Chat(c, body.EntityID, messages)
	if err != nil {
		handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
