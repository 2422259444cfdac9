package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-2.5-flash"

	temperature     = 0.7
	maxOutputTokens = 500

	systemPrompt = `You are Morrow, an AI financial coach. You're warm, friendly, and non-judgmental.
Your goal is to help users build better money habits through behavioral insights and gentle nudges.
Keep responses conversational, concise, and encouraging. Use emojis sparingly but appropriately.
Focus on:
- Behavioral economics principles (temporal landmarks, mental accounting, loss aversion)
- Positive reinforcement and encouragement
- Practical, actionable advice
- Understanding emotional relationships with money
Never be preachy or condescending. Always be supportive.`
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Coach answers chat messages with Gemini, grounding every reply in the
// user's financial context.
type Coach struct {
	generator contentGenerator
	model     string
}

func NewCoach(ctx context.Context, apiKey, model string) (*Coach, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	if model == "" {
		model = DefaultModel
	}

	return &Coach{
		generator: client.Models,
		model:     model,
	}, nil
}

func (c *Coach) Reply(ctx context.Context, financialContext domain.FinancialContext, messages []domain.ChatMessage) (string, error) {
	instruction, err := systemInstruction(financialContext)
	if err != nil {
		return "", err
	}

	contents := make([]*genai.Content, 0, len(messages))
	for _, message := range messages {
		contents = append(contents, &genai.Content{
			Role:  contentRole(message.Role),
			Parts: []*genai.Part{{Text: message.Content}},
		})
	}

	resp, err := c.generator.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		Temperature:       genai.Ptr[float32](temperature),
		MaxOutputTokens:   maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", errors.New("empty response from model")
	}

	return reply, nil
}

func contentRole(role domain.ChatRole) string {
	if role == domain.ChatRoleAssistant {
		return "model"
	}

	return "user"
}

type promptTransaction struct {
	Date     string `json:"date"`
	Merchant string `json:"merchant,omitempty"`
	Category string `json:"category,omitempty"`
	Amount   string `json:"amount"`
}

type promptCategory struct {
	Category string `json:"category"`
	Spent    string `json:"spent"`
}

type promptContext struct {
	VaultBalance       string              `json:"vault_balance"`
	RewardBalance      string              `json:"reward_balance_usdc"`
	SpendByCategory    []promptCategory    `json:"spend_last_30_days"`
	RecentTransactions []promptTransaction `json:"recent_transactions"`
}

func systemInstruction(financialContext domain.FinancialContext) (string, error) {
	prompt := promptContext{
		VaultBalance:       financialContext.VaultBalance.StringFixed(2),
		RewardBalance:      financialContext.RewardBalance.StringFixed(2),
		SpendByCategory:    make([]promptCategory, 0, len(financialContext.CategoryTotals)),
		RecentTransactions: make([]promptTransaction, 0, len(financialContext.RecentTransactions)),
	}

	for _, total := range financialContext.CategoryTotals {
		prompt.SpendByCategory = append(prompt.SpendByCategory, promptCategory{
			Category: total.Category,
			Spent:    total.Total.StringFixed(2),
		})
	}

	for _, t := range financialContext.RecentTransactions {
		prompt.RecentTransactions = append(prompt.RecentTransactions, promptTransaction{
			Date:     t.Date.Format(time.DateOnly),
			Merchant: t.MerchantName,
			Category: t.CategoryTag,
			Amount:   t.Amount.StringFixed(2),
		})
	}

	raw, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode financial context: %w", err)
	}

	return systemPrompt + "\n\nThe user's current finances (positive amounts are spending):\n" + string(raw), nil
}
