package savingsapi

// Amounts are decimal strings, dates are YYYY-MM-DD and timestamps RFC 3339.

type WindfallEvidence struct {
	Amount         string `json:"amount"`
	MerchantName   string `json:"merchant_name,omitempty"`
	Date           string `json:"date"`
	BaselineIncome string `json:"baseline_income"`
}

type SweepEvidence struct {
	UnspentBudget string `json:"unspent_budget"`
	WeeklyAverage string `json:"weekly_average"`
	ThisWeekSpend string `json:"this_week_spend"`
}

type RoundupEvidence struct {
	Amount           string `json:"amount"`
	TransactionCount int32  `json:"transaction_count"`
	AverageRoundup   string `json:"average_roundup"`
}

// Suggestion carries exactly one evidence field, the one matching Kind.
type Suggestion struct {
	Kind              string            `json:"kind"`
	Title             string            `json:"title"`
	RecommendedAmount string            `json:"recommended_amount"`
	Message           string            `json:"message"`
	Windfall          *WindfallEvidence `json:"windfall,omitempty"`
	Sweep             *SweepEvidence    `json:"sweep,omitempty"`
	Roundup           *RoundupEvidence  `json:"roundup,omitempty"`
}

type Landmark struct {
	Kind              string `json:"kind"`
	Name              string `json:"name"`
	Message           string `json:"message"`
	SuggestedIncrease string `json:"suggested_increase"`
}

type AnalyzeRequest struct{}

type AnalyzeResponse struct {
	Windfall         *Suggestion `json:"windfall,omitempty"`
	Sweep            *Suggestion `json:"sweep,omitempty"`
	Roundup          *Suggestion `json:"roundup,omitempty"`
	Landmark         *Landmark   `json:"landmark,omitempty"`
	HasOpportunities bool        `json:"has_opportunities"`
}

type FreshStartRequest struct{}

type FreshStartResponse struct {
	Landmark *Landmark `json:"landmark,omitempty"`
}

type WithdrawalImpactRequest struct {
	GoalAmount     string `json:"goal_amount"`
	CurrentBalance string `json:"current_balance"`
	WithdrawAmount string `json:"withdraw_amount"`
}

type WithdrawalImpactResponse struct {
	ProgressBeforePct    string `json:"progress_before_pct"`
	ProgressAfterPct     string `json:"progress_after_pct"`
	ProgressLostPct      string `json:"progress_lost_pct"`
	EstimatedDaysDelayed int64  `json:"estimated_days_delayed"`
	Message              string `json:"message"`
}

type Transaction struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Amount       string `json:"amount"`
	MerchantName string `json:"merchant_name,omitempty"`
	CategoryTag  string `json:"category_tag,omitempty"`
}

type SyncTransactionsRequest struct {
	Transactions []*Transaction `json:"transactions"`
}

type SyncTransactionsResponse struct {
	Received int32 `json:"received"`
	Saved    int32 `json:"saved"`
}

type RewardEntry struct {
	ID                   string `json:"id"`
	Amount               string `json:"amount"`
	Currency             string `json:"currency"`
	Kind                 string `json:"kind"`
	Description          string `json:"description"`
	CreatedAt            string `json:"created_at"`
	Settled              bool   `json:"settled"`
	PaymentID            string `json:"payment_id,omitempty"`
	TransactionHash      string `json:"transaction_hash,omitempty"`
	RelatedSavingsAmount string `json:"related_savings_amount,omitempty"`
	RedemptionCode       string `json:"redemption_code,omitempty"`
}

type Wallet struct {
	UserID               string         `json:"user_id"`
	Balance              string         `json:"balance"`
	TotalLifetimeRewards string         `json:"total_lifetime_rewards"`
	PayoutAddress        string         `json:"payout_address,omitempty"`
	Entries              []*RewardEntry `json:"entries"`
}

type ClaimRequest struct {
	EntityID      string `json:"entity_id"`
	FromAccountID string `json:"from_account_id,omitempty"`
	ToAccountID   string `json:"to_account_id,omitempty"`
	Amount        string `json:"amount"`
	Kind          string `json:"kind"`
}

type ClaimResponse struct {
	TransferID string       `json:"transfer_id"`
	Entry      *RewardEntry `json:"entry"`
}

type Account struct {
	ID       string `json:"id"`
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
	Balance  string `json:"balance"`
	IsMain   bool   `json:"is_main"`
}

type CreateVaultRequest struct {
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
}

type CreateVaultResponse struct {
	Vault *Account `json:"vault"`
}

type GetWalletRequest struct{}

type GetWalletResponse struct {
	Wallet *Wallet `json:"wallet"`
}

type ListRewardEntriesRequest struct {
	Limit int32 `json:"limit"`
}

type ListRewardEntriesResponse struct {
	Entries []*RewardEntry `json:"entries"`
}

type SetPayoutAddressRequest struct {
	Address string `json:"address"`
}

type SetPayoutAddressResponse struct{}

type GiftCard struct {
	ID            string   `json:"id"`
	Brand         string   `json:"brand"`
	Denominations []string `json:"denominations"`
}

type Charity struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	WalletAddress string `json:"wallet_address"`
	Description   string `json:"description,omitempty"`
}

type GetCatalogRequest struct{}

type GetCatalogResponse struct {
	GiftCards []*GiftCard `json:"gift_cards"`
	Charities []*Charity  `json:"charities"`
}

type RedeemRequest struct {
	GiftCardID string `json:"gift_card_id"`
	Amount     string `json:"amount"`
}

type RedeemResponse struct {
	Entry *RewardEntry `json:"entry"`
}

type DonateRequest struct {
	CharityID string `json:"charity_id"`
	Amount    string `json:"amount"`
}

type DonateResponse struct {
	Entry *RewardEntry `json:"entry"`
}

type ClaimStreakBonusRequest struct {
	StreakWeeks int32 `json:"streak_weeks"`
}

type ClaimStreakBonusResponse struct {
	Entry *RewardEntry `json:"entry"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CoachChatRequest struct {
	EntityID string         `json:"entity_id,omitempty"`
	Messages []*ChatMessage `json:"messages"`
}

type CoachChatResponse struct {
	Reply string `json:"reply"`
}
