package savingsapi

import (
	"context"

	"google.golang.org/grpc"
)

//go:generate mockgen -destination=../../../gen/mocks/grpc/mock_savings_client.go -package=mocks . SavingsServiceClient

type SavingsServiceClient interface {
	Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error)
	FreshStart(ctx context.Context, in *FreshStartRequest, opts ...grpc.CallOption) (*FreshStartResponse, error)
	WithdrawalImpact(ctx context.Context, in *WithdrawalImpactRequest, opts ...grpc.CallOption) (*WithdrawalImpactResponse, error)
	SyncTransactions(ctx context.Context, in *SyncTransactionsRequest, opts ...grpc.CallOption) (*SyncTransactionsResponse, error)
	Claim(ctx context.Context, in *ClaimRequest, opts ...grpc.CallOption) (*ClaimResponse, error)
	CreateVault(ctx context.Context, in *CreateVaultRequest, opts ...grpc.CallOption) (*CreateVaultResponse, error)
	GetWallet(ctx context.Context, in *GetWalletRequest, opts ...grpc.CallOption) (*GetWalletResponse, error)
	ListRewardEntries(ctx context.Context, in *ListRewardEntriesRequest, opts ...grpc.CallOption) (*ListRewardEntriesResponse, error)
	SetPayoutAddress(ctx context.Context, in *SetPayoutAddressRequest, opts ...grpc.CallOption) (*SetPayoutAddressResponse, error)
	GetCatalog(ctx context.Context, in *GetCatalogRequest, opts ...grpc.CallOption) (*GetCatalogResponse, error)
	Redeem(ctx context.Context, in *RedeemRequest, opts ...grpc.CallOption) (*RedeemResponse, error)
	Donate(ctx context.Context, in *DonateRequest, opts ...grpc.CallOption) (*DonateResponse, error)
	ClaimStreakBonus(ctx context.Context, in *ClaimStreakBonusRequest, opts ...grpc.CallOption) (*ClaimStreakBonusResponse, error)
	CoachChat(ctx context.Context, in *CoachChatRequest, opts ...grpc.CallOption) (*CoachChatResponse, error)
}

type savingsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSavingsServiceClient returns a client that always negotiates the JSON codec.
func NewSavingsServiceClient(cc grpc.ClientConnInterface) SavingsServiceClient {
	return &savingsServiceClient{cc: cc}
}

func (c *savingsServiceClient) Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error) {
	return invoke[AnalyzeResponse](ctx, c.cc, SavingsService_Analyze_FullMethodName, in, opts)
}

func (c *savingsServiceClient) FreshStart(ctx context.Context, in *FreshStartRequest, opts ...grpc.CallOption) (*FreshStartResponse, error) {
	return invoke[FreshStartResponse](ctx, c.cc, SavingsService_FreshStart_FullMethodName, in, opts)
}

func (c *savingsServiceClient) WithdrawalImpact(ctx context.Context, in *WithdrawalImpactRequest, opts ...grpc.CallOption) (*WithdrawalImpactResponse, error) {
	return invoke[WithdrawalImpactResponse](ctx, c.cc, SavingsService_WithdrawalImpact_FullMethodName, in, opts)
}

func (c *savingsServiceClient) SyncTransactions(ctx context.Context, in *SyncTransactionsRequest, opts ...grpc.CallOption) (*SyncTransactionsResponse, error) {
	return invoke[SyncTransactionsResponse](ctx, c.cc, SavingsService_SyncTransactions_FullMethodName, in, opts)
}

func (c *savingsServiceClient) Claim(ctx context.Context, in *ClaimRequest, opts ...grpc.CallOption) (*ClaimResponse, error) {
	return invoke[ClaimResponse](ctx, c.cc, SavingsService_Claim_FullMethodName, in, opts)
}

func (c *savingsServiceClient) CreateVault(ctx context.Context, in *CreateVaultRequest, opts ...grpc.CallOption) (*CreateVaultResponse, error) {
	return invoke[CreateVaultResponse](ctx, c.cc, SavingsService_CreateVault_FullMethodName, in, opts)
}

func (c *savingsServiceClient) GetWallet(ctx context.Context, in *GetWalletRequest, opts ...grpc.CallOption) (*GetWalletResponse, error) {
	return invoke[GetWalletResponse](ctx, c.cc, SavingsService_GetWallet_FullMethodName, in, opts)
}

func (c *savingsServiceClient) ListRewardEntries(ctx context.Context, in *ListRewardEntriesRequest, opts ...grpc.CallOption) (*ListRewardEntriesResponse, error) {
	return invoke[ListRewardEntriesResponse](ctx, c.cc, SavingsService_ListRewardEntries_FullMethodName, in, opts)
}

func (c *savingsServiceClient) SetPayoutAddress(ctx context.Context, in *SetPayoutAddressRequest, opts ...grpc.CallOption) (*SetPayoutAddressResponse, error) {
	return invoke[SetPayoutAddressResponse](ctx, c.cc, SavingsService_SetPayoutAddress_FullMethodName, in, opts)
}

func (c *savingsServiceClient) GetCatalog(ctx context.Context, in *GetCatalogRequest, opts ...grpc.CallOption) (*GetCatalogResponse, error) {
	return invoke[GetCatalogResponse](ctx, c.cc, SavingsService_GetCatalog_FullMethodName, in, opts)
}

func (c *savingsServiceClient) Redeem(ctx context.Context, in *RedeemRequest, opts ...grpc.CallOption) (*RedeemResponse, error) {
	return invoke[RedeemResponse](ctx, c.cc, SavingsService_Redeem_FullMethodName, in, opts)
}

func (c *savingsServiceClient) Donate(ctx context.Context, in *DonateRequest, opts ...grpc.CallOption) (*DonateResponse, error) {
	return invoke[DonateResponse](ctx, c.cc, SavingsService_Donate_FullMethodName, in, opts)
}

func (c *savingsServiceClient) ClaimStreakBonus(ctx context.Context, in *ClaimStreakBonusRequest, opts ...grpc.CallOption) (*ClaimStreakBonusResponse, error) {
	return invoke[ClaimStreakBonusResponse](ctx, c.cc, SavingsService_ClaimStreakBonus_FullMethodName, in, opts)
}

func (c *savingsServiceClient) CoachChat(ctx context.Context, in *CoachChatRequest, opts ...grpc.CallOption) (*CoachChatResponse, error) {
	return invoke[CoachChatResponse](ctx, c.cc, SavingsService_CoachChat_FullMethodName, in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}

	return out, nil
}
