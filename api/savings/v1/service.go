package savingsapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "savings.v1.SavingsService"

const (
	SavingsService_Analyze_FullMethodName           = "/" + ServiceName + "/Analyze"
	SavingsService_FreshStart_FullMethodName        = "/" + ServiceName + "/FreshStart"
	SavingsService_WithdrawalImpact_FullMethodName  = "/" + ServiceName + "/WithdrawalImpact"
	SavingsService_SyncTransactions_FullMethodName  = "/" + ServiceName + "/SyncTransactions"
	SavingsService_Claim_FullMethodName             = "/" + ServiceName + "/Claim"
	SavingsService_CreateVault_FullMethodName       = "/" + ServiceName + "/CreateVault"
	SavingsService_GetWallet_FullMethodName         = "/" + ServiceName + "/GetWallet"
	SavingsService_ListRewardEntries_FullMethodName = "/" + ServiceName + "/ListRewardEntries"
	SavingsService_SetPayoutAddress_FullMethodName  = "/" + ServiceName + "/SetPayoutAddress"
	SavingsService_GetCatalog_FullMethodName        = "/" + ServiceName + "/GetCatalog"
	SavingsService_Redeem_FullMethodName            = "/" + ServiceName + "/Redeem"
	SavingsService_Donate_FullMethodName            = "/" + ServiceName + "/Donate"
	SavingsService_ClaimStreakBonus_FullMethodName  = "/" + ServiceName + "/ClaimStreakBonus"
	SavingsService_CoachChat_FullMethodName         = "/" + ServiceName + "/CoachChat"
)

type SavingsServiceServer interface {
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error)
	FreshStart(context.Context, *FreshStartRequest) (*FreshStartResponse, error)
	WithdrawalImpact(context.Context, *WithdrawalImpactRequest) (*WithdrawalImpactResponse, error)
	SyncTransactions(context.Context, *SyncTransactionsRequest) (*SyncTransactionsResponse, error)
	Claim(context.Context, *ClaimRequest) (*ClaimResponse, error)
	CreateVault(context.Context, *CreateVaultRequest) (*CreateVaultResponse, error)
	GetWallet(context.Context, *GetWalletRequest) (*GetWalletResponse, error)
	ListRewardEntries(context.Context, *ListRewardEntriesRequest) (*ListRewardEntriesResponse, error)
	SetPayoutAddress(context.Context, *SetPayoutAddressRequest) (*SetPayoutAddressResponse, error)
	GetCatalog(context.Context, *GetCatalogRequest) (*GetCatalogResponse, error)
	Redeem(context.Context, *RedeemRequest) (*RedeemResponse, error)
	Donate(context.Context, *DonateRequest) (*DonateResponse, error)
	ClaimStreakBonus(context.Context, *ClaimStreakBonusRequest) (*ClaimStreakBonusResponse, error)
	CoachChat(context.Context, *CoachChatRequest) (*CoachChatResponse, error)
}

// UnimplementedSavingsServiceServer answers every call with codes.Unimplemented.
type UnimplementedSavingsServiceServer struct{}

func (UnimplementedSavingsServiceServer) Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Analyze not implemented")
}

func (UnimplementedSavingsServiceServer) FreshStart(context.Context, *FreshStartRequest) (*FreshStartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FreshStart not implemented")
}

func (UnimplementedSavingsServiceServer) WithdrawalImpact(context.Context, *WithdrawalImpactRequest) (*WithdrawalImpactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method WithdrawalImpact not implemented")
}

func (UnimplementedSavingsServiceServer) SyncTransactions(context.Context, *SyncTransactionsRequest) (*SyncTransactionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SyncTransactions not implemented")
}

func (UnimplementedSavingsServiceServer) Claim(context.Context, *ClaimRequest) (*ClaimResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Claim not implemented")
}

func (UnimplementedSavingsServiceServer) CreateVault(context.Context, *CreateVaultRequest) (*CreateVaultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateVault not implemented")
}

func (UnimplementedSavingsServiceServer) GetWallet(context.Context, *GetWalletRequest) (*GetWalletResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetWallet not implemented")
}

func (UnimplementedSavingsServiceServer) ListRewardEntries(context.Context, *ListRewardEntriesRequest) (*ListRewardEntriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRewardEntries not implemented")
}

func (UnimplementedSavingsServiceServer) SetPayoutAddress(context.Context, *SetPayoutAddressRequest) (*SetPayoutAddressResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetPayoutAddress not implemented")
}

func (UnimplementedSavingsServiceServer) GetCatalog(context.Context, *GetCatalogRequest) (*GetCatalogResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCatalog not implemented")
}

func (UnimplementedSavingsServiceServer) Redeem(context.Context, *RedeemRequest) (*RedeemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Redeem not implemented")
}

func (UnimplementedSavingsServiceServer) Donate(context.Context, *DonateRequest) (*DonateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Donate not implemented")
}

func (UnimplementedSavingsServiceServer) ClaimStreakBonus(context.Context, *ClaimStreakBonusRequest) (*ClaimStreakBonusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClaimStreakBonus not implemented")
}

func (UnimplementedSavingsServiceServer) CoachChat(context.Context, *CoachChatRequest) (*CoachChatResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CoachChat not implemented")
}

func RegisterSavingsServiceServer(s grpc.ServiceRegistrar, srv SavingsServiceServer) {
	s.RegisterService(&SavingsService_ServiceDesc, srv)
}

var SavingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SavingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(SavingsService_Analyze_FullMethodName, "Analyze", SavingsServiceServer.Analyze),
		unaryMethod(SavingsService_FreshStart_FullMethodName, "FreshStart", SavingsServiceServer.FreshStart),
		unaryMethod(SavingsService_WithdrawalImpact_FullMethodName, "WithdrawalImpact", SavingsServiceServer.WithdrawalImpact),
		unaryMethod(SavingsService_SyncTransactions_FullMethodName, "SyncTransactions", SavingsServiceServer.SyncTransactions),
		unaryMethod(SavingsService_Claim_FullMethodName, "Claim", SavingsServiceServer.Claim),
		unaryMethod(SavingsService_CreateVault_FullMethodName, "CreateVault", SavingsServiceServer.CreateVault),
		unaryMethod(SavingsService_GetWallet_FullMethodName, "GetWallet", SavingsServiceServer.GetWallet),
		unaryMethod(SavingsService_ListRewardEntries_FullMethodName, "ListRewardEntries", SavingsServiceServer.ListRewardEntries),
		unaryMethod(SavingsService_SetPayoutAddress_FullMethodName, "SetPayoutAddress", SavingsServiceServer.SetPayoutAddress),
		unaryMethod(SavingsService_GetCatalog_FullMethodName, "GetCatalog", SavingsServiceServer.GetCatalog),
		unaryMethod(SavingsService_Redeem_FullMethodName, "Redeem", SavingsServiceServer.Redeem),
		unaryMethod(SavingsService_Donate_FullMethodName, "Donate", SavingsServiceServer.Donate),
		unaryMethod(SavingsService_ClaimStreakBonus_FullMethodName, "ClaimStreakBonus", SavingsServiceServer.ClaimStreakBonus),
		unaryMethod(SavingsService_CoachChat_FullMethodName, "CoachChat", SavingsServiceServer.CoachChat),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/savings/v1",
}

func unaryMethod[Req any, Resp any](
	fullMethod, name string,
	call func(SavingsServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SavingsServiceServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SavingsServiceServer), ctx, req.(*Req))
			}

			return interceptor(ctx, in, info, handler)
		},
	}
}
