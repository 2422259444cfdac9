package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	savingsapi "github.com/morrow-app/morrow/api/savings/v1"
	mocks "github.com/morrow-app/morrow/gen/mocks/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRewardsHandler_GetWallet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockRewardsService(ctrl)

	wallet := &savingsapi.Wallet{
		UserID:               "user-1",
		Balance:              "12.50",
		TotalLifetimeRewards: "22.50",
		Entries: []*savingsapi.RewardEntry{
			{ID: "e2", Amount: "-10.00", Currency: "USDC", Kind: "redemption", RedemptionCode: "AB12-CD34-EF56-7890"},
			{ID: "e1", Amount: "22.50", Currency: "USDC", Kind: "windfall", RelatedSavingsAmount: "450.00"},
		},
	}
	service.EXPECT().GetWallet(gomock.Any()).Return(wallet, nil)

	c, writer := newJSONContext(t, http.MethodGet, nil)
	NewRewardsHandler(service).GetWallet(c)

	require.Equal(t, http.StatusOK, writer.Code)
	var response savingsapi.Wallet
	require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &response))
	assert.Equal(t, *wallet, response)
}

func TestRewardsHandler_ListEntries(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		query          string
		expectedStatus int

		prepareFn func(t *testing.T, service *mocks.MockRewardsService)
	}

	tests := []testCase{
		{
			name:           "default limit",
			query:          "",
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *mocks.MockRewardsService) {
				service.EXPECT().ListEntries(gomock.Any(), int32(0)).Return([]*savingsapi.RewardEntry{}, nil)
			},
		},
		{
			name:           "explicit limit",
			query:          "?limit=5",
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *mocks.MockRewardsService) {
				service.EXPECT().ListEntries(gomock.Any(), int32(5)).Return([]*savingsapi.RewardEntry{{ID: "e1"}}, nil)
			},
		},
		{
			name:           "negative limit",
			query:          "?limit=-1",
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *mocks.MockRewardsService) {},
		},
		{
			name:           "not a number",
			query:          "?limit=ten",
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *mocks.MockRewardsService) {},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockRewardsService(ctrl)
			tt.prepareFn(t, service)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/wallet/entries"+tt.query, nil)

			NewRewardsHandler(service).ListEntries(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestRewardsHandler_Redeem(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    string
		expectedStatus int

		prepareFn func(t *testing.T, service *mocks.MockRewardsService)
	}

	tests := []testCase{
		{
			name:           "redeemed",
			requestBody:    `{"gift_card_id":"amazon","amount":10}`,
			expectedStatus: http.StatusCreated,
			prepareFn: func(t *testing.T, service *mocks.MockRewardsService) {
				service.EXPECT().Redeem(gomock.Any(), "amazon", "10").
					Return(&savingsapi.RewardEntry{ID: "e1", Amount: "-10.00", RedemptionCode: "AB12-CD34-EF56-7890"}, nil)
			},
		},
		{
			name:           "insufficient balance",
			requestBody:    `{"gift_card_id":"amazon","amount":25}`,
			expectedStatus: http.StatusConflict,
			prepareFn: func(t *testing.T, service *mocks.MockRewardsService) {
				service.EXPECT().Redeem(gomock.Any(), "amazon", "25").
					Return(nil, status.Error(codes.FailedPrecondition, "insufficient reward balance"))
			},
		},
		{
			name:           "unknown gift card",
			requestBody:    `{"gift_card_id":"steam","amount":10}`,
			expectedStatus: http.StatusNotFound,
			prepareFn: func(t *testing.T, service *mocks.MockRewardsService) {
				service.EXPECT().Redeem(gomock.Any(), "steam", "10").
					Return(nil, status.Error(codes.NotFound, "gift card steam not found"))
			},
		},
		{
			name:           "missing gift card",
			requestBody:    `{"amount":10}`,
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *mocks.MockRewardsService) {},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockRewardsService(ctrl)
			tt.prepareFn(t, service)

			c, writer := newJSONContext(t, http.MethodPost, tt.requestBody)
			NewRewardsHandler(service).Redeem(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestRewardsHandler_Donate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockRewardsService(ctrl)
	service.EXPECT().Donate(gomock.Any(), "givedirectly", "5").
		Return(nil, status.Error(codes.Unavailable, "payment rail unavailable"))

	c, writer := newJSONContext(t, http.MethodPost, `{"charity_id":"givedirectly","amount":"5"}`)
	NewRewardsHandler(service).Donate(c)

	assert.Equal(t, http.StatusBadGateway, writer.Code)
}

func TestRewardsHandler_SetPayoutAddress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockRewardsService(ctrl)
	service.EXPECT().SetPayoutAddress(gomock.Any(), "0xabc").Return(nil)

	c, writer := newJSONContext(t, http.MethodPut, `{"address":"0xabc"}`)
	NewRewardsHandler(service).SetPayoutAddress(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, writer.Code)

	c, writer = newJSONContext(t, http.MethodPut, `{}`)
	NewRewardsHandler(service).SetPayoutAddress(c)
	assert.Equal(t, http.StatusBadRequest, writer.Code)
}

func TestRewardsHandler_ClaimStreakBonus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockRewardsService(ctrl)
	service.EXPECT().ClaimStreakBonus(gomock.Any(), int32(5)).
		Return(nil, status.Error(codes.FailedPrecondition, "no bonus for a 5 week streak"))

	c, writer := newJSONContext(t, http.MethodPost, `{"streak_weeks":5}`)
	NewRewardsHandler(service).ClaimStreakBonus(c)
	assert.Equal(t, http.StatusConflict, writer.Code)

	c, writer = newJSONContext(t, http.MethodPost, `{"streak_weeks":0}`)
	NewRewardsHandler(service).ClaimStreakBonus(c)
	assert.Equal(t, http.StatusBadRequest, writer.Code)
}

func TestRewardsHandler_GetCatalog(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockRewardsService(ctrl)
	service.EXPECT().GetCatalog(gomock.Any()).Return(&savingsapi.GetCatalogResponse{
		GiftCards: []*savingsapi.GiftCard{{ID: "amazon", Brand: "Amazon", Denominations: []string{"10.00", "25.00"}}},
		Charities: []*savingsapi.Charity{},
	}, nil)

	c, writer := newJSONContext(t, http.MethodGet, nil)
	NewRewardsHandler(service).GetCatalog(c)

	require.Equal(t, http.StatusOK, writer.Code)
	var response savingsapi.GetCatalogResponse
	require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &response))
	require.Len(t, response.GiftCards, 1)
	assert.Equal(t, []string{"10.00", "25.00"}, response.GiftCards[0].Denominations)
}
