package grpc

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	logmocks "github.com/morrow-app/morrow/gen/mocks/logging"
	savingsmocks "github.com/morrow-app/morrow/gen/mocks/savings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestWalletInterceptorFabric_GetInterceptor(t *testing.T) {
	t.Parallel()

	type deps struct {
		walletEnsurer *savingsmocks.MockWalletEnsurer
		logger        *logmocks.MockLogger
	}

	type testCase struct {
		name string
		ctx  context.Context

		prepareFn func(t *testing.T, d *deps)

		expectedHandled bool
		expectedErrCode codes.Code
	}

	withUser := context.WithValue(context.Background(), userIDContextKey, "user-1")

	tests := []testCase{
		{
			name: "wallet ensured",
			ctx:  withUser,
			prepareFn: func(t *testing.T, d *deps) {
				d.walletEnsurer.EXPECT().EnsureWallet(gomock.Any(), "user-1").Return(nil)
			},
			expectedHandled: true,
			expectedErrCode: codes.OK,
		},
		{
			name: "store failure",
			ctx:  withUser,
			prepareFn: func(t *testing.T, d *deps) {
				d.walletEnsurer.EXPECT().EnsureWallet(gomock.Any(), "user-1").Return(assert.AnError)
				d.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErrCode: codes.Internal,
		},
		{
			name:            "no user in context",
			ctx:             context.Background(),
			prepareFn:       func(t *testing.T, d *deps) {},
			expectedErrCode: codes.Internal,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			d := &deps{
				walletEnsurer: savingsmocks.NewMockWalletEnsurer(ctrl),
				logger:        logmocks.NewMockLogger(ctrl),
			}
			tt.prepareFn(t, d)
			fabric := NewWalletInterceptorFabric(d.walletEnsurer, d.logger)

			handled := false
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				handled = true
				return nil, nil
			}

			_, err := fabric.GetInterceptor()(tt.ctx, nil, nil, handler)
			assert.Equal(t, tt.expectedHandled, handled)
			if tt.expectedErrCode == codes.OK {
				require.NoError(t, err)
				return
			}

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedErrCode, st.Code())
		})
	}
}
