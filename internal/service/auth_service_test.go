package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/internal/core/ports/mocks"
	"payment-orchestrator/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	svc      *AuthServiceImpl
	repo     *mocks.MockMerchantRepository
	hashSvc  *mocks.MockHashService
	encSvc   *mocks.MockEncryptionService
	tokenSvc *mocks.MockTokenService
}

func newAuthFixture(t *testing.T) authFixture {
	ctrl := gomock.NewController(t)
	f := authFixture{
		repo:     mocks.NewMockMerchantRepository(ctrl),
		hashSvc:  mocks.NewMockHashService(ctrl),
		encSvc:   mocks.NewMockEncryptionService(ctrl),
		tokenSvc: mocks.NewMockTokenService(ctrl),
	}
	f.svc = NewAuthService(f.repo, f.hashSvc, f.encSvc, f.tokenSvc)
	return f
}

func TestRegisterMintsPrefixedCredentials(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	req := ports.RegisterRequest{Username: "acme", Password: "S3cret!pass", MerchantName: "Acme Stores"}

	f.repo.EXPECT().GetByUsername(ctx, "acme").Return(nil, nil)
	f.hashSvc.EXPECT().Hash("S3cret!pass").Return("$argon2id$v=19$m=65536,t=1,p=4$s$h", nil)
	f.encSvc.EXPECT().Encrypt(gomock.Any()).Return("sealed", nil)
	f.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *domain.Merchant) error {
		assert.Equal(t, "sealed", m.SecretKeyEnc, "only the ciphertext may be stored")
		assert.Equal(t, domain.MerchantStatusActive, m.Status)
		return nil
	})

	resp, err := f.svc.Register(ctx, req)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.AccessKey, "ak_"))
	assert.True(t, strings.HasPrefix(resp.SecretKey, "sk_"))
	assert.NotEqual(t, uuid.Nil, resp.MerchantID)
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetByUsername(ctx, "acme").Return(&domain.Merchant{Username: "acme"}, nil)

	_, err := f.svc.Register(ctx, ports.RegisterRequest{Username: "acme", Password: "pw"})
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeUsernameTaken, appErr.Code)
}

func TestLoginHappyPath(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	merchantID := uuid.New()
	expiry := time.Now().Add(time.Hour)

	f.repo.EXPECT().GetByUsername(ctx, "acme").Return(&domain.Merchant{
		ID:           merchantID,
		Username:     "acme",
		PasswordHash: "$argon2id$stored",
		AccessKey:    "ak_live_1",
		Status:       domain.MerchantStatusActive,
	}, nil)
	f.hashSvc.EXPECT().Verify("right-pw", "$argon2id$stored").Return(true, nil)
	f.tokenSvc.EXPECT().Generate(merchantID, "ak_live_1").Return("signed.jwt", expiry, nil)

	token, gotExpiry, err := f.svc.Login(ctx, "acme", "right-pw")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", token)
	assert.Equal(t, expiry, gotExpiry)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	// Unknown user and wrong password must both map to AUTH_001 so the
	// response does not reveal which usernames exist.
	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		_, _, err := f.svc.Login(context.Background(), "ghost", "pw")
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidCredentials, appErr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.repo.EXPECT().GetByUsername(gomock.Any(), "acme").Return(&domain.Merchant{
			Username:     "acme",
			PasswordHash: "$argon2id$stored",
			Status:       domain.MerchantStatusActive,
		}, nil)
		f.hashSvc.EXPECT().Verify("bad-pw", "$argon2id$stored").Return(false, nil)

		_, _, err := f.svc.Login(context.Background(), "acme", "bad-pw")
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInvalidCredentials, appErr.Code)
	})
}

func TestLoginSuspendedMerchant(t *testing.T) {
	f := newAuthFixture(t)

	f.repo.EXPECT().GetByUsername(gomock.Any(), "acme").Return(&domain.Merchant{
		Username:     "acme",
		PasswordHash: "$argon2id$stored",
		Status:       domain.MerchantStatusSuspended,
	}, nil)
	f.hashSvc.EXPECT().Verify("pw", "$argon2id$stored").Return(true, nil)

	_, _, err := f.svc.Login(context.Background(), "acme", "pw")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeMerchantSuspended, appErr.Code)
}
