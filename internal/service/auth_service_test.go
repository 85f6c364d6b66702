package service

import (
	"testing"
	"web3_journey_backend/internal/config"
	"web3_journey_backend/internal/repository"
	"web3_journey_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) *AuthService {
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = 3600000000000 // 1h
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "zh", user.Language)
	assert.NotEqual(t, "password123", user.Password) // bcrypt 入库

	logged, token, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, svc.Config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

// 时间戳默认值由 gorm 在建行时填充，建表语句不能带方言专属的 DDL，
// 否则 sqlite 连迁移都过不去
func TestRegisterPopulatesActivityTimestamps(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	got, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.False(t, got.LastLogin.IsZero())
	assert.False(t, got.LastSeen.IsZero())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register("Alice2", "alice@example.com", "password456")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestBindWallet(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	updated, err := svc.BindWallet(user.ID, "0xAbCd111111111111111111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, "0xAbCd111111111111111111111111111111111111", updated.WalletAddress)
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, "", "en", "")
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "en", updated.Language)
}
