package service

import (
	"context"
	"testing"
	"time"
	"web3_journey_backend/internal/catalog"
	"web3_journey_backend/internal/config"
	"web3_journey_backend/internal/model"
	"web3_journey_backend/internal/repository"
	"web3_journey_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCertFixture(t *testing.T) (*CertificateService, *ProgressService) {
	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	progress := NewProgressService(
		repository.NewLearningProgressRepository(db),
		repository.NewProjectProgressRepository(db),
		nil,
	)

	cfg := &config.Config{}
	cfg.Web3.ChainID = 11155111
	cfg.Web3.MintDelayMs = 500

	svc := NewCertificateService(
		repository.NewCertificateRepository(db),
		userRepo,
		progress,
		&LocalStorage{BasePath: t.TempDir()},
		cfg,
	)
	svc.sleep = func(time.Duration) {} // 测试跳过模拟延迟

	user := &model.User{Name: "Alice", Email: "alice@example.com", Password: "x", WalletAddress: "0x1111111111111111111111111111111111111111"}
	require.NoError(t, userRepo.Create(user))
	require.Equal(t, uint(1), user.ID)

	return svc, progress
}

func completeModule(t *testing.T, progress *ProgressService, userID uint, moduleID string) {
	mod, ok := catalog.ModuleByID(moduleID)
	require.True(t, ok)
	for _, topic := range mod.Topics {
		require.NoError(t, progress.SetTopicStatus(context.Background(), userID, mod.ID, topic.ID, model.StatusCompleted, ""))
	}
}

func TestMintRequiresWallet(t *testing.T) {
	svc, progress := newCertFixture(t)
	ctx := context.Background()

	user2 := &model.User{Name: "Bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, svc.UserRepo.Create(user2))
	completeModule(t, progress, user2.ID, "ethereum-fundamentals")

	_, err := svc.Mint(ctx, user2.ID, model.CertModuleCompletion, "ethereum-fundamentals")
	assert.ErrorIs(t, err, util.ErrNoWalletBound)
}

func TestMintRequiresEligibility(t *testing.T) {
	svc, _ := newCertFixture(t)
	ctx := context.Background()

	_, err := svc.Mint(ctx, 1, model.CertModuleCompletion, "ethereum-fundamentals")
	assert.ErrorIs(t, err, util.ErrNotEligible)

	_, err = svc.Mint(ctx, 1, model.CertModuleCompletion, "no-such-module")
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestMintModuleCertificate(t *testing.T) {
	svc, progress := newCertFixture(t)
	ctx := context.Background()

	completeModule(t, progress, 1, "ethereum-fundamentals")

	mint, err := svc.Mint(ctx, 1, model.CertModuleCompletion, "ethereum-fundamentals")
	require.NoError(t, err)
	assert.True(t, mint.Simulated)
	assert.NotZero(t, mint.TokenID)
	assert.Len(t, mint.TxHash, 66)
	assert.NotEmpty(t, mint.TokenURI)
	assert.Equal(t, int64(11155111), mint.ChainID)

	// 链上只读存根与铸造记录一致
	balance, err := svc.Chain.BalanceOf(ctx, mint.WalletAddress)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)

	uri, err := svc.Chain.TokenURI(ctx, mint.TokenID)
	require.NoError(t, err)
	assert.Equal(t, mint.TokenURI, uri)
}

func TestMintRejectsDuplicate(t *testing.T) {
	svc, progress := newCertFixture(t)
	ctx := context.Background()

	completeModule(t, progress, 1, "ethereum-fundamentals")
	_, err := svc.Mint(ctx, 1, model.CertModuleCompletion, "ethereum-fundamentals")
	require.NoError(t, err)

	_, err = svc.Mint(ctx, 1, model.CertModuleCompletion, "ethereum-fundamentals")
	assert.ErrorIs(t, err, util.ErrAlreadyMinted)
}

func TestMintProjectCertificate(t *testing.T) {
	svc, progress := newCertFixture(t)
	ctx := context.Background()

	require.NoError(t, progress.SetProjectStatus(ctx, 1, "erc20-token", model.StatusCompleted, ProjectUpdate{}))

	mint, err := svc.Mint(ctx, 1, model.CertProjectCompletion, "erc20-token")
	require.NoError(t, err)
	assert.Equal(t, "erc20-token", mint.ReferenceID)

	mints, err := svc.ListByUser(1)
	require.NoError(t, err)
	assert.Len(t, mints, 1)
}
