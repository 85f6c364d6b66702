package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"time"
	"web3_journey_backend/internal/catalog"
	"web3_journey_backend/internal/config"
	"web3_journey_backend/internal/model"
	"web3_journey_backend/internal/repository"
	"web3_journey_backend/internal/util"
	"web3_journey_backend/pkg/logger"

	"go.uber.org/zap"
)

// ChainReader 链上只读查询。真实实现接 RPC 节点，当前用本地存根。
type ChainReader interface {
	BalanceOf(ctx context.Context, wallet string) (uint64, error)
	TokenURI(ctx context.Context, tokenID uint64) (string, error)
}

// stubChainReader 从铸造记录表回答链上查询，行为与合约只读接口一致
type stubChainReader struct {
	repo *repository.CertificateRepository
}

func (r *stubChainReader) BalanceOf(ctx context.Context, wallet string) (uint64, error) {
	mints, err := r.repo.FindByWallet(wallet)
	if err != nil {
		return 0, err
	}
	return uint64(len(mints)), nil
}

func (r *stubChainReader) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	mint, err := r.repo.FindByTokenID(tokenID)
	if err != nil {
		return "", err
	}
	return mint.TokenURI, nil
}

// CertificateService 学习证书NFT：资格校验 → 元数据上传 → 铸造（当前为模拟执行）
type CertificateService struct {
	CertRepo *repository.CertificateRepository
	UserRepo *repository.UserRepository
	Progress *ProgressService
	Storage  StorageProvider
	Config   *config.Config
	Chain    ChainReader

	sleep func(d time.Duration) // 可注入，测试里跳过铸造延迟
}

func NewCertificateService(
	certRepo *repository.CertificateRepository,
	userRepo *repository.UserRepository,
	progress *ProgressService,
	storage StorageProvider,
	cfg *config.Config,
) *CertificateService {
	return &CertificateService{
		CertRepo: certRepo,
		UserRepo: userRepo,
		Progress: progress,
		Storage:  storage,
		Config:   cfg,
		Chain:    &stubChainReader{repo: certRepo},
		sleep:    time.Sleep,
	}
}

// checkEligibility 按证书类型校验进度是否达标
func (s *CertificateService) checkEligibility(ctx context.Context, userID uint, certType model.CertificateType, referenceID string) error {
	switch certType {
	case model.CertModuleCompletion:
		mod, ok := catalog.ModuleByID(referenceID)
		if !ok {
			return util.ErrModuleNotFound
		}
		if !s.Progress.CompletedModuleIDs(ctx, userID)[mod.ID] {
			return util.ErrNotEligible
		}
	case model.CertLevelCompletion:
		level := catalog.ModuleLevel(referenceID)
		if len(catalog.ModulesByLevel(level)) == 0 {
			return util.ErrModuleNotFound
		}
		if s.Progress.LevelCompletionPercent(ctx, userID, level) < 100 {
			return util.ErrNotEligible
		}
	case model.CertProjectCompletion:
		if _, ok := catalog.ProjectByID(referenceID); !ok {
			return util.ErrProjectNotFound
		}
		if !s.Progress.CompletedProjectIDs(ctx, userID)[referenceID] {
			return util.ErrNotEligible
		}
	case model.CertCourseCompletion:
		if s.Progress.CourseCompletionPercent(ctx, userID) < 100 {
			return util.ErrNotEligible
		}
	default:
		return fmt.Errorf("unknown certificate type: %d", certType)
	}
	return nil
}

// nftMetadata ERC-721 元数据，上传后的地址作为 tokenURI
type nftMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Attributes  []struct {
		TraitType string      `json:"trait_type"`
		Value     interface{} `json:"value"`
	} `json:"attributes"`
}

func buildMetadata(user *model.User, certType model.CertificateType, referenceID string, mintedAt time.Time) nftMetadata {
	typeNames := map[model.CertificateType]string{
		model.CertModuleCompletion:  "Module Completion",
		model.CertLevelCompletion:   "Level Completion",
		model.CertProjectCompletion: "Project Completion",
		model.CertCourseCompletion:  "Course Completion",
	}
	meta := nftMetadata{
		Name:        fmt.Sprintf("Web3 Journey Certificate - %s", referenceID),
		Description: fmt.Sprintf("%s certificate awarded to %s", typeNames[certType], user.Name),
		Image:       "ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
	}
	meta.Attributes = []struct {
		TraitType string      `json:"trait_type"`
		Value     interface{} `json:"value"`
	}{
		{TraitType: "Certificate Type", Value: typeNames[certType]},
		{TraitType: "Reference", Value: referenceID},
		{TraitType: "Minted At", Value: mintedAt.Format(time.RFC3339)},
	}
	return meta
}

func pseudoTxHash() string {
	buf := make([]byte, 32)
	rand.Read(buf)
	return "0x" + hex.EncodeToString(buf)
}

func pseudoTokenID() uint64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(1<<62))
	return n.Uint64()
}

// Mint 铸造证书。未绑定钱包、不达标、重复铸造都会被拒绝。
// 合约地址未配置时走模拟路径：延迟 MintDelayMs 毫秒后生成伪交易哈希。
func (s *CertificateService) Mint(ctx context.Context, userID uint, certType model.CertificateType, referenceID string) (*model.CertificateMint, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if user.WalletAddress == "" {
		return nil, util.ErrNoWalletBound
	}

	if err := s.checkEligibility(ctx, userID, certType, referenceID); err != nil {
		return nil, err
	}

	exists, err := s.CertRepo.ExistsForReference(userID, certType, referenceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyMinted
	}

	meta := buildMetadata(user, certType, referenceID, time.Now())
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	objectName := fmt.Sprintf("certificates/%d/%d_%s.json", userID, certType, referenceID)
	tokenURI, err := s.Storage.Upload(ctx, objectName, metaJSON, "application/json")
	if err != nil {
		return nil, fmt.Errorf("failed to upload certificate metadata: %w", err)
	}

	// 模拟链上铸造延迟
	if s.Config.Web3.MintDelayMs > 0 {
		s.sleep(time.Duration(s.Config.Web3.MintDelayMs) * time.Millisecond)
	}

	mint := &model.CertificateMint{
		UserID:        userID,
		WalletAddress: user.WalletAddress,
		ChainID:       s.Config.Web3.ChainID,
		Type:          certType,
		ReferenceID:   referenceID,
		TokenID:       pseudoTokenID(),
		TokenURI:      tokenURI,
		TxHash:        pseudoTxHash(),
		Simulated:     s.Config.Web3.ContractAddress == "",
	}
	if err := s.CertRepo.Create(mint); err != nil {
		return nil, err
	}

	logger.Log.Info("certificate minted",
		zap.Uint("userId", userID),
		zap.String("wallet", user.WalletAddress),
		zap.Uint64("tokenId", mint.TokenID),
		zap.Bool("simulated", mint.Simulated))
	return mint, nil
}

func (s *CertificateService) ListByUser(userID uint) ([]model.CertificateMint, error) {
	return s.CertRepo.FindByUserID(userID)
}
