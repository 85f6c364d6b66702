package repository

import (
	"web3_journey_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) Create(mint *model.CertificateMint) error {
	return r.DB.Create(mint).Error
}

func (r *CertificateRepository) FindByUserID(userID uint) ([]model.CertificateMint, error) {
	var mints []model.CertificateMint
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&mints).Error
	return mints, err
}

func (r *CertificateRepository) FindByWallet(wallet string) ([]model.CertificateMint, error) {
	var mints []model.CertificateMint
	err := r.DB.Where("wallet_address = ?", wallet).Find(&mints).Error
	return mints, err
}

func (r *CertificateRepository) FindByTokenID(tokenID uint64) (*model.CertificateMint, error) {
	var mint model.CertificateMint
	err := r.DB.Where("token_id = ?", tokenID).First(&mint).Error
	if err != nil {
		return nil, err
	}
	return &mint, nil
}

func (r *CertificateRepository) ExistsForReference(userID uint, certType model.CertificateType, referenceID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CertificateMint{}).
		Where("user_id = ? AND type = ? AND reference_id = ?", userID, certType, referenceID).
		Count(&count).Error
	return count > 0, err
}
