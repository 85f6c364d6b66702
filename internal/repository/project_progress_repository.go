package repository

import (
	"web3_journey_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectProgressRepository struct {
	DB *gorm.DB
}

func NewProjectProgressRepository(db *gorm.DB) *ProjectProgressRepository {
	return &ProjectProgressRepository{DB: db}
}

func (r *ProjectProgressRepository) FindByUserID(userID uint) ([]model.ProjectProgress, error) {
	var records []model.ProjectProgress
	err := r.DB.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

// Upsert 以 (user_id, project_id) 为键写入，冲突即更新
func (r *ProjectProgressRepository) Upsert(record *model.ProjectProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "github_url", "demo_url", "notes", "completed_at", "updated_at",
		}),
	}).Create(record).Error
}
