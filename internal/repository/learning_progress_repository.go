package repository

import (
	"web3_journey_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearningProgressRepository struct {
	DB *gorm.DB
}

func NewLearningProgressRepository(db *gorm.DB) *LearningProgressRepository {
	return &LearningProgressRepository{DB: db}
}

func (r *LearningProgressRepository) FindByUserID(userID uint) ([]model.LearningProgress, error) {
	var records []model.LearningProgress
	err := r.DB.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

// Upsert 以 (user_id, module_id, topic_id) 为键写入。
// 冲突时更新已有行而不是新建，保证每个三元组至多一条记录。
func (r *LearningProgressRepository) Upsert(record *model.LearningProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "module_id"}, {Name: "topic_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "notes", "completed_at", "updated_at",
		}),
	}).Create(record).Error
}

func (r *LearningProgressRepository) CountByKey(userID uint, moduleID, topicID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearningProgress{}).
		Where("user_id = ? AND module_id = ? AND topic_id = ?", userID, moduleID, topicID).
		Count(&count).Error
	return count, err
}
