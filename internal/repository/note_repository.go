package repository

import (
	"web3_journey_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.LearningNote) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByID(id string, userID uint) (*model.LearningNote, error) {
	var note model.LearningNote
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// FindByUser 置顶优先，其余按更新时间倒序
func (r *NoteRepository) FindByUser(userID uint, referenceType, referenceID string) ([]model.LearningNote, error) {
	query := r.DB.Where("user_id = ?", userID)
	if referenceType != "" {
		query = query.Where("reference_type = ?", referenceType)
	}
	if referenceID != "" {
		query = query.Where("reference_id = ?", referenceID)
	}

	var notes []model.LearningNote
	err := query.Order("pinned DESC, updated_at DESC").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Update(note *model.LearningNote) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) Delete(id string, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.LearningNote{}).Error
}
