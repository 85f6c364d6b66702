package repository

import (
	"errors"
	"web3_journey_backend/internal/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// FindOrCreate 首次读取时惰性建行，默认值全零
func (r *StatsRepository) FindOrCreate(userID uint) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.DB.Where("user_id = ?", userID).First(&stats).Error
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stats = model.UserStats{
		UserID:       userID,
		Achievements: []string{},
	}
	if err := r.DB.Create(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// UpdateStreak 三个字段一次UPDATE写入，保持原子性
func (r *StatsRepository) UpdateStreak(userID uint, currentStreak, longestStreak int, lastActivityDate string) error {
	return r.DB.Model(&model.UserStats{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"current_streak":     currentStreak,
			"longest_streak":     longestStreak,
			"last_activity_date": lastActivityDate,
		}).Error
}

// UpdateAchievements 整组覆盖写入（旧集合与新解锁的并集）。
// 必须走结构体更新让 serializer:json 生效，map/单列写法会把原始值落库。
func (r *StatsRepository) UpdateAchievements(userID uint, achievements []string) error {
	return r.DB.Model(&model.UserStats{}).Where("user_id = ?", userID).
		Select("achievements").
		Updates(&model.UserStats{Achievements: achievements}).Error
}

func (r *StatsRepository) AddLearningMinutes(userID uint, minutes int) error {
	return r.DB.Model(&model.UserStats{}).Where("user_id = ?", userID).
		Update("total_learning_minutes", gorm.Expr("total_learning_minutes + ?", minutes)).Error
}
