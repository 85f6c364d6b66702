package service

import (
	"context"
	"time"
	"web3_journey_backend/internal/model"
	"web3_journey_backend/internal/repository"
	"web3_journey_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// StatsService 连续学习天数与成就解锁。
// 连续天数按自然日判定：同日幂等、隔一日续连、隔两日及以上归零重计。
type StatsService struct {
	StatsRepo *repository.StatsRepository
	Progress  *ProgressService

	rdb *redis.Client

	// 可注入时钟，测试里用来跨越日期边界
	now func() time.Time
}

func NewStatsService(statsRepo *repository.StatsRepository, progress *ProgressService, rdb *redis.Client) *StatsService {
	return &StatsService{
		StatsRepo: statsRepo,
		Progress:  progress,
		rdb:       rdb,
		now:       time.Now,
	}
}

func (s *StatsService) GetStats(userID uint) (*model.UserStats, error) {
	return s.StatsRepo.FindOrCreate(userID)
}

// daysBetween 自然日差值，忽略一天内的具体时刻
func daysBetween(lastDate string, now time.Time) (int, bool) {
	last, err := time.ParseInLocation(dateLayout, lastDate, now.Location())
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(today.Sub(last).Hours() / 24), true
}

// isNewDay 上次活动日期与今天不是同一个自然日
func isNewDay(lastDate string, now time.Time) bool {
	if lastDate == "" {
		return true
	}
	return lastDate != now.Format(dateLayout)
}

// shouldContinueStreak 上次活动在昨天（或今天），连续计数可以延续
func shouldContinueStreak(lastDate string, now time.Time) bool {
	if lastDate == "" {
		return false
	}
	days, ok := daysBetween(lastDate, now)
	if !ok {
		return false
	}
	return days >= 0 && days <= 1
}

// RecordActivity 记录一次学习活动并推进连续天数。
// 同一天内重复调用是无操作；三个字段一次写入落库后才更新返回值。
func (s *StatsService) RecordActivity(ctx context.Context, userID uint) (*model.UserStats, error) {
	stats, err := s.StatsRepo.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !isNewDay(stats.LastActivityDate, now) {
		return stats, nil
	}

	newStreak := 1
	if shouldContinueStreak(stats.LastActivityDate, now) {
		newStreak = stats.CurrentStreak + 1
	}
	newLongest := stats.LongestStreak
	if newStreak > newLongest {
		newLongest = newStreak
	}
	today := now.Format(dateLayout)

	if err := s.StatsRepo.UpdateStreak(userID, newStreak, newLongest, today); err != nil {
		return nil, err
	}
	stats.CurrentStreak = newStreak
	stats.LongestStreak = newLongest
	stats.LastActivityDate = today

	s.publish(ctx, userID)
	return stats, nil
}

func (s *StatsService) AddLearningMinutes(ctx context.Context, userID uint, minutes int) error {
	if minutes <= 0 {
		return nil
	}
	if _, err := s.StatsRepo.FindOrCreate(userID); err != nil {
		return err
	}
	if err := s.StatsRepo.AddLearningMinutes(userID, minutes); err != nil {
		return err
	}
	s.publish(ctx, userID)
	return nil
}

// CheckAndUnlockAchievements 基于当前进度快照评估全部成就规则。
// 与进度写入相反，这里先落库再更新内存：落库失败就不给用户看新成就。
func (s *StatsService) CheckAndUnlockAchievements(ctx context.Context, userID uint) ([]string, error) {
	stats, err := s.StatsRepo.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}

	unlocked := make(map[string]bool, len(stats.Achievements))
	for _, id := range stats.Achievements {
		unlocked[id] = true
	}

	newly := EvaluateAchievements(ProgressSnapshot{
		CompletedTopics:   s.Progress.TotalCompletedTopics(ctx, userID),
		CompletedModules:  s.Progress.CompletedModuleIDs(ctx, userID),
		CompletedProjects: s.Progress.CompletedProjectIDs(ctx, userID),
		CurrentStreak:     stats.CurrentStreak,
		Unlocked:          unlocked,
	})
	if len(newly) == 0 {
		return nil, nil
	}

	union := append(append([]string{}, stats.Achievements...), newly...)
	if err := s.StatsRepo.UpdateAchievements(userID, union); err != nil {
		logger.Log.Error("failed to persist unlocked achievements",
			zap.Uint("userId", userID), zap.Strings("newly", newly), zap.Error(err))
		return nil, err
	}
	stats.Achievements = union

	s.publish(ctx, userID)
	return newly, nil
}

func (s *StatsService) publish(ctx context.Context, userID uint) {
	if s.Progress != nil {
		s.Progress.publish(ctx, ProgressEvent{UserID: userID, Table: "user_stats"})
	}
}
