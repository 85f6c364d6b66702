package service

import (
	"context"
	"testing"
	"time"
	"web3_journey_backend/internal/catalog"
	"web3_journey_backend/internal/model"
	"web3_journey_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsFixture(t *testing.T) (*StatsService, *ProgressService) {
	db := newTestDB(t)
	progress := NewProgressService(
		repository.NewLearningProgressRepository(db),
		repository.NewProjectProgressRepository(db),
		nil,
	)
	stats := NewStatsService(repository.NewStatsRepository(db), progress, nil)
	return stats, progress
}

func TestStatsLazyCreation(t *testing.T) {
	stats, _ := newStatsFixture(t)

	row, err := stats.GetStats(1)
	require.NoError(t, err)
	assert.Equal(t, 0, row.CurrentStreak)
	assert.Equal(t, 0, row.LongestStreak)
	assert.Equal(t, "", row.LastActivityDate)
	assert.Empty(t, row.Achievements)
}

func TestStreakFirstActivity(t *testing.T) {
	stats, _ := newStatsFixture(t)
	stats.now = func() time.Time { return time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC) }

	row, err := stats.RecordActivity(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, row.CurrentStreak)
	assert.Equal(t, 1, row.LongestStreak)
	assert.Equal(t, "2025-06-10", row.LastActivityDate)
}

func TestStreakContinuesNextDay(t *testing.T) {
	stats, _ := newStatsFixture(t)

	day := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		stats.now = func() time.Time { return day }
		_, err := stats.RecordActivity(context.Background(), 1)
		require.NoError(t, err)
		day = day.Add(24 * time.Hour)
	}

	row, err := stats.GetStats(1)
	require.NoError(t, err)
	assert.Equal(t, 6, row.CurrentStreak)
	assert.Equal(t, 6, row.LongestStreak)
}

func TestStreakSameDayIdempotent(t *testing.T) {
	stats, _ := newStatsFixture(t)
	stats.now = func() time.Time { return time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC) }

	_, err := stats.RecordActivity(context.Background(), 1)
	require.NoError(t, err)

	// 当天晚些时候再次记录
	stats.now = func() time.Time { return time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC) }
	row, err := stats.RecordActivity(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, row.CurrentStreak)
}

// 断档两天以上归一重计，历史最长保持不变
func TestStreakResetAfterGap(t *testing.T) {
	stats, _ := newStatsFixture(t)

	day := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		stats.now = func() time.Time { return day }
		_, err := stats.RecordActivity(context.Background(), 1)
		require.NoError(t, err)
		day = day.Add(24 * time.Hour)
	}

	stats.now = func() time.Time { return time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC) }
	row, err := stats.RecordActivity(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, row.CurrentStreak)
	assert.Equal(t, 5, row.LongestStreak)
}

func TestStreakBoundaryHelpers(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 30, 0, 0, time.UTC)

	assert.True(t, isNewDay("", now))
	assert.True(t, isNewDay("2025-06-09", now))
	assert.False(t, isNewDay("2025-06-10", now))

	assert.False(t, shouldContinueStreak("", now))
	assert.True(t, shouldContinueStreak("2025-06-09", now))
	assert.True(t, shouldContinueStreak("2025-06-10", now))
	assert.False(t, shouldContinueStreak("2025-06-08", now))
}

func TestUnlockPersistsBeforeMemory(t *testing.T) {
	stats, progress := newStatsFixture(t)
	ctx := context.Background()

	err := progress.SetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm", model.StatusCompleted, "")
	require.NoError(t, err)

	newly, err := stats.CheckAndUnlockAchievements(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, newly, catalog.AchFirstStep)

	// 落库后的集合包含新解锁项；重复评估无增量
	row, err := stats.GetStats(1)
	require.NoError(t, err)
	assert.Contains(t, row.Achievements, catalog.AchFirstStep)

	again, err := stats.CheckAndUnlockAchievements(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, again)
}

// 成就列必须以 JSON 落库：解锁一次之后统计行还要能正常读写，
// 后续解锁与旧集合取并集
func TestAchievementsAccumulateAcrossUnlocks(t *testing.T) {
	stats, progress := newStatsFixture(t)
	ctx := context.Background()

	require.NoError(t, progress.SetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm", model.StatusCompleted, ""))
	first, err := stats.CheckAndUnlockAchievements(ctx, 1)
	require.NoError(t, err)
	require.Contains(t, first, catalog.AchFirstStep)

	// 首次解锁后的行仍可读、可记活跃
	row, err := stats.GetStats(1)
	require.NoError(t, err)
	assert.Equal(t, []string{catalog.AchFirstStep}, row.Achievements)
	_, err = stats.RecordActivity(ctx, 1)
	require.NoError(t, err)

	mod, ok := catalog.ModuleByID("blockchain-basics")
	require.True(t, ok)
	for _, topic := range mod.Topics {
		require.NoError(t, progress.SetTopicStatus(ctx, 1, mod.ID, topic.ID, model.StatusCompleted, ""))
	}
	second, err := stats.CheckAndUnlockAchievements(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, second, catalog.AchModuleMaster)
	assert.NotContains(t, second, catalog.AchFirstStep)

	row, err = stats.GetStats(1)
	require.NoError(t, err)
	assert.Contains(t, row.Achievements, catalog.AchFirstStep)
	assert.Contains(t, row.Achievements, catalog.AchModuleMaster)
}

func TestStreakAchievementsViaActivity(t *testing.T) {
	stats, _ := newStatsFixture(t)
	ctx := context.Background()

	day := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		stats.now = func() time.Time { return day }
		_, err := stats.RecordActivity(ctx, 1)
		require.NoError(t, err)
		day = day.Add(24 * time.Hour)
	}

	newly, err := stats.CheckAndUnlockAchievements(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, newly, catalog.AchStreak7)
	assert.NotContains(t, newly, catalog.AchStreak30)
}

func TestAddLearningMinutes(t *testing.T) {
	stats, _ := newStatsFixture(t)
	ctx := context.Background()

	require.NoError(t, stats.AddLearningMinutes(ctx, 1, 30))
	require.NoError(t, stats.AddLearningMinutes(ctx, 1, 15))

	row, err := stats.GetStats(1)
	require.NoError(t, err)
	assert.Equal(t, 45, row.TotalLearningMinutes)
}
