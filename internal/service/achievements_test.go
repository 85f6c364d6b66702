package service

import (
	"testing"
	"web3_journey_backend/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func snapshotWith(completedTopics int) ProgressSnapshot {
	return ProgressSnapshot{
		CompletedTopics:   completedTopics,
		CompletedModules:  map[string]bool{},
		CompletedProjects: map[string]bool{},
		Unlocked:          map[string]bool{},
	}
}

func TestEvaluateFirstTopic(t *testing.T) {
	snap := snapshotWith(1)
	newly := EvaluateAchievements(snap)

	assert.Contains(t, newly, catalog.AchFirstStep)
	assert.NotContains(t, newly, catalog.AchModuleMaster)
}

func TestEvaluateEmptyProgress(t *testing.T) {
	newly := EvaluateAchievements(snapshotWith(0))
	assert.Empty(t, newly)
}

func TestEvaluateModuleMaster(t *testing.T) {
	snap := snapshotWith(4)
	snap.CompletedModules["ethereum-fundamentals"] = true

	newly := EvaluateAchievements(snap)
	assert.Contains(t, newly, catalog.AchModuleMaster)
}

func TestEvaluateSpecialModules(t *testing.T) {
	cases := map[string]string{
		"contract-security": catalog.AchSecurityExpert,
		"defi-development":  catalog.AchDefiExplorer,
		"nft-development":   catalog.AchNftCreator,
		"zk-applications":   catalog.AchZkPioneer,
	}
	for moduleID, achID := range cases {
		snap := snapshotWith(3)
		snap.CompletedModules[moduleID] = true

		newly := EvaluateAchievements(snap)
		assert.Contains(t, newly, achID, "module %s should unlock %s", moduleID, achID)
	}
}

func TestEvaluateStreaks(t *testing.T) {
	snap := snapshotWith(1)
	snap.CurrentStreak = 6
	assert.NotContains(t, EvaluateAchievements(snap), catalog.AchStreak7)

	snap.CurrentStreak = 7
	assert.Contains(t, EvaluateAchievements(snap), catalog.AchStreak7)

	snap.CurrentStreak = 30
	newly := EvaluateAchievements(snap)
	assert.Contains(t, newly, catalog.AchStreak7)
	assert.Contains(t, newly, catalog.AchStreak30)
}

// half_way 边界：完成 ceil(K/2) 个触发，少一个不触发
func TestEvaluateHalfWayBoundary(t *testing.T) {
	total := catalog.TotalTopics()
	threshold := (total + 1) / 2

	assert.NotContains(t, EvaluateAchievements(snapshotWith(threshold-1)), catalog.AchHalfWay)
	assert.Contains(t, EvaluateAchievements(snapshotWith(threshold)), catalog.AchHalfWay)
}

func TestEvaluateCompletionist(t *testing.T) {
	total := catalog.TotalTopics()

	assert.NotContains(t, EvaluateAchievements(snapshotWith(total-1)), catalog.AchCompletionist)
	assert.Contains(t, EvaluateAchievements(snapshotWith(total)), catalog.AchCompletionist)
}

func TestEvaluateFullStack(t *testing.T) {
	snap := snapshotWith(0)
	snap.CompletedProjects["erc20-token"] = true

	assert.Contains(t, EvaluateAchievements(snap), catalog.AchFullStack)
}

// 已解锁的成就不再产出，集合只增不减
func TestEvaluateMonotonic(t *testing.T) {
	snap := snapshotWith(1)
	first := EvaluateAchievements(snap)
	assert.Contains(t, first, catalog.AchFirstStep)

	for _, id := range first {
		snap.Unlocked[id] = true
	}
	assert.Empty(t, EvaluateAchievements(snap))

	// 进度增长后只产出增量
	snap.CompletedProjects["erc20-token"] = true
	second := EvaluateAchievements(snap)
	assert.Equal(t, []string{catalog.AchFullStack}, second)
}
