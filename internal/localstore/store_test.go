package localstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"web3_journey_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return newStore(filepath.Join(t.TempDir(), "guest.json"))
}

func TestModuleStatusVocabulary(t *testing.T) {
	assert.True(t, ValidModuleStatus(ModuleMastered))
	assert.True(t, ValidModuleStatus(ModuleCompleted))
	assert.False(t, ValidModuleStatus("done"))
}

func TestMasteredStatus(t *testing.T) {
	store := newTestStore(t)

	store.UpdateModuleStatus("blockchain-basics", ModuleMastered)
	snap := store.Snapshot()
	assert.Equal(t, ModuleMastered, snap.Modules["blockchain-basics"].Status)
}

func TestCompleteTopicIdempotent(t *testing.T) {
	store := newTestStore(t)

	store.CompleteModuleTopic("blockchain-basics", "distributed-systems")
	store.CompleteModuleTopic("blockchain-basics", "distributed-systems")
	store.CompleteModuleTopic("blockchain-basics", "hash-algorithms")

	snap := store.Snapshot()
	mp := snap.Modules["blockchain-basics"]
	require.NotNil(t, mp)
	assert.Len(t, mp.CompletedTopics, 2)
	assert.Equal(t, ModuleInProgress, mp.Status)
}

func TestGuestStreakRules(t *testing.T) {
	store := newTestStore(t)

	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return day }
	store.AddLearningRecord(30)
	store.AddLearningRecord(20) // 同日第二笔不加天数

	snap := store.Snapshot()
	assert.Equal(t, 1, snap.CurrentStreak)
	assert.Equal(t, 50, snap.TotalMinutes)
	assert.Len(t, snap.Records, 2)

	// 次日续连
	store.now = func() time.Time { return day.Add(24 * time.Hour) }
	store.AddLearningRecord(10)
	assert.Equal(t, 2, store.Snapshot().CurrentStreak)

	// 断档三天归一，最长保留
	store.now = func() time.Time { return day.Add(5 * 24 * time.Hour) }
	store.AddLearningRecord(10)
	snap = store.Snapshot()
	assert.Equal(t, 1, snap.CurrentStreak)
	assert.Equal(t, 2, snap.LongestStreak)
}

func TestSkillClamp(t *testing.T) {
	store := newTestStore(t)

	store.UpdateSkill("solidity", 150)
	assert.Equal(t, 100, store.Snapshot().Skills["solidity"])

	store.UpdateSkill("solidity", -999)
	assert.Equal(t, 0, store.Snapshot().Skills["solidity"])
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	store := newTestStore(t)

	store.UnlockAchievement("first_step")
	store.UnlockAchievement("first_step")
	store.UnlockAchievement("module_master")

	assert.Equal(t, []string{"first_step", "module_master"}, store.Snapshot().Achievements)
}

func TestResetClearsEverything(t *testing.T) {
	store := newTestStore(t)

	store.CompleteModuleTopic("blockchain-basics", "distributed-systems")
	store.UpdateProjectStatus("erc20-token", "completed")
	store.AddLearningRecord(30)
	store.UpdateSkill("solidity", 40)
	store.UnlockAchievement("first_step")

	store.ResetProgress()
	snap := store.Snapshot()
	assert.Empty(t, snap.Modules)
	assert.Empty(t, snap.Projects)
	assert.Empty(t, snap.Records)
	assert.Empty(t, snap.Skills)
	assert.Empty(t, snap.Achievements)
	assert.Zero(t, snap.TotalMinutes)
	assert.Zero(t, snap.CurrentStreak)
}

// 快照落盘后新实例可以恢复状态
func TestSnapshotSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guest.json")

	store := newStore(path)
	store.CompleteModuleTopic("blockchain-basics", "distributed-systems")
	store.UnlockAchievement("first_step")

	reloaded := newStore(path)
	snap := reloaded.Snapshot()
	assert.Contains(t, snap.Modules, "blockchain-basics")
	assert.Equal(t, []string{"first_step"}, snap.Achievements)
}

func TestCorruptSnapshotStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guest.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := newStore(path)
	snap := store.Snapshot()
	assert.Empty(t, snap.Modules)
}

func TestManagerDeviceIsolation(t *testing.T) {
	mgr := NewManager(t.TempDir())

	a, ok := mgr.Get("device-aaaa-1111")
	require.True(t, ok)
	b, ok := mgr.Get("device-bbbb-2222")
	require.True(t, ok)

	a.UnlockAchievement("first_step")
	assert.Empty(t, b.Snapshot().Achievements)

	// 同设备号拿到同一实例
	a2, ok := mgr.Get("device-aaaa-1111")
	require.True(t, ok)
	assert.Equal(t, []string{"first_step"}, a2.Snapshot().Achievements)
}

func TestManagerRejectsBadDeviceIDs(t *testing.T) {
	mgr := NewManager(t.TempDir())

	for _, id := range []string{"", "short", "../../etc/passwd", "has space 1234"} {
		_, ok := mgr.Get(id)
		assert.False(t, ok, "device id %q should be rejected", id)
	}
}
