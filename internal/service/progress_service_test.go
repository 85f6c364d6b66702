package service

import (
	"context"
	"math"
	"testing"
	"web3_journey_backend/internal/catalog"
	"web3_journey_backend/internal/model"
	"web3_journey_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProgressFixture(t *testing.T) (*ProgressService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewProgressService(
		repository.NewLearningProgressRepository(db),
		repository.NewProjectProgressRepository(db),
		nil,
	)
	return svc, db
}

func TestTopicStatusDefault(t *testing.T) {
	svc, _ := newProgressFixture(t)

	status := svc.GetTopicStatus(context.Background(), 1, "blockchain-basics", "distributed-systems")
	assert.Equal(t, model.StatusNotStarted, status)
}

func TestUnauthenticatedWritesAreNoops(t *testing.T) {
	svc, db := newProgressFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTopicStatus(ctx, 0, "blockchain-basics", "distributed-systems", model.StatusCompleted, ""))
	require.NoError(t, svc.SetProjectStatus(ctx, 0, "erc20-token", model.StatusCompleted, ProjectUpdate{}))

	var count int64
	db.Model(&model.LearningProgress{}).Count(&count)
	assert.Zero(t, count)
}

func TestSetTopicStatusRejectsUnknown(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	err := svc.SetTopicStatus(ctx, 1, "blockchain-basics", "no-such-topic", model.StatusCompleted, "")
	assert.Error(t, err)

	err = svc.SetTopicStatus(ctx, 1, "blockchain-basics", "distributed-systems", model.ProgressStatus("mastered"), "")
	assert.Error(t, err)
}

// 同键重复写入只有一条记录（upsert 幂等）
func TestUpsertIdempotence(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()
	repo := svc.LearningRepo

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.SetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm", model.StatusCompleted, ""))
	}

	count, err := repo.CountByKey(1, "ethereum-fundamentals", "evm")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, model.StatusCompleted, svc.GetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm"))
}

func TestCompletedAtLifecycle(t *testing.T) {
	svc, db := newProgressFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm", model.StatusCompleted, ""))

	var rec model.LearningProgress
	require.NoError(t, db.Where("user_id = ? AND topic_id = ?", 1, "evm").First(&rec).Error)
	assert.NotNil(t, rec.CompletedAt)

	// 回退状态清空完成时间。换新结构体读，复用 rec 的话 NULL 扫不掉旧值
	require.NoError(t, svc.SetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm", model.StatusInProgress, ""))
	var downgraded model.LearningProgress
	require.NoError(t, db.Where("user_id = ? AND topic_id = ?", 1, "evm").First(&downgraded).Error)
	assert.Nil(t, downgraded.CompletedAt)
}

// 单个知识点完成后模块百分比 = 25（4 个知识点的模块）
func TestModulePercentSingleTopic(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm", model.StatusCompleted, ""))

	assert.Equal(t, 25, svc.ModuleCompletionPercent(ctx, 1, "ethereum-fundamentals"))
	assert.Empty(t, svc.CompletedModuleIDs(ctx, 1))
}

func TestModulePercentFullModule(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	mod, ok := catalog.ModuleByID("ethereum-fundamentals")
	require.True(t, ok)
	for _, topic := range mod.Topics {
		require.NoError(t, svc.SetTopicStatus(ctx, 1, mod.ID, topic.ID, model.StatusCompleted, ""))
	}

	assert.Equal(t, 100, svc.ModuleCompletionPercent(ctx, 1, mod.ID))
	assert.True(t, svc.CompletedModuleIDs(ctx, 1)[mod.ID])
}

// 进行中的知识点不计入完成度
func TestInProgressNotCounted(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm", model.StatusInProgress, ""))
	assert.Equal(t, 0, svc.ModuleCompletionPercent(ctx, 1, "ethereum-fundamentals"))
	assert.Equal(t, 0, svc.TotalCompletedTopics(ctx, 1))
}

// 课程级百分比与各模块完成数聚合一致，舍入规则统一
func TestPercentageConsistency(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	done := 0
	for _, mod := range catalog.Modules[:3] {
		for _, topic := range mod.Topics {
			require.NoError(t, svc.SetTopicStatus(ctx, 1, mod.ID, topic.ID, model.StatusCompleted, ""))
			done++
		}
	}

	expected := int(math.Floor(float64(done)/float64(catalog.TotalTopics())*100 + 0.5))
	assert.Equal(t, expected, svc.CourseCompletionPercent(ctx, 1))
	assert.Equal(t, done, svc.TotalCompletedTopics(ctx, 1))
}

func TestLevelPercent(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	foundation := catalog.ModulesByLevel(catalog.LevelFoundation)
	require.NotEmpty(t, foundation)
	done := 0
	for _, topic := range foundation[0].Topics {
		require.NoError(t, svc.SetTopicStatus(ctx, 1, foundation[0].ID, topic.ID, model.StatusCompleted, ""))
		done++
	}

	expected := int(math.Floor(float64(done)/float64(catalog.TopicsInLevel(catalog.LevelFoundation))*100 + 0.5))
	assert.Equal(t, expected, svc.LevelCompletionPercent(ctx, 1, catalog.LevelFoundation))
	// 其它阶段不受影响
	assert.Equal(t, 0, svc.LevelCompletionPercent(ctx, 1, catalog.LevelExpert))
}

func TestProjectUpsert(t *testing.T) {
	svc, _ := newProgressFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SetProjectStatus(ctx, 1, "erc20-token", model.StatusInProgress, ProjectUpdate{
		GithubURL: "https://github.com/alice/erc20",
	}))
	require.NoError(t, svc.SetProjectStatus(ctx, 1, "erc20-token", model.StatusCompleted, ProjectUpdate{
		DemoURL: "https://erc20.example.com",
	}))

	records := svc.ProjectRecords(ctx, 1)
	require.Len(t, records, 1)
	assert.Equal(t, model.StatusCompleted, records[0].Status)
	assert.True(t, svc.CompletedProjectIDs(ctx, 1)["erc20-token"])
}

// 远端写入失败时本地镜像保留乐观值，不回滚
func TestOptimisticStateKeptOnRemoteFailure(t *testing.T) {
	svc, db := newProgressFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.LoadAll(ctx, 1))
	require.NoError(t, db.Migrator().DropTable(&model.LearningProgress{}))

	err := svc.SetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm", model.StatusCompleted, "")
	assert.Error(t, err)
	assert.Equal(t, model.StatusCompleted, svc.GetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm"))
}

// 重载整体替换镜像
func TestLoadAllReplacesMirror(t *testing.T) {
	svc, db := newProgressFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm", model.StatusCompleted, ""))

	// 其它实例改库后重载，本地镜像跟随远端
	require.NoError(t, db.Model(&model.LearningProgress{}).
		Where("user_id = ? AND topic_id = ?", 1, "evm").
		Update("status", model.StatusInProgress).Error)
	require.NoError(t, svc.LoadAll(ctx, 1))

	assert.Equal(t, model.StatusInProgress, svc.GetTopicStatus(ctx, 1, "ethereum-fundamentals", "evm"))
}
