package service

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"time"
	"web3_journey_backend/internal/catalog"
	"web3_journey_backend/internal/model"
	"web3_journey_backend/internal/repository"
	"web3_journey_backend/internal/util"
	"web3_journey_backend/pkg/logger"
	"web3_journey_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ProgressEventChannel 进度变更通知的 redis 频道。
// 任一写入成功后发布，所有订阅端（本进程和其它实例/标签页）整体重新拉取。
const ProgressEventChannel = "progress_events"

type ProgressEvent struct {
	UserID uint   `json:"userId"`
	Table  string `json:"table"` // learning_progress | project_progress | user_stats
}

// userMirror 单个用户的内存镜像。写入先落镜像（乐观更新），再发远端upsert。
type userMirror struct {
	learning map[string]*model.LearningProgress // moduleID + "/" + topicID
	projects map[string]*model.ProjectProgress
	loaded   bool
}

func topicKey(moduleID, topicID string) string {
	return moduleID + "/" + topicID
}

// ProgressService 用户进度的唯一真实来源（远端数据的本地镜像）。
// 读操作只查镜像；写操作乐观更新镜像后异步确认，失败不回滚。
type ProgressService struct {
	LearningRepo *repository.LearningProgressRepository
	ProjectRepo  *repository.ProjectProgressRepository

	rdb *redis.Client

	mu      sync.RWMutex
	mirrors map[uint]*userMirror

	now func() time.Time
}

func NewProgressService(
	learningRepo *repository.LearningProgressRepository,
	projectRepo *repository.ProjectProgressRepository,
	rdb *redis.Client,
) *ProgressService {
	return &ProgressService{
		LearningRepo: learningRepo,
		ProjectRepo:  projectRepo,
		rdb:          rdb,
		mirrors:      make(map[uint]*userMirror),
		now:          time.Now,
	}
}

// LoadAll 拉取该用户全部学习/项目进度并整体替换镜像。
// 未登录（userID==0）返回空集；拉取失败保留旧镜像（可读但可能过期）。
func (s *ProgressService) LoadAll(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}

	learning, err := s.LearningRepo.FindByUserID(userID)
	if err != nil {
		logger.Log.Error("failed to load learning progress, keeping stale mirror",
			zap.Uint("userId", userID), zap.Error(err))
		return err
	}
	projects, err := s.ProjectRepo.FindByUserID(userID)
	if err != nil {
		logger.Log.Error("failed to load project progress, keeping stale mirror",
			zap.Uint("userId", userID), zap.Error(err))
		return err
	}

	m := &userMirror{
		learning: make(map[string]*model.LearningProgress, len(learning)),
		projects: make(map[string]*model.ProjectProgress, len(projects)),
		loaded:   true,
	}
	for i := range learning {
		rec := learning[i]
		m.learning[topicKey(rec.ModuleID, rec.TopicID)] = &rec
	}
	for i := range projects {
		rec := projects[i]
		m.projects[rec.ProjectID] = &rec
	}

	s.mu.Lock()
	s.mirrors[userID] = m
	s.mu.Unlock()
	return nil
}

func (s *ProgressService) mirror(userID uint) *userMirror {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mirrors[userID]
	if !ok {
		m = &userMirror{
			learning: make(map[string]*model.LearningProgress),
			projects: make(map[string]*model.ProjectProgress),
		}
		s.mirrors[userID] = m
	}
	return m
}

// ensureLoaded 懒加载镜像，加载失败时继续用空镜像（读返回 not_started）
func (s *ProgressService) ensureLoaded(ctx context.Context, userID uint) {
	s.mu.RLock()
	m, ok := s.mirrors[userID]
	s.mu.RUnlock()
	if ok && m.loaded {
		return
	}
	s.LoadAll(ctx, userID)
}

// GetTopicStatus 无记录时返回 not_started，永不失败
func (s *ProgressService) GetTopicStatus(ctx context.Context, userID uint, moduleID, topicID string) model.ProgressStatus {
	if userID == 0 {
		return model.StatusNotStarted
	}
	s.ensureLoaded(ctx, userID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.mirrors[userID]; ok {
		if rec, ok := m.learning[topicKey(moduleID, topicID)]; ok {
			return rec.Status
		}
	}
	return model.StatusNotStarted
}

func (s *ProgressService) GetProjectStatus(ctx context.Context, userID uint, projectID string) model.ProgressStatus {
	if userID == 0 {
		return model.StatusNotStarted
	}
	s.ensureLoaded(ctx, userID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.mirrors[userID]; ok {
		if rec, ok := m.projects[projectID]; ok {
			return rec.Status
		}
	}
	return model.StatusNotStarted
}

func validStatus(status model.ProgressStatus) bool {
	switch status {
	case model.StatusNotStarted, model.StatusInProgress, model.StatusCompleted:
		return true
	}
	return false
}

// SetTopicStatus 先乐观更新镜像，再对远端以 (user, module, topic) 为键upsert。
// 远端失败只记录和上报指标，不回滚镜像（沿用前端时代的策略，见 DESIGN.md）。
func (s *ProgressService) SetTopicStatus(ctx context.Context, userID uint, moduleID, topicID string, status model.ProgressStatus, notes string) error {
	if userID == 0 {
		return nil // 未登录走本地缓存，这里静默跳过
	}
	if !validStatus(status) {
		return util.ErrInvalidStatus
	}
	if _, ok := catalog.TopicByID(moduleID, topicID); !ok {
		return util.ErrTopicNotFound
	}
	s.ensureLoaded(ctx, userID)

	now := s.now()
	var completedAt *time.Time
	if status == model.StatusCompleted {
		completedAt = &now
	}

	// 1. 乐观更新
	m := s.mirror(userID)
	s.mu.Lock()
	key := topicKey(moduleID, topicID)
	rec, ok := m.learning[key]
	if ok {
		rec.Status = status
		rec.CompletedAt = completedAt
		rec.Notes = notes
		rec.UpdatedAt = now
	} else {
		rec = &model.LearningProgress{
			UserID:      userID,
			ModuleID:    moduleID,
			TopicID:     topicID,
			Status:      status,
			Notes:       notes,
			CompletedAt: completedAt,
		}
		rec.CreatedAt = now
		rec.UpdatedAt = now
		m.learning[key] = rec
	}
	s.mu.Unlock()

	// 2. 远端确认
	upsert := model.LearningProgress{
		UserID:      userID,
		ModuleID:    moduleID,
		TopicID:     topicID,
		Status:      status,
		Notes:       notes,
		CompletedAt: completedAt,
	}
	if err := s.LearningRepo.Upsert(&upsert); err != nil {
		monitoring.SyncFailureCounter.WithLabelValues("learning").Inc()
		logger.Log.Error("learning progress upsert failed, optimistic state kept",
			zap.Uint("userId", userID),
			zap.String("moduleId", moduleID),
			zap.String("topicId", topicID),
			zap.Error(err))
		return err
	}

	s.publish(ctx, ProgressEvent{UserID: userID, Table: "learning_progress"})
	return nil
}

type ProjectUpdate struct {
	GithubURL string
	DemoURL   string
	Notes     string
}

// SetProjectStatus 同 SetTopicStatus 的乐观-确认模式，键为 (user, project)
func (s *ProgressService) SetProjectStatus(ctx context.Context, userID uint, projectID string, status model.ProgressStatus, data ProjectUpdate) error {
	if userID == 0 {
		return nil
	}
	if !validStatus(status) {
		return util.ErrInvalidStatus
	}
	if _, ok := catalog.ProjectByID(projectID); !ok {
		return util.ErrProjectNotFound
	}
	s.ensureLoaded(ctx, userID)

	now := s.now()
	var completedAt *time.Time
	if status == model.StatusCompleted {
		completedAt = &now
	}

	m := s.mirror(userID)
	s.mu.Lock()
	rec, ok := m.projects[projectID]
	if ok {
		rec.Status = status
		rec.CompletedAt = completedAt
		if data.GithubURL != "" {
			rec.GithubURL = data.GithubURL
		}
		if data.DemoURL != "" {
			rec.DemoURL = data.DemoURL
		}
		if data.Notes != "" {
			rec.Notes = data.Notes
		}
		rec.UpdatedAt = now
	} else {
		rec = &model.ProjectProgress{
			UserID:      userID,
			ProjectID:   projectID,
			Status:      status,
			GithubURL:   data.GithubURL,
			DemoURL:     data.DemoURL,
			Notes:       data.Notes,
			CompletedAt: completedAt,
		}
		rec.CreatedAt = now
		rec.UpdatedAt = now
		m.projects[projectID] = rec
	}
	// 空字段不清掉已有链接，远端写入用合并后的值
	upsert := model.ProjectProgress{
		UserID:      userID,
		ProjectID:   projectID,
		Status:      status,
		GithubURL:   rec.GithubURL,
		DemoURL:     rec.DemoURL,
		Notes:       rec.Notes,
		CompletedAt: completedAt,
	}
	s.mu.Unlock()
	if err := s.ProjectRepo.Upsert(&upsert); err != nil {
		monitoring.SyncFailureCounter.WithLabelValues("project").Inc()
		logger.Log.Error("project progress upsert failed, optimistic state kept",
			zap.Uint("userId", userID),
			zap.String("projectId", projectID),
			zap.Error(err))
		return err
	}

	s.publish(ctx, ProgressEvent{UserID: userID, Table: "project_progress"})
	return nil
}

func (s *ProgressService) publish(ctx context.Context, event ProgressEvent) {
	if s.rdb == nil {
		return
	}
	payload, _ := json.Marshal(event)
	if err := s.rdb.Publish(ctx, ProgressEventChannel, payload).Err(); err != nil {
		logger.Log.Warn("failed to publish progress event", zap.Error(err))
	}
}

// roundPercent 四舍五入到整数。所有聚合层共用同一个舍入，保证层间一致。
func roundPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(completed)/float64(total)*100 + 0.5))
}

func (s *ProgressService) completedTopicsIn(m *userMirror, moduleID string) int {
	n := 0
	for _, rec := range m.learning {
		if rec.ModuleID == moduleID && rec.Status == model.StatusCompleted {
			n++
		}
	}
	return n
}

// ModuleCompletionPercent 模块完成度，分母是目录里该模块的知识点总数
func (s *ProgressService) ModuleCompletionPercent(ctx context.Context, userID uint, moduleID string) int {
	mod, ok := catalog.ModuleByID(moduleID)
	if !ok {
		return 0
	}
	s.ensureLoaded(ctx, userID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mirrors[userID]
	if !ok {
		return 0
	}
	return roundPercent(s.completedTopicsIn(m, mod.ID), len(mod.Topics))
}

func (s *ProgressService) LevelCompletionPercent(ctx context.Context, userID uint, level catalog.ModuleLevel) int {
	s.ensureLoaded(ctx, userID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mirrors[userID]
	if !ok {
		return 0
	}

	completed := 0
	for _, mod := range catalog.ModulesByLevel(level) {
		completed += s.completedTopicsIn(m, mod.ID)
	}
	return roundPercent(completed, catalog.TopicsInLevel(level))
}

func (s *ProgressService) CourseCompletionPercent(ctx context.Context, userID uint) int {
	return roundPercent(s.TotalCompletedTopics(ctx, userID), catalog.TotalTopics())
}

func (s *ProgressService) TotalCompletedTopics(ctx context.Context, userID uint) int {
	s.ensureLoaded(ctx, userID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mirrors[userID]
	if !ok {
		return 0
	}
	n := 0
	for _, rec := range m.learning {
		if rec.Status == model.StatusCompleted {
			n++
		}
	}
	return n
}

// CompletedModuleIDs 所有知识点都 completed 的模块。零知识点模块永远不算完成。
func (s *ProgressService) CompletedModuleIDs(ctx context.Context, userID uint) map[string]bool {
	s.ensureLoaded(ctx, userID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool)
	m, ok := s.mirrors[userID]
	if !ok {
		return out
	}
	for _, mod := range catalog.Modules {
		if len(mod.Topics) == 0 {
			continue
		}
		if s.completedTopicsIn(m, mod.ID) == len(mod.Topics) {
			out[mod.ID] = true
		}
	}
	return out
}

func (s *ProgressService) CompletedProjectIDs(ctx context.Context, userID uint) map[string]bool {
	s.ensureLoaded(ctx, userID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool)
	m, ok := s.mirrors[userID]
	if !ok {
		return out
	}
	for id, rec := range m.projects {
		if rec.Status == model.StatusCompleted {
			out[id] = true
		}
	}
	return out
}

// LearningRecords 镜像快照（副本），供报表等只读消费
func (s *ProgressService) LearningRecords(ctx context.Context, userID uint) []model.LearningProgress {
	s.ensureLoaded(ctx, userID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mirrors[userID]
	if !ok {
		return nil
	}
	out := make([]model.LearningProgress, 0, len(m.learning))
	for _, rec := range m.learning {
		out = append(out, *rec)
	}
	return out
}

func (s *ProgressService) ProjectRecords(ctx context.Context, userID uint) []model.ProjectProgress {
	s.ensureLoaded(ctx, userID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mirrors[userID]
	if !ok {
		return nil
	}
	out := make([]model.ProjectProgress, 0, len(m.projects))
	for _, rec := range m.projects {
		out = append(out, *rec)
	}
	return out
}
