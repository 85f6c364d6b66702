// Package localstore 为未登录用户提供与云端进度同构的本地进度容器。
// 数据按设备号隔离，每次写入后整体快照落盘，不与远端同步。
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"
	"web3_journey_backend/pkg/logger"

	"go.uber.org/zap"
)

// ModuleStatus 游客模式的模块状态。比登录态多一个 mastered（手动标记"精通"），
// 两套词汇表保持独立，迁移到账号时 mastered 归并为 completed。
type ModuleStatus string

const (
	ModuleNotStarted ModuleStatus = "not_started"
	ModuleInProgress ModuleStatus = "in_progress"
	ModuleCompleted  ModuleStatus = "completed"
	ModuleMastered   ModuleStatus = "mastered"
)

func ValidModuleStatus(s ModuleStatus) bool {
	switch s {
	case ModuleNotStarted, ModuleInProgress, ModuleCompleted, ModuleMastered:
		return true
	}
	return false
}

type ModuleProgress struct {
	Status          ModuleStatus `json:"status"`
	CompletedTopics []string     `json:"completedTopics"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type ProjectProgress struct {
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LearningRecord 一次学习活动（日期 + 分钟数）
type LearningRecord struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Minutes int    `json:"minutes"`
}

// State 整个游客进度的可序列化快照
type State struct {
	Modules       map[string]*ModuleProgress  `json:"modules"`
	Projects      map[string]*ProjectProgress `json:"projects"`
	Records       []LearningRecord            `json:"records"`
	Skills        map[string]int              `json:"skills"` // 0-100
	Achievements  []string                    `json:"achievements"`
	TotalMinutes  int                         `json:"totalMinutes"`
	CurrentStreak int                         `json:"currentStreak"`
	LongestStreak int                         `json:"longestStreak"`
	LastActivity  string                      `json:"lastActivity"` // YYYY-MM-DD
}

func newState() *State {
	return &State{
		Modules:      make(map[string]*ModuleProgress),
		Projects:     make(map[string]*ProjectProgress),
		Records:      []LearningRecord{},
		Skills:       make(map[string]int),
		Achievements: []string{},
	}
}

// Store 单个设备的进度容器。所有变更先改内存再整体快照落盘，
// 落盘失败只记录日志，内存状态照常生效（与云端进度的乐观策略一致）。
type Store struct {
	mu    sync.Mutex
	state *State
	path  string
	now   func() time.Time
}

func newStore(path string) *Store {
	s := &Store{
		state: newState(),
		path:  path,
		now:   time.Now,
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return // 首次访问，空状态
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		logger.Log.Warn("corrupt guest snapshot, starting fresh",
			zap.String("path", s.path), zap.Error(err))
		return
	}
	if state.Modules == nil {
		state.Modules = make(map[string]*ModuleProgress)
	}
	if state.Projects == nil {
		state.Projects = make(map[string]*ProjectProgress)
	}
	if state.Skills == nil {
		state.Skills = make(map[string]int)
	}
	if state.Records == nil {
		state.Records = []LearningRecord{}
	}
	if state.Achievements == nil {
		state.Achievements = []string{}
	}
	s.state = &state
}

// snapshot 写临时文件后原子改名，崩溃不会留下半截快照
func (s *Store) snapshot() {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		logger.Log.Error("failed to marshal guest snapshot", zap.Error(err))
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		logger.Log.Error("failed to write guest snapshot", zap.String("path", s.path), zap.Error(err))
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		logger.Log.Error("failed to commit guest snapshot", zap.String("path", s.path), zap.Error(err))
	}
}

// Snapshot 返回状态深拷贝，读接口用
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, _ := json.Marshal(s.state)
	var copied State
	json.Unmarshal(data, &copied)
	return &copied
}

func (s *Store) UpdateModuleStatus(moduleID string, status ModuleStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mp, ok := s.state.Modules[moduleID]
	if !ok {
		mp = &ModuleProgress{CompletedTopics: []string{}}
		s.state.Modules[moduleID] = mp
	}
	mp.Status = status
	mp.UpdatedAt = s.now()
	s.snapshot()
}

// CompleteModuleTopic 记录一个知识点完成，幂等；模块自动推到 in_progress
func (s *Store) CompleteModuleTopic(moduleID, topicID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mp, ok := s.state.Modules[moduleID]
	if !ok {
		mp = &ModuleProgress{Status: ModuleInProgress, CompletedTopics: []string{}}
		s.state.Modules[moduleID] = mp
	}
	for _, t := range mp.CompletedTopics {
		if t == topicID {
			return
		}
	}
	mp.CompletedTopics = append(mp.CompletedTopics, topicID)
	if mp.Status == ModuleNotStarted || mp.Status == "" {
		mp.Status = ModuleInProgress
	}
	mp.UpdatedAt = s.now()
	s.snapshot()
}

func (s *Store) UpdateProjectStatus(projectID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Projects[projectID] = &ProjectProgress{
		Status:    status,
		UpdatedAt: s.now(),
	}
	s.snapshot()
}

// AddLearningRecord 记一笔学习时长并推进连续天数。
// 连续天数规则与云端一致：同日幂等、隔日续连、断两天以上归一。
func (s *Store) AddLearningRecord(minutes int) {
	if minutes <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := now.Format("2006-01-02")
	s.state.Records = append(s.state.Records, LearningRecord{Date: today, Minutes: minutes})
	s.state.TotalMinutes += minutes

	if s.state.LastActivity != today {
		streak := 1
		if s.state.LastActivity != "" {
			if last, err := time.ParseInLocation("2006-01-02", s.state.LastActivity, now.Location()); err == nil {
				midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
				if int(midnight.Sub(last).Hours()/24) <= 1 {
					streak = s.state.CurrentStreak + 1
				}
			}
		}
		s.state.CurrentStreak = streak
		if streak > s.state.LongestStreak {
			s.state.LongestStreak = streak
		}
		s.state.LastActivity = today
	}
	s.snapshot()
}

// UpdateSkill 技能值增减，夹在 [0, 100]
func (s *Store) UpdateSkill(name string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.state.Skills[name] + delta
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	s.state.Skills[name] = v
	s.snapshot()
}

// UnlockAchievement 幂等插入，无远端确认环节
func (s *Store) UnlockAchievement(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.state.Achievements {
		if a == id {
			return
		}
	}
	s.state.Achievements = append(s.state.Achievements, id)
	s.snapshot()
}

// ResetProgress 一次性清空全部本地进度，"重新开始"入口
func (s *Store) ResetProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = newState()
	s.snapshot()
}

var deviceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// Manager 按设备号管理各自的 Store，设备号做白名单校验防路径穿越
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
	dir    string
}

func NewManager(dir string) *Manager {
	return &Manager{
		stores: make(map[string]*Store),
		dir:    dir,
	}
}

func ValidDeviceID(id string) bool {
	return deviceIDPattern.MatchString(id)
}

func (m *Manager) Get(deviceID string) (*Store, bool) {
	if !ValidDeviceID(deviceID) {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[deviceID]
	if !ok {
		store = newStore(filepath.Join(m.dir, deviceID+".json"))
		m.stores[deviceID] = store
	}
	return store, true
}
