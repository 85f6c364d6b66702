package model

import "time"

// ProgressStatus 远端进度模型的三态状态。
// 离线模式额外的 mastered 状态见 internal/localstore。
type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

// LearningProgress 每个 (user, module, topic) 至多一行，靠唯一索引+upsert保证
// swagger:model LearningProgress
type LearningProgress struct {
	BaseModel
	UserID      uint           `gorm:"uniqueIndex:idx_user_module_topic;not null" json:"userId"`
	ModuleID    string         `gorm:"size:64;uniqueIndex:idx_user_module_topic;not null" json:"moduleId"`
	TopicID     string         `gorm:"size:64;uniqueIndex:idx_user_module_topic;not null" json:"topicId"`
	Status      ProgressStatus `gorm:"size:20;default:'not_started'" json:"status"`
	Notes       string         `gorm:"type:text" json:"notes"`
	CompletedAt *time.Time     `json:"completedAt"`
}

func (LearningProgress) TableName() string {
	return "learning_progress"
}

// ProjectProgress 每个 (user, project) 至多一行
// swagger:model ProjectProgress
type ProjectProgress struct {
	BaseModel
	UserID      uint           `gorm:"uniqueIndex:idx_user_project;not null" json:"userId"`
	ProjectID   string         `gorm:"size:64;uniqueIndex:idx_user_project;not null" json:"projectId"`
	Status      ProgressStatus `gorm:"size:20;default:'not_started'" json:"status"`
	GithubURL   string         `gorm:"size:255" json:"githubUrl"`
	DemoURL     string         `gorm:"size:255" json:"demoUrl"`
	Notes       string         `gorm:"type:text" json:"notes"`
	CompletedAt *time.Time     `json:"completedAt"`
}

func (ProjectProgress) TableName() string {
	return "project_progress"
}
