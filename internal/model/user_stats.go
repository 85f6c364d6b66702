package model

// UserStats 每用户一行，首次读取时惰性创建。
// Achievements 只增不减。不变式：LongestStreak >= CurrentStreak。
// swagger:model UserStats
type UserStats struct {
	BaseModel
	UserID               uint     `gorm:"uniqueIndex;not null" json:"userId"`
	CurrentStreak        int      `gorm:"default:0" json:"currentStreak"`
	LongestStreak        int      `gorm:"default:0" json:"longestStreak"`
	LastActivityDate     string   `gorm:"size:10" json:"lastActivityDate"` // YYYY-MM-DD，空串表示从未活跃
	TotalLearningMinutes int      `gorm:"default:0" json:"totalLearningMinutes"`
	Achievements         []string `gorm:"serializer:json;type:json" json:"achievements"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
