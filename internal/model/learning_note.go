package model

// LearningNote 学习笔记，按引用对象（模块/知识点/项目）归类
// swagger:model LearningNote
type LearningNote struct {
	UUIDBase
	UserID        uint     `gorm:"index;not null" json:"userId"`
	ReferenceType string   `gorm:"size:20;not null" json:"referenceType"` // module | topic | project
	ReferenceID   string   `gorm:"size:64;not null;index" json:"referenceId"`
	Title         string   `gorm:"size:200" json:"title"`
	Content       string   `gorm:"type:text" json:"content"`
	Tags          []string `gorm:"serializer:json;type:json" json:"tags"`
	Pinned        bool     `gorm:"default:false" json:"pinned"`
	WordCount     int      `gorm:"default:0" json:"wordCount"`
}

func (LearningNote) TableName() string {
	return "learning_notes"
}
