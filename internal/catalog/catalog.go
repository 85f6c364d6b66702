// Package catalog 静态课程目录：模块、知识点、实战项目、成就定义。
// 启动时加载，会话期间不可变。标题/描述均为前端 i18n key。
package catalog

type ModuleLevel string

const (
	LevelFoundation  ModuleLevel = "foundation"
	LevelDevelopment ModuleLevel = "development"
	LevelAdvanced    ModuleLevel = "advanced"
	LevelExpert      ModuleLevel = "expert"
)

// Levels 阶段的展示顺序
var Levels = []ModuleLevel{LevelFoundation, LevelDevelopment, LevelAdvanced, LevelExpert}

type ResourceType string

const (
	ResourceDoc     ResourceType = "doc"
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceGithub  ResourceType = "github"
)

type Resource struct {
	Type  ResourceType `json:"type"`
	Title string       `json:"title"`
	URL   string       `json:"url"`
}

type Topic struct {
	ID             string     `json:"id"`
	TitleKey       string     `json:"titleKey"`
	DescriptionKey string     `json:"descriptionKey,omitempty"`
	Resources      []Resource `json:"resources,omitempty"`
}

type Module struct {
	ID             string      `json:"id"`
	TitleKey       string      `json:"titleKey"`
	DescriptionKey string      `json:"descriptionKey"`
	Level          ModuleLevel `json:"level"`
	Hours          int         `json:"hours"`
	Icon           string      `json:"icon"`
	Color          string      `json:"color"`
	Prerequisites  []string    `json:"prerequisites,omitempty"` // module ids
	Topics         []Topic     `json:"topics"`
}

type ProjectDifficulty string

const (
	DifficultyBeginner     ProjectDifficulty = "beginner"
	DifficultyElementary   ProjectDifficulty = "elementary"
	DifficultyIntermediate ProjectDifficulty = "intermediate"
	DifficultyAdvanced     ProjectDifficulty = "advanced"
	DifficultyExpert       ProjectDifficulty = "expert"
)

type Project struct {
	ID             string            `json:"id"`
	TitleKey       string            `json:"titleKey"`
	DescriptionKey string            `json:"descriptionKey"`
	Difficulty     ProjectDifficulty `json:"difficulty"`
	Skills         []string          `json:"skills"`
	EstimatedHours int               `json:"estimatedHours"`
	Prerequisites  []string          `json:"prerequisites,omitempty"` // module ids
	Resources      []Resource        `json:"resources,omitempty"`
}

func ModuleByID(id string) (*Module, bool) {
	for i := range Modules {
		if Modules[i].ID == id {
			return &Modules[i], true
		}
	}
	return nil, false
}

func ModulesByLevel(level ModuleLevel) []Module {
	var out []Module
	for _, m := range Modules {
		if m.Level == level {
			out = append(out, m)
		}
	}
	return out
}

func TopicByID(moduleID, topicID string) (*Topic, bool) {
	m, ok := ModuleByID(moduleID)
	if !ok {
		return nil, false
	}
	for i := range m.Topics {
		if m.Topics[i].ID == topicID {
			return &m.Topics[i], true
		}
	}
	return nil, false
}

// TotalTopics 全部模块的知识点总数，课程级完成度的分母
func TotalTopics() int {
	n := 0
	for _, m := range Modules {
		n += len(m.Topics)
	}
	return n
}

func TopicsInLevel(level ModuleLevel) int {
	n := 0
	for _, m := range Modules {
		if m.Level == level {
			n += len(m.Topics)
		}
	}
	return n
}

func ProjectByID(id string) (*Project, bool) {
	for i := range Projects {
		if Projects[i].ID == id {
			return &Projects[i], true
		}
	}
	return nil, false
}

func ProjectsByDifficulty(d ProjectDifficulty) []Project {
	var out []Project
	for _, p := range Projects {
		if p.Difficulty == d {
			out = append(out, p)
		}
	}
	return out
}

func DifficultyStars(d ProjectDifficulty) int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyElementary:
		return 2
	case DifficultyIntermediate:
		return 3
	case DifficultyAdvanced:
		return 4
	case DifficultyExpert:
		return 5
	}
	return 0
}
