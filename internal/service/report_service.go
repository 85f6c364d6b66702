package service

import (
	"bytes"
	"context"
	"fmt"
	"time"
	"web3_journey_backend/internal/catalog"
	"web3_journey_backend/internal/config"
	"web3_journey_backend/internal/model"
	"web3_journey_backend/pkg/logger"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// reportLabels 报告文案。中文渲染依赖内嵌字体，未配置字体时回退英文。
type reportLabels struct {
	Title            string
	GeneratedAt      string
	Learner          string
	CourseCompletion string
	CompletedTopics  string
	CompletedProjs   string
	CurrentStreak    string
	LongestStreak    string
	AchievementCount string
	ModuleSection    string
	ModuleCol        string
	ProgressCol      string
	PercentCol       string
	ProjectSection   string
	ProjectCol       string
	StatusCol        string
	AchSection       string
	StatusDone       string
	StatusDoing      string
	StatusTodo       string
	Footer           string
}

var enLabels = reportLabels{
	Title:            "Web3 Learning Journey Report",
	GeneratedAt:      "Generated at",
	Learner:          "Learner",
	CourseCompletion: "Course Completion",
	CompletedTopics:  "Topics Completed",
	CompletedProjs:   "Projects Completed",
	CurrentStreak:    "Current Streak",
	LongestStreak:    "Longest Streak",
	AchievementCount: "Achievements",
	ModuleSection:    "Module Progress",
	ModuleCol:        "Module",
	ProgressCol:      "Completed",
	PercentCol:       "Percent",
	ProjectSection:   "Project Progress",
	ProjectCol:       "Project",
	StatusCol:        "Status",
	AchSection:       "Unlocked Achievements",
	StatusDone:       "Completed",
	StatusDoing:      "In Progress",
	StatusTodo:       "Not Started",
	Footer:           "Keep building. The chain never sleeps.",
}

var zhLabels = reportLabels{
	Title:            "Web3 学习之旅报告",
	GeneratedAt:      "生成时间",
	Learner:          "学习者",
	CourseCompletion: "课程完成度",
	CompletedTopics:  "已完成知识点",
	CompletedProjs:   "已完成项目",
	CurrentStreak:    "当前连续天数",
	LongestStreak:    "最长连续天数",
	AchievementCount: "已解锁成就",
	ModuleSection:    "模块进度",
	ModuleCol:        "模块",
	ProgressCol:      "完成数",
	PercentCol:       "百分比",
	ProjectSection:   "项目进度",
	ProjectCol:       "项目",
	StatusCol:        "状态",
	AchSection:       "已解锁成就",
	StatusDone:       "已完成",
	StatusDoing:      "进行中",
	StatusTodo:       "未开始",
	Footer:           "持续构建，链上不眠。",
}

// ReportService 把进度、统计和成就渲染成 PDF 导出
type ReportService struct {
	Progress *ProgressService
	Stats    *StatsService
	Config   *config.Config
}

func NewReportService(progress *ProgressService, stats *StatsService, cfg *config.Config) *ReportService {
	return &ReportService{Progress: progress, Stats: stats, Config: cfg}
}

// GenerateProgressReport 生成学习进度 PDF。
// language 为 zh 且配置了 CJK 字体时用中文文案，否则英文。
func (s *ReportService) GenerateProgressReport(ctx context.Context, user *model.User, language string) ([]byte, error) {
	labels := enLabels
	fontFamily := "Helvetica"

	pdf := gofpdf.New("P", "mm", "A4", "")
	if language == "zh" {
		if s.Config.Report.CJKFontPath != "" {
			pdf.AddUTF8Font("cjk", "", s.Config.Report.CJKFontPath)
			fontFamily = "cjk"
			labels = zhLabels
		} else {
			logger.Log.Warn("no CJK font configured, falling back to English report labels")
		}
	}

	stats, err := s.Stats.GetStats(user.ID)
	if err != nil {
		return nil, err
	}
	projects := s.Progress.ProjectRecords(ctx, user.ID)

	pdf.SetTitle(labels.Title, true)
	pdf.AddPage()

	// 页眉
	pdf.SetFillColor(30, 41, 59)
	pdf.Rect(0, 0, 210, 32, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "", 20)
	pdf.SetXY(10, 8)
	pdf.CellFormat(190, 10, labels.Title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 9)
	pdf.SetX(10)
	pdf.CellFormat(190, 6, fmt.Sprintf("%s: %s    %s: %s",
		labels.Learner, user.Name,
		labels.GeneratedAt, time.Now().Format("2006-01-02 15:04")),
		"", 1, "L", false, 0, "")

	// 统计卡片，两行三列
	cards := []struct {
		label string
		value string
	}{
		{labels.CourseCompletion, fmt.Sprintf("%d%%", s.Progress.CourseCompletionPercent(ctx, user.ID))},
		{labels.CompletedTopics, fmt.Sprintf("%d / %d", s.Progress.TotalCompletedTopics(ctx, user.ID), catalog.TotalTopics())},
		{labels.CompletedProjs, fmt.Sprintf("%d / %d", len(s.Progress.CompletedProjectIDs(ctx, user.ID)), len(catalog.Projects))},
		{labels.CurrentStreak, fmt.Sprintf("%d", stats.CurrentStreak)},
		{labels.LongestStreak, fmt.Sprintf("%d", stats.LongestStreak)},
		{labels.AchievementCount, fmt.Sprintf("%d / %d", len(stats.Achievements), len(catalog.Achievements))},
	}
	pdf.SetY(40)
	cardW, cardH := 60.0, 22.0
	for i, card := range cards {
		col := i % 3
		row := i / 3
		x := 10 + float64(col)*(cardW+5)
		y := 40 + float64(row)*(cardH+5)
		pdf.SetFillColor(241, 245, 249)
		pdf.Rect(x, y, cardW, cardH, "F")
		pdf.SetTextColor(100, 116, 139)
		pdf.SetFont(fontFamily, "", 8)
		pdf.SetXY(x+3, y+3)
		pdf.CellFormat(cardW-6, 5, card.label, "", 1, "L", false, 0, "")
		pdf.SetTextColor(15, 23, 42)
		pdf.SetFont(fontFamily, "", 14)
		pdf.SetXY(x+3, y+10)
		pdf.CellFormat(cardW-6, 8, card.value, "", 1, "L", false, 0, "")
	}

	// 模块进度表
	pdf.SetY(95)
	s.sectionTitle(pdf, fontFamily, labels.ModuleSection)
	s.tableHeader(pdf, fontFamily, []string{labels.ModuleCol, labels.ProgressCol, labels.PercentCol}, []float64{110, 40, 40})
	pdf.SetFont(fontFamily, "", 9)
	pdf.SetTextColor(15, 23, 42)
	for _, mod := range catalog.Modules {
		completed := 0
		for _, topic := range mod.Topics {
			if s.Progress.GetTopicStatus(ctx, user.ID, mod.ID, topic.ID) == model.StatusCompleted {
				completed++
			}
		}
		percent := s.Progress.ModuleCompletionPercent(ctx, user.ID, mod.ID)
		pdf.CellFormat(110, 7, mod.ID, "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%d / %d", completed, len(mod.Topics)), "B", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%d%%", percent), "B", 1, "C", false, 0, "")
	}

	// 项目进度表
	pdf.AddPage()
	s.sectionTitle(pdf, fontFamily, labels.ProjectSection)
	s.tableHeader(pdf, fontFamily, []string{labels.ProjectCol, labels.StatusCol}, []float64{110, 80})
	pdf.SetFont(fontFamily, "", 9)
	pdf.SetTextColor(15, 23, 42)
	statusByProject := make(map[string]model.ProgressStatus, len(projects))
	for _, rec := range projects {
		statusByProject[rec.ProjectID] = rec.Status
	}
	for _, proj := range catalog.Projects {
		statusLabel := labels.StatusTodo
		switch statusByProject[proj.ID] {
		case model.StatusCompleted:
			statusLabel = labels.StatusDone
		case model.StatusInProgress:
			statusLabel = labels.StatusDoing
		}
		pdf.CellFormat(110, 7, proj.ID, "B", 0, "L", false, 0, "")
		pdf.CellFormat(80, 7, statusLabel, "B", 1, "C", false, 0, "")
	}

	// 成就列表
	pdf.Ln(8)
	s.sectionTitle(pdf, fontFamily, labels.AchSection)
	pdf.SetFont(fontFamily, "", 9)
	pdf.SetTextColor(15, 23, 42)
	if len(stats.Achievements) == 0 {
		pdf.CellFormat(190, 7, "-", "", 1, "L", false, 0, "")
	}
	for _, id := range stats.Achievements {
		pdf.CellFormat(190, 7, id, "B", 1, "L", false, 0, "")
	}

	// 页脚
	pdf.SetY(-25)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont(fontFamily, "", 8)
	pdf.CellFormat(190, 6, labels.Footer, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		logger.Log.Error("failed to render progress report", zap.Uint("userId", user.ID), zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ReportService) sectionTitle(pdf *gofpdf.Fpdf, fontFamily, title string) {
	pdf.SetFont(fontFamily, "", 13)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(190, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func (s *ReportService) tableHeader(pdf *gofpdf.Fpdf, fontFamily string, cols []string, widths []float64) {
	pdf.SetFillColor(226, 232, 240)
	pdf.SetTextColor(51, 65, 85)
	pdf.SetFont(fontFamily, "", 9)
	for i, col := range cols {
		align := "C"
		if i == 0 {
			align = "L"
		}
		last := 0
		if i == len(cols)-1 {
			last = 1
		}
		pdf.CellFormat(widths[i], 7, col, "", last, align, true, 0, "")
	}
}
