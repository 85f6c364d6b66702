package controller

import (
	"web3_journey_backend/internal/catalog"
	"web3_journey_backend/internal/service"
	"web3_journey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats *service.StatsService
}

func NewStatsController(stats *service.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// Get 当前用户统计（连续天数、学习时长、已解锁成就）
// @Summary 学习统计
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/v1/stats [get]
func (ctrl *StatsController) Get(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	stats, err := ctrl.Stats.GetStats(claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, stats)
}

type recordActivityRequest struct {
	Minutes int `json:"minutes" binding:"omitempty,min=0,max=1440"`
}

// RecordActivity 记录今日活动，推进连续天数并评估成就。
// 同一天重复调用不会重复累积连续天数。
// @Summary 记录学习活动
// @Tags stats
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body recordActivityRequest true "学习时长（分钟，可选）"
// @Success 200 {object} util.Response
// @Router /api/v1/stats/activity [post]
func (ctrl *StatsController) RecordActivity(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	ctx := c.Request.Context()

	var req recordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	stats, err := ctrl.Stats.RecordActivity(ctx, claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	if req.Minutes > 0 {
		if err := ctrl.Stats.AddLearningMinutes(ctx, claims.UserID, req.Minutes); err != nil {
			util.LogInternalError(c, err)
			return
		}
		stats.TotalLearningMinutes += req.Minutes
	}

	newly, err := ctrl.Stats.CheckAndUnlockAchievements(ctx, claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	if newly == nil {
		newly = []string{}
	}

	util.Success(c, gin.H{
		"stats":                stats,
		"unlockedAchievements": newly,
	})
}

// Achievements 成就目录 + 当前用户解锁状态
// @Summary 成就列表
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/v1/stats/achievements [get]
func (ctrl *StatsController) Achievements(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	stats, err := ctrl.Stats.GetStats(claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	unlocked := make(map[string]bool, len(stats.Achievements))
	for _, id := range stats.Achievements {
		unlocked[id] = true
	}

	type achievementView struct {
		catalog.AchievementDef
		Unlocked bool `json:"unlocked"`
	}
	views := make([]achievementView, 0, len(catalog.Achievements))
	for _, def := range catalog.Achievements {
		views = append(views, achievementView{AchievementDef: def, Unlocked: unlocked[def.ID]})
	}
	util.Success(c, views)
}
