package controller

import (
	"errors"
	"net/http"
	"web3_journey_backend/internal/catalog"
	"web3_journey_backend/internal/model"
	"web3_journey_backend/internal/service"
	"web3_journey_backend/internal/util"
	"web3_journey_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProgressController struct {
	Progress *service.ProgressService
	Stats    *service.StatsService
	Hub      *service.ProgressHub
}

func NewProgressController(progress *service.ProgressService, stats *service.StatsService, hub *service.ProgressHub) *ProgressController {
	return &ProgressController{Progress: progress, Stats: stats, Hub: hub}
}

// List 当前用户全部进度记录。远端重载失败时退回本地镜像继续出数据，
// synced=false 表示返回的可能是过期快照。
// @Summary 进度总览
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/v1/progress [get]
func (ctrl *ProgressController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	ctx := c.Request.Context()

	synced := true
	if err := ctrl.Progress.LoadAll(ctx, claims.UserID); err != nil {
		logger.Log.Warn("progress reload failed, serving local mirror",
			zap.Uint("userId", claims.UserID), zap.Error(err))
		synced = false
	}

	util.Success(c, gin.H{
		"synced":   synced,
		"learning": ctrl.Progress.LearningRecords(ctx, claims.UserID),
		"projects": ctrl.Progress.ProjectRecords(ctx, claims.UserID),
	})
}

// Summary 各聚合层完成百分比
// @Summary 完成度汇总
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/v1/progress/summary [get]
func (ctrl *ProgressController) Summary(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	ctx := c.Request.Context()

	modules := make(map[string]int, len(catalog.Modules))
	for _, mod := range catalog.Modules {
		modules[mod.ID] = ctrl.Progress.ModuleCompletionPercent(ctx, claims.UserID, mod.ID)
	}
	levels := make(map[string]int, 4)
	for _, level := range catalog.Levels {
		levels[string(level)] = ctrl.Progress.LevelCompletionPercent(ctx, claims.UserID, level)
	}

	util.Success(c, gin.H{
		"course":  ctrl.Progress.CourseCompletionPercent(ctx, claims.UserID),
		"levels":  levels,
		"modules": modules,
	})
}

type setTopicStatusRequest struct {
	Status model.ProgressStatus `json:"status" binding:"required"`
	Notes  string               `json:"notes"`
}

// SetTopicStatus 更新知识点状态。远端落库失败时本机状态已生效，
// 返回 synced=false 由前端提示重试。
// @Summary 更新知识点进度
// @Tags progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param moduleId path string true "模块ID"
// @Param topicId path string true "知识点ID"
// @Param body body setTopicStatusRequest true "状态"
// @Success 200 {object} util.Response
// @Router /api/v1/progress/modules/{moduleId}/topics/{topicId} [put]
func (ctrl *ProgressController) SetTopicStatus(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	ctx := c.Request.Context()

	var req setTopicStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	moduleID := c.Param("moduleId")
	topicID := c.Param("topicId")
	err := ctrl.Progress.SetTopicStatus(ctx, claims.UserID, moduleID, topicID, req.Status, req.Notes)
	switch {
	case errors.Is(err, util.ErrInvalidStatus):
		util.BadRequest(c, err.Error())
		return
	case errors.Is(err, util.ErrTopicNotFound), errors.Is(err, util.ErrModuleNotFound):
		util.NotFound(c)
		return
	}

	synced := err == nil
	newly := ctrl.afterProgressWrite(c, claims.UserID, synced)

	util.Success(c, gin.H{
		"synced":               synced,
		"status":               req.Status,
		"modulePercent":        ctrl.Progress.ModuleCompletionPercent(ctx, claims.UserID, moduleID),
		"coursePercent":        ctrl.Progress.CourseCompletionPercent(ctx, claims.UserID),
		"unlockedAchievements": newly,
	})
}

type setProjectStatusRequest struct {
	Status    model.ProgressStatus `json:"status" binding:"required"`
	GithubURL string               `json:"githubUrl"`
	DemoURL   string               `json:"demoUrl"`
	Notes     string               `json:"notes"`
}

// SetProjectStatus 更新项目状态
// @Summary 更新项目进度
// @Tags progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param projectId path string true "项目ID"
// @Param body body setProjectStatusRequest true "状态"
// @Success 200 {object} util.Response
// @Router /api/v1/progress/projects/{projectId} [put]
func (ctrl *ProgressController) SetProjectStatus(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	ctx := c.Request.Context()

	var req setProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	projectID := c.Param("projectId")
	err := ctrl.Progress.SetProjectStatus(ctx, claims.UserID, projectID, req.Status, service.ProjectUpdate{
		GithubURL: req.GithubURL,
		DemoURL:   req.DemoURL,
		Notes:     req.Notes,
	})
	switch {
	case errors.Is(err, util.ErrInvalidStatus):
		util.BadRequest(c, err.Error())
		return
	case errors.Is(err, util.ErrProjectNotFound):
		util.NotFound(c)
		return
	}

	synced := err == nil
	newly := ctrl.afterProgressWrite(c, claims.UserID, synced)

	util.Success(c, gin.H{
		"synced":               synced,
		"status":               req.Status,
		"unlockedAchievements": newly,
	})
}

// afterProgressWrite 进度写入后的统一跟进：记活跃、评估成就。
// 只在远端确认成功后做，失败的写入不应产生被确认的奖励。
func (ctrl *ProgressController) afterProgressWrite(c *gin.Context, userID uint, synced bool) []string {
	if !synced {
		return nil
	}
	ctx := c.Request.Context()
	if _, err := ctrl.Stats.RecordActivity(ctx, userID); err != nil {
		util.LogInternalError(c, err)
		return nil
	}
	newly, _ := ctrl.Stats.CheckAndUnlockAchievements(ctx, userID)
	if newly == nil {
		newly = []string{}
	}
	return newly
}

// Watch 进度变更推送通道，多标签页/多设备同步用
// @Summary 订阅进度变更
// @Tags progress
// @Security BearerAuth
// @Router /api/v1/progress/watch [get]
func (ctrl *ProgressController) Watch(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if err := ctrl.Hub.Serve(c.Writer, c.Request, claims.UserID); err != nil {
		util.Error(c, http.StatusBadRequest, "websocket upgrade failed")
	}
}
