package controller

import (
	"web3_journey_backend/internal/localstore"
	"web3_journey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// GuestController 未登录用户的本地进度接口，按 X-Device-ID 隔离。
// 与登录态进度互不打通：注册后由前端决定是否迁移。
type GuestController struct {
	Manager *localstore.Manager
}

func NewGuestController(manager *localstore.Manager) *GuestController {
	return &GuestController{Manager: manager}
}

func (ctrl *GuestController) store(c *gin.Context) (*localstore.Store, bool) {
	store, ok := ctrl.Manager.Get(c.GetHeader("X-Device-ID"))
	if !ok {
		util.BadRequest(c, "缺少或非法的 X-Device-ID")
		return nil, false
	}
	return store, true
}

// Get 本地进度快照
// @Summary 游客进度快照
// @Tags guest
// @Produce json
// @Param X-Device-ID header string true "设备号"
// @Success 200 {object} util.Response
// @Router /api/v1/guest/progress [get]
func (ctrl *GuestController) Get(c *gin.Context) {
	store, ok := ctrl.store(c)
	if !ok {
		return
	}
	util.Success(c, store.Snapshot())
}

type guestModuleRequest struct {
	Status localstore.ModuleStatus `json:"status" binding:"required"`
}

// SetModuleStatus 更新模块状态，游客模式额外支持 mastered
// @Summary 游客模块状态
// @Tags guest
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "设备号"
// @Param moduleId path string true "模块ID"
// @Param body body guestModuleRequest true "状态"
// @Success 200 {object} util.Response
// @Router /api/v1/guest/progress/modules/{moduleId} [put]
func (ctrl *GuestController) SetModuleStatus(c *gin.Context) {
	store, ok := ctrl.store(c)
	if !ok {
		return
	}
	var req guestModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	if !localstore.ValidModuleStatus(req.Status) {
		util.BadRequest(c, "invalid module status")
		return
	}
	store.UpdateModuleStatus(c.Param("moduleId"), req.Status)
	util.Success(c, store.Snapshot())
}

// CompleteTopic 标记知识点完成（幂等）
// @Summary 游客知识点完成
// @Tags guest
// @Produce json
// @Param X-Device-ID header string true "设备号"
// @Param moduleId path string true "模块ID"
// @Param topicId path string true "知识点ID"
// @Success 200 {object} util.Response
// @Router /api/v1/guest/progress/modules/{moduleId}/topics/{topicId} [post]
func (ctrl *GuestController) CompleteTopic(c *gin.Context) {
	store, ok := ctrl.store(c)
	if !ok {
		return
	}
	store.CompleteModuleTopic(c.Param("moduleId"), c.Param("topicId"))
	util.Success(c, store.Snapshot())
}

type guestProjectRequest struct {
	Status string `json:"status" binding:"required,oneof=not_started in_progress completed"`
}

// SetProjectStatus 更新项目状态
// @Summary 游客项目状态
// @Tags guest
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "设备号"
// @Param projectId path string true "项目ID"
// @Param body body guestProjectRequest true "状态"
// @Success 200 {object} util.Response
// @Router /api/v1/guest/progress/projects/{projectId} [put]
func (ctrl *GuestController) SetProjectStatus(c *gin.Context) {
	store, ok := ctrl.store(c)
	if !ok {
		return
	}
	var req guestProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	store.UpdateProjectStatus(c.Param("projectId"), req.Status)
	util.Success(c, store.Snapshot())
}

type guestRecordRequest struct {
	Minutes int `json:"minutes" binding:"required,min=1,max=1440"`
}

// AddRecord 记学习时长并推进连续天数
// @Summary 游客学习记录
// @Tags guest
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "设备号"
// @Param body body guestRecordRequest true "分钟数"
// @Success 200 {object} util.Response
// @Router /api/v1/guest/progress/records [post]
func (ctrl *GuestController) AddRecord(c *gin.Context) {
	store, ok := ctrl.store(c)
	if !ok {
		return
	}
	var req guestRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	store.AddLearningRecord(req.Minutes)
	util.Success(c, store.Snapshot())
}

type guestSkillRequest struct {
	Skill string `json:"skill" binding:"required,max=50"`
	Delta int    `json:"delta" binding:"required,min=-100,max=100"`
}

// UpdateSkill 技能值增减（0-100 夹取）
// @Summary 游客技能值
// @Tags guest
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "设备号"
// @Param body body guestSkillRequest true "技能与增量"
// @Success 200 {object} util.Response
// @Router /api/v1/guest/progress/skills [put]
func (ctrl *GuestController) UpdateSkill(c *gin.Context) {
	store, ok := ctrl.store(c)
	if !ok {
		return
	}
	var req guestSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	store.UpdateSkill(req.Skill, req.Delta)
	util.Success(c, store.Snapshot())
}

type guestAchievementRequest struct {
	ID string `json:"id" binding:"required"`
}

// UnlockAchievement 幂等解锁成就，无远端确认
// @Summary 游客解锁成就
// @Tags guest
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "设备号"
// @Param body body guestAchievementRequest true "成就ID"
// @Success 200 {object} util.Response
// @Router /api/v1/guest/progress/achievements [post]
func (ctrl *GuestController) UnlockAchievement(c *gin.Context) {
	store, ok := ctrl.store(c)
	if !ok {
		return
	}
	var req guestAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	store.UnlockAchievement(req.ID)
	util.Success(c, store.Snapshot())
}

// Reset 清空全部本地进度，"重新开始"
// @Summary 游客重置进度
// @Tags guest
// @Produce json
// @Param X-Device-ID header string true "设备号"
// @Success 200 {object} util.Response
// @Router /api/v1/guest/progress [delete]
func (ctrl *GuestController) Reset(c *gin.Context) {
	store, ok := ctrl.store(c)
	if !ok {
		return
	}
	store.ResetProgress()
	util.Success(c, store.Snapshot())
}
