package controller

import (
	"web3_journey_backend/internal/catalog"
	"web3_journey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController 只读课程目录，无需登录
type ContentController struct{}

func NewContentController() *ContentController {
	return &ContentController{}
}

// ListModules 全部课程模块，可按阶段过滤
// @Summary 模块列表
// @Tags content
// @Produce json
// @Param level query string false "阶段过滤 foundation/development/advanced/expert"
// @Success 200 {object} util.Response
// @Router /api/v1/content/modules [get]
func (ctrl *ContentController) ListModules(c *gin.Context) {
	if level := c.Query("level"); level != "" {
		modules := catalog.ModulesByLevel(catalog.ModuleLevel(level))
		if modules == nil {
			modules = []catalog.Module{}
		}
		util.Success(c, modules)
		return
	}
	util.Success(c, catalog.Modules)
}

// GetModule 单个模块详情
// @Summary 模块详情
// @Tags content
// @Produce json
// @Param moduleId path string true "模块ID"
// @Success 200 {object} util.Response
// @Router /api/v1/content/modules/{moduleId} [get]
func (ctrl *ContentController) GetModule(c *gin.Context) {
	mod, ok := catalog.ModuleByID(c.Param("moduleId"))
	if !ok {
		util.NotFound(c)
		return
	}
	util.Success(c, mod)
}

// ListProjects 实战项目列表，可按难度过滤
// @Summary 项目列表
// @Tags content
// @Produce json
// @Param difficulty query string false "难度过滤"
// @Success 200 {object} util.Response
// @Router /api/v1/content/projects [get]
func (ctrl *ContentController) ListProjects(c *gin.Context) {
	if d := c.Query("difficulty"); d != "" {
		projects := catalog.ProjectsByDifficulty(catalog.ProjectDifficulty(d))
		if projects == nil {
			projects = []catalog.Project{}
		}
		util.Success(c, projects)
		return
	}
	util.Success(c, catalog.Projects)
}

// GetProject 单个项目详情
// @Summary 项目详情
// @Tags content
// @Produce json
// @Param projectId path string true "项目ID"
// @Success 200 {object} util.Response
// @Router /api/v1/content/projects/{projectId} [get]
func (ctrl *ContentController) GetProject(c *gin.Context) {
	proj, ok := catalog.ProjectByID(c.Param("projectId"))
	if !ok {
		util.NotFound(c)
		return
	}
	util.Success(c, gin.H{
		"project": proj,
		"stars":   catalog.DifficultyStars(proj.Difficulty),
	})
}

// ListAchievements 成就目录（不含解锁状态）
// @Summary 成就目录
// @Tags content
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/v1/content/achievements [get]
func (ctrl *ContentController) ListAchievements(c *gin.Context) {
	util.Success(c, catalog.Achievements)
}
