package controller

import (
	"errors"
	"web3_journey_backend/internal/service"
	"web3_journey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	Notes *service.NoteService
}

func NewNoteController(notes *service.NoteService) *NoteController {
	return &NoteController{Notes: notes}
}

type createNoteRequest struct {
	ReferenceType string   `json:"referenceType" binding:"required"`
	ReferenceID   string   `json:"referenceId" binding:"required"`
	Title         string   `json:"title" binding:"required,max=200"`
	Content       string   `json:"content" binding:"required"`
	Tags          []string `json:"tags"`
}

// Create 新建学习笔记
// @Summary 新建笔记
// @Tags notes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body createNoteRequest true "笔记内容"
// @Success 201 {object} util.Response
// @Router /api/v1/notes [post]
func (ctrl *NoteController) Create(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	claims := util.GetUserFromContext(c)
	note, err := ctrl.Notes.Create(claims.UserID, req.ReferenceType, req.ReferenceID, req.Title, req.Content, req.Tags)
	if err != nil {
		if errors.Is(err, util.ErrInvalidReference) {
			util.BadRequest(c, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Created(c, note)
}

// List 笔记列表，可按引用对象过滤，置顶在前
// @Summary 笔记列表
// @Tags notes
// @Security BearerAuth
// @Produce json
// @Param referenceType query string false "module/topic/project"
// @Param referenceId query string false "引用ID"
// @Success 200 {object} util.Response
// @Router /api/v1/notes [get]
func (ctrl *NoteController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	notes, err := ctrl.Notes.List(claims.UserID, c.Query("referenceType"), c.Query("referenceId"))
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, notes)
}

// Get 单条笔记
// @Summary 笔记详情
// @Tags notes
// @Security BearerAuth
// @Produce json
// @Param id path string true "笔记ID"
// @Success 200 {object} util.Response
// @Router /api/v1/notes/{id} [get]
func (ctrl *NoteController) Get(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	note, err := ctrl.Notes.Get(c.Param("id"), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(c)
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, note)
}

type updateNoteRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
	Pinned  *bool    `json:"pinned"`
}

// Update 更新笔记，缺省字段不变
// @Summary 更新笔记
// @Tags notes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "笔记ID"
// @Param body body updateNoteRequest true "变更字段"
// @Success 200 {object} util.Response
// @Router /api/v1/notes/{id} [put]
func (ctrl *NoteController) Update(c *gin.Context) {
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	claims := util.GetUserFromContext(c)
	note, err := ctrl.Notes.Update(c.Param("id"), claims.UserID, service.NoteUpdate{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Pinned:  req.Pinned,
	})
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(c)
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, note)
}

// Delete 删除笔记
// @Summary 删除笔记
// @Tags notes
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} util.Response
// @Router /api/v1/notes/{id} [delete]
func (ctrl *NoteController) Delete(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if err := ctrl.Notes.Delete(c.Param("id"), claims.UserID); err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(c)
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, nil)
}
