package controller

import (
	"fmt"
	"net/http"
	"web3_journey_backend/internal/service"
	"web3_journey_backend/internal/util"
	"web3_journey_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AIController struct {
	AI *service.AIService
}

func NewAIController(ai *service.AIService) *AIController {
	return &AIController{AI: ai}
}

type chatRequest struct {
	Messages []service.ChatMessage `json:"messages" binding:"required,min=1"`
	ModuleID string                `json:"moduleId"`
	TopicID  string                `json:"topicId"`
}

// Chat 流式学习助手对话，SSE 格式逐段下发
// @Summary AI 对话
// @Tags ai
// @Security BearerAuth
// @Accept json
// @Produce text/event-stream
// @Param body body chatRequest true "对话消息与学习上下文"
// @Router /api/v1/ai/chat [post]
func (ctrl *AIController) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	flusher, _ := c.Writer.(http.Flusher)
	err := ctrl.AI.ChatStream(c.Request.Context(), req.ModuleID, req.TopicID, req.Messages, func(content string) error {
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", content); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	if err != nil {
		logger.Log.Error("chat stream aborted", zap.Error(err))
		fmt.Fprintf(c.Writer, "event: error\ndata: stream aborted\n\n")
	}
	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	if flusher != nil {
		flusher.Flush()
	}
}

type reviewRequest struct {
	Code     string `json:"code" binding:"required,max=20000"`
	Language string `json:"language"`
}

// Review 合约代码评审，模型回复不可解析时降级为纯文本结果
// @Summary AI 代码评审
// @Tags ai
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body reviewRequest true "待评审代码"
// @Success 200 {object} util.Response
// @Router /api/v1/ai/review [post]
func (ctrl *AIController) Review(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	review, err := ctrl.AI.ReviewCode(c.Request.Context(), req.Code, req.Language)
	if err != nil {
		logger.Log.Error("code review request failed", zap.Error(err))
		util.Error(c, http.StatusBadGateway, "AI 服务暂不可用")
		return
	}
	util.Success(c, review)
}
