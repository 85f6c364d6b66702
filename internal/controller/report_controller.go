package controller

import (
	"fmt"
	"time"
	"web3_journey_backend/internal/service"
	"web3_journey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *service.ReportService
	Auth    *service.AuthService
}

func NewReportController(reports *service.ReportService, auth *service.AuthService) *ReportController {
	return &ReportController{Reports: reports, Auth: auth}
}

// Download 导出学习进度 PDF
// @Summary 导出进度报告
// @Tags report
// @Security BearerAuth
// @Produce application/pdf
// @Param lang query string false "报告语言 zh/en，默认跟随用户设置"
// @Router /api/v1/report [get]
func (ctrl *ReportController) Download(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	user, err := ctrl.Auth.GetUser(claims.UserID)
	if err != nil {
		util.NotFound(c)
		return
	}

	language := c.Query("lang")
	if language == "" {
		language = user.Language
	}

	pdf, err := ctrl.Reports.GenerateProgressReport(c.Request.Context(), user, language)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	filename := fmt.Sprintf("web3-journey-report-%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, "application/pdf", pdf)
}
