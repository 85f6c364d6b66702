package controller

import (
	"errors"
	"net/http"
	"web3_journey_backend/internal/model"
	"web3_journey_backend/internal/service"
	"web3_journey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	Certificates *service.CertificateService
}

func NewCertificateController(certs *service.CertificateService) *CertificateController {
	return &CertificateController{Certificates: certs}
}

type mintRequest struct {
	Type        model.CertificateType `json:"type" binding:"min=0,max=3"`
	ReferenceID string                `json:"referenceId" binding:"required"`
}

// Mint 铸造学习证书NFT。需要已绑定钱包且对应进度达标。
// @Summary 铸造证书
// @Tags certificates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body mintRequest true "证书类型与引用ID"
// @Success 201 {object} util.Response
// @Router /api/v1/certificates/mint [post]
func (ctrl *CertificateController) Mint(c *gin.Context) {
	var req mintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	claims := util.GetUserFromContext(c)
	mint, err := ctrl.Certificates.Mint(c.Request.Context(), claims.UserID, req.Type, req.ReferenceID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoWalletBound):
			util.BadRequest(c, err.Error())
		case errors.Is(err, util.ErrNotEligible):
			util.Error(c, http.StatusForbidden, err.Error())
		case errors.Is(err, util.ErrAlreadyMinted):
			util.Error(c, http.StatusConflict, err.Error())
		case errors.Is(err, util.ErrModuleNotFound), errors.Is(err, util.ErrProjectNotFound):
			util.NotFound(c)
		default:
			util.LogInternalError(c, err)
		}
		return
	}
	util.Created(c, mint)
}

// List 当前用户的铸造记录
// @Summary 证书列表
// @Tags certificates
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/v1/certificates [get]
func (ctrl *CertificateController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	mints, err := ctrl.Certificates.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, mints)
}

// Balance 钱包持有的证书数量（链上只读查询的存根实现）
// @Summary 证书余额
// @Tags certificates
// @Security BearerAuth
// @Produce json
// @Param wallet query string true "钱包地址"
// @Success 200 {object} util.Response
// @Router /api/v1/certificates/balance [get]
func (ctrl *CertificateController) Balance(c *gin.Context) {
	wallet := c.Query("wallet")
	if !walletAddressPattern.MatchString(wallet) {
		util.BadRequest(c, "钱包地址格式不正确")
		return
	}
	balance, err := ctrl.Certificates.Chain.BalanceOf(c.Request.Context(), wallet)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"wallet": wallet, "balance": balance})
}
