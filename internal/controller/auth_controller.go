package controller

import (
	"errors"
	"regexp"
	"web3_journey_backend/internal/service"
	"web3_journey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register 用户注册
// @Summary 注册新用户
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "注册信息"
// @Success 201 {object} util.Response
// @Router /api/v1/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.AuthService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(c, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}

	util.Created(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// Login 登录换取 JWT
// @Summary 用户登录
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "登录凭证"
// @Success 200 {object} util.Response
// @Router /api/v1/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, token, err := ctrl.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(c, 401, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"language":      user.Language,
			"walletAddress": user.WalletAddress,
		},
	})
}

// Me 当前用户信息
// @Summary 当前用户
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/v1/auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	user, err := ctrl.AuthService.GetUser(claims.UserID)
	if err != nil {
		util.NotFound(c)
		return
	}
	util.Success(c, user)
}

var walletAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

type bindWalletRequest struct {
	Address string `json:"address" binding:"required"`
}

// BindWallet 绑定钱包地址
// @Summary 绑定钱包
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body bindWalletRequest true "钱包地址"
// @Success 200 {object} util.Response
// @Router /api/v1/auth/wallet [post]
func (ctrl *AuthController) BindWallet(c *gin.Context) {
	var req bindWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	if !walletAddressPattern.MatchString(req.Address) {
		util.BadRequest(c, "钱包地址格式不正确")
		return
	}

	claims := util.GetUserFromContext(c)
	user, err := ctrl.AuthService.BindWallet(claims.UserID, req.Address)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, user)
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Language string `json:"language" binding:"omitempty,oneof=zh en"`
	Avatar   string `json:"avatar"`
}

// UpdateProfile 更新资料，空字段不变
// @Summary 更新用户资料
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body updateProfileRequest true "资料"
// @Success 200 {object} util.Response
// @Router /api/v1/auth/profile [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	claims := util.GetUserFromContext(c)
	user, err := ctrl.AuthService.UpdateProfile(claims.UserID, req.Name, req.Language, req.Avatar)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, user)
}
