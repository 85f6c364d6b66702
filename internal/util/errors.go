package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrModuleNotFound     = errors.New("module not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrNotEligible        = errors.New("completion requirement not met")
	ErrNoWalletBound      = errors.New("no wallet address bound to account")
	ErrInvalidStatus      = errors.New("invalid progress status")
	ErrAlreadyMinted      = errors.New("certificate already minted for this reference")
	ErrInvalidReference   = errors.New("reference type must be module, topic or project")
)
