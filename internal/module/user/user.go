package user

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"defense-management-system/internal/global/middleware"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

var errUserNotFound = response.ErrNotFound.WithTips("用户不存在")

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateInfoReq 只更新传入的字段
type UpdateInfoReq struct {
	Nickname *string `json:"nickname"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
}

// ProfileResult 登录与个人信息接口的结果包装
type ProfileResult struct {
	Obj model.Profile `json:"obj"`
}

// newToken 生成占位令牌，令牌不携带任何可校验的信息
func newToken(now time.Time) string {
	return fmt.Sprintf("mock_token_%d", now.UnixMilli())
}

// Login 处理用户登录请求
// 用户不存在与密码错误返回同一个错误，避免暴露账号是否存在
func (u *ModuleUser) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrLoginFailed)
		return
	}
	ctx := c.Request.Context()

	user, err := takeUser(ctx, u.db, "username = ?", req.Username)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("登录失败：用户不存在", "username", req.Username)
		response.Fail(c, response.ErrLoginFailed)
		return
	case err != nil:
		log.Error("查询用户失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("登录失败：密码错误", "username", req.Username)
		response.Fail(c, response.ErrLoginFailed)
		return
	}

	token := newToken(time.Now())
	if u.sessions != nil {
		// 登记失败不影响登录，令牌仍只做存在性检查
		if err := u.sessions.Save(ctx, token, user.UserID); err != nil {
			log.Warn("登记令牌失败", "error", err, "user_id", user.UserID)
		}
	}

	profile := user.Profile()
	profile.Token = token
	log.Info("用户登录成功", "user_id", user.UserID, "username", user.Username)
	response.Success(c, ProfileResult{Obj: profile})
}

// Logout 注销令牌，无论令牌是否存在都返回成功
func (u *ModuleUser) Logout(c *gin.Context) {
	token := c.GetHeader(middleware.TokenHeader)
	if token != "" && u.sessions != nil {
		if err := u.sessions.Delete(c.Request.Context(), token); err != nil {
			log.Warn("注销令牌失败", "error", err)
		}
	}
	response.Message(c, "退出成功")
}

// currentUser 通过令牌登记表找到当前用户，找不到时退回第一个用户
func (u *ModuleUser) currentUser(c *gin.Context) (*model.User, error) {
	ctx := c.Request.Context()
	token, _ := middleware.GetToken(c)

	if u.sessions != nil {
		userID, ok, err := u.sessions.Lookup(ctx, token)
		if err != nil {
			log.Warn("查询令牌失败", "error", err)
		}
		if ok {
			user, err := takeUser(ctx, u.db, "user_id = ?", userID)
			if err == nil {
				return user, nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
	}
	return firstUser(ctx, u.db)
}

func (u *ModuleUser) Info(c *gin.Context) {
	user, err := u.currentUser(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, errUserNotFound)
		return
	}
	if err != nil {
		log.Error("获取用户信息失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, ProfileResult{Obj: user.Profile()})
}

func (u *ModuleUser) UpdateInfo(c *gin.Context) {
	var req UpdateInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	values := map[string]any{}
	if req.Nickname != nil {
		values["nickname"] = *req.Nickname
	}
	if req.Phone != nil {
		values["phone"] = *req.Phone
	}
	if req.Email != nil {
		values["email"] = *req.Email
	}
	if len(values) == 0 {
		response.Fail(c, response.ErrInvalidRequest)
		return
	}

	user, err := u.currentUser(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, errUserNotFound)
		return
	}
	if err != nil {
		log.Error("获取用户信息失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	ctx := c.Request.Context()
	if err := u.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", user.UserID).Updates(values).Error; err != nil {
		log.Error("更新个人信息失败", "error", err, "user_id", user.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	user, err = takeUser(ctx, u.db, "user_id = ?", user.UserID)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, ProfileResult{Obj: user.Profile()})
}
