package user

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"defense-management-system/internal/global/database"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

var (
	errInvalidGroup   = response.ErrInvalidParam.WithTips("无效的用户类型")
	errUsernameExists = response.ErrAlreadyExists.WithTips("用户名已存在")
)

// CreateReq 注册与管理员新增账号共用
type CreateReq struct {
	Username  string          `json:"username" binding:"required"`
	Password  string          `json:"password" binding:"required"`
	Nickname  string          `json:"nickname" binding:"required"`
	UserGroup model.UserGroup `json:"user_group" binding:"required"`
	Phone     *string         `json:"phone"`
	Email     *string         `json:"email"`
	Avatar    *string         `json:"avatar"`
}

// UpdateReq password 为空时不修改密码
type UpdateReq struct {
	Nickname  string          `json:"nickname" binding:"required"`
	UserGroup model.UserGroup `json:"user_group" binding:"required"`
	Phone     *string         `json:"phone"`
	Email     *string         `json:"email"`
	Avatar    *string         `json:"avatar"`
	State     *model.State    `json:"state"`
	Password  string          `json:"password"`
}

func (u *ModuleUser) List(c *gin.Context) {
	ctx := c.Request.Context()
	page, size := tools.ParsePage(c.Query("page"), c.Query("size"))
	f := newFilter(c.Request.URL.Query())

	var users []model.User
	err := withFilter(u.db.WithContext(ctx), f).
		Order("create_time DESC").
		Offset(tools.Offset(page, size)).
		Limit(size).
		Find(&users).Error
	if err != nil {
		log.Error("查询用户列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	var total int64
	if err := withFilter(u.db.WithContext(ctx), f).Count(&total).Error; err != nil {
		log.Error("统计用户总数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Page(c, users, total, page, size)
}

func (u *ModuleUser) Detail(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, errUserNotFound)
		return
	}
	u.detail(c, id)
}

func (u *ModuleUser) detail(c *gin.Context, id uint) {
	user, err := takeUser(c.Request.Context(), u.db, "user_id = ?", id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, errUserNotFound)
		return
	}
	if err != nil {
		log.Error("查询用户失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, user)
}

// Create 新增账号，密码以 bcrypt 哈希保存
func (u *ModuleUser) Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if !req.UserGroup.Valid() {
		response.Fail(c, errInvalidGroup)
		return
	}
	ctx := c.Request.Context()

	taken, err := usernameTaken(ctx, u.db, req.Username)
	if err != nil {
		log.Error("检查用户名失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if taken {
		response.Fail(c, errUsernameExists)
		return
	}

	user := model.User{
		Username:  req.Username,
		Password:  tools.PasswordEncrypt(req.Password),
		Nickname:  req.Nickname,
		Phone:     req.Phone,
		Email:     req.Email,
		UserGroup: req.UserGroup,
		Avatar:    req.Avatar,
		State:     model.StateEnabled,
	}
	if err := u.db.WithContext(ctx).Create(&user).Error; err != nil {
		log.Error("新增用户失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("用户创建成功", "user_id", user.UserID, "username", user.Username, "user_group", user.UserGroup)
	response.Success(c, user.Profile())
}

func (u *ModuleUser) Update(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if !req.UserGroup.Valid() {
		response.Fail(c, errInvalidGroup)
		return
	}

	values := map[string]any{
		"nickname":   req.Nickname,
		"user_group": req.UserGroup,
		"phone":      req.Phone,
		"email":      req.Email,
		"avatar":     req.Avatar,
	}
	if req.State != nil {
		values["state"] = *req.State
	}
	if req.Password != "" {
		values["password"] = tools.PasswordEncrypt(req.Password)
	}
	if err := u.db.WithContext(c.Request.Context()).Model(&model.User{}).Where("user_id = ?", id).Updates(values).Error; err != nil {
		log.Error("更新用户失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	u.detail(c, id)
}

func (u *ModuleUser) Delete(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	ctx := c.Request.Context()

	blocked, err := database.CheckDependencies(ctx, u.db, id,
		database.Dependency{Table: "students", Column: "user_id", Message: "该用户关联了学生信息，无法删除"},
		database.Dependency{Table: "teachers", Column: "user_id", Message: "该用户关联了教师信息，无法删除"},
	)
	if err != nil {
		log.Error("检查用户关联数据失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if blocked != "" {
		response.Fail(c, response.ErrDependency.WithTips(blocked))
		return
	}
	if err := u.db.WithContext(ctx).Where("user_id = ?", id).Delete(&model.User{}).Error; err != nil {
		log.Error("删除用户失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("用户删除成功", "id", id)
	response.Message(c, "删除成功")
}
