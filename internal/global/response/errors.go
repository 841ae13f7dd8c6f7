package response

var (
	ErrInvalidRequest = newError(400, "缺少必填字段")
	ErrInvalidParam   = newError(400, "参数错误")
	ErrInvalidID      = newError(400, "无效的ID")
	ErrDependency     = newError(400, "存在关联数据，无法删除")
	ErrAlreadyExists  = newError(400, "数据已存在")
	ErrUnauthorized   = newError(401, "未授权")
	ErrLoginFailed    = newError(401, "用户名或密码错误")
	ErrNotFound       = newError(404, "未找到")
	ErrServer         = newError(500, "服务器错误")
	ErrDatabase       = newError(500, "服务器错误")
	ErrDBUnavailable  = newError(500, "数据库连接池未初始化")
)
