package upload

import (
	"time"

	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/response"
	"defense-management-system/internal/global/storage"
	"defense-management-system/tools"
)

var errPresignUnsupported = response.ErrInvalidParam.WithTips("未配置对象存储，不支持直传")

type PresignReq struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
	ExpiresIn   int64  `json:"expires_in"` // 秒，缺省 15 分钟
}

// Presign 生成对象存储直传地址，文件不经过本服务
func (m *ModuleUpload) Presign(c *gin.Context) {
	var req PresignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest)
		return
	}
	p, ok := m.files.(storage.Presigner)
	if !ok {
		response.Fail(c, errPresignUnsupported)
		return
	}

	name := tools.UniqueFileName(fileField, req.Filename)
	got, err := p.PresignUpload(c.Request.Context(), name, req.ContentType, time.Duration(req.ExpiresIn)*time.Second)
	if err != nil {
		log.Error("生成直传地址失败", "error", err, "filename", req.Filename)
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	response.Success(c, got)
}
