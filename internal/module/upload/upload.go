package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/response"
	"defense-management-system/internal/global/storage"
)

const fileField = "file"

var (
	errNoFile   = response.ErrInvalidParam.WithTips("没有上传文件")
	errTooLarge = response.ErrInvalidParam.WithTips("文件大小超过限制")
)

type Result struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Path         string `json:"path"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
}

// Upload 保存单个文件，大小上限由 BodyLimit 中间件控制
func (m *ModuleUpload) Upload(c *gin.Context) {
	fh, err := c.FormFile(fileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Fail(c, errTooLarge)
			return
		}
		response.Fail(c, errNoFile.WithOrigin(err))
		return
	}

	obj, err := storage.SaveMultipart(c.Request.Context(), m.files, fileField, fh)
	if err != nil {
		log.Error("保存上传文件失败", "error", err, "filename", fh.Filename)
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	log.Info("文件上传成功", "filename", obj.Filename, "size", obj.Size)
	response.Success(c, Result{
		Filename:     obj.Filename,
		OriginalName: fh.Filename,
		Path:         obj.Path,
		URL:          obj.URL,
		Size:         obj.Size,
	})
}
