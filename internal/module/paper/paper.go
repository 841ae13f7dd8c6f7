package paper

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"defense-management-system/internal/global/response"
	"defense-management-system/internal/global/storage"
	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

const fileField = "file"

var (
	errNotFound = response.ErrNotFound.WithTips("论文不存在")
	errNoFile   = response.ErrInvalidParam.WithTips("没有上传文件")
)

type CreateReq struct {
	StudentID      uint               `json:"student_id" binding:"required"`
	ThesisTitle    string             `json:"thesis_title" binding:"required"`
	ThesisAbstract *string            `json:"thesis_abstract"`
	Keywords       *string            `json:"keywords"`
	AdvisorID      uint               `json:"advisor_id" binding:"required"`
	Status         *model.PaperStatus `json:"status"`
}

type UpdateReq CreateReq

func (m *ModulePaper) List(c *gin.Context) {
	page, size := tools.ParsePage(c.Query("page"), c.Query("size"))
	rows, total, err := selectPapers(c.Request.Context(), m.db, newFilter(c.Request.URL.Query()), tools.Offset(page, size), size)
	if err != nil {
		log.Error("查询论文列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Page(c, rows, total, page, size)
}

func (m *ModulePaper) Detail(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, errNotFound)
		return
	}
	m.detail(c, id)
}

func (m *ModulePaper) detail(c *gin.Context, id uint) {
	row, err := takePaper(c.Request.Context(), m.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, errNotFound)
		return
	}
	if err != nil {
		log.Error("查询论文详情失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, row)
}

func (m *ModulePaper) Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	p := model.Paper{
		StudentID:      req.StudentID,
		ThesisTitle:    req.ThesisTitle,
		ThesisAbstract: req.ThesisAbstract,
		Keywords:       req.Keywords,
		AdvisorID:      req.AdvisorID,
		Status:         model.PaperDraft,
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if err := m.db.WithContext(c.Request.Context()).Create(&p).Error; err != nil {
		log.Error("新增论文失败", "error", err, "student_id", req.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("论文创建成功", "paper_id", p.PaperID)
	response.Success(c, p)
}

func (m *ModulePaper) Update(c *gin.Context) {
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
	values := map[string]any{
		"student_id":      req.StudentID,
		"thesis_title":    req.ThesisTitle,
		"thesis_abstract": req.ThesisAbstract,
		"keywords":        req.Keywords,
		"advisor_id":      req.AdvisorID,
	}
	if req.Status != nil {
		values["status"] = *req.Status
	}
	if err := m.db.WithContext(c.Request.Context()).Model(&model.Paper{}).Where("paper_id = ?", id).Updates(values).Error; err != nil {
		log.Error("更新论文失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	m.detail(c, id)
}

func (m *ModulePaper) Delete(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	if err := m.db.WithContext(c.Request.Context()).Where("paper_id = ?", id).Delete(&model.Paper{}).Error; err != nil {
		log.Error("删除论文失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Message(c, "删除成功")
}

// AttachFile 保存论文文件并回写 file_path 与 file_size(KB)
func (m *ModulePaper) AttachFile(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	fh, err := c.FormFile(fileField)
	if err != nil {
		response.Fail(c, errNoFile)
		return
	}
	ctx := c.Request.Context()

	var count int64
	if err := m.db.WithContext(ctx).Model(&model.Paper{}).Where("paper_id = ?", id).Count(&count).Error; err != nil {
		log.Error("查询论文失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if count == 0 {
		response.Fail(c, errNotFound)
		return
	}

	obj, err := storage.SaveMultipart(ctx, m.files, fileField, fh)
	if err != nil {
		log.Error("保存论文文件失败", "error", err, "id", id, "filename", fh.Filename)
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	err = m.db.WithContext(ctx).Model(&model.Paper{}).Where("paper_id = ?", id).Updates(map[string]any{
		"file_path": obj.URL,
		"file_size": sizeInKB(obj.Size),
	}).Error
	if err != nil {
		log.Error("更新论文文件信息失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("论文文件已上传", "id", id, "url", obj.URL, "size", obj.Size)
	m.detail(c, id)
}
