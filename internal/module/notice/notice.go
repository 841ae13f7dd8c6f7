package notice

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

var errNotFound = response.ErrNotFound.WithTips("公告不存在")

type SaveReq struct {
	NoticeTitle     string `json:"notice_title" binding:"required"`
	Content         string `json:"content" binding:"required"`
	NoticePublisher string `json:"notice_publisher" binding:"required"`
	ReleaseTime     string `json:"release_time"`
	ExamineState    *int8  `json:"examine_state"`
	Recommend       *int8  `json:"recommend"`
}

func (m *ModuleNotice) List(c *gin.Context) {
	ctx := c.Request.Context()
	page, size := tools.ParsePage(c.Query("page"), c.Query("size"))
	f := newFilter(c.Request.URL.Query())

	var notices []model.Notice
	err := withFilter(m.db.WithContext(ctx), f).
		Order("release_time DESC").
		Offset(tools.Offset(page, size)).
		Limit(size).
		Find(&notices).Error
	if err != nil {
		log.Error("查询公告列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	var total int64
	if err := withFilter(m.db.WithContext(ctx), f).Count(&total).Error; err != nil {
		log.Error("统计公告总数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Page(c, notices, total, page, size)
}

func (m *ModuleNotice) Detail(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, errNotFound)
		return
	}
	m.detail(c, id)
}

func (m *ModuleNotice) detail(c *gin.Context, id uint) {
	var n model.Notice
	err := m.db.WithContext(c.Request.Context()).Where("notice_id = ?", id).Take(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, errNotFound)
		return
	}
	if err != nil {
		log.Error("查询公告详情失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, n)
}

func (m *ModuleNotice) Create(c *gin.Context) {
	var req SaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	n := noticeWrite{
		NoticeTitle:     req.NoticeTitle,
		Content:         req.Content,
		NoticePublisher: req.NoticePublisher,
		ReleaseTime:     releaseTime(req.ReleaseTime, time.Now()),
	}
	if req.ExamineState != nil {
		n.ExamineState = *req.ExamineState
	}
	if req.Recommend != nil {
		n.Recommend = *req.Recommend
	}
	if err := m.db.WithContext(c.Request.Context()).Create(&n).Error; err != nil {
		log.Error("新增公告失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("公告发布成功", "notice_id", n.NoticeID, "publisher", n.NoticePublisher)
	response.Success(c, n)
}

func (m *ModuleNotice) Update(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	var req SaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	values := map[string]any{
		"notice_title":     req.NoticeTitle,
		"content":          req.Content,
		"notice_publisher": req.NoticePublisher,
	}
	// 更新时 release_time 未传则保持原值
	if t := tools.FormatDateTime(req.ReleaseTime); t != nil {
		values["release_time"] = *t
	}
	if req.ExamineState != nil {
		values["examine_state"] = *req.ExamineState
	}
	if req.Recommend != nil {
		values["recommend"] = *req.Recommend
	}
	if err := m.db.WithContext(c.Request.Context()).Model(&model.Notice{}).Where("notice_id = ?", id).Updates(values).Error; err != nil {
		log.Error("更新公告失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	m.detail(c, id)
}

func (m *ModuleNotice) Delete(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	if err := m.db.WithContext(c.Request.Context()).Where("notice_id = ?", id).Delete(&model.Notice{}).Error; err != nil {
		log.Error("删除公告失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Message(c, "删除成功")
}

// Read 阅读数加一
func (m *ModuleNotice) Read(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	res := m.db.WithContext(c.Request.Context()).
		Model(&model.Notice{}).
		Where("notice_id = ?", id).
		Update("read_count", gorm.Expr("read_count + 1"))
	if res.Error != nil {
		log.Error("更新公告阅读数失败", "error", res.Error, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(res.Error))
		return
	}
	if res.RowsAffected == 0 {
		response.Fail(c, errNotFound)
		return
	}
	m.detail(c, id)
}
