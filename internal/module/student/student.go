package student

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"defense-management-system/internal/global/database"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

var errNotFound = response.ErrNotFound.WithTips("学生不存在")

// CreateReq 新增学生，user_id 为所属账号
type CreateReq struct {
	StudentName   string       `json:"student_name" binding:"required"`
	StudentNo     string       `json:"student_no" binding:"required"`
	StudentGender *string      `json:"student_gender"`
	StudentAge    *string      `json:"student_age"`
	ClassName     *string      `json:"class_name"`
	MajorName     *string      `json:"major_name"`
	Grade         *string      `json:"grade"`
	UserID        uint         `json:"user_id" binding:"required"`
	State         *model.State `json:"state"`
}

// UpdateReq 整体替换可编辑字段，state 未传时保持不变
type UpdateReq struct {
	StudentName   string       `json:"student_name" binding:"required"`
	StudentNo     string       `json:"student_no" binding:"required"`
	StudentGender *string      `json:"student_gender"`
	StudentAge    *string      `json:"student_age"`
	ClassName     *string      `json:"class_name"`
	MajorName     *string      `json:"major_name"`
	Grade         *string      `json:"grade"`
	State         *model.State `json:"state"`
}

func (m *ModuleStudent) List(c *gin.Context) {
	ctx := c.Request.Context()
	page, size := tools.ParsePage(c.Query("page"), c.Query("size"))
	f := newFilter(c.Request.URL.Query())

	rows, err := selectStudents(ctx, m.db, f, tools.Offset(page, size), size)
	if err != nil {
		log.Error("查询学生列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	total, err := countStudents(ctx, m.db, f)
	if err != nil {
		log.Error("统计学生总数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Page(c, rows, total, page, size)
}

func (m *ModuleStudent) Detail(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, errNotFound)
		return
	}
	m.detail(c, "s.student_id = ?", id)
}

func (m *ModuleStudent) DetailByUser(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("userId"))
	if !ok {
		response.Fail(c, errNotFound)
		return
	}
	m.detail(c, "s.user_id = ?", id)
}

func (m *ModuleStudent) detail(c *gin.Context, where string, id uint) {
	row, err := takeStudent(c.Request.Context(), m.db, where, id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, errNotFound)
	case err != nil:
		log.Error("查询学生详情失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
	default:
		response.Success(c, row)
	}
}

func (m *ModuleStudent) Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	state := model.StateEnabled
	if req.State != nil {
		state = *req.State
	}

	s := model.Student{
		UserID:        req.UserID,
		StudentName:   req.StudentName,
		StudentNo:     req.StudentNo,
		StudentGender: req.StudentGender,
		StudentAge:    req.StudentAge,
		ClassName:     req.ClassName,
		MajorName:     req.MajorName,
		Grade:         req.Grade,
		State:         state,
	}
	if err := m.db.WithContext(c.Request.Context()).Create(&s).Error; err != nil {
		log.Error("新增学生失败", "error", err, "student_no", req.StudentNo)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("学生创建成功", "student_id", s.StudentID, "student_no", s.StudentNo)
	response.Success(c, s)
}

func (m *ModuleStudent) Update(c *gin.Context) {
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

	ctx := c.Request.Context()
	values := map[string]any{
		"student_name":   req.StudentName,
		"student_no":     req.StudentNo,
		"student_gender": req.StudentGender,
		"student_age":    req.StudentAge,
		"class_name":     req.ClassName,
		"major_name":     req.MajorName,
		"grade":          req.Grade,
	}
	if req.State != nil {
		values["state"] = *req.State
	}
	if err := m.db.WithContext(ctx).Model(&model.Student{}).Where("student_id = ?", id).Updates(values).Error; err != nil {
		log.Error("更新学生失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	m.detail(c, "s.student_id = ?", id)
}

func (m *ModuleStudent) Delete(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	ctx := c.Request.Context()

	blocked, err := database.CheckDependencies(ctx, m.db, id,
		database.Dependency{Table: "papers", Column: "student_id", Message: "该学生下存在论文，无法删除"},
		database.Dependency{Table: "group_students", Column: "student_id", Message: "该学生已分配到答辩小组，无法删除"},
	)
	if err != nil {
		log.Error("检查学生关联数据失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if blocked != "" {
		response.Fail(c, response.ErrDependency.WithTips(blocked))
		return
	}

	if err := m.db.WithContext(ctx).Where("student_id = ?", id).Delete(&model.Student{}).Error; err != nil {
		log.Error("删除学生失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("学生删除成功", "id", id)
	response.Message(c, "删除成功")
}

func (m *ModuleStudent) Export(c *gin.Context) {
	rows, err := selectStudents(c.Request.Context(), m.db, newFilter(c.Request.URL.Query()), 0, 0)
	if err != nil {
		log.Error("导出学生列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	f, err := tools.NewWorkbook(tools.Sheet{Name: "学生", Rows: rows})
	if err != nil {
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	if err := tools.SendExcel(c, f, "学生列表.xlsx"); err != nil {
		response.Fail(c, response.ErrServer.WithOrigin(err))
	}
}
