package teacher

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"defense-management-system/internal/global/database"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

var errNotFound = response.ErrNotFound.WithTips("教师不存在")

// 删除教师前需确认没有被分组、小组成员或论文引用
var deleteGuards = []database.Dependency{
	{Table: "defense_groups", Column: "group_leader", Message: "该教师是答辩分组组长，无法删除"},
	{Table: "defense_group_members", Column: "teacher_id", Message: "该教师是答辩小组成员，无法删除"},
	{Table: "papers", Column: "advisor_id", Message: "该教师是论文指导教师，无法删除"},
}

type CreateReq struct {
	TeacherName       string       `json:"teacher_name" binding:"required"`
	TeacherNo         string       `json:"teacher_no" binding:"required"`
	TeacherGender     *string      `json:"teacher_gender"`
	TeacherAge        *string      `json:"teacher_age"`
	DepartmentName    *string      `json:"department_name"`
	ProfessionalTitle *string      `json:"professional_title"`
	UserID            uint         `json:"user_id" binding:"required"`
	State             *model.State `json:"state"`
}

type UpdateReq struct {
	TeacherName       string       `json:"teacher_name" binding:"required"`
	TeacherNo         string       `json:"teacher_no" binding:"required"`
	TeacherGender     *string      `json:"teacher_gender"`
	TeacherAge        *string      `json:"teacher_age"`
	DepartmentName    *string      `json:"department_name"`
	ProfessionalTitle *string      `json:"professional_title"`
	State             *model.State `json:"state"`
}

func (m *ModuleTeacher) List(c *gin.Context) {
	page, size := tools.ParsePage(c.Query("page"), c.Query("size"))
	rows, total, err := selectTeachers(c.Request.Context(), m.db, newFilter(c.Request.URL.Query()), tools.Offset(page, size), size)
	if err != nil {
		log.Error("查询教师列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Page(c, rows, total, page, size)
}

func (m *ModuleTeacher) Detail(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, errNotFound)
		return
	}
	m.detail(c, id)
}

func (m *ModuleTeacher) detail(c *gin.Context, id uint) {
	row, err := takeTeacher(c.Request.Context(), m.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, errNotFound)
		return
	}
	if err != nil {
		log.Error("查询教师详情失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, row)
}

func (m *ModuleTeacher) Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	t := model.Teacher{
		UserID:            req.UserID,
		TeacherName:       req.TeacherName,
		TeacherNo:         req.TeacherNo,
		TeacherGender:     req.TeacherGender,
		TeacherAge:        req.TeacherAge,
		DepartmentName:    req.DepartmentName,
		ProfessionalTitle: req.ProfessionalTitle,
		State:             model.StateEnabled,
	}
	if req.State != nil {
		t.State = *req.State
	}
	if err := m.db.WithContext(c.Request.Context()).Create(&t).Error; err != nil {
		log.Error("新增教师失败", "error", err, "teacher_no", req.TeacherNo)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("教师创建成功", "teacher_id", t.TeacherID)
	response.Success(c, t)
}

func (m *ModuleTeacher) Update(c *gin.Context) {
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
		"teacher_name":       req.TeacherName,
		"teacher_no":         req.TeacherNo,
		"teacher_gender":     req.TeacherGender,
		"teacher_age":        req.TeacherAge,
		"department_name":    req.DepartmentName,
		"professional_title": req.ProfessionalTitle,
	}
	if req.State != nil {
		values["state"] = *req.State
	}
	err := m.db.WithContext(c.Request.Context()).
		Model(&model.Teacher{}).
		Where("teacher_id = ?", id).
		Updates(values).Error
	if err != nil {
		log.Error("更新教师失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	m.detail(c, id)
}

func (m *ModuleTeacher) Delete(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	ctx := c.Request.Context()

	blocked, err := database.CheckDependencies(ctx, m.db, id, deleteGuards...)
	if err != nil {
		log.Error("检查教师关联数据失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if blocked != "" {
		response.Fail(c, response.ErrDependency.WithTips(blocked))
		return
	}

	if err := m.db.WithContext(ctx).Delete(&model.Teacher{}, "teacher_id = ?", id).Error; err != nil {
		log.Error("删除教师失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("教师删除成功", "id", id)
	response.Message(c, "删除成功")
}

func (m *ModuleTeacher) Export(c *gin.Context) {
	rows, _, err := selectTeachers(c.Request.Context(), m.db, newFilter(c.Request.URL.Query()), 0, 0)
	if err != nil {
		log.Error("导出教师列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	f, err := tools.NewWorkbook(tools.Sheet{Name: "教师", Rows: rows})
	if err != nil {
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	if err := tools.SendExcel(c, f, "教师列表.xlsx"); err != nil {
		response.Fail(c, response.ErrServer.WithOrigin(err))
	}
}
