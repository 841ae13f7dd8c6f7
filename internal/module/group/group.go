package group

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"defense-management-system/internal/global/database"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

type SaveReq struct {
	PlanID      uint               `json:"plan_id" binding:"required"`
	GroupName   string             `json:"group_name" binding:"required"`
	GroupLeader uint               `json:"group_leader" binding:"required"`
	VenueID     uint               `json:"venue_id" binding:"required"`
	DefenseTime string             `json:"defense_time" binding:"required"`
	Status      *model.GroupStatus `json:"status"`
}

func (m *ModuleGroup) List(c *gin.Context) {
	page, size := tools.ParsePage(c.Query("page"), c.Query("size"))
	rows, total, err := selectGroups(c.Request.Context(), m.db, newFilter(c.Request.URL.Query()), tools.Offset(page, size), size)
	if err != nil {
		log.Error("查询答辩分组列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Page(c, rows, total, page, size)
}

func (m *ModuleGroup) Detail(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrNotFound)
		return
	}
	m.detail(c, id)
}

func (m *ModuleGroup) detail(c *gin.Context, id uint) {
	row, err := takeGroup(c.Request.Context(), m.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("查询答辩分组失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, row)
}

func (m *ModuleGroup) Create(c *gin.Context) {
	var req SaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidParam.WithOrigin(err))
		return
	}

	g := groupWrite{
		PlanID:      req.PlanID,
		GroupName:   req.GroupName,
		GroupLeader: req.GroupLeader,
		VenueID:     req.VenueID,
		DefenseTime: tools.FormatDateTime(req.DefenseTime),
		Status:      model.GroupScheduled,
	}
	if req.Status != nil {
		g.Status = *req.Status
	}
	if err := m.db.WithContext(c.Request.Context()).Create(&g).Error; err != nil {
		log.Error("新增答辩分组失败", "error", err, "plan_id", req.PlanID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("答辩分组创建成功", "group_id", g.GroupID, "plan_id", g.PlanID)
	response.Success(c, g)
}

func (m *ModuleGroup) Update(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	var req SaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidParam.WithOrigin(err))
		return
	}

	values := map[string]any{
		"plan_id":      req.PlanID,
		"group_name":   req.GroupName,
		"group_leader": req.GroupLeader,
		"venue_id":     req.VenueID,
		"defense_time": tools.FormatDateTime(req.DefenseTime),
	}
	if req.Status != nil {
		values["status"] = *req.Status
	}
	if err := m.db.WithContext(c.Request.Context()).Model(&model.DefenseGroup{}).Where("group_id = ?", id).Updates(values).Error; err != nil {
		log.Error("更新答辩分组失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	m.detail(c, id)
}

// Delete 在同一事务中删除分组及其成员、学生
func (m *ModuleGroup) Delete(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	err := database.Transaction(c.Request.Context(), m.db, "group.delete", func(tx *gorm.DB) error {
		return deleteCascade(tx, id)
	})
	if err != nil {
		log.Error("删除答辩分组失败，已回滚", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("答辩分组删除成功", "id", id)
	response.Message(c, "删除成功")
}

// Export 导出分组名单：答辩教师与答辩学生各一个工作表
func (m *ModuleGroup) Export(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrNotFound)
		return
	}
	ctx := c.Request.Context()

	g, err := takeGroup(ctx, m.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	}
	if err != nil {
		log.Error("查询答辩分组失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	members, err := selectMembers(ctx, m.db, id)
	if err != nil {
		log.Error("查询分组成员失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	students, err := selectStudents(ctx, m.db, id)
	if err != nil {
		log.Error("查询分组学生失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	f, err := tools.NewWorkbook(
		tools.Sheet{Name: "答辩教师", Rows: members},
		tools.Sheet{Name: "答辩学生", Rows: students},
	)
	if err != nil {
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	if err := tools.SendExcel(c, f, g.GroupName+".xlsx"); err != nil {
		response.Fail(c, response.ErrServer.WithOrigin(err))
	}
}
