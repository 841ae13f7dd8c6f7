package plan

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"defense-management-system/internal/global/database"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

var (
	errNotFound     = response.ErrNotFound.WithTips("答辩计划不存在")
	errAuditStatus  = response.ErrInvalidParam.WithTips("无效的审核状态")
	errPlanHasGroup = response.ErrDependency.WithTips("该答辩计划下存在答辩分组，无法删除")
)

// SaveReq 新增与更新共用，start_time/end_time 接受任意常见时间格式
type SaveReq struct {
	PlanName    string            `json:"plan_name" binding:"required"`
	PlanDesc    *string           `json:"plan_desc"`
	DefenseType string            `json:"defense_type" binding:"required"`
	StartTime   string            `json:"start_time" binding:"required"`
	EndTime     string            `json:"end_time" binding:"required"`
	Status      *model.PlanStatus `json:"status"`
}

type AuditReq struct {
	Status *model.PlanStatus `json:"status"`
}

func (m *ModulePlan) List(c *gin.Context) {
	ctx := c.Request.Context()
	page, size := tools.ParsePage(c.Query("page"), c.Query("size"))
	f := newFilter(c.Request.URL.Query())

	plans, err := selectPlans(ctx, m.db, f, tools.Offset(page, size), size)
	if err != nil {
		log.Error("查询答辩计划列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	total, err := countPlans(ctx, m.db, f)
	if err != nil {
		log.Error("统计答辩计划总数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Page(c, plans, total, page, size)
}

// LegacyList 重定向到 /defense/plan/list，保留查询参数
func (m *ModulePlan) LegacyList(c *gin.Context) {
	target := strings.TrimSuffix(c.Request.URL.Path, "/defense/list") + "/defense/plan/list"
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}
	c.Redirect(http.StatusFound, target)
}

func (m *ModulePlan) Detail(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, errNotFound)
		return
	}
	m.detail(c, id)
}

func (m *ModulePlan) detail(c *gin.Context, id uint) {
	p, err := takePlan(c.Request.Context(), m.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, errNotFound)
			return
		}
		log.Error("查询答辩计划失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, p)
}

func (m *ModulePlan) Create(c *gin.Context) {
	var req SaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	p := planWrite{
		PlanName:    req.PlanName,
		PlanDesc:    req.PlanDesc,
		DefenseType: req.DefenseType,
		StartTime:   tools.FormatDateTime(req.StartTime),
		EndTime:     tools.FormatDateTime(req.EndTime),
		Status:      model.PlanPending,
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if err := m.db.WithContext(c.Request.Context()).Create(&p).Error; err != nil {
		log.Error("新增答辩计划失败", "error", err, "plan_name", req.PlanName)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("答辩计划创建成功", "plan_id", p.PlanID)
	response.Success(c, p)
}

func (m *ModulePlan) Update(c *gin.Context) {
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
		"plan_name":    req.PlanName,
		"plan_desc":    req.PlanDesc,
		"defense_type": req.DefenseType,
		"start_time":   tools.FormatDateTime(req.StartTime),
		"end_time":     tools.FormatDateTime(req.EndTime),
	}
	if req.Status != nil {
		values["status"] = *req.Status
	}
	if err := m.db.WithContext(c.Request.Context()).Model(&model.DefensePlan{}).Where("plan_id = ?", id).Updates(values).Error; err != nil {
		log.Error("更新答辩计划失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	m.detail(c, id)
}

func (m *ModulePlan) Delete(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	ctx := c.Request.Context()

	blocked, err := database.CheckDependencies(ctx, m.db, id,
		database.Dependency{Table: "defense_groups", Column: "plan_id", Message: errPlanHasGroup.Message},
	)
	if err != nil {
		log.Error("检查答辩计划关联分组失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if blocked != "" {
		response.Fail(c, errPlanHasGroup)
		return
	}

	if err := m.db.WithContext(ctx).Where("plan_id = ?", id).Delete(&model.DefensePlan{}).Error; err != nil {
		log.Error("删除答辩计划失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("答辩计划删除成功", "id", id)
	response.Message(c, "删除成功")
}

// Audit 审核结果只能是通过(2)或驳回(4)
func (m *ModulePlan) Audit(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	var req AuditReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil || !req.Status.Auditable() {
		response.Fail(c, errAuditStatus)
		return
	}
	m.setStatus(c, id, *req.Status)
}

func (m *ModulePlan) Publish(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	m.setStatus(c, id, model.PlanPublished)
}

func (m *ModulePlan) setStatus(c *gin.Context, id uint, status model.PlanStatus) {
	if err := updateStatus(c.Request.Context(), m.db, id, status); err != nil {
		log.Error("更新答辩计划状态失败", "error", err, "id", id, "status", status)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("答辩计划状态变更", "id", id, "status", status)
	m.detail(c, id)
}

func (m *ModulePlan) Export(c *gin.Context) {
	plans, err := selectPlans(c.Request.Context(), m.db, newFilter(c.Request.URL.Query()), 0, 0)
	if err != nil {
		log.Error("导出答辩计划失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	f, err := tools.NewWorkbook(tools.Sheet{Name: "答辩计划", Rows: plans})
	if err != nil {
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}
	if err := tools.SendExcel(c, f, "答辩计划.xlsx"); err != nil {
		response.Fail(c, response.ErrServer.WithOrigin(err))
	}
}
