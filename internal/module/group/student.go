package group

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"defense-management-system/internal/global/database"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

type StudentReq struct {
	GroupID     uint                 `json:"group_id" binding:"required"`
	StudentID   uint                 `json:"student_id" binding:"required"`
	ThesisTitle string               `json:"thesis_title" binding:"required"`
	OrderNum    int                  `json:"order_num" binding:"required"`
	Status      *model.DefenseStatus `json:"status"`
}

type StudentItem struct {
	StudentID   uint   `json:"student_id" binding:"required"`
	ThesisTitle string `json:"thesis_title" binding:"required"`
	OrderNum    int    `json:"order_num"`
}

type BatchStudentReq struct {
	GroupID  uint          `json:"group_id" binding:"required"`
	Students []StudentItem `json:"students" binding:"required,dive"`
}

// OrderReq order_num 允许为 0，只要求出现
type OrderReq struct {
	GsID     uint `json:"gs_id" binding:"required"`
	OrderNum *int `json:"order_num" binding:"required"`
}

func (m *ModuleGroup) ListStudents(c *gin.Context) {
	groupID, ok := tools.ParseID(c.Param("groupId"))
	if !ok {
		response.Fail(c, response.ErrInvalidParam)
		return
	}
	rows, err := selectStudents(c.Request.Context(), m.db, groupID)
	if err != nil {
		log.Error("查询分组学生失败", "error", err, "group_id", groupID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.List(c, rows)
}

func (m *ModuleGroup) AddStudent(c *gin.Context) {
	var req StudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidParam.WithOrigin(err))
		return
	}
	gs := model.GroupStudent{
		GroupID:     req.GroupID,
		StudentID:   req.StudentID,
		ThesisTitle: req.ThesisTitle,
		OrderNum:    req.OrderNum,
		Status:      model.DefenseWaiting,
	}
	if req.Status != nil {
		gs.Status = *req.Status
	}
	if err := m.db.WithContext(c.Request.Context()).Create(&gs).Error; err != nil {
		log.Error("添加分组学生失败", "error", err, "group_id", req.GroupID, "student_id", req.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"gs_id": gs.GsID})
}

func (m *ModuleGroup) BatchAddStudents(c *gin.Context) {
	var req BatchStudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidParam.WithOrigin(err))
		return
	}

	err := database.Transaction(c.Request.Context(), m.db, "group.student.batch", func(tx *gorm.DB) error {
		for _, item := range req.Students {
			gs := model.GroupStudent{
				GroupID:     req.GroupID,
				StudentID:   item.StudentID,
				ThesisTitle: item.ThesisTitle,
				OrderNum:    item.OrderNum,
				Status:      model.DefenseWaiting,
			}
			if err := tx.Create(&gs).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("批量添加分组学生失败，已回滚", "error", err, "group_id", req.GroupID, "count", len(req.Students))
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("批量添加分组学生", "group_id", req.GroupID, "count", len(req.Students))
	response.Message(c, "批量添加成功")
}

func (m *ModuleGroup) DeleteStudent(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	if err := m.db.WithContext(c.Request.Context()).Where("gs_id = ?", id).Delete(&model.GroupStudent{}).Error; err != nil {
		log.Error("删除分组学生失败", "error", err, "gs_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Message(c, "删除成功")
}

// UpdateOrder 调整学生答辩顺序
func (m *ModuleGroup) UpdateOrder(c *gin.Context) {
	var req OrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidParam.WithOrigin(err))
		return
	}
	err := m.db.WithContext(c.Request.Context()).
		Model(&model.GroupStudent{}).
		Where("gs_id = ?", req.GsID).
		Update("order_num", *req.OrderNum).Error
	if err != nil {
		log.Error("更新答辩顺序失败", "error", err, "gs_id", req.GsID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Message(c, "更新成功")
}
