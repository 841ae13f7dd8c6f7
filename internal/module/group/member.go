package group

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"defense-management-system/internal/global/database"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

type MemberReq struct {
	GroupID   uint   `json:"group_id" binding:"required"`
	TeacherID uint   `json:"teacher_id" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

type MemberItem struct {
	TeacherID uint   `json:"teacher_id" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

// BatchMemberReq 所有元素先校验，再整体写入
type BatchMemberReq struct {
	GroupID uint         `json:"group_id" binding:"required"`
	Members []MemberItem `json:"members" binding:"required,dive"`
}

func (m *ModuleGroup) ListMembers(c *gin.Context) {
	groupID, ok := tools.ParseID(c.Param("groupId"))
	if !ok {
		response.Fail(c, response.ErrInvalidParam)
		return
	}
	rows, err := selectMembers(c.Request.Context(), m.db, groupID)
	if err != nil {
		log.Error("查询分组成员失败", "error", err, "group_id", groupID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.List(c, rows)
}

func (m *ModuleGroup) AddMember(c *gin.Context) {
	var req MemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidParam.WithOrigin(err))
		return
	}
	member := model.DefenseGroupMember{GroupID: req.GroupID, TeacherID: req.TeacherID, Role: req.Role}
	if err := m.db.WithContext(c.Request.Context()).Create(&member).Error; err != nil {
		log.Error("添加分组成员失败", "error", err, "group_id", req.GroupID, "teacher_id", req.TeacherID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"gt_id": member.GtID})
}

func (m *ModuleGroup) BatchAddMembers(c *gin.Context) {
	var req BatchMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidParam.WithOrigin(err))
		return
	}

	err := database.Transaction(c.Request.Context(), m.db, "group.member.batch", func(tx *gorm.DB) error {
		for _, item := range req.Members {
			member := model.DefenseGroupMember{GroupID: req.GroupID, TeacherID: item.TeacherID, Role: item.Role}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("批量添加分组成员失败，已回滚", "error", err, "group_id", req.GroupID, "count", len(req.Members))
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("批量添加分组成员", "group_id", req.GroupID, "count", len(req.Members))
	response.Message(c, "批量添加成功")
}

func (m *ModuleGroup) DeleteMember(c *gin.Context) {
	id, ok := tools.ParseID(c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrInvalidID)
		return
	}
	if err := m.db.WithContext(c.Request.Context()).Where("gt_id = ?", id).Delete(&model.DefenseGroupMember{}).Error; err != nil {
		log.Error("删除分组成员失败", "error", err, "gt_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Message(c, "删除成功")
}
