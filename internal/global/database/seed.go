package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"defense-management-system/internal/model"
	"defense-management-system/tools"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
	// 示例账号统一使用的密码
	SamplePassword = "123456"
)

func ptr[T any](v T) *T {
	return &v
}

func at(s string) *time.Time {
	t, _ := tools.ParseDateTime(s)
	return &t
}

func samplePlans() []model.DefensePlan {
	return []model.DefensePlan{
		{
			PlanName:    "2025年春季答辩计划",
			PlanDesc:    ptr("2025年春季学期毕业论文答辩计划"),
			DefenseType: "bachelor",
			StartTime:   at("2025-05-15 08:00:00"),
			EndTime:     at("2025-05-20 18:00:00"),
			Status:      model.PlanPublished,
		},
		{
			PlanName:    "2025年秋季答辩计划",
			PlanDesc:    ptr("2025年秋季学期毕业论文答辩计划"),
			DefenseType: "bachelor",
			StartTime:   at("2025-11-15 08:00:00"),
			EndTime:     at("2025-11-20 18:00:00"),
			Status:      model.PlanPending,
		},
	}
}

// Seed 缺少管理员时创建管理员，计划表为空时写入两条示例计划
func Seed(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	var admins int64
	if err := db.Model(&model.User{}).Where("username = ?", AdminUsername).Count(&admins).Error; err != nil {
		return err
	}
	if admins == 0 {
		admin := model.User{
			Username:  AdminUsername,
			Password:  tools.PasswordEncrypt(AdminPassword),
			Nickname:  "系统管理员",
			Phone:     ptr("13800138000"),
			Email:     ptr("admin@example.com"),
			UserGroup: model.UserGroupAdmin,
			State:     model.StateEnabled,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	var plans int64
	if err := db.Model(&model.DefensePlan{}).Count(&plans).Error; err != nil {
		return err
	}
	if plans == 0 {
		rows := samplePlans()
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

// SampleSummary 各表写入的示例行数
type SampleSummary struct {
	Users               int `json:"users"`
	Teachers            int `json:"teachers"`
	Students            int `json:"students"`
	DefensePlans        int `json:"defense_plans"`
	DefenseGroups       int `json:"defense_groups"`
	DefenseGroupMembers int `json:"defense_group_members"`
	Papers              int `json:"papers"`
	GroupStudents       int `json:"group_students"`
	Notices             int `json:"notices"`
}

// wipeOrder 子表在前，保留管理员账号
var wipeOrder = []string{
	"DELETE FROM defense_group_members",
	"DELETE FROM group_students",
	"DELETE FROM papers",
	"DELETE FROM defense_groups",
	"DELETE FROM defense_plans",
	"DELETE FROM teachers",
	"DELETE FROM students",
	"DELETE FROM users WHERE username <> 'admin'",
	"DELETE FROM notices",
}

// GenerateSampleData 清空业务数据并写入一套完整示例，整体在一个事务内完成
func GenerateSampleData(ctx context.Context, db *gorm.DB) (SampleSummary, error) {
	var summary SampleSummary
	err := Transaction(ctx, db, "sample.generate", func(tx *gorm.DB) error {
		for _, stmt := range wipeOrder {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}

		password := tools.PasswordEncrypt(SamplePassword)
		users := []model.User{
			{Username: "teacher001", Password: password, Nickname: "张教授", Phone: ptr("13800138001"), Email: ptr("teacher001@example.com"), UserGroup: model.UserGroupTeacher, State: model.StateEnabled},
			{Username: "teacher002", Password: password, Nickname: "李老师", Phone: ptr("13800138002"), Email: ptr("teacher002@example.com"), UserGroup: model.UserGroupTeacher, State: model.StateEnabled},
			{Username: "student001", Password: password, Nickname: "王同学", Phone: ptr("13800138010"), Email: ptr("student001@example.com"), UserGroup: model.UserGroupStudent, State: model.StateEnabled},
			{Username: "student002", Password: password, Nickname: "赵同学", Phone: ptr("13800138011"), Email: ptr("student002@example.com"), UserGroup: model.UserGroupStudent, State: model.StateEnabled},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		teachers := []model.Teacher{
			{UserID: users[0].UserID, TeacherName: "张教授", TeacherNo: "T0001", TeacherGender: ptr("男"), TeacherAge: ptr("50"), DepartmentName: ptr("计算机科学与技术系"), ProfessionalTitle: ptr("教授"), State: model.StateEnabled},
			{UserID: users[1].UserID, TeacherName: "李老师", TeacherNo: "T0002", TeacherGender: ptr("女"), TeacherAge: ptr("35"), DepartmentName: ptr("软件工程系"), ProfessionalTitle: ptr("讲师"), State: model.StateEnabled},
		}
		if err := tx.Create(&teachers).Error; err != nil {
			return err
		}

		students := []model.Student{
			{UserID: users[2].UserID, StudentName: "王同学", StudentNo: "S20220001", StudentGender: ptr("男"), StudentAge: ptr("22"), ClassName: ptr("计算机22-1班"), MajorName: ptr("计算机科学与技术"), Grade: ptr("2022"), State: model.StateEnabled},
			{UserID: users[3].UserID, StudentName: "赵同学", StudentNo: "S20220002", StudentGender: ptr("女"), StudentAge: ptr("21"), ClassName: ptr("计算机22-1班"), MajorName: ptr("计算机科学与技术"), Grade: ptr("2022"), State: model.StateEnabled},
		}
		if err := tx.Create(&students).Error; err != nil {
			return err
		}

		plans := samplePlans()
		if err := tx.Create(&plans).Error; err != nil {
			return err
		}

		groups := []model.DefenseGroup{
			{PlanID: plans[0].PlanID, GroupName: "第一答辩小组", GroupLeader: teachers[0].TeacherID, VenueID: ptr[uint](1), DefenseTime: at("2025-05-15 09:00:00"), Status: model.GroupPending},
			{PlanID: plans[0].PlanID, GroupName: "第二答辩小组", GroupLeader: teachers[1].TeacherID, VenueID: ptr[uint](2), DefenseTime: at("2025-05-15 09:00:00"), Status: model.GroupPending},
		}
		if err := tx.Create(&groups).Error; err != nil {
			return err
		}

		titles := []string{"基于Vue3的答辩管理系统设计与实现", "基于Spring Boot的后端API设计"}
		papers := []model.Paper{
			{StudentID: students[0].StudentID, ThesisTitle: titles[0], ThesisAbstract: ptr("本文设计并实现了一个基于Vue3的答辩管理系统..."), Keywords: ptr("Vue3,答辩管理,系统设计"), AdvisorID: teachers[0].TeacherID, Status: model.PaperApproved},
			{StudentID: students[1].StudentID, ThesisTitle: titles[1], ThesisAbstract: ptr("本文研究了基于Spring Boot的后端API设计与实现..."), Keywords: ptr("Spring Boot,API设计,后端开发"), AdvisorID: teachers[1].TeacherID, Status: model.PaperApproved},
		}
		if err := tx.Create(&papers).Error; err != nil {
			return err
		}

		members := []model.DefenseGroupMember{
			{GroupID: groups[0].GroupID, TeacherID: teachers[0].TeacherID, Role: "leader"},
			{GroupID: groups[0].GroupID, TeacherID: teachers[1].TeacherID, Role: "member"},
			{GroupID: groups[1].GroupID, TeacherID: teachers[1].TeacherID, Role: "leader"},
			{GroupID: groups[1].GroupID, TeacherID: teachers[0].TeacherID, Role: "member"},
		}
		if err := tx.Create(&members).Error; err != nil {
			return err
		}

		groupStudents := []model.GroupStudent{
			{GroupID: groups[0].GroupID, StudentID: students[0].StudentID, ThesisTitle: titles[0], OrderNum: 1, Status: model.DefenseWaiting},
			{GroupID: groups[0].GroupID, StudentID: students[1].StudentID, ThesisTitle: titles[1], OrderNum: 2, Status: model.DefenseWaiting},
		}
		if err := tx.Create(&groupStudents).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		notices := []model.Notice{
			{NoticeTitle: "答辩计划通知", Content: "2025年春季答辩计划已发布，请各位同学注意查看...", NoticePublisher: "系统管理员", ReleaseTime: &now, ExamineState: 1, Recommend: 1},
			{NoticeTitle: "答辩注意事项", Content: "请参加答辩的同学提前准备好答辩PPT和相关材料...", NoticePublisher: "系统管理员", ReleaseTime: &now, ExamineState: 1, Recommend: 0},
		}
		if err := tx.Create(&notices).Error; err != nil {
			return err
		}

		summary = SampleSummary{
			Users:               len(users) + 1,
			Teachers:            len(teachers),
			Students:            len(students),
			DefensePlans:        len(plans),
			DefenseGroups:       len(groups),
			DefenseGroupMembers: len(members),
			Papers:              len(papers),
			GroupStudents:       len(groupStudents),
			Notices:             len(notices),
		}
		return nil
	})
	return summary, err
}
