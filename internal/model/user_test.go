package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserGroup_Valid(t *testing.T) {
	for _, g := range []UserGroup{UserGroupAdmin, UserGroupTeacher, UserGroupStudent} {
		assert.True(t, g.Valid(), g)
	}
	for _, g := range []UserGroup{"", "Admin", "guest"} {
		assert.False(t, g.Valid(), g)
	}
	// 分组学生记录与学生身份是两个不同的名字
	assert.Equal(t, "group_students", GroupStudent{}.TableName())
	assert.Equal(t, UserGroup("student"), UserGroupStudent)
}
