package teacher

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/test"
	"defense-management-system/tools"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var rowColumns = []string{
	"teacher_id", "user_id", "teacher_name", "teacher_no", "teacher_gender", "teacher_age",
	"department_name", "professional_title", "state", "create_time", "update_time", "phone", "email",
}

func setup(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := test.NewMockDB(t)
	m := &ModuleTeacher{}
	m.Init(&deps.Deps{DB: db})
	r := gin.New()
	m.InitRouter(r.Group("/api"))
	return r, mock
}

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestList(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("FROM teachers t LEFT JOIN users u ON t.user_id = u.user_id " +
		"WHERE t.department_name LIKE \\? AND t.state = \\? ORDER BY t.create_time DESC").
		WithArgs("%计算机%", 1, 10).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(1, 2, "王老师", "T001", "男", "45", "计算机学院", "教授", 1, nil, nil, nil, "wang@example.com"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM teachers t").WillReturnRows(countRows(1))

	var page test.Page[model.TeacherRow]
	env := test.DoRequest(t, r, http.MethodGet, "/api/teacher/list?department_name=%E8%AE%A1%E7%AE%97%E6%9C%BA&state=1", nil)
	test.Result(t, env, &page)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.List, 1)
	assert.Equal(t, "T001", page.List[0].TeacherNo)
	require.NotNil(t, page.List[0].ProfessionalTitle)
	assert.Equal(t, "教授", *page.List[0].ProfessionalTitle)
}

func TestDetail(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("WHERE t.teacher_id = \\?").WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(2, 3, "李老师", "T002", nil, nil, nil, "副教授", 1, nil, nil, "13900000000", nil))
	mock.ExpectQuery("WHERE t.teacher_id = \\?").WithArgs(9, 1).WillReturnRows(sqlmock.NewRows(rowColumns))

	var got model.TeacherRow
	test.Result(t, test.DoRequest(t, r, http.MethodGet, "/api/teacher/2", nil), &got)
	assert.Equal(t, "李老师", got.TeacherName)
	require.NotNil(t, got.Phone)

	test.ErrorEqual(t, errNotFound, test.DoRequest(t, r, http.MethodGet, "/api/teacher/9", nil))
	test.ErrorEqual(t, errNotFound, test.DoRequest(t, r, http.MethodGet, "/api/teacher/abc", nil))
}

func TestCreate(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("INSERT INTO `teachers`").WillReturnResult(sqlmock.NewResult(5, 1))

	var got model.Teacher
	env := test.DoRequest(t, r, http.MethodPost, "/api/teacher", gin.H{
		"teacher_name": "赵老师",
		"teacher_no":   "T005",
		"user_id":      8,
		"state":        0,
	})
	test.Result(t, env, &got)
	assert.EqualValues(t, 5, got.TeacherID)
	assert.Equal(t, model.StateDisabled, got.State)

	env = test.DoRequest(t, r, http.MethodPost, "/api/teacher", gin.H{"teacher_name": "赵老师"})
	test.ErrorEqual(t, response.ErrInvalidRequest, env)
}

func TestUpdate_KeepsState(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("UPDATE `teachers` SET `department_name`=\\?,`professional_title`=\\?,`teacher_age`=\\?," +
		"`teacher_gender`=\\?,`teacher_name`=\\?,`teacher_no`=\\? WHERE teacher_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("WHERE t.teacher_id = \\?").
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(2, 3, "李老师", "T002", nil, nil, nil, nil, 0, nil, nil, nil, nil))

	env := test.DoRequest(t, r, http.MethodPut, "/api/teacher/2", gin.H{"teacher_name": "李老师", "teacher_no": "T002"})
	test.NoError(t, env)
}

func TestDelete(t *testing.T) {
	cases := []struct {
		name    string
		counts  []int
		message string
	}{
		{"group leader", []int{1}, "该教师是答辩分组组长，无法删除"},
		{"group member", []int{0, 3}, "该教师是答辩小组成员，无法删除"},
		{"advisor", []int{0, 0, 1}, "该教师是论文指导教师，无法删除"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, mock := setup(t)
			for _, n := range tc.counts {
				mock.ExpectQuery("SELECT count\\(\\*\\)").WillReturnRows(countRows(n))
			}
			env := test.DoRequest(t, r, http.MethodDelete, "/api/teacher/4", nil)
			test.ErrorCode(t, 400, env)
			assert.Equal(t, tc.message, env.Error.Message)
		})
	}

	t.Run("ok", func(t *testing.T) {
		r, mock := setup(t)
		for range deleteGuards {
			mock.ExpectQuery("SELECT count\\(\\*\\)").WillReturnRows(countRows(0))
		}
		mock.ExpectExec("DELETE FROM `teachers` WHERE teacher_id = \\?").WithArgs(4).
			WillReturnResult(sqlmock.NewResult(0, 1))

		test.NoError(t, test.DoRequest(t, r, http.MethodDelete, "/api/teacher/4", nil))
	})

	t.Run("invalid id", func(t *testing.T) {
		r, _ := setup(t)
		test.ErrorEqual(t, response.ErrInvalidID, test.DoRequest(t, r, http.MethodDelete, "/api/teacher/x", nil))
	})
}

func TestExport(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("FROM teachers t").WillReturnRows(sqlmock.NewRows(rowColumns))

	w := test.Do(t, r, http.MethodGet, "/api/teacher/export", nil)
	assert.Equal(t, tools.ExcelContentType, w.Header().Get("Content-Type"))
}
