package student

import (
	"errors"
	"math"
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
	"student_id", "user_id", "student_name", "student_no", "student_gender", "student_age",
	"class_name", "major_name", "grade", "state", "create_time", "update_time", "phone", "email",
}

func newRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := test.NewMockDB(t)
	m := &ModuleStudent{}
	m.Init(&deps.Deps{DB: db})
	r := gin.New()
	m.InitRouter(r.Group("/api"))
	return r, mock
}

func TestList(t *testing.T) {
	r, mock := newRouter(t)
	mock.ExpectQuery("SELECT s.student_id, .* FROM students s LEFT JOIN users u ON s.user_id = u.user_id " +
		"WHERE s.student_name LIKE \\? ORDER BY s.create_time DESC LIMIT").
		WithArgs("%张%", 5).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(1, 3, "张三", "2021001", "男", "22", "计算机1班", "计算机科学与技术", "2021", 1, nil, nil, "13800000003", nil))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM students s LEFT JOIN users u").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	var page test.Page[model.StudentRow]
	env := test.DoRequest(t, r, http.MethodGet, "/api/student/list?size=5&student_name=%E5%BC%A0", nil)
	test.Result(t, env, &page)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.Size)
	require.Len(t, page.List, 1)
	assert.Equal(t, "张三", page.List[0].StudentName)
	require.NotNil(t, page.List[0].Phone)
	assert.Equal(t, "13800000003", *page.List[0].Phone)
}

func TestList_Empty(t *testing.T) {
	r, mock := newRouter(t)
	mock.ExpectQuery("FROM students s").WillReturnRows(sqlmock.NewRows(rowColumns))
	mock.ExpectQuery("SELECT count\\(\\*\\)").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	env := test.DoRequest(t, r, http.MethodGet, "/api/student/list", nil)
	test.NoError(t, env)
	assert.JSONEq(t, `{"list":[],"total":0,"page":1,"size":10}`, string(env.Result))
}

func TestFilter(t *testing.T) {
	db := test.DryRun(t)
	f := newFilter(map[string][]string{
		"class_name": {"1班"},
		"grade":      {"2021"},
		"state":      {"0"},
	})
	stmt := withFilter(db, f).Find(&[]model.StudentRow{}).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "s.class_name LIKE ?")
	assert.Contains(t, sql, "s.grade LIKE ?")
	assert.Contains(t, sql, "s.state = ?")
	assert.NotContains(t, sql, "s.student_name")
	assert.Equal(t, []any{"%1班%", "%2021%", int64(0)}, stmt.Vars)

	// 非数字的 state 视为未传
	f = newFilter(map[string][]string{"state": {"abc"}})
	assert.Nil(t, f.State)
}

func TestDetail_NotFound(t *testing.T) {
	r, mock := newRouter(t)
	mock.ExpectQuery("WHERE s.student_id = \\?").WithArgs(99, 1).WillReturnRows(sqlmock.NewRows(rowColumns))

	env := test.DoRequest(t, r, http.MethodGet, "/api/student/99", nil)
	test.ErrorEqual(t, errNotFound, env)

	env = test.DoRequest(t, r, http.MethodGet, "/api/student/abc", nil)
	test.ErrorEqual(t, errNotFound, env)
}

func TestDetailByUser(t *testing.T) {
	r, mock := newRouter(t)
	mock.ExpectQuery("WHERE s.user_id = \\?").WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(1, 3, "张三", "2021001", nil, nil, nil, nil, nil, 1, nil, nil, nil, nil))

	var got model.StudentRow
	test.Result(t, test.DoRequest(t, r, http.MethodGet, "/api/student/user/3", nil), &got)
	assert.EqualValues(t, 1, got.StudentID)
	assert.EqualValues(t, 3, got.UserID)
}

func TestCreate(t *testing.T) {
	r, mock := newRouter(t)
	mock.ExpectExec("INSERT INTO `students`").WillReturnResult(sqlmock.NewResult(7, 1))

	var got model.Student
	env := test.DoRequest(t, r, http.MethodPost, "/api/student", gin.H{
		"student_name": "张三",
		"student_no":   "S001",
		"user_id":      1,
	})
	test.Result(t, env, &got)
	assert.EqualValues(t, 7, got.StudentID)
	assert.Equal(t, "张三", got.StudentName)
	assert.Equal(t, "S001", got.StudentNo)
	assert.Equal(t, model.StateEnabled, got.State)
}

func TestCreate_MissingField(t *testing.T) {
	r, _ := newRouter(t)

	env := test.DoRequest(t, r, http.MethodPost, "/api/student", gin.H{"student_name": "张三", "user_id": 1})
	test.ErrorEqual(t, response.ErrInvalidRequest, env)
}

func TestUpdate(t *testing.T) {
	r, mock := newRouter(t)
	mock.ExpectExec("UPDATE `students` SET .* WHERE student_id = \\?").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("WHERE s.student_id = \\?").WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(1, 3, "李四", "S002", nil, nil, nil, nil, nil, 1, nil, nil, nil, nil))

	var got model.StudentRow
	env := test.DoRequest(t, r, http.MethodPut, "/api/student/1", gin.H{"student_name": "李四", "student_no": "S002"})
	test.Result(t, env, &got)
	assert.Equal(t, "李四", got.StudentName)

	env = test.DoRequest(t, r, http.MethodPut, "/api/student/x", gin.H{"student_name": "李四", "student_no": "S002"})
	test.ErrorEqual(t, response.ErrInvalidID, env)
}

func TestUpdate_Missing(t *testing.T) {
	r, mock := newRouter(t)
	mock.ExpectExec("UPDATE `students`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("WHERE s.student_id = \\?").WillReturnRows(sqlmock.NewRows(rowColumns))

	env := test.DoRequest(t, r, http.MethodPut, "/api/student/42", gin.H{"student_name": "李四", "student_no": "S002"})
	test.ErrorEqual(t, errNotFound, env)
}

func TestDelete(t *testing.T) {
	t.Run("has paper", func(t *testing.T) {
		r, mock := newRouter(t)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `papers` WHERE student_id = \\?").WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		env := test.DoRequest(t, r, http.MethodDelete, "/api/student/1", nil)
		test.ErrorCode(t, response.ErrDependency.Code, env)
		assert.Equal(t, "该学生下存在论文，无法删除", env.Error.Message)
	})

	t.Run("in group", func(t *testing.T) {
		r, mock := newRouter(t)
		mock.ExpectQuery("FROM `papers`").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("FROM `group_students`").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		env := test.DoRequest(t, r, http.MethodDelete, "/api/student/1", nil)
		assert.Equal(t, "该学生已分配到答辩小组，无法删除", env.Error.Message)
	})

	t.Run("ok", func(t *testing.T) {
		r, mock := newRouter(t)
		mock.ExpectQuery("FROM `papers`").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("FROM `group_students`").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("DELETE FROM `students` WHERE student_id = \\?").WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		var got response.MessageResult
		test.Result(t, test.DoRequest(t, r, http.MethodDelete, "/api/student/1", nil), &got)
		assert.Equal(t, "删除成功", got.Message)
	})

	t.Run("db error", func(t *testing.T) {
		r, mock := newRouter(t)
		mock.ExpectQuery("FROM `papers`").WillReturnError(errors.New("connection refused"))

		env := test.DoRequest(t, r, http.MethodDelete, "/api/student/1", nil)
		test.ErrorEqual(t, response.ErrDatabase, env)
	})
}

func TestExport(t *testing.T) {
	r, mock := newRouter(t)
	mock.ExpectQuery("FROM students s").
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(1, 3, "张三", "2021001", nil, nil, nil, nil, nil, 1, nil, nil, nil, nil))

	w := test.Do(t, r, http.MethodGet, "/api/student/export", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestCreateThenDetail(t *testing.T) {
	r, mock := newRouter(t)
	mock.ExpectExec("INSERT INTO `students` \\(`user_id`,`student_name`,`student_no`,`student_gender`,`student_age`,`class_name`,`major_name`,`grade`,`state`\\)").
		WithArgs(3, "张三", "S001", nil, nil, "计算机1班", nil, nil, 1).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("WHERE s.student_id = \\?").WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(7, 3, "张三", "S001", nil, nil, "计算机1班", nil, nil, 1, nil, nil, nil, nil))

	var created model.Student
	env := test.DoRequest(t, r, http.MethodPost, "/api/student", gin.H{
		"student_name": "张三",
		"student_no":   "S001",
		"user_id":      3,
		"class_name":   "计算机1班",
	})
	test.Result(t, env, &created)
	require.EqualValues(t, 7, created.StudentID)

	var got model.StudentRow
	test.Result(t, test.DoRequest(t, r, http.MethodGet, "/api/student/7", nil), &got)
	assert.Equal(t, created.StudentID, got.StudentID)
	assert.Equal(t, created.StudentName, got.StudentName)
	assert.Equal(t, created.StudentNo, got.StudentNo)
	assert.Equal(t, created.ClassName, got.ClassName)
}

// 同一更新请求重复提交，写入的值与最终记录都不变
func TestUpdate_Repeated(t *testing.T) {
	r, mock := newRouter(t)
	body := gin.H{"student_name": "李四", "student_no": "S002", "class_name": "计算机1班", "grade": "2021"}

	for i := 0; i < 2; i++ {
		mock.ExpectExec("UPDATE `students` SET `class_name`=\\?,`grade`=\\?,`major_name`=\\?,`student_age`=\\?,`student_gender`=\\?,`student_name`=\\?,`student_no`=\\? WHERE student_id = \\?").
			WithArgs("计算机1班", "2021", nil, nil, nil, "李四", "S002", 1).
			WillReturnResult(sqlmock.NewResult(0, int64(1-i)))
		mock.ExpectQuery("WHERE s.student_id = \\?").WithArgs(1, 1).
			WillReturnRows(sqlmock.NewRows(rowColumns).
				AddRow(1, 3, "李四", "S002", nil, nil, "计算机1班", nil, "2021", 1, nil, nil, nil, nil))
	}

	var first, second model.StudentRow
	test.Result(t, test.DoRequest(t, r, http.MethodPut, "/api/student/1", body), &first)
	test.Result(t, test.DoRequest(t, r, http.MethodPut, "/api/student/1", body), &second)
	assert.Equal(t, first, second)
	assert.Equal(t, "李四", second.StudentName)
	require.NotNil(t, second.Grade)
	assert.Equal(t, "2021", *second.Grade)
}

func TestList_PageOverflow(t *testing.T) {
	r, mock := newRouter(t)
	mock.ExpectQuery("FROM students s .* LIMIT \\? OFFSET \\?").
		WithArgs(tools.MaxSize, (math.MaxInt32-1)*tools.MaxSize).
		WillReturnRows(sqlmock.NewRows(rowColumns))
	mock.ExpectQuery("SELECT count\\(\\*\\)").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	var page test.Page[model.StudentRow]
	test.Result(t, test.DoRequest(t, r, http.MethodGet, "/api/student/list?page=9223372036854775807&size=9223372036854775807", nil), &page)
	assert.Empty(t, page.List)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, tools.MaxSize, page.Size)
}
