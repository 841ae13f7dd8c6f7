package user

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/middleware"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/global/session"
	"defense-management-system/internal/model"
	"defense-management-system/test"
	"defense-management-system/tools"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var userColumns = []string{
	"user_id", "username", "password", "nickname", "phone", "email", "user_group", "avatar", "state", "create_time", "update_time",
}

func setup(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *session.MemoryStore) {
	db, mock := test.NewMockDB(t)
	sessions := session.NewMemoryStore(time.Hour)
	u := &ModuleUser{}
	u.Init(&deps.Deps{DB: db, Sessions: sessions})
	r := gin.New()
	u.InitRouter(r.Group("/api"))
	return r, mock, sessions
}

func userRow(id int, username, hash, group string) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id, username, hash, "昵称"+username, "13800000000", nil, group, nil, 1, nil, nil)
}

func TestNewToken(t *testing.T) {
	assert.Equal(t, "mock_token_1715760000000", newToken(time.UnixMilli(1715760000000)))
}

func TestLogin(t *testing.T) {
	r, mock, sessions := setup(t)
	hash := tools.PasswordEncrypt("admin123")
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").WithArgs("admin", 1).
		WillReturnRows(userRow(1, "admin", hash, "admin"))

	var got ProfileResult
	env := test.DoRequest(t, r, http.MethodPost, "/api/user/login", gin.H{"username": "admin", "password": "admin123"})
	test.Result(t, env, &got)
	assert.True(t, strings.HasPrefix(got.Obj.Token, "mock_token_"))
	assert.EqualValues(t, 1, got.Obj.UserID)
	assert.Equal(t, model.UserGroupAdmin, got.Obj.UserGroup)
	assert.NotContains(t, string(env.Result), "password")

	userID, ok, err := sessions.Lookup(t.Context(), got.Obj.Token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 1, userID)
}

func TestLogin_Failed(t *testing.T) {
	r, mock, _ := setup(t)
	mock.ExpectQuery("FROM `users` WHERE username = \\?").WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectQuery("FROM `users` WHERE username = \\?").WithArgs("admin", 1).
		WillReturnRows(userRow(1, "admin", tools.PasswordEncrypt("admin123"), "admin"))

	test.ErrorEqual(t, response.ErrLoginFailed,
		test.DoRequest(t, r, http.MethodPost, "/api/user/login", gin.H{"username": "ghost", "password": "x"}))
	test.ErrorEqual(t, response.ErrLoginFailed,
		test.DoRequest(t, r, http.MethodPost, "/api/user/login", gin.H{"username": "admin", "password": "wrong"}))
	test.ErrorEqual(t, response.ErrLoginFailed,
		test.DoRequest(t, r, http.MethodPost, "/api/user/login", gin.H{"username": "admin"}))
}

func TestInfo(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		r, _, _ := setup(t)
		test.ErrorEqual(t, response.ErrUnauthorized, test.DoRequest(t, r, http.MethodGet, "/api/user/info", nil))
	})

	t.Run("registered token", func(t *testing.T) {
		r, mock, sessions := setup(t)
		require.NoError(t, sessions.Save(t.Context(), "mock_token_1", 3))
		mock.ExpectQuery("FROM `users` WHERE user_id = \\?").WithArgs(3, 1).
			WillReturnRows(userRow(3, "student1", "x", "student"))

		var got ProfileResult
		test.Result(t, test.DoRequest(t, r, http.MethodGet, "/api/user/info", nil, middleware.TokenHeader, "mock_token_1"), &got)
		assert.Equal(t, "student1", got.Obj.Username)
		assert.Empty(t, got.Obj.Token)
	})

	t.Run("unknown token falls back to first user", func(t *testing.T) {
		r, mock, _ := setup(t)
		mock.ExpectQuery("SELECT \\* FROM `users` ORDER BY user_id ASC LIMIT").
			WillReturnRows(userRow(1, "admin", "x", "admin"))

		var got ProfileResult
		test.Result(t, test.DoRequest(t, r, http.MethodGet, "/api/user/info", nil, middleware.TokenHeader, "anything"), &got)
		assert.Equal(t, "admin", got.Obj.Username)
	})

	t.Run("no users", func(t *testing.T) {
		r, mock, _ := setup(t)
		mock.ExpectQuery("FROM `users` ORDER BY user_id ASC").WillReturnRows(sqlmock.NewRows(userColumns))

		test.ErrorEqual(t, errUserNotFound,
			test.DoRequest(t, r, http.MethodGet, "/api/user/info", nil, middleware.TokenHeader, "anything"))
	})
}

func TestLogout(t *testing.T) {
	r, _, sessions := setup(t)
	require.NoError(t, sessions.Save(t.Context(), "mock_token_2", 1))

	test.NoError(t, test.DoRequest(t, r, http.MethodPost, "/api/user/logout", nil, middleware.TokenHeader, "mock_token_2"))
	_, ok, _ := sessions.Lookup(t.Context(), "mock_token_2")
	assert.False(t, ok)

	test.NoError(t, test.DoRequest(t, r, http.MethodPost, "/api/user/logout", nil))
}

func TestRegister(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, mock, _ := setup(t)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE username = \\?").WithArgs("teacher9").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(20, 1))

		var got model.Profile
		env := test.DoRequest(t, r, http.MethodPost, "/api/user/register", gin.H{
			"username": "teacher9", "password": "123456", "nickname": "新老师", "user_group": "teacher",
		})
		test.Result(t, env, &got)
		assert.EqualValues(t, 20, got.UserID)
		assert.NotContains(t, string(env.Result), "123456")
	})

	t.Run("duplicate", func(t *testing.T) {
		r, mock, _ := setup(t)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		test.ErrorEqual(t, errUsernameExists, test.DoRequest(t, r, http.MethodPost, "/api/user", gin.H{
			"username": "admin", "password": "123456", "nickname": "重复", "user_group": "admin",
		}))
	})

	t.Run("invalid group", func(t *testing.T) {
		r, _, _ := setup(t)
		test.ErrorEqual(t, errInvalidGroup, test.DoRequest(t, r, http.MethodPost, "/api/user", gin.H{
			"username": "x", "password": "123456", "nickname": "x", "user_group": "guest",
		}))
	})
}

func TestList(t *testing.T) {
	r, mock, _ := setup(t)
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE user_group = \\? ORDER BY create_time DESC LIMIT").
		WithArgs("student", 10).
		WillReturnRows(userRow(3, "student1", "hash", "student"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE user_group = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	env := test.DoRequest(t, r, http.MethodGet, "/api/user/list?user_group=student", nil)
	var page test.Page[model.User]
	test.Result(t, env, &page)
	require.Len(t, page.List, 1)
	assert.NotContains(t, string(env.Result), "hash")
}

func TestDelete_Guard(t *testing.T) {
	r, mock, _ := setup(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `students` WHERE user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	env := test.DoRequest(t, r, http.MethodDelete, "/api/user/3", nil)
	test.ErrorCode(t, response.ErrDependency.Code, env)
	assert.Equal(t, "该用户关联了学生信息，无法删除", env.Error.Message)
}
