package plan

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defense-management-system/internal/global/deps"
	"defense-management-system/internal/global/response"
	"defense-management-system/internal/model"
	"defense-management-system/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var planColumns = []string{
	"plan_id", "plan_name", "plan_desc", "defense_type", "start_time", "end_time", "status", "create_time", "update_time",
}

func setup(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := test.NewMockDB(t)
	m := &ModulePlan{}
	m.Init(&deps.Deps{DB: db})
	r := gin.New()
	m.InitRouter(r.Group("/api"))
	return r, mock
}

func planRow(id int, status model.PlanStatus) *sqlmock.Rows {
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(planColumns).
		AddRow(id, "2024届本科毕业答辩", nil, "本科毕业答辩", start, start.Add(72*time.Hour), status, start, start)
}

func TestList_StatusFilter(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("SELECT \\* FROM `defense_plans` WHERE status = \\? ORDER BY create_time DESC LIMIT").
		WithArgs(3, 10).
		WillReturnRows(planRow(1, model.PlanPublished))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `defense_plans` WHERE status = \\?").WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	var page test.Page[model.DefensePlan]
	test.Result(t, test.DoRequest(t, r, http.MethodGet, "/api/defense/plan/list?status=3", nil), &page)
	require.Len(t, page.List, 1)
	assert.Equal(t, model.PlanPublished, page.List[0].Status)
}

func TestList_InvalidStatusIgnored(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("SELECT \\* FROM `defense_plans` ORDER BY create_time DESC LIMIT").
		WillReturnRows(planRow(1, model.PlanPending).AddRow(2, "研究生答辩", nil, "硕士答辩", nil, nil, 0, nil, nil))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `defense_plans`$").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	var page test.Page[model.DefensePlan]
	test.Result(t, test.DoRequest(t, r, http.MethodGet, "/api/defense/plan/list?status=abc", nil), &page)
	assert.EqualValues(t, 2, page.Total)
	assert.Len(t, page.List, 2)
}

func TestLegacyList(t *testing.T) {
	r, _ := setup(t)

	w := test.Do(t, r, http.MethodGet, "/api/defense/list?page=2&status=1", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/api/defense/plan/list?page=2&status=1", w.Header().Get("Location"))

	w = test.Do(t, r, http.MethodGet, "/api/defense/list", nil)
	assert.Equal(t, "/api/defense/plan/list", w.Header().Get("Location"))
}

func TestDetail_NotFound(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("FROM `defense_plans` WHERE plan_id = \\?").WillReturnRows(sqlmock.NewRows(planColumns))

	test.ErrorEqual(t, errNotFound, test.DoRequest(t, r, http.MethodGet, "/api/defense/plan/100", nil))
}

func TestCreate_NormalizesDates(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("INSERT INTO `defense_plans` \\(`plan_name`,`plan_desc`,`defense_type`,`start_time`,`end_time`,`status`\\)").
		WithArgs("2024届本科毕业答辩", nil, "本科毕业答辩", "2024-05-09 16:00:00", "2024-05-13 00:00:00", model.PlanPending).
		WillReturnResult(sqlmock.NewResult(3, 1))

	var got planWrite
	env := test.DoRequest(t, r, http.MethodPost, "/api/defense/plan", gin.H{
		"plan_name":    "2024届本科毕业答辩",
		"defense_type": "本科毕业答辩",
		"start_time":   "2024-05-10T00:00:00+08:00",
		"end_time":     "2024-05-13",
	})
	test.Result(t, env, &got)
	assert.EqualValues(t, 3, got.PlanID)
	require.NotNil(t, got.StartTime)
	assert.Equal(t, "2024-05-09 16:00:00", *got.StartTime)
	assert.Equal(t, model.PlanPending, got.Status)
}

func TestCreate_MissingField(t *testing.T) {
	r, _ := setup(t)
	env := test.DoRequest(t, r, http.MethodPost, "/api/defense/plan", gin.H{
		"plan_name":    "计划",
		"defense_type": "本科毕业答辩",
		"start_time":   "2024-05-10",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, env)
}

func TestAudit(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		r, mock := setup(t)
		mock.ExpectExec("UPDATE `defense_plans` SET `status`=\\? WHERE plan_id = \\?").
			WithArgs(model.PlanApproved, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("WHERE plan_id = \\?").WillReturnRows(planRow(1, model.PlanApproved))

		var got model.DefensePlan
		test.Result(t, test.DoRequest(t, r, http.MethodPut, "/api/defense/plan/audit/1", gin.H{"status": 2}), &got)
		assert.Equal(t, model.PlanApproved, got.Status)
	})

	for _, body := range []gin.H{{"status": 3}, {"status": "2"}, {}} {
		r, _ := setup(t)
		test.ErrorEqual(t, errAuditStatus, test.DoRequest(t, r, http.MethodPut, "/api/defense/plan/audit/1", body))
	}
}

func TestPublish(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("UPDATE `defense_plans` SET `status`=\\? WHERE plan_id = \\?").
		WithArgs(model.PlanPublished, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("WHERE plan_id = \\?").WillReturnRows(planRow(4, model.PlanPublished))

	var got model.DefensePlan
	test.Result(t, test.DoRequest(t, r, http.MethodPut, "/api/defense/plan/publish/4", nil), &got)
	assert.Equal(t, model.PlanPublished, got.Status)
}

func TestDelete(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `defense_groups` WHERE plan_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	test.ErrorEqual(t, errPlanHasGroup, test.DoRequest(t, r, http.MethodDelete, "/api/defense/plan/1", nil))

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `defense_groups`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM `defense_plans` WHERE plan_id = \\?").WillReturnResult(sqlmock.NewResult(0, 1))
	test.NoError(t, test.DoRequest(t, r, http.MethodDelete, "/api/defense/plan/1", nil))
}
