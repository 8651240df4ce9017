package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/auth"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/database"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/export"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiTestEnv struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func setupAPITestEnv(t *testing.T) *apiTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	RegisterRoutes(r, Dependencies{
		DB:            db,
		Tokens:        auth.NewTokenManager("test-secret", time.Hour),
		AI:            services.NewAIService(""),
		InvitationTTL: 7 * 24 * time.Hour,
		AppBaseURL:    "https://app.example.org",
	})

	return &apiTestEnv{t: t, db: db, router: r}
}

// apiClient replays the cookies it receives, like a browser would.
type apiClient struct {
	env     *apiTestEnv
	cookies map[string]*http.Cookie
	bearer  string
}

func (e *apiTestEnv) client() *apiClient {
	return &apiClient{env: e, cookies: map[string]*http.Cookie{}}
}

func (c *apiClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.env.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.env.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	w := httptest.NewRecorder()
	c.env.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func idOf(t *testing.T, w *httptest.ResponseRecorder) uint64 {
	t.Helper()
	id, ok := decode(t, w)["id"].(float64)
	require.True(t, ok, w.Body.String())
	return uint64(id)
}

// signup opens a church and returns a client signed in as its admin.
func (e *apiTestEnv) signup(church, email string) *apiClient {
	e.t.Helper()
	c := e.client()
	w := c.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"church_name": church,
		"full_name":   "Pastor " + church,
		"email":       email,
		"password":    "secret1",
	})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	return c
}

// invite creates an invitation with the admin client and redeems it with a
// fresh client, which ends up signed in with role.
func (e *apiTestEnv) invite(admin *apiClient, email string, role models.Role) *apiClient {
	e.t.Helper()
	w := admin.do(http.MethodPost, "/api/invitations", map[string]string{"email": email, "role": string(role)})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	token := decode(e.t, w)["token"].(string)

	c := e.client()
	w = c.do(http.MethodPost, "/api/public/invitations/"+token+"/redeem", map[string]string{
		"full_name": "Convidado",
		"password":  "secret1",
	})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	return c
}

func TestAuth_SignupMeLogout(t *testing.T) {
	env := setupAPITestEnv(t)
	c := env.client()

	w := c.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"church_name": "Igreja Central",
		"full_name":   "Pastor Admin",
		"email":       "Admin@Central.org",
		"password":    "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "admin", body["role"])
	assert.Equal(t, "admin@central.org", body["profile"].(map[string]interface{})["email"])
	assert.Equal(t, "Igreja Central", body["church"].(map[string]interface{})["name"])

	w = c.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", decode(t, w)["role"])

	w = c.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_SignupValidation(t *testing.T) {
	env := setupAPITestEnv(t)
	env.signup("Igreja Central", "admin@central.org")
	c := env.client()

	w := c.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"church_name": "Outra",
		"full_name":   "Outro",
		"email":       "admin@central.org",
		"password":    "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"church_name": "Outra",
		"full_name":   "Outro",
		"email":       "outro@outra.org",
		"password":    "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, password := range []string{strings.Repeat("a", 73), strings.Repeat("é", 40)} {
		w = c.do(http.MethodPost, "/api/auth/signup", map[string]string{
			"church_name": "Outra",
			"full_name":   "Outro",
			"email":       "outro@outra.org",
			"password":    password,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}

	w = c.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"church_name": "Outra",
		"email":       "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuth_LoginIssuesCookieAndBearerToken(t *testing.T) {
	env := setupAPITestEnv(t)
	env.signup("Igreja Central", "admin@central.org")

	c := env.client()
	w := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@central.org",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ADMIN@central.org",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Bearer", body["token_type"])
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	require.NotEmpty(t, c.cookies, "expected session cookie to be set")

	w = c.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	api := env.client()
	api.bearer = token
	w = api.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", decode(t, w)["role"])

	api.bearer = token + "x"
	w = api.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCells_ReportWithoutLeader(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")

	w := admin.do(http.MethodPost, "/api/cells", map[string]string{"name": "Célula Teste"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	cellID := idOf(t, w)
	assert.Equal(t, constants.LeaderlessCellLabel, decode(t, w)["leader_status"])

	w = admin.do(http.MethodGet, "/api/cells", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, constants.LeaderlessCellLabel, items[0].(map[string]interface{})["leader_status"])

	var memberIDs []uint64
	for i := 0; i < 7; i++ {
		w = admin.do(http.MethodPost, "/api/members", map[string]string{"full_name": fmt.Sprintf("Membro %d", i)})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		memberID := idOf(t, w)
		memberIDs = append(memberIDs, memberID)

		w = admin.do(http.MethodPost, fmt.Sprintf("/api/cells/%d/members", cellID), map[string]uint64{"member_id": memberID})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = admin.do(http.MethodPost, fmt.Sprintf("/api/cells/%d/reports", cellID), map[string]interface{}{
		"report_date":        "2026-10-12",
		"present_member_ids": memberIDs[:5],
		"absent_member_ids":  memberIDs[5:],
		"visitors":           3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	report := decode(t, w)
	assert.EqualValues(t, 8, report["attendance"])
	assert.EqualValues(t, 5, report["members_present"])

	w = admin.do(http.MethodGet, fmt.Sprintf("/api/cells/%d/reports", cellID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["reports"], 1)

	w = admin.do(http.MethodGet, "/api/cell-reports/overview?from=2026-10-01&to=2026-11-01", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	overview := decode(t, w)["cells"].([]interface{})
	require.Len(t, overview, 1)
	assert.EqualValues(t, 8, overview[0].(map[string]interface{})["total_attendance"])

	w = admin.do(http.MethodGet, "/api/cell-reports/overview?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCells_RosterMustBelongToCell(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")

	w := admin.do(http.MethodPost, "/api/cells", map[string]string{"name": "Célula Norte"})
	require.Equal(t, http.StatusCreated, w.Code)
	cellID := idOf(t, w)

	w = admin.do(http.MethodPost, "/api/members", map[string]string{"full_name": "Fora da Célula"})
	require.Equal(t, http.StatusCreated, w.Code)
	outsider := idOf(t, w)

	w = admin.do(http.MethodPost, fmt.Sprintf("/api/cells/%d/reports", cellID), map[string]interface{}{
		"report_date":        "2026-10-12",
		"present_member_ids": []uint64{outsider},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = admin.do(http.MethodPost, "/api/cells/9999/reports", map[string]interface{}{
		"report_date": "2026-10-12",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFinance_AccountBalance(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")

	w := admin.do(http.MethodPost, "/api/financial-accounts", map[string]interface{}{
		"name":            "Caixa",
		"initial_balance": 100.00,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	accountID := idOf(t, w)
	assert.EqualValues(t, 100, decode(t, w)["current_balance"])

	w = admin.do(http.MethodPost, "/api/financial-categories", map[string]string{"name": "Dízimos", "type": "income"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	categoryID := idOf(t, w)

	w = admin.do(http.MethodPost, "/api/financial-transactions", map[string]interface{}{
		"type":             "income",
		"amount":           "50.25",
		"category_id":      categoryID,
		"account_id":       accountID,
		"transaction_date": "2026-10-05",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	txID := idOf(t, w)

	w = admin.do(http.MethodGet, fmt.Sprintf("/api/financial-accounts/%d", accountID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 150.25, decode(t, w)["current_balance"])

	w = admin.do(http.MethodPost, "/api/financial-transactions", map[string]interface{}{
		"type":             "expense",
		"amount":           10,
		"category_id":      categoryID,
		"transaction_date": "2026-10-05",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = admin.do(http.MethodGet, "/api/finance/overview?month=2026-10", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	totals := decode(t, w)["totals"].(map[string]interface{})
	assert.EqualValues(t, 50.25, totals["income"])
	assert.EqualValues(t, 50.25, totals["balance"])

	w = admin.do(http.MethodGet, "/api/finance/overview?month=october", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = admin.do(http.MethodDelete, fmt.Sprintf("/api/financial-transactions/%d", txID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = admin.do(http.MethodGet, fmt.Sprintf("/api/financial-accounts/%d", accountID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 100, decode(t, w)["current_balance"])
}

func TestInvitations_RedeemOnce(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")

	w := admin.do(http.MethodPost, "/api/invitations", map[string]string{"email": "novo@central.org", "role": "membro"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	invitation := decode(t, w)
	token := invitation["token"].(string)
	assert.Equal(t, "valid", invitation["state"])
	assert.True(t, strings.HasSuffix(invitation["link"].(string), token))

	visitor := env.client()
	w = visitor.do(http.MethodGet, "/api/public/invitations/"+token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	public := decode(t, w)
	assert.Equal(t, "Igreja Central", public["church_name"])
	assert.Equal(t, "membro", public["role"])
	assert.NotContains(t, public, "token")

	w = visitor.do(http.MethodPost, "/api/public/invitations/"+token+"/redeem", map[string]string{
		"full_name": "Novo Membro",
		"password":  "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	redeemed := decode(t, w)
	assert.Equal(t, constants.AppLandingPath, redeemed["redirect"])
	assert.Equal(t, "membro", redeemed["role"])

	w = visitor.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.client().do(http.MethodPost, "/api/public/invitations/"+token+"/redeem", map[string]string{
		"full_name": "Outra Pessoa",
		"password":  "secret1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = admin.do(http.MethodGet, "/api/invitations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)["invitations"].([]interface{})
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].(map[string]interface{})["used_at"])
	assert.Equal(t, "used", list[0].(map[string]interface{})["state"])

	w = env.client().do(http.MethodGet, "/api/public/invitations/unknown-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoles_MemberIsLimited(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")
	member := env.invite(admin, "membro@central.org", models.RoleMember)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/members"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodGet, "/api/finance/overview"},
		{http.MethodGet, "/api/export/tables"},
		{http.MethodPost, "/api/invitations"},
		{http.MethodGet, "/api/profiles"},
	} {
		w := member.do(tc.method, tc.path, map[string]string{})
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", tc.method, tc.path)
	}

	w := member.do(http.MethodGet, "/api/events", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = member.do(http.MethodGet, "/api/portal/me", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	treasurer := env.invite(admin, "tesouraria@central.org", models.RoleTreasurer)
	w = treasurer.do(http.MethodGet, "/api/finance/overview", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = treasurer.do(http.MethodPost, "/api/cells", map[string]string{"name": "Célula"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoles_RemindersArePerProfile(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")
	member := env.invite(admin, "membro@central.org", models.RoleMember)

	w := admin.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	adminProfile := uint64(decode(t, w)["profile"].(map[string]interface{})["id"].(float64))

	w = admin.do(http.MethodPost, "/api/reminders", map[string]string{"title": "Reunião de líderes", "due_date": "2026-11-01T19:00:00Z"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	adminReminder := idOf(t, w)

	w = member.do(http.MethodGet, "/api/reminders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])

	path := fmt.Sprintf("/api/reminders/%d", adminReminder)
	w = member.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = member.do(http.MethodPut, path, map[string]bool{"is_done": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = member.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A member cannot file a reminder under someone else's profile.
	w = member.do(http.MethodPost, "/api/reminders", map[string]interface{}{
		"title":      "Orar pela célula",
		"due_date":   "2026-11-02T08:00:00Z",
		"profile_id": adminProfile,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	own := decode(t, w)
	assert.NotEqual(t, float64(adminProfile), own["profile_id"])

	w = member.do(http.MethodPut, fmt.Sprintf("/api/reminders/%d", uint64(own["id"].(float64))), map[string]interface{}{"profile_id": adminProfile})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, own["profile_id"], decode(t, w)["profile_id"])

	w = member.do(http.MethodGet, "/api/reminders?profile_id="+fmt.Sprint(adminProfile), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 1)

	w = admin.do(http.MethodGet, "/api/reminders", nil)
	assert.Len(t, decode(t, w)["items"], 2)
	w = admin.do(http.MethodPut, path, map[string]bool{"is_done": true})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoles_PrivatePrayerRequestsArePastoral(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")
	member := env.invite(admin, "membro@central.org", models.RoleMember)

	w := admin.do(http.MethodPost, "/api/prayer-requests", map[string]interface{}{
		"requester_name": "Ana", "request": "Assunto pessoal", "is_private": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	private := idOf(t, w)

	w = admin.do(http.MethodPost, "/api/prayer-requests", map[string]interface{}{
		"requester_name": "Bruno", "request": "Pela igreja",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = member.do(http.MethodGet, "/api/prayer-requests", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Bruno", items[0].(map[string]interface{})["requester_name"])

	w = member.do(http.MethodGet, "/api/prayer-requests?is_private=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])

	path := fmt.Sprintf("/api/prayer-requests/%d", private)
	w = member.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = member.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = admin.do(http.MethodGet, "/api/prayer-requests", nil)
	assert.Len(t, decode(t, w)["items"], 2)
	w = admin.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTenancy_ChurchesAreIsolated(t *testing.T) {
	env := setupAPITestEnv(t)
	central := env.signup("Igreja Central", "admin@central.org")
	other := env.signup("Igreja Vizinha", "admin@vizinha.org")

	w := central.do(http.MethodPost, "/api/members", map[string]string{"full_name": "Maria"})
	require.Equal(t, http.StatusCreated, w.Code)
	memberID := idOf(t, w)

	w = other.do(http.MethodGet, fmt.Sprintf("/api/members/%d", memberID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = other.do(http.MethodPost, "/api/cells", map[string]interface{}{"name": "Célula", "leader_id": memberID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = other.do(http.MethodGet, "/api/members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])
}

func TestResources_DeletePolicies(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")

	w := admin.do(http.MethodPost, "/api/members", map[string]string{"full_name": "Maria"})
	require.Equal(t, http.StatusCreated, w.Code)
	memberID := idOf(t, w)

	w = admin.do(http.MethodDelete, fmt.Sprintf("/api/members/%d", memberID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "soft", decode(t, w)["policy"])

	w = admin.do(http.MethodGet, "/api/members", nil)
	assert.Empty(t, decode(t, w)["items"])

	w = admin.do(http.MethodGet, "/api/members?include_inactive=true", nil)
	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, false, items[0].(map[string]interface{})["is_active"])

	w = admin.do(http.MethodPost, "/api/prayer-requests", map[string]string{"requester_name": "Ana", "request": "Pela família"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	prayerID := idOf(t, w)

	w = admin.do(http.MethodDelete, fmt.Sprintf("/api/prayer-requests/%d", prayerID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hard", decode(t, w)["policy"])

	w = admin.do(http.MethodGet, fmt.Sprintf("/api/prayer-requests/%d", prayerID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = admin.do(http.MethodDelete, fmt.Sprintf("/api/prayer-requests/%d", prayerID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResources_UpdateAndPagination(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")

	for _, name := range []string{"Ana", "Bruno", "Carla"} {
		w := admin.do(http.MethodPost, "/api/members", map[string]string{"full_name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := admin.do(http.MethodGet, "/api/members?page=2&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Carla", items[0].(map[string]interface{})["full_name"])
	assert.EqualValues(t, 3, body["pagination"].(map[string]interface{})["total"])

	first := uint64(items[0].(map[string]interface{})["id"].(float64))
	w = admin.do(http.MethodPut, fmt.Sprintf("/api/members/%d", first), map[string]string{"spiritual_status": "membro"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)
	assert.Equal(t, "membro", updated["spiritual_status"])
	assert.Equal(t, "Carla", updated["full_name"])

	w = admin.do(http.MethodGet, "/api/members?spiritual_status=membro", nil)
	assert.Len(t, decode(t, w)["items"], 1)

	w = admin.do(http.MethodPut, fmt.Sprintf("/api/members/%d", first), map[string]string{"spiritual_status": "anjo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMembers_LimitReached(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")
	require.NoError(t, env.db.Model(&models.Church{}).Where("1 = 1").Update("member_limit", 1).Error)

	w := admin.do(http.MethodPost, "/api/members", map[string]string{"full_name": "Primeiro"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = admin.do(http.MethodPost, "/api/members", map[string]string{"full_name": "Segundo"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAnnouncements_DraftWithoutAI(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")

	w := admin.do(http.MethodPost, "/api/announcements/draft", map[string]string{"topic": "Culto de jovens"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestExport_TableAsCSV(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")

	w := admin.do(http.MethodPost, "/api/members", map[string]string{"full_name": "João, o \"Batista\""})
	require.Equal(t, http.StatusCreated, w.Code)

	w = admin.do(http.MethodGet, "/api/export/members", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	out := w.Body.String()
	assert.True(t, strings.HasPrefix(out, export.BOM))
	assert.Contains(t, out, "full_name")
	assert.Contains(t, out, `"João, o ""Batista"""`)

	w = admin.do(http.MethodGet, "/api/export/profiles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password_hash")

	w = admin.do(http.MethodGet, "/api/export/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = admin.do(http.MethodGet, "/api/export/tables", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["tables"], "members")

	w = admin.do(http.MethodGet, "/api/export/schema", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CREATE TABLE")
}

func TestDashboard_Counts(t *testing.T) {
	env := setupAPITestEnv(t)
	admin := env.signup("Igreja Central", "admin@central.org")

	for _, name := range []string{"Ana", "Bruno"} {
		w := admin.do(http.MethodPost, "/api/members", map[string]string{"full_name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := admin.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	members := decode(t, w)["members"].(map[string]interface{})
	assert.EqualValues(t, 2, members["total"])
	assert.EqualValues(t, 2, members["active"])
}
