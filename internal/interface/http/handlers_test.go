package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/event-planner-api/internal/application"
	"github.com/oksasatya/event-planner-api/internal/infrastructure/memory"
	"github.com/oksasatya/event-planner-api/internal/router"
	"github.com/oksasatya/event-planner-api/pkg/helpers"
	"github.com/oksasatya/event-planner-api/pkg/validation"
)

type testAPI struct {
	engine *gin.Engine
	users  *application.UserService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	eventRepo := memory.NewEventRepository()

	userSvc := application.NewUserService(memory.NewUserRepository(), jwt, nil)
	eventSvc := application.NewEventService(eventRepo, nil)
	rsvpSvc := application.NewRSVPService(memory.NewRSVPRepository(), eventRepo, nil)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	// nil redis client disables rate limiting
	router.InitModules(reg, router.Deps{Users: userSvc, Events: eventSvc, RSVPs: rsvpSvc})
	reg.RegisterAll()

	return &testAPI{engine: engine, users: userSvc}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func (a *testAPI) register(t *testing.T, email, name, password string) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email": email, "name": name, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (a *testAPI) login(t *testing.T, email, password string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/v1/auth/token", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "bearer", data["token_type"])
	tok, _ := data["access_token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestRegisterLoginMe(t *testing.T) {
	api := newTestAPI(t)

	api.register(t, "alice@example.com", "Alice", "secret123")
	tok := api.login(t, "alice@example.com", "secret123")

	w := api.do(t, http.MethodGet, "/api/v1/auth/me", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "alice@example.com", data["email"])
	// the stored hash never leaves the API
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLogin_BadCredentials(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "alice@example.com", "Alice", "secret123")

	wrongPwd := api.do(t, http.MethodPost, "/api/v1/auth/token", "", gin.H{
		"email": "alice@example.com", "password": "wrong",
	})
	unknown := api.do(t, http.MethodPost, "/api/v1/auth/token", "", gin.H{
		"email": "nobody@example.com", "password": "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPwd.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)

	// indistinguishable bodies apart from timestamps/request ids
	var a, b map[string]any
	require.NoError(t, json.Unmarshal(wrongPwd.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(unknown.Body.Bytes(), &b))
	assert.Equal(t, a["message"], b["message"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "alice@example.com", "Alice", "secret123")

	w := api.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email": "alice@example.com", "name": "Other", "password": "secret456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBearerAuth_Failures(t *testing.T) {
	api := newTestAPI(t)

	// missing header
	w := api.do(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// malformed scheme
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	api.engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// garbage token
	w = api.do(t, http.MethodGet, "/api/v1/auth/me", "not.a.jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// expired token
	api.register(t, "old@example.com", "Old", "secret123")
	u, err := api.users.Authenticate(context.Background(), "old@example.com", "secret123")
	require.NoError(t, err)
	expired, _, err := api.users.IssueToken(u, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	w = api.do(t, http.MethodGet, "/api/v1/auth/me", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCrossUserEventAccess(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "alice@example.com", "Alice", "secret123")
	api.register(t, "bob@example.com", "Bob", "secret123")
	aliceTok := api.login(t, "alice@example.com", "secret123")
	bobTok := api.login(t, "bob@example.com", "secret123")

	w := api.do(t, http.MethodPost, "/api/v1/events", aliceTok, gin.H{
		"title":      "Private dinner",
		"start_time": "2025-07-01T18:00:00Z",
		"end_time":   "2025-07-01T21:00:00Z",
		"is_public":  false,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	eventID, _ := decodeData(t, w)["id"].(string)
	require.NotEmpty(t, eventID)

	// owner fetch succeeds
	w = api.do(t, http.MethodGet, "/api/v1/events/"+eventID, aliceTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// hidden from bob: forbidden, not a 404
	w = api.do(t, http.MethodGet, "/api/v1/events/"+eventID, bobTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// truly absent id
	w = api.do(t, http.MethodGet, "/api/v1/events/e-missing", bobTok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// bob cannot mutate or delete
	w = api.do(t, http.MethodPut, "/api/v1/events/"+eventID, bobTok, gin.H{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = api.do(t, http.MethodDelete, "/api/v1/events/"+eventID, bobTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// owner delete returns 204
	w = api.do(t, http.MethodDelete, "/api/v1/events/"+eventID, aliceTok, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDoubleRSVPFlow(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "alice@example.com", "Alice", "secret123")
	api.register(t, "bob@example.com", "Bob", "secret123")
	aliceTok := api.login(t, "alice@example.com", "secret123")
	bobTok := api.login(t, "bob@example.com", "secret123")

	w := api.do(t, http.MethodPost, "/api/v1/events", aliceTok, gin.H{
		"title":      "Picnic",
		"start_time": "2025-08-01T12:00:00Z",
		"end_time":   "2025-08-01T15:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	eventID, _ := decodeData(t, w)["id"].(string)

	w = api.do(t, http.MethodPost, "/api/v1/rsvps", aliceTok, gin.H{
		"event_id": eventID, "status": "going",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rsvpID, _ := decodeData(t, w)["id"].(string)

	// second RSVP for the same event is rejected
	w = api.do(t, http.MethodPost, "/api/v1/rsvps", aliceTok, gin.H{
		"event_id": eventID, "status": "going",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// holder updates own RSVP
	w = api.do(t, http.MethodPut, "/api/v1/rsvps/"+rsvpID, aliceTok, gin.H{"status": "maybe"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maybe", decodeData(t, w)["status"])

	// another user cannot
	w = api.do(t, http.MethodPut, "/api/v1/rsvps/"+rsvpID, bobTok, gin.H{"status": "not_going"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// invalid status is caught by binding
	w = api.do(t, http.MethodPut, "/api/v1/rsvps/"+rsvpID, aliceTok, gin.H{"status": "perhaps"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// event RSVP listing with filter
	w = api.do(t, http.MethodGet, "/api/v1/rsvps/event/"+eventID+"?status=maybe", bobTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// own RSVPs
	w = api.do(t, http.MethodGet, "/api/v1/rsvps/user/me", aliceTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserRoutes_OwnProfileOnly(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "alice@example.com", "Alice", "secret123")
	api.register(t, "bob@example.com", "Bob", "secret123")
	aliceTok := api.login(t, "alice@example.com", "secret123")

	w := api.do(t, http.MethodGet, "/api/v1/users/me", aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	aliceID, _ := decodeData(t, w)["id"].(string)

	// own id works
	w = api.do(t, http.MethodGet, "/api/v1/users/"+aliceID, aliceTok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// any other id is forbidden
	w = api.do(t, http.MethodGet, "/api/v1/users/someone-else", aliceTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// profile update, then login with the new password
	w = api.do(t, http.MethodPut, "/api/v1/users/me", aliceTok, gin.H{
		"name": "Alice Cooper", "password": "newsecret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice Cooper", decodeData(t, w)["name"])
	api.login(t, "alice@example.com", "newsecret123")
}
