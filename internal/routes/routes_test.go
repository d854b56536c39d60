package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-reservation/internal/config"
	"github.com/BruksfildServices01/barbershop-reservation/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-reservation/internal/models"
	"github.com/BruksfildServices01/barbershop-reservation/internal/routes"
	"github.com/BruksfildServices01/barbershop-reservation/internal/testutil"
)

type server struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newServer(t *testing.T) *server {
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		Env:       "test",
		Timezone:  "UTC",
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    zap.NewNop(),
		Images: storage.Disabled{},
	})

	return &server{t: t, db: db, router: r}
}

func (s *server) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) login(email, password string) string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/Account/Login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(s.t, session.Token)
	return session.Token
}

func (s *server) register(email string) string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/Account/Register", "", map[string]string{
		"first_name": "Test",
		"last_name":  "User",
		"email":      email,
		"password":   "secret123",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var session struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(s.t, models.RoleUser, session.User.Role)
	return session.Token
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) (string, string) {
	t.Helper()

	var body struct {
		Code  string `json:"error_code"`
		Field string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Code, body.Field
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAccount(t *testing.T) {
	s := newServer(t)

	token := s.register("Jane@Example.com")

	w := s.do(http.MethodGet, "/Account/Me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")

	w = s.do(http.MethodPost, "/Account/Register", "", map[string]string{
		"first_name": "Jane",
		"email":      "jane@example.com",
		"password":   "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/Account/Login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.NotEmpty(t, s.login("JANE@example.com", "secret123"))

	w = s.do(http.MethodGet, "/Account/Me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReservationFlow(t *testing.T) {
	s := newServer(t)

	testutil.CreateUser(t, s.db, "admin@example.com", models.RoleAdmin)
	adminToken := s.login("admin@example.com", "secret123")
	xToken := s.register("x@example.com")
	yToken := s.register("y@example.com")

	service := testutil.CreateService(t, s.db, "Haircut", 30)
	slot := testutil.CreateSlot(t, s.db, service, time.Now().Add(24*time.Hour))

	w := s.do(http.MethodGet, fmt.Sprintf("/Reservation/Create?serviceId=%d", service.ID), xToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"slots"`)

	reserve := map[string]any{"service_id": service.ID, "time_slot_id": slot.ID, "notes": "fade"}

	w = s.do(http.MethodPost, "/Reservation/Create", xToken, reserve)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "pending", res.Status)

	w = s.do(http.MethodPost, "/Reservation/Create", yToken, reserve)
	require.Equal(t, http.StatusConflict, w.Code)
	code, _ := errorCode(t, w)
	assert.Equal(t, "slot_unavailable", code)

	w = s.do(http.MethodPost, fmt.Sprintf("/Reservation/Cancel/%d", res.ID), yToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, fmt.Sprintf("/Reservation/Edit/%d", res.ID), yToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, fmt.Sprintf("/Admin/ApproveReservation/%d", res.ID), xToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, fmt.Sprintf("/Admin/ApproveReservation/%d", res.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/Reservation", xToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"approved"`)

	w = s.do(http.MethodPost, fmt.Sprintf("/Reservation/Cancel/%d", res.ID), xToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, fmt.Sprintf("/Reservation/Cancel/%d", res.ID), xToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/Reservation/Create", yToken, reserve)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/Admin/Dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/Admin/AuditLogs", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reservation_cancelled")

	w = s.do(http.MethodGet, "/Admin/AuditLogs", xToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	testutil.AssertSlotInvariant(t, s.db)
}

func TestAdminCatalog(t *testing.T) {
	s := newServer(t)

	testutil.CreateUser(t, s.db, "admin@example.com", models.RoleAdmin)
	adminToken := s.login("admin@example.com", "secret123")
	userToken := s.register("x@example.com")

	w := s.do(http.MethodPost, "/Admin/CreateService", userToken, map[string]any{
		"name": "Haircut", "price": 30, "duration_minutes": 30,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/Admin/CreateService", adminToken, map[string]any{
		"name": "Haircut", "price": 0, "duration_minutes": 30,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	_, field := errorCode(t, w)
	assert.Equal(t, "price", field)

	w = s.do(http.MethodPost, "/Admin/CreateService", adminToken, map[string]any{
		"name": "Haircut", "price": 30, "duration_minutes": 30,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var service models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &service))

	start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Minute).Format(time.RFC3339)
	slotReq := map[string]any{"service_id": service.ID, "start_time": start}

	w = s.do(http.MethodPost, "/Admin/CreateTimeSlot", adminToken, slotReq)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/Admin/CreateTimeSlot", adminToken, slotReq)
	require.Equal(t, http.StatusConflict, w.Code)
	code, _ := errorCode(t, w)
	assert.Equal(t, "time_slot_exists", code)

	w = s.do(http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Haircut")

	w = s.do(http.MethodPost, fmt.Sprintf("/Admin/DeleteService/%d", service.ID), adminToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	code, _ = errorCode(t, w)
	assert.Equal(t, "service_has_dependents", code)

	w = s.do(http.MethodPost, fmt.Sprintf("/Admin/DeleteService/%d?cascade=true", service.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"deleted_time_slots":1`)

	w = s.do(http.MethodGet, fmt.Sprintf("/Admin/EditService/%d", service.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/Admin/ServiceImage/1", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadServiceImage_StorageDisabled(t *testing.T) {
	s := newServer(t)

	testutil.CreateUser(t, s.db, "admin@example.com", models.RoleAdmin)
	adminToken := s.login("admin@example.com", "secret123")
	service := testutil.CreateService(t, s.db, "Haircut", 30)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/Admin/ServiceImage/%d", service.ID), &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code, w.Body.String())
	code, _ := errorCode(t, w)
	assert.Equal(t, "image_storage_disabled", code)
}
