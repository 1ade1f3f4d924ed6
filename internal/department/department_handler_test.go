package department_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-attendance/internal/department"
	departmenterrors "go-attendance/internal/department/errors"

	departmentMock "go-attendance/internal/department/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type handlerDeps struct {
	service *departmentMock.MockService
	router  *gin.Engine
}

func setupHandlerTest(t *testing.T) *handlerDeps {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	service := departmentMock.NewMockService(ctrl)
	handler := department.NewHandler(service)

	router := gin.New()
	router.POST("/departments", handler.Create)
	router.GET("/departments", handler.GetAll)

	return &handlerDeps{service: service, router: router}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		deps := setupHandlerTest(t)

		deps.service.EXPECT().
			Create(gomock.Any(), department.CreateDepartmentRequest{
				Name:      "Sales",
				Positions: []string{"Rep"},
			}).
			Return(department.DepartmentResponse{
				ID:        "dept-1",
				Name:      "Sales",
				Positions: []string{"Rep"},
			}, nil)

		payload := bytes.NewBufferString(`{"name":"Sales","positions":["Rep"]}`)
		req := httptest.NewRequest(http.MethodPost, "/departments", payload)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["ok"])
		data := body["data"].(map[string]any)
		assert.Equal(t, "Sales", data["name"])
	})

	t.Run("malformed body", func(t *testing.T) {
		deps := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/departments", bytes.NewBufferString(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, false, body["ok"])
		errObj := body["error"].(map[string]any)
		assert.Equal(t, "INVALID_INPUT", errObj["code"])
	})

	t.Run("missing name fails binding", func(t *testing.T) {
		deps := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/departments", bytes.NewBufferString(`{"positions":["Rep"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errObj := decodeEnvelope(t, w)["error"].(map[string]any)
		assert.Equal(t, "INVALID_INPUT", errObj["code"])
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupHandlerTest(t)

		deps.service.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(department.DepartmentResponse{}, departmenterrors.ErrDepartmentExists)

		req := httptest.NewRequest(http.MethodPost, "/departments", bytes.NewBufferString(`{"name":"Sales"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		errObj := decodeEnvelope(t, w)["error"].(map[string]any)
		assert.Equal(t, "CONFLICT", errObj["code"])
		assert.Equal(t, "A department with this name already exists", errObj["message"])
	})

	t.Run("persist failure", func(t *testing.T) {
		deps := setupHandlerTest(t)

		deps.service.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(department.DepartmentResponse{}, departmenterrors.ErrCreateFailed)

		req := httptest.NewRequest(http.MethodPost, "/departments", bytes.NewBufferString(`{"name":"Sales"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		deps := setupHandlerTest(t)

		deps.service.EXPECT().
			GetAll(gomock.Any()).
			Return([]department.DepartmentResponse{
				{ID: "dept-1", Name: "Sales"},
				{ID: "dept-2", Name: "Engineering"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/departments", nil)
		w := httptest.NewRecorder()

		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["ok"])
		assert.Len(t, body["data"], 2)
	})

	t.Run("store failure collapses to generic 500", func(t *testing.T) {
		deps := setupHandlerTest(t)

		deps.service.EXPECT().
			GetAll(gomock.Any()).
			Return(nil, errors.New("db connection error"))

		req := httptest.NewRequest(http.MethodGet, "/departments", nil)
		w := httptest.NewRecorder()

		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		errObj := decodeEnvelope(t, w)["error"].(map[string]any)
		assert.Equal(t, "An unexpected error occurred", errObj["message"])
	})
}
