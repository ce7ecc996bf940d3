package test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pressengine/internal/models"
	"pressengine/internal/repository"
)

func TestRegisterHandler_Success(t *testing.T) {
	// Arrange
	handler := createTestHandler()
	mockUserService := handler.UserService.(*MockUserService)

	requestBody := map[string]interface{}{
		"name":     "Читатель",
		"email":    "reader@example.com",
		"password": "password123",
	}

	mockUserService.On("Register", mock.Anything, repository.CreateUserRequest{
		Name:     "Читатель",
		Email:    "reader@example.com",
		Password: "password123",
	}).Return(&models.User{
		ID:     "user-123",
		Name:   "Читатель",
		Email:  "reader@example.com",
		Role:   models.RoleReader,
		Status: models.UserStatusActive,
	}, nil)

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	// Act
	handler.Register(rr, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)

	assert.Equal(t, "user-123", response["id"])
	assert.Equal(t, models.RoleReader, response["role"])
	// хеш пароля не должен попадать в ответ
	_, hasHash := response["passwordHash"]
	assert.False(t, hasHash)

	mockUserService.AssertExpectations(t)
}

func TestRegisterHandler_InvalidEmail(t *testing.T) {
	handler := createTestHandler()

	requestBody := map[string]interface{}{
		"name":     "Читатель",
		"email":    "not-an-email",
		"password": "password123",
	}

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Register(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Неверный формат email")
}

func TestRegisterHandler_ShortPassword(t *testing.T) {
	handler := createTestHandler()

	requestBody := map[string]interface{}{
		"name":     "Читатель",
		"email":    "reader@example.com",
		"password": "123",
	}

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Register(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Пароль")
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	handler := createTestHandler()
	mockUserService := handler.UserService.(*MockUserService)

	mockUserService.On("Register", mock.Anything, mock.Anything).
		Return(nil, errors.New("пользователь с email reader@example.com уже существует"))

	requestBody := map[string]interface{}{
		"name":     "Читатель",
		"email":    "reader@example.com",
		"password": "password123",
	}

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Register(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Email уже зарегистрирован")
}

func TestLoginHandler_Success(t *testing.T) {
	handler := createTestHandler()
	mockUserService := handler.UserService.(*MockUserService)

	mockUserService.On("Login", mock.Anything, "reader@example.com", "password123").
		Return(&models.User{
			ID:     "user-123",
			Email:  "reader@example.com",
			Role:   models.RoleReader,
			Status: models.UserStatusActive,
		}, "dXNlci0xMjM6MTcwMDAwMDAwMDAwMA==", nil)

	requestBody := map[string]interface{}{
		"email":    "reader@example.com",
		"password": "password123",
	}

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)

	assert.Equal(t, "dXNlci0xMjM6MTcwMDAwMDAwMDAwMA==", response["token"])

	userData, ok := response["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "user-123", userData["id"])
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	handler := createTestHandler()
	mockUserService := handler.UserService.(*MockUserService)

	mockUserService.On("Login", mock.Anything, "reader@example.com", "wrong").
		Return(nil, "", errors.New("неверный email или пароль"))

	requestBody := map[string]interface{}{
		"email":    "reader@example.com",
		"password": "wrong",
	}

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assertJSONError(t, rr, http.StatusUnauthorized, "неверный email или пароль")
}

func TestLoginHandler_BannedAccount(t *testing.T) {
	handler := createTestHandler()
	mockUserService := handler.UserService.(*MockUserService)

	mockUserService.On("Login", mock.Anything, "banned@example.com", "password123").
		Return(nil, "", errors.New("аккаунт заблокирован, обратитесь в поддержку"))

	requestBody := map[string]interface{}{
		"email":    "banned@example.com",
		"password": "password123",
	}

	body, _ := json.Marshal(requestBody)
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	// заблокированный аккаунт - это тоже 401, не 403
	assertJSONError(t, rr, http.StatusUnauthorized, "заблокирован")
}

func TestGetUserHandler_NotFound(t *testing.T) {
	handler := createTestHandler()
	mockUserRepo := handler.UserRepo.(*MockUserRepository)

	mockUserRepo.On("GetUserByID", mock.Anything, "missing-id").
		Return(nil, errors.New("пользователь с ID missing-id не найден"))

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing-id", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "missing-id"})
	rr := httptest.NewRecorder()

	handler.GetUser(rr, req)

	assertJSONError(t, rr, http.StatusNotFound, "Пользователь не найден")
}

func TestUpdateUserRoleHandler_Success(t *testing.T) {
	handler := createTestHandler()
	mockUserService := handler.UserService.(*MockUserService)

	mockUserService.On("UpdateRole", mock.Anything, "user-123", models.RoleWriter).
		Return(&models.User{ID: "user-123", Role: models.RoleWriter}, nil)

	body, _ := json.Marshal(map[string]string{"role": "WRITER"})
	req := httptest.NewRequest(http.MethodPut, "/api/users/user-123/role", bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"userId": "user-123"})
	rr := httptest.NewRecorder()

	handler.UpdateUserRole(rr, req)

	assertJSONSuccess(t, rr, http.StatusOK)
	mockUserService.AssertExpectations(t)
}

func TestUpdateUserRoleHandler_UnknownRole(t *testing.T) {
	handler := createTestHandler()

	body, _ := json.Marshal(map[string]string{"role": "SUPERADMIN"})
	req := httptest.NewRequest(http.MethodPut, "/api/users/user-123/role", bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"userId": "user-123"})
	rr := httptest.NewRecorder()

	handler.UpdateUserRole(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Роль")
}

func TestApplyUserActionHandler_Ban(t *testing.T) {
	handler := createTestHandler()
	mockUserService := handler.UserService.(*MockUserService)

	mockUserService.On("ApplyAction", mock.Anything, "user-123", "BAN").
		Return(&models.User{ID: "user-123", Status: models.UserStatusBanned}, nil)

	body, _ := json.Marshal(map[string]string{"accion": "BAN"})
	req := httptest.NewRequest(http.MethodPut, "/api/users/user-123", bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"userId": "user-123"})
	rr := httptest.NewRecorder()

	handler.ApplyUserAction(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, models.UserStatusBanned, response["status"])
}

func TestApplyUserActionHandler_UnknownAction(t *testing.T) {
	handler := createTestHandler()
	mockUserService := handler.UserService.(*MockUserService)

	mockUserService.On("ApplyAction", mock.Anything, "user-123", "PROMOTE").
		Return(nil, errors.New("неподдерживаемое действие: PROMOTE"))

	body, _ := json.Marshal(map[string]string{"accion": "PROMOTE"})
	req := httptest.NewRequest(http.MethodPut, "/api/users/user-123", bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"userId": "user-123"})
	rr := httptest.NewRecorder()

	handler.ApplyUserAction(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "неподдерживаемое действие")
}
