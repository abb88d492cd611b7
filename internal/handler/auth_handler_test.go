package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"citamed/internal/errors"
	"citamed/internal/model"
	"citamed/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.UserProfile, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*service.UserProfile), args.String(1), args.Error(2)
}

func (m *MockAuthService) Profile(ctx context.Context, usuarioID uint) (*service.UserProfile, error) {
	args := m.Called(ctx, usuarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserProfile), args.Error(1)
}

type structValidator struct {
	validator *validator.Validate
}

func (sv *structValidator) Validate(i interface{}) error {
	return sv.validator.Struct(i)
}

func loginContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &structValidator{validator: validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("non-email identifier reaches the lookup and gets 401", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "admin", "whatever").
			Return(nil, "", errors.ErrInvalidCredentials)

		c, _ := loginContext(`{"email":"admin","password":"whatever"}`)
		err := NewAuthHandler(mockSvc).Login(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.Equal(t, errors.ErrorResponse{
			Success: false,
			Message: errors.ErrInvalidCredentials.Error(),
		}, httpErr.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("wrong password gets 401", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "paciente@email.com", "not-the-password").
			Return(nil, "", errors.ErrInvalidCredentials)

		c, _ := loginContext(`{"email":"paciente@email.com","password":"not-the-password"}`)
		err := NewAuthHandler(mockSvc).Login(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("valid credentials get 200 with the enriched user", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "doctor@hospital.com", "password123").
			Return(&service.UserProfile{
				UsuarioID:    2,
				Email:        "doctor@hospital.com",
				Tipo:         model.RoleDoctor,
				Nombre:       "Juan",
				Apellido:     "Pérez",
				Especialidad: "Medicina General",
			}, "signed-token", nil)

		c, rec := loginContext(`{"email":"doctor@hospital.com","password":"password123"}`)
		err := NewAuthHandler(mockSvc).Login(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), `"message":"Login exitoso"`)
		assert.Contains(t, rec.Body.String(), `"especialidad":"Medicina General"`)
		assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing fields take the server-error path", func(t *testing.T) {
		mockSvc := new(MockAuthService)

		c, _ := loginContext(`{"email":"paciente@email.com"}`)
		err := NewAuthHandler(mockSvc).Login(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
		mockSvc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}
