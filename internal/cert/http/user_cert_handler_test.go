package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/studybuddy/certtracker/internal/auth/domain"
	authHTTP "github.com/studybuddy/certtracker/internal/auth/http"
	"github.com/studybuddy/certtracker/internal/cert/domain"
	"github.com/studybuddy/certtracker/internal/cert/http/dto"
	"github.com/studybuddy/certtracker/internal/cert/usecase"
)

// MockUserCertUseCase is a mock implementation of usecase.UserCertUseCase
type MockUserCertUseCase struct {
	mock.Mock
}

func (m *MockUserCertUseCase) Create(ctx context.Context, userID int64, input usecase.CreateUserCertInput) (*domain.UserCert, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCert), args.Error(1)
}

func (m *MockUserCertUseCase) List(ctx context.Context, userID int64, userCertID *int64) ([]*domain.UserCertDetail, error) {
	args := m.Called(ctx, userID, userCertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserCertDetail), args.Error(1)
}

func (m *MockUserCertUseCase) Update(ctx context.Context, userID, userCertID int64, update domain.UserCertUpdate) error {
	args := m.Called(ctx, userID, userCertID, update)
	return args.Error(0)
}

func (m *MockUserCertUseCase) Delete(ctx context.Context, userID int64, userCertID *int64) (*usecase.DeleteUserCertsOutput, error) {
	args := m.Called(ctx, userID, userCertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DeleteUserCertsOutput), args.Error(1)
}

func setupUserCertHandler(t *testing.T) (*UserCertHandler, *MockUserCertUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := new(MockUserCertUseCase)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserCertHandler(mockUseCase, logger), mockUseCase
}

func newJSONContext(t *testing.T, method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func authenticate(c *gin.Context, userID int64) {
	ctx := authHTTP.WithIdentity(c.Request.Context(), &authDomain.Identity{
		UserID:   userID,
		Username: "ada.lovelace",
	})
	c.Request = c.Request.WithContext(ctx)
}

func TestUserCertHandler_CreateHandler(t *testing.T) {
	t.Run("owner comes from the identity", func(t *testing.T) {
		handler, mockUseCase := setupUserCertHandler(t)

		earned := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		request := dto.CreateUserCertRequest{
			Token:           "consumed-by-guard",
			CertificationID: 3,
			Status:          "active",
			EarnedOn:        "2026-01-15",
		}
		created := &domain.UserCert{
			ID:              11,
			UserID:          7,
			CertificationID: 3,
			Status:          "active",
			EarnedOn:        &earned,
		}

		mockUseCase.On("Create", mock.Anything, int64(7), dto.ToCreateUserCertInput(request)).
			Return(created, nil)

		c, w := newJSONContext(t, http.MethodPost, "/v1/user-certs", request)
		authenticate(c, 7)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.UserCertResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(11), response.UserCertID)
		assert.Equal(t, "2026-01-15", response.EarnedOn)
	})

	t.Run("missing identity returns 401", func(t *testing.T) {
		handler, mockUseCase := setupUserCertHandler(t)

		c, w := newJSONContext(t, http.MethodPost, "/v1/user-certs", dto.CreateUserCertRequest{
			CertificationID: 3,
			Status:          "active",
		})
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad date returns 400", func(t *testing.T) {
		handler, mockUseCase := setupUserCertHandler(t)

		c, w := newJSONContext(t, http.MethodPost, "/v1/user-certs", dto.CreateUserCertRequest{
			CertificationID: 3,
			Status:          "active",
			EarnedOn:        "15/01/2026",
		})
		authenticate(c, 7)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserCertHandler_ListHandler(t *testing.T) {
	handler, mockUseCase := setupUserCertHandler(t)

	details := []*domain.UserCertDetail{
		{
			UserCert: domain.UserCert{ID: 11, UserID: 7, CertificationID: 3, Status: "active"},
			CertName: "CISSP",
			Provider: "ISC2",
		},
	}
	mockUseCase.On("List", mock.Anything, int64(7), (*int64)(nil)).Return(details, nil)

	c, w := newJSONContext(t, http.MethodPost, "/v1/user-certs/list", dto.ListUserCertsRequest{Token: "t"})
	authenticate(c, 7)
	handler.ListHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ListUserCertsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.UserCerts, 1)
	assert.Equal(t, "CISSP", response.UserCerts[0].CertName)
}

func TestUserCertHandler_ListHandlerWithFilter(t *testing.T) {
	handler, mockUseCase := setupUserCertHandler(t)

	filter := int64(11)
	details := []*domain.UserCertDetail{
		{
			UserCert: domain.UserCert{ID: 11, UserID: 7, CertificationID: 3, Status: "active"},
			CertName: "CISSP",
			Provider: "ISC2",
		},
	}
	mockUseCase.On("List", mock.Anything, int64(7), &filter).Return(details, nil)

	c, w := newJSONContext(t, http.MethodPost, "/v1/user-certs/list", dto.ListUserCertsRequest{Token: "t", UserCertID: &filter})
	authenticate(c, 7)
	handler.ListHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ListUserCertsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.UserCerts, 1)
	assert.Equal(t, int64(11), response.UserCerts[0].UserCertID)
}

func TestUserCertHandler_UpdateHandler(t *testing.T) {
	t.Run("foreign row returns 404", func(t *testing.T) {
		handler, mockUseCase := setupUserCertHandler(t)

		status := "expired"
		request := dto.UpdateUserCertRequest{Token: "t", UserCertID: 11, Status: &status}

		mockUseCase.On("Update", mock.Anything, int64(999), int64(11), dto.ToUserCertUpdate(request)).
			Return(domain.ErrUserCertNotFound)

		c, w := newJSONContext(t, http.MethodPut, "/v1/user-certs", request)
		authenticate(c, 999)
		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not owned")
	})

	t.Run("success acknowledges", func(t *testing.T) {
		handler, mockUseCase := setupUserCertHandler(t)

		status := "expired"
		request := dto.UpdateUserCertRequest{Token: "t", UserCertID: 11, Status: &status}

		mockUseCase.On("Update", mock.Anything, int64(7), int64(11), dto.ToUserCertUpdate(request)).
			Return(nil)

		c, w := newJSONContext(t, http.MethodPut, "/v1/user-certs", request)
		authenticate(c, 7)
		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Record updated successfully")
	})

	t.Run("missing user_cert_id returns 400", func(t *testing.T) {
		handler, mockUseCase := setupUserCertHandler(t)

		c, w := newJSONContext(t, http.MethodPut, "/v1/user-certs", dto.UpdateUserCertRequest{Token: "t"})
		authenticate(c, 7)
		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserCertHandler_DeleteHandler(t *testing.T) {
	t.Run("single delete reports rows", func(t *testing.T) {
		handler, mockUseCase := setupUserCertHandler(t)

		id := int64(11)
		mockUseCase.On("Delete", mock.Anything, int64(7), &id).
			Return(&usecase.DeleteUserCertsOutput{RowsDeleted: 1}, nil)

		c, w := newJSONContext(t, http.MethodDelete, "/v1/user-certs", dto.DeleteUserCertsRequest{
			Token:      "t",
			UserCertID: &id,
		})
		authenticate(c, 7)
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.DeleteUserCertsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(1), response.RowsDeleted)
	})

	t.Run("zero matches returns 404", func(t *testing.T) {
		handler, mockUseCase := setupUserCertHandler(t)

		mockUseCase.On("Delete", mock.Anything, int64(7), (*int64)(nil)).
			Return(nil, domain.ErrNoRecordsToDelete)

		c, w := newJSONContext(t, http.MethodDelete, "/v1/user-certs", dto.DeleteUserCertsRequest{Token: "t"})
		authenticate(c, 7)
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "No records found to delete")
	})
}
