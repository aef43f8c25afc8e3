package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mvirden/Confidant_Go/internal/auth"
	"github.com/mvirden/Confidant_Go/internal/domain"
	"github.com/mvirden/Confidant_Go/internal/middleware"
)

// withClaims injects verified claims the way the auth middleware does
func withClaims(r *http.Request, userID string) *http.Request {
	ctx := middleware.WithClaims(r.Context(), &auth.Claims{UserID: userID})
	return r.WithContext(ctx)
}

func TestHandleListUsers(t *testing.T) {
	mockService := new(MockUserService)
	mockService.On("ListUsers", mock.Anything).Return([]domain.User{
		{ID: "user-1", Username: "alice"},
		{ID: "user-2", Username: "bob"},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	HandleListUsers(mockService)(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)
	mockService.AssertExpectations(t)
}

func TestHandleGetUser(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			userID: "user-1",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, "user-1").
					Return(domain.PublicProfile{ID: "user-1", FirstName: "Alice", LastName: "Smith"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"firstName":"Alice"`,
		},
		{
			name:   "Not Found",
			userID: "missing",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, "missing").
					Return(domain.PublicProfile{}, domain.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgUserNotFoundHTTP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockUserService)
			tt.setupMock(mockService)

			router := chi.NewRouter()
			router.Get("/api/users/{id}", HandleGetUser(mockService))

			r := httptest.NewRequest(http.MethodGet, "/api/users/"+tt.userID, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, r)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandleDeleteUser(t *testing.T) {
	tests := []struct {
		name           string
		requesterID    string
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requesterID: "admin-1",
			setupMock: func(m *MockUserService) {
				m.On("DeleteUser", mock.Anything, "admin-1", "user-2").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgUserDeleted,
		},
		{
			name:        "Permission Denied",
			requesterID: "user-1",
			setupMock: func(m *MockUserService) {
				m.On("DeleteUser", mock.Anything, "user-1", "user-2").Return(domain.ErrPermissionDenied)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   ErrMsgPermissionDeniedHTTP,
		},
		{
			name:        "Target Not Found",
			requesterID: "admin-1",
			setupMock: func(m *MockUserService) {
				m.On("DeleteUser", mock.Anything, "admin-1", "user-2").Return(domain.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgUserNotFoundHTTP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockUserService)
			tt.setupMock(mockService)

			router := chi.NewRouter()
			router.Delete("/api/users/{id}", HandleDeleteUser(mockService))

			r := withClaims(httptest.NewRequest(http.MethodDelete, "/api/users/user-2", nil), tt.requesterID)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, r)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandleDeleteUser_NoClaims(t *testing.T) {
	mockService := new(MockUserService)

	router := chi.NewRouter()
	router.Delete("/api/users/{id}", HandleDeleteUser(mockService))

	r := httptest.NewRequest(http.MethodDelete, "/api/users/user-2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockService.AssertNotCalled(t, "DeleteUser")
}
