package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mvirden/Confidant_Go/internal/domain"
)

func TestHandleAddFriend(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockFriendsService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: AddFriendRequest{ID: "bob"},
			setupMock: func(m *MockFriendsService) {
				m.On("AddFriend", mock.Anything, "user-1", "bob").
					Return([]domain.FriendRef{{FriendID: "user-2", FirstName: "Bob"}}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"friendId":"user-2"`,
		},
		{
			name:        "Target Does Not Exist",
			requestBody: AddFriendRequest{ID: "nobody"},
			setupMock: func(m *MockFriendsService) {
				m.On("AddFriend", mock.Anything, "user-1", "nobody").
					Return(nil, domain.ErrUserNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgUserDoesNotExist,
		},
		{
			name:        "Self Friend",
			requestBody: AddFriendRequest{ID: "alice"},
			setupMock: func(m *MockFriendsService) {
				m.On("AddFriend", mock.Anything, "user-1", "alice").
					Return(nil, domain.ErrSelfFriend)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgSelfFriendHTTP,
		},
		{
			name:           "Missing Target",
			requestBody:    AddFriendRequest{},
			setupMock:      func(m *MockFriendsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockFriendsService)
			tt.setupMock(mockService)

			var buf bytes.Buffer
			_ = json.NewEncoder(&buf).Encode(tt.requestBody)

			r := withClaims(httptest.NewRequest(http.MethodPost, "/api/users/friends", &buf), "user-1")
			rec := httptest.NewRecorder()
			HandleAddFriend(mockService)(rec, r)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandleAddFriend_NoClaims(t *testing.T) {
	InitValidator()
	mockService := new(MockFriendsService)

	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(AddFriendRequest{ID: "bob"})

	r := httptest.NewRequest(http.MethodPost, "/api/users/friends", &buf)
	rec := httptest.NewRecorder()
	HandleAddFriend(mockService)(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockService.AssertNotCalled(t, "AddFriend")
}

func TestHandleListFriends(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		setupMock      func(*MockFriendsService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			userID: "user-1",
			setupMock: func(m *MockFriendsService) {
				m.On("ListFriends", mock.Anything, "user-1").
					Return([]domain.FriendRef{{FriendID: "user-2", FirstName: "Bob"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"firstName":"Bob"`,
		},
		{
			name:   "Empty List",
			userID: "user-1",
			setupMock: func(m *MockFriendsService) {
				m.On("ListFriends", mock.Anything, "user-1").Return([]domain.FriendRef{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:   "Unknown User",
			userID: "missing",
			setupMock: func(m *MockFriendsService) {
				m.On("ListFriends", mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgUserDoesNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockFriendsService)
			tt.setupMock(mockService)

			router := chi.NewRouter()
			router.Get("/api/users/friends/{id}", HandleListFriends(mockService))

			r := httptest.NewRequest(http.MethodGet, "/api/users/friends/"+tt.userID, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, r)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandleRemoveFriend(t *testing.T) {
	mockService := new(MockFriendsService)
	mockService.On("RemoveFriend", mock.Anything, "user-1", "user-2").
		Return([]domain.FriendRef{}, nil)

	router := chi.NewRouter()
	router.Delete("/api/users/friends/{id}", HandleRemoveFriend(mockService))

	r := withClaims(httptest.NewRequest(http.MethodDelete, "/api/users/friends/user-2", nil), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
	mockService.AssertExpectations(t)
}

func TestHandleRemoveAllFriends(t *testing.T) {
	mockService := new(MockFriendsService)
	mockService.On("RemoveAllFriends", mock.Anything, "user-1").Return(nil)

	r := withClaims(httptest.NewRequest(http.MethodDelete, "/api/users/removeFriends", nil), "user-1")
	rec := httptest.NewRecorder()
	HandleRemoveAllFriends(mockService)(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgFriendsCleared)
	mockService.AssertExpectations(t)
}
