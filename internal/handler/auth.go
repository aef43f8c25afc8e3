package handler

import (
	"errors"
	"net/http"

	"github.com/mvirden/Confidant_Go/internal/auth"
	"github.com/mvirden/Confidant_Go/internal/domain"
	"github.com/mvirden/Confidant_Go/internal/logger"
)

// RegisterRequest represents the request to create a new account.
// Username and password are checked by hand rather than by tag so the
// endpoint keeps its published error messages.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Admin     bool   `json:"admin"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DOB       string `json:"dob"`
}

// RegisterResponse carries the created user; the password hash is never
// serialized.
type RegisterResponse struct {
	Message string      `json:"message"`
	User    domain.User `json:"user"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token alongside the user
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
}

// ChangePasswordRequest targets the account named in the body; the caller
// only has to hold some valid token, not that account's own.
type ChangePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// HandleRegister handles account creation
func HandleRegister(authService auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		if req.Username == "" {
			respondError(w, http.StatusBadRequest, ErrMsgUsernameMissing)
			return
		}
		if len(req.Password) < auth.MinPasswordLength {
			respondError(w, http.StatusBadRequest, ErrMsgPasswordTooShort)
			return
		}

		user, err := authService.Register(r.Context(), auth.RegisterParams{
			Username:    req.Username,
			Password:    req.Password,
			IsAdmin:     req.Admin,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			DateOfBirth: req.DOB,
		})
		if err != nil {
			respondServiceError(w, r, "Register", err)
			return
		}

		log.Info("Registration completed", "user_id", user.ID, "username", user.Username)
		respondJSON(w, http.StatusCreated, RegisterResponse{
			Message: MsgRegistered,
			User:    user,
		})
	}
}

// HandleLogin handles credential verification and token issuance
func HandleLogin(authService auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		token, user, err := authService.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			// This endpoint has always answered 400 for unknown users.
			if errors.Is(err, domain.ErrUserNotFound) {
				respondError(w, http.StatusBadRequest, ErrMsgUserDoesNotExist)
				return
			}
			respondServiceError(w, r, "Login", err)
			return
		}

		respondJSON(w, http.StatusOK, LoginResponse{
			Message: MsgLoggedIn,
			Token:   token,
			User:    user,
		})
	}
}

// HandleChangePassword handles password rotation for the account named in
// the request body. Requires an authenticated caller.
func HandleChangePassword(authService auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChangePasswordRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Change password"); err != nil {
			return
		}

		if len(req.NewPassword) < auth.MinPasswordLength {
			respondError(w, http.StatusBadRequest, ErrMsgPasswordTooShort)
			return
		}

		err := authService.ChangePassword(r.Context(), req.Username, req.OldPassword, req.NewPassword)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				respondError(w, http.StatusBadRequest, ErrMsgUserDoesNotExist)
				return
			}
			if errors.Is(err, domain.ErrInvalidCredentials) {
				respondError(w, http.StatusBadRequest, ErrMsgChangePasswordFailed)
				return
			}
			respondServiceError(w, r, "Change password", err)
			return
		}

		respondJSON(w, http.StatusOK, MessageResponse{Message: MsgPasswordChanged})
	}
}
