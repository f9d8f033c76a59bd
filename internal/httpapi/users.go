package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"tracknest/internal/store"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string     `json:"token"`
	User    store.User `json:"user"`
	Message string     `json:"message"`
}

type bioRequest struct {
	Bio string `json:"bio"`
}

type passwordChangeRequest struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "username, email and password are required"})
		return
	}

	if err := s.users.Register(r.Context(), req.Username, req.Email, req.Password, req.Bio); err != nil {
		switch {
		case errors.Is(err, store.ErrUserExists):
			writeJSON(w, http.StatusConflict, errorResponse{Message: "username or email already taken"})
		default:
			s.serverError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "account created"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Same message for an unknown email and a wrong password.
		if errors.Is(err, store.ErrInvalidCredentials) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid email or password"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	token, err := s.tokens.Issue(user.Username, user.Email)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:   token,
		User:    user,
		Message: "login successful",
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	user, err := s.users.Profile(r.Context(), identity.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "user not found"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handlePublicProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Profile(r.Context(), r.PathValue("username"))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "user not found"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	// Public view: no email.
	writeJSON(w, http.StatusOK, store.User{Username: user.Username, Bio: user.Bio})
}

func (s *Server) handleUpdateBio(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	var req bioRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.users.UpdateBio(r.Context(), identity.Username, req.Bio); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "user not found"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "bio updated"})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	var req passwordChangeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.NewPassword == "" || req.NewPassword != req.ConfirmNewPassword {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "new passwords do not match"})
		return
	}

	if err := s.users.ChangePassword(r.Context(), identity.Username, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidCredentials):
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "current password is incorrect"})
		case errors.Is(err, store.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "user not found"})
		default:
			s.serverError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "password updated"})
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	if err := s.users.DeleteAccount(r.Context(), identity.Username); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "user not found"})
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "account deleted"})
}
