package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/todolist/internal/todo/service"
	"github.com/aussiebroadwan/todolist/pkg/httpx"
	"github.com/aussiebroadwan/todolist/pkg/sessionx"
	"github.com/aussiebroadwan/todolist/pkg/slogx"
	"github.com/aussiebroadwan/todolist/pkg/todosdk"
)

// AuthHandler serves registration, login and account endpoints.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register
//	@Description	Creates an account and logs it in. The session cookie is set on success.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.RegisterRequest	true	"Account details"
//	@Success		200		{object}	todosdk.AuthResponse	"success, message, user"
//	@Failure		400		{object}	todosdk.MessageResponse	"Username or email taken, or invalid input"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	user, err := h.AuthService.Register(ctx, service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		msg, ok := clientMessage(err)
		if !ok {
			log.Error("registration failed", "error", err)
			msg = "Registration failed"
		}
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.AuthService.CreateSession(ctx, sessionx.FromContext(ctx), user); err != nil {
		log.Error("failed to create session", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, "Registration failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.AuthResponse{
		Success: true,
		Message: "Registration successful",
		User:    toUser(user),
	})
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Login
//	@Description	Authenticates by username or email. Unknown users and wrong passwords fail with the same message.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	todosdk.AuthResponse	"success, message, user"
//	@Failure		400		{object}	todosdk.MessageResponse	"Invalid credentials or account is deactivated"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	user, err := h.AuthService.Authenticate(ctx, req.UsernameOrEmail, req.Password)
	if err != nil {
		msg, ok := clientMessage(err)
		if !ok {
			log.Error("login failed", "error", err)
			msg = "Login failed"
		}
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.AuthService.CreateSession(ctx, sessionx.FromContext(ctx), user); err != nil {
		log.Error("failed to create session", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, "Login failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    toUser(user),
	})
}

// HandleLogout handles POST /api/auth/logout
//
//	@Summary		Logout
//	@Description	Destroys the session and expires the cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	todosdk.LogoutResponse	"success, message, redirect"
//	@Failure		400	{object}	todosdk.MessageResponse	"Logout failed"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.AuthService.Logout(ctx, sessionx.FromContext(ctx)); err != nil {
		slogx.FromContext(ctx).Error("logout failed", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, "Logout failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.LogoutResponse{
		Success:  true,
		Message:  "Logout successful",
		Redirect: "/",
	})
}

// HandleMe handles GET /api/auth/me
//
//	@Summary		Current user
//	@Description	Always answers 200. isAuthenticated reports whether the session resolved to a user.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	todosdk.MeResponse	"success, isAuthenticated, user"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notAuthenticated := todosdk.MeResponse{
		Success:         false,
		Message:         httpx.NotAuthenticated,
		IsAuthenticated: false,
	}

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusOK, notAuthenticated)
		return
	}

	user, err := h.AuthService.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, service.ErrUserNotFound) {
			slogx.FromContext(ctx).Error("failed to load current user", "error", err)
		}
		httpx.WriteJSON(w, http.StatusOK, notAuthenticated)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.MeResponse{
		Success:         true,
		IsAuthenticated: true,
		User:            toUser(user),
	})
}

// HandleCheckUsername handles GET /api/auth/check-username/{username}
//
//	@Summary		Username availability
//	@Tags			Auth
//	@Produce		json
//	@Param			username	path		string							true	"Username"
//	@Success		200			{object}	todosdk.AvailabilityResponse	"available, message"
//	@Router			/api/auth/check-username/{username} [get].
func (h *AuthHandler) HandleCheckUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	available, err := h.AuthService.IsUsernameAvailable(ctx, r.PathValue("username"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to check username", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to check username")
		return
	}

	resp := todosdk.AvailabilityResponse{Available: available, Message: "Username already exists"}
	if available {
		resp.Message = "Username is available"
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCheckEmail handles GET /api/auth/check-email/{email}
//
//	@Summary		Email availability
//	@Tags			Auth
//	@Produce		json
//	@Param			email	path		string							true	"Email"
//	@Success		200		{object}	todosdk.AvailabilityResponse	"available, message"
//	@Router			/api/auth/check-email/{email} [get].
func (h *AuthHandler) HandleCheckEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	available, err := h.AuthService.IsEmailAvailable(ctx, r.PathValue("email"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to check email", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to check email")
		return
	}

	resp := todosdk.AvailabilityResponse{Available: available, Message: "Email already exists"}
	if available {
		resp.Message = "Email is available"
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdateProfile handles PUT /api/auth/profile
//
//	@Summary		Update profile
//	@Description	Replaces first name, last name and email of the current user.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		todosdk.UpdateProfileRequest	true	"Profile"
//	@Success		200		{object}	todosdk.AuthResponse			"success, message, user"
//	@Failure		400		{object}	todosdk.MessageResponse			"Email already exists or user not found"
//	@Failure		401		{object}	todosdk.MessageResponse			"Not authenticated"
//	@Router			/api/auth/profile [put].
func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := httpx.UserIDFromContext(ctx)

	var req todosdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	user, err := h.AuthService.UpdateProfile(ctx, userID, service.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		msg, ok := clientMessage(err)
		if !ok {
			slogx.FromContext(ctx).Error("profile update failed", "error", err)
			msg = "Failed to update profile"
		}
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.AuthResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    toUser(user),
	})
}

// HandleChangePassword handles PUT /api/auth/change-password
//
//	@Summary		Change password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		todosdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		200		{object}	todosdk.MessageResponse			"Password changed successfully"
//	@Failure		400		{object}	todosdk.MessageResponse			"Current password is incorrect"
//	@Failure		401		{object}	todosdk.MessageResponse			"Not authenticated"
//	@Router			/api/auth/change-password [put].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := httpx.UserIDFromContext(ctx)

	var req todosdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if err := h.AuthService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		msg, ok := clientMessage(err)
		if !ok {
			slogx.FromContext(ctx).Error("password change failed", "error", err)
			msg = "Failed to change password"
		}
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	httpx.WriteMessage(w, "Password changed successfully")
}
