package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hafaksurgicals/portal/internal/core/ports"
)

// ProfileHandler exposes the admin's own profile operations.
type ProfileHandler struct {
	auth ports.AuthAPI
}

func NewProfileHandler(auth ports.AuthAPI) *ProfileHandler {
	return &ProfileHandler{auth: auth}
}

// Register handles POST /api/admin/users: creates a new admin account on the
// catalog backend.
//
// @Summary      Create an admin account
// @Tags         admin-profile
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "New account"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/users [post]
func (h *ProfileHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	env, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	if !env.Success {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: env.Message})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "account created"})
}

// Update handles PUT /api/admin/profile.
//
// @Summary      Update own profile
// @Tags         admin-profile
// @Accept       json
// @Produce      json
// @Param        body  body      profileUpdateRequest  true  "Profile fields"
// @Success      200   {object}  domain.AuthenticatedUser
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.auth.UpdateProfile(c.Request().Context(), ports.ProfileUpdateInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword handles PUT /api/admin/password.
//
// @Summary      Change own password
// @Tags         admin-profile
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Password rotation"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/password [put]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	err := h.auth.ChangePassword(c.Request().Context(), ports.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		UserID:          req.UserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password changed"})
}
