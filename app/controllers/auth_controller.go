package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/backoffice/app/forms"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/response"
)

// AuthController issues tokens for the single operator account configured
// via ADMIN_EMAIL / ADMIN_PASSWORD_HASH.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login handles POST /api/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var form forms.Login
	if !decode(w, r, &form) {
		return
	}

	if form.Email != config.AdminEmail() || !auth.CheckPassword(config.AdminPasswordHash(), form.Password) {
		logger.WithCtx(r.Context()).Warn("failed login attempt", "email", form.Email)
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(form.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not issue token")
		return
	}

	response.Success(w, map[string]string{"token": token})
}
