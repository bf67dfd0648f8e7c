package handlers

import (
	"errors"
	"io"
	"net/http"

	recipes "recipes_api"
	"recipes_api/internal/metrics"
	"recipes_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Credentials payload; accepted as JSON or urlencoded form.
type authCredentials struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginRequest is an exported model for Swagger docs of the login payload.
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"okay"`
}

// @Summary      Log in
// @Description  Verifies credentials and issues a time-limited bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  recipes_api.LoginResponse
// @Failure      400   {object}  recipes_api.Response
// @Failure      500   {object}  recipes_api.Response
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if err := c.ShouldBind(&input); err != nil && !errors.Is(err, io.EOF) {
		h.logAndJSONError(c, http.StatusBadRequest, msgEmptyCredentials, "auth_bad_request_body", err)
		return
	}

	u, token, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEmptyCredentials):
		metrics.ObserveLogin(metrics.LoginRejected)
		c.JSON(http.StatusBadRequest, recipes.Fail(msgEmptyCredentials))
		return
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword):
		metrics.ObserveLogin(metrics.LoginRejected)
		h.logAndJSONError(c, http.StatusBadRequest, msgIncorrectCredentials, "auth_login_rejected", err,
			"username", input.Username)
		return
	default:
		metrics.ObserveLogin(metrics.LoginError)
		h.logAndJSONError(c, http.StatusInternalServerError, msgLoginFailed, "auth_login_failed", err,
			"username", input.Username)
		return
	}

	metrics.ObserveLogin(metrics.LoginSuccess)
	c.JSON(http.StatusOK, recipes.LoginResponse{
		AccessToken: token,
		Success:     true,
		Data:        recipes.LoginUser{ID: u.ID, Username: u.Username},
	})
}
