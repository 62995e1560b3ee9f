package http

import (
	"github.com/gin-gonic/gin"

	"disc-rental/internal/middleware"
	"disc-rental/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Description Verifies email and password, sets the session cookie and returns the token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid Credentials"
// @Failure     429 {object} response.Resp "Too Many Attempts"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setSessionCookie(c, output.Token)
	response.OK(c, h.newLoginResp(output))
}

// Me godoc
// @Summary     Current user
// @Description Returns the account behind the session token.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	claims, ok := middleware.GetClaims(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, claims.UserID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMeResp(output))
}

// Logout godoc
// @Summary     Log out
// @Description Clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	c.SetCookie(h.authConfig.CookieName, "", -1, "/", "", h.authConfig.CookieSecure, true)
	response.OK(c, nil)
}

func (h *handler) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(h.authConfig.TokenTTL.Seconds())
	c.SetCookie(h.authConfig.CookieName, token, maxAge, "/", "", h.authConfig.CookieSecure, true)
}
