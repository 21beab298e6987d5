package controllers

import (
	"net/http"

	"plantnet/models"
	"plantnet/services"
	"plantnet/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth       *services.AuthService
	production bool
}

func NewAuthController(auth *services.AuthService, production bool) *AuthController {
	return &AuthController{auth: auth, production: production}
}

// IssueSession godoc
// @Summary Issue session cookie
// @Description Sign a session token for the email and set it as the http-only "token" cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SessionRequest true "Session Request"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /jwt [post]
func (ctrl *AuthController) IssueSession(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, err := ctrl.auth.IssueToken(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SetSessionCookie(c, token, ctrl.auth.SessionTTL(), ctrl.production)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// Logout godoc
// @Summary Clear session cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /logout [get]
func (ctrl *AuthController) Logout(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "internal server error"})
		}
	}()

	utils.ClearSessionCookie(c, ctrl.production)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
