package controllers

import (
	"errors"
	"io"
	"net/http"

	"plantnet/models"
	"plantnet/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// SaveUser godoc
// @Summary Save a user
// @Description Return the stored user for the email, or create a customer if none exists
// @Tags Users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body models.UpsertUserRequest true "User"
// @Success 200 {object} models.User
// @Router /users/{email} [post]
func (ctrl *UserController) SaveUser(c *gin.Context) {
	var req models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}

	user, created, err := ctrl.users.Upsert(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, user)
		return
	}
	c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: user.ID})
}
