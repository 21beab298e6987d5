package controllers

import (
	"errors"
	"log"

	"plantnet/models"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	kind := models.KindOf(err)
	message := "internal server error"

	var appErr *models.AppError
	if errors.As(err, &appErr) && kind != models.KindInternal {
		message = appErr.Message
	}
	if kind == models.KindInternal {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	_ = c.Error(err)
	c.JSON(kind.HTTPStatus(), models.ErrorResponse{Message: message})
}

func bindError(c *gin.Context, err error) {
	respondError(c, models.NewValidationError("invalid request body: "+err.Error()))
}
