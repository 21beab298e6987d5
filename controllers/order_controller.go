package controllers

import (
	"errors"
	"net/http"

	"plantnet/middleware"
	"plantnet/models"
	"plantnet/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// @Summary Place an order
// @Description Reserves the ordered quantity on the plant and saves the order
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Order"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /order [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := ctrl.orders.Place(c.Request.Context(), c.GetString(middleware.CtxUserEmailKey), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get customer orders
// @Description Orders of the customer joined with plant name, image and category
// @Tags Orders
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {array} models.CustomerOrder
// @Router /customer-order/{email} [get]
func (ctrl *OrderController) GetCustomerOrders(c *gin.Context) {
	orders, err := ctrl.orders.History(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary Cancel an order
// @Description Delivered orders cannot be cancelled (409, plain text)
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.DeleteResult
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {string} string
// @Router /order/{id} [delete]
func (ctrl *OrderController) CancelOrder(c *gin.Context) {
	result, err := ctrl.orders.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Kind == models.KindConflict {
			c.String(http.StatusConflict, appErr.Message)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
