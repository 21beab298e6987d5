package controllers

import (
	"net/http"

	"plantnet/models"
	"plantnet/services"

	"github.com/gin-gonic/gin"
)

type PlantController struct {
	plants *services.PlantService
}

func NewPlantController(plants *services.PlantService) *PlantController {
	return &PlantController{plants: plants}
}

// @Summary Add a plant
// @Tags Plants
// @Accept json
// @Produce json
// @Param request body models.CreatePlantRequest true "Plant"
// @Success 200 {object} models.InsertResult
// @Failure 401 {object} models.ErrorResponse
// @Router /plants [post]
func (ctrl *PlantController) CreatePlant(c *gin.Context) {
	var req models.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := ctrl.plants.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get plants
// @Description Get the first 20 plants
// @Tags Plants
// @Produce json
// @Success 200 {array} models.Plant
// @Router /plants [get]
func (ctrl *PlantController) GetPlants(c *gin.Context) {
	plants, err := ctrl.plants.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plants)
}

// @Summary Get plant by ID
// @Description Responds with null when no plant has the id
// @Tags Plants
// @Produce json
// @Param id path string true "Plant ID"
// @Success 200 {object} models.Plant
// @Failure 400 {object} models.ErrorResponse
// @Router /plants/{id} [get]
func (ctrl *PlantController) GetPlantByID(c *gin.Context) {
	plant, err := ctrl.plants.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if plant == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, plant)
}

// @Summary Update plant quantity
// @Description status "increase" adds quantityToUpdate, any other status subtracts it
// @Tags Plants
// @Accept json
// @Produce json
// @Param id path string true "Plant ID"
// @Param request body models.QuantityUpdateRequest true "Quantity change"
// @Success 200 {object} models.UpdateResult
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /plants/quantity/{id} [patch]
func (ctrl *PlantController) UpdateQuantity(c *gin.Context) {
	var req models.QuantityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := ctrl.plants.AdjustQuantity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
