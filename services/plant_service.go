package services

import (
	"context"

	"plantnet/models"
)

const PlantListLimit = 20

const quantityIncrease = "increase"

type PlantService struct {
	plants PlantStore
	cache  *PlantCache
}

func NewPlantService(plants PlantStore, cache *PlantCache) *PlantService {
	return &PlantService{plants: plants, cache: cache}
}

func (s *PlantService) Create(ctx context.Context, req models.CreatePlantRequest) (*models.InsertResult, error) {
	plant := &models.Plant{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Image:       req.Image,
		Seller:      req.Seller,
	}
	id, err := s.plants.Create(ctx, plant)
	if err != nil {
		return nil, models.NewInternalError("failed to save plant", err)
	}
	s.cache.Invalidate(ctx)
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// List always returns the same first page of at most PlantListLimit plants.
func (s *PlantService) List(ctx context.Context) ([]models.Plant, error) {
	if plants, ok := s.cache.Get(ctx); ok {
		return plants, nil
	}
	plants, err := s.plants.List(ctx, PlantListLimit)
	if err != nil {
		return nil, models.NewInternalError("failed to list plants", err)
	}
	s.cache.Set(ctx, plants)
	return plants, nil
}

// Get returns nil without error for a well-formed id that matches nothing.
func (s *PlantService) Get(ctx context.Context, idHex string) (*models.Plant, error) {
	id, err := parseObjectID(idHex, "plant")
	if err != nil {
		return nil, err
	}
	plant, err := s.plants.FindByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError("failed to get plant", err)
	}
	return plant, nil
}

// AdjustQuantity adds the amount when status is "increase" and subtracts it
// for any other status.
func (s *PlantService) AdjustQuantity(ctx context.Context, idHex string, req models.QuantityUpdateRequest) (*models.UpdateResult, error) {
	id, err := parseObjectID(idHex, "plant")
	if err != nil {
		return nil, err
	}
	if req.QuantityToUpdate < 1 {
		return nil, models.NewValidationError("quantityToUpdate must be positive")
	}

	delta := -req.QuantityToUpdate
	if req.Status == quantityIncrease {
		delta = req.QuantityToUpdate
	}

	res, err := adjustStock(ctx, s.plants, id, delta)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return &res, nil
}
