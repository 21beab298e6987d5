package services

import (
	"context"
	"log"

	"plantnet/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DeliveredOrderMessage = "Can not cancel once the product is delivered"

type OrderService struct {
	orders OrderStore
	plants PlantStore
	cache  *PlantCache
}

func NewOrderService(orders OrderStore, plants PlantStore, cache *PlantCache) *OrderService {
	return &OrderService{orders: orders, plants: plants, cache: cache}
}

// Place reserves stock on the plant before saving the order. The customer
// email falls back to the session email when the body leaves it empty.
func (s *OrderService) Place(ctx context.Context, sessionEmail string, req models.PlaceOrderRequest) (*models.InsertResult, error) {
	plantID, err := parseObjectID(req.PlantID, "plant")
	if err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, models.NewValidationError("quantity must be positive")
	}

	order := &models.Order{
		Customer: req.Customer,
		PlantID:  plantID.Hex(),
		Price:    req.Price,
		Quantity: req.Quantity,
		Seller:   req.Seller,
		Address:  req.Address,
		Status:   req.Status,
	}
	if order.Customer.Email == "" {
		order.Customer.Email = sessionEmail
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	if _, err := adjustStock(ctx, s.plants, plantID, -order.Quantity); err != nil {
		return nil, err
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		s.release(ctx, plantID, order.Quantity)
		return nil, models.NewInternalError("failed to save order", err)
	}
	s.cache.Invalidate(ctx)
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// Cancel deletes an undelivered order and gives its quantity back to the
// plant.
func (s *OrderService) Cancel(ctx context.Context, idHex string) (*models.DeleteResult, error) {
	id, err := parseObjectID(idHex, "order")
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError("failed to look up order", err)
	}
	if order == nil {
		return nil, models.NewNotFoundError("order not found")
	}
	if order.Status == models.OrderStatusDelivered {
		return nil, models.NewConflictError(DeliveredOrderMessage)
	}

	deleted, err := s.orders.DeleteUndelivered(ctx, id)
	if err != nil {
		return nil, models.NewInternalError("failed to cancel order", err)
	}
	if deleted == 0 {
		return nil, models.NewConflictError(DeliveredOrderMessage)
	}

	if plantID, err := primitive.ObjectIDFromHex(order.PlantID); err == nil && order.Quantity > 0 {
		s.release(ctx, plantID, order.Quantity)
		s.cache.Invalidate(ctx)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

func (s *OrderService) History(ctx context.Context, email string) ([]models.CustomerOrder, error) {
	orders, err := s.orders.FindByCustomerEmail(ctx, email)
	if err != nil {
		return nil, models.NewInternalError("failed to get customer orders", err)
	}
	return orders, nil
}

func (s *OrderService) release(ctx context.Context, plantID primitive.ObjectID, quantity int) {
	if _, err := s.plants.AdjustQuantity(ctx, plantID, quantity); err != nil {
		log.Printf("failed to restock plant %s by %d: %v", plantID.Hex(), quantity, err)
	}
}
