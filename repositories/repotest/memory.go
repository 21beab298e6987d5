// Package repotest provides in-memory stand-ins for the mongo repositories,
// with the same lookup, stock and join semantics.
package repotest

import (
	"context"
	"sync"

	"plantnet/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Users struct {
	mu    sync.Mutex
	items []models.User
	Err   error
}

func NewUsers() *Users {
	return &Users{}
}

func (u *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return nil, u.Err
	}
	for _, user := range u.items {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (u *Users) Create(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return primitive.NilObjectID, u.Err
	}
	user.ID = primitive.NewObjectID()
	u.items = append(u.items, *user)
	return user.ID, nil
}

func (u *Users) Count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.items)
}

type Plants struct {
	mu    sync.Mutex
	items []models.Plant
	Err   error
}

func NewPlants() *Plants {
	return &Plants{}
}

func (p *Plants) Create(_ context.Context, plant *models.Plant) (primitive.ObjectID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return primitive.NilObjectID, p.Err
	}
	plant.ID = primitive.NewObjectID()
	p.items = append(p.items, *plant)
	return plant.ID, nil
}

func (p *Plants) List(_ context.Context, limit int64) ([]models.Plant, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	n := len(p.items)
	if limit > 0 && int64(n) > limit {
		n = int(limit)
	}
	out := make([]models.Plant, n)
	copy(out, p.items[:n])
	return out, nil
}

func (p *Plants) FindByID(_ context.Context, id primitive.ObjectID) (*models.Plant, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	if i := p.index(id); i >= 0 {
		found := p.items[i]
		return &found, nil
	}
	return nil, nil
}

func (p *Plants) AdjustQuantity(_ context.Context, id primitive.ObjectID, delta int) (models.UpdateResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return models.UpdateResult{}, p.Err
	}
	i := p.index(id)
	if i < 0 || (delta < 0 && p.items[i].Quantity < -delta) {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	p.items[i].Quantity += delta
	modified := int64(0)
	if delta != 0 {
		modified = 1
	}
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (p *Plants) index(id primitive.ObjectID) int {
	for i := range p.items {
		if p.items[i].ID == id {
			return i
		}
	}
	return -1
}

type Orders struct {
	mu     sync.Mutex
	items  []models.Order
	plants *Plants
	Err    error
}

// NewOrders joins against plants when building customer order history.
func NewOrders(plants *Plants) *Orders {
	return &Orders{plants: plants}
}

func (o *Orders) Create(_ context.Context, order *models.Order) (primitive.ObjectID, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return primitive.NilObjectID, o.Err
	}
	order.ID = primitive.NewObjectID()
	o.items = append(o.items, *order)
	return order.ID, nil
}

// Insert stores the order as given, keeping a preset id and status.
func (o *Orders) Insert(order models.Order) primitive.ObjectID {
	o.mu.Lock()
	defer o.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	o.items = append(o.items, order)
	return order.ID
}

func (o *Orders) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return nil, o.Err
	}
	for _, order := range o.items {
		if order.ID == id {
			found := order
			return &found, nil
		}
	}
	return nil, nil
}

func (o *Orders) DeleteUndelivered(_ context.Context, id primitive.ObjectID) (int64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return 0, o.Err
	}
	for i, order := range o.items {
		if order.ID == id && order.Status != models.OrderStatusDelivered {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (o *Orders) FindByCustomerEmail(ctx context.Context, email string) ([]models.CustomerOrder, error) {
	o.mu.Lock()
	matched := []models.Order{}
	for _, order := range o.items {
		if order.Customer.Email == email {
			matched = append(matched, order)
		}
	}
	err := o.Err
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	result := []models.CustomerOrder{}
	for _, order := range matched {
		plantID, err := primitive.ObjectIDFromHex(order.PlantID)
		if err != nil {
			continue
		}
		plant, err := o.plants.FindByID(ctx, plantID)
		if err != nil {
			return nil, err
		}
		if plant == nil {
			continue
		}
		result = append(result, models.CustomerOrder{
			ID:       order.ID,
			Customer: order.Customer,
			PlantID:  plantID,
			Price:    order.Price,
			Quantity: order.Quantity,
			Seller:   order.Seller,
			Address:  order.Address,
			Status:   order.Status,
			Name:     plant.Name,
			Image:    plant.Image,
			Category: plant.Category,
		})
	}
	return result, nil
}

func (o *Orders) Count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.items)
}
