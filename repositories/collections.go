package repositories

const (
	UsersCollection  = "users"
	PlantsCollection = "plants"
	OrdersCollection = "orders"
)
