package orders

import "time"

// defaultDeliveryOption is applied when an order item omits one.
const defaultDeliveryOption = "1"

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID        string `json:"productId" bson:"productId" validate:"required"`
	Quantity         int    `json:"quantity" bson:"quantity" validate:"required,min=1"`
	DeliveryOptionID string `json:"deliveryOptionId" bson:"deliveryOptionId"`
}

// Order is the persisted and served shape. The id is caller-assigned;
// orderTime is an opaque caller-supplied timestamp string used only
// for descending sort; created_at is stamped by the store at
// persistence time and is never caller-settable.
type Order struct {
	ID             string      `json:"id" bson:"id"`
	OrderTime      string      `json:"orderTime" bson:"orderTime"`
	Products       []OrderItem `json:"products" bson:"products"`
	TotalCostCents int         `json:"totalCostCents" bson:"totalCostCents"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
}

// OrderCreate is the inbound creation payload.
type OrderCreate struct {
	ID             string      `json:"id" bson:"id" validate:"required"`
	OrderTime      string      `json:"orderTime" bson:"orderTime" validate:"required"`
	Products       []OrderItem `json:"products" bson:"products" validate:"required,min=1,dive"`
	TotalCostCents int         `json:"totalCostCents" bson:"totalCostCents" validate:"min=0"`
}

// Normalize fills per-item defaults: an omitted deliveryOptionId
// becomes "1".
func (in *OrderCreate) Normalize() {
	for i := range in.Products {
		if in.Products[i].DeliveryOptionID == "" {
			in.Products[i].DeliveryOptionID = defaultDeliveryOption
		}
	}
}
