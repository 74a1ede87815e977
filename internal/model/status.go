package model

// OrderStatus is the lifecycle state stored in orders.status.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every known order status, in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ValidOrderStatus reports whether status is one of OrderStatuses.
func ValidOrderStatus(status OrderStatus) bool {
	for _, known := range OrderStatuses {
		if status == known {
			return true
		}
	}
	return false
}

// MinRating and MaxRating bound a review rating, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether rating lies within [MinRating, MaxRating].
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
