package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/minhtridev/edustore-backend/pkg/db/models"
	"github.com/minhtridev/edustore-backend/pkg/enums"
)

// OrderItemDTO is the immutable snapshot of one purchased line.
type OrderItemDTO struct {
	ID           uuid.UUID `json:"id"`
	ProductID    string    `json:"product_id"`
	Title        string    `json:"title"`
	ProductTypes []string  `json:"product_types"`
	Price        int64     `json:"price"`
	Quantity     int       `json:"quantity"`
}

// OrderDTO is the transport shape for a single order.
type OrderDTO struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	TotalAmount int64             `json:"total_amount"`
	Status      enums.OrderStatus `json:"status"`
	PaidAt      *time.Time        `json:"paid_at,omitempty"`
	CancelledAt *time.Time        `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	Items       []OrderItemDTO    `json:"items,omitempty"`
}

// AdminOrderList is one cursor page of the admin order listing.
type AdminOrderList struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// Summary aggregates order counts and paid revenue for the admin dashboard.
type Summary struct {
	PendingCount   int64  `json:"pending_count"`
	PaidCount      int64  `json:"paid_count"`
	CancelledCount int64  `json:"cancelled_count"`
	PaidRevenue    int64  `json:"paid_revenue"`
	AveragePaid    string `json:"average_paid_order"`
}

func itemFromModel(item models.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:           item.ID,
		ProductID:    item.ProductID,
		Title:        item.Title,
		ProductTypes: append([]string(nil), item.ProductTypes...),
		Price:        item.Price,
		Quantity:     item.Quantity,
	}
}

// FromModel maps the persisted order (and preloaded items) to its DTO.
func FromModel(order *models.Order) *OrderDTO {
	if order == nil {
		return nil
	}
	dto := &OrderDTO{
		ID:          order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		PaidAt:      order.PaidAt,
		CancelledAt: order.CancelledAt,
		CreatedAt:   order.CreatedAt,
	}
	for _, item := range order.Items {
		dto.Items = append(dto.Items, itemFromModel(item))
	}
	return dto
}

// SnapshotItem builds the order item row for a purchased product.
func SnapshotItem(orderID uuid.UUID, productID, title string, types []string, price int64, quantity int) models.OrderItem {
	return models.OrderItem{
		OrderID:      orderID,
		ProductID:    productID,
		Title:        title,
		ProductTypes: pq.StringArray(types),
		Price:        price,
		Quantity:     quantity,
	}
}
