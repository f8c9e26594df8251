package response

import "github.com/google/uuid"

type CreateOrderResponse struct {
	Success bool      `json:"success"`
	OrderID uuid.UUID `json:"orderId"`
}
