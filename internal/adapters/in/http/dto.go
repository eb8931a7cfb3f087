package http

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body returned on request failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderRequest is the body of order create and edit requests.
type OrderRequest struct {
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	ShippingMethod  string        `json:"shippingMethod"`
	LockerID        string        `json:"lockerId,omitempty"`
	LockerAddress   string        `json:"lockerAddress,omitempty"`
	Items           []ItemRequest `json:"items"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
}

// ItemRequest is one order line in a request body.
type ItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

// StatusRequest is the body of a status change request.
type StatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the full order representation, audit trail included.
type OrderResponse struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
	ShippingMethod  string          `json:"shippingMethod"`
	LockerID        string          `json:"lockerId,omitempty"`
	LockerAddress   string          `json:"lockerAddress,omitempty"`
	Items           []ItemResponse  `json:"items"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	TotalAmount     float64         `json:"totalAmount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	AuditHistory    []AuditResponse `json:"auditHistory"`
}

// ItemResponse is one order line in a response body.
type ItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

// AuditResponse is one audit trail entry in a response body.
type AuditResponse struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Action        string    `json:"action"`
	PreviousValue string    `json:"previousValue"`
	NewValue      string    `json:"newValue"`
	User          string    `json:"user"`
}

// ProductRequest is the body of catalog create and update requests.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       string  `json:"stock"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// fromOrderResponse rebuilds the aggregate from a backup row, keeping
// its recorded status, timestamps, and audit history. Inverse of
// toOrderResponse; used by the admin restore path.
func fromOrderResponse(resp OrderResponse) (*order.Order, error) {
	id, err := kernel.UUIDFromString(resp.ID)
	if err != nil {
		return nil, err
	}

	method, err := order.ShippingMethodFromString(resp.ShippingMethod)
	if err != nil {
		return nil, err
	}

	shipping, err := order.NewShipping(method, resp.LockerID, resp.LockerAddress)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(resp.Items))
	for _, it := range resp.Items {
		item, itemErr := order.NewItem(it.Name, it.Quantity, it.Price, it.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(resp.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.AuditLog, 0, len(resp.AuditHistory))
	for _, entry := range resp.AuditHistory {
		entryID, entryErr := kernel.UUIDFromString(entry.ID)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, order.RestoreAuditLog(
			entryID, entry.Timestamp, entry.Action,
			entry.PreviousValue, entry.NewValue, entry.User,
		))
	}

	return order.RestoreOrder(id, resp.CustomerName, resp.CustomerPhone,
		resp.CustomerEmail, shipping, items, resp.SpecialRequests,
		resp.TotalAmount, status, resp.CreatedAt, resp.UpdatedAt, history)
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Notes:    item.Notes(),
		})
	}

	history := make([]AuditResponse, 0, len(o.AuditHistory()))
	for _, entry := range o.AuditHistory() {
		history = append(history, AuditResponse{
			ID:            entry.ID().String(),
			Timestamp:     entry.Timestamp(),
			Action:        entry.Action(),
			PreviousValue: entry.PreviousValue(),
			NewValue:      entry.NewValue(),
			User:          entry.User(),
		})
	}

	return OrderResponse{
		ID:              o.ID().String(),
		CustomerName:    o.CustomerName(),
		CustomerPhone:   o.CustomerPhone(),
		CustomerEmail:   o.CustomerEmail(),
		ShippingMethod:  o.Shipping().Method().String(),
		LockerID:        o.Shipping().LockerID(),
		LockerAddress:   o.Shipping().LockerAddress(),
		Items:           items,
		SpecialRequests: o.SpecialRequests(),
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		AuditHistory:    history,
	}
}
