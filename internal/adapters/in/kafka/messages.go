// Package kafka consumes the order change feed and merges writes made
// by other sessions into the in-memory store.
package kafka

import (
	"fmt"
	"time"

	"bakery/internal/core/application/orderstore"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// Change feed operation kinds.
const (
	ChangeInsert = "INSERT"
	ChangeUpdate = "UPDATE"
	ChangeDelete = "DELETE"
)

// OrderChangeMessage is the JSON envelope published on the order change
// topic. Order is set for inserts and updates; deletes carry only the
// identifier.
type OrderChangeMessage struct {
	Type    string        `json:"type"`
	OrderID string        `json:"orderId"`
	Order   *OrderPayload `json:"order,omitempty"`
}

// OrderPayload is the full order row carried by insert and update
// messages.
type OrderPayload struct {
	ID              string         `json:"id"`
	CustomerName    string         `json:"customerName"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerEmail   string         `json:"customerEmail,omitempty"`
	ShippingMethod  string         `json:"shippingMethod"`
	LockerID        string         `json:"lockerId,omitempty"`
	LockerAddress   string         `json:"lockerAddress,omitempty"`
	Items           []ItemPayload  `json:"items"`
	SpecialRequests string         `json:"specialRequests,omitempty"`
	TotalAmount     float64        `json:"totalAmount"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	AuditHistory    []AuditPayload `json:"auditHistory"`
}

// ItemPayload is one order line on the wire.
type ItemPayload struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

// AuditPayload is one audit trail entry on the wire.
type AuditPayload struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Action        string    `json:"action"`
	PreviousValue string    `json:"previousValue"`
	NewValue      string    `json:"newValue"`
	User          string    `json:"user"`
}

// toEvent converts a decoded message into a store event.
func toEvent(msg OrderChangeMessage) (orderstore.Event, error) {
	switch msg.Type {
	case ChangeInsert, ChangeUpdate:
		if msg.Order == nil {
			return nil, fmt.Errorf("%s message without order payload", msg.Type)
		}
		o, err := toDomain(*msg.Order)
		if err != nil {
			return nil, err
		}
		if msg.Type == ChangeInsert {
			return orderstore.OrderInserted{Order: o}, nil
		}
		return orderstore.OrderUpdated{Order: o}, nil

	case ChangeDelete:
		id, err := kernel.UUIDFromString(msg.OrderID)
		if err != nil {
			return nil, err
		}
		return orderstore.OrderDeleted{ID: id}, nil

	default:
		return nil, fmt.Errorf("unknown change type %q", msg.Type)
	}
}

func toDomain(p OrderPayload) (*order.Order, error) {
	id, err := kernel.UUIDFromString(p.ID)
	if err != nil {
		return nil, err
	}

	method, err := order.ShippingMethodFromString(p.ShippingMethod)
	if err != nil {
		return nil, err
	}

	shipping, err := order.NewShipping(method, p.LockerID, p.LockerAddress)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(p.Items))
	for _, it := range p.Items {
		item, itemErr := order.NewItem(it.Name, it.Quantity, it.Price, it.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(p.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.AuditLog, 0, len(p.AuditHistory))
	for _, entry := range p.AuditHistory {
		entryID, entryErr := kernel.UUIDFromString(entry.ID)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, order.RestoreAuditLog(
			entryID, entry.Timestamp, entry.Action,
			entry.PreviousValue, entry.NewValue, entry.User,
		))
	}

	return order.RestoreOrder(
		id,
		p.CustomerName,
		p.CustomerPhone,
		p.CustomerEmail,
		shipping,
		items,
		p.SpecialRequests,
		p.TotalAmount,
		status,
		p.CreatedAt,
		p.UpdatedAt,
		history,
	)
}
