// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Line items and the audit trail are stored as
// jsonb documents alongside the order row.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The status is stored in its wire form so that dashboard
// queries can filter without joining a lookup table.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	ShippingMethod  string
	LockerID        string
	LockerAddress   string
	Items           ItemsDTO `gorm:"type:jsonb"`
	SpecialRequests string
	TotalAmount     float64
	Status          string `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	AuditHistory    AuditHistoryDTO `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the jsonb form of one order line.
type ItemDTO struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

// ItemsDTO stores order lines as a jsonb array.
type ItemsDTO []ItemDTO

func (i ItemsDTO) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *ItemsDTO) Scan(value any) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, sok := value.(string); sok {
			raw = []byte(s)
		} else {
			return fmt.Errorf("unsupported jsonb source type %T", value)
		}
	}
	return json.Unmarshal(raw, i)
}

// AuditEntryDTO is the jsonb form of one audit trail entry.
type AuditEntryDTO struct {
	ID            uuid.UUID `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Action        string    `json:"action"`
	PreviousValue string    `json:"previousValue"`
	NewValue      string    `json:"newValue"`
	User          string    `json:"user"`
}

// AuditHistoryDTO stores the audit trail as a jsonb array.
type AuditHistoryDTO []AuditEntryDTO

func (a AuditHistoryDTO) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AuditHistoryDTO) Scan(value any) error {
	raw, ok := value.([]byte)
	if !ok {
		if s, sok := value.(string); sok {
			raw = []byte(s)
		} else {
			return fmt.Errorf("unsupported jsonb source type %T", value)
		}
	}
	return json.Unmarshal(raw, a)
}

// FromDomain converts an order aggregate to its database row. Exported
// for the snapshot saver, which writes rows in bulk.
func FromDomain(o *order.Order) OrderDTO {
	return fromDomain(o)
}

func fromDomain(o *order.Order) OrderDTO {
	items := make(ItemsDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Notes:    item.Notes(),
		})
	}

	history := make(AuditHistoryDTO, 0, len(o.AuditHistory()))
	for _, entry := range o.AuditHistory() {
		history = append(history, AuditEntryDTO{
			ID:            entry.ID().Bytes(),
			Timestamp:     entry.Timestamp(),
			Action:        entry.Action(),
			PreviousValue: entry.PreviousValue(),
			NewValue:      entry.NewValue(),
			User:          entry.User(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
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

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	method, err := order.ShippingMethodFromString(dto.ShippingMethod)
	if err != nil {
		return nil, err
	}

	shipping, err := order.NewShipping(method, dto.LockerID, dto.LockerAddress)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		item, itemErr := order.NewItem(it.Name, it.Quantity, it.Price, it.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.AuditLog, 0, len(dto.AuditHistory))
	for _, entry := range dto.AuditHistory {
		entryID, entryErr := kernel.UUIDFromBytes(entry.ID[:])
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
		dto.CustomerName,
		dto.CustomerPhone,
		dto.CustomerEmail,
		shipping,
		items,
		dto.SpecialRequests,
		dto.TotalAmount,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
		history,
	)
}
