// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored by their wire names so the table reads the same as the API.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number           string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerEmail    string     `gorm:"type:varchar(320);not null"`
	Pickup           AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery         AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	PickupWindow     WindowDTO  `gorm:"embedded;embeddedPrefix:pickup_window_"`
	DeliveryWindow   WindowDTO  `gorm:"embedded;embeddedPrefix:delivery_window_"`
	Status           string     `gorm:"type:varchar(32);not null;index"`
	PaymentStatus    string     `gorm:"type:varchar(16);not null"`
	InvoiceUnlocked  bool       `gorm:"not null"`
	InvoiceGenerated bool       `gorm:"not null"`
	CreatedAt        time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt        time.Time  `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is an embedded postal address.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(200);not null"`
	City       string `gorm:"type:varchar(100);not null"`
	PostalCode string `gorm:"type:varchar(20);not null"`
}

// WindowDTO is an embedded time window.
type WindowDTO struct {
	Start time.Time `gorm:"not null"`
	End   time.Time `gorm:"not null"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	details := o.Details()
	state := o.State()

	return OrderDTO{
		ID:               o.ID().Bytes(),
		Number:           details.Number,
		CustomerID:       details.CustomerID.Bytes(),
		CustomerEmail:    details.CustomerEmail,
		Pickup:           addressFromDomain(details.PickupAddress),
		Delivery:         addressFromDomain(details.DeliveryAddress),
		PickupWindow:     windowFromDomain(details.PickupWindow),
		DeliveryWindow:   windowFromDomain(details.DeliveryWindow),
		Status:           state.Status.String(),
		PaymentStatus:    state.PaymentStatus.String(),
		InvoiceUnlocked:  state.InvoiceUnlocked,
		InvoiceGenerated: state.InvoiceGenerated,
		CreatedAt:        state.CreatedAt,
		UpdatedAt:        state.UpdatedAt,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which re-checks every invariant of the stored row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	pickup, pickupErr := kernel.NewAddress(dto.Pickup.Street, dto.Pickup.City, dto.Pickup.PostalCode)
	delivery, deliveryErr := kernel.NewAddress(dto.Delivery.Street, dto.Delivery.City, dto.Delivery.PostalCode)
	pickupWindow, pickupWindowErr := kernel.NewTimeWindow(dto.PickupWindow.Start, dto.PickupWindow.End)
	deliveryWindow, deliveryWindowErr := kernel.NewTimeWindow(dto.DeliveryWindow.Start, dto.DeliveryWindow.End)
	status, statusErr := order.ParseStatus(dto.Status)
	payment, paymentErr := order.ParsePaymentStatus(dto.PaymentStatus)

	if err = errors.Join(pickupErr, deliveryErr, pickupWindowErr, deliveryWindowErr, statusErr, paymentErr); err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Details{
		Number:          dto.Number,
		CustomerID:      customerID,
		CustomerEmail:   dto.CustomerEmail,
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		PickupWindow:    pickupWindow,
		DeliveryWindow:  deliveryWindow,
	}, order.State{
		Status:           status,
		PaymentStatus:    payment,
		InvoiceUnlocked:  dto.InvoiceUnlocked,
		InvoiceGenerated: dto.InvoiceGenerated,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	})
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		Street:     a.Street(),
		City:       a.City(),
		PostalCode: a.PostalCode(),
	}
}

func windowFromDomain(w kernel.TimeWindow) WindowDTO {
	return WindowDTO{
		Start: w.Start(),
		End:   w.End(),
	}
}
