// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The token column carries a unique index; it is the final guard against
// concurrent placements generating the same pickup token.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Token       string     `gorm:"size:8;uniqueIndex;not null"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	ZoneID      uuid.UUID  `gorm:"type:uuid;not null"`
	CourierID   *uuid.UUID `gorm:"type:uuid;index"`
	MapsLink    string
	Latitude    *decimal.Decimal `gorm:"type:numeric(9,6)"`
	Longitude   *decimal.Decimal `gorm:"type:numeric(9,6)"`
	AddressNote string
	Payment     int
	Paid        bool
	Total       decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status      int             `gorm:"index"`
	CreatedAt   time.Time
	ConfirmedAt    *time.Time
	KitchenReadyAt *time.Time
	DispatchedAt   *time.Time
	DeliveredAt    *time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one cart position of a persisted order.
type OrderLineDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	OfferingID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2)"`

	Exclusions []LineExclusionDTO `gorm:"foreignKey:LineID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// LineExclusionDTO records one excluded ingredient on an order line.
type LineExclusionDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	LineID       uuid.UUID `gorm:"type:uuid;index;not null"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName specifies the database table name for line exclusions.
func (LineExclusionDTO) TableName() string {
	return "order_line_exclusions"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		exclusions := make([]LineExclusionDTO, 0, len(line.ExclusionIDs()))
		for _, ingredientID := range line.ExclusionIDs() {
			exclusions = append(exclusions, LineExclusionDTO{
				LineID:       line.ID().Bytes(),
				IngredientID: ingredientID.Bytes(),
			})
		}
		lines = append(lines, OrderLineDTO{
			ID:         line.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			OfferingID: line.OfferingID().Bytes(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().Amount(),
			Exclusions: exclusions,
		})
	}

	destination := aggregate.Destination()
	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Token:          aggregate.Token().String(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		ZoneID:         aggregate.ZoneID().Bytes(),
		CourierID:      courierID,
		MapsLink:       destination.MapsLink(),
		Latitude:       destination.Latitude(),
		Longitude:      destination.Longitude(),
		AddressNote:    destination.AddressNote(),
		Payment:        int(aggregate.PaymentMethod()),
		Paid:           aggregate.IsPaid(),
		Total:          aggregate.Total().Amount(),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
		ConfirmedAt:    aggregate.ConfirmedAt(),
		KitchenReadyAt: aggregate.KitchenReadyAt(),
		DispatchedAt:   aggregate.DispatchedAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
		Lines:          lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines, status and courier
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	token, err := order.NewToken(dto.Token)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, token, customerID, zoneID,
		order.NewDestination(dto.MapsLink, dto.Latitude, dto.Longitude, dto.AddressNote),
		order.PaymentMethod(dto.Payment), dto.Paid,
		order.Status(dto.Status), courierID, lines,
		dto.CreatedAt, dto.ConfirmedAt, dto.KitchenReadyAt, dto.DispatchedAt, dto.DeliveredAt,
	)
}

func lineToDomain(dto OrderLineDTO) (*order.Line, error) {
	lineID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	offeringID, err := kernel.UUIDFromBytes(dto.OfferingID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	exclusionIDs := make([]kernel.UUID, 0, len(dto.Exclusions))
	for _, exclusion := range dto.Exclusions {
		ingredientID, exclErr := kernel.UUIDFromBytes(exclusion.IngredientID[:])
		if exclErr != nil {
			return nil, exclErr
		}
		exclusionIDs = append(exclusionIDs, ingredientID)
	}

	return order.RestoreLine(lineID, offeringID, dto.Quantity, unitPrice, exclusionIDs)
}
