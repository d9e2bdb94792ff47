package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// GetCourierDeliveriesQueryHandler reads a courier's active deliveries
// from the database, oldest first so the queue is worked in placement order.
type GetCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierDeliveriesQueryHandler creates a handler for courier workload queries.
func NewGetCourierDeliveriesQueryHandler(db *gorm.DB) GetCourierDeliveriesQueryHandler {
	return GetCourierDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) ([]GetCourierDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetCourierDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			token,
			status,
			maps_link,
			address_note,
			payment,
			paid,
			total,
			created_at
		FROM orders
		WHERE courier_id = ? AND status IN (?, ?)
		ORDER BY kitchen_ready_at ASC NULLS LAST, created_at ASC
	`, query.CourierID().Bytes(), int(order.ReadyForPickup), int(order.OutForDelivery)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCourierDeliveriesQueryResponse
		var id uuid.UUID
		var status, payment int
		var total decimal.Decimal

		err = rows.Scan(
			&id, &resp.Token, &status, &resp.MapsLink, &resp.AddressNote,
			&payment, &resp.Paid, &total, &resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.Payment = order.PaymentMethod(payment).String()
		resp.Total = total
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
