package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// TrackOrderQueryHandler resolves a pickup token to the order's tracking view.
// Joins the assigned courier's name when one is set.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking lookups.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// order carries the token.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.token,
			o.status,
			c.name,
			o.created_at,
			o.confirmed_at,
			o.kitchen_ready_at,
			o.dispatched_at,
			o.delivered_at
		FROM orders o
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.token = ?
	`, query.Token().String()).Row()

	var resp TrackOrderQueryResponse
	var status int
	var courierName sql.NullString

	err := row.Scan(
		&resp.Token, &status, &courierName,
		&resp.CreatedAt, &resp.ConfirmedAt, &resp.KitchenReadyAt,
		&resp.DispatchedAt, &resp.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("token", query.Token().String())
		}
		return TrackOrderQueryResponse{}, err
	}

	resp.Status = order.Status(status).String()
	if courierName.Valid {
		resp.CourierName = courierName.String
	}
	return resp, nil
}
