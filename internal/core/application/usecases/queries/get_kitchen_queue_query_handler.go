package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// GetKitchenQueueQueryHandler reads the kitchen's work queue from the
// database: confirmed and in-kitchen orders, oldest first, with lines and
// exclusions attached.
type GetKitchenQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenQueueQueryHandler creates a handler for kitchen queue queries.
func NewGetKitchenQueueQueryHandler(db *gorm.DB) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{db: db}
}

// Handle executes the query.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) ([]GetKitchenQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.queueHeaders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachLines(ctx, orders, index); err != nil {
		return nil, err
	}
	return orders, nil
}

func (h GetKitchenQueueQueryHandler) queueHeaders(
	ctx context.Context,
) ([]GetKitchenQueueQueryResponse, map[kernel.UUID]int, error) {
	orders := make([]GetKitchenQueueQueryResponse, 0)
	index := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			token,
			status,
			created_at
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY created_at ASC
	`, int(order.Confirmed), int(order.InKitchen)).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetKitchenQueueQueryResponse
		var id uuid.UUID
		var status int

		if err = rows.Scan(&id, &resp.Token, &status, &resp.CreatedAt); err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.Lines = make([]KitchenQueueLine, 0)

		index[orderID] = len(orders)
		orders = append(orders, resp)
	}

	return orders, index, rows.Err()
}

func (h GetKitchenQueueQueryHandler) attachLines(
	ctx context.Context,
	orders []GetKitchenQueueQueryResponse,
	index map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.order_id,
			l.offering_id,
			l.quantity,
			e.ingredient_id
		FROM order_lines l
		LEFT JOIN order_line_exclusions e ON e.line_id = l.id
		JOIN orders o ON o.id = l.order_id
		WHERE o.status IN (?, ?)
		ORDER BY l.order_id, l.id
	`, int(order.Confirmed), int(order.InKitchen)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	// A line with N exclusions comes back as N rows (one with NULL for a
	// line without exclusions); fold them back into one entry per line.
	var lastLine uuid.UUID
	for rows.Next() {
		var lineRaw, orderRaw, offeringRaw uuid.UUID
		var quantity int
		var ingredientRaw *uuid.UUID

		if err = rows.Scan(&lineRaw, &orderRaw, &offeringRaw, &quantity, &ingredientRaw); err != nil {
			return err
		}

		orderID, idErr := kernel.UUIDFromBytes(orderRaw[:])
		if idErr != nil {
			return idErr
		}
		offeringID, idErr := kernel.UUIDFromBytes(offeringRaw[:])
		if idErr != nil {
			return idErr
		}

		position, ok := index[orderID]
		if !ok {
			continue
		}

		lines := orders[position].Lines
		if len(lines) == 0 || lineRaw != lastLine {
			lines = append(lines, KitchenQueueLine{
				OfferingID:   offeringID,
				Quantity:     quantity,
				ExclusionIDs: make([]kernel.UUID, 0),
			})
		}
		if ingredientRaw != nil {
			ingredientID, exclErr := kernel.UUIDFromBytes((*ingredientRaw)[:])
			if exclErr != nil {
				return exclErr
			}
			lines[len(lines)-1].ExclusionIDs = append(lines[len(lines)-1].ExclusionIDs, ingredientID)
		}
		orders[position].Lines = lines

		lastLine = lineRaw
	}

	return rows.Err()
}
