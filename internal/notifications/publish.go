package notifications

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/role"
)

// PublishNewOrder announces a freshly placed order to the kitchen and
// admin feeds.
func (b *Bus) PublishNewOrder(orderID kernel.UUID, token order.Token, customerID kernel.UUID, itemsCount int, total kernel.Money) {
	payload := map[string]any{
		"order_id":    orderID.String(),
		"token":       token.String(),
		"customer_id": customerID.String(),
		"items_count": itemsCount,
		"total":       total.String(),
	}
	for _, r := range []role.Role{role.Kitchen, role.Admin} {
		b.Publish(Event{
			Type:       TypeNewOrder,
			TargetRole: r,
			Title:      "New order",
			Message:    fmt.Sprintf("Order %s placed with %d items", token, itemsCount),
			Payload:    payload,
		})
	}
}

// PublishStateChanged tells the customer their order moved to a new status.
func (b *Bus) PublishStateChanged(customerID, orderID kernel.UUID, token order.Token, status order.Status) {
	b.Publish(Event{
		Type:         TypeStateChanged,
		TargetRole:   role.Customer,
		TargetUserID: &customerID,
		Title:        "Order update",
		Message:      stateChangeMessage(token, status),
		Payload: map[string]any{
			"order_id": orderID.String(),
			"token":    token.String(),
			"status":   status.String(),
		},
	})
}

// PublishCourierAssigned tells the courier an order was put on their route.
func (b *Bus) PublishCourierAssigned(courierID, orderID kernel.UUID, token order.Token, address string) {
	b.Publish(Event{
		Type:         TypeCourierAssigned,
		TargetRole:   role.Courier,
		TargetUserID: &courierID,
		Title:        "Delivery assigned",
		Message:      fmt.Sprintf("Order %s was assigned to you", token),
		Payload: map[string]any{
			"order_id": orderID.String(),
			"token":    token.String(),
			"address":  address,
		},
	})
}

// PublishOrderReady tells the courier feed an order is ready for pickup.
func (b *Bus) PublishOrderReady(orderID kernel.UUID, token order.Token) {
	b.Publish(Event{
		Type:       TypeOrderReady,
		TargetRole: role.Courier,
		Title:      "Order ready",
		Message:    fmt.Sprintf("Order %s is ready for pickup", token),
		Payload: map[string]any{
			"order_id": orderID.String(),
			"token":    token.String(),
		},
	})
}

// PublishCourierEnRoute tells the customer their order left the restaurant.
func (b *Bus) PublishCourierEnRoute(customerID, orderID kernel.UUID, token order.Token, courierName string) {
	b.Publish(Event{
		Type:         TypeCourierEnRoute,
		TargetRole:   role.Customer,
		TargetUserID: &customerID,
		Title:        "On the way",
		Message:      fmt.Sprintf("%s is on the way with order %s", courierName, token),
		Payload: map[string]any{
			"order_id": orderID.String(),
			"token":    token.String(),
			"courier":  courierName,
		},
	})
}

// PublishCourierArrived tells the customer their courier is at the door.
func (b *Bus) PublishCourierArrived(customerID, orderID kernel.UUID, token order.Token, courierName string) {
	b.Publish(Event{
		Type:         TypeCourierArrived,
		TargetRole:   role.Customer,
		TargetUserID: &customerID,
		Title:        "Courier arrived",
		Message:      fmt.Sprintf("%s arrived with order %s", courierName, token),
		Payload: map[string]any{
			"order_id": orderID.String(),
			"token":    token.String(),
			"courier":  courierName,
		},
	})
}

func stateChangeMessage(token order.Token, status order.Status) string {
	switch status {
	case order.Confirmed:
		return fmt.Sprintf("Order %s was confirmed", token)
	case order.InKitchen:
		return fmt.Sprintf("Order %s is being prepared", token)
	case order.ReadyForPickup:
		return fmt.Sprintf("Order %s is ready and waiting for a courier", token)
	case order.OutForDelivery:
		return fmt.Sprintf("Order %s is out for delivery", token)
	case order.Delivered:
		return fmt.Sprintf("Order %s was delivered", token)
	case order.Cancelled:
		return fmt.Sprintf("Order %s was cancelled", token)
	default:
		return fmt.Sprintf("Order %s changed status to %s", token, status)
	}
}
