package notifications

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/role"
)

// EventType names the kind of lifecycle event an Event carries.
type EventType string

const (
	// TypeNewOrder announces a freshly placed order to kitchen and admin.
	TypeNewOrder EventType = "NEW_ORDER"

	// TypeStateChanged tells a customer their order moved to a new status.
	TypeStateChanged EventType = "STATE_CHANGED"

	// TypeCourierAssigned tells a courier an order was assigned to them.
	TypeCourierAssigned EventType = "COURIER_ASSIGNED"

	// TypeOrderReady tells couriers an order is ready for pickup.
	TypeOrderReady EventType = "ORDER_READY"

	// TypeCourierEnRoute tells a customer their courier collected the order.
	TypeCourierEnRoute EventType = "COURIER_EN_ROUTE"

	// TypeCourierArrived tells a customer their courier is at the door.
	TypeCourierArrived EventType = "COURIER_ARRIVED"
)

// Event is a single notification. TargetUserID nil means a role-wide
// broadcast; non-nil means a personal event visible only to that user.
type Event struct {
	ID           string
	Type         EventType
	TargetRole   role.Role
	TargetUserID *kernel.UUID
	Title        string
	Message      string
	Payload      map[string]any
	CreatedAt    time.Time
}
