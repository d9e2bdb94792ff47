package http

import "time"

// ErrorResponse is the uniform error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one requested menu position within an order.
type OrderItemRequest struct {
	OfferingID   string   `json:"offeringId"`
	Quantity     int      `json:"quantity"`
	ExclusionIDs []string `json:"exclusionIds,omitempty"`
}

// CreateOrderRequest is the body for placing a new order.
type CreateOrderRequest struct {
	ZoneID      string             `json:"zoneId"`
	MapsLink    string             `json:"mapsLink"`
	Latitude    *float64           `json:"latitude,omitempty"`
	Longitude   *float64           `json:"longitude,omitempty"`
	AddressNote string             `json:"addressNote,omitempty"`
	Payment     string             `json:"payment"`
	Items       []OrderItemRequest `json:"items"`
}

// CreateOrderResponse carries the id of the newly placed order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ChangeOrderStatusRequest is the body for driving an order through its
// lifecycle.
type ChangeOrderStatusRequest struct {
	Status           string `json:"status"`
	PaymentConfirmed bool   `json:"paymentConfirmed,omitempty"`
}

// ReassignCourierRequest is the body for putting a different courier on an
// order.
type ReassignCourierRequest struct {
	CourierID string `json:"courierId"`
}

// CustomerOrderResponse is one order in a customer's history.
type CustomerOrderResponse struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	Status     string    `json:"status"`
	Paid       bool      `json:"paid"`
	Total      string    `json:"total"`
	ItemsCount int       `json:"itemsCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TrackOrderResponse is the public view of an order looked up by token.
type TrackOrderResponse struct {
	Token          string     `json:"token"`
	Status         string     `json:"status"`
	CourierName    string     `json:"courierName,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	ConfirmedAt    *time.Time `json:"confirmedAt,omitempty"`
	KitchenReadyAt *time.Time `json:"kitchenReadyAt,omitempty"`
	DispatchedAt   *time.Time `json:"dispatchedAt,omitempty"`
	DeliveredAt    *time.Time `json:"deliveredAt,omitempty"`
}

// KitchenQueueLineResponse is one line of an order on the kitchen queue.
type KitchenQueueLineResponse struct {
	OfferingID   string   `json:"offeringId"`
	Quantity     int      `json:"quantity"`
	ExclusionIDs []string `json:"exclusionIds,omitempty"`
}

// KitchenQueueOrderResponse is one order on the kitchen queue.
type KitchenQueueOrderResponse struct {
	ID        string                     `json:"id"`
	Token     string                     `json:"token"`
	Status    string                     `json:"status"`
	CreatedAt time.Time                  `json:"createdAt"`
	Lines     []KitchenQueueLineResponse `json:"lines"`
}

// CourierDeliveryResponse is one active delivery on a courier's plate.
type CourierDeliveryResponse struct {
	ID          string    `json:"id"`
	Token       string    `json:"token"`
	Status      string    `json:"status"`
	MapsLink    string    `json:"mapsLink"`
	AddressNote string    `json:"addressNote,omitempty"`
	Payment     string    `json:"payment"`
	Paid        bool      `json:"paid"`
	Total       string    `json:"total"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NotificationResponse is one event delivered to a polling client.
type NotificationResponse struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// NotificationCountResponse carries the number of events since a cursor.
type NotificationCountResponse struct {
	Count int `json:"count"`
}
