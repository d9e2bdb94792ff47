package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/role"
	"restaurant/internal/notifications"
)

// Actor identity travels in headers; the gateway in front of this service
// authenticates and stamps them.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

const defaultNotificationLimit = 50

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	reassignCourierHandler   commands.ReassignCourierCommandHandler
	notifyArrivalHandler     commands.NotifyArrivalCommandHandler

	// Query handlers
	getCustomerOrdersHandler    queries.GetCustomerOrdersQueryHandler
	trackOrderHandler           queries.TrackOrderQueryHandler
	getKitchenQueueHandler      queries.GetKitchenQueueQueryHandler
	getCourierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler

	bus *notifications.Bus
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	reassignCourierHandler commands.ReassignCourierCommandHandler,
	notifyArrivalHandler commands.NotifyArrivalCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getKitchenQueueHandler queries.GetKitchenQueueQueryHandler,
	getCourierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler,
	bus *notifications.Bus,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		cancelOrderHandler:          cancelOrderHandler,
		reassignCourierHandler:      reassignCourierHandler,
		notifyArrivalHandler:        notifyArrivalHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		trackOrderHandler:           trackOrderHandler,
		getKitchenQueueHandler:      getKitchenQueueHandler,
		getCourierDeliveriesHandler: getCourierDeliveriesHandler,
		bus:                         bus,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:orderId", s.CancelOrder)
	api.PUT("/orders/:orderId/courier", s.ReassignCourier)
	api.POST("/orders/:orderId/arrival", s.NotifyArrival)

	api.GET("/orders/track/:token", s.TrackOrder)
	api.GET("/customers/me/orders", s.GetMyOrders)
	api.GET("/kitchen/queue", s.GetKitchenQueue)
	api.GET("/couriers/me/deliveries", s.GetMyDeliveries)

	api.GET("/notifications", s.GetNotifications)
	api.GET("/notifications/count", s.CountNotifications)
}

// actorFromHeaders resolves the acting user from the identity headers.
func actorFromHeaders(ctx echo.Context) (kernel.UUID, role.Role, error) {
	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return kernel.UUID{}, role.Unknown, err
	}

	actorRole, err := role.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return kernel.UUID{}, role.Unknown, err
	}

	return actorID, actorRole, nil
}

// CreateOrder handles POST /api/v1/orders - places a new order for the
// acting customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor identity: "+err.Error())
	}
	if actorRole != role.Customer {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "only customers can place orders",
		})
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	zoneID, err := kernel.UUIDFromString(req.ZoneID)
	if err != nil {
		return badRequest(ctx, "invalid zone id: "+err.Error())
	}

	payment, err := order.PaymentMethodFromString(req.Payment)
	if err != nil {
		return badRequest(ctx, "invalid payment method: "+err.Error())
	}

	items, err := itemsFromRequest(req.Items)
	if err != nil {
		return badRequest(ctx, "invalid items: "+err.Error())
	}

	destination := order.NewDestination(
		req.MapsLink,
		decimalFromFloat(req.Latitude),
		decimalFromFloat(req.Longitude),
		req.AddressNote,
	)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actorID, zoneID, destination, payment, items)
	if err != nil {
		return badRequest(ctx, "invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderId/status - drives an
// order through its lifecycle on behalf of the acting user.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actorID, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor identity: "+err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actorID, actorRole, target, req.PaymentConfirmed)
	if err != nil {
		return badRequest(ctx, "invalid status change: "+err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles DELETE /api/v1/orders/:orderId - a customer withdraws
// their own order while it is still pending.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actorID, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor identity: "+err.Error())
	}
	if actorRole != role.Customer {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "only customers can withdraw orders",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, "invalid withdrawal: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReassignCourier handles PUT /api/v1/orders/:orderId/courier - an admin
// puts a different courier on an order.
func (s *Server) ReassignCourier(ctx echo.Context) error {
	_, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor identity: "+err.Error())
	}
	if actorRole != role.Admin {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "only admins can reassign couriers",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	var req ReassignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier id: "+err.Error())
	}

	cmd, err := commands.NewReassignCourierCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, "invalid reassignment: "+err.Error())
	}

	if err = s.reassignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NotifyArrival handles POST /api/v1/orders/:orderId/arrival - the assigned
// courier pings the customer that they are at the door.
func (s *Server) NotifyArrival(ctx echo.Context) error {
	actorID, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor identity: "+err.Error())
	}
	if actorRole != role.Courier {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "only couriers can announce arrival",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewNotifyArrivalCommand(orderID, actorID)
	if err != nil {
		return badRequest(ctx, "invalid arrival ping: "+err.Error())
	}

	if err = s.notifyArrivalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMyOrders handles GET /api/v1/customers/me/orders - the acting
// customer's order history, newest first.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actorID, _, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor identity: "+err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(actorID)
	if err != nil {
		return badRequest(ctx, "invalid query: "+err.Error())
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	response := make([]CustomerOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = CustomerOrderResponse{
			ID:         o.ID.String(),
			Token:      o.Token,
			Status:     o.Status,
			Paid:       o.Paid,
			Total:      o.Total.StringFixed(2),
			ItemsCount: o.ItemsCount,
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackOrder handles GET /api/v1/orders/track/:token - public order
// progress lookup by pickup token, no identity required.
func (s *Server) TrackOrder(ctx echo.Context) error {
	token, err := order.NewToken(ctx.Param("token"))
	if err != nil {
		return badRequest(ctx, "invalid token: "+err.Error())
	}

	query, err := queries.NewTrackOrderQuery(token)
	if err != nil {
		return badRequest(ctx, "invalid query: "+err.Error())
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackOrderResponse{
		Token:          result.Token,
		Status:         result.Status,
		CourierName:    result.CourierName,
		CreatedAt:      result.CreatedAt,
		ConfirmedAt:    result.ConfirmedAt,
		KitchenReadyAt: result.KitchenReadyAt,
		DispatchedAt:   result.DispatchedAt,
		DeliveredAt:    result.DeliveredAt,
	})
}

// GetKitchenQueue handles GET /api/v1/kitchen/queue - orders awaiting or
// under preparation, oldest first.
func (s *Server) GetKitchenQueue(ctx echo.Context) error {
	_, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor identity: "+err.Error())
	}
	if actorRole != role.Kitchen && actorRole != role.Admin {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "kitchen queue is staff only",
		})
	}

	result, err := s.getKitchenQueueHandler.Handle(ctx.Request().Context(), queries.NewGetKitchenQueueQuery())
	if err != nil {
		return jsonError(ctx, err)
	}

	response := make([]KitchenQueueOrderResponse, len(result))
	for i, o := range result {
		lines := make([]KitchenQueueLineResponse, len(o.Lines))
		for j, line := range o.Lines {
			exclusions := make([]string, len(line.ExclusionIDs))
			for k, id := range line.ExclusionIDs {
				exclusions[k] = id.String()
			}
			lines[j] = KitchenQueueLineResponse{
				OfferingID:   line.OfferingID.String(),
				Quantity:     line.Quantity,
				ExclusionIDs: exclusions,
			}
		}
		response[i] = KitchenQueueOrderResponse{
			ID:        o.ID.String(),
			Token:     o.Token,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
			Lines:     lines,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyDeliveries handles GET /api/v1/couriers/me/deliveries - the acting
// courier's active deliveries.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	actorID, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor identity: "+err.Error())
	}
	if actorRole != role.Courier {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "deliveries are courier only",
		})
	}

	query, err := queries.NewGetCourierDeliveriesQuery(actorID)
	if err != nil {
		return badRequest(ctx, "invalid query: "+err.Error())
	}

	result, err := s.getCourierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	response := make([]CourierDeliveryResponse, len(result))
	for i, o := range result {
		response[i] = CourierDeliveryResponse{
			ID:          o.ID.String(),
			Token:       o.Token,
			Status:      o.Status,
			MapsLink:    o.MapsLink,
			AddressNote: o.AddressNote,
			Payment:     o.Payment,
			Paid:        o.Paid,
			Total:       o.Total.StringFixed(2),
			CreatedAt:   o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNotifications handles GET /api/v1/notifications - polls events
// visible to the acting user, newest first. Supports since (RFC 3339),
// types (comma separated) and limit query parameters.
func (s *Server) GetNotifications(ctx echo.Context) error {
	actorID, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor identity: "+err.Error())
	}

	since, err := sinceParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid since: "+err.Error())
	}

	limit := defaultNotificationLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return badRequest(ctx, "invalid limit")
		}
	}

	var types []notifications.EventType
	if raw := ctx.QueryParam("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t != "" {
				types = append(types, notifications.EventType(t))
			}
		}
	}

	events := s.bus.Query(actorRole, actorID, since, types, limit)

	response := make([]NotificationResponse, len(events))
	for i, event := range events {
		response[i] = NotificationResponse{
			ID:        event.ID,
			Type:      string(event.Type),
			Title:     event.Title,
			Message:   event.Message,
			Payload:   event.Payload,
			CreatedAt: event.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CountNotifications handles GET /api/v1/notifications/count - a cheap
// badge counter for polling clients.
func (s *Server) CountNotifications(ctx echo.Context) error {
	actorID, actorRole, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, "invalid actor identity: "+err.Error())
	}

	since, err := sinceParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid since: "+err.Error())
	}

	count := s.bus.CountSince(actorRole, actorID, since)

	return ctx.JSON(http.StatusOK, NotificationCountResponse{Count: count})
}

func sinceParam(ctx echo.Context) (time.Time, error) {
	raw := ctx.QueryParam("since")
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func itemsFromRequest(reqItems []OrderItemRequest) ([]commands.OrderItem, error) {
	items := make([]commands.OrderItem, len(reqItems))
	for i, item := range reqItems {
		offeringID, err := kernel.UUIDFromString(item.OfferingID)
		if err != nil {
			return nil, err
		}

		exclusions := make([]kernel.UUID, len(item.ExclusionIDs))
		for j, raw := range item.ExclusionIDs {
			exclusions[j], err = kernel.UUIDFromString(raw)
			if err != nil {
				return nil, err
			}
		}

		items[i] = commands.OrderItem{
			OfferingID:   offeringID,
			Quantity:     item.Quantity,
			ExclusionIDs: exclusions,
		}
	}
	return items, nil
}

func decimalFromFloat(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
