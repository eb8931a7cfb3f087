// Package http exposes the storefront and admin API over echo.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"bakery/internal/core/application/orderstore"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	store *orderstore.Store

	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	editOrderHandler         commands.EditOrderCommandHandler
	removeOrderHandler       commands.RemoveOrderCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler

	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getOrdersSummaryHandler queries.GetOrdersSummaryQueryHandler
	getProductsHandler      queries.GetProductsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	store *orderstore.Store,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrdersSummaryHandler queries.GetOrdersSummaryQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
) *Server {
	return &Server{
		store:                    store,
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		editOrderHandler:         editOrderHandler,
		removeOrderHandler:       removeOrderHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getOrdersSummaryHandler:  getOrdersSummaryHandler,
		getProductsHandler:       getProductsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/summary", s.GetOrdersSummary)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.EditOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.GET("/products", s.GetProducts)

	api.GET("/admin/export", s.ExportOrders)
	api.POST("/admin/import", s.ImportOrders)
	api.POST("/admin/reset", s.FactoryReset)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := orderCommandInput(orderID, req, commands.NewPlaceOrderCommand)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to place order")
	}

	placed, ok := s.store.Get(orderID)
	if !ok {
		return internalError(ctx, "Failed to place order")
	}
	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// orderCommandInput converts a request body into a command using the
// given constructor, shared by create and edit.
func orderCommandInput[T any](
	orderID kernel.UUID,
	req OrderRequest,
	build func(kernel.UUID, string, string, string, order.Shipping, []commands.ItemInput, string) (T, error),
) (T, error) {
	var zero T

	method, err := order.ShippingMethodFromString(req.ShippingMethod)
	if err != nil {
		return zero, err
	}

	shipping, err := order.NewShipping(method, req.LockerID, req.LockerAddress)
	if err != nil {
		return zero, err
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, commands.ItemInput{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Notes:    it.Notes,
		})
	}

	return build(orderID, req.CustomerName, req.CustomerPhone, req.CustomerEmail,
		shipping, items, req.SpecialRequests)
}

// GetOrders handles GET /api/v1/orders - lists the session's orders,
// newest first, audit trail included.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders := s.store.Orders()
	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	o, ok := s.store.Get(id)
	if !ok {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status. An illegal
// transition returns 409 naming both endpoints of the rejected move.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req StatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		var invalid *order.InvalidTransitionError
		if errors.As(err, &invalid) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: fmt.Sprintf("Cannot change status from %s to %s", invalid.From, invalid.To),
			})
		}
		return internalError(ctx, "Failed to change order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EditOrder handles PUT /api/v1/orders/:id - replaces an order's
// details.
func (s *Server) EditOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req OrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := orderCommandInput(id, req, commands.NewEditOrderCommand)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.editOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to edit order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRemoveOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	result, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve active orders")
	}
	return ctx.JSON(http.StatusOK, result)
}

// GetOrdersSummary handles GET /api/v1/orders/summary.
func (s *Server) GetOrdersSummary(ctx echo.Context) error {
	result, err := s.getOrdersSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersSummaryQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders summary")
	}
	return ctx.JSON(http.StatusOK, result)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stock, err := product.StockStatusFromString(req.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid stock status: "+req.Stock)
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), req.Name, req.Description, req.Price, stock)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to create product")
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var req ProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stock, err := product.StockStatusFromString(req.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid stock status: "+req.Stock)
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	cmd, err := commands.NewUpdateProductCommand(id, req.Name, req.Description, req.Price, stock, isAvailable)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to update product")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products. The available=true query
// parameter hides unavailable products.
func (s *Server) GetProducts(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("available") == "true"

	result, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery(availableOnly))
	if err != nil {
		return internalError(ctx, "Failed to retrieve products")
	}
	return ctx.JSON(http.StatusOK, result)
}

// ExportOrders handles GET /api/v1/admin/export - downloads the whole
// order collection as a JSON backup, audit trails included.
func (s *Server) ExportOrders(ctx echo.Context) error {
	orders := s.store.Orders()
	backup := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		backup = append(backup, toOrderResponse(o))
	}
	return ctx.JSON(http.StatusOK, backup)
}

// ImportOrders handles POST /api/v1/admin/import - replaces the order
// collection with a previously exported backup. One malformed row
// rejects the whole import, so a restore is all-or-nothing.
func (s *Server) ImportOrders(ctx echo.Context) error {
	var backup []OrderResponse
	if err := ctx.Bind(&backup); err != nil {
		return badRequest(ctx, "Invalid backup payload")
	}

	orders := make([]*order.Order, 0, len(backup))
	for _, row := range backup {
		o, err := fromOrderResponse(row)
		if err != nil {
			return badRequest(ctx, "Invalid backup row: "+err.Error())
		}
		orders = append(orders, o)
	}

	s.store.Replace(ctx.Request().Context(), orders)
	return ctx.NoContent(http.StatusNoContent)
}

// FactoryReset handles POST /api/v1/admin/reset - wipes the order
// collection and its persisted snapshot.
func (s *Server) FactoryReset(ctx echo.Context) error {
	s.store.Replace(ctx.Request().Context(), nil)
	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
