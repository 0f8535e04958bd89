// Package http exposes the point of sale over a JSON API. The server is a
// thin layer: it parses requests into commands and queries, dispatches them,
// and maps domain errors to status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/driver"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/model/product"
	"pos/internal/core/domain/model/settings"
	"pos/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler           commands.CheckoutCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	registerDriverHandler     commands.RegisterDriverCommandHandler
	changeDriverStatusHandler commands.ChangeDriverStatusCommandHandler
	saveProductHandler        commands.SaveProductCommandHandler
	completeSetupHandler      commands.CompleteSetupCommandHandler

	// Query handlers
	getDeliveryOrdersHandler  queries.GetDeliveryOrdersQueryHandler
	getKitchenOrdersHandler   queries.GetKitchenOrdersQueryHandler
	getAllDriversHandler      queries.GetAllDriversQueryHandler
	getProductsHandler        queries.GetProductsQueryHandler
	getSalesReportHandler     queries.GetSalesReportQueryHandler
	getCompanySettingsHandler queries.GetCompanySettingsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	changeDriverStatusHandler commands.ChangeDriverStatusCommandHandler,
	saveProductHandler commands.SaveProductCommandHandler,
	completeSetupHandler commands.CompleteSetupCommandHandler,
	getDeliveryOrdersHandler queries.GetDeliveryOrdersQueryHandler,
	getKitchenOrdersHandler queries.GetKitchenOrdersQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getSalesReportHandler queries.GetSalesReportQueryHandler,
	getCompanySettingsHandler queries.GetCompanySettingsQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:           checkoutHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		registerDriverHandler:     registerDriverHandler,
		changeDriverStatusHandler: changeDriverStatusHandler,
		saveProductHandler:        saveProductHandler,
		completeSetupHandler:      completeSetupHandler,
		getDeliveryOrdersHandler:  getDeliveryOrdersHandler,
		getKitchenOrdersHandler:   getKitchenOrdersHandler,
		getAllDriversHandler:      getAllDriversHandler,
		getProductsHandler:        getProductsHandler,
		getSalesReportHandler:     getSalesReportHandler,
		getCompanySettingsHandler: getCompanySettingsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.Checkout)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.GET("/orders/delivery", s.GetDeliveryOrders)
	api.GET("/orders/kitchen", s.GetKitchenOrders)

	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.RegisterDriver)
	api.PATCH("/drivers/:id/status", s.ChangeDriverStatus)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.SaveProduct)

	api.GET("/reports/sales", s.GetSalesReport)

	api.GET("/settings", s.GetCompanySettings)
	api.POST("/setup", s.CompleteSetup)
}

// Error is the JSON error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CheckoutItemRequest is one cart line in a checkout request.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the body of POST /orders.
type CheckoutRequest struct {
	OrderType     string                `json:"order_type"`
	CustomerName  string                `json:"customer_name"`
	CustomerPhone string                `json:"customer_phone"`
	Address       string                `json:"address"`
	Items         []CheckoutItemRequest `json:"items"`
	PaymentMethod string                `json:"payment_method"`
}

// CheckoutResponse returns the identifier of the placed order.
type CheckoutResponse struct {
	OrderID string `json:"order_id"`
}

// Checkout handles POST /api/v1/orders - places a new order.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return badRequest(ctx, "Invalid order type: "+req.OrderType)
	}

	items := make([]commands.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.CheckoutItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	orderID := kernel.NewID()
	cmd, err := commands.NewCheckoutCommand(
		orderID, orderType,
		req.CustomerName, req.CustomerPhone, req.Address,
		items, req.PaymentMethod,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// UpdateOrderStatusRequest is the body of PATCH /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// to a new lifecycle status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliveryOrderResponse is one row of the delivery board.
type DeliveryOrderResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Address       string    `json:"address"`
	Total         int64     `json:"total"`
	Status        string    `json:"status"`
	DriverID      *string   `json:"driver_id,omitempty"`
	DriverName    *string   `json:"driver_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// GetDeliveryOrders handles GET /api/v1/orders/delivery - the delivery board.
func (s *Server) GetDeliveryOrders(ctx echo.Context) error {
	query := queries.NewGetDeliveryOrdersQuery()

	orders, err := s.getDeliveryOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve delivery orders")
	}

	response := make([]DeliveryOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = DeliveryOrderResponse{
			ID:            o.ID,
			CustomerName:  o.CustomerName,
			CustomerPhone: o.CustomerPhone,
			Address:       o.Address,
			Total:         o.Total,
			Status:        o.Status,
			DriverID:      o.DriverID,
			DriverName:    o.DriverName,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// KitchenItemResponse is one line item on a kitchen ticket.
type KitchenItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// KitchenOrderResponse is one ticket on the kitchen board.
type KitchenOrderResponse struct {
	ID        string                `json:"id"`
	Type      string                `json:"type"`
	Status    string                `json:"status"`
	Items     []KitchenItemResponse `json:"items"`
	CreatedAt time.Time             `json:"created_at"`
}

// GetKitchenOrders handles GET /api/v1/orders/kitchen - the kitchen board.
func (s *Server) GetKitchenOrders(ctx echo.Context) error {
	query := queries.NewGetKitchenOrdersQuery()

	tickets, err := s.getKitchenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve kitchen orders")
	}

	response := make([]KitchenOrderResponse, len(tickets))
	for i, ticket := range tickets {
		items := make([]KitchenItemResponse, len(ticket.Items))
		for j, item := range ticket.Items {
			items[j] = KitchenItemResponse{Name: item.Name, Quantity: item.Quantity}
		}
		response[i] = KitchenOrderResponse{
			ID:        ticket.ID,
			Type:      ticket.Type,
			Status:    ticket.Status,
			Items:     items,
			CreatedAt: ticket.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DriverResponse is one row of the driver roster.
type DriverResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	ActiveOrders   int        `json:"active_orders"`
	LastAssignedAt *time.Time `json:"last_assigned_at,omitempty"`
}

// GetDrivers handles GET /api/v1/drivers - retrieves the driver roster.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetAllDriversQuery()

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve drivers")
	}

	response := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = DriverResponse{
			ID:             d.ID,
			Name:           d.Name,
			Status:         d.Status,
			ActiveOrders:   d.ActiveOrders,
			LastAssignedAt: d.LastAssignedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterDriverRequest is the body of POST /drivers.
type RegisterDriverRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RegisterDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req RegisterDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.IDFromString(req.ID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewRegisterDriverCommand(driverID, req.Name)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangeDriverStatusRequest is the body of PATCH /drivers/:id/status.
type ChangeDriverStatusRequest struct {
	Status string `json:"status"`
}

// ChangeDriverStatus handles PATCH /api/v1/drivers/:id/status - toggles a
// driver's availability.
func (s *Server) ChangeDriverStatus(ctx echo.Context) error {
	var req ChangeDriverStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	status, err := driver.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewChangeDriverStatusCommand(driverID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeDriverStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProductResponse is one catalog row.
type ProductResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Price        int64      `json:"price"`
	Stock        int        `json:"stock"`
	Category     string     `json:"category"`
	BatchNo      *string    `json:"batch_no,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	Manufacturer *string    `json:"manufacturer,omitempty"`
	Brand        *string    `json:"brand,omitempty"`
	PartNumber   *string    `json:"part_number,omitempty"`
}

// GetProducts handles GET /api/v1/products - retrieves the catalog,
// optionally filtered by the name query parameter.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery(ctx.QueryParam("name"))

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve products")
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			Stock:        p.Stock,
			Category:     p.Category,
			BatchNo:      p.BatchNo,
			ExpiryDate:   p.ExpiryDate,
			Manufacturer: p.Manufacturer,
			Brand:        p.Brand,
			PartNumber:   p.PartNumber,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SaveProductRequest is the body of POST /products. An empty id creates a new
// product; an existing id edits it.
type SaveProductRequest struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Price        int64      `json:"price"`
	Stock        int        `json:"stock"`
	Category     string     `json:"category"`
	BatchNo      string     `json:"batch_no"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	Manufacturer string     `json:"manufacturer"`
	Brand        string     `json:"brand"`
	PartNumber   string     `json:"part_number"`
}

// SaveProductResponse returns the identifier of the saved product.
type SaveProductResponse struct {
	ProductID string `json:"product_id"`
}

// SaveProduct handles POST /api/v1/products - creates or edits a catalog
// product.
func (s *Server) SaveProduct(ctx echo.Context) error {
	var req SaveProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID := uuid.New()
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			return badRequest(ctx, "Invalid product id")
		}
		productID = parsed
	}

	cmd, err := commands.NewSaveProductCommand(
		productID, req.Name, req.Price, req.Stock, req.Category,
		product.Attributes{
			BatchNo:      req.BatchNo,
			ExpiryDate:   req.ExpiryDate,
			Manufacturer: req.Manufacturer,
			Brand:        req.Brand,
			PartNumber:   req.PartNumber,
		},
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.saveProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, SaveProductResponse{ProductID: productID.String()})
}

// SalesReportResponse is the sales summary.
type SalesReportResponse struct {
	TotalSales           int64   `json:"total_sales"`
	OrderCount           int     `json:"order_count"`
	AverageOrderValue    float64 `json:"average_order_value"`
	DeliverySharePercent float64 `json:"delivery_share_percent"`
}

// GetSalesReport handles GET /api/v1/reports/sales.
func (s *Server) GetSalesReport(ctx echo.Context) error {
	query := queries.NewGetSalesReportQuery()

	report, err := s.getSalesReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to compute sales report")
	}

	return ctx.JSON(http.StatusOK, SalesReportResponse{
		TotalSales:           report.TotalSales,
		OrderCount:           report.OrderCount,
		AverageOrderValue:    report.AverageOrderValue,
		DeliverySharePercent: report.DeliverySharePercent,
	})
}

// CompanySettingsResponse is the company profile.
type CompanySettingsResponse struct {
	CompanyName      string `json:"company_name"`
	AdminName        string `json:"admin_name"`
	Category         string `json:"category"`
	SupportsDelivery bool   `json:"supports_delivery"`
	SetupComplete    bool   `json:"setup_complete"`
}

// GetCompanySettings handles GET /api/v1/settings.
func (s *Server) GetCompanySettings(ctx echo.Context) error {
	query := queries.NewGetCompanySettingsQuery()

	profile, err := s.getCompanySettingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve settings")
	}

	return ctx.JSON(http.StatusOK, CompanySettingsResponse{
		CompanyName:      profile.CompanyName,
		AdminName:        profile.AdminName,
		Category:         profile.Category,
		SupportsDelivery: profile.SupportsDelivery,
		SetupComplete:    profile.SetupComplete,
	})
}

// CompleteSetupRequest is the body of POST /setup.
type CompleteSetupRequest struct {
	CompanyName string `json:"company_name"`
	AdminName   string `json:"admin_name"`
	Category    string `json:"category"`
}

// CompleteSetup handles POST /api/v1/setup - completes the setup wizard.
func (s *Server) CompleteSetup(ctx echo.Context) error {
	var req CompleteSetupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	category, err := settings.CategoryFromString(req.Category)
	if err != nil {
		return badRequest(ctx, "Invalid category: "+req.Category)
	}

	cmd, err := commands.NewCompleteSetupCommand(req.CompanyName, req.AdminName, category)
	if err != nil {
		return badRequest(ctx, "Invalid setup data: "+err.Error())
	}

	if handleErr := s.completeSetupHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// mapCommandError translates command handler failures to HTTP status codes.
// Domain validation failures are the caller's fault; unknown objects map to
// 404; everything else is a server error.
func mapCommandError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	var valueRequiredErr *errs.ValueIsRequiredError
	var valueInvalidErr *errs.ValueIsInvalidError
	if errors.As(err, &valueRequiredErr) || errors.As(err, &valueInvalidErr) ||
		errors.Is(err, order.ErrCartIsEmpty) ||
		errors.Is(err, order.ErrPhoneIsRequired) ||
		errors.Is(err, order.ErrAddressIsRequired) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
