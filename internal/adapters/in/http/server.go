// Package http exposes the portal's REST API over echo. Handlers translate
// JSON payloads into commands and queries; all decisions live in the
// application and domain layers.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/application/usecases/commands"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/application/usecases/queries"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/shipment"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/services"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for date-precision fields.
const dateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	changeDeliveryDateHandler commands.ChangeDeliveryDateCommandHandler
	acceptProposalHandler     commands.AcceptShipmentProposalCommandHandler
	dispatchShipmentHandler   commands.DispatchShipmentCommandHandler
	syncHandler               commands.SyncPurchaseOrdersCommandHandler

	// Query handlers
	getPurchaseOrdersHandler queries.GetPurchaseOrdersQueryHandler
	getShipmentsHandler      queries.GetShipmentsQueryHandler
	getShipmentPlanHandler   queries.GetShipmentPlanQueryHandler
	getSupplierScoresHandler queries.GetSupplierScoresQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeDeliveryDateHandler commands.ChangeDeliveryDateCommandHandler,
	acceptProposalHandler commands.AcceptShipmentProposalCommandHandler,
	dispatchShipmentHandler commands.DispatchShipmentCommandHandler,
	syncHandler commands.SyncPurchaseOrdersCommandHandler,
	getPurchaseOrdersHandler queries.GetPurchaseOrdersQueryHandler,
	getShipmentsHandler queries.GetShipmentsQueryHandler,
	getShipmentPlanHandler queries.GetShipmentPlanQueryHandler,
	getSupplierScoresHandler queries.GetSupplierScoresQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		changeDeliveryDateHandler: changeDeliveryDateHandler,
		acceptProposalHandler:     acceptProposalHandler,
		dispatchShipmentHandler:   dispatchShipmentHandler,
		syncHandler:               syncHandler,
		getPurchaseOrdersHandler:  getPurchaseOrdersHandler,
		getShipmentsHandler:       getShipmentsHandler,
		getShipmentPlanHandler:    getShipmentPlanHandler,
		getSupplierScoresHandler:  getSupplierScoresHandler,
	}
}

// RegisterRoutes binds all API routes onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/purchase-orders", s.GetPurchaseOrders)
	api.POST("/purchase-orders", s.CreatePurchaseOrder)
	api.PATCH("/purchase-orders/:poNumber/delivery-date", s.ChangeDeliveryDate)
	api.POST("/optimize", s.OptimizeShipmentPlan)
	api.GET("/shipments", s.GetShipments)
	api.POST("/shipments", s.AcceptShipmentProposal)
	api.POST("/shipments/:id/dispatch", s.DispatchShipment)
	api.GET("/supplier-performance", s.GetSupplierPerformance)
	api.POST("/sync", s.SyncPurchaseOrders)
}

// Error is the JSON error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItem is one purchase order line on the wire.
type OrderItem struct {
	ItemCode      string  `json:"item_code"`
	ItemName      string  `json:"item_name"`
	HSNCode       string  `json:"hsn_code"`
	UOM           string  `json:"uom"`
	Quantity      int     `json:"quantity"`
	Rate          float64 `json:"rate"`
	WeightPerUnit float64 `json:"weight_per_unit"`
	CBMPerUnit    float64 `json:"cbm_per_unit"`
}

// NewPurchaseOrder is the POST /purchase-orders request body.
type NewPurchaseOrder struct {
	PONumber     string      `json:"po_number"`
	OrderDate    string      `json:"order_date"`
	SupplierName string      `json:"supplier_name"`
	Origin       string      `json:"origin"`
	DropLocation string      `json:"drop_location"`
	Items        []OrderItem `json:"items"`
}

// PurchaseOrder is one purchase order in list responses.
type PurchaseOrder struct {
	ID                   string  `json:"id"`
	PONumber             string  `json:"po_number"`
	OrderDate            string  `json:"order_date"`
	ExpectedDeliveryDate *string `json:"expected_delivery_date"`
	DateChangeCount      int     `json:"date_change_count"`
	SupplierName         string  `json:"supplier_name"`
	Origin               string  `json:"origin"`
	DropLocation         string  `json:"drop_location"`
	Status               string  `json:"status"`
	ItemCount            int     `json:"item_count"`
}

// DeliveryDateChange is the PATCH delivery-date request body.
type DeliveryDateChange struct {
	NewDeliveryDate string `json:"new_delivery_date"`
}

// DeliveryDateChangeResult reports the outcome of a delivery date request.
type DeliveryDateChangeResult struct {
	Cancelled bool   `json:"cancelled"`
	NewCount  int    `json:"new_count"`
	Remaining int    `json:"remaining"`
	Message   string `json:"message"`
}

// ShipmentProposal is one planner proposal on the wire, both as the
// /optimize response element and the POST /shipments request body.
type ShipmentProposal struct {
	DispatchDate        string   `json:"dispatch_date"`
	ExpectedArrivalDate string   `json:"expected_arrival_date"`
	DistanceKm          int      `json:"distance_km"`
	Vehicle             string   `json:"vehicle"`
	TotalWeight         float64  `json:"total_weight"`
	TotalCBM            float64  `json:"total_cbm"`
	Recommendation      string   `json:"recommendation"`
	Origin              string   `json:"origin"`
	Route               string   `json:"route"`
	POIDs               []string `json:"po_ids"`
	Status              string   `json:"status"`
}

// Shipment is one booked shipment in list responses.
type Shipment struct {
	ID                  string  `json:"id"`
	DispatchDate        string  `json:"dispatch_date"`
	ExpectedArrivalDate string  `json:"expected_arrival_date"`
	DistanceKm          int     `json:"distance_km"`
	Vehicle             string  `json:"vehicle"`
	TotalWeight         float64 `json:"total_weight"`
	TotalCBM            float64 `json:"total_cbm"`
	Recommendation      string  `json:"recommendation"`
	Origin              string  `json:"origin"`
	Route               string  `json:"route"`
	Status              string  `json:"status"`
	OrderCount          int     `json:"order_count"`
}

// CreatedShipment is the POST /shipments response body.
type CreatedShipment struct {
	ID string `json:"id"`
}

// SupplierScore is one supplier's scorecard. The supplier-performance
// response keys these by supplier name.
type SupplierScore struct {
	RawScore        int    `json:"raw_score"`
	Grade           string `json:"grade"`
	Reliability     int    `json:"reliability"`
	TotalOrders     int    `json:"total_orders"`
	DateChanges     int    `json:"date_changes"`
	CancelledOrders int    `json:"cancelled_orders"`
}

// SyncSummary is the POST /sync response body.
type SyncSummary struct {
	Fetched   int `json:"fetched"`
	Created   int `json:"created"`
	Refreshed int `json:"refreshed"`
	Skipped   int `json:"skipped"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetPurchaseOrders handles GET /api/v1/purchase-orders. The optional
// "status" query parameter restricts the list to one lifecycle state.
func (s *Server) GetPurchaseOrders(ctx echo.Context) error {
	query, err := queries.NewGetPurchaseOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status filter: " + err.Error(),
		})
	}

	orders, err := s.getPurchaseOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve purchase orders",
		})
	}

	response := make([]PurchaseOrder, len(orders))
	for i, po := range orders {
		response[i] = PurchaseOrder{
			ID:              po.ID.String(),
			PONumber:        po.PONumber,
			OrderDate:       po.OrderDate.Format(dateLayout),
			DateChangeCount: po.DateChangeCount,
			SupplierName:    po.SupplierName,
			Origin:          po.Origin,
			DropLocation:    po.DropLocation,
			Status:          po.Status,
			ItemCount:       po.ItemCount,
		}
		if po.ExpectedDeliveryDate != nil {
			date := po.ExpectedDeliveryDate.Format(dateLayout)
			response[i].ExpectedDeliveryDate = &date
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var newOrder NewPurchaseOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderDate, err := time.Parse(dateLayout, newOrder.OrderDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order date, expected YYYY-MM-DD",
		})
	}

	items := make([]commands.OrderItemInput, len(newOrder.Items))
	for i, item := range newOrder.Items {
		items[i] = commands.OrderItemInput{
			ItemCode:      item.ItemCode,
			ItemName:      item.ItemName,
			HSNCode:       item.HSNCode,
			UOM:           item.UOM,
			Quantity:      item.Quantity,
			Rate:          item.Rate,
			WeightPerUnit: item.WeightPerUnit,
			CBMPerUnit:    item.CBMPerUnit,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		newOrder.PONumber,
		orderDate,
		newOrder.SupplierName,
		newOrder.Origin,
		newOrder.DropLocation,
		items,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		// PO numbers are unique; a second registration collides
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create purchase order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangeDeliveryDate handles PATCH /api/v1/purchase-orders/:poNumber/delivery-date.
// A request past the change allowance cancels the order; the response body
// reports which outcome applied.
func (s *Server) ChangeDeliveryDate(ctx echo.Context) error {
	var change DeliveryDateChange
	if err := ctx.Bind(&change); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newDate, err := time.Parse(dateLayout, change.NewDeliveryDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery date, expected YYYY-MM-DD",
		})
	}

	cmd, err := commands.NewChangeDeliveryDateCommand(ctx.Param("poNumber"), newDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery date change: " + err.Error(),
		})
	}

	result, err := s.changeDeliveryDateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Purchase order not found",
			})
		}
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to change delivery date: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, DeliveryDateChangeResult{
		Cancelled: result.Cancelled,
		NewCount:  result.NewCount,
		Remaining: result.Remaining,
		Message:   result.Message,
	})
}

// OptimizeShipmentPlan handles POST /api/v1/optimize - runs the consolidation
// planner over the pending backlog. Read-only; proposals are committed via
// POST /api/v1/shipments.
func (s *Server) OptimizeShipmentPlan(ctx echo.Context) error {
	query := queries.NewGetShipmentPlanQuery()

	proposals, err := s.getShipmentPlanHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to plan shipments",
		})
	}

	response := make([]ShipmentProposal, len(proposals))
	for i, proposal := range proposals {
		poIDs := make([]string, len(proposal.POIDs))
		for j, poID := range proposal.POIDs {
			poIDs[j] = poID.String()
		}

		response[i] = ShipmentProposal{
			DispatchDate:        proposal.DispatchDate.Format(dateLayout),
			ExpectedArrivalDate: proposal.ExpectedArrivalDate.Format(dateLayout),
			DistanceKm:          proposal.DistanceKm,
			Vehicle:             proposal.Vehicle.String(),
			TotalWeight:         proposal.TotalWeight,
			TotalCBM:            proposal.TotalCBM,
			Recommendation:      proposal.Recommendation,
			Origin:              proposal.Origin.Name(),
			Route:               proposal.Route,
			POIDs:               poIDs,
			Status:              proposal.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	query := queries.NewGetShipmentsQuery()

	shipments, err := s.getShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipments",
		})
	}

	response := make([]Shipment, len(shipments))
	for i, sh := range shipments {
		response[i] = Shipment{
			ID:                  sh.ID.String(),
			DispatchDate:        sh.DispatchDate.Format(dateLayout),
			ExpectedArrivalDate: sh.ExpectedArrivalDate.Format(dateLayout),
			DistanceKm:          sh.DistanceKm,
			Vehicle:             sh.Vehicle,
			TotalWeight:         sh.TotalWeight,
			TotalCBM:            sh.TotalCBM,
			Recommendation:      sh.Recommendation,
			Origin:              sh.Origin,
			Route:               sh.Route,
			Status:              sh.Status,
			OrderCount:          sh.OrderCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptShipmentProposal handles POST /api/v1/shipments - commits one planner
// proposal: the shipment is booked and every member order is consolidated,
// atomically.
func (s *Server) AcceptShipmentProposal(ctx echo.Context) error {
	var accepted ShipmentProposal
	if err := ctx.Bind(&accepted); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	proposal, err := s.mapProposal(accepted)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment proposal: " + err.Error(),
		})
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewAcceptShipmentProposalCommand(shipmentID, proposal)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment proposal: " + err.Error(),
		})
	}

	if handleErr := s.acceptProposalHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Member purchase order not found",
			})
		}
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to accept shipment proposal: " + handleErr.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, CreatedShipment{ID: shipmentID.String()})
}

// DispatchShipment handles POST /api/v1/shipments/:id/dispatch.
func (s *Server) DispatchShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	cmd, err := commands.NewDispatchShipmentCommand(shipmentID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid dispatch request: " + err.Error(),
		})
	}

	if handleErr := s.dispatchShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Shipment not found",
			})
		}
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to dispatch shipment: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusOK)
}

// GetSupplierPerformance handles GET /api/v1/supplier-performance.
// The payload is an object keyed by supplier name.
func (s *Server) GetSupplierPerformance(ctx echo.Context) error {
	query := queries.NewGetSupplierScoresQuery()

	scores, err := s.getSupplierScoresHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to score suppliers",
		})
	}

	response := make(map[string]SupplierScore, len(scores))
	for _, score := range scores {
		response[score.SupplierName] = SupplierScore{
			RawScore:        score.RawScore,
			Grade:           score.Grade,
			Reliability:     score.Reliability,
			TotalOrders:     score.TotalOrders,
			DateChanges:     score.DateChanges,
			CancelledOrders: score.CancelledOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SyncPurchaseOrders handles POST /api/v1/sync - triggers one reconciliation
// run against the upstream ERP.
func (s *Server) SyncPurchaseOrders(ctx echo.Context) error {
	cmd := commands.NewSyncPurchaseOrdersCommand()

	result, err := s.syncHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Failed to sync purchase orders: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, SyncSummary{
		Fetched:   result.Fetched,
		Created:   result.Created,
		Refreshed: result.Refreshed,
		Skipped:   result.Skipped,
	})
}

func (s *Server) mapProposal(accepted ShipmentProposal) (services.ShipmentProposal, error) {
	dispatchDate, err := time.Parse(dateLayout, accepted.DispatchDate)
	if err != nil {
		return services.ShipmentProposal{}, errs.NewValueIsInvalidErrorWithCause("dispatch date", err)
	}

	arrivalDate, err := time.Parse(dateLayout, accepted.ExpectedArrivalDate)
	if err != nil {
		return services.ShipmentProposal{}, errs.NewValueIsInvalidErrorWithCause("expected arrival date", err)
	}

	vehicle, err := shipment.VehicleFromString(accepted.Vehicle)
	if err != nil {
		return services.ShipmentProposal{}, err
	}

	poIDs := make([]kernel.UUID, len(accepted.POIDs))
	for i, raw := range accepted.POIDs {
		poID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return services.ShipmentProposal{}, idErr
		}
		poIDs[i] = poID
	}

	return services.ShipmentProposal{
		DispatchDate:        dispatchDate,
		ExpectedArrivalDate: arrivalDate,
		DistanceKm:          accepted.DistanceKm,
		Vehicle:             vehicle,
		TotalWeight:         accepted.TotalWeight,
		TotalCBM:            accepted.TotalCBM,
		Recommendation:      accepted.Recommendation,
		Origin:              kernel.NewLocation(accepted.Origin),
		Route:               accepted.Route,
		POIDs:               poIDs,
		Status:              services.ProposalStatusProposed,
	}, nil
}
