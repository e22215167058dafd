// Package http exposes the order intake and dispatch endpoints.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/application/usecases/commands"
	"github.com/Gmpatem/campus-cart-v2/internal/core/application/usecases/queries"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/kernel"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/order"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for submission intake and dispatch queries.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	processSubmissionHandler commands.ProcessSubmissionCommandHandler
	getDailyDispatchHandler  queries.GetDailyDispatchQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processSubmissionHandler commands.ProcessSubmissionCommandHandler,
	getDailyDispatchHandler queries.GetDailyDispatchQueryHandler,
) *Server {
	return &Server{
		processSubmissionHandler: processSubmissionHandler,
		getDailyDispatchHandler:  getDailyDispatchHandler,
	}
}

// RegisterRoutes mounts the API endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/submissions", s.CreateSubmission)
	e.GET("/api/v1/dispatch", s.GetDailyDispatch)
}

// SubmissionRequest is the JSON body of POST /api/v1/submissions: one raw
// form row. SubmittedAt is optional; absent or unparseable values fall back
// to the receive time.
type SubmissionRequest struct {
	SubmittedAt   string `json:"submitted_at"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Location      string `json:"location"`
	Room          string `json:"room"`
	DeclaredType  string `json:"declared_type"`
	Field1        string `json:"field1"`
	Field2        string `json:"field2"`
	Store         string `json:"store"`
	PaymentMethod string `json:"payment_method"`
	PaymentRef    string `json:"payment_ref"`
	TermsAccepted string `json:"terms_accepted"`
}

// LineItemResponse is one parsed line item in an order response.
type LineItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// OrderResponse describes one interpreted order.
type OrderResponse struct {
	ID       string             `json:"id"`
	Customer string             `json:"customer"`
	PlacedAt time.Time          `json:"placed_at"`
	Store    string             `json:"store"`
	Source   string             `json:"source"`
	Format   string             `json:"format"`
	Items    []LineItemResponse `json:"items"`
	Subtotal string             `json:"subtotal"`
	Fee      string             `json:"fee"`
	Total    string             `json:"total"`
}

// RejectionResponse is returned when a submission fails interpretation.
// Reason is the machine-readable failure kind; Message is the correction
// text shown to the submitter.
type RejectionResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StoreGroupResponse groups a store's orders within the dispatch response.
type StoreGroupResponse struct {
	Store  string          `json:"store"`
	Orders []OrderResponse `json:"orders"`
}

// DispatchResponse is the JSON body of GET /api/v1/dispatch.
type DispatchResponse struct {
	Day          string               `json:"day"`
	TotalOrders  int                  `json:"total_orders"`
	TotalRevenue string               `json:"total_revenue"`
	TotalFees    string               `json:"total_fees"`
	Skipped      int                  `json:"skipped"`
	Orders       []OrderResponse      `json:"orders"`
	Stores       []StoreGroupResponse `json:"stores"`
}

// CreateSubmission handles POST /api/v1/submissions - processes one raw form row.
// Returns 201 with the interpreted order, or 422 with a correction message
// when the row cannot become an order. The raw row is stored either way.
func (s *Server) CreateSubmission(ctx echo.Context) error {
	var req SubmissionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	record := submission.Submission{
		SubmittedAt:   parseSubmittedAt(req.SubmittedAt),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Location:      req.Location,
		Room:          req.Room,
		DeclaredType:  req.DeclaredType,
		Field1:        req.Field1,
		Field2:        req.Field2,
		Store:         req.Store,
		PaymentMethod: req.PaymentMethod,
		PaymentRef:    req.PaymentRef,
		TermsAccepted: req.TermsAccepted,
	}

	cmd, err := commands.NewProcessSubmissionCommand(kernel.NewUUID(), record)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process submission",
		})
	}

	built, err := s.processSubmissionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.JSON(http.StatusUnprocessableEntity, rejectionFor(validationErr))
		}

		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process submission",
		})
	}

	return ctx.JSON(http.StatusCreated, orderResponse(built))
}

// GetDailyDispatch handles GET /api/v1/dispatch?date=YYYY-MM-DD - returns the
// aggregated dispatch summary for the given day (today when omitted).
func (s *Server) GetDailyDispatch(ctx echo.Context) error {
	day, err := dispatchDay(ctx.QueryParam("date"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid date, expected YYYY-MM-DD",
		})
	}

	query, err := queries.NewGetDailyDispatchQuery(day)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid dispatch query: " + err.Error(),
		})
	}

	summary, err := s.getDailyDispatchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build dispatch summary",
		})
	}

	response := DispatchResponse{
		Day:          query.Day().Format("2006-01-02"),
		TotalOrders:  summary.TotalOrders,
		TotalRevenue: summary.TotalRevenue.String(),
		TotalFees:    summary.TotalFees.String(),
		Skipped:      summary.Skipped,
		Orders:       make([]OrderResponse, 0, len(summary.Orders)),
		Stores:       make([]StoreGroupResponse, 0, len(summary.Stores)),
	}

	for _, o := range summary.OrdersByTime() {
		response.Orders = append(response.Orders, orderResponse(o))
	}

	for _, group := range summary.Stores {
		groupResponse := StoreGroupResponse{
			Store:  group.Store,
			Orders: make([]OrderResponse, 0, len(group.Orders)),
		}
		for _, o := range group.Orders {
			groupResponse.Orders = append(groupResponse.Orders, orderResponse(o))
		}
		response.Stores = append(response.Stores, groupResponse)
	}

	return ctx.JSON(http.StatusOK, response)
}

// rejectionFor maps a validation failure to its correction template. Parse
// failures get format-specific guidance.
func rejectionFor(validationErr *services.ValidationError) RejectionResponse {
	switch validationErr.Kind {
	case services.IncompleteSubmission:
		return RejectionResponse{
			Reason:  validationErr.Kind.String(),
			Message: "Please accept the terms and provide your name and a valid email address.",
		}
	case services.NoOrderProvided:
		return RejectionResponse{
			Reason:  validationErr.Kind.String(),
			Message: "No order text was provided. Fill in one of the order fields.",
		}
	case services.Unparseable:
		return RejectionResponse{
			Reason:  validationErr.Parse.Kind.String(),
			Message: parseMessage(validationErr.Parse.Kind),
		}
	default:
		return RejectionResponse{
			Reason:  validationErr.Kind.String(),
			Message: "The submission could not be processed.",
		}
	}
}

func parseMessage(kind services.ParseFailure) string {
	switch kind {
	case services.EmptyOrder:
		return "The order field was empty. Tell us what you want to order."
	case services.InvalidItemizedFormat:
		return "We could not read your order. Use the format: Burger 2 @80"
	case services.InvalidPrepaidFormat:
		return "We could not read your order. Use the format: Burger 2"
	case services.UnrecognizableFormat:
		return "We could not recognize your order text. List each item with its quantity."
	default:
		return "We could not read your order."
	}
}

func orderResponse(o *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, LineItemResponse{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price().String(),
		})
	}

	return OrderResponse{
		ID:       o.ID().String(),
		Customer: o.Customer().Name(),
		PlacedAt: o.PlacedAt(),
		Store:    o.Store(),
		Source:   o.Source().String(),
		Format:   o.Format().String(),
		Items:    items,
		Subtotal: o.Subtotal().String(),
		Fee:      o.Fee().String(),
		Total:    o.Total().String(),
	}
}

// dispatchDay resolves the requested dispatch day. Both the explicit and the
// default path yield a UTC day, so rows stored in UTC near midnight land in
// the same summary regardless of how the day was chosen.
func dispatchDay(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// parseSubmittedAt accepts RFC 3339 timestamps; anything else yields the zero
// time, which downstream replaces with the processing time.
func parseSubmittedAt(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
