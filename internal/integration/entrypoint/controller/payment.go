// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/application/usecase/payment"
	"github.com/fletepay/backend/internal/application/usecase/receipt"
	domainerror "github.com/fletepay/backend/internal/domain/error"
	"github.com/fletepay/backend/internal/integration/entrypoint/dto"
)

// PaymentController handles payment endpoints.
type PaymentController struct {
	createUseCase      *payment.CreatePaymentUseCase
	getUseCase         *payment.GetPaymentUseCase
	getReceiptUseCase  *receipt.GetReceiptUseCase
	listMethodsUseCase *payment.ListPaymentMethodsUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	createUseCase *payment.CreatePaymentUseCase,
	getUseCase *payment.GetPaymentUseCase,
	getReceiptUseCase *receipt.GetReceiptUseCase,
	listMethodsUseCase *payment.ListPaymentMethodsUseCase,
) *PaymentController {
	return &PaymentController{
		createUseCase:      createUseCase,
		getUseCase:         getUseCase,
		getReceiptUseCase:  getReceiptUseCase,
		listMethodsUseCase: listMethodsUseCase,
	}
}

// Create handles POST /payments requests.
func (c *PaymentController) Create(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBody),
		})
		return
	}

	input := payment.CreatePaymentInput{
		TotalAmount:     decimal.NewFromFloat(req.TotalAmount),
		IssueReceipt:    req.IssueReceipt,
		ReceiptTypeCode: req.ReceiptTypeCode,
		IssuerFiscalID:  req.IssuerFiscalID,
		Currency:        req.Currency,
	}

	var ok bool
	if input.PaymentMethodID, ok = parseOptionalUUID(ctx, req.PaymentMethodID, "payment method ID"); !ok {
		return
	}
	if input.AssignmentID, ok = parseOptionalUUID(ctx, req.AssignmentID, "assignment ID"); !ok {
		return
	}
	if input.ReceivingCompanyID, ok = parseOptionalUUID(ctx, req.ReceivingCompanyID, "receiving company ID"); !ok {
		return
	}
	if input.ReceivingUserID, ok = parseOptionalUUID(ctx, req.ReceivingUserID, "receiving user ID"); !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(output.Payment))
}

// Get handles GET /payments/:id requests.
func (c *PaymentController) Get(ctx *gin.Context) {
	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), payment.GetPaymentInput{PaymentID: paymentID})
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(output.Payment))
}

// GetReceipt handles GET /payments/:id/receipt requests.
func (c *PaymentController) GetReceipt(ctx *gin.Context) {
	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment ID format",
		})
		return
	}

	output, err := c.getReceiptUseCase.Execute(ctx.Request.Context(), receipt.GetReceiptInput{PaymentID: paymentID})
	if err != nil {
		if errors.Is(err, domainerror.ErrReceiptNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "No receipt has been issued for this payment",
				Code:  string(domainerror.ErrCodeReceiptNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  string(domainerror.ErrCodeInternal),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiptResponse(output.Receipt))
}

// ListMethods handles GET /payment-methods requests.
func (c *PaymentController) ListMethods(ctx *gin.Context) {
	output, err := c.listMethodsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve payment methods",
			Code:  string(domainerror.ErrCodeInternal),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentMethodListResponse(output.PaymentMethods))
}

// handlePaymentError maps payment errors to HTTP responses.
func (c *PaymentController) handlePaymentError(ctx *gin.Context, err error) {
	var payErr *domainerror.PaymentError
	if errors.As(err, &payErr) {
		ctx.JSON(c.getStatusCodeForPaymentError(payErr.Code), dto.ErrorResponse{
			Error: payErr.Message,
			Code:  string(payErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrPaymentNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Payment not found",
			Code:  string(domainerror.ErrCodePaymentNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}

// getStatusCodeForPaymentError maps payment error codes to HTTP status codes.
func (c *PaymentController) getStatusCodeForPaymentError(code domainerror.PaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodePaymentNotFound, domainerror.ErrCodePaymentMethodNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPaymentAmount,
		domainerror.ErrCodeInvalidReceiptTypeCode,
		domainerror.ErrCodeInvalidCurrency:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseOptionalUUID parses an optional UUID string, writing a 400 response
// and returning ok=false when the value is present but malformed.
func parseOptionalUUID(ctx *gin.Context, value *string, label string) (*uuid.UUID, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " format",
		})
		return nil, false
	}
	return &id, true
}
