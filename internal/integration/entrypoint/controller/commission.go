package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/application/usecase/commission"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
	"github.com/fletepay/backend/internal/integration/entrypoint/dto"
)

// CommissionController handles commission endpoints.
type CommissionController struct {
	listUseCase          *commission.ListCommissionsUseCase
	getUseCase           *commission.GetCommissionUseCase
	recordPaymentUseCase *commission.RecordCommissionPaymentUseCase
}

// NewCommissionController creates a new commission controller instance.
func NewCommissionController(
	listUseCase *commission.ListCommissionsUseCase,
	getUseCase *commission.GetCommissionUseCase,
	recordPaymentUseCase *commission.RecordCommissionPaymentUseCase,
) *CommissionController {
	return &CommissionController{
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		recordPaymentUseCase: recordPaymentUseCase,
	}
}

// List handles GET /commissions requests.
func (c *CommissionController) List(ctx *gin.Context) {
	input := commission.ListCommissionsInput{}

	if driverIDStr := ctx.Query("driverId"); driverIDStr != "" {
		driverID, err := uuid.Parse(driverIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid driver ID format",
			})
			return
		}
		input.DriverID = &driverID
	}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.CommissionStatus(statusStr)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCommissionListResponse(output.Commissions))
}

// Get handles GET /commissions/:id requests.
func (c *CommissionController) Get(ctx *gin.Context) {
	commissionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid commission ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), commission.GetCommissionInput{CommissionID: commissionID})
	if err != nil {
		c.handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCommissionDetailResponse(output.Commission, output.Settlements))
}

// RecordPayment handles POST /commissions/:id/payments requests.
func (c *CommissionController) RecordPayment(ctx *gin.Context) {
	commissionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid commission ID format",
		})
		return
	}

	var req dto.RecordCommissionPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBody),
		})
		return
	}

	input := commission.RecordCommissionPaymentInput{
		CommissionID: commissionID,
		Amount:       decimal.NewFromFloat(req.Amount),
	}

	if req.PaidAt != nil && *req.PaidAt != "" {
		paidAt, err := time.Parse(time.RFC3339, *req.PaidAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid paid_at format. Use RFC 3339",
			})
			return
		}
		input.PaidAt = paidAt
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCommissionPaymentResponse(output.CommissionPayment))
}

// handleCommissionError maps commission errors to HTTP responses.
func (c *CommissionController) handleCommissionError(ctx *gin.Context, err error) {
	var comErr *domainerror.CommissionError
	if errors.As(err, &comErr) {
		ctx.JSON(c.getStatusCodeForCommissionError(comErr.Code), dto.ErrorResponse{
			Error: comErr.Message,
			Code:  string(comErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrCommissionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Commission not found",
			Code:  string(domainerror.ErrCodeCommissionNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}

// getStatusCodeForCommissionError maps commission error codes to HTTP status codes.
func (c *CommissionController) getStatusCodeForCommissionError(code domainerror.CommissionErrorCode) int {
	switch code {
	case domainerror.ErrCodeCommissionNotFound, domainerror.ErrCodeCommissionPaymentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCommissionAlreadySettled:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidSettlementAmount, domainerror.ErrCodeInvalidCommissionStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
