package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/application/usecase/balance"
	domainerror "github.com/fletepay/backend/internal/domain/error"
	"github.com/fletepay/backend/internal/integration/entrypoint/dto"
)

// BalanceController handles driver account balance endpoints.
type BalanceController struct {
	getUseCase *balance.GetBalanceUseCase
}

// NewBalanceController creates a new balance controller instance.
func NewBalanceController(getUseCase *balance.GetBalanceUseCase) *BalanceController {
	return &BalanceController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /drivers/:id/balance requests. A driver with no balance
// record owes zero, so this endpoint never returns 404 for a valid UUID.
func (c *BalanceController) Get(ctx *gin.Context) {
	driverID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid driver ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), balance.GetBalanceInput{DriverID: driverID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  string(domainerror.ErrCodeInternal),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDriverBalanceResponse(output))
}
