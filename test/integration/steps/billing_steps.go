package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
	"github.com/fletepay/backend/internal/integration/persistence"
)

func bytesReader(payload []byte) io.Reader {
	return bytes.NewReader(payload)
}

func mustParseFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		panic(fmt.Sprintf("invalid amount %q in feature file: %v", value, err))
	}
	return f
}

// seedPaymentMethods loads the standard payment method catalog into the
// scenario database.
func seedPaymentMethods(ctx context.Context, tc *TestContext) error {
	repo := persistence.NewPaymentMethodRepository(tc.injector.DB)
	if err := repo.Seed(ctx, entity.DefaultPaymentMethods()); err != nil {
		return fmt.Errorf("failed to seed payment methods: %w", err)
	}
	return nil
}

// registerBillingSteps registers the domain-specific steps.
func registerBillingSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a driver with an active vehicle assignment exists$`, aDriverWithAnActiveVehicleAssignmentExists)
	ctx.Step(`^an assignment without a driver-vehicle link exists$`, anAssignmentWithoutALinkExists)
	ctx.Step(`^I create a payment of "([^"]*)" with method "([^"]*)"$`, iCreateAPaymentWithMethod)
	ctx.Step(`^I create a payment of "([^"]*)" with method "([^"]*)" requesting an? "([^"]*)" receipt$`, iCreateAPaymentRequestingReceipt)
	ctx.Step(`^the trigger worker processes pending events$`, theTriggerWorkerProcessesPendingEvents)
	ctx.Step(`^a commission of "([^"]*)" with status "([^"]*)" should exist for the payment$`, aCommissionShouldExistForThePayment)
	ctx.Step(`^no commission should exist for the payment$`, noCommissionShouldExistForThePayment)
	ctx.Step(`^a receipt in series "([^"]*)" with number (\d+) should exist for the payment$`, aReceiptShouldExistForThePayment)
	ctx.Step(`^no receipt should exist for the payment$`, noReceiptShouldExistForThePayment)
	ctx.Step(`^the payment should be flagged with "([^"]*)"$`, thePaymentShouldBeFlaggedWith)
	ctx.Step(`^I record a commission payment of "([^"]*)"$`, iRecordACommissionPaymentOf)
	ctx.Step(`^the commission status should be "([^"]*)"$`, theCommissionStatusShouldBe)
	ctx.Step(`^the driver balance should be "([^"]*)"$`, theDriverBalanceShouldBe)
}

func aDriverWithAnActiveVehicleAssignmentExists(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	driverID := uuid.New()
	link := &entity.DriverVehicleLink{
		ID:        uuid.New(),
		DriverID:  &driverID,
		VehicleID: uuid.New(),
		Active:    true,
	}
	if err := persistence.NewDriverVehicleLinkRepository(tc.injector.DB).Create(ctx, link); err != nil {
		return ctx, fmt.Errorf("failed to create driver-vehicle link: %w", err)
	}

	assignment := &entity.Assignment{
		ID:                  uuid.New(),
		DriverVehicleLinkID: &link.ID,
		Origin:              "Lima",
		Destination:         "Arequipa",
		Stops:               []string{"Ica", "Nazca"},
	}
	if err := persistence.NewAssignmentRepository(tc.injector.DB).Create(ctx, assignment); err != nil {
		return ctx, fmt.Errorf("failed to create assignment: %w", err)
	}

	tc.driverID = driverID
	tc.assignmentID = assignment.ID
	return SetTestContext(ctx, tc), nil
}

func anAssignmentWithoutALinkExists(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	assignment := &entity.Assignment{
		ID:          uuid.New(),
		Origin:      "Lima",
		Destination: "Trujillo",
	}
	if err := persistence.NewAssignmentRepository(tc.injector.DB).Create(ctx, assignment); err != nil {
		return ctx, fmt.Errorf("failed to create assignment: %w", err)
	}

	tc.assignmentID = assignment.ID
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) createPayment(ctx context.Context, amount, methodCode string, issueReceipt bool, receiptTypeCode string) error {
	method, err := persistence.NewPaymentMethodRepository(tc.injector.DB).FindByCode(ctx, methodCode)
	if err != nil {
		return fmt.Errorf("payment method %q is not seeded: %w", methodCode, err)
	}

	body := map[string]any{
		"payment_method_id": method.ID.String(),
		"total_amount":      mustParseFloat(amount),
		"issue_receipt":     issueReceipt,
	}
	if tc.assignmentID != uuid.Nil {
		body["assignment_id"] = tc.assignmentID.String()
	}
	if receiptTypeCode != "" {
		body["receipt_type_code"] = receiptTypeCode
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal payment request: %w", err)
	}

	if err := tc.send("POST", "/api/v1/payments", bytesReader(payload)); err != nil {
		return err
	}
	if tc.response.StatusCode != 201 {
		return fmt.Errorf("expected payment creation to return 201, got %d. Body: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return fmt.Errorf("failed to parse payment response: %w", err)
	}

	tc.paymentID, err = uuid.Parse(created.ID)
	if err != nil {
		return fmt.Errorf("payment response carries an invalid id: %w", err)
	}
	return nil
}

func iCreateAPaymentWithMethod(ctx context.Context, amount, methodCode string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.createPayment(ctx, amount, methodCode, false, ""); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iCreateAPaymentRequestingReceipt(ctx context.Context, amount, methodCode, receiptTypeCode string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.createPayment(ctx, amount, methodCode, true, receiptTypeCode); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func theTriggerWorkerProcessesPendingEvents(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.injector.TriggerWorker.ProcessNow(ctx)
	return nil
}

func aCommissionShouldExistForThePayment(ctx context.Context, amount, status string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	commission, err := persistence.NewCommissionRepository(tc.injector.DB).FindByPaymentID(ctx, tc.paymentID)
	if err != nil {
		return ctx, fmt.Errorf("expected a commission for payment %s: %w", tc.paymentID, err)
	}

	expected := decimal.RequireFromString(amount)
	if !commission.Amount.Equal(expected) {
		return ctx, fmt.Errorf("expected commission amount %s, got %s", expected, commission.Amount)
	}
	if string(commission.Status) != status {
		return ctx, fmt.Errorf("expected commission status %s, got %s", status, commission.Status)
	}

	tc.commissionID = commission.ID
	return SetTestContext(ctx, tc), nil
}

func noCommissionShouldExistForThePayment(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := persistence.NewCommissionRepository(tc.injector.DB).FindByPaymentID(ctx, tc.paymentID)
	if err == nil {
		return fmt.Errorf("expected no commission for payment %s", tc.paymentID)
	}
	if !errors.Is(err, domainerror.ErrCommissionNotFound) {
		return fmt.Errorf("unexpected error looking up commission: %w", err)
	}
	return nil
}

func aReceiptShouldExistForThePayment(ctx context.Context, series string, number int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	receipt, err := persistence.NewReceiptRepository(tc.injector.DB).FindByPaymentID(ctx, tc.paymentID)
	if err != nil {
		return fmt.Errorf("expected a receipt for payment %s: %w", tc.paymentID, err)
	}

	if receipt.Series != series {
		return fmt.Errorf("expected series %s, got %s", series, receipt.Series)
	}
	if receipt.Number != int64(number) {
		return fmt.Errorf("expected number %d, got %d", number, receipt.Number)
	}
	return nil
}

func noReceiptShouldExistForThePayment(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := persistence.NewReceiptRepository(tc.injector.DB).FindByPaymentID(ctx, tc.paymentID)
	if err == nil {
		return fmt.Errorf("expected no receipt for payment %s", tc.paymentID)
	}
	if !errors.Is(err, domainerror.ErrReceiptNotFound) {
		return fmt.Errorf("unexpected error looking up receipt: %w", err)
	}
	return nil
}

func thePaymentShouldBeFlaggedWith(ctx context.Context, marker string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payment, err := persistence.NewPaymentRepository(tc.injector.DB).FindByID(ctx, tc.paymentID)
	if err != nil {
		return fmt.Errorf("failed to load payment: %w", err)
	}
	if payment.Inconsistency != marker {
		return fmt.Errorf("expected inconsistency %q, got %q", marker, payment.Inconsistency)
	}
	return nil
}

func iRecordACommissionPaymentOf(ctx context.Context, amount string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	if tc.commissionID == uuid.Nil {
		commission, err := persistence.NewCommissionRepository(tc.injector.DB).FindByPaymentID(ctx, tc.paymentID)
		if err != nil {
			return ctx, fmt.Errorf("no commission to settle for payment %s: %w", tc.paymentID, err)
		}
		tc.commissionID = commission.ID
	}

	payload, err := json.Marshal(map[string]any{"amount": mustParseFloat(amount)})
	if err != nil {
		return ctx, fmt.Errorf("failed to marshal settlement request: %w", err)
	}

	endpoint := fmt.Sprintf("/api/v1/commissions/%s/payments", tc.commissionID)
	if err := tc.send("POST", endpoint, bytesReader(payload)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != 201 {
		return ctx, fmt.Errorf("expected settlement to return 201, got %d. Body: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	return SetTestContext(ctx, tc), nil
}

func theCommissionStatusShouldBe(ctx context.Context, status string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	commission, err := persistence.NewCommissionRepository(tc.injector.DB).FindByID(ctx, tc.commissionID)
	if err != nil {
		return fmt.Errorf("failed to load commission: %w", err)
	}
	if string(commission.Status) != status {
		return fmt.Errorf("expected status %s, got %s", status, commission.Status)
	}
	return nil
}

func theDriverBalanceShouldBe(ctx context.Context, balance string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	endpoint := fmt.Sprintf("/api/v1/drivers/%s/balance", tc.driverID)
	if err := tc.send("GET", endpoint, nil); err != nil {
		return err
	}
	if tc.response.StatusCode != 200 {
		return fmt.Errorf("expected balance lookup to return 200, got %d. Body: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var body struct {
		Balance string `json:"balance"`
	}
	if err := json.Unmarshal(tc.responseBody, &body); err != nil {
		return fmt.Errorf("failed to parse balance response: %w", err)
	}

	expected := decimal.RequireFromString(balance)
	actual, err := decimal.NewFromString(body.Balance)
	if err != nil {
		return fmt.Errorf("balance response is not a decimal: %w", err)
	}
	if !actual.Equal(expected) {
		return fmt.Errorf("expected balance %s, got %s", expected, actual)
	}
	return nil
}
