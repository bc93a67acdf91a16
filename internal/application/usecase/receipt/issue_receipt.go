// Package receipt contains receipt issuance use cases.
package receipt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
)

// IssueReceiptOutcome classifies the terminal result of processing a
// payment.created event.
type IssueReceiptOutcome string

const (
	// OutcomeIssued means exactly one receipt was written.
	OutcomeIssued IssueReceiptOutcome = "issued"
	// OutcomeFlagged means the payment was marked inconsistent and no
	// receipt was written.
	OutcomeFlagged IssueReceiptOutcome = "flagged"
	// OutcomeSkipped means the event was not applicable; nothing was written.
	OutcomeSkipped IssueReceiptOutcome = "skipped"
)

// Skip reasons reported when issuance is not applicable.
const (
	SkipPaymentNotFound     = "payment_not_found"
	SkipNoPaymentMethod     = "no_payment_method_reference"
	SkipReceiptNotRequested = "receipt_not_requested"
	SkipAlreadyIssued       = "receipt_already_issued"
)

// IssueReceiptInput represents the input for receipt issuance.
type IssueReceiptInput struct {
	PaymentID uuid.UUID
}

// IssueReceiptOutput represents the result of receipt issuance.
type IssueReceiptOutput struct {
	Outcome    IssueReceiptOutcome
	SkipReason string
	Receipt    *entity.Receipt
}

// IssueReceiptUseCase decides whether a billing receipt must be emitted for a
// newly created payment, and of what kind. For a qualifying payment it
// performs exactly one write: either the receipt or the inconsistency marker,
// never both.
type IssueReceiptUseCase struct {
	paymentRepo       adapter.PaymentRepository
	paymentMethodRepo adapter.PaymentMethodRepository
	receiptRepo       adapter.ReceiptRepository
	sequence          adapter.ReceiptSequence
	defaultIssuerID   string
}

// NewIssueReceiptUseCase creates a new IssueReceiptUseCase instance.
// defaultIssuerID is the platform's fiscal identifier, used when the payment
// does not declare an issuer.
func NewIssueReceiptUseCase(
	paymentRepo adapter.PaymentRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	receiptRepo adapter.ReceiptRepository,
	sequence adapter.ReceiptSequence,
	defaultIssuerID string,
) *IssueReceiptUseCase {
	return &IssueReceiptUseCase{
		paymentRepo:       paymentRepo,
		paymentMethodRepo: paymentMethodRepo,
		receiptRepo:       receiptRepo,
		sequence:          sequence,
		defaultIssuerID:   defaultIssuerID,
	}
}

// Execute processes a payment.created event.
func (uc *IssueReceiptUseCase) Execute(ctx context.Context, input IssueReceiptInput) (*IssueReceiptOutput, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return skipped(SkipPaymentNotFound), nil
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	if payment.PaymentMethodID == nil {
		return skipped(SkipNoPaymentMethod), nil
	}
	if !payment.IssueReceipt {
		return skipped(SkipReceiptNotRequested), nil
	}

	// An absent payment method is treated as an empty code, not an error.
	methodCode := ""
	method, err := uc.paymentMethodRepo.FindByID(ctx, *payment.PaymentMethodID)
	if err != nil && !errors.Is(err, domainerror.ErrPaymentMethodNotFound) {
		return nil, fmt.Errorf("failed to load payment method: %w", err)
	}
	if method != nil {
		methodCode = method.Code
	}

	receiptType := payment.DeclaredReceiptType()

	// An invoice is only valid against an in-app method. The violation is
	// flagged on the payment, not corrected; terminal for this payment.
	if receiptType == entity.ReceiptTypeInvoice && !strings.HasPrefix(methodCode, entity.PaymentMethodPrefixApp) {
		if err := uc.paymentRepo.SetInconsistency(ctx, payment.ID, entity.InconsistencyInvoiceRequiresAppMethod); err != nil {
			return nil, fmt.Errorf("failed to flag payment inconsistency: %w", err)
		}
		return &IssueReceiptOutput{Outcome: OutcomeFlagged}, nil
	}

	series := entity.SeriesFor(receiptType)
	number, err := uc.sequence.Next(ctx, series)
	if err != nil {
		return nil, domainerror.NewReceiptError(
			domainerror.ErrCodeReceiptSequenceUnavailable,
			"failed to advance receipt sequence",
			err,
		)
	}

	issuerID := payment.IssuerFiscalID
	if issuerID == "" {
		issuerID = uc.defaultIssuerID
	}

	rcpt := entity.NewReceipt(payment, receiptType, number, issuerID)
	created, err := uc.receiptRepo.CreateIfAbsent(ctx, rcpt)
	if err != nil {
		return nil, fmt.Errorf("failed to store receipt: %w", err)
	}
	if !created {
		return skipped(SkipAlreadyIssued), nil
	}

	return &IssueReceiptOutput{Outcome: OutcomeIssued, Receipt: rcpt}, nil
}

func skipped(reason string) *IssueReceiptOutput {
	return &IssueReceiptOutput{Outcome: OutcomeSkipped, SkipReason: reason}
}
