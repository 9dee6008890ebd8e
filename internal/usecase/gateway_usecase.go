package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/mapping"
	"vindicia_gateway/internal/usecase/interfaces"
	"vindicia_gateway/internal/usecase/requests"
)

var (
	ErrTransportNotConfigured = errors.New("soap transport not configured")
	ErrRequestFailed          = errors.New("processor request failed")
	ErrNotFound               = errors.New("object not found")
	ErrSessionNotFound        = errors.New("hoa session not found")
)

const returnCodeOK = "200"

// IGatewayUseCase is the gateway-facing API surface: every remote operation
// the integration supports, direct and hosted.
type IGatewayUseCase interface {
	Authorize(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error)
	Purchase(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error)
	Capture(ctx context.Context, id, reference string) (*entities.Transaction, error)
	Void(ctx context.Context, id, reference string) (*entities.Transaction, error)
	Refund(ctx context.Context, rf *entities.Refund) (*entities.Refund, error)
	FetchTransaction(ctx context.Context, id, reference string) (*entities.Transaction, error)

	CreateCustomer(ctx context.Context, c *entities.Customer) (*entities.Customer, error)
	FetchCustomer(ctx context.Context, id, reference string) (*entities.Customer, error)
	CreatePaymentMethod(ctx context.Context, pm *entities.PaymentMethod, validateCard bool) (*entities.PaymentMethod, error)
	FetchPaymentMethod(ctx context.Context, id, reference string) (*entities.PaymentMethod, error)

	CreatePlan(ctx context.Context, p *entities.Plan) (*entities.Plan, error)
	FetchPlan(ctx context.Context, id, reference string) (*entities.Plan, error)
	CreateProduct(ctx context.Context, p *entities.Product) (*entities.Product, error)
	FetchProduct(ctx context.Context, id, reference string) (*entities.Product, error)
	CreateSubscription(ctx context.Context, s *entities.Subscription) (*entities.Subscription, error)
	FetchSubscription(ctx context.Context, id, reference string) (*entities.Subscription, error)
	CancelSubscription(ctx context.Context, id, reference string, disentitle bool) (*entities.Subscription, error)

	InitiateHOA(ctx context.Context, hoa *requests.HOA) (entities.HOASession, error)
	CompleteHOA(ctx context.Context, sessionReference string) (*HOAResult, error)

	ListTransactionRecords(ctx context.Context, customerID string) ([]entities.TransactionRecord, error)
}

// GatewayUseCase executes requests against the processor: validate, build,
// call, check the return envelope, parse, and audit. Stateless per
// invocation; safe for concurrent use as long as callers do not mutate an
// entity while it is being built.
type GatewayUseCase struct {
	transport   interfaces.ISoapTransport
	records     interfaces.ITransactionRecordRepository
	hoaSessions interfaces.IHOASessionRepository
}

var _ IGatewayUseCase = (*GatewayUseCase)(nil)

func NewGatewayUseCase(transport interfaces.ISoapTransport, records interfaces.ITransactionRecordRepository, hoaSessions interfaces.IHOASessionRepository) *GatewayUseCase {
	return &GatewayUseCase{transport: transport, records: records, hoaSessions: hoaSessions}
}

// run is the shared execution path of every operation.
func (u *GatewayUseCase) run(ctx context.Context, req requests.Request) (entities.Record, error) {
	if u.transport == nil {
		log.Printf("[gateway][usecase] transport not configured object=%s action=%s", req.Object(), req.Action())
		return nil, ErrTransportNotConfigured
	}
	if err := req.Validate(); err != nil {
		log.Printf("[gateway][usecase] validation failed object=%s action=%s err=%v", req.Object(), req.Action(), err)
		return nil, err
	}
	payload, err := req.Build()
	if err != nil {
		log.Printf("[gateway][usecase] build failed object=%s action=%s err=%v", req.Object(), req.Action(), err)
		return nil, err
	}
	result, err := u.transport.Call(ctx, req.Object(), req.Action(), payload)
	if err != nil {
		log.Printf("[gateway][usecase] call failed object=%s action=%s err=%v", req.Object(), req.Action(), err)
		return nil, err
	}
	if err := checkReturn(result); err != nil {
		log.Printf("[gateway][usecase] processor rejected object=%s action=%s err=%v", req.Object(), req.Action(), err)
		return nil, err
	}
	return result, nil
}

// checkReturn inspects the response envelope's return block; anything but
// code 200 is a failure carrying the processor's own message.
func checkReturn(result entities.Record) error {
	ret, ok := result["return"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: response is missing the return block", ErrRequestFailed)
	}
	code, _ := ret["returnCode"].(string)
	if code == returnCodeOK {
		return nil
	}
	message, _ := ret["returnString"].(string)
	if code == "404" {
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	}
	return fmt.Errorf("%w: returnCode=%s %s", ErrRequestFailed, code, message)
}

func resultRecord(result entities.Record, field string) (entities.Record, error) {
	v, ok := result[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: response is missing %s", ErrRequestFailed, field)
	}
	return v, nil
}

// firstResultRecord reads the first element of a repeating result group,
// normalizing the single-vs-list response quirk first.
func firstResultRecord(result entities.Record, field string) (entities.Record, error) {
	items := mapping.AsList(result[field])
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: response is missing %s", ErrRequestFailed, field)
	}
	rec, ok := items[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: response %s: expected object, got %T", ErrRequestFailed, field, items[0])
	}
	return rec, nil
}

func (u *GatewayUseCase) Authorize(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error) {
	return u.runTransaction(ctx, requests.NewAuthorize(ensureTransactionID(t)), "auth")
}

func (u *GatewayUseCase) Purchase(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error) {
	return u.runTransaction(ctx, requests.NewPurchase(ensureTransactionID(t)), "authCapture")
}

func (u *GatewayUseCase) runTransaction(ctx context.Context, req requests.Request, action string) (*entities.Transaction, error) {
	result, err := u.run(ctx, req)
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "transaction")
	if err != nil {
		return nil, err
	}
	parsed, err := mapping.ParseTransaction(rec)
	if err != nil {
		return nil, err
	}
	u.audit(ctx, action, parsed, rec)
	log.Printf("[gateway][usecase] %s success transaction_id=%s reference=%s", action, parsed.ID, parsed.Reference)
	return parsed, nil
}

func (u *GatewayUseCase) Capture(ctx context.Context, id, reference string) (*entities.Transaction, error) {
	result, err := u.run(ctx, &requests.Capture{TransactionID: id, TransactionReference: reference})
	if err != nil {
		return nil, err
	}
	rec, err := firstResultRecord(result, "transactions")
	if err != nil {
		return nil, err
	}
	parsed, err := mapping.ParseTransaction(rec)
	if err != nil {
		return nil, err
	}
	u.audit(ctx, "capture", parsed, rec)
	log.Printf("[gateway][usecase] capture success transaction_id=%s", parsed.ID)
	return parsed, nil
}

func (u *GatewayUseCase) Void(ctx context.Context, id, reference string) (*entities.Transaction, error) {
	result, err := u.run(ctx, &requests.Void{TransactionID: id, TransactionReference: reference})
	if err != nil {
		return nil, err
	}
	rec, err := firstResultRecord(result, "transactions")
	if err != nil {
		return nil, err
	}
	parsed, err := mapping.ParseTransaction(rec)
	if err != nil {
		return nil, err
	}
	u.audit(ctx, "cancel", parsed, rec)
	log.Printf("[gateway][usecase] void success transaction_id=%s", parsed.ID)
	return parsed, nil
}

func (u *GatewayUseCase) Refund(ctx context.Context, rf *entities.Refund) (*entities.Refund, error) {
	result, err := u.run(ctx, requests.NewRefund(rf))
	if err != nil {
		return nil, err
	}
	rec, err := firstResultRecord(result, "refunds")
	if err != nil {
		return nil, err
	}
	parsed, err := mapping.ParseRefund(rec)
	if err != nil {
		return nil, err
	}
	log.Printf("[gateway][usecase] refund success transaction_id=%s status=%s", parsed.TransactionID, parsed.Status)
	return parsed, nil
}

func (u *GatewayUseCase) FetchTransaction(ctx context.Context, id, reference string) (*entities.Transaction, error) {
	result, err := u.run(ctx, &requests.FetchTransaction{TransactionID: id, TransactionReference: reference})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "transaction")
	if err != nil {
		return nil, err
	}
	return mapping.ParseTransaction(rec)
}

func (u *GatewayUseCase) CreateCustomer(ctx context.Context, c *entities.Customer) (*entities.Customer, error) {
	if c != nil && c.ID == "" && c.Reference == "" {
		c.ID = uuid.NewString()
	}
	result, err := u.run(ctx, &requests.CreateCustomer{Customer: c})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "account")
	if err != nil {
		return nil, err
	}
	parsed, err := mapping.ParseCustomer(rec)
	if err != nil {
		return nil, err
	}
	log.Printf("[gateway][usecase] create customer success customer_id=%s reference=%s", parsed.ID, parsed.Reference)
	return parsed, nil
}

func (u *GatewayUseCase) FetchCustomer(ctx context.Context, id, reference string) (*entities.Customer, error) {
	result, err := u.run(ctx, &requests.FetchCustomer{CustomerID: id, CustomerReference: reference})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "account")
	if err != nil {
		return nil, err
	}
	return mapping.ParseCustomer(rec)
}

func (u *GatewayUseCase) CreatePaymentMethod(ctx context.Context, pm *entities.PaymentMethod, validateCard bool) (*entities.PaymentMethod, error) {
	if pm != nil && pm.ID == "" && pm.Reference == "" {
		pm.ID = uuid.NewString()
	}
	result, err := u.run(ctx, &requests.CreatePaymentMethod{PaymentMethod: pm, ValidateCard: validateCard})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "paymentMethod")
	if err != nil {
		return nil, err
	}
	parsed, err := mapping.ParsePaymentMethod(rec)
	if err != nil {
		return nil, err
	}
	log.Printf("[gateway][usecase] create payment method success payment_method_id=%s reference=%s", parsed.ID, parsed.Reference)
	return parsed, nil
}

func (u *GatewayUseCase) FetchPaymentMethod(ctx context.Context, id, reference string) (*entities.PaymentMethod, error) {
	result, err := u.run(ctx, &requests.FetchPaymentMethod{PaymentMethodID: id, PaymentMethodReference: reference})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "paymentMethod")
	if err != nil {
		return nil, err
	}
	return mapping.ParsePaymentMethod(rec)
}

func (u *GatewayUseCase) CreatePlan(ctx context.Context, p *entities.Plan) (*entities.Plan, error) {
	if p != nil && p.ID == "" && p.Reference == "" {
		p.ID = uuid.NewString()
	}
	result, err := u.run(ctx, &requests.CreatePlan{Plan: p})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "billingPlan")
	if err != nil {
		return nil, err
	}
	return mapping.ParsePlan(rec)
}

func (u *GatewayUseCase) FetchPlan(ctx context.Context, id, reference string) (*entities.Plan, error) {
	result, err := u.run(ctx, &requests.FetchPlan{PlanID: id, PlanReference: reference})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "billingPlan")
	if err != nil {
		return nil, err
	}
	return mapping.ParsePlan(rec)
}

func (u *GatewayUseCase) CreateProduct(ctx context.Context, p *entities.Product) (*entities.Product, error) {
	if p != nil && p.ID == "" && p.Reference == "" {
		p.ID = uuid.NewString()
	}
	result, err := u.run(ctx, &requests.CreateProduct{Product: p})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "product")
	if err != nil {
		return nil, err
	}
	return mapping.ParseProduct(rec)
}

func (u *GatewayUseCase) FetchProduct(ctx context.Context, id, reference string) (*entities.Product, error) {
	result, err := u.run(ctx, &requests.FetchProduct{ProductID: id, ProductReference: reference})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "product")
	if err != nil {
		return nil, err
	}
	return mapping.ParseProduct(rec)
}

func (u *GatewayUseCase) CreateSubscription(ctx context.Context, s *entities.Subscription) (*entities.Subscription, error) {
	if s != nil && s.ID == "" && s.Reference == "" {
		s.ID = uuid.NewString()
	}
	result, err := u.run(ctx, &requests.CreateSubscription{Subscription: s})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "autobill")
	if err != nil {
		return nil, err
	}
	parsed, err := mapping.ParseSubscription(rec)
	if err != nil {
		return nil, err
	}
	log.Printf("[gateway][usecase] create subscription success subscription_id=%s reference=%s", parsed.ID, parsed.Reference)
	return parsed, nil
}

func (u *GatewayUseCase) FetchSubscription(ctx context.Context, id, reference string) (*entities.Subscription, error) {
	result, err := u.run(ctx, &requests.FetchSubscription{SubscriptionID: id, SubscriptionReference: reference})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "autobill")
	if err != nil {
		return nil, err
	}
	return mapping.ParseSubscription(rec)
}

func (u *GatewayUseCase) CancelSubscription(ctx context.Context, id, reference string, disentitle bool) (*entities.Subscription, error) {
	result, err := u.run(ctx, &requests.CancelSubscription{SubscriptionID: id, SubscriptionReference: reference, Disentitle: disentitle})
	if err != nil {
		return nil, err
	}
	rec, err := resultRecord(result, "autobill")
	if err != nil {
		return nil, err
	}
	parsed, err := mapping.ParseSubscription(rec)
	if err != nil {
		return nil, err
	}
	log.Printf("[gateway][usecase] cancel subscription success subscription_id=%s status=%s", parsed.ID, parsed.Status)
	return parsed, nil
}

func (u *GatewayUseCase) ListTransactionRecords(ctx context.Context, customerID string) ([]entities.TransactionRecord, error) {
	if u.records == nil {
		return nil, errors.New("transaction record repository not configured")
	}
	return u.records.ListByCustomerID(ctx, customerID)
}

// audit persists the operation outcome when a record repository is wired.
// Auditing is best-effort: a storage failure is logged, not surfaced, since
// the money movement already happened.
func (u *GatewayUseCase) audit(ctx context.Context, action string, t *entities.Transaction, raw entities.Record) {
	if u.records == nil {
		return
	}
	rec := entities.TransactionRecord{
		ID:         t.ID,
		Reference:  t.Reference,
		CustomerID: t.CustomerID,
		Action:     action,
		Date:       time.Now().UTC(),
		Payload:    raw,
	}
	if t.Amount != nil {
		rec.Amount = t.Amount.String()
	}
	if t.Currency != nil {
		rec.Currency = *t.Currency
	}
	if t.Status != nil {
		rec.Status = t.Status.Status
	}
	if _, err := u.records.Create(ctx, rec); err != nil {
		log.Printf("[gateway][usecase] audit record failed transaction_id=%s action=%s err=%v", t.ID, action, err)
	}
}

func ensureTransactionID(t *entities.Transaction) *entities.Transaction {
	if t != nil && t.ID == "" && t.Reference == "" {
		t.ID = uuid.NewString()
	}
	return t
}
