package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/mapping"
	"vindicia_gateway/internal/usecase/requests"
)

// HOAResult carries the outcome of a finalized web session. Exactly one of
// the object fields is set, matching the method the session wrapped.
type HOAResult struct {
	Session       entities.HOASession
	Transaction   *entities.Transaction
	PaymentMethod *entities.PaymentMethod
	Subscription  *entities.Subscription
}

// InitiateHOA initializes a hosted web session for the wrapped direct
// request and persists it so finalize can recover the wrapped method later.
func (u *GatewayUseCase) InitiateHOA(ctx context.Context, hoa *requests.HOA) (entities.HOASession, error) {
	result, err := u.run(ctx, hoa)
	if err != nil {
		return entities.HOASession{}, err
	}
	rec, err := resultRecord(result, "session")
	if err != nil {
		return entities.HOASession{}, err
	}
	reference, _ := rec["VID"].(string)
	if reference == "" {
		return entities.HOASession{}, fmt.Errorf("%w: session response is missing VID", ErrRequestFailed)
	}
	now := time.Now().UTC()
	session := entities.HOASession{
		Reference: reference,
		Method:    hoa.Method,
		ReturnURL: hoa.ReturnURL,
		ErrorURL:  hoa.ErrorURL,
		Status:    entities.HOASessionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if u.hoaSessions != nil {
		if _, err := u.hoaSessions.Create(ctx, session); err != nil {
			log.Printf("[gateway][usecase] hoa session persist failed reference=%s err=%v", reference, err)
			return entities.HOASession{}, err
		}
	}
	log.Printf("[gateway][usecase] hoa initialize success reference=%s method=%s", reference, hoa.Method)
	return session, nil
}

// CompleteHOA finalizes a web session after the hosted form posted back. The
// session row tells us which method the session wrapped, which in turn tells
// us which result object to expect.
func (u *GatewayUseCase) CompleteHOA(ctx context.Context, sessionReference string) (*HOAResult, error) {
	if u.hoaSessions == nil {
		return nil, ErrSessionNotFound
	}
	session, err := u.hoaSessions.GetByReference(ctx, sessionReference)
	if err != nil {
		return nil, err
	}
	if session.Reference == "" {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionReference)
	}

	result, err := u.run(ctx, &requests.CompleteHOA{SessionReference: sessionReference})
	if err != nil {
		u.markSession(ctx, sessionReference, entities.HOASessionStatusFailed)
		return nil, err
	}

	out := &HOAResult{Session: session}
	switch session.Method {
	case requests.HOAMethodAuthorize, requests.HOAMethodPurchase:
		rec, err := resultRecord(result, "transaction")
		if err != nil {
			u.markSession(ctx, sessionReference, entities.HOASessionStatusFailed)
			return nil, err
		}
		out.Transaction, err = mapping.ParseTransaction(rec)
		if err != nil {
			u.markSession(ctx, sessionReference, entities.HOASessionStatusFailed)
			return nil, err
		}
	case requests.HOAMethodCreatePaymentMethod:
		rec, err := resultRecord(result, "paymentMethod")
		if err != nil {
			u.markSession(ctx, sessionReference, entities.HOASessionStatusFailed)
			return nil, err
		}
		out.PaymentMethod, err = mapping.ParsePaymentMethod(rec)
		if err != nil {
			u.markSession(ctx, sessionReference, entities.HOASessionStatusFailed)
			return nil, err
		}
	case requests.HOAMethodCreateSubscription:
		rec, err := resultRecord(result, "autobill")
		if err != nil {
			u.markSession(ctx, sessionReference, entities.HOASessionStatusFailed)
			return nil, err
		}
		out.Subscription, err = mapping.ParseSubscription(rec)
		if err != nil {
			u.markSession(ctx, sessionReference, entities.HOASessionStatusFailed)
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: session %s has unknown method %q", ErrRequestFailed, sessionReference, session.Method)
	}

	u.markSession(ctx, sessionReference, entities.HOASessionStatusCompleted)
	out.Session.Status = entities.HOASessionStatusCompleted
	if out.Transaction != nil {
		u.audit(ctx, session.Method, out.Transaction, nil)
	}
	log.Printf("[gateway][usecase] hoa finalize success reference=%s method=%s", sessionReference, session.Method)
	return out, nil
}

func (u *GatewayUseCase) markSession(ctx context.Context, reference string, status entities.HOASessionStatus) {
	if _, err := u.hoaSessions.UpdateStatus(ctx, reference, status); err != nil {
		log.Printf("[gateway][usecase] hoa session status update failed reference=%s status=%s err=%v", reference, status, err)
	}
}
