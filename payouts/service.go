package payouts

import (
	"context"
	"sync"
)

// TransferClient is the payment processor's transfer primitive. Amounts
// are passed in minor units (cents) so the processor never sees float
// arithmetic. Implementations must honor the idempotency key so a
// retried call cannot move money twice.
type TransferClient interface {
	CreateTransfer(ctx context.Context, amountCents int64, currency, destination, idempotencyKey, memo string) (transferRef string, err error)
}

// Service is the payout engine: aggregation, commission splits,
// disbursement and period reporting. The transfer client is injected at
// construction, never reached through a package global.
type Service struct {
	store     Store
	transfers TransferClient

	// One mutex per instructor. Disbursements for different instructors
	// run in parallel; two for the same instructor serialize so they can
	// never both snapshot the same unpaid set.
	locks sync.Map
}

func NewService(store Store, transfers TransferClient) *Service {
	return &Service{store: store, transfers: transfers}
}

func (s *Service) instructorLock(key string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
