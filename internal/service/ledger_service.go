package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	apperrors "actipoint/internal/errors"
	"actipoint/internal/model"
	"actipoint/internal/repository"
)

// VerificationReward is the flat credit for every accepted photo upload.
const VerificationReward = 10

const entryBatchSize = 10

// LedgerService handles point balance mutations. Every applied mutation is
// journaled as a PointEntry row.
type LedgerService interface {
	SpendPoints(ctx context.Context, username string, cost int) (int, error)
	CreditForVerification(ctx context.Context, username, photoRef string) (int, *model.User, error)
}

type ledgerService struct {
	userRepo  repository.UserRepository
	entryRepo repository.PointEntryRepository
	// Mutex map for per-user locking
	userMutexes sync.Map
	// Channel for async journal writes
	entryChannel chan model.PointEntry
}

// NewLedgerService creates a new ledger service and starts its journal worker.
func NewLedgerService(userRepo repository.UserRepository, entryRepo repository.PointEntryRepository) LedgerService {
	service := &ledgerService{
		userRepo:     userRepo,
		entryRepo:    entryRepo,
		entryChannel: make(chan model.PointEntry, 100),
	}

	go service.entryWorker(context.Background())

	return service
}

// getMutex returns a mutex for a specific username.
func (s *ledgerService) getMutex(username string) *sync.Mutex {
	value, _ := s.userMutexes.LoadOrStore(username, &sync.Mutex{})
	return value.(*sync.Mutex)
}

// SpendPoints deducts cost from the user's balance. The balance never goes
// negative: an over-budget spend fails without mutating state. The check
// and the write happen under a row lock inside a single transaction.
func (s *ledgerService) SpendPoints(ctx context.Context, username string, cost int) (int, error) {
	if cost < 0 {
		return 0, apperrors.ErrInvalidCost
	}

	mutex := s.getMutex(username)
	mutex.Lock()
	defer mutex.Unlock()

	var user *model.User
	var newBalance int

	err := s.userRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.UserRepository) error {
		u, err := txRepo.FindByUsernameForUpdate(ctx, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		if u.Points < cost {
			return apperrors.ErrInsufficientPoints
		}

		newBalance = u.Points - cost
		if err := txRepo.UpdatePoints(ctx, u.ID, newBalance); err != nil {
			return err
		}

		user = u
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.journal(ctx, user, model.EntryKindSpend, -cost, newBalance, "")

	return newBalance, nil
}

// CreditForVerification applies the flat upload reward to the user and
// returns the updated record. The credit is unconditional: nothing tracks
// whether the user already claimed for the same event, so every accepted
// upload pays out again. That matches the stored-data contract; do not add
// an idempotency gate here without changing the documented behavior.
func (s *ledgerService) CreditForVerification(ctx context.Context, username, photoRef string) (int, *model.User, error) {
	mutex := s.getMutex(username)
	mutex.Lock()
	defer mutex.Unlock()

	var user *model.User
	var newBalance int

	err := s.userRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.UserRepository) error {
		u, err := txRepo.FindByUsernameForUpdate(ctx, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		newBalance = u.Points + VerificationReward
		if err := txRepo.UpdatePoints(ctx, u.ID, newBalance); err != nil {
			return err
		}

		u.Points = newBalance
		user = u
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	s.journal(ctx, user, model.EntryKindCredit, VerificationReward, newBalance, photoRef)

	return newBalance, user, nil
}

// journal records a ledger entry asynchronously.
func (s *ledgerService) journal(ctx context.Context, user *model.User, kind model.EntryKind, delta, balance int, reference string) {
	entry := model.PointEntry{
		UserID:    user.ID,
		Username:  user.Username,
		Kind:      kind,
		Delta:     delta,
		Balance:   balance,
		Reference: reference,
	}

	// Send to async journal channel (non-blocking)
	select {
	case s.entryChannel <- entry:
	default:
		// Channel full, write synchronously as fallback
		_ = s.entryRepo.Create(ctx, &entry)
	}
}

// entryWorker batches journal writes.
func (s *ledgerService) entryWorker(ctx context.Context) {
	batch := make([]model.PointEntry, 0, entryBatchSize)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-s.entryChannel:
			if !ok {
				if len(batch) > 0 {
					_ = s.entryRepo.CreateBatch(ctx, batch)
				}
				return
			}
			batch = append(batch, entry)
			if len(batch) >= entryBatchSize {
				_ = s.entryRepo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				_ = s.entryRepo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ctx.Done():
			return
		}
	}
}
