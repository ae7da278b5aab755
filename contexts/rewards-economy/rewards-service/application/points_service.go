package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/entities"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/errors"
	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/ports"
)

// PointsService owns per-identity balances, activity statistics and the
// global conservation counters.
type PointsService struct {
	Repo   ports.Repository
	Authz  ports.AuthorizationGate
	Clock  ports.Clock
	Events ports.EventPublisher
	Logger *slog.Logger
}

// AwardPoints mints amount points into the recipient's balance. Admin or
// root owner only. This is the only operation that grows the global issued
// counter.
func (s PointsService) AwardPoints(ctx context.Context, caller string, recipient string, amount uint64) (entities.PointsAccount, error) {
	caller = strings.TrimSpace(caller)
	recipient = strings.TrimSpace(recipient)
	if caller == "" || recipient == "" || amount == 0 {
		return entities.PointsAccount{}, domainerrors.ErrInvalidInput
	}
	if err := s.requireAdmin(ctx, caller); err != nil {
		return entities.PointsAccount{}, err
	}

	now := s.Clock.Height()
	account, err := s.Repo.AwardPoints(ctx, recipient, amount, now)
	if err != nil {
		return entities.PointsAccount{}, err
	}

	s.publish(ctx, "points_awarded", recipient, amount, now)
	resolveLogger(s.Logger).Info("points awarded",
		"event", "points_awarded",
		"module", "rewards-economy/rewards-service",
		"layer", "application",
		"recipient", recipient,
		"amount", amount,
		"balance", account.Balance,
	)
	return account, nil
}

// DeductPoints burns amount points from the user's balance. Admin or root
// owner only. A user whose account never existed has balance zero and fails
// the sufficiency check like anyone else.
func (s PointsService) DeductPoints(ctx context.Context, caller string, user string, amount uint64) (entities.PointsAccount, error) {
	caller = strings.TrimSpace(caller)
	user = strings.TrimSpace(user)
	if caller == "" || user == "" || amount == 0 {
		return entities.PointsAccount{}, domainerrors.ErrInvalidInput
	}
	if err := s.requireAdmin(ctx, caller); err != nil {
		return entities.PointsAccount{}, err
	}

	now := s.Clock.Height()
	account, err := s.Repo.DeductPoints(ctx, user, amount, now)
	if err != nil {
		return entities.PointsAccount{}, err
	}

	s.publish(ctx, "points_deducted", user, amount, now)
	return account, nil
}

// TransferPoints moves amount points from the caller's balance to the
// recipient. Any caller may spend their own balance. Transfers are
// balance-neutral: the global counters do not move.
func (s PointsService) TransferPoints(ctx context.Context, caller string, recipient string, amount uint64) (entities.PointsAccount, error) {
	caller = strings.TrimSpace(caller)
	recipient = strings.TrimSpace(recipient)
	if caller == "" || recipient == "" || amount == 0 {
		return entities.PointsAccount{}, domainerrors.ErrInvalidInput
	}
	if caller == recipient {
		return entities.PointsAccount{}, domainerrors.ErrInvalidInput
	}

	now := s.Clock.Height()
	account, err := s.Repo.TransferPoints(ctx, caller, recipient, amount, now)
	if err != nil {
		return entities.PointsAccount{}, err
	}

	s.publish(ctx, "points_transferred", caller, amount, now)
	resolveLogger(s.Logger).Info("points transferred",
		"event", "points_transferred",
		"module", "rewards-economy/rewards-service",
		"layer", "application",
		"sender", caller,
		"recipient", recipient,
		"amount", amount,
	)
	return account, nil
}

// GetBalance returns the identity's balance; a missing account reads as
// zero.
func (s PointsService) GetBalance(ctx context.Context, identity string) (uint64, error) {
	account, err := s.GetStats(ctx, identity)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// GetStats returns the full account record; a missing account resolves to a
// zero-valued record carrying the identity.
func (s PointsService) GetStats(ctx context.Context, identity string) (entities.PointsAccount, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return entities.PointsAccount{}, domainerrors.ErrInvalidInput
	}
	account, found, err := s.Repo.GetAccount(ctx, identity)
	if err != nil {
		return entities.PointsAccount{}, err
	}
	if !found {
		return entities.PointsAccount{Identity: identity}, nil
	}
	return account, nil
}

// Totals returns the global conservation counters.
func (s PointsService) Totals(ctx context.Context) (entities.LedgerTotals, error) {
	return s.Repo.Totals(ctx)
}

func (s PointsService) requireAdmin(ctx context.Context, caller string) error {
	if s.Authz.IsOwner(caller) {
		return nil
	}
	isAdmin, err := s.Authz.IsAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domainerrors.ErrUnauthorized
	}
	return nil
}

func (s PointsService) publish(ctx context.Context, eventType string, subject string, amount uint64, height uint64) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishLedgerEvent(ctx, ports.LedgerEvent{
		EventType: eventType,
		Subject:   subject,
		Amount:    amount,
		Height:    height,
	}); err != nil {
		resolveLogger(s.Logger).Warn("ledger event publish failed",
			"event", "ledger_event_publish_failed",
			"module", "rewards-economy/rewards-service",
			"layer", "application",
			"event_type", eventType,
			"error", err,
		)
	}
}
