package application

import (
	"context"
	"errors"
	"testing"

	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/adapters/memory"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/domain/errors"
	"github.com/techgyrl/BadgeBoost/internal/platform/clock"
)

type stubGate struct {
	owner   string
	admins  map[string]bool
	issuers map[string]bool
}

func (g stubGate) IsAdmin(_ context.Context, identity string) (bool, error) {
	return g.admins[identity], nil
}

func (g stubGate) IsIssuerAuthorized(_ context.Context, identity string) (bool, error) {
	return g.issuers[identity], nil
}

func (g stubGate) IsOwner(identity string) bool { return identity == g.owner }

func newTestGate() stubGate {
	return stubGate{
		owner:   "owner-1",
		admins:  map[string]bool{"admin-1": true},
		issuers: map[string]bool{"issuer-1": true},
	}
}

func newPointsService() (PointsService, *memory.Store) {
	store := memory.NewStore()
	return PointsService{
		Repo:  store,
		Authz: newTestGate(),
		Clock: clock.NewManual(100),
	}, store
}

func TestAwardPointsAdminOnly(t *testing.T) {
	service, _ := newPointsService()

	_, err := service.AwardPoints(context.Background(), "user-1", "user-2", 50)
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	account, err := service.AwardPoints(context.Background(), "admin-1", "user-2", 50)
	if err != nil {
		t.Fatalf("award failed: %v", err)
	}
	if account.Balance != 50 || account.TotalEarned != 50 {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestAwardPointsRejectsZeroAmount(t *testing.T) {
	service, _ := newPointsService()

	_, err := service.AwardPoints(context.Background(), "admin-1", "user-1", 0)
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestDeductPointsInsufficientBalanceLeavesAccountIntact(t *testing.T) {
	service, _ := newPointsService()

	if _, err := service.AwardPoints(context.Background(), "admin-1", "user-1", 30); err != nil {
		t.Fatalf("award failed: %v", err)
	}
	_, err := service.DeductPoints(context.Background(), "admin-1", "user-1", 50)
	if !errors.Is(err, domainerrors.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}

	balance, err := service.GetBalance(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get balance failed: %v", err)
	}
	if balance != 30 {
		t.Fatalf("expected balance 30 after failed deduction, got %d", balance)
	}
}

func TestDeductPointsFromMissingAccount(t *testing.T) {
	service, _ := newPointsService()

	_, err := service.DeductPoints(context.Background(), "admin-1", "user-ghost", 10)
	if !errors.Is(err, domainerrors.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}
}

func TestTransferPointsIsBalanceNeutral(t *testing.T) {
	service, _ := newPointsService()

	if _, err := service.AwardPoints(context.Background(), "admin-1", "user-1", 100); err != nil {
		t.Fatalf("award failed: %v", err)
	}
	if _, err := service.TransferPoints(context.Background(), "user-1", "user-2", 40); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	senderBalance, err := service.GetBalance(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get sender balance failed: %v", err)
	}
	recipientBalance, err := service.GetBalance(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("get recipient balance failed: %v", err)
	}
	if senderBalance != 60 || recipientBalance != 40 {
		t.Fatalf("expected balances 60/40, got %d/%d", senderBalance, recipientBalance)
	}

	totals, err := service.Totals(context.Background())
	if err != nil {
		t.Fatalf("totals failed: %v", err)
	}
	if totals.TotalIssued != 100 || totals.TotalDeducted != 0 || totals.TotalRedeemed != 0 {
		t.Fatalf("expected transfer to leave totals untouched, got %+v", totals)
	}
}

func TestTransferPointsRejectsSelfTransfer(t *testing.T) {
	service, _ := newPointsService()

	if _, err := service.AwardPoints(context.Background(), "admin-1", "user-1", 100); err != nil {
		t.Fatalf("award failed: %v", err)
	}
	_, err := service.TransferPoints(context.Background(), "user-1", "user-1", 10)
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestTransferPointsInsufficientBalance(t *testing.T) {
	service, _ := newPointsService()

	_, err := service.TransferPoints(context.Background(), "user-1", "user-2", 10)
	if !errors.Is(err, domainerrors.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}
}

func TestGetStatsMissingAccountReadsZero(t *testing.T) {
	service, _ := newPointsService()

	account, err := service.GetStats(context.Background(), "user-ghost")
	if err != nil {
		t.Fatalf("get stats failed: %v", err)
	}
	if account.Identity != "user-ghost" || account.Balance != 0 || account.TotalEarned != 0 {
		t.Fatalf("unexpected zero account: %+v", account)
	}
}

func TestLedgerConservation(t *testing.T) {
	service, _ := newPointsService()
	ctx := context.Background()

	if _, err := service.AwardPoints(ctx, "admin-1", "user-1", 200); err != nil {
		t.Fatalf("award failed: %v", err)
	}
	if _, err := service.AwardPoints(ctx, "admin-1", "user-2", 100); err != nil {
		t.Fatalf("award failed: %v", err)
	}
	if _, err := service.DeductPoints(ctx, "admin-1", "user-1", 50); err != nil {
		t.Fatalf("deduct failed: %v", err)
	}
	if _, err := service.TransferPoints(ctx, "user-1", "user-2", 25); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	totals, err := service.Totals(ctx)
	if err != nil {
		t.Fatalf("totals failed: %v", err)
	}
	balance1, _ := service.GetBalance(ctx, "user-1")
	balance2, _ := service.GetBalance(ctx, "user-2")

	sum := balance1 + balance2
	expected := totals.TotalIssued - totals.TotalDeducted - totals.TotalRedeemed
	if sum != expected {
		t.Fatalf("conservation violated: balances sum %d, counters say %d", sum, expected)
	}
	if sum != 250 {
		t.Fatalf("expected 250 points in circulation, got %d", sum)
	}
}
