package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/adapters/memory"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/errors"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/ports"
	"github.com/techgyrl/BadgeBoost/internal/platform/clock"
)

const testHash = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

type stubGate struct {
	owner   string
	admins  map[string]bool
	issuers map[string]bool
}

func (g stubGate) IsIssuerAuthorized(_ context.Context, identity string) (bool, error) {
	return g.issuers[identity], nil
}

func (g stubGate) IsAdmin(_ context.Context, identity string) (bool, error) {
	return g.admins[identity], nil
}

func (g stubGate) IsOwner(identity string) bool { return identity == g.owner }

func (g stubGate) Owner() string { return g.owner }

func newTestService() (Service, *clock.Manual) {
	manual := clock.NewManual(1000)
	service := Service{
		Repo: memory.NewStore(),
		Authz: stubGate{
			owner:   "owner-1",
			admins:  map[string]bool{"admin-1": true},
			issuers: map[string]bool{"issuer-1": true},
		},
		Clock: manual,
	}
	return service, manual
}

func issueTestBadge(t *testing.T, service Service, recipient string) uint64 {
	t.Helper()
	badge, err := service.Issue(context.Background(), "issuer-1", ports.IssueBadgeInput{
		Recipient:        recipient,
		BadgeType:        "certification",
		Title:            "Go Fundamentals",
		VerificationHash: testHash,
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	return badge.BadgeID
}

func TestIssueAssignsSequentialIDs(t *testing.T) {
	service, _ := newTestService()

	first := issueTestBadge(t, service, "user-1")
	second := issueTestBadge(t, service, "user-2")
	if first != 1 || second != 2 {
		t.Fatalf("expected badge ids 1 and 2, got %d and %d", first, second)
	}
}

func TestIssueRequiresAuthorizedIssuer(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Issue(context.Background(), "issuer-unknown", ports.IssueBadgeInput{
		Recipient:        "user-1",
		BadgeType:        "certification",
		Title:            "Go Fundamentals",
		VerificationHash: testHash,
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestIssueRejectsRootOwnerRecipient(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Issue(context.Background(), "issuer-1", ports.IssueBadgeInput{
		Recipient:        "owner-1",
		BadgeType:        "certification",
		Title:            "Go Fundamentals",
		VerificationHash: testHash,
	})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestIssueValidatesVerificationHash(t *testing.T) {
	service, _ := newTestService()

	for _, hash := range []string{"", "abc", strings.Repeat("z", 64)} {
		_, err := service.Issue(context.Background(), "issuer-1", ports.IssueBadgeInput{
			Recipient:        "user-1",
			BadgeType:        "certification",
			Title:            "Go Fundamentals",
			VerificationHash: hash,
		})
		if !errors.Is(err, domainerrors.ErrInvalidInput) {
			t.Fatalf("hash %q: expected invalid input, got %v", hash, err)
		}
	}
}

func TestIssueRejectsPastExpiry(t *testing.T) {
	service, _ := newTestService()

	past := uint64(1000)
	_, err := service.Issue(context.Background(), "issuer-1", ports.IssueBadgeInput{
		Recipient:        "user-1",
		BadgeType:        "certification",
		Title:            "Go Fundamentals",
		ExpiresAt:        &past,
		VerificationHash: testHash,
	})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for past expiry, got %v", err)
	}
}

func TestTransferAppendsHistory(t *testing.T) {
	service, manual := newTestService()
	badgeID := issueTestBadge(t, service, "user-1")

	manual.Advance(10)
	badge, err := service.Transfer(context.Background(), "user-1", badgeID, "user-2")
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if badge.Owner != "user-2" {
		t.Fatalf("expected new owner user-2, got %s", badge.Owner)
	}

	history, err := service.OwnershipHistory(context.Background(), badgeID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(history))
	}
	entry := history[0]
	if entry.PreviousOwner != "user-1" || entry.NewOwner != "user-2" {
		t.Fatalf("unexpected history entry: %+v", entry)
	}
	if entry.TransferredAt != 1010 {
		t.Fatalf("expected transferred_at 1010, got %d", entry.TransferredAt)
	}
}

func TestTransferOnlyByOwner(t *testing.T) {
	service, _ := newTestService()
	badgeID := issueTestBadge(t, service, "user-1")

	_, err := service.Transfer(context.Background(), "user-2", badgeID, "user-3")
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestTransferRevokedBadgeFails(t *testing.T) {
	service, _ := newTestService()
	badgeID := issueTestBadge(t, service, "user-1")

	if _, err := service.Revoke(context.Background(), "issuer-1", badgeID, "policy violation"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	_, err := service.Transfer(context.Background(), "user-1", badgeID, "user-2")
	if !errors.Is(err, domainerrors.ErrTransferFailed) {
		t.Fatalf("expected transfer failed, got %v", err)
	}
}

func TestTransferExpiredBadgeSucceeds(t *testing.T) {
	service, manual := newTestService()

	expiry := uint64(1100)
	badge, err := service.Issue(context.Background(), "issuer-1", ports.IssueBadgeInput{
		Recipient:        "user-1",
		BadgeType:        "certification",
		Title:            "Go Fundamentals",
		ExpiresAt:        &expiry,
		VerificationHash: testHash,
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	manual.Set(2000)
	if _, err := service.Transfer(context.Background(), "user-1", badge.BadgeID, "user-2"); err != nil {
		t.Fatalf("expected expired badge to remain transferable, got %v", err)
	}
}

func TestRevokeCapabilities(t *testing.T) {
	service, _ := newTestService()

	cases := []struct {
		caller string
		want   error
	}{
		{caller: "user-1", want: domainerrors.ErrUnauthorized},
		{caller: "issuer-1", want: nil},
		{caller: "admin-1", want: nil},
		{caller: "owner-1", want: nil},
	}
	for _, tc := range cases {
		badgeID := issueTestBadge(t, service, "user-1")
		_, err := service.Revoke(context.Background(), tc.caller, badgeID, "cleanup")
		if !errors.Is(err, tc.want) {
			t.Fatalf("caller %s: expected %v, got %v", tc.caller, tc.want, err)
		}
	}
}

func TestRevokeIsMonotonic(t *testing.T) {
	service, _ := newTestService()
	badgeID := issueTestBadge(t, service, "user-1")

	if _, err := service.Revoke(context.Background(), "issuer-1", badgeID, "first"); err != nil {
		t.Fatalf("first revoke failed: %v", err)
	}
	_, err := service.Revoke(context.Background(), "issuer-1", badgeID, "second")
	if !errors.Is(err, domainerrors.ErrAlreadyRevoked) {
		t.Fatalf("expected already revoked, got %v", err)
	}

	badge, err := service.GetBadge(context.Background(), badgeID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if badge.RevokedReason != "first" {
		t.Fatalf("expected original reason to survive, got %q", badge.RevokedReason)
	}
}

func TestRevokeExpiredBadgeFails(t *testing.T) {
	service, manual := newTestService()

	expiry := uint64(1100)
	badge, err := service.Issue(context.Background(), "issuer-1", ports.IssueBadgeInput{
		Recipient:        "user-1",
		BadgeType:        "certification",
		Title:            "Go Fundamentals",
		ExpiresAt:        &expiry,
		VerificationHash: testHash,
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	manual.Set(1100)
	_, err = service.Revoke(context.Background(), "issuer-1", badge.BadgeID, "late")
	if !errors.Is(err, domainerrors.ErrBadgeExpired) {
		t.Fatalf("expected badge expired, got %v", err)
	}
}

func TestUpdateExpiryRules(t *testing.T) {
	service, manual := newTestService()
	badgeID := issueTestBadge(t, service, "user-1")

	past := uint64(1000)
	if _, err := service.UpdateExpiry(context.Background(), "issuer-1", badgeID, &past); !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for non-future expiry, got %v", err)
	}

	future := uint64(1200)
	badge, err := service.UpdateExpiry(context.Background(), "issuer-1", badgeID, &future)
	if err != nil {
		t.Fatalf("update expiry failed: %v", err)
	}
	if badge.ExpiresAt == nil || *badge.ExpiresAt != future {
		t.Fatalf("expected expiry %d, got %v", future, badge.ExpiresAt)
	}

	badge, err = service.UpdateExpiry(context.Background(), "issuer-1", badgeID, nil)
	if err != nil {
		t.Fatalf("clear expiry failed: %v", err)
	}
	if badge.ExpiresAt != nil {
		t.Fatalf("expected cleared expiry, got %v", badge.ExpiresAt)
	}

	if _, err := service.UpdateExpiry(context.Background(), "issuer-1", badgeID, &future); err != nil {
		t.Fatalf("restore expiry failed: %v", err)
	}
	manual.Set(1300)
	if _, err := service.UpdateExpiry(context.Background(), "issuer-1", badgeID, nil); !errors.Is(err, domainerrors.ErrBadgeExpired) {
		t.Fatalf("expected badge expired, got %v", err)
	}
}

func TestBatchRevokeReportsPerItemOutcomes(t *testing.T) {
	service, _ := newTestService()
	first := issueTestBadge(t, service, "user-1")
	second := issueTestBadge(t, service, "user-2")

	if _, err := service.Revoke(context.Background(), "issuer-1", second, "early"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	results, err := service.BatchRevoke(context.Background(), "issuer-1", []uint64{first, second, 9999}, "sweep")
	if err != nil {
		t.Fatalf("batch revoke failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Revoked || results[0].ErrorCode != "" {
		t.Fatalf("expected first badge revoked, got %+v", results[0])
	}
	if results[1].Revoked || results[1].ErrorCode != "already_revoked" {
		t.Fatalf("expected already_revoked for second badge, got %+v", results[1])
	}
	if results[2].Revoked || results[2].ErrorCode != "not_found" {
		t.Fatalf("expected not_found for missing badge, got %+v", results[2])
	}
}

func TestBatchRevokeRejectsEmptyInput(t *testing.T) {
	service, _ := newTestService()

	_, err := service.BatchRevoke(context.Background(), "issuer-1", nil, "sweep")
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty batch, got %v", err)
	}
}

func TestIssueChecksCapabilityBeforeValidation(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Issue(context.Background(), "issuer-unknown", ports.IssueBadgeInput{
		Recipient:        "user-1",
		BadgeType:        "certification",
		Title:            "Go Fundamentals",
		VerificationHash: "not-a-hash",
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized before input validation, got %v", err)
	}
}

func TestGetBadgeNotFound(t *testing.T) {
	service, _ := newTestService()

	_, err := service.GetBadge(context.Background(), 42)
	if !errors.Is(err, domainerrors.ErrBadgeNotFound) {
		t.Fatalf("expected badge not found, got %v", err)
	}
}
