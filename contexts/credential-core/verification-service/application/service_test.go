package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/adapters/memory"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/domain/errors"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/ports"
	"github.com/techgyrl/BadgeBoost/internal/platform/clock"
)

const testRequestID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

type stubBadges struct {
	badges map[uint64]ports.BadgeRecord
}

func (s stubBadges) GetBadge(_ context.Context, badgeID uint64) (ports.BadgeRecord, bool, error) {
	badge, ok := s.badges[badgeID]
	return badge, ok, nil
}

type stubIssuers struct {
	authorized map[string]bool
}

func (s stubIssuers) IsIssuerAuthorized(_ context.Context, identity string) (bool, error) {
	return s.authorized[identity], nil
}

func newTestService() (Service, *clock.Manual) {
	manual := clock.NewManual(500)
	expiry := uint64(600)
	service := Service{
		Badges: stubBadges{badges: map[uint64]ports.BadgeRecord{
			1: {BadgeID: 1, Owner: "user-1", Issuer: "issuer-1"},
			2: {BadgeID: 2, Owner: "user-2", Issuer: "issuer-1", Revoked: true},
			3: {BadgeID: 3, Owner: "user-3", Issuer: "issuer-2", ExpiresAt: &expiry},
		}},
		Issuers:  stubIssuers{authorized: map[string]bool{"issuer-1": true}},
		Requests: memory.NewStore(),
		Clock:    manual,
	}
	return service, manual
}

func TestVerifyOwnership(t *testing.T) {
	service, _ := newTestService()

	owned, err := service.VerifyOwnership(context.Background(), 1, "user-1")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !owned {
		t.Fatal("expected user-1 to own badge 1")
	}

	owned, err = service.VerifyOwnership(context.Background(), 1, "user-2")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if owned {
		t.Fatal("expected user-2 not to own badge 1")
	}

	owned, err = service.VerifyOwnership(context.Background(), 99, "user-1")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if owned {
		t.Fatal("expected missing badge to verify as not owned")
	}
}

func TestVerifyAuthenticityMissingBadgeSentinel(t *testing.T) {
	service, _ := newTestService()

	report, err := service.VerifyAuthenticity(context.Background(), 99)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if report.Exists || !report.Revoked || !report.Expired || report.IssuerAuthorized {
		t.Fatalf("unexpected sentinel report: %+v", report)
	}
}

func TestVerifyAuthenticityReflectsCurrentIssuerStatus(t *testing.T) {
	service, _ := newTestService()

	report, err := service.VerifyAuthenticity(context.Background(), 1)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !report.Exists || !report.IssuerAuthorized || report.Revoked || report.Expired {
		t.Fatalf("unexpected report: %+v", report)
	}

	// Badge 3 was issued by issuer-2, which is not currently authorized.
	report, err = service.VerifyAuthenticity(context.Background(), 3)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if report.IssuerAuthorized {
		t.Fatal("expected issuer-2 to be reported unauthorized")
	}
}

func TestBatchVerifyValidity(t *testing.T) {
	service, manual := newTestService()
	manual.Set(600)

	statuses, err := service.BatchVerify(context.Background(), []uint64{1, 2, 3, 99})
	if err != nil {
		t.Fatalf("batch verify failed: %v", err)
	}
	if len(statuses) != 4 {
		t.Fatalf("expected 4 statuses, got %d", len(statuses))
	}
	if !statuses[0].Valid {
		t.Fatal("expected badge 1 to be valid")
	}
	if statuses[1].Valid {
		t.Fatal("expected revoked badge 2 to be invalid")
	}
	if statuses[2].Valid {
		t.Fatal("expected expired badge 3 to be invalid")
	}
	if statuses[3].Valid || statuses[3].Exists {
		t.Fatal("expected missing badge 99 to be invalid and non-existent")
	}
}

func TestCreateRequestRecordsVerifiedEntry(t *testing.T) {
	service, _ := newTestService()

	request, err := service.CreateRequest(context.Background(), "verifier-1", testRequestID, 1, "employment check")
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if !request.Verified {
		t.Fatal("expected request to be verified immediately")
	}
	if request.VerifiedAt == nil || *request.VerifiedAt != 500 {
		t.Fatalf("expected verified_at 500, got %v", request.VerifiedAt)
	}

	stored, err := service.GetRequest(context.Background(), testRequestID)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	if stored.Requester != "verifier-1" || stored.BadgeID != 1 {
		t.Fatalf("unexpected stored request: %+v", stored)
	}
}

func TestCreateRequestRejectsCollision(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.CreateRequest(context.Background(), "verifier-1", testRequestID, 1, ""); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := service.CreateRequest(context.Background(), "verifier-2", testRequestID, 2, "")
	if !errors.Is(err, domainerrors.ErrRequestExists) {
		t.Fatalf("expected request exists, got %v", err)
	}
}

func TestCreateRequestRequiresExistingBadge(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateRequest(context.Background(), "verifier-1", testRequestID, 99, "")
	if !errors.Is(err, domainerrors.ErrBadgeNotFound) {
		t.Fatalf("expected badge not found, got %v", err)
	}
}

func TestCreateRequestValidatesRequestID(t *testing.T) {
	service, _ := newTestService()

	for _, requestID := range []string{"", "short", strings.Repeat("x", 64)} {
		_, err := service.CreateRequest(context.Background(), "verifier-1", requestID, 1, "")
		if !errors.Is(err, domainerrors.ErrInvalidInput) {
			t.Fatalf("request id %q: expected invalid input, got %v", requestID, err)
		}
	}
}

func TestGetRequestNotFound(t *testing.T) {
	service, _ := newTestService()

	_, err := service.GetRequest(context.Background(), testRequestID)
	if !errors.Is(err, domainerrors.ErrRequestNotFound) {
		t.Fatalf("expected request not found, got %v", err)
	}
}
