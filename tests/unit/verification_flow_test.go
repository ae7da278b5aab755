package unit

import (
	"context"
	"errors"
	"testing"

	badgeregistry "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry"
	badgehttp "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/transport/http"
	verificationservice "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service"
	registryadapter "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/adapters/registry"
	verifyerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/domain/errors"
	verifyhttp "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/transport/http"
	issuerregistry "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry"
	issuerhttp "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/transport/http"
	"github.com/techgyrl/BadgeBoost/internal/platform/clock"
)

const flowRequestID = "dddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd"

func newVerificationStack(t *testing.T) (issuerregistry.Module, badgeregistry.Module, verificationservice.Module, *clock.Manual) {
	t.Helper()
	manual := clock.NewManual(3000)
	issuers := issuerregistry.NewInMemoryModule("owner-1", manual, nil)
	badges := badgeregistry.NewInMemoryModule(issuers.Service, manual, nil)
	verification := verificationservice.NewInMemoryModule(
		registryadapter.BadgeSource{Badges: badges.Store},
		issuers.Service,
		manual,
		nil,
	)

	_, err := issuers.Handler.AuthorizeIssuerHandler(
		context.Background(),
		"owner-1",
		issuerhttp.AuthorizeIssuerRequest{Issuer: "issuer-1", Name: "Cert Board"},
	)
	if err != nil {
		t.Fatalf("authorize issuer failed: %v", err)
	}
	return issuers, badges, verification, manual
}

func TestVerificationTracksRegistryState(t *testing.T) {
	issuers, badges, verification, _ := newVerificationStack(t)
	ctx := context.Background()

	issued, err := badges.Handler.IssueBadgeHandler(ctx, "issuer-1", badgehttp.IssueBadgeRequest{
		Recipient:        "alice",
		BadgeType:        "certification",
		Title:            "Distributed Systems",
		VerificationHash: lifecycleHash,
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	badgeID := issued.Data.BadgeID

	owned, err := verification.Handler.VerifyOwnershipHandler(ctx, badgeID, "alice")
	if err != nil {
		t.Fatalf("verify ownership failed: %v", err)
	}
	if !owned.Data.Owned {
		t.Fatal("expected alice to own the badge")
	}

	if _, err := badges.Handler.TransferBadgeHandler(ctx, "alice", badgeID, badgehttp.TransferBadgeRequest{NewOwner: "bob"}); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	owned, err = verification.Handler.VerifyOwnershipHandler(ctx, badgeID, "alice")
	if err != nil {
		t.Fatalf("verify ownership failed: %v", err)
	}
	if owned.Data.Owned {
		t.Fatal("expected ownership to track the transfer")
	}

	report, err := verification.Handler.VerifyAuthenticityHandler(ctx, badgeID)
	if err != nil {
		t.Fatalf("verify authenticity failed: %v", err)
	}
	if !report.Data.Exists || report.Data.Revoked || !report.Data.IssuerAuthorized {
		t.Fatalf("unexpected report: %+v", report.Data)
	}

	// Deauthorizing the issuer flips the point-in-time authenticity view.
	if _, err := issuers.Handler.DeauthorizeIssuerHandler(ctx, "owner-1", "issuer-1"); err != nil {
		t.Fatalf("deauthorize failed: %v", err)
	}
	report, err = verification.Handler.VerifyAuthenticityHandler(ctx, badgeID)
	if err != nil {
		t.Fatalf("verify authenticity failed: %v", err)
	}
	if report.Data.IssuerAuthorized {
		t.Fatal("expected issuer_authorized to reflect current registry state")
	}
}

func TestBatchVerifyAfterRevokeAndExpiry(t *testing.T) {
	_, badges, verification, manual := newVerificationStack(t)
	ctx := context.Background()

	expiry := uint64(3100)
	good, err := badges.Handler.IssueBadgeHandler(ctx, "issuer-1", badgehttp.IssueBadgeRequest{
		Recipient:        "alice",
		BadgeType:        "certification",
		Title:            "Distributed Systems",
		VerificationHash: lifecycleHash,
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	expiring, err := badges.Handler.IssueBadgeHandler(ctx, "issuer-1", badgehttp.IssueBadgeRequest{
		Recipient:        "bob",
		BadgeType:        "certification",
		Title:            "Networking",
		ExpiresAt:        &expiry,
		VerificationHash: lifecycleHash,
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	doomed, err := badges.Handler.IssueBadgeHandler(ctx, "issuer-1", badgehttp.IssueBadgeRequest{
		Recipient:        "carol",
		BadgeType:        "certification",
		Title:            "Databases",
		VerificationHash: lifecycleHash,
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := badges.Handler.RevokeBadgeHandler(ctx, "issuer-1", doomed.Data.BadgeID, badgehttp.RevokeBadgeRequest{}); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	manual.Set(3100)

	resp, err := verification.Handler.BatchVerifyHandler(ctx, verifyhttp.BatchVerifyRequest{
		BadgeIDs: []uint64{good.Data.BadgeID, expiring.Data.BadgeID, doomed.Data.BadgeID, 404},
	})
	if err != nil {
		t.Fatalf("batch verify failed: %v", err)
	}
	if len(resp.Data) != 4 {
		t.Fatalf("expected 4 statuses, got %d", len(resp.Data))
	}
	if !resp.Data[0].Valid {
		t.Fatal("expected unexpired unrevoked badge to be valid")
	}
	if resp.Data[1].Valid || !resp.Data[1].Expired {
		t.Fatalf("expected expired badge to be invalid, got %+v", resp.Data[1])
	}
	if resp.Data[2].Valid || !resp.Data[2].Revoked {
		t.Fatalf("expected revoked badge to be invalid, got %+v", resp.Data[2])
	}
	if resp.Data[3].Valid || resp.Data[3].Exists {
		t.Fatalf("expected missing badge to be invalid, got %+v", resp.Data[3])
	}
}

func TestVerificationRequestLedger(t *testing.T) {
	_, badges, verification, _ := newVerificationStack(t)
	ctx := context.Background()

	issued, err := badges.Handler.IssueBadgeHandler(ctx, "issuer-1", badgehttp.IssueBadgeRequest{
		Recipient:        "alice",
		BadgeType:        "certification",
		Title:            "Distributed Systems",
		VerificationHash: lifecycleHash,
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	created, err := verification.Handler.CreateRequestHandler(ctx, "acme-hr", verifyhttp.CreateRequestRequest{
		RequestID: flowRequestID,
		BadgeID:   issued.Data.BadgeID,
		Data:      "employment screening",
	})
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if !created.Data.Verified {
		t.Fatal("expected request to be marked verified")
	}

	_, err = verification.Handler.CreateRequestHandler(ctx, "other-corp", verifyhttp.CreateRequestRequest{
		RequestID: flowRequestID,
		BadgeID:   issued.Data.BadgeID,
	})
	if !errors.Is(err, verifyerrors.ErrRequestExists) {
		t.Fatalf("expected request exists, got %v", err)
	}

	fetched, err := verification.Handler.GetRequestHandler(ctx, flowRequestID)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	if fetched.Data.Requester != "acme-hr" {
		t.Fatalf("expected original requester to survive the collision, got %s", fetched.Data.Requester)
	}
}
