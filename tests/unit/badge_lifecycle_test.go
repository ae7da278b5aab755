package unit

import (
	"context"
	"errors"
	"testing"

	badgeregistry "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry"
	badgeerrors "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/domain/errors"
	badgehttp "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/transport/http"
	issuerregistry "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry"
	issuerhttp "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/transport/http"
	"github.com/techgyrl/BadgeBoost/internal/platform/clock"
)

const lifecycleHash = "cccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc"

func newBadgeStack(t *testing.T) (issuerregistry.Module, badgeregistry.Module, *clock.Manual) {
	t.Helper()
	manual := clock.NewManual(1000)
	issuers := issuerregistry.NewInMemoryModule("owner-1", manual, nil)
	badges := badgeregistry.NewInMemoryModule(issuers.Service, manual, nil)

	_, err := issuers.Handler.AuthorizeIssuerHandler(
		context.Background(),
		"owner-1",
		issuerhttp.AuthorizeIssuerRequest{Issuer: "issuer-1", Name: "Cert Board"},
	)
	if err != nil {
		t.Fatalf("authorize issuer failed: %v", err)
	}
	return issuers, badges, manual
}

func TestBadgeIssueTransferRevokeChain(t *testing.T) {
	_, badges, manual := newBadgeStack(t)
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

	manual.Advance(5)
	transferred, err := badges.Handler.TransferBadgeHandler(ctx, "alice", badgeID, badgehttp.TransferBadgeRequest{NewOwner: "bob"})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if transferred.Data.Owner != "bob" {
		t.Fatalf("expected owner bob, got %s", transferred.Data.Owner)
	}

	// The previous owner lost all control at the moment of transfer.
	_, err = badges.Handler.TransferBadgeHandler(ctx, "alice", badgeID, badgehttp.TransferBadgeRequest{NewOwner: "carol"})
	if !errors.Is(err, badgeerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for stale owner, got %v", err)
	}

	manual.Advance(5)
	revoked, err := badges.Handler.RevokeBadgeHandler(ctx, "issuer-1", badgeID, badgehttp.RevokeBadgeRequest{Reason: "credential misuse"})
	if err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if !revoked.Data.Revoked {
		t.Fatal("expected badge to be revoked")
	}

	// Revocation is terminal for transfers.
	_, err = badges.Handler.TransferBadgeHandler(ctx, "bob", badgeID, badgehttp.TransferBadgeRequest{NewOwner: "carol"})
	if !errors.Is(err, badgeerrors.ErrTransferFailed) {
		t.Fatalf("expected transfer failed, got %v", err)
	}

	history, err := badges.Handler.OwnershipHistoryHandler(ctx, badgeID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history.Data) != 1 {
		t.Fatalf("expected exactly one ownership entry, got %d", len(history.Data))
	}
	if history.Data[0].PreviousOwner != "alice" || history.Data[0].NewOwner != "bob" {
		t.Fatalf("unexpected history entry: %+v", history.Data[0])
	}
}

func TestDeauthorizedIssuerCannotIssueButBadgesSurvive(t *testing.T) {
	issuers, badges, _ := newBadgeStack(t)
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

	if _, err := issuers.Handler.DeauthorizeIssuerHandler(ctx, "owner-1", "issuer-1"); err != nil {
		t.Fatalf("deauthorize failed: %v", err)
	}

	_, err = badges.Handler.IssueBadgeHandler(ctx, "issuer-1", badgehttp.IssueBadgeRequest{
		Recipient:        "bob",
		BadgeType:        "certification",
		Title:            "Networking",
		VerificationHash: lifecycleHash,
	})
	if !errors.Is(err, badgeerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized after deauthorization, got %v", err)
	}

	// The earlier badge still exists and still transfers.
	if _, err := badges.Handler.TransferBadgeHandler(ctx, "alice", issued.Data.BadgeID, badgehttp.TransferBadgeRequest{NewOwner: "bob"}); err != nil {
		t.Fatalf("expected surviving badge to transfer, got %v", err)
	}
}

func TestBatchRevokeMixedOutcomesOverHTTPHandlers(t *testing.T) {
	_, badges, _ := newBadgeStack(t)
	ctx := context.Background()

	first, err := badges.Handler.IssueBadgeHandler(ctx, "issuer-1", badgehttp.IssueBadgeRequest{
		Recipient:        "alice",
		BadgeType:        "certification",
		Title:            "Distributed Systems",
		VerificationHash: lifecycleHash,
	})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	resp, err := badges.Handler.BatchRevokeHandler(ctx, "issuer-1", badgehttp.BatchRevokeRequest{
		BadgeIDs: []uint64{first.Data.BadgeID, 777},
		Reason:   "sweep",
	})
	if err != nil {
		t.Fatalf("batch revoke failed: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(resp.Data))
	}
	if !resp.Data[0].Revoked {
		t.Fatalf("expected first badge revoked, got %+v", resp.Data[0])
	}
	if resp.Data[1].Revoked || resp.Data[1].ErrorCode != "not_found" {
		t.Fatalf("expected not_found outcome, got %+v", resp.Data[1])
	}
}
