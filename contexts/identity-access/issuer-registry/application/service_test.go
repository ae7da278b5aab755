package application

import (
	"context"
	"errors"
	"testing"

	"github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/adapters/memory"
	domainerrors "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/domain/errors"
	"github.com/techgyrl/BadgeBoost/internal/platform/clock"
)

func newService(t *testing.T) Service {
	t.Helper()
	return Service{
		RootOwner: "owner-1",
		Repo:      memory.NewStore(),
		Clock:     clock.NewManual(100),
	}
}

func TestAuthorizeIssuerOwnerOnly(t *testing.T) {
	service := newService(t)

	_, err := service.AuthorizeIssuer(context.Background(), "stranger-1", "issuer-1", "Issuer One")
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	issuer, err := service.AuthorizeIssuer(context.Background(), "owner-1", "issuer-1", "Issuer One")
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	if !issuer.Authorized {
		t.Fatal("expected issuer to be authorized")
	}
	if issuer.AuthorizedAt != 100 {
		t.Fatalf("expected authorized_at 100, got %d", issuer.AuthorizedAt)
	}
}

func TestAuthorizeIssuerIdempotentKeepsAuthorizedAt(t *testing.T) {
	service := newService(t)
	manual := service.Clock.(*clock.Manual)

	first, err := service.AuthorizeIssuer(context.Background(), "owner-1", "issuer-1", "Issuer One")
	if err != nil {
		t.Fatalf("first authorize failed: %v", err)
	}

	manual.Advance(50)
	second, err := service.AuthorizeIssuer(context.Background(), "owner-1", "issuer-1", "Issuer One")
	if err != nil {
		t.Fatalf("second authorize failed: %v", err)
	}
	if second.AuthorizedAt != first.AuthorizedAt {
		t.Fatalf("expected authorized_at to stay %d, got %d", first.AuthorizedAt, second.AuthorizedAt)
	}
}

func TestDeauthorizeIssuerFlipsFlag(t *testing.T) {
	service := newService(t)

	if _, err := service.AuthorizeIssuer(context.Background(), "owner-1", "issuer-1", "Issuer One"); err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	issuer, err := service.DeauthorizeIssuer(context.Background(), "owner-1", "issuer-1")
	if err != nil {
		t.Fatalf("deauthorize failed: %v", err)
	}
	if issuer.Authorized {
		t.Fatal("expected issuer to be deauthorized")
	}

	authorized, err := service.IsIssuerAuthorized(context.Background(), "issuer-1")
	if err != nil {
		t.Fatalf("is authorized failed: %v", err)
	}
	if authorized {
		t.Fatal("expected authorization check to report false")
	}
}

func TestDeauthorizeUnknownIssuer(t *testing.T) {
	service := newService(t)

	_, err := service.DeauthorizeIssuer(context.Background(), "owner-1", "issuer-ghost")
	if !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAdminLifecycle(t *testing.T) {
	service := newService(t)

	_, err := service.AddAdmin(context.Background(), "stranger-1", "admin-1")
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	if _, err := service.AddAdmin(context.Background(), "owner-1", "admin-1"); err != nil {
		t.Fatalf("add admin failed: %v", err)
	}
	isAdmin, err := service.IsAdmin(context.Background(), "admin-1")
	if err != nil {
		t.Fatalf("is admin failed: %v", err)
	}
	if !isAdmin {
		t.Fatal("expected admin-1 to be an admin")
	}

	if err := service.RemoveAdmin(context.Background(), "owner-1", "admin-1"); err != nil {
		t.Fatalf("remove admin failed: %v", err)
	}
	isAdmin, err = service.IsAdmin(context.Background(), "admin-1")
	if err != nil {
		t.Fatalf("is admin after removal failed: %v", err)
	}
	if isAdmin {
		t.Fatal("expected admin-1 to no longer be an admin")
	}
}

func TestIsOwner(t *testing.T) {
	service := newService(t)

	if !service.IsOwner("owner-1") {
		t.Fatal("expected owner-1 to be the root owner")
	}
	if service.IsOwner("admin-1") {
		t.Fatal("expected admin-1 not to be the root owner")
	}
	if service.Owner() != "owner-1" {
		t.Fatalf("expected owner identity owner-1, got %s", service.Owner())
	}
}
