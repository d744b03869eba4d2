package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// stubDedup records marks and reports duplicates from a canned set.
type stubDedup struct {
	duplicates map[string]bool
	marked     []string
	checkErr   error
}

func (d *stubDedup) key(colisID, status string, ts time.Time) string {
	return colisID + ":" + status + ":" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDedup) IsDuplicate(ctx context.Context, colisID, status string, ts time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.duplicates[d.key(colisID, status, ts)], nil
}

func (d *stubDedup) Mark(ctx context.Context, colisID, status string, ts time.Time) error {
	d.marked = append(d.marked, d.key(colisID, status, ts))
	return nil
}

func seedColis(repo *stubColisRepo, status domain.ColisStatus) *domain.Colis {
	colis := &domain.Colis{
		Reference: "CX-00000001",
		ClientID:  "client-1",
		Status:    status,
	}
	_ = repo.Create(context.Background(), colis)
	return colis
}

func event(colisID, status string) ports.DeliveryEventInput {
	return ports.DeliveryEventInput{
		ColisID:   colisID,
		Status:    status,
		Timestamp: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Source:    "scanner-7",
	}
}

func TestProcessEventAppliesTransition(t *testing.T) {
	repo := newStubColisRepo()
	colis := seedColis(repo, domain.StatusEnCours)
	dedup := &stubDedup{duplicates: map[string]bool{}}
	svc := NewDeliveryEventService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), event(colis.ID, "LIVRE")); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if colis.Status != domain.StatusLivre {
		t.Errorf("status = %s, want LIVRE", colis.Status)
	}
	if len(dedup.marked) != 1 {
		t.Errorf("marked = %v", dedup.marked)
	}
	last := colis.Historique[len(colis.Historique)-1]
	if last.Commentaire != "reported by scanner-7" {
		t.Errorf("commentaire = %q", last.Commentaire)
	}
}

func TestProcessEventSkipsDuplicate(t *testing.T) {
	repo := newStubColisRepo()
	colis := seedColis(repo, domain.StatusEnCours)
	dedup := &stubDedup{duplicates: map[string]bool{}}
	svc := NewDeliveryEventService(repo, dedup, zerolog.Nop())

	in := event(colis.ID, "LIVRE")
	dedup.duplicates[dedup.key(in.ColisID, in.Status, in.Timestamp)] = true

	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if colis.Status != domain.StatusEnCours {
		t.Errorf("duplicate must not change status, got %s", colis.Status)
	}
}

func TestProcessEventInvalidTransition(t *testing.T) {
	repo := newStubColisRepo()
	colis := seedColis(repo, domain.StatusCree)
	svc := NewDeliveryEventService(repo, &stubDedup{duplicates: map[string]bool{}}, zerolog.Nop())

	err := svc.Process(context.Background(), event(colis.ID, "LIVRE"))
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if colis.Status != domain.StatusCree {
		t.Errorf("status = %s, want unchanged", colis.Status)
	}
}

func TestProcessEventUnknownColis(t *testing.T) {
	repo := newStubColisRepo()
	svc := NewDeliveryEventService(repo, &stubDedup{duplicates: map[string]bool{}}, zerolog.Nop())

	err := svc.Process(context.Background(), event("ghost", "LIVRE"))
	if !errors.Is(err, domain.ErrColisNotFound) {
		t.Fatalf("err = %v, want ErrColisNotFound", err)
	}
}

func TestProcessEventDedupFailureDegrades(t *testing.T) {
	repo := newStubColisRepo()
	colis := seedColis(repo, domain.StatusEnCours)
	dedup := &stubDedup{duplicates: map[string]bool{}, checkErr: errors.New("redis down")}
	svc := NewDeliveryEventService(repo, dedup, zerolog.Nop())

	// A dedup outage must not block event processing.
	if err := svc.Process(context.Background(), event(colis.ID, "LIVRE")); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if colis.Status != domain.StatusLivre {
		t.Errorf("status = %s, want LIVRE", colis.Status)
	}
}
