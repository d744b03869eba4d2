package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colisexpress/delivery-system/internal/core/domain"
	"github.com/colisexpress/delivery-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, colisID, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, colisID, status string, ts time.Time) error
}

type deliveryEventService struct {
	colisRepo ports.ColisRepository
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewDeliveryEventService returns a DeliveryEventService implementation.
func NewDeliveryEventService(colisRepo ports.ColisRepository, dedup DedupChecker, log zerolog.Logger) ports.DeliveryEventService {
	return &deliveryEventService{
		colisRepo: colisRepo,
		dedup:     dedup,
		log:       log,
	}
}

// Process validates, deduplicates, and persists a single delivery event.
func (s *deliveryEventService) Process(ctx context.Context, in ports.DeliveryEventInput) error {
	newStatus := domain.ColisStatus(in.Status)

	// Idempotency check, silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.ColisID, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("colis_id", in.ColisID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("colis_id", in.ColisID).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}

	// Find colis. No client filter, events come from livreur devices.
	colis, err := s.colisRepo.FindByID(ctx, in.ColisID, "")
	if err != nil {
		return fmt.Errorf("process event: %w", err)
	}

	// 3. Validate state machine transition.
	if !colis.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("process event: %w (from %s to %s)", domain.ErrInvalidTransition, colis.Status, newStatus)
	}

	// 4. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.ColisID, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("colis_id", in.ColisID).Msg("failed to set dedup key")
	}

	// 5. Atomically update colis status + history.
	commentaire := in.Commentaire
	if commentaire == "" && in.Source != "" {
		commentaire = "reported by " + in.Source
	}
	if err := s.colisRepo.UpdateStatus(ctx, in.ColisID, newStatus, in.Timestamp, commentaire); err != nil {
		return fmt.Errorf("process event: update status: %w", err)
	}

	s.log.Info().
		Str("colis_id", in.ColisID).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("delivery event processed")

	return nil
}
