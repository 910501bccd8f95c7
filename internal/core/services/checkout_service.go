package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hqdw/hq_warehouse_app/internal/core/domain"
	portsrepo "github.com/hqdw/hq_warehouse_app/internal/core/ports/repositories"
)

// rejectedMarker is stored in fields_in_error when the warehouse refused a row
// outright; no single field is at fault.
const rejectedMarker = "rejected"

// RecordOutcome is the result of checking out one staging record.
type RecordOutcome struct {
	Entity        domain.EntityType
	StagingID     int64
	StagingRepr   string
	Success       bool
	WarehouseKind string
	WarehouseRepr string
}

func (o RecordOutcome) String() string {
	if o.Success {
		return fmt.Sprintf("SUCCESS %s %s => %s %s", o.Entity, o.StagingRepr, o.WarehouseKind, o.WarehouseRepr)
	}
	return fmt.Sprintf("FAILURE %s %s", o.Entity, o.StagingRepr)
}

// CheckoutService drives staging records through validation, forex resolution
// and the warehouse writer, and stamps the outcome back onto each record. A
// record's failure never aborts the run; only store or configuration failures
// do.
type CheckoutService struct {
	staging   portsrepo.StagingRepositoryFacade
	batches   portsrepo.BatchRepositoryFacade
	validator *CheckoutValidator
	writer    *WarehouseWriter
	cache     *DimensionCache
	loc       *time.Location
	logger    *slog.Logger
}

// NewCheckoutService wires the checkout pipeline together.
func NewCheckoutService(
	staging portsrepo.StagingRepositoryFacade,
	batches portsrepo.BatchRepositoryFacade,
	validator *CheckoutValidator,
	writer *WarehouseWriter,
	cache *DimensionCache,
	loc *time.Location,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		staging:   staging,
		batches:   batches,
		validator: validator,
		writer:    writer,
		cache:     cache,
		loc:       loc,
		logger:    logger,
	}
}

// CheckoutBatch checks out every staging record of one batch: currencies
// first, then forex, then offers. Offer checkout depends on dimensions the
// earlier phases of the same batch may have created, so the order is fixed.
// The batch is marked processed once every record has been attempted,
// whatever the individual outcomes.
func (s *CheckoutService) CheckoutBatch(ctx context.Context, batchID int64) ([]RecordOutcome, error) {
	batch, err := s.batches.FindBatchByID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("find batch %d: %w", batchID, err)
	}

	var outcomes []RecordOutcome

	currencies, err := s.staging.ListStagingCurrenciesByBatch(ctx, batch.ID)
	if err != nil {
		return nil, fmt.Errorf("list staging currencies of batch %d: %w", batch.ID, err)
	}
	for _, rec := range currencies {
		outcome, err := s.checkoutCurrency(ctx, rec)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}

	rates, err := s.staging.ListStagingForexByBatch(ctx, batch.ID)
	if err != nil {
		return outcomes, fmt.Errorf("list staging forex of batch %d: %w", batch.ID, err)
	}
	for _, rec := range rates {
		outcome, err := s.checkoutForex(ctx, rec)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}

	offers, err := s.staging.ListStagingOffersByBatch(ctx, batch.ID)
	if err != nil {
		return outcomes, fmt.Errorf("list staging offers of batch %d: %w", batch.ID, err)
	}
	for _, rec := range offers {
		outcome, err := s.checkoutOffer(ctx, rec)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}

	if err := s.batches.MarkBatchProcessed(ctx, batch.ID); err != nil {
		return outcomes, fmt.Errorf("mark batch %d processed: %w", batch.ID, err)
	}

	s.logger.Info("batch checkout finished",
		slog.Int64("batch_id", batch.ID),
		slog.Int("records", len(outcomes)),
	)
	return outcomes, nil
}

// SweepErrors re-attempts every staging record of one entity type that is
// flagged in_error and not ignored, across all batches.
func (s *CheckoutService) SweepErrors(ctx context.Context, entity domain.EntityType) ([]RecordOutcome, error) {
	var outcomes []RecordOutcome

	switch entity {
	case domain.EntityCurrency:
		recs, err := s.staging.ListStagingCurrenciesInError(ctx)
		if err != nil {
			return nil, fmt.Errorf("list staging currencies in error: %w", err)
		}
		for _, rec := range recs {
			outcome, err := s.checkoutCurrency(ctx, rec)
			if err != nil {
				return outcomes, err
			}
			outcomes = append(outcomes, outcome)
		}
	case domain.EntityForex:
		recs, err := s.staging.ListStagingForexInError(ctx)
		if err != nil {
			return nil, fmt.Errorf("list staging forex in error: %w", err)
		}
		for _, rec := range recs {
			outcome, err := s.checkoutForex(ctx, rec)
			if err != nil {
				return outcomes, err
			}
			outcomes = append(outcomes, outcome)
		}
	case domain.EntityOffer:
		recs, err := s.staging.ListStagingOffersInError(ctx)
		if err != nil {
			return nil, fmt.Errorf("list staging offers in error: %w", err)
		}
		for _, rec := range recs {
			outcome, err := s.checkoutOffer(ctx, rec)
			if err != nil {
				return outcomes, err
			}
			outcomes = append(outcomes, outcome)
		}
	default:
		return nil, fmt.Errorf("unknown entity type %q", entity)
	}

	s.logger.Info("error sweep finished",
		slog.String("entity", string(entity)),
		slog.Int("records", len(outcomes)),
	)
	return outcomes, nil
}

func (s *CheckoutService) checkoutCurrency(ctx context.Context, rec domain.StagingCurrency) (RecordOutcome, error) {
	outcome := RecordOutcome{Entity: domain.EntityCurrency, StagingID: rec.ID, StagingRepr: rec.String()}

	params, failed := s.validator.ValidateCurrency(rec)
	if len(failed) > 0 {
		return outcome, s.markError(ctx, domain.EntityCurrency, rec.ID, failed)
	}

	params.Origin = s.origin(rec.BatchID, rec.ID)
	written, result, err := s.writer.WriteCurrency(ctx, params)
	if err != nil {
		return outcome, err
	}
	if result == OutcomeRejected {
		return outcome, s.markRejected(ctx, domain.EntityCurrency, rec.ID)
	}

	s.cache.PutCurrency(*written)
	outcome.Success = true
	outcome.WarehouseKind = "Currency"
	outcome.WarehouseRepr = written.String()
	return outcome, s.markProcessed(ctx, domain.EntityCurrency, rec.ID)
}

func (s *CheckoutService) checkoutForex(ctx context.Context, rec domain.StagingForex) (RecordOutcome, error) {
	outcome := RecordOutcome{Entity: domain.EntityForex, StagingID: rec.ID, StagingRepr: rec.String()}

	params, failed, err := s.validator.ValidateForex(ctx, rec)
	if err != nil {
		return outcome, err
	}
	if len(failed) > 0 {
		return outcome, s.markError(ctx, domain.EntityForex, rec.ID, failed)
	}

	params.Origin = s.origin(rec.BatchID, rec.ID)
	written, result, err := s.writer.WriteForex(ctx, params)
	if err != nil {
		return outcome, err
	}
	if result == OutcomeRejected {
		return outcome, s.markRejected(ctx, domain.EntityForex, rec.ID)
	}

	s.cache.PutForex(*written)
	outcome.Success = true
	outcome.WarehouseKind = "Forex"
	outcome.WarehouseRepr = written.String()
	return outcome, s.markProcessed(ctx, domain.EntityForex, rec.ID)
}

func (s *CheckoutService) checkoutOffer(ctx context.Context, rec domain.StagingOffer) (RecordOutcome, error) {
	outcome := RecordOutcome{Entity: domain.EntityOffer, StagingID: rec.ID, StagingRepr: rec.String()}

	params, dest, failed, err := s.validator.ValidateOffer(ctx, rec)
	if err != nil {
		return outcome, err
	}
	if len(failed) > 0 {
		return outcome, s.markError(ctx, domain.EntityOffer, rec.ID, failed)
	}

	params.Origin = s.origin(rec.BatchID, rec.ID)
	written, result, err := s.writer.WriteOffer(ctx, dest, params)
	if err != nil {
		return outcome, err
	}
	if result == OutcomeRejected {
		return outcome, s.markRejected(ctx, domain.EntityOffer, rec.ID)
	}

	outcome.Success = true
	if dest == domain.DestInvalidOffer {
		outcome.WarehouseKind = "InvalidOffer"
	} else {
		outcome.WarehouseKind = "ValidOffer"
	}
	outcome.WarehouseRepr = written.String()
	return outcome, s.markProcessed(ctx, domain.EntityOffer, rec.ID)
}

func (s *CheckoutService) origin(batchID, originID int64) domain.Origin {
	return domain.Origin{
		BatchID:    batchID,
		OriginID:   originID,
		InsertDate: time.Now().In(s.loc),
	}
}

func (s *CheckoutService) markProcessed(ctx context.Context, entity domain.EntityType, id int64) error {
	status := domain.CheckoutStatus{Processed: true}
	if err := s.staging.UpdateStagingStatus(ctx, entity, id, status); err != nil {
		return fmt.Errorf("mark %s record %d processed: %w", entity, id, err)
	}
	return nil
}

func (s *CheckoutService) markError(ctx context.Context, entity domain.EntityType, id int64, failed []string) error {
	joined := strings.Join(failed, ",")
	status := domain.CheckoutStatus{Processed: true, InError: true, FieldsInError: &joined}
	if err := s.staging.UpdateStagingStatus(ctx, entity, id, status); err != nil {
		return fmt.Errorf("mark %s record %d in error: %w", entity, id, err)
	}
	s.logger.Debug("record failed validation",
		slog.String("entity", string(entity)),
		slog.Int64("staging_id", id),
		slog.String("fields", joined),
	)
	return nil
}

func (s *CheckoutService) markRejected(ctx context.Context, entity domain.EntityType, id int64) error {
	marker := rejectedMarker
	status := domain.CheckoutStatus{Processed: true, InError: true, FieldsInError: &marker}
	if err := s.staging.UpdateStagingStatus(ctx, entity, id, status); err != nil {
		return fmt.Errorf("mark %s record %d rejected: %w", entity, id, err)
	}
	s.logger.Warn("record rejected by warehouse",
		slog.String("entity", string(entity)),
		slog.Int64("staging_id", id),
	)
	return nil
}
