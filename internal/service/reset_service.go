package service

import (
	"context"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/repository"

	"github.com/rs/zerolog/log"
)

// Notifier delivers maintenance notifications. Production wiring uses
// worker.QueuedMailer so delivery retries ride the job queue.
type Notifier interface {
	Configured() bool
	Send(to, subject, body string) error
}

// ResetService wipes all operational data (transactions, routes, stocks,
// vehicles) while preserving master data (users, stores). Both entry points
// — the HTTP endpoint and the resetdata script — share this service, so the
// all-or-nothing transactional guarantee applies uniformly.
type ResetService interface {
	Reset(ctx context.Context) ([]repository.TableResult, error)
}

type resetService struct {
	repo       repository.ResetRepository
	notifier   Notifier
	adminEmail string
}

func NewResetService(repo repository.ResetRepository, notifier Notifier, adminEmail string) ResetService {
	return &resetService{repo: repo, notifier: notifier, adminEmail: adminEmail}
}

func (s *resetService) Reset(ctx context.Context) ([]repository.TableResult, error) {
	log.Warn().Msg("system data reset started — operational tables will be wiped")

	results, err := s.repo.Reset(ctx)
	if err != nil {
		log.Error().Err(err).Msg("system data reset failed, transaction rolled back")
		return nil, err
	}

	var total int64
	for _, res := range results {
		log.Info().Str("table", res.Table).Int64("deleted", res.Deleted).Msg("table cleared")
		total += res.Deleted
	}
	log.Info().Int64("rows_deleted", total).Msg("system data reset completed")

	if s.notifier != nil && s.notifier.Configured() && s.adminEmail != "" {
		if err := s.notifier.Send(
			s.adminEmail,
			"System data reset completed",
			"All operational coin-exchange data has been wiped. Users and stores were preserved.",
		); err != nil {
			// Notification is best-effort; the reset already committed.
			log.Warn().Err(err).Msg("failed to send reset notification")
		}
	}
	return results, nil
}
