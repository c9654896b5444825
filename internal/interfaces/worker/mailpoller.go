// Package worker assembles the background mail ingestion shared by the
// worker binary and the "mail poll" command.
package worker

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/synerjet/bendesk/internal/application/mailbridge"
	"github.com/synerjet/bendesk/internal/application/mailbridge/usecases"
	"github.com/synerjet/bendesk/internal/infrastructure/cache"
	"github.com/synerjet/bendesk/internal/infrastructure/config"
	"github.com/synerjet/bendesk/internal/infrastructure/email"
	"github.com/synerjet/bendesk/internal/infrastructure/graph"
	"github.com/synerjet/bendesk/internal/infrastructure/metrics"
	"github.com/synerjet/bendesk/internal/infrastructure/repository"
	"github.com/synerjet/bendesk/internal/infrastructure/storage"
	"github.com/synerjet/bendesk/internal/shared/db"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/services/markdown"
)

type ingester interface {
	Execute(ctx context.Context) (*usecases.IngestResult, error)
}

// MailPoller runs one ingestion pass per Execute and records it in metrics.
// It satisfies scheduler.BatchJob.
type MailPoller struct {
	ingest  ingester
	metrics *metrics.Metrics
	logger  logger.Interface
}

func NewMailPoller(ingest ingester, m *metrics.Metrics, log logger.Interface) *MailPoller {
	return &MailPoller{ingest: ingest, metrics: m, logger: log}
}

// Execute returns the number of messages fetched.
func (p *MailPoller) Execute(ctx context.Context) (int, error) {
	start := time.Now()
	result, err := p.ingest.Execute(ctx)

	outcomes := map[string]int{}
	if result != nil {
		for o, n := range result.Outcomes {
			outcomes[string(o)] = n
		}
	}
	p.metrics.ObserveMailPoll(outcomes, time.Since(start), err)

	if err != nil {
		return 0, err
	}
	if result.Fetched > 0 {
		p.logger.Infow("mailbox poll finished",
			"fetched", result.Fetched,
			"created", outcomes[string(usecases.OutcomeCreated)],
			"commented", outcomes[string(usecases.OutcomeCommented)],
			"ignored", outcomes[string(usecases.OutcomeIgnored)],
			"failed", outcomes[string(usecases.OutcomeFailed)],
		)
	}
	return result.Fetched, nil
}

// BuildMailPoller wires the Graph mailbox to the ticket store. With
// mail.enabled=false the poller reads from mailbridge.DisabledSource. The
// returned close func releases the token cache.
func BuildMailPoller(ctx context.Context, gdb *gorm.DB, cfg *config.Config, m *metrics.Metrics, log logger.Interface) (*MailPoller, func() error, error) {
	tokenCache, closeCache, err := cache.NewTokenCache(ctx, cfg.Mail, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open token cache: %w", err)
	}

	files, err := storage.NewFileStore(cfg.Storage.UploadDir, cfg.Storage.MaxUploadSize, log)
	if err != nil {
		_ = closeCache()
		return nil, nil, fmt.Errorf("failed to open upload directory: %w", err)
	}

	var source mailbridge.MailSource = mailbridge.DisabledSource{}
	if cfg.Mail.Enabled {
		tokens := graph.NewTokenProvider(cfg.Mail, tokenCache, log)
		source = graph.NewClient(cfg.Mail, tokens, log)
	} else {
		log.Warnw("mail integration disabled, the poller will find no messages")
	}

	ingest := usecases.NewIngestMessagesUseCase(
		source,
		repository.NewTicketRepository(gdb),
		repository.NewTicketCommentRepository(gdb),
		repository.NewTicketAttachmentRepository(gdb),
		files,
		email.NewTicketNotifier(email.NewSender(cfg.Email, log), log),
		markdown.NewRenderer(),
		db.NewTransactionManager(gdb),
		log.Named("mailbridge"),
	)

	return NewMailPoller(ingest, m, log), closeCache, nil
}
