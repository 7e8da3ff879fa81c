package worker

// email_worker.go
// Processes notification email jobs from QueueEmail. Delivery runs off the
// request path; a failed send is requeued by the pool and eventually lands
// in the DLQ with its attempt count.

import (
	"context"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// mailSender is the delivery dependency of EmailWorker.
// Implemented by infra.Mailer.
type mailSender interface {
	Send(to, subject, body string) error
}

// EmailWorker delivers notification emails via SMTP.
type EmailWorker struct {
	mailer mailSender
}

func NewEmailWorker(mailer mailSender) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends one notification email. The error return drives the pool's
// retry/DLQ escalation.
func (w *EmailWorker) Process(_ context.Context, payload EmailJobPayload) error {
	if err := w.mailer.Send(payload.To, payload.Subject, payload.Body); err != nil {
		return err
	}
	log.Info().Str("to", payload.To).Str("subject", payload.Subject).Msg("notification email sent")
	return nil
}

// emailQueuer is the enqueue dependency of QueuedMailer.
// Implemented by Dispatcher.
type emailQueuer interface {
	EnqueueEmail(ctx context.Context, payload EmailJobPayload) error
}

// QueuedMailer satisfies the notifier contract by enqueueing email jobs
// instead of blocking on SMTP. Delivery and retries happen in the worker
// pool.
type QueuedMailer struct {
	queue      emailQueuer
	configured bool
}

func NewQueuedMailer(queue emailQueuer, configured bool) *QueuedMailer {
	return &QueuedMailer{queue: queue, configured: configured}
}

func (m *QueuedMailer) Configured() bool { return m.configured }

func (m *QueuedMailer) Send(to, subject, body string) error {
	return m.queue.EnqueueEmail(context.Background(), EmailJobPayload{
		To:      to,
		Subject: subject,
		Body:    body,
	})
}
