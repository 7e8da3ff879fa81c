package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueReceipt = "jobs:receipt"
	QueueEmail   = "jobs:email"

	// maxJobAttempts bounds the requeue loop; a job that keeps failing lands
	// in the DLQ with its real attempt count.
	maxJobAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// ReceiptJobPayload identifies the transaction whose receipt is generated.
type ReceiptJobPayload struct {
	TransactionID string `json:"transaction_id"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueReceipt pushes a receipt-generation job to Redis.
func (d *Dispatcher) EnqueueReceipt(ctx context.Context, transactionID uuid.UUID) error {
	return d.enqueue(ctx, QueueReceipt, "receipt", ReceiptJobPayload{TransactionID: transactionID.String()})
}

// EnqueueEmail pushes a notification email job to Redis.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload EmailJobPayload) error {
	return d.enqueue(ctx, QueueEmail, "email", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// WorkerHandlers bundles the concrete job handlers wired at the composition
// root. A nil handler means the concern is disabled (e.g. object storage
// unconfigured); its jobs fail and escalate to the DLQ.
type WorkerHandlers struct {
	Receipt *ReceiptWorker
	Email   *EmailWorker
}

// StartWorkerPool launches numWorkers goroutines consuming the job queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	queues := []string{QueueReceipt, QueueEmail}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	err := dispatch(ctx, handlers, &job)
	if err == nil {
		return
	}
	log.Error().Err(err).Str("queue", queue).Str("type", job.Type).Int("attempt", job.Attempts+1).Msg("job failed")

	job.Attempts++
	if shouldRetry(&job) {
		requeue(ctx, rdb, queue, job)
		return
	}
	SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
}

// dispatch routes the job to its handler. Unknown types are dropped without
// retry: an unrecognized job will never succeed on a requeue.
func dispatch(ctx context.Context, handlers *WorkerHandlers, job *Job) error {
	switch job.Type {
	case "receipt":
		var payload ReceiptJobPayload
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return err
		}
		if handlers.Receipt == nil {
			return errors.New("receipt processing disabled")
		}
		return handlers.Receipt.Process(ctx, payload)
	case "email":
		var payload EmailJobPayload
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return err
		}
		if handlers.Email == nil {
			return errors.New("email processing disabled")
		}
		return handlers.Email.Process(ctx, payload)
	default:
		log.Warn().Str("type", job.Type).Msg("unknown job type")
		return nil
	}
}

// shouldRetry reports whether a failed job gets another attempt.
func shouldRetry(job *Job) bool { return job.Attempts < maxJobAttempts }

func requeue(ctx context.Context, rdb *redis.Client, queue string, job Job) {
	encoded, err := json.Marshal(job)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal job for requeue")
		return
	}
	if err := rdb.LPush(ctx, queue, encoded).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("failed to requeue job")
		return
	}
	log.Warn().Str("queue", queue).Str("type", job.Type).Int("attempts", job.Attempts).Msg("job requeued")
}
