package worker

import (
	"context"
	"fmt"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/infra"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReceiptWorker renders a pickup receipt PDF and uploads it to object
// storage, then records the public URL on the transaction.
type ReceiptWorker struct {
	transactions repository.TransactionRepository
	storage      infra.ObjectStorage
}

func NewReceiptWorker(transactions repository.TransactionRepository, storage infra.ObjectStorage) *ReceiptWorker {
	return &ReceiptWorker{transactions: transactions, storage: storage}
}

func (w *ReceiptWorker) Process(ctx context.Context, payload ReceiptJobPayload) error {
	id, err := uuid.Parse(payload.TransactionID)
	if err != nil {
		return fmt.Errorf("receipt: invalid transaction id %q: %w", payload.TransactionID, err)
	}

	t, err := w.transactions.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("receipt: load transaction: %w", err)
	}

	pdfBytes, err := infra.GenerateReceiptPDF(t)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("receipts/%s.pdf", t.ID)
	url, err := w.storage.Upload(ctx, key, pdfBytes)
	if err != nil {
		return fmt.Errorf("receipt: upload: %w", err)
	}

	if err := w.transactions.SetReceiptURL(ctx, t.ID, url); err != nil {
		return fmt.Errorf("receipt: save url: %w", err)
	}

	log.Info().Str("transaction_id", t.ID.String()).Str("url", url).Msg("receipt uploaded")
	return nil
}
