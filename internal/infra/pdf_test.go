package infra

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"
)

func TestGenerateReceiptPDF(t *testing.T) {
	tx := &model.Transaction{
		ID:          uuid.New(),
		TotalAmount: decimal.NewFromInt(15000),
		CreatedAt:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Store:       &model.Store{Name: "Toko Sumber Rejeki"},
		Details: []model.TransactionDetail{
			{Denomination: 500, Quantity: 20, Amount: decimal.NewFromInt(10000)},
			{Denomination: 1000, Quantity: 5, Amount: decimal.NewFromInt(5000)},
		},
	}

	data, err := GenerateReceiptPDF(tx)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateReceiptPDFWithoutStorePreload(t *testing.T) {
	tx := &model.Transaction{
		ID:          uuid.New(),
		TotalAmount: decimal.NewFromInt(2000),
		CreatedAt:   time.Now(),
		Details: []model.TransactionDetail{
			{Denomination: 200, Quantity: 10, Amount: decimal.NewFromInt(2000)},
		},
	}

	data, err := GenerateReceiptPDF(tx)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
