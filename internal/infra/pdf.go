package infra

// pdf.go — Pickup receipt PDF generation using go-pdf/fpdf.
// Renders an A7-size receipt with the store name, pickup timestamp, a
// denomination table and the bold total, and returns the raw bytes for
// upload to object storage.

import (
	"bytes"
	"fmt"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReceiptPDF renders the receipt for a recorded coin pickup.
func GenerateReceiptPDF(t *model.Transaction) ([]byte, error) {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Penukaran Koin", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Bukti Penjemputan Koin", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Pickup info ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	storeName := ""
	if t.Store != nil {
		storeName = t.Store.Name
	}
	pdf.CellFormat(contentW, 5, storeName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, t.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, fmt.Sprintf("Ref %s", t.ID.String()[:8]), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Denomination table ───────────────────────────────────────────────────
	col1 := contentW * 0.40 // denomination
	col2 := contentW * 0.24 // qty
	col3 := contentW * 0.36 // amount

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 4, "Pecahan", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 4, "Jumlah", "", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 4, "Nilai", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, line := range t.Details {
		pdf.CellFormat(col1, 4, fmt.Sprintf("Rp %d", line.Denomination), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 4, line.Amount.StringFixed(0), "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(1)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "TOTAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2+col3, 6, "Rp "+t.TotalAmount.StringFixed(0), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
