package services

import (
	"bytes"
	"fmt"

	"collectbox/internal/core/domain"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// buildReportPDF renders a minimal PDF for the financial report.
func buildReportPDF(events []domain.FundraisingEvent) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Fundraising Events Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 6, "Fundraising event name", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Currency", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, event := range events {
		pdf.CellFormat(90, 6, event.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, event.DisplayBalance().StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, event.CurrencyCode, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildReportXLSX renders a minimal XLSX for the financial report.
func buildReportXLSX(events []domain.FundraisingEvent) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "report"
	f.SetSheetName("Sheet1", sheet)

	_ = f.SetCellValue(sheet, "A1", "Fundraising event name")
	_ = f.SetCellValue(sheet, "B1", "Amount")
	_ = f.SetCellValue(sheet, "C1", "Currency")

	for i, event := range events {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), event.Name)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), event.DisplayBalance().StringFixed(2))
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), event.CurrencyCode)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
