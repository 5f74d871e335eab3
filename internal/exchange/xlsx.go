package exchange

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	transactionsSheet = "Transactions"
	summarySheet      = "Summary"
)

// WriteXLSX writes a workbook with the records on a Transactions sheet and
// the monthly totals on a Summary sheet.
func WriteXLSX(w io.Writer, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", transactionsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{
		NumFmt:    4, // #,##0.00
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return err
	}

	if err := writeRow(f, transactionsSheet, 1, headerStyle, "ID", "Date", "Type", "Category", "Amount"); err != nil {
		return err
	}
	for i, rec := range report.Records {
		row := i + 2
		if err := writeRow(f, transactionsSheet, row, 0, rec.ID, rec.Date.Format(dateLayout), string(rec.Type), rec.Category, rec.Amount.InexactFloat64()); err != nil {
			return err
		}
		cell := fmt.Sprintf("E%d", row)
		if err := f.SetCellStyle(transactionsSheet, cell, cell, amountStyle); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(transactionsSheet, "A", "A", 38)
	_ = f.SetColWidth(transactionsSheet, "B", "D", 14)
	_ = f.SetColWidth(transactionsSheet, "E", "E", 16)

	if err := writeRow(f, summarySheet, 1, headerStyle, "Month", "Income", "Expense", "Net"); err != nil {
		return err
	}
	for i, s := range report.Summaries {
		row := i + 2
		if err := writeRow(f, summarySheet, row, 0, s.Key(), s.Income.InexactFloat64(), s.Expense.InexactFloat64(), s.Net.InexactFloat64()); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row), amountStyle); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(summarySheet, "A", "D", 14)

	_, err = f.WriteTo(w)
	return err
}

// writeRow fills one row from column A, applying style when it is non-zero.
func writeRow(f *excelize.File, sheet string, row, style int, values ...interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	if style == 0 {
		return nil
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(values), row)
	return f.SetCellStyle(sheet, first, last, style)
}
