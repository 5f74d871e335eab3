package exchange

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

// Format is a file format transactions can be exchanged in.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatText, FormatPDF, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Importable reports whether ReadRecords understands the format.
func (f Format) Importable() bool {
	return f == FormatCSV || f == FormatText
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Filename is the download name for an export generated at the given time.
func (f Format) Filename(generatedAt time.Time) string {
	return fmt.Sprintf("transactions-%s.%s", generatedAt.Format("20060102"), f)
}

// Record is one transaction row of an import or export file. ID is empty and
// Type may be empty for imported rows.
type Record struct {
	ID       string
	Amount   decimal.Decimal
	Type     analytics.TransactionType
	Category string
	Date     time.Time
}

// Report is everything an export renders.
type Report struct {
	Records     []Record
	Summaries   []analytics.MonthSummary
	GeneratedAt time.Time
}

// Totals sums the report's records exactly.
func (r Report) Totals() (income, expense, net decimal.Decimal) {
	for _, rec := range r.Records {
		switch rec.Type {
		case analytics.Income:
			income = income.Add(rec.Amount)
		case analytics.Expense:
			expense = expense.Add(rec.Amount)
		}
	}
	return income, expense, income.Sub(expense)
}

// Write renders the report in the given format.
func Write(w io.Writer, format Format, report Report) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, report.Records)
	case FormatText:
		return WriteText(w, report)
	case FormatPDF:
		return WritePDF(w, report)
	case FormatXLSX:
		return WriteXLSX(w, report)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
