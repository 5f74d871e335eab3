package exchange

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/signintech/gopdf"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	pdfFont        = "regular"
	pdfRowsPerPage = 40
	pdfMarginX     = 40.0
	pdfRowHeight   = 16.0
)

// table column offsets from the left margin
var pdfColumns = []struct {
	title string
	x     float64
}{
	{"Date", 0},
	{"Type", 80},
	{"Category", 160},
	{"Amount", 300},
}

// WritePDF renders a title page header with the totals, then the records as a
// table of pdfRowsPerPage rows per page.
func WritePDF(w io.Writer, report Report) error {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	if err := pdf.AddTTFFontData(pdfFont, goregular.TTF); err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	pdf.AddPage()
	if err := pdf.SetFont(pdfFont, "", 20); err != nil {
		return err
	}
	y := 50.0
	text(&pdf, pdfMarginX, y, "Transaction Report")

	if err := pdf.SetFont(pdfFont, "", 11); err != nil {
		return err
	}
	y += 26
	text(&pdf, pdfMarginX, y, "Generated "+report.GeneratedAt.Format("2006-01-02 15:04"))

	income, expense, net := report.Totals()
	y += 24
	text(&pdf, pdfMarginX, y, "Income: "+money(income))
	text(&pdf, pdfMarginX+160, y, "Expense: "+money(expense))
	text(&pdf, pdfMarginX+320, y, "Net: "+money(net))

	y += 36
	for i, rec := range report.Records {
		if i > 0 && i%pdfRowsPerPage == 0 {
			pdf.AddPage()
			y = 50
		}
		if i%pdfRowsPerPage == 0 {
			tableHeader(&pdf, y)
			y += pdfRowHeight + 4
		}

		values := []string{rec.Date.Format(dateLayout), string(rec.Type), rec.Category, money(rec.Amount)}
		for c, col := range pdfColumns {
			text(&pdf, pdfMarginX+col.x, y, values[c])
		}
		y += pdfRowHeight
	}

	if len(report.Records) == 0 {
		text(&pdf, pdfMarginX, y, "No transactions.")
	}

	_, err := pdf.WriteTo(w)
	return err
}

func tableHeader(pdf *gopdf.GoPdf, y float64) {
	for _, col := range pdfColumns {
		text(pdf, pdfMarginX+col.x, y, col.title)
	}
	pdf.SetLineWidth(0.5)
	pdf.Line(pdfMarginX, y+pdfRowHeight, pdfMarginX+380, y+pdfRowHeight)
}

func text(pdf *gopdf.GoPdf, x, y float64, s string) {
	pdf.SetX(x)
	pdf.SetY(y)
	_ = pdf.Cell(nil, s)
}

// money formats an amount with thousands separators and two decimals.
func money(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.InexactFloat64())
}
