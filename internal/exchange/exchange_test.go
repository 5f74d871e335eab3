package exchange

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testReport() Report {
	records := []Record{
		{ID: "a1", Amount: decimal.RequireFromString("100"), Type: analytics.Income, Category: "SALARY", Date: day(2024, 1, 5)},
		{ID: "b2", Amount: decimal.RequireFromString("40.5"), Type: analytics.Expense, Category: "FOOD", Date: day(2024, 1, 10)},
		{ID: "c3", Amount: decimal.RequireFromString("1250"), Type: analytics.Expense, Category: "RENT", Date: day(2024, 2, 1)},
	}
	txs := make([]analytics.Transaction, len(records))
	for i, r := range records {
		txs[i] = analytics.Transaction{ID: r.ID, Amount: r.Amount.InexactFloat64(), Type: r.Type, Category: r.Category, Date: r.Date}
	}
	return Report{
		Records:     records,
		Summaries:   analytics.MonthlySummaries(txs),
		GeneratedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

// -- ParseFormat tests --

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"csv", "TXT", " pdf ", "xlsx"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormat_Importable(t *testing.T) {
	assert.True(t, FormatCSV.Importable())
	assert.True(t, FormatText.Importable())
	assert.False(t, FormatPDF.Importable())
	assert.False(t, FormatXLSX.Importable())
}

func TestFormat_Filename(t *testing.T) {
	assert.Equal(t, "transactions-20240301.xlsx", FormatXLSX.Filename(day(2024, 3, 1)))
}

// -- ReadRecords tests --

func TestReadRecords_TypedCSV(t *testing.T) {
	in := "Amount,TransactionType,CategoryType,Date\n" +
		"100,INCOME,salary,2024-01-05\n" +
		"40.25,expense,Food,2024-01-10T23:30:00-05:00\n"

	records, err := ReadRecords(strings.NewReader(in), FormatCSV)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, analytics.Income, records[0].Type)
	assert.Equal(t, "SALARY", records[0].Category)
	assert.Equal(t, day(2024, 1, 5), records[0].Date)

	assert.Equal(t, analytics.Expense, records[1].Type)
	assert.Equal(t, "FOOD", records[1].Category)
	assert.Equal(t, day(2024, 1, 10), records[1].Date, "date as written")
}

func TestReadRecords_UntypedCSV(t *testing.T) {
	in := "amount,categoryType,date\n12,TRAVEL,2024-04-01\n"

	records, err := ReadRecords(strings.NewReader(in), FormatCSV)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Type)
	assert.Equal(t, "TRAVEL", records[0].Category)
}

func TestReadRecords_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		err   error
	}{
		{"missing column", "amount,date\n1,2024-01-01\n", 1, ErrMissingColumn},
		{"bad amount", "amount,category,date\n1,FOOD,2024-01-01\nabc,FOOD,2024-01-02\n", 3, ErrInvalidRow},
		{"zero amount", "amount,category,date\n0,FOOD,2024-01-01\n", 2, ErrInvalidRow},
		{"bad type", "amount,type,category,date\n5,GIFT,FOOD,2024-01-01\n", 2, ErrInvalidRow},
		{"empty category", "amount,category,date\n5,,2024-01-01\n", 2, ErrInvalidRow},
		{"bad date", "amount,category,date\n5,FOOD,yesterday\n", 2, ErrInvalidRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ReadRecords(strings.NewReader(tt.input), FormatCSV)
			assert.Nil(t, records)
			assert.ErrorIs(t, err, tt.err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestReadRecords_Empty(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(""), FormatCSV)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadRecords_UnsupportedFormat(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("x"), FormatPDF)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// -- writer tests --

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testReport().Records[:2]))

	assert.Equal(t,
		"id,amount,transactionType,category,date\n"+
			"a1,100.00,INCOME,SALARY,2024-01-05\n"+
			"b2,40.50,EXPENSE,FOOD,2024-01-10\n",
		buf.String())
}

func TestWriteText_ReadsBack(t *testing.T) {
	report := testReport()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "\n==== Summary for All Transactions ====\n")
	assert.Contains(t, out, "Summary for 2024-01:\nIncome: ₹100.00\nExpense: ₹40.50\nNet: ₹59.50")
	assert.Contains(t, out, "Summary for 2024-02:")

	records, err := ReadRecords(strings.NewReader(out), FormatText)
	require.NoError(t, err)
	require.Len(t, records, len(report.Records))
	for i, rec := range records {
		assert.True(t, report.Records[i].Amount.Equal(rec.Amount))
		assert.Equal(t, report.Records[i].Type, rec.Type)
		assert.Equal(t, report.Records[i].Category, rec.Category)
		assert.Equal(t, report.Records[i].Date, rec.Date)
	}
}

func TestReport_Totals(t *testing.T) {
	income, expense, net := testReport().Totals()
	assert.Equal(t, "100", income.String())
	assert.Equal(t, "1290.5", expense.String())
	assert.Equal(t, "-1190.5", net.String())
}

func TestWritePDF(t *testing.T) {
	report := testReport()
	for i := 0; i < 90; i++ {
		report.Records = append(report.Records, report.Records[i%3])
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatPDF, report))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, testReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{transactionsSheet, summarySheet}, f.GetSheetList())

	header, err := f.GetCellValue(transactionsSheet, "D1")
	require.NoError(t, err)
	assert.Equal(t, "Category", header)

	category, err := f.GetCellValue(transactionsSheet, "D3")
	require.NoError(t, err)
	assert.Equal(t, "FOOD", category)

	month, err := f.GetCellValue(summarySheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", month)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "1,250.00", money(decimal.NewFromInt(1250)))
	assert.Equal(t, "40.50", money(decimal.RequireFromString("40.5")))
}
