package exchange

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/analytics"
)

const dateLayout = "2006-01-02"

var (
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidRow    = errors.New("invalid row")
)

// ParseError points at the line of an import file that could not be read.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type column int

const (
	columnAmount column = iota
	columnType
	columnCategory
	columnDate
)

// header names accepted for each column, lower-cased
var headerAliases = map[string]column{
	"amount":          columnAmount,
	"transactiontype": columnType,
	"type":            columnType,
	"category":        columnCategory,
	"categorytype":    columnCategory,
	"date":            columnDate,
	"transactiondate": columnDate,
}

// ReadRecords parses a csv or txt import. The first line is a header naming
// the columns; amount, category and date are required and unknown columns are
// skipped. A txt file ends at its first blank line or summary banner. Any bad
// row rejects the whole file.
func ReadRecords(r io.Reader, format Format) ([]Record, error) {
	switch format {
	case FormatCSV:
	case FormatText:
		body, err := textRows(r)
		if err != nil {
			return nil, err
		}
		r = body
	default:
		return nil, fmt.Errorf("%w: cannot import %q", ErrUnsupportedFormat, format)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}
	columns, err := mapHeader(header)
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	var records []Record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				line = csvErr.Line
			}
			return nil, &ParseError{Line: line, Err: err}
		}
		line, _ := reader.FieldPos(0)

		record, err := parseRow(fields, columns)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		records = append(records, record)
	}
	return records, nil
}

// textRows keeps the lines of a txt export up to the summary section.
func textRows(r io.Reader) (io.Reader, error) {
	var body bytes.Buffer
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, summaryBannerPrefix) {
			break
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &body, nil
}

func mapHeader(header []string) (map[column]int, error) {
	columns := make(map[column]int)
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if c, ok := headerAliases[key]; ok {
			if _, seen := columns[c]; !seen {
				columns[c] = i
			}
		}
	}

	for _, required := range []struct {
		column column
		name   string
	}{{columnAmount, "amount"}, {columnCategory, "category"}, {columnDate, "date"}} {
		if _, ok := columns[required.column]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required.name)
		}
	}
	return columns, nil
}

func parseRow(fields []string, columns map[column]int) (Record, error) {
	field := func(c column) string {
		i, ok := columns[c]
		if !ok || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	var record Record

	amount, err := decimal.NewFromString(field(columnAmount))
	if err != nil {
		return record, fmt.Errorf("%w: amount %q", ErrInvalidRow, field(columnAmount))
	}
	if !amount.IsPositive() {
		return record, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidRow)
	}
	record.Amount = amount

	if raw := field(columnType); raw != "" {
		if record.Type, err = analytics.ParseTransactionType(raw); err != nil {
			return record, fmt.Errorf("%w: transaction type %q", ErrInvalidRow, raw)
		}
	}

	record.Category = strings.ToUpper(field(columnCategory))
	if record.Category == "" {
		return record, fmt.Errorf("%w: category is empty", ErrInvalidRow)
	}

	date, ok := analytics.ParseDate(field(columnDate))
	if !ok {
		return record, fmt.Errorf("%w: date %q", ErrInvalidRow, field(columnDate))
	}
	record.Date = date

	return record, nil
}

// WriteCSV writes one line per record under the header
// id,amount,transactionType,category,date.
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "amount", "transactionType", "category", "date"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Amount.StringFixed(2),
			string(rec.Type),
			rec.Category,
			rec.Date.Format(dateLayout),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
