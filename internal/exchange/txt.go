package exchange

import (
	"bufio"
	"io"
)

const (
	summaryBannerPrefix = "===="
	summaryBanner       = "==== Summary for All Transactions ===="
)

// WriteText writes the CSV rows followed by a blank line, the summary banner
// and one block per month. ReadRecords reads the rows back and stops at the
// blank line.
func WriteText(w io.Writer, report Report) error {
	buf := bufio.NewWriter(w)
	if err := WriteCSV(buf, report.Records); err != nil {
		return err
	}

	if _, err := io.WriteString(buf, "\n"+summaryBanner+"\n"); err != nil {
		return err
	}
	for _, summary := range report.Summaries {
		if _, err := io.WriteString(buf, "\n"+summary.Text()+"\n"); err != nil {
			return err
		}
	}
	return buf.Flush()
}
