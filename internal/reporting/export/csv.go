// Package export writes report data in downloadable formats.
package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dealerdesk/dealerdesk/internal/reporting"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

var amountPrinter = message.NewPrinter(language.English)

type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}
}

func (s *csvStreamer) writeComment(line string) error {
	if _, err := s.buf.WriteString("# " + line + "\r\n"); err != nil {
		return err
	}
	return nil
}

func (s *csvStreamer) writeRow(row []string) error {
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.flush()
	}
	return nil
}

func (s *csvStreamer) flush() error {
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

// SalesCSV streams the sales report's record set as CSV. Summary comment
// lines precede the header so a spreadsheet import still lines up.
func SalesCSV(w io.Writer, report reporting.SalesReport) error {
	s := newCSVStreamer(w)

	comments := []string{
		fmt.Sprintf("Sales report %s to %s", report.From, report.To),
		amountPrinter.Sprintf("Total sales: %d, revenue: Rs.%.0f, average: Rs.%.0f",
			report.TotalSales, report.TotalRevenue, report.AverageSale),
	}
	for _, line := range comments {
		if err := s.writeComment(line); err != nil {
			return err
		}
	}

	header := []string{
		"vehicle_number", "customer_id", "customer_name", "type", "model",
		"purchase_date", "payment", "payment_method", "employee_id",
	}
	if err := s.writeRow(header); err != nil {
		return err
	}

	for _, v := range report.Records {
		row := []string{
			v.Number,
			strconv.FormatInt(v.CustomerID, 10),
			v.CustomerName,
			string(v.Type),
			v.Model,
			v.PurchaseDate.Format("2006-01-02"),
			strconv.FormatFloat(v.Payment, 'f', 2, 64),
			string(v.PaymentMethod),
			strconv.Itoa(v.EmployeeID),
		}
		if err := s.writeRow(row); err != nil {
			return err
		}
	}

	return s.flush()
}
