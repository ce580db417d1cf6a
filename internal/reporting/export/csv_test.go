package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/dealerdesk/internal/reporting"
	"github.com/dealerdesk/dealerdesk/internal/store"
)

func TestSalesCSV(t *testing.T) {
	report := reporting.SalesReport{
		From:         "2025-06-01",
		To:           "2025-06-30",
		TotalSales:   2,
		TotalRevenue: 1200000,
		AverageSale:  600000,
		Records: []store.Vehicle{
			{
				Number: "WP CAA 1111", CustomerID: 3, CustomerName: "Kamal Silva",
				Type: store.TypeBike, Model: "Dio",
				PurchaseDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
				Payment:      500000, PaymentMethod: store.PayCash, EmployeeID: 7,
			},
			{
				Number: "WP CAB 2222", CustomerID: 4, CustomerName: "Nimal Perera",
				Type: store.TypeBike, Model: "Pulsar",
				PurchaseDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
				Payment:      700000, PaymentMethod: store.PayCheque, EmployeeID: 2,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, SalesCSV(&buf, report))

	lines := strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 5)

	require.Equal(t, "# Sales report 2025-06-01 to 2025-06-30", lines[0])
	require.Equal(t, "# Total sales: 2, revenue: Rs.1,200,000, average: Rs.600,000", lines[1])
	require.Equal(t, "vehicle_number,customer_id,customer_name,type,model,purchase_date,payment,payment_method,employee_id", lines[2])
	require.Equal(t, "WP CAA 1111,3,Kamal Silva,Bike,Dio,2025-06-05,500000.00,Cash,7", lines[3])
	require.Equal(t, "WP CAB 2222,4,Nimal Perera,Bike,Pulsar,2025-06-20,700000.00,Cheque,2", lines[4])
}

func TestSalesCSVEmptyReportStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SalesCSV(&buf, reporting.SalesReport{From: "2025-01-01", To: "2025-12-31"}))

	out := buf.String()
	require.Contains(t, out, "vehicle_number,customer_id")
	require.Equal(t, 3, strings.Count(out, "\r\n"))
}
