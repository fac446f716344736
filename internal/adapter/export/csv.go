// Package export renders monthly delivery sheets into downloadable files.
package export

import (
	"encoding/csv"
	"strconv"

	"github.com/labstack/echo/v4"

	uc "wms-backend/internal/usecase/performance"
)

// CSVExporter writes a monthly sheet as RFC 4180 CSV.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

func (e *CSVExporter) ContentType() string { return "text/csv" }

func (e *CSVExporter) FileExtension() string { return "csv" }

func (e *CSVExporter) Write(c echo.Context, rows []uc.ExportRow) error {
	w := csv.NewWriter(c.Response())
	header := []string{"date", "parcels_taken", "parcels_delivered", "parcels_failed", "parcels_returned", "final_amount"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Date,
			strconv.Itoa(r.ParcelsTaken),
			strconv.Itoa(r.ParcelsDelivered),
			strconv.Itoa(r.ParcelsFailed),
			strconv.Itoa(r.ParcelsReturned),
			strconv.FormatFloat(r.FinalAmount, 'f', 2, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
