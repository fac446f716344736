package export

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	uc "wms-backend/internal/usecase/performance"
)

func TestCSVExporter_Write(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	rows := []uc.ExportRow{
		{Date: "2026-08-01", ParcelsTaken: 40, ParcelsDelivered: 38, ParcelsFailed: 1, ParcelsReturned: 1, FinalAmount: 456},
		{Date: "2026-08-02", ParcelsTaken: 30, ParcelsDelivered: 30, FinalAmount: 360.5},
	}

	exp := NewCSVExporter()
	if exp.ContentType() != "text/csv" {
		t.Fatalf("content type: %s", exp.ContentType())
	}
	if exp.FileExtension() != "csv" {
		t.Fatalf("extension: %s", exp.FileExtension())
	}
	if err := exp.Write(c, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "date,parcels_taken,parcels_delivered,parcels_failed,parcels_returned,final_amount" {
		t.Fatalf("header mismatch: %q", lines[0])
	}
	if lines[1] != "2026-08-01,40,38,1,1,456.00" {
		t.Fatalf("row 1 mismatch: %q", lines[1])
	}
	if lines[2] != "2026-08-02,30,30,0,0,360.50" {
		t.Fatalf("row 2 mismatch: %q", lines[2])
	}
}
