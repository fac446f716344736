package performance

import (
	"time"

	"wms-backend/internal/domain/performance"
)

// RecordEntryInput resolves the wish master from an explicit id or,
// failing that, the employee code. Required counts are pointers so
// "missing" and "zero" stay distinguishable.
type RecordEntryInput struct {
	WishMasterID     uint64   `json:"wish_master_id"`
	EmployeeCode     string   `json:"employee_code"`
	DeliveryDate     *string  `json:"delivery_date"` // YYYY-MM-DD, defaults to today
	ParcelsTaken     *int     `json:"parcels_taken"`
	ParcelsDelivered *int     `json:"parcels_delivered"`
	ParcelsFailed    *int     `json:"parcels_failed"`
	ParcelsReturned  *int     `json:"parcels_returned"`
	ScreenshotURL    string   `json:"screenshot_url"`
	OverrideAmount   *float64 `json:"override_amount"`
}

type EntryDTO struct {
	ID               uint64    `json:"id"`
	WishMasterID     uint64    `json:"wish_master_id"`
	DeliveryDate     string    `json:"delivery_date"`
	ParcelsTaken     int       `json:"parcels_taken"`
	ParcelsDelivered int       `json:"parcels_delivered"`
	ParcelsFailed    int       `json:"parcels_failed"`
	ParcelsReturned  int       `json:"parcels_returned"`
	ScreenshotURL    string    `json:"screenshot_url,omitempty"`
	CalculatedAmount float64   `json:"calculated_amount"`
	OverrideAmount   *float64  `json:"override_amount,omitempty"`
	FinalAmount      float64   `json:"final_amount"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ExportRow is one line of the monthly sheet handed to the external
// file-rendering collaborator.
type ExportRow struct {
	Date             string  `json:"date"`
	ParcelsTaken     int     `json:"parcels_taken"`
	ParcelsDelivered int     `json:"parcels_delivered"`
	ParcelsFailed    int     `json:"parcels_failed"`
	ParcelsReturned  int     `json:"parcels_returned"`
	FinalAmount      float64 `json:"final_amount"`
}

func toEntryDTO(e *performance.Entry) EntryDTO {
	return EntryDTO{
		ID:               e.ID,
		WishMasterID:     e.WishMasterID,
		DeliveryDate:     e.DeliveryDate.Format("2006-01-02"),
		ParcelsTaken:     e.ParcelsTaken,
		ParcelsDelivered: e.ParcelsDelivered,
		ParcelsFailed:    e.ParcelsFailed,
		ParcelsReturned:  e.ParcelsReturned,
		ScreenshotURL:    e.ScreenshotURL,
		CalculatedAmount: e.CalculatedAmount,
		OverrideAmount:   e.OverrideAmount,
		FinalAmount:      e.FinalAmount,
		UpdatedAt:        e.UpdatedAt,
	}
}
