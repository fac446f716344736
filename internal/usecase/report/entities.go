package report

import "time"

// Range is an optional inclusive [Start, End] date window. A nil bound
// leaves that side open; an all-nil range covers everything.
type Range struct {
	Start *time.Time
	End   *time.Time
}

type SummaryDTO struct {
	TotalParcelsTaken     int64    `json:"total_parcels_taken"`
	TotalParcelsDelivered int64    `json:"total_parcels_delivered"`
	TotalParcelsFailed    int64    `json:"total_parcels_failed"`
	TotalParcelsReturned  int64    `json:"total_parcels_returned"`
	TotalAmount           float64  `json:"total_amount"`
	PerParcelRate         float64  `json:"per_parcel_rate"`
	ProposedRate          float64  `json:"proposed_rate"`
	ApprovedRate          *float64 `json:"approved_rate"`
}

type DailyDTO struct {
	ID               uint64   `json:"id"`
	Date             string   `json:"date"`
	ParcelsTaken     int      `json:"parcels_taken"`
	ParcelsDelivered int      `json:"parcels_delivered"`
	ParcelsFailed    int      `json:"parcels_failed"`
	ParcelsReturned  int      `json:"parcels_returned"`
	ScreenshotURL    string   `json:"screenshot_url,omitempty"`
	Amount           float64  `json:"amount"`
	OverrideAmount   *float64 `json:"override_amount,omitempty"`
}

// ReportDTO is the detailed view: the filtered entry list in ascending
// date order plus the grand total, annotated with hub and rate context.
type ReportDTO struct {
	WishMasterID uint64     `json:"wish_master_id"`
	EmployeeCode string     `json:"employee_code"`
	Name         string     `json:"name"`
	HubID        uint64     `json:"hub_id,omitempty"`
	HubName      string     `json:"hub_name"`
	Entries      []DailyDTO `json:"entries"`
	GrandTotal   SummaryDTO `json:"grand_total"`
}

// WishMasterSummaryDTO is one roster/search line: identity plus totals.
type WishMasterSummaryDTO struct {
	WishMasterID uint64     `json:"wish_master_id"`
	EmployeeCode string     `json:"employee_code"`
	Name         string     `json:"name"`
	HubID        uint64     `json:"hub_id,omitempty"`
	HubName      string     `json:"hub_name"`
	Totals       SummaryDTO `json:"totals"`
}
