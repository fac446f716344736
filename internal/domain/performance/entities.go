package performance

import "time"

// Entry is the one authoritative row per (wish master, calendar date).
// Writes replace the whole row; counts never accumulate across
// submissions for the same day.
type Entry struct {
	ID               uint64    `gorm:"primaryKey;column:id" json:"id"`
	WishMasterID     uint64    `gorm:"uniqueIndex:ux_performance_wm_date" json:"wish_master_id"`
	DeliveryDate     time.Time `gorm:"type:date;uniqueIndex:ux_performance_wm_date" json:"delivery_date"`
	ParcelsTaken     int       `gorm:"column:parcels_taken" json:"parcels_taken"`
	ParcelsDelivered int       `gorm:"column:parcels_delivered" json:"parcels_delivered"`
	ParcelsFailed    int       `gorm:"column:parcels_failed" json:"parcels_failed"`
	ParcelsReturned  int       `gorm:"column:parcels_returned" json:"parcels_returned"`
	ScreenshotURL    string    `gorm:"type:text" json:"screenshot_url"`
	CalculatedAmount float64   `gorm:"type:decimal(12,2)" json:"calculated_amount"`
	OverrideAmount   *float64  `gorm:"type:decimal(12,2)" json:"override_amount"`
	FinalAmount      float64   `gorm:"type:decimal(12,2)" json:"final_amount"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Entry) TableName() string { return "delivery_performances" }

// DateOnly normalizes t to midnight UTC so (wish master, date) keys
// compare equal regardless of the submitted wall-clock time.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the inclusive [first, last] days of a calendar month.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
