package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	perfDomain "wms-backend/internal/domain/performance"

	"gorm.io/gorm"
)

func seedEntry(t *testing.T, db *gorm.DB, wishMasterID uint64, day time.Time, delivered int) *perfDomain.Entry {
	t.Helper()
	e := &perfDomain.Entry{
		WishMasterID:     wishMasterID,
		DeliveryDate:     perfDomain.DateOnly(day),
		ParcelsTaken:     delivered + 5,
		ParcelsDelivered: delivered,
		CalculatedAmount: float64(delivered) * 10,
		FinalAmount:      float64(delivered) * 10,
	}
	if err := NewPerformanceRepository(db).Create(context.Background(), e); err != nil {
		t.Fatalf("seed entry %v: %v", day, err)
	}
	return e
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPerformanceRepository_GetByWishMasterAndDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewPerformanceRepository(db)
	ctx := context.Background()

	e := seedEntry(t, db, 20, day(2026, 8, 1), 35)

	got, err := repo.GetByWishMasterAndDate(ctx, 20, day(2026, 8, 1))
	if err != nil || got.ID != e.ID {
		t.Fatalf("GetByWishMasterAndDate: %+v %v", got, err)
	}
	// a timestamp inside the same day resolves to the same row
	got, err = repo.GetByWishMasterAndDate(ctx, 20, time.Date(2026, 8, 1, 17, 30, 0, 0, time.UTC))
	if err != nil || got.ID != e.ID {
		t.Fatalf("intra-day lookup: %+v %v", got, err)
	}
	if _, err := repo.GetByWishMasterAndDate(ctx, 20, day(2026, 8, 2)); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing day: want ErrRecordNotFound, got %v", err)
	}
}

func TestPerformanceRepository_UniquePerDay(t *testing.T) {
	db := openTestDB(t)
	seedEntry(t, db, 20, day(2026, 8, 1), 35)

	dup := &perfDomain.Entry{WishMasterID: 20, DeliveryDate: perfDomain.DateOnly(day(2026, 8, 1))}
	if err := NewPerformanceRepository(db).Create(context.Background(), dup); err == nil {
		t.Fatalf("second row for the same (wish master, date) must violate the unique index")
	}
}

func TestPerformanceRepository_SaveReplacesRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewPerformanceRepository(db)
	ctx := context.Background()

	e := seedEntry(t, db, 20, day(2026, 8, 1), 35)
	e.ParcelsDelivered = 38
	e.FinalAmount = 380
	if err := repo.Save(ctx, e); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByWishMasterAndDate(ctx, 20, day(2026, 8, 1))
	if err != nil || got.ParcelsDelivered != 38 || got.FinalAmount != 380 {
		t.Fatalf("row not replaced: %+v %v", got, err)
	}
}

func TestPerformanceRepository_ListByWishMaster(t *testing.T) {
	db := openTestDB(t)
	repo := NewPerformanceRepository(db)
	ctx := context.Background()

	seedEntry(t, db, 20, day(2026, 8, 3), 30)
	seedEntry(t, db, 20, day(2026, 8, 1), 35)
	seedEntry(t, db, 20, day(2026, 7, 31), 20)
	seedEntry(t, db, 99, day(2026, 8, 2), 10)

	all, err := repo.ListByWishMaster(ctx, 20, nil, nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("open range: %d %v", len(all), err)
	}
	// ascending by delivery date
	if !all[0].DeliveryDate.Before(all[1].DeliveryDate) || !all[1].DeliveryDate.Before(all[2].DeliveryDate) {
		t.Fatalf("order: %v %v %v", all[0].DeliveryDate, all[1].DeliveryDate, all[2].DeliveryDate)
	}

	start, end := day(2026, 8, 1), day(2026, 8, 31)
	aug, err := repo.ListByWishMaster(ctx, 20, &start, &end)
	if err != nil || len(aug) != 2 {
		t.Fatalf("bounded range: %d %v", len(aug), err)
	}

	from := day(2026, 8, 2)
	tail, err := repo.ListByWishMaster(ctx, 20, &from, nil)
	if err != nil || len(tail) != 1 || !tail[0].DeliveryDate.Equal(day(2026, 8, 3)) {
		t.Fatalf("open end: %+v %v", tail, err)
	}
}

func TestPerformanceRepository_DeleteByWishMasterBetween(t *testing.T) {
	db := openTestDB(t)
	repo := NewPerformanceRepository(db)
	ctx := context.Background()

	seedEntry(t, db, 20, day(2026, 8, 1), 35)
	seedEntry(t, db, 20, day(2026, 8, 15), 30)
	seedEntry(t, db, 20, day(2026, 9, 1), 25)
	seedEntry(t, db, 99, day(2026, 8, 10), 10)

	start, end := perfDomain.MonthRange(2026, 8)
	n, err := repo.DeleteByWishMasterBetween(ctx, 20, start, end)
	if err != nil {
		t.Fatalf("DeleteByWishMasterBetween: %v", err)
	}
	if n != 2 {
		t.Fatalf("deleted count: %d", n)
	}

	left, err := repo.ListByWishMaster(ctx, 20, nil, nil)
	if err != nil || len(left) != 1 || !left[0].DeliveryDate.Equal(day(2026, 9, 1)) {
		t.Fatalf("september row must survive: %+v %v", left, err)
	}
	foreign, err := repo.ListByWishMaster(ctx, 99, nil, nil)
	if err != nil || len(foreign) != 1 {
		t.Fatalf("other wish master's ledger must be untouched: %d %v", len(foreign), err)
	}
}
