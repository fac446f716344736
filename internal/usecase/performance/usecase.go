package performance

import (
	"context"
	"errors"
	"time"

	"wms-backend/internal/auth"
	"wms-backend/internal/domain/apperr"
	domainPerf "wms-backend/internal/domain/performance"
	"wms-backend/internal/domain/uow"
	"wms-backend/internal/domain/wishmaster"

	"gorm.io/gorm"
)

type Usecase struct {
	entryRepo domainPerf.Repository
	wmRepo    wishmaster.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(entries domainPerf.Repository, wms wishmaster.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{entryRepo: entries, wmRepo: wms, uow: tx}
}

// RecordEntry upserts the single row for (wish master, date). Entries are
// accepted for the current date only; re-submission for the same day
// replaces the row, it never accumulates.
func (u *Usecase) RecordEntry(ctx context.Context, caller auth.Caller, in RecordEntryInput) (*EntryDTO, error) {
	wm, err := u.resolveWishMaster(ctx, in)
	if err != nil {
		return nil, err
	}
	if caller.IsWishMaster() && caller.ID != wm.ID {
		return nil, apperr.Authorization("cannot record entries for another wish master")
	}
	if caller.IsHubAdmin() && wm.HubAdminID != caller.ID {
		return nil, apperr.Authorization("wish master does not belong to your hub")
	}

	today := domainPerf.DateOnly(time.Now())
	date := today
	if in.DeliveryDate != nil && *in.DeliveryDate != "" {
		parsed, err := time.Parse("2006-01-02", *in.DeliveryDate)
		if err != nil {
			return nil, apperr.Validation("delivery_date must be YYYY-MM-DD")
		}
		date = domainPerf.DateOnly(parsed)
	}
	if !date.Equal(today) {
		return nil, apperr.Validation("entries can only be submitted for today's date")
	}

	taken, delivered, failed, returned, err := validateCounts(in)
	if err != nil {
		return nil, err
	}
	if in.OverrideAmount != nil && *in.OverrideAmount < 0 {
		return nil, apperr.Validation("override_amount must not be negative")
	}

	rate := wm.EffectiveRate()
	calculated := float64(delivered) * rate
	final := calculated
	if in.OverrideAmount != nil {
		final = *in.OverrideAmount
	}

	var out EntryDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		existing, err := r.Entries.GetByWishMasterAndDateForUpdate(ctx, wm.ID, date)
		switch {
		case err == nil:
			existing.ParcelsTaken = taken
			existing.ParcelsDelivered = delivered
			existing.ParcelsFailed = failed
			existing.ParcelsReturned = returned
			existing.ScreenshotURL = in.ScreenshotURL
			existing.CalculatedAmount = calculated
			existing.OverrideAmount = in.OverrideAmount
			existing.FinalAmount = final
			if err := r.Entries.Save(ctx, existing); err != nil {
				return err
			}
			out = toEntryDTO(existing)
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry := &domainPerf.Entry{
				WishMasterID:     wm.ID,
				DeliveryDate:     date,
				ParcelsTaken:     taken,
				ParcelsDelivered: delivered,
				ParcelsFailed:    failed,
				ParcelsReturned:  returned,
				ScreenshotURL:    in.ScreenshotURL,
				CalculatedAmount: calculated,
				OverrideAmount:   in.OverrideAmount,
				FinalAmount:      final,
			}
			if err := r.Entries.Create(ctx, entry); err != nil {
				return err
			}
			out = toEntryDTO(entry)
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMonth removes every entry of the wish master dated inside the
// given calendar month and reports how many rows went away. Hub admins may
// only touch wish masters under their own hub; wish masters only their own
// ledger.
func (u *Usecase) DeleteMonth(ctx context.Context, caller auth.Caller, wishMasterID uint64, year, month int) (int64, error) {
	if month < 1 || month > 12 {
		return 0, apperr.Validation("month must be between 1 and 12")
	}
	wm, err := u.getWishMaster(ctx, wishMasterID)
	if err != nil {
		return 0, err
	}
	switch caller.Role {
	case auth.RoleSuperAdmin:
	case auth.RoleHubAdmin:
		if wm.HubAdminID != caller.ID {
			return 0, apperr.Authorization("wish master does not belong to your hub")
		}
	case auth.RoleWishMaster:
		if wm.ID != caller.ID {
			return 0, apperr.Authorization("cannot delete another wish master's entries")
		}
	default:
		return 0, apperr.Authorization("unknown caller role")
	}

	start, end := domainPerf.MonthRange(year, month)
	return u.entryRepo.DeleteByWishMasterBetween(ctx, wishMasterID, start, end)
}

// ExportMonth builds the ordered monthly sheet rows (ascending date). It
// is a pure projection; file formatting belongs to the export adapter.
func (u *Usecase) ExportMonth(ctx context.Context, wishMasterID uint64, year, month int) ([]ExportRow, error) {
	if month < 1 || month > 12 {
		return nil, apperr.Validation("month must be between 1 and 12")
	}
	if _, err := u.getWishMaster(ctx, wishMasterID); err != nil {
		return nil, err
	}
	start, end := domainPerf.MonthRange(year, month)
	entries, err := u.entryRepo.ListByWishMaster(ctx, wishMasterID, &start, &end)
	if err != nil {
		return nil, err
	}
	rows := make([]ExportRow, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		rows = append(rows, ExportRow{
			Date:             e.DeliveryDate.Format("2006-01-02"),
			ParcelsTaken:     e.ParcelsTaken,
			ParcelsDelivered: e.ParcelsDelivered,
			ParcelsFailed:    e.ParcelsFailed,
			ParcelsReturned:  e.ParcelsReturned,
			FinalAmount:      e.FinalAmount,
		})
	}
	return rows, nil
}

func (u *Usecase) resolveWishMaster(ctx context.Context, in RecordEntryInput) (*wishmaster.WishMaster, error) {
	if in.WishMasterID != 0 {
		return u.getWishMaster(ctx, in.WishMasterID)
	}
	if in.EmployeeCode != "" {
		wm, err := u.wmRepo.GetByEmployeeCode(ctx, in.EmployeeCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("wish master not found")
			}
			return nil, err
		}
		return wm, nil
	}
	return nil, apperr.Validation("wish_master_id or employee_code is required")
}

func (u *Usecase) getWishMaster(ctx context.Context, id uint64) (*wishmaster.WishMaster, error) {
	wm, err := u.wmRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("wish master not found")
		}
		return nil, err
	}
	return wm, nil
}

// validateCounts enforces the conservation invariant: a wish master cannot
// log an outcome for more parcels than they were handed.
func validateCounts(in RecordEntryInput) (taken, delivered, failed, returned int, err error) {
	if in.ParcelsTaken == nil || in.ParcelsDelivered == nil || in.ParcelsFailed == nil {
		return 0, 0, 0, 0, apperr.Validation("parcels_taken, parcels_delivered and parcels_failed are required")
	}
	taken, delivered, failed = *in.ParcelsTaken, *in.ParcelsDelivered, *in.ParcelsFailed
	if in.ParcelsReturned != nil {
		returned = *in.ParcelsReturned
	}
	if taken < 0 || delivered < 0 || failed < 0 || returned < 0 {
		return 0, 0, 0, 0, apperr.Validation("parcel counts must not be negative")
	}
	if taken < delivered+failed+returned {
		return 0, 0, 0, 0, apperr.Validation("parcels taken should be >= delivered + failed + returned")
	}
	return taken, delivered, failed, returned, nil
}
