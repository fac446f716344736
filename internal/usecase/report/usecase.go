package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"wms-backend/internal/auth"
	"wms-backend/internal/domain/apperr"
	"wms-backend/internal/domain/directory"
	"wms-backend/internal/domain/performance"
	"wms-backend/internal/domain/wishmaster"

	"gorm.io/gorm"
)

// Usecase is the pure read side: it derives summaries and detailed
// reports from the ledger and the directory, never mutating either.
type Usecase struct {
	wmRepo       wishmaster.Repository
	hubAdminRepo directory.HubAdminRepository
	hubRepo      directory.HubRepository
	entryRepo    performance.Repository
}

func NewUsecase(wms wishmaster.Repository, hubAdmins directory.HubAdminRepository, hubs directory.HubRepository, entries performance.Repository) *Usecase {
	return &Usecase{wmRepo: wms, hubAdminRepo: hubAdmins, hubRepo: hubs, entryRepo: entries}
}

// Summarize sums the wish master's entries inside the range. An empty set
// yields all-zero sums, not an error.
func (u *Usecase) Summarize(ctx context.Context, caller auth.Caller, wishMasterID uint64, rng Range) (*SummaryDTO, error) {
	wm, err := u.authorizedWishMaster(ctx, caller, wishMasterID)
	if err != nil {
		return nil, err
	}
	entries, err := u.entryRepo.ListByWishMaster(ctx, wm.ID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	s := grandTotal(entries, wm)
	return &s, nil
}

// DetailedReport returns the filtered entries ascending by date plus the
// summary, annotated with hub and rate information.
func (u *Usecase) DetailedReport(ctx context.Context, caller auth.Caller, wishMasterID uint64, rng Range) (*ReportDTO, error) {
	wm, err := u.authorizedWishMaster(ctx, caller, wishMasterID)
	if err != nil {
		return nil, err
	}
	entries, err := u.entryRepo.ListByWishMaster(ctx, wm.ID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	daily := make([]DailyDTO, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		daily = append(daily, DailyDTO{
			ID:               e.ID,
			Date:             e.DeliveryDate.Format("2006-01-02"),
			ParcelsTaken:     e.ParcelsTaken,
			ParcelsDelivered: e.ParcelsDelivered,
			ParcelsFailed:    e.ParcelsFailed,
			ParcelsReturned:  e.ParcelsReturned,
			ScreenshotURL:    normalizeScreenshotURL(e.ScreenshotURL),
			Amount:           e.FinalAmount,
			OverrideAmount:   e.OverrideAmount,
		})
	}

	hubID, hubName := u.hubOf(ctx, wm)
	return &ReportDTO{
		WishMasterID: wm.ID,
		EmployeeCode: wm.EmployeeCode,
		Name:         wm.Name,
		HubID:        hubID,
		HubName:      hubName,
		Entries:      daily,
		GrandTotal:   grandTotal(entries, wm),
	}, nil
}

// DayEntry returns the single entry for one date, if present.
func (u *Usecase) DayEntry(ctx context.Context, caller auth.Caller, wishMasterID uint64, date string) ([]DailyDTO, error) {
	wm, err := u.authorizedWishMaster(ctx, caller, wishMasterID)
	if err != nil {
		return nil, err
	}
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	e, err := u.entryRepo.GetByWishMasterAndDate(ctx, wm.ID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []DailyDTO{}, nil
		}
		return nil, err
	}
	return []DailyDTO{{
		ID:               e.ID,
		Date:             e.DeliveryDate.Format("2006-01-02"),
		ParcelsTaken:     e.ParcelsTaken,
		ParcelsDelivered: e.ParcelsDelivered,
		ParcelsFailed:    e.ParcelsFailed,
		ParcelsReturned:  e.ParcelsReturned,
		ScreenshotURL:    normalizeScreenshotURL(e.ScreenshotURL),
		Amount:           e.FinalAmount,
		OverrideAmount:   e.OverrideAmount,
	}}, nil
}

// Search matches employee codes containing the query, scoped by the
// caller's authority: global for super admins, own hub for hub admins.
func (u *Usecase) Search(ctx context.Context, caller auth.Caller, codeQuery string, rng Range) ([]WishMasterSummaryDTO, error) {
	codeQuery = strings.TrimSpace(codeQuery)
	if codeQuery == "" {
		return nil, apperr.Validation("search query is required")
	}

	var (
		matches []wishmaster.WishMaster
		err     error
	)
	switch caller.Role {
	case auth.RoleSuperAdmin:
		matches, err = u.wmRepo.SearchByEmployeeCode(ctx, codeQuery)
	case auth.RoleHubAdmin:
		matches, err = u.wmRepo.SearchByHubAdminAndEmployeeCode(ctx, caller.ID, codeQuery)
	default:
		return nil, apperr.Authorization("search is not available for this role")
	}
	if err != nil {
		return nil, err
	}
	return u.summaries(ctx, matches, rng)
}

// RosterByHubAdmin lists per-wish-master summaries for one hub admin's
// roster. Hub admins may only read their own.
func (u *Usecase) RosterByHubAdmin(ctx context.Context, caller auth.Caller, hubAdminID uint64, rng Range) ([]WishMasterSummaryDTO, error) {
	switch caller.Role {
	case auth.RoleSuperAdmin:
	case auth.RoleHubAdmin:
		if caller.ID != hubAdminID {
			return nil, apperr.Authorization("cannot read another hub admin's roster")
		}
	default:
		return nil, apperr.Authorization("roster is not available for this role")
	}
	wms, err := u.wmRepo.ListActiveByHubAdmin(ctx, hubAdminID)
	if err != nil {
		return nil, err
	}
	return u.summaries(ctx, wms, rng)
}

// RosterByHub rolls up all wish masters under a hub; top authority only.
func (u *Usecase) RosterByHub(ctx context.Context, caller auth.Caller, hubID uint64, rng Range) ([]WishMasterSummaryDTO, error) {
	if !caller.IsSuperAdmin() {
		return nil, apperr.Authorization("hub-level reports require super admin")
	}
	wms, err := u.wmRepo.ListActiveByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	return u.summaries(ctx, wms, rng)
}

// ---- helpers ----

// authorizedWishMaster loads the target and enforces the scoping rule:
// cross-hub access is an authorization failure before any data is read,
// because report output also reveals rates.
func (u *Usecase) authorizedWishMaster(ctx context.Context, caller auth.Caller, wishMasterID uint64) (*wishmaster.WishMaster, error) {
	wm, err := u.wmRepo.GetByID(ctx, wishMasterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("wish master not found")
		}
		return nil, err
	}
	switch caller.Role {
	case auth.RoleSuperAdmin:
	case auth.RoleHubAdmin:
		if wm.HubAdminID != caller.ID {
			return nil, apperr.Authorization("wish master does not belong to your hub")
		}
	case auth.RoleWishMaster:
		if wm.ID != caller.ID {
			return nil, apperr.Authorization("cannot read another wish master's report")
		}
	default:
		return nil, apperr.Authorization("unknown caller role")
	}
	return wm, nil
}

func (u *Usecase) summaries(ctx context.Context, wms []wishmaster.WishMaster, rng Range) ([]WishMasterSummaryDTO, error) {
	out := make([]WishMasterSummaryDTO, 0, len(wms))
	for i := range wms {
		wm := &wms[i]
		entries, err := u.entryRepo.ListByWishMaster(ctx, wm.ID, rng.Start, rng.End)
		if err != nil {
			return nil, err
		}
		hubID, hubName := u.hubOf(ctx, wm)
		out = append(out, WishMasterSummaryDTO{
			WishMasterID: wm.ID,
			EmployeeCode: wm.EmployeeCode,
			Name:         wm.Name,
			HubID:        hubID,
			HubName:      hubName,
			Totals:       grandTotal(entries, wm),
		})
	}
	return out, nil
}

// hubOf resolves a wish master's hub through the directory; a dangling
// reference degrades to "N/A" rather than failing the whole report.
func (u *Usecase) hubOf(ctx context.Context, wm *wishmaster.WishMaster) (uint64, string) {
	admin, err := u.hubAdminRepo.GetByID(ctx, wm.HubAdminID)
	if err != nil {
		return 0, "N/A"
	}
	hub, err := u.hubRepo.GetByID(ctx, admin.HubID)
	if err != nil {
		return 0, "N/A"
	}
	return hub.ID, hub.Name
}

func grandTotal(entries []performance.Entry, wm *wishmaster.WishMaster) SummaryDTO {
	s := SummaryDTO{
		PerParcelRate: wm.EffectiveRate(),
		ProposedRate:  wm.ProposedRate,
		ApprovedRate:  wm.ApprovedRate,
	}
	for i := range entries {
		e := &entries[i]
		s.TotalParcelsTaken += int64(e.ParcelsTaken)
		s.TotalParcelsDelivered += int64(e.ParcelsDelivered)
		s.TotalParcelsFailed += int64(e.ParcelsFailed)
		s.TotalParcelsReturned += int64(e.ParcelsReturned)
		s.TotalAmount += e.FinalAmount
	}
	return s
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, apperr.Validation("date must be YYYY-MM-DD")
	}
	return performance.DateOnly(t), nil
}

func normalizeScreenshotURL(url string) string {
	if url == "" || strings.HasPrefix(url, "/api/uploads/") {
		return url
	}
	return "/api/uploads/" + url
}
