package report

import (
	"context"
	"testing"
	"time"

	"wms-backend/internal/auth"
	"wms-backend/internal/domain/apperr"
	"wms-backend/internal/domain/directory"
	"wms-backend/internal/domain/performance"
	"wms-backend/internal/domain/wishmaster"
	"wms-backend/internal/testutil/dirmock"
	"wms-backend/internal/testutil/perfmock"
	"wms-backend/internal/testutil/wmmock"
)

func floatp(f float64) *float64 { return &f }

func reportWishMaster() *wishmaster.WishMaster {
	return &wishmaster.WishMaster{
		ID:           20,
		EmployeeCode: "WM001",
		Name:         "Ravi Kumar",
		HubAdminID:   3,
		ProposedRate: 10,
		ApprovedRate: floatp(12),
	}
}

func directoryMocks() (*dirmock.HubAdminRepo, *dirmock.HubRepo) {
	admins := &dirmock.HubAdminRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*directory.HubAdmin, error) {
			return &directory.HubAdmin{ID: id, HubID: 7}, nil
		},
	}
	hubs := &dirmock.HubRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*directory.Hub, error) {
			return &directory.Hub{ID: id, Name: "Indiranagar Hub", City: "Bengaluru"}, nil
		},
	}
	return admins, hubs
}

func ledgerEntries() []performance.Entry {
	return []performance.Entry{
		{
			ID:               1,
			DeliveryDate:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			ParcelsTaken:     40, ParcelsDelivered: 35, ParcelsFailed: 3, ParcelsReturned: 2,
			ScreenshotURL: "a.png",
			FinalAmount:   420,
		},
		{
			ID:               2,
			DeliveryDate:     time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
			ParcelsTaken:     30, ParcelsDelivered: 30,
			ScreenshotURL:  "/api/uploads/b.png",
			FinalAmount:    400,
			OverrideAmount: floatp(400),
		},
	}
}

func newReportUsecase(entries []performance.Entry) *Usecase {
	wms := &wmmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*wishmaster.WishMaster, error) {
			return reportWishMaster(), nil
		},
	}
	perf := &perfmock.Repo{
		ListByWishMasterFn: func(ctx context.Context, id uint64, start, end *time.Time) ([]performance.Entry, error) {
			return entries, nil
		},
	}
	admins, hubs := directoryMocks()
	return NewUsecase(wms, admins, hubs, perf)
}

func TestSummarize_SumsLedger(t *testing.T) {
	uc := newReportUsecase(ledgerEntries())

	s, err := uc.Summarize(context.Background(), auth.Caller{ID: 20, Role: auth.RoleWishMaster}, 20, Range{})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.TotalParcelsTaken != 70 || s.TotalParcelsDelivered != 65 || s.TotalParcelsFailed != 3 || s.TotalParcelsReturned != 2 {
		t.Fatalf("totals: %+v", s)
	}
	if s.TotalAmount != 820 {
		t.Fatalf("total amount: %v", s.TotalAmount)
	}
	if s.PerParcelRate != 12 {
		t.Fatalf("per-parcel rate must be the approved rate: %v", s.PerParcelRate)
	}
}

func TestSummarize_EmptyRangeYieldsZeros(t *testing.T) {
	uc := newReportUsecase(nil)

	s, err := uc.Summarize(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, 20, Range{})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.TotalParcelsTaken != 0 || s.TotalAmount != 0 {
		t.Fatalf("expected zero sums: %+v", s)
	}
	if s.ProposedRate != 10 || s.ApprovedRate == nil || *s.ApprovedRate != 12 {
		t.Fatalf("rates must still be reported: %+v", s)
	}
}

func TestSummarize_CrossHubDenied(t *testing.T) {
	uc := newReportUsecase(ledgerEntries())

	_, err := uc.Summarize(context.Background(), auth.Caller{ID: 99, Role: auth.RoleHubAdmin}, 20, Range{})
	if apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("want authorization error, got %v", err)
	}

	_, err = uc.Summarize(context.Background(), auth.Caller{ID: 99, Role: auth.RoleWishMaster}, 20, Range{})
	if apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("want authorization error, got %v", err)
	}
}

func TestDetailedReport(t *testing.T) {
	uc := newReportUsecase(ledgerEntries())

	r, err := uc.DetailedReport(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, 20, Range{})
	if err != nil {
		t.Fatalf("DetailedReport: %v", err)
	}
	if r.HubID != 7 || r.HubName != "Indiranagar Hub" {
		t.Fatalf("hub annotation: %d %q", r.HubID, r.HubName)
	}
	if len(r.Entries) != 2 {
		t.Fatalf("entries: %d", len(r.Entries))
	}
	if r.Entries[0].Date != "2026-08-01" {
		t.Fatalf("entry date: %s", r.Entries[0].Date)
	}
	if r.Entries[0].ScreenshotURL != "/api/uploads/a.png" {
		t.Fatalf("bare screenshot name must gain the uploads prefix: %q", r.Entries[0].ScreenshotURL)
	}
	if r.Entries[1].ScreenshotURL != "/api/uploads/b.png" {
		t.Fatalf("already-prefixed URL must pass through: %q", r.Entries[1].ScreenshotURL)
	}
	if r.GrandTotal.TotalAmount != 820 {
		t.Fatalf("grand total: %v", r.GrandTotal.TotalAmount)
	}
}

func TestDetailedReport_DanglingHubDegrades(t *testing.T) {
	wms := &wmmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*wishmaster.WishMaster, error) {
			return reportWishMaster(), nil
		},
	}
	// hub admin lookup fails, report must still come back
	uc := NewUsecase(wms, &dirmock.HubAdminRepo{}, &dirmock.HubRepo{}, &perfmock.Repo{})

	r, err := uc.DetailedReport(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, 20, Range{})
	if err != nil {
		t.Fatalf("DetailedReport: %v", err)
	}
	if r.HubID != 0 || r.HubName != "N/A" {
		t.Fatalf("want degraded hub, got %d %q", r.HubID, r.HubName)
	}
}

func TestDayEntry(t *testing.T) {
	wms := &wmmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*wishmaster.WishMaster, error) {
			return reportWishMaster(), nil
		},
	}
	perf := &perfmock.Repo{
		GetByWishMasterAndDateFn: func(ctx context.Context, id uint64, date time.Time) (*performance.Entry, error) {
			e := ledgerEntries()[0]
			return &e, nil
		},
	}
	admins, hubs := directoryMocks()
	uc := NewUsecase(wms, admins, hubs, perf)

	out, err := uc.DayEntry(context.Background(), auth.Caller{ID: 20, Role: auth.RoleWishMaster}, 20, "2026-08-01")
	if err != nil {
		t.Fatalf("DayEntry: %v", err)
	}
	if len(out) != 1 || out[0].Date != "2026-08-01" || out[0].Amount != 420 {
		t.Fatalf("day entry: %+v", out)
	}

	if _, err := uc.DayEntry(context.Background(), auth.Caller{ID: 20, Role: auth.RoleWishMaster}, 20, "01-08-2026"); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("bad date: want validation error, got %v", err)
	}
}

func TestDayEntry_NoRowIsEmptyNotError(t *testing.T) {
	uc := newReportUsecase(nil) // perfmock default returns ErrRecordNotFound for the day lookup

	out, err := uc.DayEntry(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, 20, "2026-08-01")
	if err != nil {
		t.Fatalf("DayEntry: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty slice, got %v", out)
	}
}

func TestSearch_ScopedByRole(t *testing.T) {
	var globalCalled, scopedCalled bool
	wms := &wmmock.Repo{
		SearchByEmployeeCodeFn: func(ctx context.Context, sub string) ([]wishmaster.WishMaster, error) {
			globalCalled = true
			return []wishmaster.WishMaster{*reportWishMaster()}, nil
		},
		SearchByHubAdminAndEmployeeCodeFn: func(ctx context.Context, hubAdminID uint64, sub string) ([]wishmaster.WishMaster, error) {
			scopedCalled = true
			if hubAdminID != 3 {
				t.Fatalf("hub admin scope: %d", hubAdminID)
			}
			return nil, nil
		},
	}
	admins, hubs := directoryMocks()
	uc := NewUsecase(wms, admins, hubs, &perfmock.Repo{})

	out, err := uc.Search(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, "WM0", Range{})
	if err != nil {
		t.Fatalf("Search super: %v", err)
	}
	if !globalCalled || len(out) != 1 {
		t.Fatalf("super admin search must be global: %v %d", globalCalled, len(out))
	}

	if _, err := uc.Search(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, "WM0", Range{}); err != nil {
		t.Fatalf("Search hub admin: %v", err)
	}
	if !scopedCalled {
		t.Fatalf("hub admin search must be scoped to their roster")
	}

	if _, err := uc.Search(context.Background(), auth.Caller{ID: 20, Role: auth.RoleWishMaster}, "WM0", Range{}); apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("wish master search: want authorization error, got %v", err)
	}
	if _, err := uc.Search(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, "  ", Range{}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("blank query: want validation error, got %v", err)
	}
}

func TestRosterByHubAdmin_OwnOnly(t *testing.T) {
	wms := &wmmock.Repo{
		ListActiveByHubAdminFn: func(ctx context.Context, hubAdminID uint64) ([]wishmaster.WishMaster, error) {
			return []wishmaster.WishMaster{*reportWishMaster()}, nil
		},
	}
	admins, hubs := directoryMocks()
	uc := NewUsecase(wms, admins, hubs, &perfmock.Repo{})

	out, err := uc.RosterByHubAdmin(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, 3, Range{})
	if err != nil {
		t.Fatalf("RosterByHubAdmin: %v", err)
	}
	if len(out) != 1 || out[0].EmployeeCode != "WM001" || out[0].HubName != "Indiranagar Hub" {
		t.Fatalf("roster: %+v", out)
	}

	if _, err := uc.RosterByHubAdmin(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, 4, Range{}); apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("foreign roster: want authorization error, got %v", err)
	}
}

func TestRosterByHub_SuperAdminOnly(t *testing.T) {
	wms := &wmmock.Repo{
		ListActiveByHubFn: func(ctx context.Context, hubID uint64) ([]wishmaster.WishMaster, error) {
			return []wishmaster.WishMaster{*reportWishMaster()}, nil
		},
	}
	admins, hubs := directoryMocks()
	uc := NewUsecase(wms, admins, hubs, &perfmock.Repo{})

	out, err := uc.RosterByHub(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, 7, Range{})
	if err != nil {
		t.Fatalf("RosterByHub: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("roster: %+v", out)
	}

	if _, err := uc.RosterByHub(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, 7, Range{}); apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("hub admin: want authorization error, got %v", err)
	}
}
