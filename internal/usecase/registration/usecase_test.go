package registration

import (
	"context"
	"testing"

	"wms-backend/internal/auth"
	"wms-backend/internal/domain/apperr"
	"wms-backend/internal/domain/directory"
	domainReg "wms-backend/internal/domain/registration"
	"wms-backend/internal/domain/uow"
	"wms-backend/internal/domain/wishmaster"
	"wms-backend/internal/testutil/dirmock"
	"wms-backend/internal/testutil/flowmock"
	"wms-backend/internal/testutil/uowmock"
	"wms-backend/internal/testutil/wmmock"

	"golang.org/x/crypto/bcrypt"
)

func activeAdmin(id uint64) *directory.HubAdmin {
	return &directory.HubAdmin{ID: id, Name: "Admin", HubID: 1, Status: directory.StatusActive}
}

func submitInput() SubmitInput {
	return SubmitInput{
		EmployeeCode: "WM001",
		Name:         "Ravi Kumar",
		Phone:        "9876543210",
		Password:     "secret123",
		ProposedRate: 12,
	}
}

func TestSubmit_HubAdminFilesUnderSelf(t *testing.T) {
	regs := &flowmock.RegistrationRepo{}
	var created *domainReg.Request
	regs.CreateFn = func(ctx context.Context, r *domainReg.Request) error {
		r.ID = 7
		created = r
		return nil
	}
	admins := &dirmock.HubAdminRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*directory.HubAdmin, error) {
			return activeAdmin(id), nil
		},
	}
	uc := NewUsecase(regs, &wmmock.Repo{}, admins, &dirmock.SuperAdminRepo{}, uowmock.New())

	dto, err := uc.Submit(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, submitInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if dto.HubAdminID != 3 {
		t.Fatalf("hub admin id: %d", dto.HubAdminID)
	}
	if dto.Status != domainReg.StatusPending {
		t.Fatalf("status: %s", dto.Status)
	}
	if created.Password == "secret123" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")); err != nil {
		t.Fatalf("stored password is not a bcrypt hash of the input: %v", err)
	}
}

func TestSubmit_HubAdminCannotFileForAnother(t *testing.T) {
	uc := NewUsecase(&flowmock.RegistrationRepo{}, &wmmock.Repo{}, &dirmock.HubAdminRepo{}, &dirmock.SuperAdminRepo{}, uowmock.New())

	in := submitInput()
	in.HubAdminID = 99
	_, err := uc.Submit(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, in)
	if apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("want authorization error, got %v", err)
	}
}

func TestSubmit_SuperAdminNeedsHubAdminID(t *testing.T) {
	uc := NewUsecase(&flowmock.RegistrationRepo{}, &wmmock.Repo{}, &dirmock.HubAdminRepo{}, &dirmock.SuperAdminRepo{}, uowmock.New())

	_, err := uc.Submit(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, submitInput())
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestSubmit_WishMasterRoleRejected(t *testing.T) {
	uc := NewUsecase(&flowmock.RegistrationRepo{}, &wmmock.Repo{}, &dirmock.HubAdminRepo{}, &dirmock.SuperAdminRepo{}, uowmock.New())

	_, err := uc.Submit(context.Background(), auth.Caller{ID: 5, Role: auth.RoleWishMaster}, submitInput())
	if apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("want authorization error, got %v", err)
	}
}

func TestSubmit_ConflictOnActiveCode(t *testing.T) {
	wms := &wmmock.Repo{
		ExistsActiveByEmployeeCodeFn: func(ctx context.Context, code string) (bool, error) { return true, nil },
	}
	uc := NewUsecase(&flowmock.RegistrationRepo{}, wms, &dirmock.HubAdminRepo{}, &dirmock.SuperAdminRepo{}, uowmock.New())

	_, err := uc.Submit(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, submitInput())
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestSubmit_ConflictOnPendingRequest(t *testing.T) {
	regs := &flowmock.RegistrationRepo{
		ExistsPendingByEmployeeCodeFn: func(ctx context.Context, code string) (bool, error) { return true, nil },
	}
	uc := NewUsecase(regs, &wmmock.Repo{}, &dirmock.HubAdminRepo{}, &dirmock.SuperAdminRepo{}, uowmock.New())

	_, err := uc.Submit(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, submitInput())
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestSubmit_InactiveHubAdminNotFound(t *testing.T) {
	admins := &dirmock.HubAdminRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*directory.HubAdmin, error) {
			a := activeAdmin(id)
			a.Status = directory.StatusInactive
			return a, nil
		},
	}
	uc := NewUsecase(&flowmock.RegistrationRepo{}, &wmmock.Repo{}, admins, &dirmock.SuperAdminRepo{}, uowmock.New())

	_, err := uc.Submit(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, submitInput())
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

// resolveFixture wires a pending request into a passthrough transaction so
// Resolve exercises the same repos the assertions inspect.
type resolveFixture struct {
	regs *flowmock.RegistrationRepo
	wms  *wmmock.Repo
	docs *wmmock.DocumentRepo
	uc   *Usecase

	savedRequest *domainReg.Request
	createdWM    *wishmaster.WishMaster
	createdDocs  []wishmaster.Document
}

func newResolveFixture(t *testing.T, req *domainReg.Request) *resolveFixture {
	t.Helper()
	f := &resolveFixture{
		regs: &flowmock.RegistrationRepo{},
		wms:  &wmmock.Repo{},
		docs: &wmmock.DocumentRepo{},
	}
	f.regs.GetByIDForUpdateFn = func(ctx context.Context, id uint64) (*domainReg.Request, error) {
		return req, nil
	}
	f.regs.SaveFn = func(ctx context.Context, r *domainReg.Request) error {
		f.savedRequest = r
		return nil
	}
	f.wms.CreateFn = func(ctx context.Context, w *wishmaster.WishMaster) error {
		w.ID = 42
		f.createdWM = w
		return nil
	}
	f.docs.CreateFn = func(ctx context.Context, d *wishmaster.Document) error {
		f.createdDocs = append(f.createdDocs, *d)
		return nil
	}

	supers := &dirmock.SuperAdminRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*directory.SuperAdmin, error) {
			return &directory.SuperAdmin{ID: id, Status: directory.StatusActive}, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{
		Registrations: f.regs,
		WishMasters:   f.wms,
		Documents:     f.docs,
	})
	f.uc = NewUsecase(f.regs, f.wms, &dirmock.HubAdminRepo{}, supers, tx)
	return f
}

func pendingRequest() *domainReg.Request {
	return &domainReg.Request{
		ID:            11,
		EmployeeCode:  "WM001",
		Name:          "Ravi Kumar",
		Phone:         "9876543210",
		Address:       "12 MG Road",
		VehicleNumber: "KA01AB1234",
		Password:      "$2a$10$hash",
		ProposedRate:  12,
		HubAdminID:    3,
		Status:        domainReg.StatusPending,
	}
}

func TestResolve_ApproveCreatesWishMaster(t *testing.T) {
	req := pendingRequest()
	req.Documents = map[string]string{
		"aadhaar": "/files/a.png",
		"PAN":     "/files/p.png",
		"selfie":  "/files/s.png", // unknown type, skipped
	}
	f := newResolveFixture(t, req)

	out, err := f.uc.Resolve(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, 11, true, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.Request.Status != domainReg.StatusApproved {
		t.Fatalf("request status: %s", out.Request.Status)
	}
	if out.Request.ReviewedBy == nil || *out.Request.ReviewedBy != 1 {
		t.Fatalf("reviewed_by: %v", out.Request.ReviewedBy)
	}
	wm := f.createdWM
	if wm == nil {
		t.Fatalf("wish master not created")
	}
	if wm.EmployeeCode != "WM001" || wm.HubAdminID != 3 || wm.Password != "$2a$10$hash" {
		t.Fatalf("application fields not copied: %+v", wm)
	}
	if wm.ApprovedRate == nil || *wm.ApprovedRate != 12 {
		t.Fatalf("approved rate should default to proposed, got %v", wm.ApprovedRate)
	}
	if wm.ApprovalStatus != wishmaster.ApprovalApproved || wm.Status != directory.StatusActive {
		t.Fatalf("new wish master not active/approved: %+v", wm)
	}
	if len(f.createdDocs) != 2 {
		t.Fatalf("want 2 documents (unknown type skipped), got %d", len(f.createdDocs))
	}
	// sorted key order: PAN before aadhaar
	if f.createdDocs[0].DocumentType != wishmaster.DocPAN || f.createdDocs[1].DocumentType != wishmaster.DocAadhaar {
		t.Fatalf("document types: %v, %v", f.createdDocs[0].DocumentType, f.createdDocs[1].DocumentType)
	}
}

func TestResolve_ApproveWithOverrideRate(t *testing.T) {
	f := newResolveFixture(t, pendingRequest())

	override := 15.5
	out, err := f.uc.Resolve(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, 11, true, &override)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if f.createdWM.ApprovedRate == nil || *f.createdWM.ApprovedRate != 15.5 {
		t.Fatalf("approved rate: %v", f.createdWM.ApprovedRate)
	}
	if f.createdWM.ProposedRate != 12 {
		t.Fatalf("proposed rate must stay as applied: %v", f.createdWM.ProposedRate)
	}
	if out.WishMaster == nil || out.WishMaster.ID != 42 {
		t.Fatalf("wish master dto: %+v", out.WishMaster)
	}
}

func TestResolve_RejectLeavesNoWishMaster(t *testing.T) {
	f := newResolveFixture(t, pendingRequest())

	out, err := f.uc.Resolve(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, 11, false, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.Request.Status != domainReg.StatusRejected {
		t.Fatalf("request status: %s", out.Request.Status)
	}
	if out.WishMaster != nil || f.createdWM != nil {
		t.Fatalf("reject must not create a wish master")
	}
}

func TestResolve_TerminalRequestConflicts(t *testing.T) {
	req := pendingRequest()
	req.Status = domainReg.StatusApproved
	f := newResolveFixture(t, req)

	_, err := f.uc.Resolve(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, 11, true, nil)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("want conflict, got %v", err)
	}
	if f.createdWM != nil {
		t.Fatalf("terminal request must not create a wish master")
	}
}

func TestResolve_NonSuperAdminRejected(t *testing.T) {
	f := newResolveFixture(t, pendingRequest())

	_, err := f.uc.Resolve(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}, 11, true, nil)
	if apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("want authorization error, got %v", err)
	}
}

func TestResolve_NonPositiveOverrideRejected(t *testing.T) {
	f := newResolveFixture(t, pendingRequest())

	zero := 0.0
	_, err := f.uc.Resolve(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin}, 11, true, &zero)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestListPending_SuperAdminOnly(t *testing.T) {
	regs := &flowmock.RegistrationRepo{
		ListByStatusFn: func(ctx context.Context, s domainReg.Status) ([]domainReg.Request, error) {
			if s != domainReg.StatusPending {
				t.Fatalf("status filter: %s", s)
			}
			return []domainReg.Request{*pendingRequest()}, nil
		},
	}
	uc := NewUsecase(regs, &wmmock.Repo{}, &dirmock.HubAdminRepo{}, &dirmock.SuperAdminRepo{}, uowmock.New())

	out, err := uc.ListPending(context.Background(), auth.Caller{ID: 1, Role: auth.RoleSuperAdmin})
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(out) != 1 || out[0].EmployeeCode != "WM001" {
		t.Fatalf("unexpected queue: %+v", out)
	}

	if _, err := uc.ListPending(context.Background(), auth.Caller{ID: 3, Role: auth.RoleHubAdmin}); apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("hub admin must not list the queue, got %v", err)
	}
}
