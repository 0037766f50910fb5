package leave

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/leave"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOrgID  = "4fa52b4c-14cd-44de-97e1-01e0c1d52a6a"
	otherOrgID = "7c01d9fd-2a33-4d08-9f4e-8f2b1a0c3d5e"
	testEmpID  = "9f0f7a3e-63e4-4b3c-9a3e-5a1f0b2c3d4e"
	testUserID = "5e4d3c2b-1a09-4f8e-9d7c-6b5a4e3d2c1b"
)

type fakeLeaveRepo struct {
	records map[string]leave.LeaveRequest
	nextID  int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{records: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r, ok := f.records[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, orgID, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.records {
		if r.OrganizationID == orgID && r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByOrganization(_ context.Context, orgID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.records {
		if r.OrganizationID == orgID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListApproved(_ context.Context, orgID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.records {
		if r.OrganizationID == orgID && r.Status == leave.StatusApproved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) Create(_ context.Context, record leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	record.ID = fmt.Sprintf("leave-%d", f.nextID)
	record.CreatedAt = time.Now()
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, record leave.LeaveRequest) (leave.LeaveRequest, error) {
	if _, ok := f.records[record.ID]; !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	f.records[record.ID] = record
	return record, nil
}

func newService(repo *fakeLeaveRepo) leave.LeaveService {
	return NewLeaveService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func employeeCtx() tenant.Context {
	return tenant.Context{OrganizationID: testOrgID, EmployeeID: testEmpID, UserID: testUserID}
}

func TestCreate_StartsPending(t *testing.T) {
	svc := newService(newFakeLeaveRepo())

	reason := "family matters"
	resp, err := svc.Create(context.Background(), employeeCtx(), leave.CreateLeaveRequest{
		FromDate: "2024-03-11",
		ToDate:   "2024-03-15",
		Reason:   &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "2024-03-11", resp.FromDate)
	assert.Equal(t, "2024-03-15", resp.ToDate)
	assert.Nil(t, resp.ApprovedBy)
}

func TestCreate_FromAfterToRejected(t *testing.T) {
	svc := newService(newFakeLeaveRepo())

	_, err := svc.Create(context.Background(), employeeCtx(), leave.CreateLeaveRequest{
		FromDate: "2024-03-15",
		ToDate:   "2024-03-11",
	})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestCreate_SingleDayAllowed(t *testing.T) {
	svc := newService(newFakeLeaveRepo())

	resp, err := svc.Create(context.Background(), employeeCtx(), leave.CreateLeaveRequest{
		FromDate: "2024-03-11",
		ToDate:   "2024-03-11",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.FromDate, resp.ToDate)
}

func TestCreate_RequiresEmployeeLink(t *testing.T) {
	svc := newService(newFakeLeaveRepo())

	_, err := svc.Create(context.Background(), tenant.Context{OrganizationID: testOrgID}, leave.CreateLeaveRequest{
		FromDate: "2024-03-11",
		ToDate:   "2024-03-15",
	})
	assert.ErrorIs(t, err, tenant.ErrEmployeeRequired)
}

func TestUpdateStatus_ApproveRecordsApprover(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)

	created, err := svc.Create(context.Background(), employeeCtx(), leave.CreateLeaveRequest{
		FromDate: "2024-03-11",
		ToDate:   "2024-03-15",
	})
	require.NoError(t, err)

	resp, err := svc.UpdateStatus(context.Background(), employeeCtx(), created.ID, leave.UpdateStatusRequest{Status: "APPROVED"})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, testUserID, *resp.ApprovedBy)
	assert.NotNil(t, resp.ApprovedAt)
}

func TestUpdateStatus_OnlyPendingTransitions(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)

	created, err := svc.Create(context.Background(), employeeCtx(), leave.CreateLeaveRequest{
		FromDate: "2024-03-11",
		ToDate:   "2024-03-15",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), employeeCtx(), created.ID, leave.UpdateStatusRequest{Status: "REJECTED"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), employeeCtx(), created.ID, leave.UpdateStatusRequest{Status: "APPROVED"})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

	stored := repo.records[created.ID]
	assert.Equal(t, leave.StatusRejected, stored.Status, "processed request stays immutable")
}

func TestUpdateStatus_InvalidStatusValue(t *testing.T) {
	svc := newService(newFakeLeaveRepo())

	_, err := svc.UpdateStatus(context.Background(), employeeCtx(), "leave-1", leave.UpdateStatusRequest{Status: "MAYBE"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdateStatus_CrossTenantForbidden(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)

	foreign, err := repo.Create(context.Background(), leave.LeaveRequest{
		OrganizationID: otherOrgID,
		EmployeeID:     "22222222-2222-4222-8222-222222222222",
		FromDate:       time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
		ToDate:         time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Status:         leave.StatusPending,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), employeeCtx(), foreign.ID, leave.UpdateStatusRequest{Status: "APPROVED"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestForbidden)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newService(newFakeLeaveRepo())

	_, err := svc.UpdateStatus(context.Background(), employeeCtx(), "missing", leave.UpdateStatusRequest{Status: "APPROVED"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestListMine_And_ListAll(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newService(repo)

	_, err := svc.Create(context.Background(), employeeCtx(), leave.CreateLeaveRequest{
		FromDate: "2024-03-11",
		ToDate:   "2024-03-15",
	})
	require.NoError(t, err)

	other := tenant.Context{OrganizationID: testOrgID, EmployeeID: "22222222-2222-4222-8222-222222222222", UserID: testUserID}
	_, err = svc.Create(context.Background(), other, leave.CreateLeaveRequest{
		FromDate: "2024-03-18",
		ToDate:   "2024-03-19",
	})
	require.NoError(t, err)

	mine, err := svc.ListMine(context.Background(), employeeCtx())
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.ListAll(context.Background(), employeeCtx())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
