package employee

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/employee"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/history"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/tenant"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOrgID  = "4fa52b4c-14cd-44de-97e1-01e0c1d52a6a"
	testUserID = "5e4d3c2b-1a09-4f8e-9d7c-6b5a4e3d2c1b"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
	nextID    int
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id, orgID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.OrganizationID == orgID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByOrganizationID(_ context.Context, orgID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.OrganizationID == orgID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.OrganizationID == e.OrganizationID && existing.Email == e.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	f.nextID++
	e.ID = fmt.Sprintf("emp-%d", f.nextID)
	f.employees = append(f.employees, e)
	return e, nil
}

type fakeHistoryRepo struct {
	entries []history.Entry
}

func (f *fakeHistoryRepo) Create(_ context.Context, e history.Entry) (history.Entry, error) {
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeHistoryRepo) ListByEmployee(_ context.Context, employeeID string) ([]history.Entry, error) {
	var out []history.Entry
	for _, e := range f.entries {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) LatestBaseSalary(_ context.Context, employeeID string) (decimal.Decimal, error) {
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].EmployeeID == employeeID && f.entries[i].FieldName == history.FieldBaseSalary {
			return decimal.NewFromString(f.entries[i].NewValue)
		}
	}
	return decimal.Decimal{}, history.ErrNoBaseSalary
}

func newService(employees *fakeEmployeeRepo, histories *fakeHistoryRepo) employee.EmployeeService {
	return NewEmployeeService(employees, histories, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func adminCtx() tenant.Context {
	return tenant.Context{OrganizationID: testOrgID, UserID: testUserID, Role: "admin"}
}

func TestCreate_RecordsBaseSalaryHistory(t *testing.T) {
	employees := &fakeEmployeeRepo{}
	histories := &fakeHistoryRepo{}
	svc := newService(employees, histories)

	salary := "12500000"
	resp, err := svc.Create(context.Background(), adminCtx(), employee.CreateEmployeeRequest{
		FirstName:  "An",
		LastName:   "Nguyen",
		Email:      "an@example.com",
		BaseSalary: &salary,
	})
	require.NoError(t, err)

	require.Len(t, histories.entries, 1)
	entry := histories.entries[0]
	assert.Equal(t, resp.ID, entry.EmployeeID)
	assert.Equal(t, history.FieldBaseSalary, entry.FieldName)
	assert.Equal(t, salary, entry.NewValue)
	require.NotNil(t, entry.ChangedBy)
	assert.Equal(t, testUserID, *entry.ChangedBy)

	amount, err := histories.LatestBaseSalary(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(12_500_000)))
}

func TestCreate_WithoutBaseSalary(t *testing.T) {
	employees := &fakeEmployeeRepo{}
	histories := &fakeHistoryRepo{}
	svc := newService(employees, histories)

	resp, err := svc.Create(context.Background(), adminCtx(), employee.CreateEmployeeRequest{
		FirstName: "Binh",
		LastName:  "Tran",
		Email:     "binh@example.com",
	})
	require.NoError(t, err)
	assert.Empty(t, histories.entries)

	_, err = histories.LatestBaseSalary(context.Background(), resp.ID)
	assert.ErrorIs(t, err, history.ErrNoBaseSalary)
}

func TestCreate_Validation(t *testing.T) {
	svc := newService(&fakeEmployeeRepo{}, &fakeHistoryRepo{})

	negative := "-100"
	cases := []struct {
		name string
		req  employee.CreateEmployeeRequest
	}{
		{"missing first name", employee.CreateEmployeeRequest{LastName: "Tran", Email: "a@b.co"}},
		{"bad email", employee.CreateEmployeeRequest{FirstName: "An", LastName: "Tran", Email: "not-an-email"}},
		{"negative base salary", employee.CreateEmployeeRequest{FirstName: "An", LastName: "Tran", Email: "a@b.co", BaseSalary: &negative}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), adminCtx(), tc.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestCreate_DuplicateEmailInOrganization(t *testing.T) {
	svc := newService(&fakeEmployeeRepo{}, &fakeHistoryRepo{})

	req := employee.CreateEmployeeRequest{FirstName: "An", LastName: "Nguyen", Email: "an@example.com"}
	_, err := svc.Create(context.Background(), adminCtx(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), adminCtx(), req)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestGetByID_ScopedToOrganization(t *testing.T) {
	employees := &fakeEmployeeRepo{}
	svc := newService(employees, &fakeHistoryRepo{})

	created, err := svc.Create(context.Background(), adminCtx(), employee.CreateEmployeeRequest{
		FirstName: "An", LastName: "Nguyen", Email: "an@example.com",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), adminCtx(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	foreign := tenant.Context{OrganizationID: "7c01d9fd-2a33-4d08-9f4e-8f2b1a0c3d5e", UserID: testUserID}
	_, err = svc.GetByID(context.Background(), foreign, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestList_ReturnsOwnOrganizationOnly(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-a", OrganizationID: testOrgID, FirstName: "An", LastName: "Nguyen", Email: "an@example.com"},
		{ID: "emp-b", OrganizationID: "7c01d9fd-2a33-4d08-9f4e-8f2b1a0c3d5e", FirstName: "X", LastName: "Y", Email: "x@y.co"},
	}}
	svc := newService(employees, &fakeHistoryRepo{})

	results, err := svc.List(context.Background(), adminCtx())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "emp-a", results[0].ID)
}
