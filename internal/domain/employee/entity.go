package employee

import "time"

type Employee struct {
	ID             string
	OrganizationID string
	FirstName      string
	LastName       string
	Email          string
	JobTitle       *string
	HireDate       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
