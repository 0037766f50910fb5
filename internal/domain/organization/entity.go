package organization

import "time"

type Organization struct {
	ID        string
	Name      string
	Email     string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
