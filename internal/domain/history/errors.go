package history

import "errors"

var ErrNoBaseSalary = errors.New("no base salary history for employee")
