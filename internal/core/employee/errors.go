package employee

import "errors"

var (
	ErrInvalidRecord    = errors.New("employee: invalid record")
	ErrInvalidID        = errors.New("employee: invalid id")
	ErrInvalidSalary    = errors.New("employee: invalid salary")
	ErrInvalidManagerID = errors.New("employee: invalid manager id")
	ErrInvalidPolicy    = errors.New("employee: invalid analysis policy")
	ErrLoadSource       = errors.New("employee: load source failed")
)
