package errors

import "fmt"

var (
	ErrNotFound = fmt.Errorf("item not found")
	ErrStorage  = fmt.Errorf("storage failure")
)
