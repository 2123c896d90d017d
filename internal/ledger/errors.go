package ledger

import (
	"errors"
	"fmt"
)

// Every error here is recoverable: the caller reports it and re-invokes with
// corrected input. Nothing in the core is fatal to the process.
var (
	ErrValidation    = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrDuplicate     = errors.New("already exists")
	ErrUnknownOutlet = errors.New("unknown outlet")
	ErrUnknownDish   = errors.New("unknown dish")
	ErrLastOutlet    = errors.New("the last outlet cannot be removed")
)

// InsufficientStockError aborts a sale before any stock is debited.
type InsufficientStockError struct {
	Item      string
	Needed    float64
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough %s: need %g, have %g", e.Item, e.Needed, e.Available)
}
