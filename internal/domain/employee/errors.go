package employee

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

var (
	ErrEmployeeNotFound  = fmt.Errorf("employee not found: %w", database.ErrNotFound)
	ErrEmailExists       = fmt.Errorf("email already registered: %w", database.ErrConstraintViolation)
	ErrInvalidEmployeeID = errors.New("employee id must be a positive integer")
	ErrImportNoData      = errors.New("spreadsheet has no data rows below the header")
	ErrImportBadHeader   = errors.New("spreadsheet header must contain name, position and email columns")
	ErrImportTooManyRows = fmt.Errorf("spreadsheet exceeds %d data rows", MaxImportRows)
)
