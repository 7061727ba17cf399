package employee

type Employee struct {
	ID       int64
	Name     string
	Position string
	Email    string
}

// Option is the identity and display name of an employee, used wherever a
// caller needs to pick an employee without the full record.
type Option struct {
	ID   int64
	Name string
}

// MaxImportRows caps the data rows accepted from one spreadsheet import.
const MaxImportRows = 1000
