package attendance

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusOnLeave Status = "On Leave"
)

// Statuses lists the closed set of markable statuses in display order.
func Statuses() []Status {
	return []Status{StatusPresent, StatusAbsent, StatusOnLeave}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusOnLeave:
		return true
	}
	return false
}

// Record is one employee's status for one calendar day.
// Date is always YYYY-MM-DD.
type Record struct {
	ID         int64
	EmployeeID int64
	Date       string
	Status     Status
}
