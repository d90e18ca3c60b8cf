package payroll

// Employee is one payroll record. NetSalary is derived when the record is
// created and never changes afterwards.
type Employee struct {
	ID          string
	Name        string
	Department  Department
	GrossSalary float64
	NetSalary   float64
}
