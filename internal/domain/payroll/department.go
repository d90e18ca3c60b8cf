package payroll

// Department identifies one of the fixed payroll departments. The set is
// closed: there is no runtime registration.
type Department string

const (
	DepartmentSales Department = "sales"
	DepartmentIT    Department = "it"
	DepartmentHR    Department = "hr"
)

var departmentLabels = map[Department]string{
	DepartmentSales: "Ventas",
	DepartmentIT:    "IT",
	DepartmentHR:    "RRHH",
}

// Label returns the display name shown to the user.
func (d Department) Label() string {
	return departmentLabels[d]
}

// DepartmentFromMenuOption maps a menu token to its department. Any token
// outside "1", "2", "3" is reported as absent, not as an error.
func DepartmentFromMenuOption(option string) (Department, bool) {
	switch option {
	case "1":
		return DepartmentSales, true
	case "2":
		return DepartmentIT, true
	case "3":
		return DepartmentHR, true
	}
	return "", false
}
