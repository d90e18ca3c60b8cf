package payroll

// CafeteriaDiscount is deducted from every salary after tax, regardless of
// department.
const CafeteriaDiscount = 50.0

var taxRates = map[Department]float64{
	DepartmentSales: 0.15,
	DepartmentIT:    0.15,
	DepartmentHR:    0.16,
}

// TaxRate returns the fixed tax rate for a department.
func TaxRate(department Department) float64 {
	return taxRates[department]
}
