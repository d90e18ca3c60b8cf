package payroll

import (
	"math"
	"strconv"
)

// NetSalary applies the department tax rate and the cafeteria discount to a
// gross salary. A negative result is floored at zero. Zero and negative
// gross salaries are accepted and run through the same formula.
func NetSalary(grossSalary float64, department Department) float64 {
	net := grossSalary - grossSalary*TaxRate(department) - CafeteriaDiscount
	if net < 0 {
		return 0
	}
	return net
}

// FormatAmount renders a salary amount in full precision, without rounding.
// Integer-valued amounts keep one decimal digit ("800.0"), everything else
// uses the shortest exact form.
func FormatAmount(amount float64) string {
	if amount == math.Trunc(amount) {
		return strconv.FormatFloat(amount, 'f', 1, 64)
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
