package payroll

import "github.com/google/uuid"

// Store holds the employees registered during one session, in insertion
// order. Records are append-only: no update, no deletion, duplicates
// allowed. The store is owned by a single session and needs no locking.
type Store struct {
	employees []Employee
}

func NewStore() *Store {
	return &Store{}
}

// Add computes the net salary, appends the new record and returns it.
func (s *Store) Add(name string, department Department, grossSalary float64) Employee {
	employee := Employee{
		ID:          uuid.NewString(),
		Name:        name,
		Department:  department,
		GrossSalary: grossSalary,
		NetSalary:   NetSalary(grossSalary, department),
	}
	s.employees = append(s.employees, employee)
	return employee
}

func (s *Store) IsEmpty() bool {
	return len(s.employees) == 0
}

func (s *Store) Len() int {
	return len(s.employees)
}

// All returns the records in insertion order.
func (s *Store) All() []Employee {
	out := make([]Employee, len(s.employees))
	copy(out, s.employees)
	return out
}
