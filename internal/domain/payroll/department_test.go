package payroll

import "testing"

func TestDepartmentFromMenuOption(t *testing.T) {
	cases := map[string]Department{
		"1": DepartmentSales,
		"2": DepartmentIT,
		"3": DepartmentHR,
	}
	for option, want := range cases {
		got, ok := DepartmentFromMenuOption(option)
		if !ok {
			t.Fatalf("expected option %q to resolve", option)
		}
		if got != want {
			t.Fatalf("option %q: expected %q, got %q", option, want, got)
		}
	}
}

func TestDepartmentFromMenuOptionAbsent(t *testing.T) {
	for _, option := range []string{"", "0", "4", "5", "9", "sales", " 1"} {
		if _, ok := DepartmentFromMenuOption(option); ok {
			t.Fatalf("expected option %q to be absent", option)
		}
	}
}

func TestDepartmentLabels(t *testing.T) {
	if label := DepartmentSales.Label(); label != "Ventas" {
		t.Fatalf("expected Ventas, got %q", label)
	}
	if label := DepartmentIT.Label(); label != "IT" {
		t.Fatalf("expected IT, got %q", label)
	}
	if label := DepartmentHR.Label(); label != "RRHH" {
		t.Fatalf("expected RRHH, got %q", label)
	}
}
