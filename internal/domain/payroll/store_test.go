package payroll

import "testing"

func TestStoreAddPreservesInsertionOrder(t *testing.T) {
	store := NewStore()
	store.Add("Ana", DepartmentSales, 1000)
	store.Add("Luis", DepartmentHR, 200)
	store.Add("Ana", DepartmentSales, 1000) // duplicates allowed

	if store.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", store.Len())
	}

	all := store.All()
	if all[0].Name != "Ana" || all[1].Name != "Luis" || all[2].Name != "Ana" {
		t.Fatalf("unexpected order: %v, %v, %v", all[0].Name, all[1].Name, all[2].Name)
	}
	if all[0].NetSalary != 800 {
		t.Fatalf("expected net 800, got %v", all[0].NetSalary)
	}
	if all[1].NetSalary != 118 {
		t.Fatalf("expected net 118, got %v", all[1].NetSalary)
	}
}

func TestStoreAddAssignsID(t *testing.T) {
	store := NewStore()
	first := store.Add("Ana", DepartmentSales, 1000)
	second := store.Add("Ana", DepartmentSales, 1000)
	if first.ID == "" || second.ID == "" {
		t.Fatal("expected records to carry ids")
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %q", first.ID)
	}
}

func TestStoreIsEmpty(t *testing.T) {
	store := NewStore()
	if !store.IsEmpty() {
		t.Fatal("expected new store to be empty")
	}
	store.Add("Ana", DepartmentIT, 500)
	if store.IsEmpty() {
		t.Fatal("expected store with a record to be non-empty")
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Add("Ana", DepartmentIT, 500)

	all := store.All()
	all[0].Name = "changed"

	if store.All()[0].Name != "Ana" {
		t.Fatal("expected store records to be unaffected by caller mutation")
	}
}
