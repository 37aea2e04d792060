package usecase

import (
	"reflect"
	"testing"
	"time"
)

func reportRow(t *testing.T, ts, product, variant string, qty int64) OrderRow {
	t.Helper()
	createdAt, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", ts, err)
	}
	return OrderRow{
		CreatedAt:   createdAt,
		ProductName: product,
		VariantName: variant,
		Qty:         qty,
	}
}

func TestGroupOrderRows_Desc(t *testing.T) {
	rows := []OrderRow{
		reportRow(t, "2024-01-01T10:00:00Z", "Coffee", "250g", 2),
		reportRow(t, "2024-01-02T10:00:00Z", "Coffee", "250g", 1),
	}

	groups := GroupOrderRows(rows, SortDesc, 7*time.Hour)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].OrderDate != "2024-01-02" || groups[1].OrderDate != "2024-01-01" {
		t.Errorf("expected [2024-01-02, 2024-01-01], got [%s, %s]",
			groups[0].OrderDate, groups[1].OrderDate)
	}
}

func TestGroupOrderRows_Asc(t *testing.T) {
	rows := []OrderRow{
		reportRow(t, "2024-01-02T10:00:00Z", "Coffee", "250g", 1),
		reportRow(t, "2024-01-01T10:00:00Z", "Coffee", "250g", 2),
	}

	groups := GroupOrderRows(rows, SortAsc, 7*time.Hour)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].OrderDate != "2024-01-01" || groups[1].OrderDate != "2024-01-02" {
		t.Errorf("expected [2024-01-01, 2024-01-02], got [%s, %s]",
			groups[0].OrderDate, groups[1].OrderDate)
	}
}

// Сдвиг +07:00 применяется до усечения: поздний вечер UTC попадает в следующую дату.
func TestGroupOrderRows_TzBoundary(t *testing.T) {
	rows := []OrderRow{
		reportRow(t, "2024-01-01T16:59:59Z", "Coffee", "250g", 1),
		reportRow(t, "2024-01-01T17:00:00Z", "Coffee", "250g", 1),
	}

	groups := GroupOrderRows(rows, SortAsc, 7*time.Hour)

	if len(groups) != 2 {
		t.Fatalf("expected boundary split into 2 groups, got %d", len(groups))
	}
	if groups[0].OrderDate != "2024-01-01" || groups[1].OrderDate != "2024-01-02" {
		t.Errorf("expected [2024-01-01, 2024-01-02], got [%s, %s]",
			groups[0].OrderDate, groups[1].OrderDate)
	}
}

func TestGroupOrderRows_ZeroOffset(t *testing.T) {
	rows := []OrderRow{
		reportRow(t, "2024-01-01T23:30:00Z", "Coffee", "250g", 1),
	}

	groups := GroupOrderRows(rows, SortAsc, 0)

	if len(groups) != 1 || groups[0].OrderDate != "2024-01-01" {
		t.Errorf("expected single group 2024-01-01, got %+v", groups)
	}
}

func TestGroupOrderRows_InsertionOrderWithinGroup(t *testing.T) {
	rows := []OrderRow{
		reportRow(t, "2024-01-01T08:00:00Z", "Tea", "100g", 1),
		reportRow(t, "2024-01-01T09:00:00Z", "Coffee", "250g", 2),
		reportRow(t, "2024-01-01T07:00:00Z", "Sugar", "1kg", 3),
	}

	groups := GroupOrderRows(rows, SortAsc, 0)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	names := make([]string, 0, len(groups[0].Rows))
	for _, r := range groups[0].Rows {
		names = append(names, r.ProductName)
	}
	want := []string{"Tea", "Coffee", "Sugar"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected insertion order %v, got %v", want, names)
	}
}

// Группировка — чистая функция: два вызова дают идентичный результат
// и не мутируют вход.
func TestGroupOrderRows_Idempotent(t *testing.T) {
	rows := []OrderRow{
		reportRow(t, "2024-01-01T10:00:00Z", "Coffee", "250g", 2),
		reportRow(t, "2024-01-02T10:00:00Z", "Tea", "100g", 1),
		reportRow(t, "2024-01-01T12:00:00Z", "Sugar", "1kg", 4),
	}
	original := append([]OrderRow(nil), rows...)

	first := GroupOrderRows(rows, SortDesc, 7*time.Hour)
	second := GroupOrderRows(rows, SortDesc, 7*time.Hour)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical output, got %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(rows, original) {
		t.Error("input rows must not be mutated")
	}
}

func TestGroupOrderRows_Empty(t *testing.T) {
	groups := GroupOrderRows(nil, SortAsc, 7*time.Hour)
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %+v", groups)
	}
}
