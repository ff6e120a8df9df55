package testkit

import (
	"reflect"
	"testing"
)

func TestRetailRows_Deterministic(t *testing.T) {
	a := RetailRows(50)
	b := RetailRows(50)
	if !reflect.DeepEqual(a, b) {
		t.Error("generator must produce identical rows on every call")
	}
}

func TestRetailRows_DuplicatePair(t *testing.T) {
	rows := RetailRows(30)
	if !reflect.DeepEqual(rows[28], rows[29]) {
		t.Error("last row must duplicate the one before it")
	}
	rows[29]["units"] = -1.0
	if rows[28]["units"] == -1.0 {
		t.Error("duplicate must be a copy, not the same map")
	}
}

func TestRetailRows_Shape(t *testing.T) {
	rows := RetailRows(40)
	if len(rows) != 40 {
		t.Fatalf("got %d rows, want 40", len(rows))
	}
	for _, key := range []string{"order_id", "region", "units", "revenue", "discount", "notes"} {
		if _, ok := rows[0][key]; !ok {
			t.Errorf("missing column %s", key)
		}
	}
	// Injected missing cells and outliers land at fixed indices.
	if rows[3]["discount"] != nil {
		t.Errorf("row 3 discount = %v, want nil", rows[3]["discount"])
	}
	if d, ok := rows[7]["discount"].(float64); !ok || d < 90 {
		t.Errorf("row 7 discount = %v, want injected spike >= 90", rows[7]["discount"])
	}
}

func TestConstantColumn(t *testing.T) {
	col := ConstantColumn(4, 2.5)
	if len(col) != 4 {
		t.Fatalf("length = %d, want 4", len(col))
	}
	for _, v := range col {
		if v != 2.5 {
			t.Errorf("value = %v, want 2.5", v)
		}
	}
}
