package insight

import "testing"

func TestNew_ClampsConfidence(t *testing.T) {
	if got := New(TypeOther, "t", "d", 1.7, ImportanceLow, nil).Confidence; got != 1 {
		t.Errorf("confidence = %v, want clamped to 1", got)
	}
	if got := New(TypeOther, "t", "d", -0.3, ImportanceLow, nil).Confidence; got != 0 {
		t.Errorf("confidence = %v, want clamped to 0", got)
	}
}

func TestNew_FreshIDs(t *testing.T) {
	a := New(TypeAnomaly, "a", "d", 0.5, ImportanceHigh, nil)
	b := New(TypeAnomaly, "a", "d", 0.5, ImportanceHigh, nil)
	if a.ID == "" || b.ID == "" {
		t.Fatal("insights must carry IDs")
	}
	if a.ID == b.ID {
		t.Error("every insight gets its own ID")
	}
}
