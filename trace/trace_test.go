package trace

import (
	"testing"
)

func TestNew_ReferencesSlices(t *testing.T) {
	signal := []float64{1, 2, 3}
	ts := []float64{0, 0.1, 0.2}

	tr := New(signal, 10, ts)

	signal[0] = 42
	if tr.Signal[0] != 42 {
		t.Fatalf("New must reference the caller's signal slice, got copy")
	}
}

func TestNew_Options(t *testing.T) {
	ann := map[string]any{"subject": "m12", "region": "NAc"}
	tr := New(nil, 30, nil, WithName("gcamp"), WithAnnotations(ann))

	if tr.Name != "gcamp" {
		t.Fatalf("name: got %q, want %q", tr.Name, "gcamp")
	}

	if tr.Annotations["subject"] != "m12" {
		t.Fatalf("annotations not attached: %v", tr.Annotations)
	}
}

func TestNew_NoValidation(t *testing.T) {
	// Mismatched lengths and a zero rate must not panic or error at
	// construction; Validate reports them on demand.
	tr := New([]float64{1, 2, 3}, 0, []float64{0})
	if tr == nil {
		t.Fatal("New returned nil")
	}

	if err := tr.Validate(); err == nil {
		t.Fatal("Validate: expected error for invalid trace")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		tr      *Trace
		wantErr bool
	}{
		{"valid", New([]float64{1, 2}, 10, []float64{0, 0.1}), false},
		{"empty", New(nil, 10, nil), false},
		{"length mismatch", New([]float64{1, 2}, 10, []float64{0}), true},
		{"zero rate", New([]float64{1}, 0, []float64{0}), true},
		{"negative rate", New([]float64{1}, -1, []float64{0}), true},
		{"decreasing timestamps", New([]float64{1, 2}, 10, []float64{0.1, 0}), true},
		{"repeated timestamps ok", New([]float64{1, 2}, 10, []float64{0.1, 0.1}), false},
	}

	for _, tc := range cases {
		err := tc.tr.Validate()
		if (err != nil) != tc.wantErr {
			t.Fatalf("%s: Validate() = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestLenDuration(t *testing.T) {
	tr := New(make([]float64, 300), 30, make([]float64, 300))

	if tr.Len() != 300 {
		t.Fatalf("Len: got %d, want 300", tr.Len())
	}

	if tr.Duration() != 10 {
		t.Fatalf("Duration: got %f, want 10", tr.Duration())
	}

	tr.SampleRate = 0
	if tr.Duration() != 0 {
		t.Fatalf("Duration with zero rate: got %f, want 0", tr.Duration())
	}
}

func TestClone_Independent(t *testing.T) {
	tr := New([]float64{1, 2, 3}, 10, []float64{0, 0.1, 0.2},
		WithName("orig"), WithAnnotations(map[string]any{"k": "v"}))

	c := tr.Clone()
	c.Signal[0] = 99
	c.Timestamps[0] = 99
	c.Annotations["k"] = "changed"

	if tr.Signal[0] != 1 || tr.Timestamps[0] != 0 {
		t.Fatalf("Clone shares slices with the original")
	}

	if tr.Annotations["k"] != "v" {
		t.Fatalf("Clone shares annotations with the original")
	}

	if c.Name != "orig" || c.SampleRate != 10 {
		t.Fatalf("Clone dropped scalar fields: %+v", c)
	}
}
