package rlimit

import "testing"

func TestRequired(t *testing.T) {
	tests := []struct {
		workers int
		want    uint64
	}{
		{workers: 0, want: reservedFiles},
		{workers: -3, want: reservedFiles},
		{workers: 1, want: filesPerProbe + reservedFiles},
		{workers: 50, want: 50*filesPerProbe + reservedFiles},
	}

	for _, tt := range tests {
		if got := Required(tt.workers); got != tt.want {
			t.Errorf("Required(%d) = %d, want %d", tt.workers, got, tt.want)
		}
	}
}

func TestRaiseNeverLowers(t *testing.T) {
	if !Supported {
		t.Skip("no open file limit on this platform")
	}

	before, err := Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	got, err := Raise(1)
	if err != nil {
		t.Fatalf("Raise(1) error = %v", err)
	}
	if got != before {
		t.Errorf("Raise(1) = %d, want current limit %d", got, before)
	}

	after, _ := Current()
	if after != before {
		t.Errorf("limit changed from %d to %d", before, after)
	}
}
