package pingsweep

import (
	"errors"
	"testing"
	"time"

	"github.com/projectdiscovery/subnetping/pkg/types"
)

func TestSortOutcomes(t *testing.T) {
	outcomes := []types.Outcome{
		{IP: "10.0.0.10"},
		{IP: "2001:db8::1"},
		{IP: "10.0.0.9"},
		{IP: "10.0.0.100"},
		{IP: "9.255.255.255"},
	}
	SortOutcomes(outcomes)

	want := []string{"9.255.255.255", "10.0.0.9", "10.0.0.10", "10.0.0.100", "2001:db8::1"}
	for i, ip := range want {
		if outcomes[i].IP != ip {
			t.Errorf("outcome %d = %s, want %s", i, outcomes[i].IP, ip)
		}
	}
}

type recordingSinks struct {
	summary     string
	interrupted bool
	exported    []types.Outcome
	exportCalls int
	summaryErr  error
	exportErr   error
}

func (s *recordingSinks) WriteSummary(summary string, _ time.Time, interrupted bool) error {
	s.summary = summary
	s.interrupted = interrupted
	return s.summaryErr
}

func (s *recordingSinks) Export(outcomes []types.Outcome) error {
	s.exportCalls++
	s.exported = outcomes
	return s.exportErr
}

func TestReportPublish(t *testing.T) {
	outcomes := []types.Outcome{
		{IP: "10.0.0.2", Status: types.StatusDown},
		{IP: "10.0.0.1", Status: types.StatusUp},
	}

	tests := []struct {
		name        string
		interrupted bool
		summaryErr  error
		exportErr   error
		wantExport  bool
		wantErr     bool
	}{
		{name: "complete", wantExport: true},
		{name: "interrupted skips export", interrupted: true, wantExport: false},
		{name: "summary failure still exports", summaryErr: errors.New("read-only"), wantExport: true, wantErr: true},
		{name: "export failure", exportErr: errors.New("disk full"), wantExport: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewReport(2, 1, append([]types.Outcome(nil), outcomes...))
			report.Interrupted = tt.interrupted
			sinks := &recordingSinks{summaryErr: tt.summaryErr, exportErr: tt.exportErr}

			err := report.Publish(sinks, sinks)
			if (err != nil) != tt.wantErr {
				t.Errorf("Publish() error = %v, wantErr %v", err, tt.wantErr)
			}
			if sinks.summary != "1 of 2 hosts could be pinged." {
				t.Errorf("summary = %q", sinks.summary)
			}
			if sinks.interrupted != tt.interrupted {
				t.Errorf("summary interrupted = %v, want %v", sinks.interrupted, tt.interrupted)
			}
			if (sinks.exportCalls == 1) != tt.wantExport {
				t.Fatalf("export calls = %d, want export %v", sinks.exportCalls, tt.wantExport)
			}
			if tt.wantExport && (sinks.exported[0].IP != "10.0.0.1" || sinks.exported[1].IP != "10.0.0.2") {
				t.Errorf("exported unsorted outcomes: %+v", sinks.exported)
			}
		})
	}
}
