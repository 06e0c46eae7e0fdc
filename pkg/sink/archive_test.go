package sink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestArchiveName(t *testing.T) {
	at := time.Date(2024, time.March, 7, 9, 5, 12, 0, time.Local)
	tests := []struct {
		logPath string
		want    string
	}{
		{logPath: "ping_log.txt", want: "ping_log_3_7_2024_9_5_12.txt"},
		{logPath: "/var/log/sweep/ping_log.txt", want: "ping_log_3_7_2024_9_5_12.txt"},
		{logPath: "sweep", want: "sweep_3_7_2024_9_5_12"},
	}

	for _, tt := range tests {
		t.Run(tt.logPath, func(t *testing.T) {
			if got := ArchiveName(tt.logPath, at); got != tt.want {
				t.Errorf("ArchiveName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArchiveLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, DefaultLogFile)
	archiveDir := filepath.Join(dir, DefaultArchiveDir)
	at := time.Date(2024, time.March, 7, 9, 5, 12, 0, time.Local)

	if err := os.WriteFile(logPath, []byte("first run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	archived, err := ArchiveLog(logPath, archiveDir, at)
	if err != nil {
		t.Fatalf("ArchiveLog() error = %v", err)
	}
	if want := filepath.Join(archiveDir, "ping_log_3_7_2024_9_5_12.txt"); archived != want {
		t.Errorf("ArchiveLog() = %q, want %q", archived, want)
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Errorf("log file still present after archiving: %v", err)
	}
	data, err := os.ReadFile(archived)
	if err != nil || string(data) != "first run\n" {
		t.Errorf("archived content = %q, %v", data, err)
	}

	// a second run within the same second must not overwrite the first archive
	if err := os.WriteFile(logPath, []byte("second run\n"), 0644); err != nil {
		t.Fatal(err)
	}
	second, err := ArchiveLog(logPath, archiveDir, at)
	if err != nil {
		t.Fatalf("ArchiveLog() error = %v", err)
	}
	if second == archived || !strings.HasPrefix(filepath.Base(second), "ping_log_3_7_2024_9_5_12_") {
		t.Errorf("ArchiveLog() collision name = %q", second)
	}
	if data, _ := os.ReadFile(archived); string(data) != "first run\n" {
		t.Errorf("first archive overwritten: %q", data)
	}

	entries, _ := os.ReadDir(archiveDir)
	if len(entries) != 2 {
		t.Errorf("archive folder has %d entries, want 2", len(entries))
	}
}

func TestArchiveLogNothingToArchive(t *testing.T) {
	dir := t.TempDir()
	archiveDir := filepath.Join(dir, DefaultArchiveDir)

	archived, err := ArchiveLog(filepath.Join(dir, DefaultLogFile), archiveDir, time.Now())
	if err != nil {
		t.Fatalf("ArchiveLog() error = %v", err)
	}
	if archived != "" {
		t.Errorf("ArchiveLog() = %q, want empty", archived)
	}
	if _, err := os.Stat(archiveDir); !os.IsNotExist(err) {
		t.Error("archive folder created without a log to archive")
	}
}
