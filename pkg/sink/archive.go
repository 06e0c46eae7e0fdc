package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/rs/xid"
)

// DefaultArchiveDir receives the log file of the previous run
const DefaultArchiveDir = "Archive"

// ArchiveName returns the timestamped archive file name for logPath,
// e.g. ping_log.txt -> ping_log_3_7_2024_9_5_12.txt
func ArchiveName(logPath string, at time.Time) string {
	base := filepath.Base(logPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%d_%d_%d_%d_%d_%d%s", stem, at.Month(), at.Day(), at.Year(), at.Hour(), at.Minute(), at.Second(), ext)
}

// ArchiveLog moves an existing log file into archiveDir so the run starts
// with a fresh log. It returns the archived path, or "" when there was no
// log to archive. An archive of the same name is never overwritten.
func ArchiveLog(logPath, archiveDir string, at time.Time) (string, error) {
	if !fileutil.FileExists(logPath) {
		return "", nil
	}

	if !fileutil.FolderExists(archiveDir) {
		if err := fileutil.CreateFolder(archiveDir); err != nil {
			return "", fmt.Errorf("could not create archive folder %s: %w", archiveDir, err)
		}
	}

	name := ArchiveName(logPath, at)
	destination := filepath.Join(archiveDir, name)
	if fileutil.FileExists(destination) {
		ext := filepath.Ext(name)
		destination = filepath.Join(archiveDir, fmt.Sprintf("%s_%s%s", strings.TrimSuffix(name, ext), xid.New().String(), ext))
	}

	if err := os.Rename(logPath, destination); err != nil {
		return "", fmt.Errorf("could not archive log file %s: %w", logPath, err)
	}
	return destination, nil
}
