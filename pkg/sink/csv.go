package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/subnetping/pkg/types"
)

// DefaultCSVFile is the export of a completed sweep
const DefaultCSVFile = "ping_results.csv"

var csvHeader = []string{"ip", "status"}

// CSVExporter writes sweep results to a CSV file, replacing any previous one
type CSVExporter struct {
	Path string
}

// Export writes outcomes in the given order
func (e *CSVExporter) Export(outcomes []types.Outcome) error {
	file, err := os.Create(e.Path)
	if err != nil {
		return fmt.Errorf("could not create csv file %s: %w", e.Path, err)
	}

	if err := WriteCSV(file, outcomes); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteCSV writes the ip,status header followed by one row per outcome
func WriteCSV(w io.Writer, outcomes []types.Outcome) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, outcome := range outcomes {
		if err := writer.Write([]string{outcome.IP, outcome.Status.String()}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
