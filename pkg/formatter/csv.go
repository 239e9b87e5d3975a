package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"

	"github.com/younsl/awsls/internal/models"
)

// CSVExtension is the only supported output file extension
const CSVExtension = ".csv"

var csvHeader = []string{"id", "type", "state", "nb_cores", "memory_size", "region"}

// IsCSVPath reports whether path names a .csv file
func IsCSVPath(path string) bool {
	return filepath.Ext(path) == CSVExtension
}

// WriteInstancesCSV writes a header and one row per instance, without colors
func WriteInstancesCSV(w io.Writer, instances []models.InstanceInfo) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, instance := range instances {
		record := []string{
			instance.InstanceID,
			instance.InstanceType,
			string(instance.State),
			instance.Details.CoresString(),
			instance.Details.MemoryString(),
			instance.Region,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing CSV row for %s: %w", instance.InstanceID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}
