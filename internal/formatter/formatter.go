// package formatter provides functions to export item listings to other formats (CSV, Markdown)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/desertthunder/jellycli/internal/models"
)

// ListingToCSV converts an item listing to CSV with columns: ID, Name, IsFolder, Type, VideoType, IndexNumber
func ListingToCSV(items []models.Item) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "IsFolder", "Type", "VideoType", "IndexNumber"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range items {
		record := []string{
			item.ID,
			item.Name,
			strconv.FormatBool(item.IsFolder),
			item.Type,
			item.VideoType,
			strconv.Itoa(item.IndexNumber),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}

// ListingToMarkdown converts an item listing to a Markdown document with the
// given title as heading.
func ListingToMarkdown(title string, items []models.Item) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", title)
	fmt.Fprintf(&buf, "%d items\n\n", len(items))
	buf.WriteString("| # | | Name | ID |\n")
	buf.WriteString("|---|---|------|----|\n")

	for i, item := range items {
		fmt.Fprintf(&buf, "| %d | %s | %s | %s |\n", i+1, item.Marker(), item.Name, item.ID)
	}

	return buf.Bytes()
}
