// package formatter renders playlist exports to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/desertthunder/playhead/internal/models"
	"github.com/desertthunder/playhead/internal/shared"
)

// ExportToCSV converts a playlist to CSV format with columns: VideoID, Title, Artists, Duration
func ExportToCSV(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"VideoID", "Title", "Artists", "Duration"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range playlist.Items() {
		record := []string{
			track.VideoID,
			track.Title,
			track.Artists,
			track.Duration,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist to Markdown format
func ExportToMarkdown(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.Name()))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n", len(playlist.Items())))
	buf.WriteString(fmt.Sprintf("**Visibility**: %s\n\n", shared.VisibilityString(playlist.Public())))

	buf.WriteString("## Tracks\n\n")
	for i, track := range playlist.Items() {
		durationPart := ""
		if track.Duration != "" {
			durationPart = fmt.Sprintf(" [%s]", track.Duration)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s\n", i+1, track.Artists, track.Title, durationPart))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist to plain text format
func ExportToText(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlist.Name()))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(playlist.Items())))

	for i, track := range playlist.Items() {
		buf.WriteString(fmt.Sprintf("%d. %s - %s", i+1, track.Artists, track.Title))
		if track.Duration != "" {
			buf.WriteString(fmt.Sprintf(" [%s]", track.Duration))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a playlist to indented JSON.
func ExportToJSON(playlist *models.Playlist) ([]byte, error) {
	output, err := json.MarshalIndent(playlist.DTO(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal playlist: %w", err)
	}
	return append(output, '\n'), nil
}

// Export renders a playlist in the named format: json, csv, markdown, or txt.
// Returns the rendered bytes and the file extension for the format.
func Export(playlist *models.Playlist, format string) ([]byte, string, error) {
	switch format {
	case "csv":
		data, err := ExportToCSV(playlist)
		return data, "csv", err
	case "markdown", "md":
		data, err := ExportToMarkdown(playlist)
		return data, "md", err
	case "txt", "text":
		data, err := ExportToText(playlist)
		return data, "txt", err
	case "json", "":
		data, err := ExportToJSON(playlist)
		return data, "json", err
	default:
		return nil, "", fmt.Errorf("%w: unknown export format %q", shared.ErrValidation, format)
	}
}
