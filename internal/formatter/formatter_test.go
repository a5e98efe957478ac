package formatter

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/playhead/internal/models"
	"github.com/desertthunder/playhead/internal/shared"
)

func samplePlaylist() *models.Playlist {
	playlist := models.NewPlaylist(1, "user-1", "Road Trip", []models.Track{
		{VideoID: "abc123", Title: "First Song", Artists: "Artist A", Duration: "3:21"},
		{VideoID: "def456", Title: "Second Song", Artists: "Artist B, Artist C"},
	})
	playlist.SetID("pl-12345678")
	return playlist
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(samplePlaylist())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output should parse as CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "VideoID" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][1] != "First Song" || records[2][2] != "Artist B, Artist C" {
		t.Errorf("unexpected rows: %v", records[1:])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown(samplePlaylist())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	output := string(data)
	for _, want := range []string{"# Road Trip", "**Tracks**: 2", "**Visibility**: Private", "1. Artist A - First Song [3:21]"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(samplePlaylist())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	output := string(data)
	if !strings.Contains(output, "Playlist: Road Trip") {
		t.Errorf("expected playlist header, got:\n%s", output)
	}
	if !strings.Contains(output, "2. Artist B, Artist C - Second Song\n") {
		t.Errorf("track without duration should omit brackets:\n%s", output)
	}
}

func TestExportToJSON(t *testing.T) {
	data, err := ExportToJSON(samplePlaylist())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if !strings.Contains(string(data), `"id": "pl-12345678"`) {
		t.Errorf("expected playlist id in output:\n%s", data)
	}
}

func TestExport(t *testing.T) {
	t.Run("maps formats to extensions", func(t *testing.T) {
		cases := map[string]string{
			"csv":      "csv",
			"markdown": "md",
			"md":       "md",
			"txt":      "txt",
			"json":     "json",
			"":         "json",
		}

		for format, wantExt := range cases {
			_, ext, err := Export(samplePlaylist(), format)
			if err != nil {
				t.Errorf("%q: unexpected error: %v", format, err)
				continue
			}
			if ext != wantExt {
				t.Errorf("%q: expected extension %q, got %q", format, wantExt, ext)
			}
		}
	})

	t.Run("unknown format is a validation error", func(t *testing.T) {
		_, _, err := Export(samplePlaylist(), "xml")
		if !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}
