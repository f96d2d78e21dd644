package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in        string
		want      slog.Level
		wantKnown bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, known := parseLevel(tt.in)
		if got != tt.want || known != tt.wantKnown {
			t.Errorf("parseLevel(%q) = %v, %v, want %v, %v", tt.in, got, known, tt.want, tt.wantKnown)
		}
	}
}

func TestComponentTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	Component(base, "scraper").Info("fetching page")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal log record: %v", err)
	}
	if record["component"] != "scraper" {
		t.Errorf("component = %v, want scraper", record["component"])
	}
	if record["msg"] != "fetching page" {
		t.Errorf("msg = %v, want fetching page", record["msg"])
	}
}
