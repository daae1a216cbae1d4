package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dd0wney/discourse-networks/pkg/logging"
	"github.com/dd0wney/discourse-networks/pkg/networks"
	"github.com/dd0wney/discourse-networks/pkg/statements"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Network.Normalization != networks.NormalizationAvg {
		t.Errorf("Normalization = %q, want avg", cfg.Network.Normalization)
	}
	if cfg.Network.MinConcepts != 2 {
		t.Errorf("MinConcepts = %d, want 2", cfg.Network.MinConcepts)
	}
	if cfg.Columns.Attribute != statements.DefaultAttributeColumn {
		t.Errorf("Attribute = %q, want party", cfg.Columns.Attribute)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
columns:
  actor: speaker
  concept: topic
  qualifier: stance
  attribute: ""
  qualifier_values: [0, 1]
network:
  normalization: cosine
log_level: debug
log_format: json
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Columns.Actor != "speaker" || cfg.Columns.Attribute != "" {
		t.Errorf("Columns = %+v", cfg.Columns)
	}
	if len(cfg.Columns.QualifierValues) != 2 {
		t.Errorf("QualifierValues = %v, want [0 1]", cfg.Columns.QualifierValues)
	}
	if cfg.Network.Normalization != networks.NormalizationCosine {
		t.Errorf("Normalization = %q, want cosine", cfg.Network.Normalization)
	}
	// Omitted keys keep defaults
	if cfg.Network.MinConcepts != 2 {
		t.Errorf("MinConcepts = %d, want default 2", cfg.Network.MinConcepts)
	}
	if cfg.LogFormat != logging.FormatJSON {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.Logger().GetLevel() != logging.DebugLevel {
		t.Errorf("logger level = %v, want DEBUG", cfg.Logger().GetLevel())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"unknown normalization", "network:\n  normalization: jaccard\n", "must be one of"},
		{"negative threshold", "network:\n  min_concepts: -1\n", "must be at least 0"},
		{"missing actor column", "columns:\n  actor: \"\"\n", "field is required"},
		{"reused column", "columns:\n  concept: person\n", "already used"},
		{"bad log level", "log_level: loud\n", "must be one of"},
		{"bad log format", "log_format: xml\n", "must be one of"},
		{"malformed yaml", "columns: [", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networks.yaml")
	if err := os.WriteFile(path, []byte("verbose: false\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Verbose {
		t.Error("Verbose should be false")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}
