package validation

import (
	"strings"
	"testing"
)

type sample struct {
	Name  string `validate:"required"`
	Mode  string `validate:"omitempty,oneof=none avg cosine"`
	Count int    `validate:"min=0,max=10"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{"valid", sample{Name: "x", Mode: "avg", Count: 2}, ""},
		{"empty mode allowed", sample{Name: "x"}, ""},
		{"missing name", sample{Mode: "avg"}, "field is required"},
		{"bad mode", sample{Name: "x", Mode: "jaccard"}, "must be one of"},
		{"negative count", sample{Name: "x", Count: -1}, "must be at least 0"},
		{"large count", sample{Name: "x", Count: 11}, "must not exceed 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Struct() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Struct() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestStruct_Nil(t *testing.T) {
	if err := Struct(nil); err == nil {
		t.Error("Struct(nil) should fail")
	}
}
