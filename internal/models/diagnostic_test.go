package models

import "testing"

func TestDiagnosticPatternValidate(t *testing.T) {
	tests := []struct {
		name    string
		pattern DiagnosticPattern
		wantErr bool
	}{
		{
			name: "valid pattern",
			pattern: DiagnosticPattern{
				Keywords:           []string{"cors"},
				Complexity:         ComplexityLow,
				RecommendedService: "API Integration",
			},
			wantErr: false,
		},
		{
			name: "missing keywords",
			pattern: DiagnosticPattern{
				Complexity:         ComplexityLow,
				RecommendedService: "API Integration",
			},
			wantErr: true,
		},
		{
			name: "missing service",
			pattern: DiagnosticPattern{
				Keywords:   []string{"cors"},
				Complexity: ComplexityLow,
			},
			wantErr: true,
		},
		{
			name: "invalid complexity",
			pattern: DiagnosticPattern{
				Keywords:           []string{"cors"},
				Complexity:         "EXTREME",
				RecommendedService: "API Integration",
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		err := test.pattern.Validate()
		if test.wantErr && err == nil {
			t.Errorf("%s: expected validation error", test.name)
		}
		if !test.wantErr && err != nil {
			t.Errorf("%s: unexpected validation error: %v", test.name, err)
		}
	}
}
