package ai

import "testing"

func TestStripCodeFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no fences",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "uppercase fence",
			input: "```JSON\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFences(tc.input); got != tc.want {
				t.Fatalf("StripCodeFences(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestUnmarshalFlexible(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain json",
			input: `{"name": "Alice"}`,
			want:  "Alice",
		},
		{
			name:  "fenced json",
			input: "```json\n{\"name\": \"Alice\"}\n```",
			want:  "Alice",
		},
		{
			name:  "double-encoded json",
			input: `"{\"name\": \"Alice\"}"`,
			want:  "Alice",
		},
		{
			name:  "trailing comma repaired",
			input: `{"name": "Alice",}`,
			want:  "Alice",
		},
		{
			name:    "wrong shape after repair",
			input:   `[1, 2`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got payload
			err := UnmarshalFlexible(tc.input, &got)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalFlexible returned error: %v", err)
			}
			if got.Name != tc.want {
				t.Fatalf("Name = %q, want %q", got.Name, tc.want)
			}
		})
	}
}

func TestModelMetricsDelta(t *testing.T) {
	t.Parallel()

	before := ModelMetrics{InputTokens: 100, OutputTokens: 40, TotalTokens: 140, DurationMs: 900}
	after := ModelMetrics{InputTokens: 130, OutputTokens: 55, TotalTokens: 185, DurationMs: 1250}

	got := after.Delta(before)
	want := ModelMetrics{InputTokens: 30, OutputTokens: 15, TotalTokens: 45, DurationMs: 350}
	if got != want {
		t.Errorf("Delta = %+v, want %+v", got, want)
	}

	if zero := after.Delta(after); zero != (ModelMetrics{}) {
		t.Errorf("Delta against itself = %+v, want zero", zero)
	}
}
