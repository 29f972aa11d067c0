package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lines     []string
		want      string
		wantFound bool
	}{
		{
			name:      "rx line with digits",
			lines:     []string{"LUTATHERA", "rx 445566", "sterile"},
			want:      "445566",
			wantFound: true,
		},
		{
			name:      "digits concatenated across punctuation",
			lines:     []string{"RX# 44-55.66"},
			want:      "445566",
			wantFound: true,
		},
		{
			name:      "rx line without digits is skipped",
			lines:     []string{"rx pending", "rx 777"},
			want:      "777",
			wantFound: true,
		},
		{
			name:      "first matching line wins",
			lines:     []string{"rx 111", "rx 222"},
			want:      "111",
			wantFound: true,
		},
		{
			name:  "digits without rx mention",
			lines: []string{"lot 12345"},
		},
		{
			name:  "no text",
			lines: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, found := ParseVial(tt.lines)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		labelRx    string
		candidate  string
		found      bool
		wantState  ReconciliationState
		wantPrompt Prompt
	}{
		{
			name: "both missing", wantState: ReconcileBothMissing, wantPrompt: PromptManualOrAutogen,
		},
		{
			name: "label only", labelRx: "123",
			wantState: ReconcileLabelOnly, wantPrompt: PromptReattachVial,
		},
		{
			name: "vial only", candidate: "123", found: true,
			wantState: ReconcileVialOnly, wantPrompt: PromptCopyVialRx,
		},
		{
			name: "match", labelRx: "123", candidate: "123", found: true,
			wantState: ReconcileMatch, wantPrompt: PromptNone,
		},
		{
			name: "mismatch", labelRx: "123", candidate: "456", found: true,
			wantState: ReconcileMismatch, wantPrompt: PromptRescanMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Reconcile(tt.labelRx, tt.candidate, tt.found)
			assert.Equal(t, tt.wantState, r.State)
			assert.Equal(t, tt.wantPrompt, r.Prompt)
			assert.Equal(t, tt.candidate, r.CandidateRx)
			assert.Equal(t, tt.found, r.Found)
		})
	}
}

func TestState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ReconcileBothMissing, State("", ""))
	assert.Equal(t, ReconcileLabelOnly, State("123", ""))
	assert.Equal(t, ReconcileVialOnly, State("", "123"))
	assert.Equal(t, ReconcileMatch, State("123", "123"))
	assert.Equal(t, ReconcileMismatch, State("123", "456"))
}
