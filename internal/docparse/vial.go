package docparse

import "strings"

// ReconciliationState describes how the label-side and vial-side prescription
// numbers relate at a point in time. It is derived, never stored.
type ReconciliationState int

const (
	ReconcileBothMissing ReconciliationState = iota
	ReconcileLabelOnly
	ReconcileVialOnly
	ReconcileMatch
	ReconcileMismatch
)

var reconcileNames = []string{"BOTH_MISSING", "LABEL_ONLY", "VIAL_ONLY", "MATCH", "MISMATCH"}

func (s ReconciliationState) String() string {
	if int(s) < len(reconcileNames) {
		return reconcileNames[s]
	}
	return "UNKNOWN"
}

// Prompt names the user-facing follow-up a vial scan outcome requires.
type Prompt int

const (
	PromptNone            Prompt = iota // numbers match, nothing to do
	PromptRescanMismatch                // label and vial disagree: re-scan or correct
	PromptCopyVialRx                    // no label RX yet: offer to copy the vial RX over
	PromptReattachVial                  // label RX present but none readable on the vial
	PromptManualOrAutogen               // no RX anywhere: type one in or autogenerate
)

var promptNames = []string{"NONE", "RESCAN_MISMATCH", "COPY_VIAL_RX", "REATTACH_VIAL", "MANUAL_OR_AUTOGEN"}

func (p Prompt) String() string {
	if int(p) < len(promptNames) {
		return promptNames[p]
	}
	return "UNKNOWN"
}

// Reconciliation is the outcome of checking a vial scan against the record.
type Reconciliation struct {
	CandidateRx string
	Found       bool
	State       ReconciliationState
	Prompt      Prompt
}

// ParseVial finds the prescription number printed on the vial: the first line
// mentioning "rx" that carries any digits yields those digits, concatenated.
func ParseVial(lines []string) (string, bool) {
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "rx") {
			continue
		}
		if digits := DigitsOnly(line); digits != "" {
			return digits, true
		}
	}
	return "", false
}

// Reconcile decides what a vial scan means given the label-side RX currently
// on the record.
func Reconcile(labelRx, candidate string, found bool) Reconciliation {
	r := Reconciliation{CandidateRx: candidate, Found: found}
	switch {
	case found && labelRx != "":
		if candidate == labelRx {
			r.State = ReconcileMatch
			r.Prompt = PromptNone
		} else {
			r.State = ReconcileMismatch
			r.Prompt = PromptRescanMismatch
		}
	case found:
		r.State = ReconcileVialOnly
		r.Prompt = PromptCopyVialRx
	case labelRx != "":
		r.State = ReconcileLabelOnly
		r.Prompt = PromptReattachVial
	default:
		r.State = ReconcileBothMissing
		r.Prompt = PromptManualOrAutogen
	}
	return r
}

// State derives the reconciliation state from the two RX values on a record.
func State(rx, vialRx string) ReconciliationState {
	switch {
	case rx == "" && vialRx == "":
		return ReconcileBothMissing
	case vialRx == "":
		return ReconcileLabelOnly
	case rx == "":
		return ReconcileVialOnly
	case rx == vialRx:
		return ReconcileMatch
	default:
		return ReconcileMismatch
	}
}
