package store

import "github.com/mesh-intelligence/daybook/pkg/types"

// resolveFocus recomputes which single goal is in focus.
//
// Eligible goals are those that are neither archived nor completed and carry
// no completion timestamp. In auto mode the eligible goal with the earliest
// CreatedAt wins (ties broken by collection order). In manual mode the
// requested goal keeps focus while it stays eligible; once it is not, the
// mode degrades to auto and focus is recomputed, so a pinned goal is silently
// replaced rather than left dangling.
//
// The returned goals slice has IsFocusGoal rewritten on every element. This
// function is the only writer of that flag.
func resolveFocus(goals []types.Goal, mode, requestedID string) ([]types.Goal, string, string) {
	if mode != types.FocusModeManual {
		mode = types.FocusModeAuto
	}

	focusID := ""
	if mode == types.FocusModeManual {
		for i := range goals {
			if goals[i].ID == requestedID && goals[i].FocusEligible() {
				focusID = requestedID
				break
			}
		}
		if focusID == "" {
			mode = types.FocusModeAuto
		}
	}

	if mode == types.FocusModeAuto {
		best := -1
		for i := range goals {
			if !goals[i].FocusEligible() {
				continue
			}
			if best == -1 || goals[i].CreatedAt.Before(goals[best].CreatedAt) {
				best = i
			}
		}
		if best >= 0 {
			focusID = goals[best].ID
		}
	}

	for i := range goals {
		goals[i].IsFocusGoal = goals[i].ID == focusID && goals[i].FocusEligible()
	}
	return goals, focusID, mode
}
