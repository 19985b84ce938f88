package workflow

import (
	"fmt"
	"strings"

	"teamboard/internal/model"

	"github.com/google/uuid"
)

// EntryDecision is the workflow gate's verdict for a card entering a column.
type EntryDecision struct {
	Admitted   bool
	Reason     string
	AssigneeID *uuid.UUID // set when entering the column auto-assigns the card
}

// CheckEntry enforces column-entry preconditions and side effects,
// independent of who performs the move.
//
// Ready requires a team and non-empty acceptance criteria. Doing assigns
// the acting user when the card is unassigned. Every other stage admits
// unconditionally.
func CheckEntry(card *model.Card, target *model.Column, actorID uuid.UUID) EntryDecision {
	switch target.Stage {
	case model.StageReady:
		missingTeam := !card.HasTeam()
		missingCriteria := card.AcceptanceCriteria == nil || strings.TrimSpace(*card.AcceptanceCriteria) == ""
		if missingTeam || missingCriteria {
			var missing []string
			if missingTeam {
				missing = append(missing, "Team")
			}
			if missingCriteria {
				missing = append(missing, "Done looks like")
			}
			return EntryDecision{
				Reason: fmt.Sprintf("Cannot move to Ready: Set %s first.", strings.Join(missing, " + ")),
			}
		}
		return EntryDecision{Admitted: true}

	case model.StageDoing:
		if card.AssigneeID == nil {
			assignee := actorID
			return EntryDecision{Admitted: true, AssigneeID: &assignee}
		}
		return EntryDecision{Admitted: true}

	default:
		return EntryDecision{Admitted: true}
	}
}
