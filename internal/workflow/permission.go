package workflow

import (
	"fmt"

	"teamboard/internal/model"
)

// Decision is a permission or capacity verdict.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// CanMove decides whether the actor may move the card from source to
// target. membership is the actor's membership in the card's team, nil when
// absent. The function is pure: the caller resolves the membership first.
//
// Cards without a team are ungated. Leads may move anywhere. Members may
// only advance Ready→Doing and Doing→Review, or reorder within a column.
func CanMove(card *model.Card, membership *model.TeamMember, source, target *model.Column) Decision {
	if !card.HasTeam() {
		return allow()
	}

	if membership == nil {
		return deny("You must be a team member to move this card")
	}

	if membership.IsLead() {
		return allow()
	}

	if source.ID == target.ID {
		return allow()
	}

	if source.Stage == model.StageReady && target.Stage == model.StageDoing {
		return allow()
	}
	if source.Stage == model.StageDoing && target.Stage == model.StageReview {
		return allow()
	}

	if source.Stage == model.StageReview && target.Stage == model.StageDone {
		return deny("Only team leads can approve cards to Done")
	}
	return deny(fmt.Sprintf("Members cannot move cards from %s to %s", source.Name, target.Name))
}
