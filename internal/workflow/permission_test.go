package workflow_test

import (
	"testing"

	"teamboard/internal/model"
	"teamboard/internal/workflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func column(name string) *model.Column {
	return &model.Column{
		ID:    uuid.New(),
		Name:  name,
		Stage: model.StageForName(name),
	}
}

func teamCard(teamID uuid.UUID) *model.Card {
	return &model.Card{ID: uuid.New(), TeamID: &teamID}
}

func membership(role string) *model.TeamMember {
	return &model.TeamMember{ID: uuid.New(), Role: role}
}

func TestCanMove_TeamlessCardIsUngated(t *testing.T) {
	card := &model.Card{ID: uuid.New()}

	decision := workflow.CanMove(card, nil, column("Review"), column("Done"))

	assert.True(t, decision.Allowed)
}

func TestCanMove_NonMemberDenied(t *testing.T) {
	card := teamCard(uuid.New())

	decision := workflow.CanMove(card, nil, column("Ready"), column("Doing"))

	assert.False(t, decision.Allowed)
	assert.Equal(t, "You must be a team member to move this card", decision.Reason)
}

func TestCanMove_LeadMovesAnywhere(t *testing.T) {
	card := teamCard(uuid.New())
	lead := membership(model.RoleLead)

	transitions := [][2]string{
		{"Ready", "Doing"},
		{"Doing", "Ready"},
		{"Review", "Done"},
		{"Done", "Ready"},
		{"Doing", "Done"},
	}
	for _, tr := range transitions {
		decision := workflow.CanMove(card, lead, column(tr[0]), column(tr[1]))
		assert.True(t, decision.Allowed, "lead should move %s -> %s", tr[0], tr[1])
	}
}

func TestCanMove_MemberForwardFlow(t *testing.T) {
	card := teamCard(uuid.New())
	member := membership(model.RoleMember)

	assert.True(t, workflow.CanMove(card, member, column("Ready"), column("Doing")).Allowed)
	assert.True(t, workflow.CanMove(card, member, column("Doing"), column("Review")).Allowed)
}

func TestCanMove_MemberSameColumnReorder(t *testing.T) {
	card := teamCard(uuid.New())
	member := membership(model.RoleMember)
	col := column("Done")

	decision := workflow.CanMove(card, member, col, col)

	assert.True(t, decision.Allowed)
}

func TestCanMove_MemberCannotApproveToDone(t *testing.T) {
	card := teamCard(uuid.New())
	member := membership(model.RoleMember)

	decision := workflow.CanMove(card, member, column("Review"), column("Done"))

	assert.False(t, decision.Allowed)
	assert.Equal(t, "Only team leads can approve cards to Done", decision.Reason)
}

func TestCanMove_MemberBlockedTransitions(t *testing.T) {
	card := teamCard(uuid.New())
	member := membership(model.RoleMember)

	blocked := [][2]string{
		{"Doing", "Ready"},
		{"Review", "Doing"},
		{"Done", "Review"},
		{"Ready", "Review"},
		{"Ready", "Done"},
		{"Doing", "Done"},
	}
	for _, tr := range blocked {
		decision := workflow.CanMove(card, member, column(tr[0]), column(tr[1]))
		assert.False(t, decision.Allowed, "member must not move %s -> %s", tr[0], tr[1])
	}
}

func TestCanMove_ReasonQuotesDisplayNames(t *testing.T) {
	card := teamCard(uuid.New())
	member := membership(model.RoleMember)

	// Stage survives a rename, the message shows the current display name.
	source := column("Doing")
	source.Name = "In Progress"
	target := column("Ready")
	target.Name = "Backlog"

	decision := workflow.CanMove(card, member, source, target)

	assert.False(t, decision.Allowed)
	assert.Equal(t, "Members cannot move cards from In Progress to Backlog", decision.Reason)
}
