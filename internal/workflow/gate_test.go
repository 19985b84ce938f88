package workflow_test

import (
	"testing"

	"teamboard/internal/model"
	"teamboard/internal/workflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestCheckEntry_ReadyRequiresTeamAndCriteria(t *testing.T) {
	actor := uuid.New()
	teamID := uuid.New()
	ready := column("Ready")

	tests := []struct {
		name   string
		card   *model.Card
		reason string
	}{
		{
			name:   "missing both",
			card:   &model.Card{ID: uuid.New()},
			reason: "Cannot move to Ready: Set Team + Done looks like first.",
		},
		{
			name:   "missing criteria",
			card:   &model.Card{ID: uuid.New(), TeamID: &teamID},
			reason: "Cannot move to Ready: Set Done looks like first.",
		},
		{
			name:   "whitespace criteria",
			card:   &model.Card{ID: uuid.New(), TeamID: &teamID, AcceptanceCriteria: strptr("   ")},
			reason: "Cannot move to Ready: Set Done looks like first.",
		},
		{
			name:   "missing team",
			card:   &model.Card{ID: uuid.New(), AcceptanceCriteria: strptr("CAD uploaded")},
			reason: "Cannot move to Ready: Set Team first.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := workflow.CheckEntry(tt.card, ready, actor)

			assert.False(t, decision.Admitted)
			assert.Equal(t, tt.reason, decision.Reason)
			assert.Nil(t, decision.AssigneeID)
		})
	}
}

func TestCheckEntry_ReadyAdmitsCompleteCard(t *testing.T) {
	teamID := uuid.New()
	card := &model.Card{ID: uuid.New(), TeamID: &teamID, AcceptanceCriteria: strptr("CAD uploaded")}

	decision := workflow.CheckEntry(card, column("Ready"), uuid.New())

	assert.True(t, decision.Admitted)
	assert.Nil(t, decision.AssigneeID)
}

func TestCheckEntry_DoingAutoAssignsUnassigned(t *testing.T) {
	actor := uuid.New()
	card := &model.Card{ID: uuid.New()}

	decision := workflow.CheckEntry(card, column("Doing"), actor)

	assert.True(t, decision.Admitted)
	if assert.NotNil(t, decision.AssigneeID) {
		assert.Equal(t, actor, *decision.AssigneeID)
	}
}

func TestCheckEntry_DoingKeepsExistingAssignee(t *testing.T) {
	owner := uuid.New()
	card := &model.Card{ID: uuid.New(), AssigneeID: &owner}

	decision := workflow.CheckEntry(card, column("Doing"), uuid.New())

	assert.True(t, decision.Admitted)
	assert.Nil(t, decision.AssigneeID)
}

func TestCheckEntry_OtherStagesAdmitUnconditionally(t *testing.T) {
	card := &model.Card{ID: uuid.New()}

	for _, name := range []string{"Review", "Done", "Icebox"} {
		decision := workflow.CheckEntry(card, column(name), uuid.New())
		assert.True(t, decision.Admitted, "stage of %q must admit", name)
		assert.Nil(t, decision.AssigneeID)
	}
}
