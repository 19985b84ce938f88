package templates_test

import (
	"testing"

	"teamboard/internal/templates"

	"github.com/stretchr/testify/assert"
)

func TestByID(t *testing.T) {
	tpl := templates.ByID("design")

	assert.NotNil(t, tpl)
	assert.Equal(t, "Design Task", tpl.Name)
	assert.Equal(t, "P2", tpl.Priority)
	assert.NotEmpty(t, tpl.AcceptanceCriteria)
}

func TestByID_Unknown(t *testing.T) {
	assert.Nil(t, templates.ByID("no-such-template"))
}

func TestOnboarding(t *testing.T) {
	onboarding := templates.Onboarding()

	assert.NotEmpty(t, onboarding)
	for _, tpl := range onboarding {
		assert.True(t, tpl.IsOnboarding, "template %q is not an onboarding template", tpl.ID)
	}
	assert.Less(t, len(onboarding), len(templates.All()))
}

func TestAll_EveryTemplateIsComplete(t *testing.T) {
	for _, tpl := range templates.All() {
		assert.NotEmpty(t, tpl.ID)
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.TaskType)
		assert.NotEmpty(t, tpl.AcceptanceCriteria)
		assert.Contains(t, []string{"P0", "P1", "P2", "P3"}, tpl.Priority)
	}
}
