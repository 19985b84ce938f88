package model_test

import (
	"testing"

	"teamboard/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestStageForName(t *testing.T) {
	assert.Equal(t, model.StageReady, model.StageForName("Ready"))
	assert.Equal(t, model.StageDoing, model.StageForName("Doing"))
	assert.Equal(t, model.StageReview, model.StageForName("Review"))
	assert.Equal(t, model.StageDone, model.StageForName("Done"))

	// Anything else carries no workflow semantics, including case variants.
	assert.Equal(t, model.StageNone, model.StageForName("ready"))
	assert.Equal(t, model.StageNone, model.StageForName("Icebox"))
	assert.Equal(t, model.StageNone, model.StageForName(""))
}
