package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LHProvin/exercita365b/internal/domain/entities"
)

func TestGenderIsValid(t *testing.T) {
	assert.True(t, entities.GenderMale.IsValid())
	assert.True(t, entities.GenderFemale.IsValid())
	assert.False(t, entities.Gender("X").IsValid())
	assert.False(t, entities.Gender("").IsValid())
	assert.False(t, entities.Gender("f").IsValid())
}
