package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.True(t, Email("alex@student.edu"))
	assert.True(t, Email("Admin.Office@College.EDU"))
	assert.False(t, Email(""))
	assert.False(t, Email("alex"))
	assert.False(t, Email("alex@student"))
}

func TestName(t *testing.T) {
	assert.True(t, Name("Dr. Sarah Wilson"))
	assert.False(t, Name("A"))
	assert.False(t, Name(strings.Repeat("a", NameMaxLength+1)))
}

func TestRollNumber(t *testing.T) {
	assert.True(t, RollNumber(""))
	assert.True(t, RollNumber("CS2021001"))
	assert.True(t, RollNumber("ECE2022015"))
	assert.False(t, RollNumber("cs2021001"))
	assert.False(t, RollNumber("CS21001"))
}

func TestStringValidationOptional(t *testing.T) {
	v := NewStringValidation("").WithRequired(false).WithMinLength(3)
	assert.True(t, v.Validate())
	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
}
