package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicyAllowsEverything(t *testing.T) {
	p := DefaultStatusPolicy()

	assert.True(t, p.CanTransition(ApplicationStatusPending, ApplicationStatusHired))
	assert.True(t, p.CanTransition(ApplicationStatusHired, ApplicationStatusPending))
	assert.True(t, p.CanTransition(ApplicationStatusRejected, ApplicationStatusRejected))
}

func TestStrictPolicyForwardOnly(t *testing.T) {
	p := StrictStatusPolicy()

	assert.True(t, p.CanTransition(ApplicationStatusPending, ApplicationStatusReviewing))
	assert.True(t, p.CanTransition(ApplicationStatusReviewing, ApplicationStatusInterview))
	assert.True(t, p.CanTransition(ApplicationStatusInterview, ApplicationStatusHired))
	assert.True(t, p.CanTransition(ApplicationStatusPending, ApplicationStatusRejected))

	assert.False(t, p.CanTransition(ApplicationStatusPending, ApplicationStatusHired))
	assert.False(t, p.CanTransition(ApplicationStatusHired, ApplicationStatusPending))
	assert.False(t, p.CanTransition(ApplicationStatusRejected, ApplicationStatusReviewing))
	assert.False(t, p.CanTransition(ApplicationStatusPending, ApplicationStatusPending))
}

func TestValidApplicationStatus(t *testing.T) {
	for _, s := range []ApplicationStatus{
		ApplicationStatusPending, ApplicationStatusReviewing,
		ApplicationStatusInterview, ApplicationStatusRejected, ApplicationStatusHired,
	} {
		assert.True(t, ValidApplicationStatus(s), string(s))
	}

	assert.False(t, ValidApplicationStatus("shortlisted"))
	assert.False(t, ValidApplicationStatus(""))
	assert.False(t, ValidApplicationStatus("HIRED"))
}
