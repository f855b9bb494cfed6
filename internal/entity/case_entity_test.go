package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to CaseStatus }{
		{CaseStatusOpen, CaseStatusInProgress},
		{CaseStatusOpen, CaseStatusClosed},
		{CaseStatusInProgress, CaseStatusResolved},
		{CaseStatusInProgress, CaseStatusRefunded},
		{CaseStatusInProgress, CaseStatusClosed},
		{CaseStatusResolved, CaseStatusClosed},
		{CaseStatusRefunded, CaseStatusClosed},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to CaseStatus }{
		{CaseStatusOpen, CaseStatusResolved},
		{CaseStatusOpen, CaseStatusRefunded},
		{CaseStatusResolved, CaseStatusInProgress},
		{CaseStatusClosed, CaseStatusOpen},
		{CaseStatusClosed, CaseStatusInProgress},
		{CaseStatusOpen, CaseStatusOpen},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidCaseStatus(t *testing.T) {
	for _, s := range []string{"open", "in_progress", "resolved", "refunded", "closed"} {
		assert.True(t, ValidCaseStatus(CaseStatus(s)), s)
	}
	assert.False(t, ValidCaseStatus(CaseStatus("escalated")))
	assert.False(t, ValidCaseStatus(CaseStatus("")))
}
