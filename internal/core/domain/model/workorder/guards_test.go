package workorder_test

import (
	"errors"
	"testing"

	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardReason(t *testing.T, err error) errs.GuardReason {
	t.Helper()
	var gv *errs.GuardViolationError
	require.True(t, errors.As(err, &gv), "expected guard violation, got %v", err)
	return gv.Reason
}

func TestGuards_TerminalAbsorption(t *testing.T) {
	today := mustDate(t, "2026-10-18")
	later := mustDate(t, "2026-10-25")

	for _, s := range workorder.TerminalStatuses() {
		t.Run(s.String(), func(t *testing.T) {
			checks := map[string]error{
				"dispatch": workorder.CanDispatch(s),
				"load":     workorder.CanLoad(s),
				"complete": workorder.CanComplete(s),
				"cancel":   workorder.CanCancel(s),
				"postpone": workorder.CanPostpone(s, later, today),
				"override": workorder.CanOverride(s, workorder.Received, workorder.Standard),
			}
			for name, err := range checks {
				assert.Equal(t, errs.ReasonAlreadyTerminal, guardReason(t, err), name)
			}
		})
	}
}

func TestCanDispatch(t *testing.T) {
	assert.NoError(t, workorder.CanDispatch(workorder.Received))
	assert.NoError(t, workorder.CanDispatch(workorder.Postponed))

	for _, s := range []workorder.Status{workorder.Dispatched, workorder.InDelivery, workorder.InProcessing} {
		assert.Equal(t, errs.ReasonInvalidTransition, guardReason(t, workorder.CanDispatch(s)), s.String())
	}
}

func TestCanLoad(t *testing.T) {
	for _, s := range nonTerminalStatuses() {
		assert.NoError(t, workorder.CanLoad(s), s.String())
	}
	for _, s := range workorder.TerminalStatuses() {
		assert.Equal(t, errs.ReasonAlreadyTerminal, guardReason(t, workorder.CanLoad(s)), s.String())
	}
}

func TestCanCompleteAndCancel(t *testing.T) {
	for _, s := range nonTerminalStatuses() {
		assert.NoError(t, workorder.CanComplete(s), s.String())
		assert.NoError(t, workorder.CanCancel(s), s.String())
	}
}

func TestCanPostpone(t *testing.T) {
	today := mustDate(t, "2026-10-18")

	assert.NoError(t, workorder.CanPostpone(workorder.InDelivery, mustDate(t, "2026-10-19"), today))

	for _, d := range []string{"2026-10-18", "2026-10-17", "2025-12-31"} {
		err := workorder.CanPostpone(workorder.Received, mustDate(t, d), today)
		assert.Equal(t, errs.ReasonInvalidDate, guardReason(t, err), d)
		assert.Contains(t, err.Error(), "must be after 2026-10-18")
	}
}

func TestCanOverride(t *testing.T) {
	t.Run("allows shared and own category statuses", func(t *testing.T) {
		assert.NoError(t, workorder.CanOverride(workorder.Received, workorder.Postponed, workorder.Collection))
		assert.NoError(t, workorder.CanOverride(workorder.Postponed, workorder.InCollection, workorder.Collection))
		assert.NoError(t, workorder.CanOverride(workorder.InDelivery, workorder.Received, workorder.Standard))
	})

	t.Run("rejects another category's status", func(t *testing.T) {
		err := workorder.CanOverride(workorder.Received, workorder.InDelivery, workorder.Remediation)
		assert.Equal(t, errs.ReasonInvalidTransition, guardReason(t, err))
		assert.Contains(t, err.Error(), "does not belong to category Remediation")
	})

	t.Run("rejects terminal targets", func(t *testing.T) {
		for _, target := range workorder.TerminalStatuses() {
			err := workorder.CanOverride(workorder.Dispatched, target, workorder.Standard)
			assert.Equal(t, errs.ReasonInvalidTransition, guardReason(t, err), target.String())
		}
	})

	t.Run("rejects unchanged status", func(t *testing.T) {
		err := workorder.CanOverride(workorder.Dispatched, workorder.Dispatched, workorder.Standard)
		assert.Contains(t, err.Error(), "status is unchanged")
	})
}
