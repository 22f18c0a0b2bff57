package reconcile

import (
	"context"
	"sync"

	"aa-greeting/core/webex"
)

// ReconcileAll reconciles every auto-attendant in the batch concurrently.
// Outcomes are collected positionally so each entity's result can be
// reported against its identity; one auto-attendant's failure never cancels
// or blocks another's reconciliation.
func (e *Engine) ReconcileAll(ctx context.Context, aas []webex.AutoAttendant, menu MenuKind, desired Desired) []Outcome {
	outcomes := make([]Outcome, len(aas))

	var wg sync.WaitGroup
	for i, aa := range aas {
		wg.Add(1)
		go func(i int, aa webex.AutoAttendant) {
			defer wg.Done()
			outcomes[i] = Outcome{
				AutoAttendant: aa,
				Err:           e.Reconcile(ctx, aa, menu, desired),
			}
		}(i, aa)
	}
	wg.Wait()

	return outcomes
}
