// Package metrics exposes Prometheus collectors for the work order lifecycle.
package metrics

import (
	"errors"
	"fmt"

	"deliverytracker/internal/core/application/usecases/commands"
	"deliverytracker/internal/core/domain/model/workorder"

	"github.com/prometheus/client_golang/prometheus"
)

// WorkOrderMetrics counts action outcomes and tracks how many work orders
// sit in each status.
type WorkOrderMetrics struct {
	actions         *prometheus.CounterVec
	conflictRetries *prometheus.CounterVec
	byStatus        *prometheus.GaugeVec
}

// NewWorkOrderMetrics registers the collectors with registerer, or with the
// default registerer when it is nil. Registering twice reuses the existing
// collectors.
func NewWorkOrderMetrics(registerer prometheus.Registerer) *WorkOrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &WorkOrderMetrics{
		actions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "deliverytracker_workorder_actions_total",
			Help: "Work order action requests by action and outcome",
		}, []string{"action", "outcome"}),
		conflictRetries: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "deliverytracker_workorder_conflict_retries_total",
			Help: "Conditional updates lost to a concurrent writer and retried",
		}, []string{"action"}),
		byStatus: registerGaugeVec(registerer, prometheus.GaugeOpts{
			Name: "deliverytracker_workorders",
			Help: "Number of work orders per status at the last snapshot",
		}, []string{"status"}),
	}
}

// ObserveAction implements commands.ActionObserver.
func (m *WorkOrderMetrics) ObserveAction(action workorder.ActionTag, outcome commands.Outcome) {
	m.actions.WithLabelValues(string(action), string(outcome)).Inc()
}

// ObserveConflictRetry implements commands.ActionObserver.
func (m *WorkOrderMetrics) ObserveConflictRetry(action workorder.ActionTag) {
	m.conflictRetries.WithLabelValues(string(action)).Inc()
}

// SetStatusCounts replaces the per-status gauge values.
func (m *WorkOrderMetrics) SetStatusCounts(counts map[workorder.Status]int64) {
	for _, s := range workorder.AllStatuses() {
		m.byStatus.WithLabelValues(s.String()).Set(float64(counts[s]))
	}
}

func registerCounterVec(
	registerer prometheus.Registerer,
	opts prometheus.CounterOpts,
	labels []string,
) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGaugeVec(
	registerer prometheus.Registerer,
	opts prometheus.GaugeOpts,
	labels []string,
) *prometheus.GaugeVec {
	collector := prometheus.NewGaugeVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.GaugeVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge vec %q: %v", opts.Name, err))
	}
	return collector
}
