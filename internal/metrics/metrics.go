// Package metrics collects and exposes Prometheus counters for the dispatch
// engine. Counters cover the points an operator watches: intake volume, how
// often no courier was available, claim outcomes and deadline assignments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus instruments for the dispatch engine.
// All instruments are registered once at construction; methods are safe for
// concurrent use.
type Collector struct {
	jobsSubmitted     prometheus.Counter
	jobsParked        prometheus.Counter
	jobsCompleted     prometheus.Counter
	claimsAccepted    prometheus.Counter
	claimsRejected    prometheus.Counter
	forcedAssignments prometheus.Counter
	jobsActive        prometheus.Gauge
}

// NewCollector creates a Collector and registers its instruments with the
// given registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		jobsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_jobs_submitted_total",
			Help: "Total number of jobs submitted for dispatch",
		}),
		jobsParked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_jobs_parked_total",
			Help: "Total number of jobs submitted with no eligible courier available",
		}),
		jobsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_jobs_completed_total",
			Help: "Total number of jobs delivered",
		}),
		claimsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_claims_accepted_total",
			Help: "Total number of claims that won a job",
		}),
		claimsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_claims_rejected_total",
			Help: "Total number of claims that lost the race for an already claimed job",
		}),
		forcedAssignments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_forced_assignments_total",
			Help: "Total number of jobs assigned by the deadline scheduler",
		}),
		jobsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dispatch_jobs_active",
			Help: "Current number of jobs between submission and completion",
		}),
	}

	reg.MustRegister(
		c.jobsSubmitted,
		c.jobsParked,
		c.jobsCompleted,
		c.claimsAccepted,
		c.claimsRejected,
		c.forcedAssignments,
		c.jobsActive,
	)

	return c
}

// RecordSubmitted counts a job accepted at intake.
func (c *Collector) RecordSubmitted() {
	c.jobsSubmitted.Inc()
	c.jobsActive.Inc()
}

// RecordParked counts a submission that found no eligible courier.
func (c *Collector) RecordParked() {
	c.jobsParked.Inc()
}

// RecordClaimAccepted counts a claim that won its job.
func (c *Collector) RecordClaimAccepted() {
	c.claimsAccepted.Inc()
}

// RecordClaimRejected counts a claim that lost the race.
func (c *Collector) RecordClaimRejected() {
	c.claimsRejected.Inc()
}

// RecordForcedAssignment counts a job assigned by the deadline scheduler.
func (c *Collector) RecordForcedAssignment() {
	c.forcedAssignments.Inc()
}

// RecordCompleted counts a delivered job.
func (c *Collector) RecordCompleted() {
	c.jobsCompleted.Inc()
	c.jobsActive.Dec()
}
