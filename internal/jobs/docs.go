// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StaleOrderJob - cancels unapproved orders whose age exceeds a configured
// TTL. The job only finds candidates; every cancellation runs through the
// regular status-change command so the lifecycle guards stay in one place.
//
// Jobs are created by the composition root, started from main and stopped
// on shutdown.
package jobs
