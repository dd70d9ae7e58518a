// Package timeouts defines shared timeout constants.
// Centralizing these values prevents drift between the library defaults and
// the command line, and makes the durations discoverable.
package timeouts

import "time"

// PlanDelay is how long a villain takes to come up with a plan.
const PlanDelay = 1 * time.Second

// Shutdown limits how long telemetry exporters may take to flush on exit.
const Shutdown = 5 * time.Second
