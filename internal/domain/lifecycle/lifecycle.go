// Package lifecycle holds values shared by components started and stopped through fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
