// Package module holds the port lookup helpers and the process wide port registry
package module

import "spamjar/internal/modkit"

// Module is the modkit module contract, re-exported for callers that only wire ports
type Module = modkit.Module
