package obs

import "github.com/google/uuid"

// RunID returns a fresh identifier for one CLI invocation (one pairwise,
// all-products, or iterative job), attached to every log line that
// invocation emits so concurrent --watch jobs stay distinguishable.
func RunID() string {
	return uuid.New().String()
}
