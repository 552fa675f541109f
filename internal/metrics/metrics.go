// Package metrics provides application-level counters using stdlib expvar.
// Counters are automatically exported on the /debug/vars HTTP endpoint.
package metrics

import "expvar"

// Operation counters.
var (
	StoreMutations     = expvar.NewInt("zentry_store_mutations_total")
	AssistantCalls     = expvar.NewInt("zentry_assistant_calls_total")
	AssistantFallbacks = expvar.NewInt("zentry_assistant_fallbacks_total")
	FileIngests        = expvar.NewInt("zentry_file_ingests_total")
	APIRequests        = expvar.NewInt("zentry_api_requests_total")
)

// Inc increments the given counter by 1.
func Inc(counter *expvar.Int) { counter.Add(1) }
