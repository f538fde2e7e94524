package telemetry

import (
	"context"
	"sort"
	"strings"

	"github.com/grafana/pyroscope-go"
)

// Profiling label keys.
const (
	ProfilingLabelRoute     = "route"
	ProfilingLabelMethod    = "method"
	ProfilingLabelOperation = "operation"
	ProfilingLabelJob       = "job"
)

// MaxLabelValueLength truncates label values.
const MaxLabelValueLength = 128

// unbounded-cardinality keys are never attached to profiles
var highCardinalityLabels = map[string]bool{
	"request_id":     true,
	"actor_id":       true,
	"transaction_id": true,
	"trace_id":       true,
	"span_id":        true,
}

// WithProfilingLabels runs fn with pprof labels so Pyroscope can slice the
// samples it collects.
func WithProfilingLabels(ctx context.Context, labels map[string]string, fn func(context.Context)) {
	pairs := sanitizeLabels(labels)
	if len(pairs) == 0 {
		fn(ctx)
		return
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(pairs...), fn)
}

// sanitizeLabels drops empty and high-cardinality entries and returns sorted
// key/value pairs.
func sanitizeLabels(labels map[string]string) []string {
	clean := make(map[string]string, len(labels))
	keys := make([]string, 0, len(labels))
	for k, v := range labels {
		k = strings.TrimSpace(k)
		if k == "" || v == "" || highCardinalityLabels[k] {
			continue
		}
		if _, dup := clean[k]; !dup {
			keys = append(keys, k)
		}
		clean[k] = v
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		v := clean[k]
		if len(v) > MaxLabelValueLength {
			v = v[:MaxLabelValueLength]
		}
		pairs = append(pairs, k, v)
	}
	return pairs
}

// HTTPRequestLabels builds labels for one route.
func HTTPRequestLabels(route, method string) map[string]string {
	return map[string]string{
		ProfilingLabelRoute:  route,
		ProfilingLabelMethod: method,
	}
}

// JobLabels builds labels for a scheduled job run.
func JobLabels(job string) map[string]string {
	return map[string]string{ProfilingLabelJob: job}
}
