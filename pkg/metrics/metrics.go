package metrics

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics. Matching is an
// in-process CPU-bound operation, so the buckets start well below a millisecond.
var DefaultBuckets = []float64{.00001, .00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05, .1, .5} //nolint: gochecknoglobals
