package sentiment

// Default outlier thresholds on the 1-10 scale.
const (
	DefaultThresholdLow  = 3.0
	DefaultThresholdHigh = 7.5
)

// IsOutlier reports whether a score falls at or beyond either configured
// threshold. Thresholds with low >= high are legal and make every score an
// outlier.
func IsOutlier(score, low, high float64) bool {
	return score <= low || score >= high
}
