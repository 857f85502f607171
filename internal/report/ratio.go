package report

// SafeRatio returns numerator/denominator when the denominator is
// positive, and nil otherwise. Every displayed or exported ratio routes
// through this so "no data" is never confused with "ratio is exactly
// zero".
func SafeRatio(numerator, denominator float64) *float64 {
	if denominator <= 0 {
		return nil
	}

	v := numerator / denominator

	return &v
}
