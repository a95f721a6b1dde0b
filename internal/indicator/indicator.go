// Package indicator provides the technical indicator math used for coin
// analysis: simple moving average, a simplified RSI, and volume spike
// detection.
package indicator

// SMA returns the simple moving average over the last period samples. The
// second return is false when there are fewer samples than the period.
func SMA(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period {
		return 0, false
	}
	var sum float64
	for _, price := range prices[len(prices)-period:] {
		sum += price
	}
	return sum / float64(period), true
}

// RSI returns a simplified relative strength index over the last period
// price changes. All-gain windows return 100.
func RSI(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period+1 {
		return 0, false
	}

	changes := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		changes = append(changes, prices[i]-prices[i-1])
	}

	var gains, losses float64
	for _, change := range changes[len(changes)-period:] {
		if change > 0 {
			gains += change
		} else {
			losses += -change
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	if avgLoss == 0 {
		return 100, true
	}
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs)), true
}

// VolumeSpike reports whether the latest volume is at least threshold times
// the average of the preceding samples.
func VolumeSpike(volumes []float64, threshold float64) bool {
	if len(volumes) < 2 {
		return false
	}
	current := volumes[len(volumes)-1]
	var sum float64
	for _, volume := range volumes[:len(volumes)-1] {
		sum += volume
	}
	avg := sum / float64(len(volumes)-1)
	return current >= avg*threshold
}
