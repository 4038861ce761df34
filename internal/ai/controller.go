package ai

// Ticker is advanced once per simulation tick with the elapsed seconds.
type Ticker interface {
	Tick(dt float64)
}

// TickerFunc adapts a plain function to Ticker.
type TickerFunc func(dt float64)

// Tick calls f(dt).
func (f TickerFunc) Tick(dt float64) { f(dt) }

// Controller represents AI controller interface for enemies
type Controller interface {
	Ticker

	// Start starts AI controller
	Start()

	// Stop stops AI controller
	Stop()
}

// Clock reports the simulated seconds elapsed since the previous tick.
type Clock interface {
	DeltaTimeSeconds() float64
}

// timeEpsilon absorbs rounding drift accumulated by summing tick deltas.
const timeEpsilon = 1e-9

// reached reports whether an elapsed timer has hit limit.
func reached(elapsed, limit float64) bool {
	return elapsed+timeEpsilon >= limit
}

// expired reports whether a countdown has run out.
func expired(remaining float64) bool {
	return remaining <= timeEpsilon
}

// sanitizeDelta treats negative and NaN deltas as zero.
func sanitizeDelta(dt float64) float64 {
	if !(dt > 0) {
		return 0
	}
	return dt
}
