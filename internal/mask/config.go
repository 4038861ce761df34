package mask

// Config holds tuning for a stealth mask.
type Config struct {
	MaxCharge          float64 // capacity, seconds of wear at DrainRate 1
	DrainRate          float64 // charge per second while worn
	RegenRate          float64 // charge per second while regenerating
	RegenDelay         float64 // seconds of idle time before regen starts
	TransitionDuration float64 // put-on / take-off animation length, seconds

	// ManualDeactivationDelay makes a manual take-off below MaxCharge arm
	// the same delay-then-regen cycle that a full depletion arms.
	// When false, a manual take-off keeps the remaining charge as is.
	ManualDeactivationDelay bool
}

// DefaultConfig returns Config with prototype tuning.
func DefaultConfig() Config {
	return Config{
		MaxCharge:          10,
		DrainRate:          1,
		RegenRate:          2,
		RegenDelay:         2,
		TransitionDuration: 0.5,
	}
}
