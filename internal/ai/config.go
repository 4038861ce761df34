package ai

// SensorConfig describes chaser perception. Immutable once the chaser is built;
// blindness only masks the radii, it never rewrites them.
type SensorConfig struct {
	HearingRadius          float64
	VisionRadius           float64
	VisionHalfAngleDegrees float64
	EyeHeightOffset        float64
	TargetHeightOffset     float64
	ObstacleMask           LayerMask
}

// ChaserConfig holds tuning for the patrolling/chasing enemy.
// Distances are world units, durations seconds, speeds units per second.
type ChaserConfig struct {
	Sensors SensorConfig

	AlertDuration   float64 // alert UI auto-hide
	ChaseStartDelay float64 // hesitation before chasing
	WalkSpeed       float64
	ChaseSpeed      float64

	IdleWaitTime     float64 // stand time at each waypoint
	ArrivalTolerance float64

	CaptureDuration     float64
	BlindnessDuration   float64
	Disorient           bool    // warp in front of the target and turn it around
	FrontDistance       float64 // how far in front of the target to appear
	FrontSampleRadius   float64
	FaceHeight          float64 // height on the enemy the target is forced to look at
	RetreatSampleRadius float64
	SpawnSampleRadius   float64
	ContactDamage       int

	WalkStepInterval  float64
	RunStepInterval   float64
	RunSpeedThreshold float64
	MinStepVelocity   float64
}

// DefaultChaserConfig returns the prototype tuning.
func DefaultChaserConfig() ChaserConfig {
	return ChaserConfig{
		Sensors: SensorConfig{
			HearingRadius:          10,
			VisionRadius:           15,
			VisionHalfAngleDegrees: 45,
			EyeHeightOffset:        1.6,
			TargetHeightOffset:     1.0,
			ObstacleMask:           LayerAll,
		},
		AlertDuration:       2,
		ChaseStartDelay:     1,
		WalkSpeed:           3,
		ChaseSpeed:          4,
		IdleWaitTime:        3,
		ArrivalTolerance:    0.5,
		CaptureDuration:     2,
		BlindnessDuration:   3,
		Disorient:           true,
		FrontDistance:       1.5,
		FrontSampleRadius:   2,
		FaceHeight:          1.5,
		RetreatSampleRadius: 5,
		SpawnSampleRadius:   5,
		ContactDamage:       1,
		WalkStepInterval:    0.6,
		RunStepInterval:     0.35,
		RunSpeedThreshold:   3.5,
		MinStepVelocity:     0.2,
	}
}

// StalkerConfig holds tuning for the enemy that only moves when unobserved.
type StalkerConfig struct {
	JumpDistance       float64 // max teleport per jump
	DetectionRange     float64
	StopDistance       float64 // never jumps closer than this
	MaskedJumpInterval float64 // creep period while the target is masked
	KillRange          float64
	RotationSpeed      float64 // slerp factor per second
}

// DefaultStalkerConfig returns the prototype tuning.
func DefaultStalkerConfig() StalkerConfig {
	return StalkerConfig{
		JumpDistance:       4,
		DetectionRange:     20,
		StopDistance:       3,
		MaskedJumpInterval: 2.5,
		KillRange:          2,
		RotationSpeed:      50,
	}
}
