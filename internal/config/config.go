package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the nightveil simulation.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	Simulation Simulation `yaml:"simulation"`
	Mask       Mask       `yaml:"mask"`
	Chaser     Chaser     `yaml:"chaser"`
	Stalker    Stalker    `yaml:"stalker"`
	Level      Level      `yaml:"level"`
}

// Simulation controls the tick loop.
type Simulation struct {
	TickInterval   time.Duration `yaml:"tick_interval"`
	MaxDelta       time.Duration `yaml:"max_delta"`       // clamp for a stalled tick
	FixedStep      bool          `yaml:"fixed_step"`      // report TickInterval as dt instead of wall time
	Duration       time.Duration `yaml:"duration"`        // 0 = until signalled
	StatusInterval time.Duration `yaml:"status_interval"` // 0 = no status lines
	Seed           uint64        `yaml:"seed"`            // 0 = random patrol choices
}

// Mask is the stealth resource tuning. Rates are per second, times in seconds.
type Mask struct {
	MaxCharge               float64 `yaml:"max_charge"`
	DrainRate               float64 `yaml:"drain_rate"`
	RegenRate               float64 `yaml:"regen_rate"`
	RegenDelay              float64 `yaml:"regen_delay"`
	TransitionDuration      float64 `yaml:"transition_duration"`
	ManualDeactivationDelay bool    `yaml:"manual_deactivation_delay"`
}

// Chaser is the patrolling enemy tuning.
type Chaser struct {
	HearingRadius          float64 `yaml:"hearing_radius"`
	VisionRadius           float64 `yaml:"vision_radius"`
	VisionHalfAngleDegrees float64 `yaml:"vision_half_angle"`
	EyeHeightOffset        float64 `yaml:"eye_height_offset"`
	TargetHeightOffset     float64 `yaml:"target_height_offset"`
	ObstacleMask           uint32  `yaml:"obstacle_mask"` // wall layers that block sight, 0 = all

	AlertDuration   float64 `yaml:"alert_duration"`
	ChaseStartDelay float64 `yaml:"chase_start_delay"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	ChaseSpeed      float64 `yaml:"chase_speed"`

	IdleWaitTime     float64 `yaml:"idle_wait_time"`
	ArrivalTolerance float64 `yaml:"arrival_tolerance"`

	CaptureDuration   float64 `yaml:"capture_duration"`
	BlindnessDuration float64 `yaml:"blindness_duration"`
	Disorient         bool    `yaml:"disorient"`
	FrontDistance     float64 `yaml:"front_distance"`
	FaceHeight        float64 `yaml:"face_height"`
	ContactDamage     int     `yaml:"contact_damage"`

	// Search radii for snapping a position onto walkable ground.
	FrontSampleRadius   float64 `yaml:"front_sample_radius"`
	RetreatSampleRadius float64 `yaml:"retreat_sample_radius"`
	SpawnSampleRadius   float64 `yaml:"spawn_sample_radius"`

	WalkStepInterval  float64 `yaml:"walk_step_interval"`
	RunStepInterval   float64 `yaml:"run_step_interval"`
	RunSpeedThreshold float64 `yaml:"run_speed_threshold"`
	MinStepVelocity   float64 `yaml:"min_step_velocity"`
}

// Stalker is the watched-statue enemy tuning.
type Stalker struct {
	JumpDistance       float64 `yaml:"jump_distance"`
	DetectionRange     float64 `yaml:"detection_range"`
	StopDistance       float64 `yaml:"stop_distance"`
	MaskedJumpInterval float64 `yaml:"masked_jump_interval"`
	KillRange          float64 `yaml:"kill_range"`
	RotationSpeed      float64 `yaml:"rotation_speed"`
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Wall blocks one grid column.
type Wall struct {
	X      int     `yaml:"x"`
	Z      int     `yaml:"z"`
	Height float64 `yaml:"height"`
	Layer  uint32  `yaml:"layer"` // 0 = default layer
}

// Player describes the scripted player.
type Player struct {
	Start     Point   `yaml:"start"`
	Route     []Point `yaml:"route"`
	Speed     float64 `yaml:"speed"`
	HP        int     `yaml:"hp"`
	ViewFOV   float64 `yaml:"view_fov"`
	ViewRange float64 `yaml:"view_range"`
	EyeHeight float64 `yaml:"eye_height"`
	AutoMask  bool    `yaml:"auto_mask"`
}

// ChaserSpawn places one chaser with its patrol waypoints.
type ChaserSpawn struct {
	Position  Point   `yaml:"position"`
	Waypoints []Point `yaml:"waypoints"`
}

// StalkerSpawn places one stalker.
type StalkerSpawn struct {
	Position Point `yaml:"position"`
}

// Level is the obstacle grid and the spawn list.
type Level struct {
	Width         int            `yaml:"width"`
	Depth         int            `yaml:"depth"`
	CellSize      float64        `yaml:"cell_size"`
	Walls         []Wall         `yaml:"walls"`
	ContactRadius float64        `yaml:"contact_radius"`
	Player        Player         `yaml:"player"`
	Chasers       []ChaserSpawn  `yaml:"chasers"`
	Stalkers      []StalkerSpawn `yaml:"stalkers"`
}

// Default returns Config with the prototype tuning and a small demo level.
func Default() Config {
	return Config{
		LogLevel: "info",
		Simulation: Simulation{
			TickInterval:   50 * time.Millisecond,
			MaxDelta:       250 * time.Millisecond,
			Duration:       60 * time.Second,
			StatusInterval: 5 * time.Second,
		},
		Mask: Mask{
			MaxCharge:          10,
			DrainRate:          1,
			RegenRate:          2,
			RegenDelay:         2,
			TransitionDuration: 0.5,
		},
		Chaser: Chaser{
			HearingRadius:          10,
			VisionRadius:           15,
			VisionHalfAngleDegrees: 45,
			EyeHeightOffset:        1.6,
			TargetHeightOffset:     1.0,
			AlertDuration:          2,
			ChaseStartDelay:        1,
			WalkSpeed:              3,
			ChaseSpeed:             4,
			IdleWaitTime:           3,
			ArrivalTolerance:       0.5,
			CaptureDuration:        2,
			BlindnessDuration:      3,
			Disorient:              true,
			FrontDistance:          1.5,
			FaceHeight:             1.5,
			ContactDamage:          1,
			FrontSampleRadius:      2,
			RetreatSampleRadius:    5,
			SpawnSampleRadius:      5,
			WalkStepInterval:       0.6,
			RunStepInterval:        0.35,
			RunSpeedThreshold:      3.5,
			MinStepVelocity:        0.2,
		},
		Stalker: Stalker{
			JumpDistance:       4,
			DetectionRange:     20,
			StopDistance:       3,
			MaskedJumpInterval: 2.5,
			KillRange:          2,
			RotationSpeed:      50,
		},
		Level: defaultLevel(),
	}
}

func defaultLevel() Level {
	// A 40x40 yard split by a wall with a gap in the middle.
	var walls []Wall
	for z := range 40 {
		if z >= 18 && z <= 21 {
			continue
		}
		walls = append(walls, Wall{X: 20, Z: z, Height: 3})
	}

	return Level{
		Width:         40,
		Depth:         40,
		CellSize:      1,
		Walls:         walls,
		ContactRadius: 1,
		Player: Player{
			Start: Point{X: 5, Z: 5},
			Route: []Point{
				{X: 5, Z: 5}, {X: 5, Z: 35}, {X: 35, Z: 35}, {X: 35, Z: 5},
			},
			Speed:     2,
			HP:        3,
			ViewFOV:   90,
			ViewRange: 30,
			EyeHeight: 1.6,
			AutoMask:  true,
		},
		Chasers: []ChaserSpawn{{
			Position: Point{X: 30, Z: 30},
			Waypoints: []Point{
				{X: 25, Z: 25}, {X: 35, Z: 25}, {X: 35, Z: 35}, {X: 25, Z: 35},
			},
		}},
		Stalkers: []StalkerSpawn{{
			Position: Point{X: 10, Z: 30},
		}},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every out-of-range value at once.
func (c Config) Validate() error {
	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
	}

	s := c.Simulation
	check(s.TickInterval > 0, "simulation.tick_interval must be positive, got %s", s.TickInterval)
	check(s.MaxDelta >= 0, "simulation.max_delta must not be negative, got %s", s.MaxDelta)
	check(s.Duration >= 0, "simulation.duration must not be negative, got %s", s.Duration)
	check(s.StatusInterval >= 0, "simulation.status_interval must not be negative, got %s", s.StatusInterval)

	m := c.Mask
	check(m.MaxCharge > 0, "mask.max_charge must be positive, got %g", m.MaxCharge)
	check(m.DrainRate > 0, "mask.drain_rate must be positive, got %g", m.DrainRate)
	check(m.RegenRate > 0, "mask.regen_rate must be positive, got %g", m.RegenRate)
	check(m.RegenDelay >= 0, "mask.regen_delay must not be negative, got %g", m.RegenDelay)
	check(m.TransitionDuration >= 0, "mask.transition_duration must not be negative, got %g", m.TransitionDuration)

	ch := c.Chaser
	check(ch.HearingRadius >= 0, "chaser.hearing_radius must not be negative, got %g", ch.HearingRadius)
	check(ch.VisionRadius >= 0, "chaser.vision_radius must not be negative, got %g", ch.VisionRadius)
	check(ch.VisionHalfAngleDegrees >= 0 && ch.VisionHalfAngleDegrees <= 180,
		"chaser.vision_half_angle must be within [0, 180], got %g", ch.VisionHalfAngleDegrees)
	check(ch.WalkSpeed > 0, "chaser.walk_speed must be positive, got %g", ch.WalkSpeed)
	check(ch.ChaseSpeed > 0, "chaser.chase_speed must be positive, got %g", ch.ChaseSpeed)
	check(ch.ChaseStartDelay >= 0, "chaser.chase_start_delay must not be negative, got %g", ch.ChaseStartDelay)
	check(ch.CaptureDuration >= 0, "chaser.capture_duration must not be negative, got %g", ch.CaptureDuration)
	check(ch.BlindnessDuration >= 0, "chaser.blindness_duration must not be negative, got %g", ch.BlindnessDuration)
	check(ch.ContactDamage >= 0, "chaser.contact_damage must not be negative, got %d", ch.ContactDamage)
	check(ch.FrontSampleRadius >= 0, "chaser.front_sample_radius must not be negative, got %g", ch.FrontSampleRadius)
	check(ch.RetreatSampleRadius >= 0, "chaser.retreat_sample_radius must not be negative, got %g", ch.RetreatSampleRadius)
	check(ch.SpawnSampleRadius >= 0, "chaser.spawn_sample_radius must not be negative, got %g", ch.SpawnSampleRadius)
	check(ch.MinStepVelocity >= 0, "chaser.min_step_velocity must not be negative, got %g", ch.MinStepVelocity)

	st := c.Stalker
	check(st.JumpDistance > 0, "stalker.jump_distance must be positive, got %g", st.JumpDistance)
	check(st.StopDistance >= 0, "stalker.stop_distance must not be negative, got %g", st.StopDistance)
	check(st.MaskedJumpInterval > 0, "stalker.masked_jump_interval must be positive, got %g", st.MaskedJumpInterval)
	check(st.KillRange >= 0, "stalker.kill_range must not be negative, got %g", st.KillRange)

	l := c.Level
	check(l.Width > 0 && l.Depth > 0, "level: width and depth must be positive, got %dx%d", l.Width, l.Depth)
	check(l.CellSize > 0, "level.cell_size must be positive, got %g", l.CellSize)
	check(l.ContactRadius > 0, "level.contact_radius must be positive, got %g", l.ContactRadius)
	check(l.Player.HP > 0, "level.player.hp must be positive, got %d", l.Player.HP)
	check(l.Player.Speed >= 0, "level.player.speed must not be negative, got %g", l.Player.Speed)

	return errors.Join(errs...)
}
