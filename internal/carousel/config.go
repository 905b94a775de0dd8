package carousel

import (
	"errors"
	"fmt"
	"time"
)

// Default tuning values.
const (
	DefaultSmoothing        = 0.85
	DefaultFriction         = 0.92
	DefaultStopVelocity     = 0.02 // px/ms
	DefaultReferenceFrame   = 16 * time.Millisecond
	DefaultMinMoveInterval  = time.Millisecond
	DefaultMinFrameInterval = time.Microsecond
	DefaultEdgeTolerance    = 1.0
	DefaultPageStep         = 280 + 24
	DefaultGlideRate        = 10.0
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid carousel config")

// Config holds the tunable constants of the drag and momentum physics.
type Config struct {
	// Smoothing is the weight of the previous velocity estimate in the
	// low-pass filter, in [0, 1).
	Smoothing float64

	// Friction is the velocity retained per reference frame, in (0, 1).
	Friction float64

	// StopVelocity is the speed below which momentum ends and below which a
	// release does not start momentum at all.
	StopVelocity float64

	// ReferenceFrame is the frame length Friction is expressed against.
	ReferenceFrame time.Duration

	// MinMoveInterval floors the time between pointer samples.
	MinMoveInterval time.Duration

	// MinFrameInterval floors the time between momentum frames.
	MinFrameInterval time.Duration

	// EdgeTolerance absorbs fractional rounding at the scroll bounds.
	EdgeTolerance float64

	// PageStep is the distance ScrollByCard moves when the surface does not
	// report its own item step.
	PageStep float64

	// GlideRate controls how quickly a page scroll converges; larger is
	// faster.
	GlideRate float64
}

// DefaultConfig returns the default tuning.
func DefaultConfig() Config {
	return Config{
		Smoothing:        DefaultSmoothing,
		Friction:         DefaultFriction,
		StopVelocity:     DefaultStopVelocity,
		ReferenceFrame:   DefaultReferenceFrame,
		MinMoveInterval:  DefaultMinMoveInterval,
		MinFrameInterval: DefaultMinFrameInterval,
		EdgeTolerance:    DefaultEdgeTolerance,
		PageStep:         DefaultPageStep,
		GlideRate:        DefaultGlideRate,
	}
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Smoothing < 0 || c.Smoothing >= 1:
		return fmt.Errorf("%w: smoothing %v not in [0,1)", ErrInvalidConfig, c.Smoothing)
	case c.Friction <= 0 || c.Friction >= 1:
		return fmt.Errorf("%w: friction %v not in (0,1)", ErrInvalidConfig, c.Friction)
	case c.StopVelocity <= 0:
		return fmt.Errorf("%w: stop velocity must be positive", ErrInvalidConfig)
	case c.ReferenceFrame <= 0:
		return fmt.Errorf("%w: reference frame must be positive", ErrInvalidConfig)
	case c.MinMoveInterval <= 0 || c.MinFrameInterval <= 0:
		return fmt.Errorf("%w: minimum intervals must be positive", ErrInvalidConfig)
	case c.EdgeTolerance < 0:
		return fmt.Errorf("%w: edge tolerance must not be negative", ErrInvalidConfig)
	case c.PageStep <= 0:
		return fmt.Errorf("%w: page step must be positive", ErrInvalidConfig)
	case c.GlideRate <= 0:
		return fmt.Errorf("%w: glide rate must be positive", ErrInvalidConfig)
	}
	return nil
}

// millis converts a duration to fractional milliseconds.
func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
