package carousel

import (
	"math"

	"go.uber.org/zap"

	"github.com/rimiko/showcase/internal/carousel/frame"
)

// Controller drives one carousel surface from pointer input.
type Controller struct {
	cfg     Config
	surface Surface
	sched   frame.Scheduler
	clock   frame.Clock
	logger  *zap.Logger

	state      State
	tracker    pointerTracker
	driver     scrollDriver
	momentum   momentum
	glide      glide
	affordance Affordance

	onAffordance func(Affordance)
	onState      func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig sets the tuning. An invalid configuration is logged and the
// defaults are used instead.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// OnAffordanceChange registers fn to be called whenever the control
// visibility changes, and once at construction.
func OnAffordanceChange(fn func(Affordance)) Option {
	return func(c *Controller) {
		c.onAffordance = fn
	}
}

// OnStateChange registers fn to be called on every state transition.
func OnStateChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onState = fn
	}
}

// New creates a controller for surface. A nil surface yields a controller
// whose methods do nothing.
func New(surface Surface, sched frame.Scheduler, clock frame.Clock, opts ...Option) *Controller {
	c := &Controller{
		cfg:     DefaultConfig(),
		surface: surface,
		sched:   sched,
		clock:   clock,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.Validate(); err != nil {
		c.logger.Warn("invalid carousel tuning, using defaults", zap.Error(err))
		c.cfg = DefaultConfig()
	}

	c.tracker = pointerTracker{
		smoothing:   c.cfg.Smoothing,
		minInterval: c.cfg.MinMoveInterval,
	}
	c.driver = scrollDriver{
		sched: sched,
		write: c.write,
	}
	c.momentum = momentum{
		sched:        sched,
		friction:     c.cfg.Friction,
		stopVelocity: c.cfg.StopVelocity,
		reference:    c.cfg.ReferenceFrame,
		minFrame:     c.cfg.MinFrameInterval,
		bounds:       c.maxScroll,
		write:        c.write,
		done:         c.settle,
	}
	c.glide = glide{
		sched: sched,
		rate:  c.cfg.GlideRate,
		write: c.write,
		done:  c.settle,
	}

	c.publishAffordance(true)
	return c
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a pointer is down on the strip.
func (c *Controller) Dragging() bool {
	return c.state == StateDragging
}

// Affordance returns the current control visibility.
func (c *Controller) Affordance() Affordance {
	return c.affordance
}

// Velocity returns the smoothed drag velocity in px/ms while dragging,
// or the coasting velocity during momentum.
func (c *Controller) Velocity() float64 {
	switch c.state {
	case StateDragging:
		return c.tracker.velocity
	case StateMomentum:
		return c.momentum.velocity
	default:
		return 0
	}
}

// Config returns the tuning in effect.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the tuning. It takes effect from the next drag; a
// running momentum loop keeps its parameters. An invalid configuration is
// logged and ignored.
func (c *Controller) SetConfig(cfg Config) {
	if err := cfg.Validate(); err != nil {
		c.logger.Warn("ignoring invalid carousel tuning", zap.Error(err))
		return
	}
	c.cfg = cfg
	c.tracker.smoothing = c.cfg.Smoothing
	c.tracker.minInterval = c.cfg.MinMoveInterval
	if !c.momentum.running() {
		c.momentum.friction = c.cfg.Friction
		c.momentum.stopVelocity = c.cfg.StopVelocity
		c.momentum.reference = c.cfg.ReferenceFrame
		c.momentum.minFrame = c.cfg.MinFrameInterval
	}
	c.glide.rate = c.cfg.GlideRate
}

// OnPointerDown starts a drag at x. Any coasting or page animation is
// cancelled first so that only the drag writes the position.
func (c *Controller) OnPointerDown(x float64, device Device) {
	if c.surface == nil {
		return
	}
	c.momentum.stop()
	c.glide.stop()
	start := c.surface.ScrollPosition()
	if target, ok := c.driver.takePending(); ok {
		start = c.clamp(target)
	}
	c.tracker.begin(x, start, device, c.clock.Now())
	c.transition(StateDragging)
}

// OnPointerMove feeds a pointer sample. It does nothing without an active
// drag or for touch input.
func (c *Controller) OnPointerMove(x float64) {
	if c.surface == nil {
		return
	}
	target, ok := c.tracker.sample(x, c.clock.Now())
	if !ok {
		return
	}
	c.driver.scheduleScrollTo(target)
}

// OnPointerUp ends the drag. A fast mouse release starts momentum.
func (c *Controller) OnPointerUp() {
	if c.surface == nil {
		return
	}
	velocity, device, wasActive := c.tracker.end()
	if !wasActive {
		return
	}
	if !device.tracksManually() || math.Abs(velocity) <= c.cfg.StopVelocity {
		c.transition(StateIdle)
		return
	}

	// The last drag write has not landed yet; coast from its target so the
	// drag and the momentum loop never write in the same frame.
	start := c.surface.ScrollPosition()
	if target, ok := c.driver.takePending(); ok {
		start = c.clamp(target)
	}
	c.logger.Debug("momentum start",
		zap.Float64("velocity", velocity),
		zap.Float64("position", start))
	c.transition(StateMomentum)
	c.momentum.start(start, velocity, c.clock.Now())
}

// OnPointerCancel ends the drag like a release.
func (c *Controller) OnPointerCancel() {
	c.OnPointerUp()
}

// OnPointerLeave ends the drag like a release.
func (c *Controller) OnPointerLeave() {
	c.OnPointerUp()
}

// ScrollByCard pages the strip by one item in direction (negative is
// backwards). Repeated calls during a glide accumulate.
func (c *Controller) ScrollByCard(direction int) {
	if c.surface == nil || direction == 0 || c.state == StateDragging {
		return
	}
	c.momentum.stop()

	from := c.surface.ScrollPosition()
	base := from
	if target, ok := c.driver.takePending(); ok {
		from = c.clamp(target)
		base = from
	}
	if c.glide.running() {
		from = c.glide.position
		base = c.glide.target
	}

	step := c.cfg.PageStep
	if s, ok := c.surface.(Stepper); ok && s.ItemStep() > 0 {
		step = s.ItemStep()
	}
	if direction < 0 {
		step = -step
	}
	target := c.clamp(base + step)
	if target == from {
		c.transition(StateIdle)
		return
	}

	c.transition(StateGliding)
	c.glide.start(from, target, c.clock.Now())
	// Reflect the intent immediately; the frames finish the job.
	c.recomputeFor(target, false)
}

// ScrollBy moves the strip by delta through the coalescing driver. Wheel
// input uses it; a burst of wheel events becomes one write per frame.
func (c *Controller) ScrollBy(delta float64) {
	if c.surface == nil || c.state == StateDragging || delta == 0 {
		return
	}
	c.momentum.stop()
	c.glide.stop()
	base := c.surface.ScrollPosition()
	if c.driver.pending != 0 {
		base = c.driver.target
	}
	c.transition(StateIdle)
	c.driver.scheduleScrollTo(c.clamp(base + delta))
}

// Resize re-clamps the position after the viewport or content changed and
// recomputes the affordance.
func (c *Controller) Resize() {
	if c.surface == nil {
		return
	}
	pos := c.surface.ScrollPosition()
	if clamped := c.clamp(pos); clamped != pos {
		c.surface.SetScrollPosition(clamped)
	}
	c.publishAffordance(false)
}

// Recompute refreshes the affordance after an external scroll.
func (c *Controller) Recompute() {
	if c.surface == nil {
		return
	}
	c.publishAffordance(false)
}

// Stop cancels every pending frame and returns to Idle.
func (c *Controller) Stop() {
	c.driver.cancel()
	c.momentum.stop()
	c.glide.stop()
	c.tracker.end()
	c.transition(StateIdle)
}

func (c *Controller) write(pos float64) {
	c.surface.SetScrollPosition(c.clamp(pos))
	c.publishAffordance(false)
}

func (c *Controller) settle() {
	c.transition(StateIdle)
}

func (c *Controller) maxScroll() float64 {
	return MaxScroll(c.surface)
}

func (c *Controller) clamp(pos float64) float64 {
	return clamp(pos, 0, c.maxScroll())
}

func (c *Controller) transition(to State) {
	if c.state == to && to != StateDragging && to != StateGliding {
		return
	}
	if !canTransition(c.state, to) {
		c.logger.Debug("ignored transition",
			zap.Stringer("from", c.state),
			zap.Stringer("to", to))
		return
	}
	from := c.state
	c.state = to
	if from != to && c.onState != nil {
		c.onState(to)
	}
}

func (c *Controller) publishAffordance(force bool) {
	if c.surface == nil {
		return
	}
	c.recomputeFor(c.surface.ScrollPosition(), force)
}

func (c *Controller) recomputeFor(pos float64, force bool) {
	a := ComputeAffordance(pos, c.surface.ContentWidth(), c.surface.ViewportWidth(), c.cfg.EdgeTolerance)
	if a == c.affordance && !force {
		return
	}
	c.affordance = a
	if c.onAffordance != nil {
		c.onAffordance(a)
	}
}
