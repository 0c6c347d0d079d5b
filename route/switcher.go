package route

import (
	"errors"
	"fmt"
)

var (
	ErrInactive     = errors.New("route: switcher not activated")
	ErrStartupGrace = errors.New("route: switch rejected during startup grace")
	ErrCooldown     = errors.New("route: switch rejected during cooldown")
	ErrFlapping     = errors.New("route: switch back to last group rejected")
)

const (
	DefaultStartupGrace = 1.0
	DefaultCooldown     = 0.5
	DefaultFlapWindow   = 1.0
)

// SwitchConfig holds the guard timings in seconds. FlapWindow and Cooldown
// are independent: FlapWindow only applies to switching onto the group that
// was switched to most recently.
type SwitchConfig struct {
	StartupGrace    float64
	Cooldown        float64
	FlapWindow      float64
	CooldownEnabled bool
}

func DefaultSwitchConfig() SwitchConfig {
	return SwitchConfig{
		StartupGrace:    DefaultStartupGrace,
		Cooldown:        DefaultCooldown,
		FlapWindow:      DefaultFlapWindow,
		CooldownEnabled: true,
	}
}

// Switcher decides which waypoint group is active. It is activated once and
// keeps its state for the lifetime of the owning follower; pausing and
// resuming the follower does not re-activate it.
//
// Times are seconds read from the host's monotonic clock.
type Switcher struct {
	cfg        SwitchConfig
	groupCount int

	activated    bool
	startedAt    float64
	active       int
	lastSwitched int
	lastSwitchAt float64
	hasSwitched  bool
}

func NewSwitcher(cfg SwitchConfig, groupCount int) *Switcher {
	return &Switcher{cfg: cfg, groupCount: groupCount, lastSwitched: -1}
}

func (s *Switcher) Config() SwitchConfig {
	return s.cfg
}

// Activate records the startup time and initial group. Only the first call
// has any effect; it reports whether this call performed the activation.
func (s *Switcher) Activate(now float64, initial int) bool {
	if s.activated {
		return false
	}
	if initial < 0 || initial >= s.groupCount {
		initial = 0
	}
	s.activated = true
	s.startedAt = now
	s.active = initial
	return true
}

func (s *Switcher) Activated() bool {
	return s.activated
}

func (s *Switcher) Active() int {
	return s.active
}

func (s *Switcher) GroupCount() int {
	return s.groupCount
}

// LastSwitch returns the group most recently switched to and when. ok is
// false until the first committed switch.
func (s *Switcher) LastSwitch() (group int, at float64, ok bool) {
	return s.lastSwitched, s.lastSwitchAt, s.hasSwitched
}

// SetGroupCount updates the number of groups after a route reload. The active
// group is kept when it is still in range, otherwise it falls back to 0.
func (s *Switcher) SetGroupCount(n int) {
	s.groupCount = n
	if s.active >= n {
		s.active = 0
	}
	if s.lastSwitched >= n {
		s.lastSwitched = -1
	}
}

// Next advances to the following group, wrapping around, subject to the
// startup, cooldown and flap guards.
func (s *Switcher) Next(now float64) (int, error) {
	return s.step(now, 1)
}

// Previous steps back one group, wrapping around, under the same guards as
// Next.
func (s *Switcher) Previous(now float64) (int, error) {
	return s.step(now, -1)
}

func (s *Switcher) step(now float64, dir int) (int, error) {
	if !s.activated {
		return s.active, ErrInactive
	}
	if s.groupCount <= 0 {
		return s.active, ErrNoGroups
	}
	if now-s.startedAt < s.cfg.StartupGrace {
		return s.active, ErrStartupGrace
	}
	since := now - s.lastSwitchAt
	if s.cfg.CooldownEnabled && s.hasSwitched && since < s.cfg.Cooldown {
		return s.active, ErrCooldown
	}

	next := ((s.active+dir)%s.groupCount + s.groupCount) % s.groupCount
	if s.cfg.CooldownEnabled && s.hasSwitched && next == s.lastSwitched && since < s.cfg.FlapWindow {
		return s.active, ErrFlapping
	}

	s.commit(next, now)
	return next, nil
}

// To switches directly to index. Only bounds are checked; the timing guards
// do not apply.
func (s *Switcher) To(index int, now float64) (int, error) {
	if !s.activated {
		return s.active, ErrInactive
	}
	if index < 0 || index >= s.groupCount {
		return s.active, fmt.Errorf("%w: group %d of %d", ErrInvalidIndex, index, s.groupCount)
	}
	s.commit(index, now)
	return index, nil
}

func (s *Switcher) commit(index int, now float64) {
	s.active = index
	s.lastSwitched = index
	s.lastSwitchAt = now
	s.hasSwitched = true
}
