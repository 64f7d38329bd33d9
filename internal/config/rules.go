package config

import "tempo/internal/schedule"

// Rules converts the placement tunables into the engine's form.
func (p Placement) Rules() schedule.Rules {
	return schedule.Rules{
		DefaultDuration: p.DefaultDurationMinutes,
		MinDuration:     p.MinDurationMinutes,
		Snap:            p.SnapMinutes,
	}
}
