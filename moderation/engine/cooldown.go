package engine

import "time"

// cooldownSeconds maps an intervention level to its typing lockout,
// 10 seconds per escalation step. Force disconnects are terminal and carry
// no cooldown.
func cooldownSeconds(level Level) int {
	switch level {
	case LevelSoft:
		return 10
	case LevelMirror:
		return 20
	case LevelDisrupt:
		return 30
	default:
		return 0
	}
}

// setCooldown starts the lockout for a participant and returns its duration
// in seconds. An already-running longer cooldown is never shortened.
func (e *Engine) setCooldown(p *participantState, level Level, now time.Time) int {
	secs := cooldownSeconds(level)
	if secs == 0 {
		return 0
	}
	until := now.Add(time.Duration(secs) * time.Second)
	if until.After(p.CooldownUntil) {
		p.CooldownUntil = until
	}
	cooldownsStarted.Inc()
	return secs
}

// inCooldown reports whether the participant is still locked out at now.
func (p *participantState) inCooldown(now time.Time) bool {
	return now.Before(p.CooldownUntil)
}
