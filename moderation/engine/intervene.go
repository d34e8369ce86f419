package engine

import (
	"time"
)

// Level is an escalation step in the intervention state machine.
type Level int

const (
	LevelNone Level = iota
	LevelSoft
	LevelMirror
	LevelDisrupt
	LevelForceDisconnect
)

func (l Level) String() string {
	switch l {
	case LevelSoft:
		return "soft"
	case LevelMirror:
		return "mirror"
	case LevelDisrupt:
		return "disrupt"
	case LevelForceDisconnect:
		return "forceDisconnect"
	default:
		return "none"
	}
}

// Score thresholds for each base level.
func levelForScore(score float64) Level {
	switch {
	case score >= 12:
		return LevelForceDisconnect
	case score >= 8:
		return LevelDisrupt
	case score >= 5:
		return LevelMirror
	case score >= 3:
		return LevelSoft
	default:
		return LevelNone
	}
}

const disconnectReason = "Repeated violations of community standards"

// decideLevel runs the intervention state machine for one message:
// suppression while the other side is engaging, escalation when the last
// intervention was only a couple of messages ago, and an urgency override
// for flagged content. Returns LevelNone when no intervention should fire.
// Callers must hold the room lock.
func (e *Engine) decideLevel(rs *roomState, p *participantState, sender string, sig signals, now time.Time) Level {
	level := levelForScore(p.Score)

	// Once the other participant re-engages, hold back unless the score
	// already marks a serious violation.
	if p.HasIntervention && p.Score < 8 {
		for _, msg := range rs.History[p.LastInterventionSeq:] {
			if !msg.IsSystem() && msg.Sender != sender {
				interventionsSuppressed.Inc()
				return LevelNone
			}
		}
	}

	// Repeat trouble right after an intervention escalates one step.
	if level != LevelNone && p.HasIntervention && rs.Seq-p.LastInterventionSeq < 2 {
		switch level {
		case LevelSoft:
			level = LevelMirror
		case LevelMirror:
			level = LevelDisrupt
		case LevelDisrupt:
			if p.Score >= 10 {
				level = LevelForceDisconnect
			}
		}
	}

	if level == LevelNone && sig.urgent() {
		level = LevelMirror
		p.UrgencyOverrideAt = now
		urgencyOverrides.Inc()
	}

	return level
}

// buildIntervention assembles the action for a decided level: a message from
// the tone's pool, a cooldown scaled by level, coaching when a directive
// intervention meets a high score, and terminal metadata for disconnects.
// Callers must hold the room lock.
func (e *Engine) buildIntervention(rs *roomState, p *participantState, level Level, tone Tone, now time.Time) *ModerationAction {
	p.HasIntervention = true
	p.LastInterventionSeq = rs.Seq
	p.LastInterventionAt = now
	p.LastInterventionLvl = level
	rs.InterventionCount++
	interventionsFired.WithLabelValues(level.String(), string(tone)).Inc()

	content := e.pick(e.Catalog.Interventions[tone][level])

	if level == LevelForceDisconnect {
		return &ModerationAction{
			Kind:    ActionForceDisconnect,
			Content: content,
			Level:   level,
			Tone:    tone,
			Reason:  disconnectReason,
		}
	}

	act := &ModerationAction{
		Kind:  ActionIntervention,
		Level: level,
		Tone:  tone,
	}

	if tone == ToneDirective && p.Score >= 5 && level != LevelSoft {
		coaching := e.pick(e.Catalog.Mentoring) + "\n\n" + e.pick(e.Catalog.Examples)
		content = content + "\n\n" + coaching
		act.Coaching = true
	}
	act.Content = content
	act.CooldownSeconds = e.setCooldown(p, level, now)
	return act
}
