package moderation

import (
	"github.com/emergent-grounds/guardian/moderation/engine"
)

type Engine = engine.Engine
type Config = engine.Config
type Catalog = engine.Catalog

type Message = engine.Message
type ModerationAction = engine.ModerationAction
type SuggestionResult = engine.SuggestionResult

type Level = engine.Level
type Tone = engine.Tone
type ActionKind = engine.ActionKind

var (
	LevelNone            = engine.LevelNone
	LevelSoft            = engine.LevelSoft
	LevelMirror          = engine.LevelMirror
	LevelDisrupt         = engine.LevelDisrupt
	LevelForceDisconnect = engine.LevelForceDisconnect

	ToneReflective = engine.ToneReflective
	ToneGrounded   = engine.ToneGrounded
	ToneDirective  = engine.ToneDirective

	ActionReflection       = engine.ActionReflection
	ActionIntervention     = engine.ActionIntervention
	ActionForceDisconnect  = engine.ActionForceDisconnect
	ActionCooldownReminder = engine.ActionCooldownReminder
	ActionWelcome          = engine.ActionWelcome
)
