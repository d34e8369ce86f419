package engine

// Message type values. Anything other than "system" is treated as a normal
// participant chat message.
const MessageTypeSystem = "system"

// A single inbound conversation message. History is owned by the engine's
// state tracker; callers only submit the new message.
type Message struct {
	Sender  string
	Content string
	Type    string
}

func (m Message) IsSystem() bool {
	return m.Type == MessageTypeSystem
}

type ActionKind string

const (
	ActionReflection       ActionKind = "reflection"
	ActionIntervention     ActionKind = "intervention"
	ActionForceDisconnect  ActionKind = "forceDisconnect"
	ActionCooldownReminder ActionKind = "cooldownReminder"
	ActionWelcome          ActionKind = "welcome"
)

// The engine's output for one evaluated message. A nil *ModerationAction
// means no moderation is needed and the message passes through untouched.
type ModerationAction struct {
	Kind    ActionKind
	Content string

	// intervention fields
	Level           Level
	Tone            Tone
	CooldownSeconds int
	// true when de-escalation coaching text was appended to Content
	Coaching bool

	// forceDisconnect only
	Reason string
}

// Result of a starters/suggestions request. A nil *SuggestionResult means the
// throttler declined (recently used, or within the offer cooldown).
type SuggestionResult struct {
	Starters []string
	// true when the suggestions were generated because conversation health
	// dropped, rather than as fresh-room starters
	Resurfaced bool
	// optional lead-in line shown with resurfaced suggestions
	Message string
}
