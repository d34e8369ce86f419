package engine

import (
	"sync"
	"time"
)

// participantState tracks per-sender disruption scoring and intervention
// bookkeeping within a single room.
type participantState struct {
	Score               float64
	ConsecutiveMessages int
	MessageCount        int
	Recent              []Message
	LastInterventionSeq int
	LastInterventionAt  time.Time
	LastInterventionLvl Level
	HasIntervention     bool
	UrgencyOverrideAt   time.Time
	CooldownUntil       time.Time

	// suggestion throttling
	SuggestUsedRecently bool
	LastOfferedAt       time.Time
	UsedStarters        map[string]bool

	// LastHealth is the most recent health score reported for this
	// participant, or negative when none has been reported.
	LastHealth float64
}

// roomState holds everything the engine knows about one conversation. All
// fields are guarded by mu; adapter calls (classifier, completions) happen
// with the lock released.
type roomState struct {
	mu sync.Mutex

	Participants map[string]*participantState

	// Seq increments once per evaluated message and orders events within
	// the room.
	Seq     int
	History []Message

	ReflectionCounter int
	InterventionCount int

	WelcomeSent bool

	// pending usedRecently auto-clear timers, keyed by participant
	starterTimers map[string]*time.Timer
}

func (rs *roomState) participant(id string) *participantState {
	p, ok := rs.Participants[id]
	if !ok {
		p = &participantState{UsedStarters: make(map[string]bool), LastHealth: -1}
		rs.Participants[id] = p
	}
	return p
}

// cancelTimers stops any pending starter auto-clear timers. Callers must
// hold rs.mu.
func (rs *roomState) cancelTimers() {
	for id, t := range rs.starterTimers {
		t.Stop()
		delete(rs.starterTimers, id)
	}
}

// ConversationStore keeps per-room state for the engine. Rooms are created
// lazily on first use and removed when a conversation ends.
type ConversationStore struct {
	mu    sync.Mutex
	rooms map[string]*roomState
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{rooms: make(map[string]*roomState)}
}

func (s *ConversationStore) room(id string) *roomState {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs, ok := s.rooms[id]
	if !ok {
		rs = &roomState{
			Participants:  make(map[string]*participantState),
			starterTimers: make(map[string]*time.Timer),
		}
		s.rooms[id] = rs
	}
	return rs
}

// RemoveRoom drops all state for a room and cancels its pending timers.
func (s *ConversationStore) RemoveRoom(id string) {
	s.mu.Lock()
	rs, ok := s.rooms[id]
	delete(s.rooms, id)
	s.mu.Unlock()
	if !ok {
		return
	}
	rs.mu.Lock()
	rs.cancelTimers()
	rs.mu.Unlock()
}

// RoomCount reports how many rooms currently hold state.
func (s *ConversationStore) RoomCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}
