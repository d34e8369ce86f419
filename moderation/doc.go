// Moderation decision engine for live two-person text conversations.
//
// This package (`github.com/emergent-grounds/guardian/moderation`) evaluates
// every inbound message and decides whether to intervene (warn, throttle, or
// remove a participant), when to inject a reflective prompt, and when to
// offer conversation starters. Per-participant disruption scores accumulate
// from classifier attributes and local heuristics, decay on good behavior,
// and drive a four-level escalation state machine with suppression and
// urgency-override rules. Generated content comes from an external
// completion service behind a cache and a deterministic static fallback
// chain, so total upstream failure degrades gracefully rather than blocking
// message delivery.
//
// See `cmd/guardian` for a daemon built on this package.
package moderation
