// Moderation component for caching generated reflection/suggestion content,
// keyed by a fingerprint of recent conversation messages.
//
// The cache is bounded and evicts in insertion order, so a burst of novel
// conversations ages out stale reflections rather than pinning whatever
// happens to be re-read. Entries are partitioned by room to avoid serving one
// room's generated content to another room with coincidentally similar recent
// text.
package rescache
