// Package lookup is the runtime face of the team registry: given any
// team name variant, it answers "which team is this" and "what is this
// team called on service X".
//
// A Service is constructed once from a persisted registry snapshot and
// never mutated afterward, so any number of goroutines may query it
// concurrently without locking. Construction is the one operation that
// fails loudly; lookups report absence with a false second return, an
// expected outcome callers must handle.
package lookup
