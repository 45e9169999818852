// Package storage provides JSON persistence for registry snapshots.
//
// The builder writes one self-describing JSON document (version,
// generation timestamp, counts, teams, alias index); the lookup service
// reads it back at process start. Loading is strict: a missing or
// corrupt registry file is an error for the caller to propagate, since
// a silently-empty registry would break every downstream consumer with
// no visible signal.
package storage
