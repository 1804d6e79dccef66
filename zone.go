// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chrono

// A ZoneRule is the registry value for one zone: either a fixed offset, or
// a full daylight-saving rule.
type ZoneRule struct {
	// Offset is the zone's standard offset. When DST is set it mirrors
	// DST.Std.
	Offset Offset

	// DST is nil for zones without daylight-saving time.
	DST *ZoneDST
}

// FixedRule returns the rule for a zone without daylight-saving time.
func FixedRule(o Offset) ZoneRule {
	return ZoneRule{Offset: o}
}

// DSTRule returns the rule for a zone with daylight-saving time.
func DSTRule(z ZoneDST) ZoneRule {
	return ZoneRule{Offset: z.Std, DST: &z}
}

// A ZoneStore maps zone identifier strings to their rules. Implementations
// are expected to be populated once (for example by the zonefile package at
// process start) and treated as read-only afterwards; the bundled
// implementation does no locking of its own.
type ZoneStore interface {
	Add(name string, rule ZoneRule)
	Lookup(name string) (ZoneRule, bool)
}

// mapStore is the single hash-map implementation backing both presets. The
// distinction between the presets is purely initial sizing.
type mapStore struct {
	m map[string]ZoneRule
}

// NewZoneStore returns an empty in-memory store sized for a full zone
// database.
func NewZoneStore() ZoneStore {
	return &mapStore{m: make(map[string]ZoneRule, 512)}
}

// NewFixedZoneStore returns an empty in-memory store sized for the smaller
// set of zones without daylight-saving time.
func NewFixedZoneStore() ZoneStore {
	return &mapStore{m: make(map[string]ZoneRule, 128)}
}

func (s *mapStore) Add(name string, rule ZoneRule) {
	s.m[name] = rule
}

func (s *mapStore) Lookup(name string) (ZoneRule, bool) {
	r, ok := s.m[name]
	return r, ok
}
