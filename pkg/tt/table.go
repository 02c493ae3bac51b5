// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tt implements the two-tier transposition table that caches
// search results across the recursive alpha-beta driver and across
// iterative-deepening passes.
package tt

import (
	"sync/atomic"
	"unsafe"

	"gambit/internal/chess"
	"gambit/pkg/eval"
	"gambit/pkg/movehash"
)

// Bound classifies a stored value relative to the window it was
// produced with.
type Bound uint8

const (
	NoBound Bound = iota
	Exact
	LowerBound
	UpperBound
)

// Entry is a single transposition table record. The full 64-bit key is
// kept alongside the entry so a probe can reject hash collisions
// outright (spec.md §9); only a key match is ever trusted.
type Entry struct {
	Key   chess.Hash
	Move  uint16 // movehash-encoded best move, 0 = none
	Value eval.Score
	Bound Bound
	Depth uint8
}

func (e *Entry) isEmpty() bool {
	return e.Bound == NoBound
}

// EntrySize is the size in bytes of a single Entry, used to turn a
// megabyte budget into a slot count.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// slot is one deep/shallow bucket pair. Each bucket is an independent
// atomic pointer rather than a mutex-guarded pair, so concurrent
// probers/storers on the same slot never block each other (spec.md
// §4.4, §5's "lock-free via per-slot atomic pair" alternative). A racing
// Store can lose an update, but a lost update only costs a cache miss,
// never a wrong answer: Probe only ever trusts an entry whose Key field
// matches, so a torn or stale read is rejected rather than misread.
type slot struct {
	deep    atomic.Pointer[Entry]
	shallow atomic.Pointer[Entry]
}

// Table is the two-tier fixed-capacity transposition table. Capacity is
// fixed at construction and never grows.
type Table struct {
	slots []slot
}

// DefaultSizeMB is the size used when a caller does not specify one,
// chosen to land near the 2^24-to-2^25-entry range spec.md §4.4
// suggests as a default capacity.
const DefaultSizeMB = 256

// New creates a Table sized to hold roughly mbs megabytes of entries,
// split into mbs*1024*1024/EntrySize/2 slot pairs.
func New(mbs int) *Table {
	if mbs <= 0 {
		mbs = DefaultSizeMB
	}
	entries := (mbs * 1024 * 1024) / EntrySize
	slots := entries / 2
	if slots < 1 {
		slots = 1
	}
	return &Table{slots: make([]slot, slots)}
}

// Clear empties every slot, discarding all cached results.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = slot{}
	}
}

func (t *Table) slotFor(key chess.Hash) *slot {
	return &t.slots[uint64(key)%uint64(len(t.slots))]
}

// Store records a search result for key. The deep bucket keeps the
// shallowest depth it has ever seen (replace only if stored.depth >=
// new.depth); the shallow bucket keeps the most recent result at least
// as deep as what it holds (replace if stored.depth <= new.depth). If
// the new entry carries no best move, the slot's previous best move
// (if the key matches) is preserved rather than overwritten with zero.
// This asymmetric pairing is the design spec.md §4.4 calls for, not the
// usual single-bucket depth-preferred policy; see DESIGN.md.
func (t *Table) Store(key chess.Hash, depth int, bound Bound, value eval.Score, best chess.Move) {
	s := t.slotFor(key)

	move := uint16(0)
	if !best.IsNull() && !best.IsZero() {
		move = movehash.Encode(best)
	}

	entry := Entry{Key: key, Move: move, Value: value, Bound: bound, Depth: uint8(depth)}

	deep := s.deep.Load()
	shallow := s.shallow.Load()

	if move == 0 {
		if deep != nil && deep.Key == key && deep.Move != 0 {
			entry.Move = deep.Move
		} else if shallow != nil && shallow.Key == key && shallow.Move != 0 {
			entry.Move = shallow.Move
		}
	}

	if deep == nil || deep.isEmpty() || deep.Key != key || deep.Depth >= entry.Depth {
		s.deep.Store(&entry)
	}
	if shallow == nil || shallow.isEmpty() || shallow.Key != key || shallow.Depth <= entry.Depth {
		s.shallow.Store(&entry)
	}
}

// Result is a probe hit, decoded for the caller's convenience.
type Result struct {
	Value eval.Score
	Bound Bound
	Depth int
	Move  chess.Move
}

// Probe looks up key, checking the deep bucket before the shallow one
// (matching the store policy's bias). It reports a hit only when the
// stored key matches exactly, guarding against the rare 64-bit Zobrist
// collision.
func (t *Table) Probe(key chess.Hash) (Result, bool) {
	s := t.slotFor(key)

	if deep := s.deep.Load(); deep != nil && deep.Key == key && !deep.isEmpty() {
		return decode(*deep), true
	}
	if shallow := s.shallow.Load(); shallow != nil && shallow.Key == key && !shallow.isEmpty() {
		return decode(*shallow), true
	}
	return Result{}, false
}

// BestMove is a specialized probe used by move ordering: it returns
// whichever bucket's best move hash is non-zero for key, deep first.
func (t *Table) BestMove(key chess.Hash) (chess.Move, bool) {
	s := t.slotFor(key)

	if deep := s.deep.Load(); deep != nil && deep.Key == key && deep.Move != 0 {
		return movehash.Decode(deep.Move), true
	}
	if shallow := s.shallow.Load(); shallow != nil && shallow.Key == key && shallow.Move != 0 {
		return movehash.Decode(shallow.Move), true
	}
	return chess.NullMove, false
}

func decode(e Entry) Result {
	r := Result{Value: e.Value, Bound: e.Bound, Depth: int(e.Depth)}
	if e.Move != 0 {
		r.Move = movehash.Decode(e.Move)
	} else {
		r.Move = chess.NullMove
	}
	return r
}
