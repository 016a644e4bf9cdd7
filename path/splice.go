// SPDX-License-Identifier: MIT

package path

import "fmt"

// Append concatenates every point of other onto p. A pending mutation stays
// valid: it only refers to points before the old end.
//
// Complexity: O(other.Len()) amortised.
func (p *Path) Append(other *Path) error {
	if other == nil {
		return fmt.Errorf("Append: %w", ErrNilPath)
	}
	p.pts = append(p.pts, other.pts...)

	return nil
}

// AppendFrom concatenates other[start:] onto p. Stitching uses start=1 to
// drop a boundary point the two segments share. The pending mutation is kept
// as for Append.
func (p *Path) AppendFrom(other *Path, start int) error {
	if other == nil {
		return fmt.Errorf("AppendFrom: %w", ErrNilPath)
	}
	if start < 0 || start > len(other.pts) {
		return fmt.Errorf("AppendFrom(start=%d, len=%d): %w", start, len(other.pts), ErrOutOfRange)
	}
	p.pts = append(p.pts, other.pts[start:]...)

	return nil
}

// Insert splices every point of other in front of index at (0 ≤ at ≤ Len).
// Time ordering is the caller's responsibility.
//
// A pending InteriorReplace wholly behind at is shifted with its points. Any
// pending mutation the insert lands inside or in front of (a prefix) is
// committed, since its undo no longer describes the path.
//
// Complexity: O(Len + other.Len()).
func (p *Path) Insert(other *Path, at int) error {
	if other == nil {
		return fmt.Errorf("Insert: %w", ErrNilPath)
	}
	if at < 0 || at > len(p.pts) {
		return fmt.Errorf("Insert(at=%d, len=%d): %w", at, len(p.pts), ErrOutOfRange)
	}
	out := make([]Point, 0, len(p.pts)+len(other.pts))
	out = append(out, p.pts[:at]...)
	out = append(out, other.pts...)
	out = append(out, p.pts[at:]...)
	p.pts = out
	p.shiftPending(at, len(other.pts))

	return nil
}

// shiftPending keeps the undo slot consistent with n points inserted at at.
func (p *Path) shiftPending(at, n int) {
	switch m := &p.pending; m.Kind {
	case InteriorReplace:
		switch {
		case at <= m.Index:
			m.Index += n
		case at < m.Index+len(m.Saved):
			p.Commit()
		}
	case PrefixReplace:
		if at < m.PrefixLen {
			p.Commit()
		}
	}
}

// Modify overwrites [at, at+other.Len()) with other's points and saves the
// overwritten region as the pending InteriorReplace mutation.
//
// Modify(nil, -1) acknowledges "nothing to undo" and is equivalent to Commit.
//
// Errors: ErrNilPath, ErrOutOfRange. On error p is unchanged.
//
// Complexity: O(other.Len()).
func (p *Path) Modify(other *Path, at int) error {
	if other == nil {
		if at == -1 {
			p.Commit()

			return nil
		}

		return fmt.Errorf("Modify: %w", ErrNilPath)
	}
	if at < 0 || at+len(other.pts) > len(p.pts) {
		return fmt.Errorf("Modify(at=%d, n=%d, len=%d): %w", at, len(other.pts), len(p.pts), ErrOutOfRange)
	}
	saved := make([]Point, len(other.pts))
	copy(saved, p.pts[at:])
	copy(p.pts[at:], other.pts)
	p.pending = Mutation{Kind: InteriorReplace, Index: at, Saved: saved}

	return nil
}

// ReplacePrefix swaps p[0..through] (inclusive) for every point of prefix and
// saves the old prefix as the pending PrefixReplace mutation.
//
// Errors: ErrNilPath, ErrOutOfRange. On error p is unchanged.
//
// Complexity: O(Len + prefix.Len()).
func (p *Path) ReplacePrefix(prefix *Path, through int) error {
	if prefix == nil {
		return fmt.Errorf("ReplacePrefix: %w", ErrNilPath)
	}
	if through < 0 || through >= len(p.pts) {
		return fmt.Errorf("ReplacePrefix(through=%d, len=%d): %w", through, len(p.pts), ErrOutOfRange)
	}
	saved := append([]Point(nil), p.pts[:through+1]...)
	out := make([]Point, 0, len(prefix.pts)+len(p.pts)-through-1)
	out = append(out, prefix.pts...)
	out = append(out, p.pts[through+1:]...)
	p.pts = out
	p.pending = Mutation{Kind: PrefixReplace, Saved: saved, PrefixLen: len(prefix.pts)}

	return nil
}

// Pending returns the current undo slot. The Saved slice is shared; do not
// modify it.
func (p *Path) Pending() Mutation { return p.pending }

// SetPending reinstalls an undo slot previously taken with Pending, e.g. after
// a later mutation was Reset. The slot must fit the current points.
//
// Errors: ErrOutOfRange if m reaches past the end of p.
func (p *Path) SetPending(m Mutation) error {
	switch m.Kind {
	case InteriorReplace:
		if m.Index < 0 || m.Index+len(m.Saved) > len(p.pts) {
			return fmt.Errorf("SetPending(index=%d, n=%d, len=%d): %w", m.Index, len(m.Saved), len(p.pts), ErrOutOfRange)
		}
	case PrefixReplace:
		if m.PrefixLen < 0 || m.PrefixLen > len(p.pts) {
			return fmt.Errorf("SetPending(prefix=%d, len=%d): %w", m.PrefixLen, len(p.pts), ErrOutOfRange)
		}
	}
	p.pending = m

	return nil
}

// Reset undoes the pending mutation, if any, and clears the slot.
func (p *Path) Reset() {
	switch p.pending.Kind {
	case InteriorReplace:
		copy(p.pts[p.pending.Index:], p.pending.Saved)
	case PrefixReplace:
		out := make([]Point, 0, len(p.pending.Saved)+len(p.pts)-p.pending.PrefixLen)
		out = append(out, p.pending.Saved...)
		out = append(out, p.pts[p.pending.PrefixLen:]...)
		p.pts = out
	}
	p.pending = Mutation{}
}

// Commit accepts the pending mutation: the slot is cleared and the change
// can no longer be undone.
func (p *Path) Commit() { p.pending = Mutation{} }
