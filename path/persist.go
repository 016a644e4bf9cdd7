package path

import (
	"encoding/json"
	"fmt"
)

// Dump is the serialisable form of a Path. The pending mutation is not part
// of it: a dump always reflects the current points.
type Dump struct {
	Time       []float64 `json:"time" yaml:"time"`
	Trajectory []float64 `json:"trajectory" yaml:"trajectory"`
}

// Dump returns the serialisable form of p.
func (p *Path) Dump() *Dump {
	return &Dump{Time: p.Times(), Trajectory: p.Values()}
}

// FromDump replaces the points of p with d and clears the undo slot.
// The dump may come from an untrusted source and is fully validated.
func (p *Path) FromDump(d *Dump) error {
	if d == nil {
		return fmt.Errorf("FromDump: %w", ErrNilPath)
	}
	q, err := New(d.Time, d.Trajectory)
	if err != nil {
		return fmt.Errorf("FromDump: %w", err)
	}
	p.pts = q.pts
	p.pending = Mutation{}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Dump())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Path) UnmarshalJSON(data []byte) error {
	var d Dump
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	return p.FromDump(&d)
}
