package pulse

// SequenceMode selects how a Sequence drives its members.
type SequenceMode int

const (
	// Parallel ticks every member on each call.
	Parallel SequenceMode = iota
	// Serial plays members one after another, advancing when the
	// current one finishes.
	Serial
)

// Sequence groups several Pulses behind a single Tick. Members remain
// independent state machines; the sequence only forwards ticks.
type Sequence struct {
	mode    SequenceMode
	members []*Pulse
	cur     int
}

func NewSequence(mode SequenceMode, members ...*Pulse) *Sequence {
	return &Sequence{
		mode:    mode,
		members: members,
	}
}

// Tick advances the group using each member's own clock and reports
// whether any playback remains.
func (s *Sequence) Tick() bool {
	active := false
	switch s.mode {
	case Parallel:
		for _, m := range s.members {
			if m.Tick() {
				active = true
			}
		}
	case Serial:
		for s.cur < len(s.members) {
			if s.members[s.cur].Tick() {
				active = true
				break
			}
			s.cur++
		}
	}
	return active
}

// TickAt is Tick with an explicit timestamp, for deterministic replay.
func (s *Sequence) TickAt(now uint32) bool {
	active := false
	switch s.mode {
	case Parallel:
		for _, m := range s.members {
			if m.TickAt(now) {
				active = true
			}
		}
	case Serial:
		for s.cur < len(s.members) {
			if s.members[s.cur].TickAt(now) {
				active = true
				break
			}
			s.cur++
		}
	}
	return active
}

// Stop stops every member and resets playback to the first one.
func (s *Sequence) Stop() {
	for _, m := range s.members {
		m.Stop()
	}
	s.cur = 0
}
