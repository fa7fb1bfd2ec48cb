package scanner

// State is the scanner's entire persistent state: the frame stack plus the
// handful of flags that must survive between re-entrant calls to Scan. The
// zero value is not valid; use New.
//
// Invariants (must hold at every call boundary):
//   - depth >= 1 and stack[0] is FrameIndented with blockCol == 0.
//   - inString implies the most recently opened '"' has not been matched.
//   - when inString is true, the top frame is never FrameInterpolation.
//   - pendingEndBlocks is nonzero only between calls draining it.
type State struct {
	stack             [maxDepth]frame
	depth             uint8
	pendingEndBlocks  uint8
	inString          bool
	eofNewlineEmitted bool
}

// New returns a freshly initialized State: a single sentinel FrameIndented
// frame with blockCol == 0 representing the top-level file body.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores s to the state New would have produced. It is equivalent
// to Deserialize(nil) and is what the host should call for create() and for
// deserialize() with a zero-length buffer.
func (s *State) Reset() {
	*s = State{}
	s.stack[0] = frame{kind: FrameIndented, blockCol: 0}
	s.depth = 1
}

// Depth reports the number of live frames, for diagnostics.
func (s *State) Depth() int {
	return int(s.depth)
}

// InString reports whether the cursor is currently between an opening
// string quote and its matching close.
func (s *State) InString() bool {
	return s.inString
}

// PendingEndBlocks reports how many END_BLOCK tokens remain queued for
// emission on subsequent calls.
func (s *State) PendingEndBlocks() int {
	return int(s.pendingEndBlocks)
}

// Destroy releases any resources held by s. State holds nothing beyond its
// own fields, so this is a no-op; it exists to give hosts a symmetric
// create/destroy pair to call around a scanner's lifetime.
func (s *State) Destroy() {}
