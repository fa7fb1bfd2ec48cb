package scanner

// MaxSerializedSize is the largest buffer Serialize can ever write to: a
// 4-byte header plus 3 bytes per possible frame.
const MaxSerializedSize = 4 + maxDepth*3

// Serialize writes the scanner state to buf as a 4-byte header (depth,
// pendingEndBlocks, inString, eofNewlineEmitted) followed by 3 bytes per
// live frame (kind, then blockCol as two little-endian bytes), and returns
// the number of bytes written. buf must have capacity for at least
// 4+depth*3 bytes; callers that don't know depth in advance should size buf
// to MaxSerializedSize.
func (s *State) Serialize(buf []byte) int {
	buf[0] = s.depth
	buf[1] = s.pendingEndBlocks
	buf[2] = boolByte(s.inString)
	buf[3] = boolByte(s.eofNewlineEmitted)

	n := 4
	for i := 0; i < int(s.depth); i++ {
		f := s.stack[i]
		buf[n] = byte(f.kind)
		buf[n+1] = byte(f.blockCol)
		buf[n+2] = byte(f.blockCol >> 8)
		n += 3
	}
	return n
}

// Deserialize restores s from buf, produced by an earlier Serialize call.
// A zero-length buffer resets s to its initial state. Truncated buffers are
// tolerated: Deserialize reads at most min(depth*3, remaining) frame bytes,
// leaving any frames beyond that point as the sentinel's zero value.
func (s *State) Deserialize(buf []byte) {
	if len(buf) == 0 {
		s.Reset()
		return
	}

	*s = State{}
	s.depth = buf[0]
	if len(buf) > 1 {
		s.pendingEndBlocks = buf[1]
	}
	if len(buf) > 2 {
		s.inString = buf[2] != 0
	}
	if len(buf) > 3 {
		s.eofNewlineEmitted = buf[3] != 0
	}
	if s.depth == 0 {
		s.depth = 1
	}

	remaining := len(buf) - 4
	if remaining < 0 {
		remaining = 0
	}
	want := int(s.depth) * 3
	n := want
	if remaining < n {
		n = remaining
	}
	n -= n % 3

	for i := 0; i < n/3; i++ {
		off := 4 + i*3
		s.stack[i] = frame{
			kind:     FrameKind(buf[off]),
			blockCol: uint16(buf[off+1]) | uint16(buf[off+2])<<8,
		}
	}
	// Any frame slot below depth that wasn't covered by the truncated
	// buffer stays zero-valued (FrameIndented, blockCol 0), which is a
	// safe degradation: it behaves like an immediately-dedentable block.
	// Slot 0 is always the sentinel, regardless of what the buffer held.
	s.stack[0] = frame{kind: FrameIndented, blockCol: 0}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
