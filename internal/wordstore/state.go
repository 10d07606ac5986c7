package wordstore

// State packs a sign bit and a 63-bit auxiliary value into one uint64. The
// most significant bit holds the sign; the remaining bits hold the auxiliary
// value. The meaning of the auxiliary value is engine-specific: the factorial
// engine caches its highest occupied digit index there, the binary engine
// leaves it at zero.
type State uint64

const (
	signMask State = 1 << 63
	auxMask  State = ^signMask
)

// Sign reports whether the sign bit is set (the value is negative).
func (s State) Sign() bool { return s&signMask != 0 }

// Aux returns the 63-bit auxiliary value.
func (s State) Aux() uint64 { return uint64(s & auxMask) }

// SetSign sets or clears the sign bit, leaving the auxiliary value intact.
func (s *State) SetSign(negative bool) {
	if negative {
		*s |= signMask
	} else {
		*s &^= signMask
	}
}

// SetAux stores a 63-bit auxiliary value, leaving the sign bit intact.
// Values wider than 63 bits are truncated.
func (s *State) SetAux(v uint64) {
	*s = (*s & signMask) | (State(v) & auxMask)
}
