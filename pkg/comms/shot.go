package comms

import (
	"errors"
	"fmt"
)

// ShotSize is the number of bytes a Shot occupies on the wire.
const ShotSize = 2

// coordMax is the exclusive upper bound of the 4-bit coordinate encoding.
const coordMax = 16

// ErrCoordRange is returned when a coordinate does not fit the 4-bit
// wire encoding.
var ErrCoordRange = errors.New("coordinate outside the 4-bit wire range")

// Shot is a single move on the wire: the targeted square plus a flag
// reporting the outcome of the opponent's previous shot. The flag rides
// along with the next shot instead of travelling as a separate reply.
type Shot struct {
	X, Y int
	Hit  bool
}

// Encode packs the shot into its 2-byte wire form: x in the high nibble
// of the first byte, y in the low nibble, the hit flag in the top bit of
// the second byte.
func (s Shot) Encode() ([ShotSize]byte, error) {
	var pkt [ShotSize]byte
	if s.X < 0 || s.X >= coordMax || s.Y < 0 || s.Y >= coordMax {
		return pkt, fmt.Errorf("shot (%d,%d): %w", s.X, s.Y, ErrCoordRange)
	}
	pkt[0] = byte(s.X)<<4 | byte(s.Y)
	if s.Hit {
		pkt[1] = 1 << 7
	}
	return pkt, nil
}

// DecodeShot unpacks a wire packet. Every input decodes: the low seven
// bits of the flag byte are padding and ignored, and coordinate range
// checks are left to the board.
func DecodeShot(pkt [ShotSize]byte) Shot {
	return Shot{
		X:   int(pkt[0] >> 4),
		Y:   int(pkt[0] & 0x0F),
		Hit: pkt[1]>>7 != 0,
	}
}
