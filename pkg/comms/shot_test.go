package comms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShotEncoding(t *testing.T) {
	pkt, err := Shot{X: 3, Y: 7, Hit: true}.Encode()
	require.NoError(t, err)
	assert.Equal(t, [ShotSize]byte{0x37, 0x80}, pkt)

	pkt, err = Shot{X: 9, Y: 0}.Encode()
	require.NoError(t, err)
	assert.Equal(t, [ShotSize]byte{0x90, 0x00}, pkt)
}

func TestShotEncodeRejectsOutOfRange(t *testing.T) {
	for _, shot := range []Shot{
		{X: 16, Y: 0},
		{X: 0, Y: 16},
		{X: -1, Y: 0},
		{X: 0, Y: -1},
	} {
		_, err := shot.Encode()
		assert.ErrorIs(t, err, ErrCoordRange, "shot %+v", shot)
	}
}

func TestShotRoundTrip(t *testing.T) {
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			for _, hit := range []bool{false, true} {
				shot := Shot{X: x, Y: y, Hit: hit}
				pkt, err := shot.Encode()
				require.NoError(t, err)
				assert.Equal(t, shot, DecodeShot(pkt))
			}
		}
	}
}

func TestDecodeShotIgnoresPadding(t *testing.T) {
	for _, flag := range []byte{0x00, 0x7F, 0x80, 0xFF} {
		shot := DecodeShot([ShotSize]byte{0x42, flag})
		assert.Equal(t, 4, shot.X)
		assert.Equal(t, 2, shot.Y)
		assert.Equal(t, flag >= 0x80, shot.Hit)
	}
}
