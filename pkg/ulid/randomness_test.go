package ulid

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestRandomnessFromInt(t *testing.T) {
	requireT := require.New(t)

	raw := lo.Must(hex.DecodeString("c0005a1e3b2c4f5d6e7a"))
	rn, err := RandomnessFromInt(new(big.Int).SetBytes(raw))
	requireT.NoError(err)
	requireT.Equal(raw, rn.Bytes())
	requireT.Equal(0, rn.Int().Cmp(new(big.Int).SetBytes(raw)))

	maxInt := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 80), big.NewInt(1))
	rn2, err := RandomnessFromInt(maxInt)
	requireT.NoError(err)
	requireT.Equal(strings.Repeat("Z", 16), rn2.String())

	_, err = RandomnessFromInt(big.NewInt(-1))
	requireT.ErrorIs(err, ErrRangeOverflow)

	_, err = RandomnessFromInt(new(big.Int).Lsh(big.NewInt(1), 80))
	requireT.ErrorIs(err, ErrRangeOverflow)
}

func TestRandomnessFromString(t *testing.T) {
	requireT := require.New(t)

	rn, err := RandomnessFromString("R005M7HV5H7NTVKT")
	requireT.NoError(err)
	requireT.Equal("c0005a1e3b2c4f5d6e7a", hex.EncodeToString(rn.Bytes()))
	requireT.Equal("R005M7HV5H7NTVKT", rn.String())

	_, err = RandomnessFromString("R005M7HV5H7NTVK")
	requireT.Error(err)
}

func TestRandomnessFromBytes(t *testing.T) {
	requireT := require.New(t)

	raw := lo.Must(hex.DecodeString("c0005a1e3b2c4f5d6e7a"))
	rn, err := RandomnessFromBytes(raw)
	requireT.NoError(err)
	requireT.Equal(raw, rn.Bytes())

	for _, size := range []int{0, 9, 11, 16} {
		_, err := RandomnessFromBytes(make([]byte, size))
		requireT.ErrorIs(err, ErrWidthMismatch)
	}
}

func TestRandomnessReuse(t *testing.T) {
	requireT := require.New(t)

	u := vector(t)
	u2, err := FromRandomness(u.Randomness())
	requireT.NoError(err)
	requireT.Equal(u.Randomness(), u2.Randomness())
}
