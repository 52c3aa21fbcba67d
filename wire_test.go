package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrequencyTable_MarshalBinary(t *testing.T) {
	raw, err := FrequencyTable{'a': 2}.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a, 0x04, 0x08, 0x61, 0x10, 0x02}, raw)

	raw, err = FrequencyTable{}.MarshalBinary()
	require.NoError(t, err)
	require.Empty(t, raw)

	_, err = FrequencyTable{'a': 0}.MarshalBinary()
	require.ErrorIs(t, err, ErrInvalidTable)
}

func TestFrequencyTable_MarshalBinary_Deterministic(t *testing.T) {
	ft := CountSymbols(SymbolsFromString("The quick brown fox jumps over the lazy dog"))

	first, err := ft.MarshalBinary()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ft.Clone().MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestFrequencyTable_UnmarshalBinary(t *testing.T) {
	ft := FrequencyTable{'a': 2, 'b': 300, 0x1F600: 1 << 40}

	raw, err := ft.MarshalBinary()
	require.NoError(t, err)

	var out FrequencyTable
	require.NoError(t, out.UnmarshalBinary(raw))
	require.True(t, ft.Equal(out), "expected %v, got %v", ft, out)

	require.NoError(t, out.UnmarshalBinary(nil))
	require.Equal(t, 0, out.Len())
}

func TestFrequencyTable_UnmarshalBinary_Errors(t *testing.T) {
	entry := []byte{0x0a, 0x04, 0x08, 0x61, 0x10, 0x02}

	testData := map[string][]byte{
		"truncated tag":   {0xff},
		"truncated entry": {0x0a, 0x04, 0x08, 0x61},
		"duplicate":       append(append([]byte{}, entry...), entry...),
		"zero count":      {0x0a, 0x02, 0x08, 0x61},
		"huge symbol":     {0x0a, 0x08, 0x08, 0x80, 0x80, 0x80, 0x80, 0x10, 0x10, 0x01},
	}
	for name, raw := range testData {
		t.Run(name, func(t *testing.T) {
			var ft FrequencyTable
			require.ErrorIs(t, ft.UnmarshalBinary(raw), ErrInvalidTable)
		})
	}
}

func TestFrequencyTable_UnmarshalBinary_SkipsUnknownFields(t *testing.T) {
	raw := []byte{
		0x10, 0x07, // field 2, varint 7
		0x0a, 0x06, 0x08, 0x61, 0x10, 0x02, 0x18, 0x01, // entry with field 3
	}

	var ft FrequencyTable
	require.NoError(t, ft.UnmarshalBinary(raw))
	require.True(t, ft.Equal(FrequencyTable{'a': 2}), "got %v", ft)
}
