package huffman

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCountSymbols(t *testing.T) {
	ft := CountSymbols(SymbolsFromString("aabbbcccc"))

	expect := FrequencyTable{'a': 2, 'b': 3, 'c': 4}
	if !ft.Equal(expect) {
		t.Errorf("wrong table:\n\texpect: %v\n\tactual: %v", expect, ft)
	}
	if ft.Len() != 3 {
		t.Errorf("expected Len() 3, got %d", ft.Len())
	}
	if ft.Total() != 9 {
		t.Errorf("expected Total() 9, got %d", ft.Total())
	}
	if actual := ft.Symbols(); !reflect.DeepEqual(actual, []Symbol{'a', 'b', 'c'}) {
		t.Errorf("wrong symbols: %v", actual)
	}
}

func TestCountSymbols_Empty(t *testing.T) {
	ft := CountSymbols(nil)
	if ft == nil || ft.Len() != 0 || ft.Total() != 0 {
		t.Errorf("expected empty non-nil table, got %#v", ft)
	}
}

func TestFrequencyTable_Validate(t *testing.T) {
	if err := (FrequencyTable{'a': 1}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (FrequencyTable{'a': 0}).Validate(); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("expected ErrInvalidTable for zero count, got %v", err)
	}
	if err := (FrequencyTable{-5: 1}).Validate(); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("expected ErrInvalidTable for negative symbol, got %v", err)
	}
}

func TestFrequencyTable_Clone(t *testing.T) {
	ft := FrequencyTable{'a': 1}
	dup := ft.Clone()
	dup['b'] = 2
	if ft.Len() != 1 {
		t.Errorf("Clone shares storage with the original")
	}
}

func TestFrequencyTable_Dump(t *testing.T) {
	ft := CountSymbols(SymbolsFromString("hello world"))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tLen() = 8\n",
		"\tTotal() = 11\n",
		"\tCount(' ') = 1\n",
		"\tCount('d') = 1\n",
		"\tCount('e') = 1\n",
		"\tCount('h') = 1\n",
		"\tCount('l') = 3\n",
		"\tCount('o') = 2\n",
		"\tCount('r') = 1\n",
		"\tCount('w') = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestFrequencyTable_MarshalJSON(t *testing.T) {
	ft := FrequencyTable{'a': 2, 'b': 3}

	raw, err := json.Marshal(ft)
	if err != nil {
		t.Errorf("json.Marshal failed: %v", err)
	}
	expectJSON := `{"97":2,"98":3}`
	actualJSON := string(raw)
	if expectJSON != actualJSON {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectJSON, actualJSON)
	}
}

func TestFrequencyTable_UnmarshalJSON(t *testing.T) {
	var ft FrequencyTable
	if err := json.Unmarshal([]byte(`{"97":2,"98":3}`), &ft); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if expect := (FrequencyTable{'a': 2, 'b': 3}); !ft.Equal(expect) {
		t.Errorf("wrong table:\n\texpect: %v\n\tactual: %v", expect, ft)
	}

	for _, raw := range []string{`{"97":0}`, `{"-1":4}`, `{"x":1}`, `[1,2]`} {
		var bad FrequencyTable
		if err := json.Unmarshal([]byte(raw), &bad); !errors.Is(err, ErrInvalidTable) {
			t.Errorf("%s: expected ErrInvalidTable, got %v", raw, err)
		}
	}
}
