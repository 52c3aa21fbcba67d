package huffman

import (
	"reflect"
	"strings"
	"testing"
)

func makeTestCodeTable(t *testing.T, ft FrequencyTable) *CodeTable {
	t.Helper()
	tree, err := BuildTree(ft)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct, err := NewCodeTable(tree)
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	return ct
}

func TestNewCodeTable(t *testing.T) {
	ct := makeTestCodeTable(t, makeTestTable())

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode('a') = \"1100\"\n",
		"\tEncode('b') = \"1101\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('e') = \"111\"\n",
		"\tEncode('f') = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	for _, sym := range ct.Symbols() {
		hc, _ := ct.Encode(sym)
		if actual, found := ct.Decode(hc); !found || actual != sym {
			t.Errorf("Decode(%s): expected %s, got %s", hc, sym, actual)
		}
	}
	if sym, found := ct.Decode(MakeCode(2, 0x03)); found || sym != InvalidSymbol {
		t.Errorf("Decode(\"11\"): expected no symbol, got %s", sym)
	}
}

func TestNewCodeTable_Strings(t *testing.T) {
	ct := makeTestCodeTable(t, CountSymbols(SymbolsFromString("aabbbcccc")))

	expect := map[Symbol]string{'a': "10", 'b': "11", 'c': "0"}
	if actual := ct.Strings(); !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
}

func TestNewCodeTable_EqualFrequencies(t *testing.T) {
	// Three equal weights always merge into code lengths {1, 2, 2}, the
	// unique optimum of 5 bits.
	ft := CountSymbols(SymbolsFromString("abc"))
	ct := makeTestCodeTable(t, ft)

	expect := map[Symbol]string{'a': "10", 'b': "11", 'c': "0"}
	if actual := ct.Strings(); !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
	if size := ct.WeightedSize(ft); size != 5 {
		t.Errorf("expected 5 bits, got %d", size)
	}

	// Four equal weights do give uniform lengths.
	ct = makeTestCodeTable(t, CountSymbols(SymbolsFromString("abcd")))
	for sym, code := range ct.Strings() {
		if len(code) != 2 {
			t.Errorf("%s: expected a 2-bit code, got %q", sym, code)
		}
	}
}

func TestNewCodeTable_SingleSymbol(t *testing.T) {
	ct := makeTestCodeTable(t, FrequencyTable{'a': 10})

	expect := map[Symbol]string{'a': "0"}
	if actual := ct.Strings(); !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
	if ct.MinSize() != 1 || ct.MaxSize() != 1 {
		t.Errorf("expected sizes 1 .. 1, got %d .. %d", ct.MinSize(), ct.MaxSize())
	}
}

func TestNewCodeTable_PrefixFree(t *testing.T) {
	inputs := []string{
		"ab",
		"hello world",
		"mississippi",
		"The quick brown fox jumps over the lazy dog",
		"\x00\x01\x01\x02\x02\x02\x03\x03\x03\x03\x04\x04\x04\x04\x04",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ct := makeTestCodeTable(t, CountSymbols(SymbolsFromString(input)))
			symbols := ct.Symbols()
			for _, a := range symbols {
				for _, b := range symbols {
					if a == b {
						continue
					}
					ca, _ := ct.Encode(a)
					cb, _ := ct.Encode(b)
					if cb.HasPrefix(ca) {
						t.Errorf("code %s of %s is a prefix of code %s of %s", ca, a, cb, b)
					}
				}
			}
		})
	}
}

func TestNewCodeTable_Fibonacci(t *testing.T) {
	// Fibonacci weights produce the deepest possible tree: one symbol per
	// level, so the longest code has len(weights)-1 bits.
	weights := []uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	ft := make(FrequencyTable, len(weights))
	for index, w := range weights {
		ft[Symbol('a'+index)] = w
	}

	ct := makeTestCodeTable(t, ft)
	if ct.MaxSize() != byte(len(weights)-1) {
		t.Errorf("expected MaxSize() %d, got %d", len(weights)-1, ct.MaxSize())
	}
	if ct.MinSize() != 1 {
		t.Errorf("expected MinSize() 1, got %d", ct.MinSize())
	}
}
