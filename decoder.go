package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Decoder decodes Streams produced by an Encoder built from the same
// FrequencyTable.
type Decoder struct {
	table FrequencyTable
	codes *CodeTable
}

// Init initializes this Decoder.  It rebuilds the Tree and CodeTable exactly
// as Encoder.Init does, so the two always agree on every code.
//
// An empty table is permitted, and yields a Decoder that only accepts the
// empty Stream.
func (d *Decoder) Init(ft FrequencyTable) error {
	if len(ft) == 0 {
		*d = Decoder{}
		return nil
	}

	t, err := BuildTree(ft)
	if err != nil {
		return err
	}
	ct, err := NewCodeTable(t)
	if err != nil {
		return err
	}

	d.init(ft, ct)
	return nil
}

func (d *Decoder) init(ft FrequencyTable, ct *CodeTable) {
	assert.Assertf(ft.Len() == ct.Len(), "table has %d symbols but code has %d", ft.Len(), ct.Len())
	*d = Decoder{table: ft.Clone(), codes: ct}
}

// Decode scans the Stream from left to right, accumulating bits until they
// form a complete code, and emits one Symbol per code.
//
// Decode fails with ErrNoMatchingCode if the accumulated bits grow longer
// than the longest code without matching, or if the Stream ends in the middle
// of a code.  It fails with ErrInvalidBit on any character other than '0' or
// '1'.  The returned error is a *DecodeError with the offending position.
func (d Decoder) Decode(s Stream) ([]Symbol, error) {
	if len(s) == 0 {
		return []Symbol{}, nil
	}
	if d.codes == nil {
		return nil, &DecodeError{Offset: 0, Err: ErrEmptyAlphabet}
	}

	out := make([]Symbol, 0, len(s)/int(d.codes.MinSize()))
	maxSize := d.codes.MaxSize()
	start := 0
	var candidate Code
	for index := 0; index < len(s); index++ {
		switch s[index] {
		case '0':
			candidate = candidate.Append(0)
		case '1':
			candidate = candidate.Append(1)
		default:
			return nil, &DecodeError{Offset: index, Err: fmt.Errorf("%w %q", ErrInvalidBit, s[index])}
		}

		if sym, found := d.codes.Decode(candidate); found {
			out = append(out, sym)
			candidate = Code{}
			start = index + 1
			continue
		}

		if candidate.Size >= maxSize {
			return nil, &DecodeError{Offset: start, Candidate: candidate.Text(), Err: ErrNoMatchingCode}
		}
	}

	if candidate.Size != 0 {
		return nil, &DecodeError{Offset: start, Candidate: candidate.Text(), Err: fmt.Errorf("%w: stream ends mid-code", ErrNoMatchingCode)}
	}
	return out, nil
}

// Table returns a copy of the FrequencyTable this Decoder was built from.
func (d Decoder) Table() FrequencyTable {
	return d.table.Clone()
}

// CodeTable returns the code used by this Decoder, or nil for the empty
// alphabet.
func (d Decoder) CodeTable() *CodeTable {
	return d.codes
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	if d.codes == nil {
		return 0
	}
	return d.codes.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	if d.codes == nil {
		return 0
	}
	return d.codes.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer, in code order.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.MaxSize())
	if d.codes != nil {
		keys := make(byCode, 0, d.codes.Len())
		for hc := range d.codes.symbols {
			keys = append(keys, hc)
		}
		keys.Sort()
		for _, hc := range keys {
			fmt.Fprintf(&buf, "\tDecode(%s) = %s\n", hc, d.codes.symbols[hc])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.Bits < b.Bits
}

var _ sort.Interface = byCode(nil)

// }}}
