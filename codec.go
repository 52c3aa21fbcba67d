package huffman

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultCacheSize is the number of code tables a Codec keeps when
// CodecOptions.CacheSize is zero.
const DefaultCacheSize = 64

// CodecOptions configures a Codec.  The zero value is usable.
type CodecOptions struct {
	// Logger receives debug messages about code construction and cache
	// use, and warnings about failed decodes.  If nil, nothing is logged.
	Logger logrus.FieldLogger

	// BitsPerSymbol is the baseline width of an unencoded Symbol used by
	// CompressionRatio.  If zero, the package-level BitsPerSymbol is used.
	BitsPerSymbol int

	// CacheSize bounds the number of cached code tables.  Zero selects
	// DefaultCacheSize; a negative value disables the cache.
	CacheSize int
}

// Codec wraps Encode and Decode with logging and a cache of code tables,
// keyed by the FrequencyTable they were built from.  A Codec is safe for
// concurrent use.
type Codec struct {
	log           logrus.FieldLogger
	bitsPerSymbol int
	cacheSize     int

	mu    sync.RWMutex
	cache map[string]*CodeTable
}

// NewCodec constructs a Codec.
func NewCodec(opts CodecOptions) *Codec {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}

	bitsPerSymbol := opts.BitsPerSymbol
	if bitsPerSymbol <= 0 {
		bitsPerSymbol = BitsPerSymbol
	}

	cacheSize := opts.CacheSize
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}

	return &Codec{
		log:           log,
		bitsPerSymbol: bitsPerSymbol,
		cacheSize:     cacheSize,
		cache:         make(map[string]*CodeTable),
	}
}

// Encode is like the package-level Encode, but reuses cached code tables.
func (c *Codec) Encode(symbols []Symbol) (Stream, FrequencyTable, error) {
	ft := CountSymbols(symbols)
	if len(ft) == 0 {
		return "", ft, nil
	}

	ct, err := c.codeTable(ft)
	if err != nil {
		return "", nil, err
	}

	var e Encoder
	e.init(ft, ct)
	s, err := e.Encode(symbols)
	if err != nil {
		return "", nil, err
	}

	c.log.WithFields(logrus.Fields{
		"symbols": len(symbols),
		"bits":    s.Len(),
		"ratio":   c.CompressionRatio(symbols, s),
	}).Debug("encoded")
	return s, ft, nil
}

// Decode is like the package-level Decode, but reuses cached code tables.
func (c *Codec) Decode(s Stream, ft FrequencyTable) ([]Symbol, error) {
	if len(s) == 0 {
		return []Symbol{}, nil
	}

	var d Decoder
	if len(ft) != 0 {
		ct, err := c.codeTable(ft)
		if err != nil {
			return nil, err
		}
		d.init(ft, ct)
	}

	symbols, err := d.Decode(s)
	if err != nil {
		c.log.WithError(err).WithField("bits", s.Len()).Warn("decode failed")
		return nil, err
	}
	return symbols, nil
}

// CompressionRatio is CompressionRatioBits with this Codec's baseline symbol
// width.
func (c *Codec) CompressionRatio(original []Symbol, s Stream) float64 {
	return CompressionRatioBits(len(original)*c.bitsPerSymbol, s.Len())
}

// CacheLen returns the number of cached code tables.
func (c *Codec) CacheLen() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

func (c *Codec) codeTable(ft FrequencyTable) (*CodeTable, error) {
	raw, err := ft.MarshalBinary()
	if err != nil {
		return nil, err
	}
	key := string(raw)

	c.mu.RLock()
	ct, found := c.cache[key]
	c.mu.RUnlock()
	if found {
		c.log.WithField("symbols", ft.Len()).Debug("code table cache hit")
		return ct, nil
	}

	t, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}
	ct, err = NewCodeTable(t)
	if err != nil {
		return nil, err
	}

	c.log.WithFields(logrus.Fields{
		"symbols": ft.Len(),
		"total":   ft.Total(),
		"minSize": ct.MinSize(),
		"maxSize": ct.MaxSize(),
	}).Debug("built code table")

	if c.cacheSize < 0 {
		return ct, nil
	}

	c.mu.Lock()
	if len(c.cache) >= c.cacheSize {
		c.log.WithField("entries", len(c.cache)).Debug("code table cache full, clearing")
		c.cache = make(map[string]*CodeTable)
	}
	c.cache[key] = ct
	c.mu.Unlock()
	return ct, nil
}
