package core

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// MarketResponse is the loosely typed body returned by the pairs endpoint.
// Fields are looked up on demand, nothing is validated against a schema.
type MarketResponse struct {
	root gjson.Result
}

// ParseMarketResponse wraps a raw JSON body. Only syntactic validity is checked.
func ParseMarketResponse(body []byte) (MarketResponse, error) {
	if !gjson.ValidBytes(body) {
		return MarketResponse{}, ErrInvalidJSON
	}
	return MarketResponse{root: gjson.ParseBytes(body)}, nil
}

// HasPairs reports whether the top-level "pairs" key is present (even if null).
func (r MarketResponse) HasPairs() bool {
	return r.root.Get("pairs").Exists()
}

// Pairs returns the entries of "pairs" in their original order. A null or
// non-array value yields no pairs.
func (r MarketResponse) Pairs() []Pair {
	value := r.root.Get("pairs")
	if !value.IsArray() {
		return nil
	}

	items := value.Array()
	pairs := make([]Pair, len(items))
	for i, item := range items {
		pairs[i] = Pair{Index: i, raw: item}
	}
	return pairs
}

// Pair is a single trading pair entry. Index is its position inside "pairs".
type Pair struct {
	Index int
	raw   gjson.Result
}

// NewPair builds a Pair from a JSON object, mostly useful in tests.
func NewPair(index int, raw string) Pair {
	return Pair{Index: index, raw: gjson.Parse(raw)}
}

// Path returns the fully qualified path of a field inside the response.
func (p Pair) Path(field string) string {
	return "pairs." + strconv.Itoa(p.Index) + "." + field
}

// BaseTokenName returns baseToken.name and whether it exists.
func (p Pair) BaseTokenName() (string, bool) {
	return p.lookup("baseToken.name")
}

// BaseTokenAddress returns baseToken.address and whether it exists.
func (p Pair) BaseTokenAddress() (string, bool) {
	return p.lookup("baseToken.address")
}

// PriceUSD parses priceUsd, falling back to 0 when absent or unparsable.
func (p Pair) PriceUSD() float64 {
	return number(p.raw.Get("priceUsd"))
}

// Volume24h parses volume.h24, falling back to 0 when the path is missing.
func (p Pair) Volume24h() float64 {
	return number(p.raw.Get("volume.h24"))
}

func (p Pair) lookup(path string) (string, bool) {
	value := p.raw.Get(path)
	if !value.Exists() {
		return "", false
	}
	return value.String(), true
}

// number accepts JSON numbers and numeric strings; anything else is 0.
func number(value gjson.Result) float64 {
	switch value.Type {
	case gjson.Number:
		return value.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value.Str), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
