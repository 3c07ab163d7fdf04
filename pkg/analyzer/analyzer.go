// Package analyzer turns a market snapshot into the records that get displayed
// and notified.
package analyzer

import (
	"fmt"

	"github.com/raykavin/dexscout/pkg/core"
	"github.com/samber/lo"
)

// MaxRecords caps how many pairs are analyzed per snapshot.
const MaxRecords = 5

// Analyze projects the first MaxRecords pairs, in their original order, into
// records. Missing numbers default to zero while a missing token name or
// address aborts with a *core.MissingFieldError.
func Analyze(resp core.MarketResponse) (core.Records, error) {
	if !resp.HasPairs() {
		return nil, &core.MissingFieldError{Path: "pairs"}
	}

	pairs := lo.Slice(resp.Pairs(), 0, MaxRecords)
	records := make(core.Records, 0, len(pairs))

	for _, pair := range pairs {
		record, err := Project(pair)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Project builds the record for a single pair.
func Project(pair core.Pair) (core.Record, error) {
	name, ok := pair.BaseTokenName()
	if !ok {
		return core.Record{}, &core.MissingFieldError{Path: pair.Path("baseToken.name")}
	}

	address, ok := pair.BaseTokenAddress()
	if !ok {
		return core.Record{}, &core.MissingFieldError{Path: pair.Path("baseToken.address")}
	}

	return core.Record{
		Name:            name,
		ContractAddress: address,
		Description:     Describe(pair.PriceUSD(), pair.Volume24h()),
	}, nil
}

// Describe formats price and 24h volume with two decimals.
func Describe(priceUSD, volume24h float64) string {
	return fmt.Sprintf("Price: %.2f USD, Volume: %.2f", priceUSD, volume24h)
}
