package aggregate

import (
	"strings"

	"stocktracker/internal/provider/alphavantage"
)

// Classify reports whether a fund-profile response describes an ETF: a
// non-empty net-assets figure together with at least one composition list
// entry. No provider field states the security type outright, so this
// stays a heuristic. Known limitation: a thinly described ETF with net
// assets but no sector or holdings breakdown is reported as an equity.
func Classify(p *alphavantage.ETFProfile) bool {
	if p == nil {
		return false
	}
	if strings.TrimSpace(p.NetAssets) == "" {
		return false
	}
	return len(p.Sectors) > 0 || len(p.Holdings) > 0
}
