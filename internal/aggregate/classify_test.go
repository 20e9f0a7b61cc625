package aggregate

import (
	"testing"

	"stocktracker/internal/provider/alphavantage"
)

func TestClassify_RequiresNetAssetsAndComposition(t *testing.T) {
	sectors := []alphavantage.SectorWeight{{Sector: "Technology", Weight: "0.30"}}
	holdings := []alphavantage.HoldingWeight{{Description: "APPLE INC", Weight: "0.07"}}

	cases := []struct {
		name     string
		profile  *alphavantage.ETFProfile
		wantETF  bool
	}{
		{"nil response", nil, false},
		{"empty response", &alphavantage.ETFProfile{}, false},
		{"net assets only", &alphavantage.ETFProfile{NetAssets: "400000000000"}, false},
		{"sectors only", &alphavantage.ETFProfile{Sectors: sectors}, false},
		{"holdings only", &alphavantage.ETFProfile{Holdings: holdings}, false},
		{"sectors and holdings, no net assets", &alphavantage.ETFProfile{Sectors: sectors, Holdings: holdings}, false},
		{"net assets + sectors", &alphavantage.ETFProfile{NetAssets: "400000000000", Sectors: sectors}, true},
		{"net assets + holdings", &alphavantage.ETFProfile{NetAssets: "400000000000", Holdings: holdings}, true},
		{"net assets + both", &alphavantage.ETFProfile{NetAssets: "400000000000", Sectors: sectors, Holdings: holdings}, true},
		{"blank net assets + sectors", &alphavantage.ETFProfile{NetAssets: "   ", Sectors: sectors}, false},
		{"net assets + empty lists", &alphavantage.ETFProfile{NetAssets: "400000000000", Sectors: []alphavantage.SectorWeight{}, Holdings: []alphavantage.HoldingWeight{}}, false},
	}
	for _, tc := range cases {
		if got := Classify(tc.profile); got != tc.wantETF {
			t.Errorf("%s: Classify=%v, want %v", tc.name, got, tc.wantETF)
		}
	}
}
