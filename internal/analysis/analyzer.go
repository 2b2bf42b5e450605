// Package analysis computes deterministic statistics over an options
// chain for the inspect command.
//
// Key capabilities:
//   - Per-expiration volume, open interest and strike range
//   - Put/call volume ratio
//   - Max pain strike from open interest
//   - Volume hotspot detection via Z-score analysis
package analysis

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Mr-Dark-debug/chainview/internal/chain"
	"github.com/Mr-Dark-debug/chainview/pkg/timeutil"
)

// ============================================================
// Expiration Summary
// ============================================================

// ExpirationSummary aggregates one expiration.
type ExpirationSummary struct {
	Date         string          `json:"date"`
	DaysToExpiry int             `json:"days_to_expiry"`
	HasDTE       bool            `json:"has_dte"`
	Strikes      int             `json:"strikes"`
	LowStrike    decimal.Decimal `json:"low_strike"`
	HighStrike   decimal.Decimal `json:"high_strike"`
	CallVolume   int64           `json:"call_volume"`
	PutVolume    int64           `json:"put_volume"`
	CallOI       int64           `json:"call_open_interest"`
	PutOI        int64           `json:"put_open_interest"`
	PutCallRatio float64         `json:"put_call_ratio"` // 0 when there is no call volume
	MaxPain      decimal.Decimal `json:"max_pain"`
}

// Summarize aggregates every expiration of c in file order.
func Summarize(c *chain.Chain) []ExpirationSummary {
	out := make([]ExpirationSummary, 0, c.Len())
	for _, exp := range c.Expirations {
		out = append(out, SummarizeExpiration(exp, c.LastUpdate))
	}
	return out
}

// SummarizeExpiration aggregates one expiration. asOf is the chain's
// last-update label and is only used for days to expiry.
func SummarizeExpiration(exp chain.Expiration, asOf string) ExpirationSummary {
	s := ExpirationSummary{
		Date:    exp.Date,
		Strikes: exp.Rows(),
	}
	s.DaysToExpiry, s.HasDTE = timeutil.DaysToExpiry(exp.Date, asOf)

	for i, p := range exp.Options {
		if i == 0 || p.Strike.LessThan(s.LowStrike) {
			s.LowStrike = p.Strike
		}
		if i == 0 || p.Strike.GreaterThan(s.HighStrike) {
			s.HighStrike = p.Strike
		}
		s.CallVolume += p.Call.Volume
		s.PutVolume += p.Put.Volume
		s.CallOI += p.Call.OpenInterest
		s.PutOI += p.Put.OpenInterest
	}

	if s.CallVolume > 0 {
		s.PutCallRatio = math.Round(float64(s.PutVolume)/float64(s.CallVolume)*100) / 100
	}
	s.MaxPain = MaxPain(exp)
	return s
}

// ============================================================
// Max Pain
// ============================================================

// MaxPain returns the strike at which option holders, weighted by open
// interest, would collect the least at expiry. Ties keep the lower
// strike. An expiration without strikes yields zero.
func MaxPain(exp chain.Expiration) decimal.Decimal {
	var best decimal.Decimal
	var bestPayout decimal.Decimal
	for i, settle := range exp.Options {
		payout := decimal.Zero
		for _, p := range exp.Options {
			if settle.Strike.GreaterThan(p.Strike) {
				payout = payout.Add(settle.Strike.Sub(p.Strike).Mul(decimal.NewFromInt(p.Call.OpenInterest)))
			}
			if settle.Strike.LessThan(p.Strike) {
				payout = payout.Add(p.Strike.Sub(settle.Strike).Mul(decimal.NewFromInt(p.Put.OpenInterest)))
			}
		}
		if i == 0 || payout.LessThan(bestPayout) ||
			(payout.Equal(bestPayout) && settle.Strike.LessThan(best)) {
			best, bestPayout = settle.Strike, payout
		}
	}
	return best
}

// ============================================================
// Volume Hotspot Detection
// ============================================================

// VolumeHotspot identifies a strike with abnormally high traded volume.
type VolumeHotspot struct {
	Date     string          `json:"date"`
	Strike   decimal.Decimal `json:"strike"`
	Volume   int64           `json:"volume"` // calls + puts
	ZScore   float64         `json:"z_score"`
	Severity string          `json:"severity"` // "low", "medium", "high"
}

// DetectVolumeHotspots calculates the Z-score of combined call and put
// volume across the strikes of exp, returning the outliers.
//
// A Z-score > 1.5 is reported ("low" severity).
// A Z-score > 2.0 is a hotspot ("medium" severity).
// A Z-score > 3.0 is a significant hotspot ("high" severity).
func DetectVolumeHotspots(exp chain.Expiration) []VolumeHotspot {
	if len(exp.Options) < 2 {
		// Not enough data for meaningful Z-score analysis
		return nil
	}

	totals := make([]float64, len(exp.Options))
	var sum, sumSq float64
	for i, p := range exp.Options {
		total := float64(p.Call.Volume + p.Put.Volume)
		totals[i] = total
		sum += total
		sumSq += total * total
	}

	n := float64(len(totals))
	mean := sum / n
	variance := (sumSq / n) - (mean * mean)
	stddev := math.Sqrt(variance)

	if stddev == 0 {
		// Flat volume, no hotspots
		return nil
	}

	var hotspots []VolumeHotspot
	for i, p := range exp.Options {
		zScore := (totals[i] - mean) / stddev
		if zScore <= 1.5 {
			continue
		}

		severity := "low"
		if zScore > 3.0 {
			severity = "high"
		} else if zScore > 2.0 {
			severity = "medium"
		}

		hotspots = append(hotspots, VolumeHotspot{
			Date:     exp.Date,
			Strike:   p.Strike,
			Volume:   p.Call.Volume + p.Put.Volume,
			ZScore:   math.Round(zScore*100) / 100,
			Severity: severity,
		})
	}

	sort.Slice(hotspots, func(i, j int) bool {
		return hotspots[i].ZScore > hotspots[j].ZScore
	})

	return hotspots
}

// DetectChainHotspots runs DetectVolumeHotspots on every expiration.
func DetectChainHotspots(c *chain.Chain) []VolumeHotspot {
	var all []VolumeHotspot
	for _, exp := range c.Expirations {
		all = append(all, DetectVolumeHotspots(exp)...)
	}
	return all
}
