// Package stat summarizes simulated price paths and estimates the GBM parameters that could have produced them.
package stat

import (
	"fmt"
	"math"

	gstat "gonum.org/v1/gonum/stat"
)

// Estimate is the drift and volatility implied by a path's log returns
type Estimate struct {
	Drift      float64
	Volatility float64
}

// Summary describes a path without assuming any model
type Summary struct {
	First  float64
	Last   float64
	Min    float64
	Max    float64
	Return float64
}

// LogReturns returns ln(p[i]/p[i-1]) for each consecutive pair of prices.  All prices must be positive and finite.
func LogReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("need at least 2 prices to compute returns, got %d", len(prices))
	}
	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		r := math.Log(prices[i] / prices[i-1])
		if prices[i] <= 0 || prices[i-1] <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("log return is not defined between %g and %g at index %d", prices[i-1], prices[i], i)
		}
		out[i-1] = r
	}
	return out, nil
}

// EstimateParams estimates annualized drift and volatility from a path spanning years.  Under GBM, log returns over
// a step dt are normal with mean (drift - volatility^2/2)*dt and variance volatility^2*dt.
func EstimateParams(prices []float64, years float64) (Estimate, error) {
	if len(prices) < 3 {
		return Estimate{}, fmt.Errorf("need at least 3 prices to estimate parameters, got %d", len(prices))
	}
	if years <= 0 || math.IsNaN(years) || math.IsInf(years, 0) {
		return Estimate{}, fmt.Errorf("horizon must be positive and finite, got %g", years)
	}
	returns, err := LogReturns(prices)
	if err != nil {
		return Estimate{}, err
	}

	dt := years / float64(len(returns))
	mean, std := gstat.MeanStdDev(returns, nil)
	vol := std / math.Sqrt(dt)
	return Estimate{
		Drift:      mean/dt + 0.5*vol*vol,
		Volatility: vol,
	}, nil
}

// Summarize returns the first, last, lowest and highest price and the total simple return of a path
func Summarize(prices []float64) Summary {
	if len(prices) == 0 {
		return Summary{}
	}
	s := Summary{
		First: prices[0],
		Last:  prices[len(prices)-1],
		Min:   prices[0],
		Max:   prices[0],
	}
	for _, p := range prices[1:] {
		s.Min = math.Min(s.Min, p)
		s.Max = math.Max(s.Max, p)
	}
	if s.First != 0 {
		s.Return = s.Last/s.First - 1
	}
	return s
}
