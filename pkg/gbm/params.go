package gbm

import (
	"fmt"
	"math"
)

const (
	DefaultDrift      float64 = 0.2
	DefaultVolatility float64 = 0.4
	DefaultYears      float64 = 1.0
	DefaultSteps      int     = 365
)

// Params are the simulation parameters of a path.  Drift and Volatility are annualized, Years is the total horizon
// and Steps the number of discrete steps in that horizon.
type Params struct {
	Drift      float64 `yaml:"drift"`
	Volatility float64 `yaml:"volatility"`
	Years      float64 `yaml:"years"`
	Steps      int     `yaml:"steps"`
}

// ParamOption overrides a default parameter
type ParamOption func(p *Params) error

// DefaultParams returns drift 0.2, volatility 0.4 over one year in 365 steps
func DefaultParams() Params {
	return Params{
		Drift:      DefaultDrift,
		Volatility: DefaultVolatility,
		Years:      DefaultYears,
		Steps:      DefaultSteps,
	}
}

// NewParams applies options on top of the defaults.  Every option is applied and all errors are returned together.
func NewParams(options ...ParamOption) (Params, []error) {
	p := DefaultParams()

	var errors []error
	for _, option := range options {
		if err := option(&p); err != nil {
			errors = append(errors, err)
		}
	}
	if len(errors) > 0 {
		return Params{}, errors
	}
	return p, nil
}

// Validate rejects parameters that would make the recurrence undefined.  Zero steps is allowed and produces a path
// holding only the initial price.  A non-positive horizon is not rejected; it is treated as caller error and surfaces
// as a non-finite price during generation.
func (p Params) Validate() error {
	switch {
	case p.Steps < 0:
		return &ParameterError{Name: "steps", Msg: fmt.Sprintf("must be >= 0, got %d", p.Steps)}
	case !finite(p.Drift):
		return &ParameterError{Name: "drift", Msg: fmt.Sprintf("must be finite, got %v", p.Drift)}
	case !finite(p.Volatility):
		return &ParameterError{Name: "volatility", Msg: fmt.Sprintf("must be finite, got %v", p.Volatility)}
	case !finite(p.Years):
		return &ParameterError{Name: "years", Msg: fmt.Sprintf("must be finite, got %v", p.Years)}
	}
	return nil
}

// Drift sets the expected annualized return
func Drift(mu float64) ParamOption {
	return func(p *Params) error {
		if !finite(mu) {
			return &ParameterError{Name: "drift", Msg: fmt.Sprintf("must be finite, got %v", mu)}
		}
		p.Drift = mu
		return nil
	}
}

// Volatility sets the annualized standard deviation of returns.  Negative values are accepted.
func Volatility(sigma float64) ParamOption {
	return func(p *Params) error {
		if !finite(sigma) {
			return &ParameterError{Name: "volatility", Msg: fmt.Sprintf("must be finite, got %v", sigma)}
		}
		p.Volatility = sigma
		return nil
	}
}

// Years sets the total horizon of the path
func Years(t float64) ParamOption {
	return func(p *Params) error {
		if !finite(t) {
			return &ParameterError{Name: "years", Msg: fmt.Sprintf("must be finite, got %v", t)}
		}
		p.Years = t
		return nil
	}
}

// Steps sets the number of discrete steps.  The path has steps+1 prices.
func Steps(n int) ParamOption {
	return func(p *Params) error {
		if n < 0 {
			return &ParameterError{Name: "steps", Msg: fmt.Sprintf("must be >= 0, got %d", n)}
		}
		p.Steps = n
		return nil
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
