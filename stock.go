// Package stocks assembles labeled financial instruments whose price history is either supplied directly or
// simulated with Geometric Brownian Motion.
//
//	g := gbm.New[float64](42)
//	s, errs := stocks.New(
//		stocks.WithSymbol[float64]("ACME"),
//		stocks.WithName[float64]("Acme Corp"),
//		stocks.WithGeneratedHistory(g, 100.0, gbm.Steps(252)),
//	)
package stocks

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"

	"github.com/BTBurke/stocks/pkg/gbm"
)

// Stock is an instrument with a price history in the representation T
type Stock[T any] struct {
	Symbol  string
	Name    string
	History []T
}

// Option configures a Stock during construction
type Option[T any] func(s *Stock[T]) error

// New builds a stock from options applied in order.  Every option is applied and all errors are returned together;
// a stock is only returned when there are none.
func New[T any](options ...Option[T]) (*Stock[T], []error) {
	s := &Stock[T]{}

	var errors []error
	for _, option := range options {
		if err := option(s); err != nil {
			errors = append(errors, err)
		}
	}
	if s.Symbol == "" {
		errors = append(errors, fmt.Errorf("stock symbol is required"))
	}
	if len(errors) > 0 {
		return nil, errors
	}
	glog.V(1).Infof("stocks: built %s", s)
	return s, nil
}

// WithSymbol sets the ticker symbol.  New rejects a stock whose symbol is empty.
func WithSymbol[T any](symbol string) Option[T] {
	return func(s *Stock[T]) error {
		s.Symbol = symbol
		return nil
	}
}

// WithName sets the display name
func WithName[T any](name string) Option[T] {
	return func(s *Stock[T]) error {
		s.Name = name
		return nil
	}
}

// WithHistory sets an explicit price history.  The prices are copied.
func WithHistory[T any](history ...T) Option[T] {
	return func(s *Stock[T]) error {
		s.History = append([]T(nil), history...)
		return nil
	}
}

// WithGeneratedHistory sets the history to a path simulated by g starting at initial.  Parameters not set by opts keep
// their defaults (drift 0.2, volatility 0.4, one year in 365 steps).
func WithGeneratedHistory[T any](g *gbm.Generator[T], initial T, opts ...gbm.ParamOption) Option[T] {
	return func(s *Stock[T]) error {
		p, errs := gbm.NewParams(opts...)
		if len(errs) > 0 {
			return fmt.Errorf("failed to generate history: %w", errs[0])
		}
		path, err := g.Path(initial, p)
		if err != nil {
			return fmt.Errorf("failed to generate history: %w", err)
		}
		s.History = path
		return nil
	}
}

// String renders the stock as its symbol followed by logfmt metadata, e.g. ACME[name="Acme Corp" points=366]
func (s *Stock[T]) String() string {
	md := map[string]string{"points": strconv.Itoa(len(s.History))}
	if s.Name != "" {
		md["name"] = s.Name
	}
	return NewLabel(s.Symbol, md).String()
}
