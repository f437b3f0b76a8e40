package stocks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTBurke/stocks/pkg/gbm"
	"github.com/BTBurke/stocks/pkg/price"
)

func TestNewWithHistory(t *testing.T) {
	history := []float64{1, 2, 3}
	s, errs := New(
		WithSymbol[float64]("ACME"),
		WithName[float64]("Acme Corp"),
		WithHistory(history...),
	)
	require.Empty(t, errs)
	assert.Equal(t, "ACME", s.Symbol)
	assert.Equal(t, "Acme Corp", s.Name)
	assert.Equal(t, []float64{1, 2, 3}, s.History)

	// history must not alias the caller's slice
	history[0] = 99
	assert.Equal(t, 1.0, s.History[0])
}

func TestNewWithGeneratedHistory(t *testing.T) {
	s, errs := New(
		WithSymbol[float64]("ACME"),
		WithGeneratedHistory(gbm.New[float64](42), 100.0, gbm.Drift(0), gbm.Volatility(0), gbm.Years(1), gbm.Steps(4)),
	)
	require.Empty(t, errs)
	assert.Equal(t, []float64{100, 100, 100, 100, 100}, s.History)
}

func TestGeneratedHistoryMatchesGenerator(t *testing.T) {
	exp, err := gbm.New[int32](7).Path(5000, gbm.DefaultParams())
	require.NoError(t, err)

	s, errs := New(WithSymbol[int32]("X"), WithGeneratedHistory(gbm.New[int32](7), int32(5000)))
	require.Empty(t, errs)
	assert.Equal(t, exp, s.History)
	assert.Len(t, s.History, gbm.DefaultSteps+1)
}

func TestNewErrors(t *testing.T) {
	tt := []struct {
		name    string
		options []Option[int8]
		count   int
	}{
		{name: "missing symbol", options: []Option[int8]{WithName[int8]("no symbol")}, count: 1},
		{name: "empty symbol", options: []Option[int8]{WithSymbol[int8]("")}, count: 1},
		{name: "negative steps", options: []Option[int8]{WithSymbol[int8]("A"), WithGeneratedHistory(gbm.New[int8](1), int8(10), gbm.Steps(-1))}, count: 1},
		{name: "overflow", options: []Option[int8]{WithSymbol[int8]("A"), WithGeneratedHistory(gbm.New[int8](1), int8(120), gbm.Drift(50), gbm.Steps(10))}, count: 1},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s, errs := New(tc.options...)
			assert.Nil(t, s)
			assert.Len(t, errs, tc.count)
		})
	}
}

func TestGeneratedHistoryErrorsUnwrap(t *testing.T) {
	_, errs := New(WithSymbol[int8]("A"), WithGeneratedHistory(gbm.New[int8](1), int8(120), gbm.Drift(50), gbm.Steps(10)))
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], price.ErrOverflow))

	_, errs = New(WithSymbol[int8]("A"), WithGeneratedHistory(gbm.New[int8](1), int8(10), gbm.Steps(-1)))
	require.Len(t, errs, 1)
	var pe *gbm.ParameterError
	assert.True(t, errors.As(errs[0], &pe))
}

func TestString(t *testing.T) {
	tt := []struct {
		name string
		s    *Stock[float64]
		exp  string
	}{
		{name: "full", s: &Stock[float64]{Symbol: "ACME", Name: "Acme Corp", History: make([]float64, 366)}, exp: `ACME[name="Acme Corp" points=366]`},
		{name: "no name", s: &Stock[float64]{Symbol: "X"}, exp: `X[points=0]`},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, tc.s.String())
		})
	}
}

func TestMarshalText(t *testing.T) {
	b, err := MarshalText(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", string(b))

	b, err = MarshalText(map[string]string{"loc": "us-west-1", "host": "pod1"})
	assert.NoError(t, err)
	assert.Equal(t, "[host=pod1 loc=us-west-1]", string(b))
}
