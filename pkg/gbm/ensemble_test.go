package gbm

import (
	"context"
	"errors"
	"testing"

	money "github.com/Rhymond/go-money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTBurke/stocks/pkg/price"
)

func TestEnsemble(t *testing.T) {
	seeds := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	p := params(t, Steps(50))

	paths, err := Ensemble(context.Background(), price.Builtin[float64](), 100.0, p, seeds...)
	require.NoError(t, err)
	require.Len(t, paths, len(seeds))

	for i, seed := range seeds {
		exp, err := New[float64](seed).Path(100, p)
		require.NoError(t, err)
		assert.Equal(t, exp, paths[i], "seed %d", seed)
	}
}

func TestEnsembleFailure(t *testing.T) {
	p := params(t, Drift(50), Steps(10))
	paths, err := Ensemble(context.Background(), price.Builtin[int8](), int8(100), p, 1, 2, 3)
	assert.Nil(t, paths)
	assert.True(t, errors.Is(err, price.ErrOverflow))
}

func TestEnsembleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := Ensemble(ctx, price.Builtin[float64](), 100.0, DefaultParams(), 1, 2)
	assert.Nil(t, paths)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEnsembleInvalidParams(t *testing.T) {
	_, err := Ensemble(context.Background(), price.Builtin[float64](), 100.0, Params{Steps: -1}, 1)
	var pe *ParameterError
	assert.True(t, errors.As(err, &pe))
}

func TestEnsembleSharesInitial(t *testing.T) {
	codec, err := price.Money("USD")
	require.NoError(t, err)
	initial, err := codec.FromFloat(10)
	require.NoError(t, err)

	paths, err := Ensemble[*money.Money](context.Background(), codec, initial, params(t, Steps(3)), 1, 2)
	require.NoError(t, err)
	for _, path := range paths {
		assert.Same(t, initial, path[0])
	}
	assert.NotSame(t, paths[0][1], paths[1][1])
}
