package gbm

import (
	"context"
	"runtime"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/BTBurke/stocks/pkg/price"
)

// Ensemble generates one path per seed in parallel.  Each seed gets its own generator so there is no shared random
// state, and paths[i] is exactly the path New(seeds[i]).Path(initial, p) would return.  If any path fails, or ctx is
// cancelled, the first error is returned and no paths are.
//
// Element 0 of every path is initial itself.  For pointer representations such as *money.Money all paths share
// that one value, so callers must not mutate it.
func Ensemble[T any](ctx context.Context, codec price.Codec[T], initial T, p Params, seeds ...int64) ([][]T, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	paths := make([][]T, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := NewWithCodec[T](seed, codec).Path(initial, p)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	glog.V(1).Infof("gbm: generated ensemble of %d paths", len(seeds))
	return paths, nil
}
