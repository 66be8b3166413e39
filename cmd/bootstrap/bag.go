package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"glisten-lounge/internal/infra/bagstore"
	"glisten-lounge/internal/pkg/clock"
	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/usecase"

	"go.uber.org/fx"
)

var BagStoreModule = fx.Module("bagstore",
	fx.Provide(
		NewBagStore,
		func(s *bagstore.BoltStore) usecase.BagStore { return s },
	),
)

func NewBagStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (*bagstore.BoltStore, error) {
	if dir := filepath.Dir(cfg.Bag.Path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, err
		}
	}

	store, err := bagstore.Open(cfg.Bag.Path, clk, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
