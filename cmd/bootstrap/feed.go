package bootstrap

import (
	"glisten-lounge/internal/handler/api"
	"glisten-lounge/internal/infra/livefeed"
	"glisten-lounge/internal/usecase"

	"go.uber.org/fx"
)

var FeedModule = fx.Module("feed",
	fx.Provide(
		livefeed.New,
		func(f *livefeed.Feed) usecase.FeedPublisher { return f },
		func(f *livefeed.Feed) api.FeedSource { return f },
	),
)
