package bootstrap

import (
	"glisten-lounge/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	BusinessModule,
	BagStoreModule,
	NotifierModule,
	FeedModule,
	SchedulerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
