package cmd

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/binjuhor/likepost/pkg/catalog"
	"github.com/binjuhor/likepost/pkg/envs"
	"github.com/binjuhor/likepost/pkg/handler"
	"github.com/binjuhor/likepost/pkg/infras/cache"
	"github.com/binjuhor/likepost/pkg/infras/database"
	"github.com/binjuhor/likepost/pkg/infras/mq"
	"github.com/binjuhor/likepost/pkg/logging"
	"github.com/binjuhor/likepost/pkg/notify"
	"github.com/binjuhor/likepost/pkg/ratelimit"
	"github.com/binjuhor/likepost/pkg/router"
	"github.com/binjuhor/likepost/pkg/service"
	"github.com/binjuhor/likepost/pkg/store"
)

var webServerCmd = &cobra.Command{
	Use:   "webserver",
	Short: "webserver start http server.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		logging.InitLogger()
		catalog.InitPostData()
		database.InitDBClient(ctx)
		cache.InitRedisClient(ctx)
		mq.InitRabbitMQ()
		defer mq.Close()

		dispatcher := notify.NewDispatcher(
			newNotifier(),
			time.Duration(envs.NotifyTimeoutSeconds)*time.Second,
			logging.GetNotifyLogger(),
		)
		defer dispatcher.Stop()

		svc := service.New(
			store.NewLikeStore(),
			newLimiter(),
			catalog.Default(),
			dispatcher,
			service.Config{SiteName: envs.SiteName, AdminEmail: envs.AdminEmail},
		)
		handler.Init(svc)

		color.Green("Starting server at http://0.0.0.0:%s/", envs.ServerPort)
		router.InitRouter()
	},
}

// 配置了 Redis 时使用 Redis 限流器（多实例共享窗口），否则使用进程内限流器
func newLimiter() ratelimit.Limiter {
	window := time.Duration(envs.RateLimitSeconds) * time.Second
	if cache.Enabled() {
		return ratelimit.NewRedisLimiter(cache.Client(), window)
	}
	return ratelimit.NewMemoryLimiter(window)
}

// 配置了 RabbitMQ 时通知投递到队列，否则仅打印日志
func newNotifier() notify.Notifier {
	if mq.Enabled() {
		return notify.NewAMQPNotifier(mq.Channel(), envs.RabbitMQQueue)
	}
	return notify.NewLogNotifier(logging.GetNotifyLogger())
}

func init() {
	rootCmd.AddCommand(webServerCmd)
}
