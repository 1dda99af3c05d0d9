package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"bookmate_server/internal/config"
	dao "bookmate_server/internal/dao/mysql"
	myredis "bookmate_server/internal/dao/redis"
	"bookmate_server/internal/handler"
	"bookmate_server/internal/httpserver"
	"bookmate_server/internal/infrastructure/logger"
	"bookmate_server/internal/infrastructure/mq"
	"bookmate_server/internal/service"
	"bookmate_server/pkg/util/jwt"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库（含建表与字典种子）
	repos := dao.Init(conf)
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 Redis 缓存
	redisClient := myredis.NewClient(&conf.RedisConfig)
	cache := myredis.NewRedisCache(redisClient, conf.RedisConfig.WorkerNum, conf.RedisConfig.TaskChanSize)
	zap.L().Info("Redis 初始化成功")

	// 5. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 初始化成功")

	// 6. 初始化通知事件发布器（notifyMode=none 时为空实现）
	publisher := mq.NewPublisher(&conf.KafkaConfig)

	// 7. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// 8. 依赖注入：Repository -> Service -> Handler
	svcs := service.NewServices(repos, cache, publisher)
	handlers := handler.NewHandlers(svcs)

	// 9. 初始化 HTTP 服务器
	engine := httpserver.Init(handlers)

	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("服务启动成功", zap.String("host", conf.MainConfig.Host), zap.Int("port", conf.MainConfig.Port))

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	if err := publisher.Close(); err != nil {
		zap.L().Warn("close notify publisher failed", zap.Error(err))
	}
	cache.Close()
	zap.L().Info("服务器已关闭")
}
