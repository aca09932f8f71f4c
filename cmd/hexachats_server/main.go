package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hexachats_server/internal/config"
	dao "hexachats_server/internal/dao/mysql"
	myredis "hexachats_server/internal/dao/redis"
	"hexachats_server/internal/handler"
	"hexachats_server/internal/http_server"
	"hexachats_server/internal/infrastructure/email"
	"hexachats_server/internal/infrastructure/logger"
	"hexachats_server/internal/infrastructure/storage"
	"hexachats_server/internal/service"
	"hexachats_server/internal/service/chat"
	"hexachats_server/pkg/util/jwt"
	"hexachats_server/pkg/util/snowflake"
)

func main() {
	conf := config.GetConfig()

	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger ready")

	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	dao.Init()
	zap.L().Info("mysql ready")

	myredis.Init()
	zap.L().Info("redis ready")

	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	snowflake.Init()

	mailer := email.NewClient(&conf.EmailConfig)
	uploader, err := storage.NewS3Store(context.Background(), &conf.StorageConfig)
	if err != nil {
		zap.L().Fatal("init object storage failed", zap.Error(err))
	}

	service.InitServices(service.Deps{
		Repos:      dao.Repos,
		Cache:      myredis.Cache,
		Uploader:   uploader,
		Mailer:     mailer,
		AdminEmail: conf.AdminConfig.AdminEmail,
	})
	zap.L().Info("services ready")

	chatServer := chat.InitChatServer(chat.ChatServerConfig{
		Mode:         conf.KafkaConfig.MessageMode,
		Repos:        dao.Repos,
		CacheService: myredis.Cache,
	})
	chatServer.InitKafka()
	service.Svc.AttachPusher(chatServer)
	go chatServer.Start()
	zap.L().Info("chat server ready", zap.String("mode", conf.KafkaConfig.MessageMode))

	handlers := handler.NewHandlers(service.Svc)
	engine := http_server.Init(handlers, service.Svc.User)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	go func() {
		zap.L().Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// The listener drains before the chat server closes, so in-flight
	// requests cannot publish into a closed broker.
	zap.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("http shutdown failed", zap.Error(err))
	}
	chatServer.Close()
	zap.L().Info("bye")
}
