package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"bcdiag/config"
	qhttp "bcdiag/http"
	"bcdiag/logger"
	"bcdiag/ml"
	"bcdiag/monitoring"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "bcdiag: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) (err error) {
	// 1. 加载 .env（可选）和配置
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. 初始化日志
	log, level := logger.New(cfg.LoggerConfig())
	zap.ReplaceGlobals(log)
	defer func() {
		// 部分终端上 stdout 的 Sync 会失败，只关心文件输出
		if syncErr := log.Sync(); syncErr != nil && cfg.Log.File.Path != "" {
			err = multierr.Append(err, syncErr)
		}
	}()

	// 3. 加载模型
	classifier, err := ml.LoadModel(cfg.Model.Type)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	meta := ml.ModelMetadata()
	log.Info("model loaded",
		zap.String("model_type", meta.ModelType),
		zap.Int("n_features", meta.NFeatures),
		zap.Bool("demo_mode", ml.DemoMode),
	)

	// 4. 配置热更新日志级别
	watcher, watchErr := config.Watch(configPath, log, func(newCfg *config.Config) {
		level.SetLevel(logger.ParseLevel(newCfg.Log.Level))
		log.Info("config reloaded", zap.String("log_level", newCfg.Log.Level))
	})
	if watchErr != nil {
		log.Warn("config watcher disabled", zap.Error(watchErr))
	}

	// 5. 启动HTTP服务器
	collector := monitoring.NewCollector(monitoring.DefaultMaxRoutes)
	handlers := qhttp.NewHandlers(classifier, collector, log)
	server := qhttp.NewServer(qhttp.ServerConfig{
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, handlers, collector, log)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// 6. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
		err = multierr.Append(err, server.Stop())
	case startErr := <-serverErr:
		err = multierr.Append(err, startErr)
	}

	if watcher != nil {
		err = multierr.Append(err, watcher.Close())
	}

	log.Info("exiting")
	return err
}
