// @title Web3 Journey 后端 API
// @version 1.0
// @description Web3 学习平台的后端服务：课程目录、学习进度、连续打卡、成就、AI 助手与证书铸造。

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"
	"web3_journey_backend/internal/app"
	"web3_journey_backend/internal/config"
	"web3_journey_backend/pkg/configwatcher"
	"web3_journey_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置文件热加载，目前只对日志级别等非连接类配置生效
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("configuration reloaded")
	})

	application.Run()
}
