// 手动触发今日免费动作轮换脚本
//
// 轮换已集成到主应用的后台定时任务中（每 24 小时自动执行一次）。
// 此脚本仅用于手动触发，例如首次部署或免费条目被误删后。
//
// 用法: go run scripts/rotate_daily_free.go

package main

import (
	"bjj_academy_backend/internal/config"
	"bjj_academy_backend/internal/repository"
	"bjj_academy_backend/internal/service"
	"bjj_academy_backend/pkg/database"
	"bjj_academy_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	drillRepo := repository.NewDrillRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	drills := service.NewDrillService(drillRepo, interactionRepo, nil)

	log.Println("手动触发免费动作轮换...")
	if err := drills.RotateDailyFree(); err != nil {
		log.Fatalf("轮换失败: %v", err)
	}
	log.Println("完成！")
}
