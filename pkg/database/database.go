package database

import (
	"bjj_academy_backend/internal/config"
	"bjj_academy_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 建立连接；release 模式默认跳过迁移，除非显式要求
func InitDB(cfg *config.DatabaseConfig, runMigrations bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !runMigrations {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.Drill{},
		&model.SparringVideo{},
		&model.Interaction{},
		&model.Purchase{},
		&model.Subscription{},
		&model.Payment{},
		&model.TrainingLog{},
		&model.FeedPost{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认技术分类（空库时插入演示磨合动作）
	var count int64
	db.Model(&model.Drill{}).Count(&count)
	if count == 0 {
		defaultDrills := []model.Drill{
			{Title: "Hip escape on the wall", Category: "Guard", Difficulty: model.Beginner, Description: "Shrimping fundamentals against the wall"},
			{Title: "Armbar from closed guard", Category: "Guard", Difficulty: model.Intermediate, Description: "Closed guard armbar repetitions"},
			{Title: "Double leg entry", Category: "Standing", Difficulty: model.Beginner, Description: "Level change and penetration step"},
			{Title: "Knee cut pass", Category: "Passing", Difficulty: model.Intermediate, Description: "Knee slice with cross-face control"},
		}
		for i, d := range defaultDrills {
			d.IsDailyFree = i == 0
			db.Create(&d)
		}
	}

	return db, nil
}
