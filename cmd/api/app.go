package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
)

// App 注入器的产出
type App struct {
	Engine *gin.Engine
	DB     *gorm.DB
}

// provideDB 创建数据库连接,cleanup关闭连接池
func provideDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("关闭数据库连接失败", zap.Error(err))
		}
	}
	return db, cleanup, nil
}
