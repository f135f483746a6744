// seed 向数据库写入一组示例数据(作者、分类、图书、副本)
//
//	go run ./cmd/seed
//
// 全部写入在同一个事务中完成,任一步失败整体回滚。
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/logger"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := mysql.NewDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("初始化数据库失败", zap.Error(err))
	}

	s := &seeder{
		tx:        mysql.NewTxManager(db),
		authors:   mysql.NewAuthorRepository(db),
		genres:    mysql.NewGenreRepository(db),
		books:     mysql.NewBookRepository(db),
		instances: mysql.NewBookInstanceRepository(db),
	}

	stats, err := s.Run(context.Background())
	if err != nil {
		zlog.Fatal("写入示例数据失败", zap.Error(err))
	}

	zlog.Info("示例数据写入完成",
		zap.Int("authors", stats.Authors),
		zap.Int("genres", stats.Genres),
		zap.Int("books", stats.Books),
		zap.Int("instances", stats.Instances))
}
