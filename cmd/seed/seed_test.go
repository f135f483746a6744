package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/domain/bookinstance"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
)

func newSeeder(t *testing.T) *seeder {
	t.Helper()
	db, err := mysql.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, mysql.AutoMigrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	return &seeder{
		tx:        mysql.NewTxManager(db),
		authors:   mysql.NewAuthorRepository(db),
		genres:    mysql.NewGenreRepository(db),
		books:     mysql.NewBookRepository(db),
		instances: mysql.NewBookInstanceRepository(db),
	}
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	s := newSeeder(t)

	stats, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Authors: 5, Genres: 3, Books: 7, Instances: 11}, stats)

	available, err := s.instances.CountByStatus(ctx, bookinstance.StatusAvailable)
	require.NoError(t, err)
	assert.EqualValues(t, 5, available)

	list, err := s.instances.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, bookinstance.StatusMaintenance, list[2].Status, "未指定状态时默认Maintenance")
}

func TestSeeder_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	s := newSeeder(t)

	_, err := s.Run(ctx)
	require.NoError(t, err)

	// 分类名唯一,第二次写入失败,整个事务回滚
	_, err = s.Run(ctx)
	require.ErrorIs(t, err, genre.ErrGenreDuplicate)

	total, err := s.authors.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total, "第二次写入的作者已回滚")
}
