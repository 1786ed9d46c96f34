package database

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
)

// 数据库迁移集，迁移文件通过 init() 注册
type migrationSet struct {
	mu      sync.Mutex
	mapping map[string]*gormigrate.Migration
}

func (s *migrationSet) register(m *gormigrate.Migration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mapping[m.ID]; ok {
		return errors.Errorf("migration %s already registered", m.ID)
	}
	s.mapping[m.ID] = m
	return nil
}

// 按迁移 ID（时间戳格式）排序返回
func (s *migrationSet) all() []*gormigrate.Migration {
	s.mu.Lock()
	defer s.mu.Unlock()

	migrations := make([]*gormigrate.Migration, 0, len(s.mapping))
	for _, m := range s.mapping {
		migrations = append(migrations, m)
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].ID < migrations[j].ID
	})
	return migrations
}

var (
	migSet         *migrationSet
	migSetInitOnce sync.Once
)

// 初始化数据库迁移集
func getMigrationSet() *migrationSet {
	migSetInitOnce.Do(func() {
		migSet = &migrationSet{
			mapping: map[string]*gormigrate.Migration{},
		}
	})
	return migSet
}

// RegisterMigration 注册迁移文件
func RegisterMigration(m *gormigrate.Migration) {
	if err := getMigrationSet().register(m); err != nil {
		log.Fatalf("failed to register migration: %s", err)
	}
}

// GenMigrationID 生成迁移 ID（当前时间戳）
func GenMigrationID() string {
	return time.Now().Format("20060102_150405")
}

// RunMigrate 执行数据库迁移，migrationID 为空时迁移至最新版本
func RunMigrate(ctx context.Context, migrationID string) error {
	m := gormigrate.New(Client(ctx), gormigrate.DefaultOptions, getMigrationSet().all())
	if migrationID == "" {
		return m.Migrate()
	}
	return m.MigrateTo(migrationID)
}

// Version 获取当前数据库版本（最后一次应用的迁移 ID）
func Version(ctx context.Context) (string, error) {
	var dbVersion string
	err := Client(ctx).
		Table(gormigrate.DefaultOptions.TableName).
		Select(gormigrate.DefaultOptions.IDColumnName).
		Order(gormigrate.DefaultOptions.IDColumnName + " DESC").
		Limit(1).
		Scan(&dbVersion).
		Error
	if err != nil {
		return "", err
	}
	if dbVersion == "" {
		dbVersion = "nil"
	}
	return dbVersion, nil
}
