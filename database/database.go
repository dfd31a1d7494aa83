// Package database 启动时选择存储后端。
package database

import (
	"context"
	"fmt"
	"log"

	"expensebook/cache"
	"expensebook/config"
	"expensebook/models"
	"expensebook/store"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 存储驱动
const (
	DriverAuto     = "auto"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// EmbeddedSQLAvailable 当前二进制是否支持嵌入式 SQL（sqlite）
func EmbeddedSQLAvailable() bool {
	return embeddedSQLAvailable
}

// ResolveDriver 把 auto 解析成具体驱动
func ResolveDriver(driver string, embedded bool) string {
	if driver == "" || driver == DriverAuto {
		if embedded {
			return DriverSQLite
		}
		return DriverMemory
	}
	return driver
}

// Open 根据配置打开存储并完成建表，进程启动时调用一次
func Open(ctx context.Context, cfg *config.Config) (store.Store, error) {
	driver := ResolveDriver(cfg.Storage.Driver, embeddedSQLAvailable)
	log.Printf("存储后端: %s", driver)

	var s store.Store
	switch driver {
	case DriverMemory:
		mem := store.NewMemoryStore()
		if cfg.Storage.Memory.SeedSample {
			if _, err := mem.Seed(ctx, models.SampleExpenses()); err != nil {
				return nil, fmt.Errorf("写入示例数据失败: %w", err)
			}
			log.Println("已写入内存示例数据")
		}
		s = mem
	case DriverSQLite, DriverMySQL, DriverPostgres:
		db, err := openGorm(driver, cfg)
		if err != nil {
			return nil, err
		}
		s = store.NewGormStore(db)
	default:
		return nil, fmt.Errorf("未知的存储驱动: %s", driver)
	}

	if err := s.Init(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("初始化数据表失败: %w", err)
	}

	if cfg.Cache.Redis.Enabled {
		rc, err := cache.NewRedis(cfg.Cache.Redis)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s = store.NewCached(s, rc)
		log.Println("已启用 redis 列表缓存")
	}

	log.Println("数据库初始化成功")
	return s, nil
}

func openGorm(driver string, cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		if !embeddedSQLAvailable {
			return nil, fmt.Errorf("当前构建不支持 sqlite（需要 CGO_ENABLED=1）")
		}
		dialector = sqlite.Open(cfg.Storage.SQLite.Path)
	case DriverMySQL:
		dialector = mysql.Open(cfg.Storage.MySQL.DSN())
	case DriverPostgres:
		dialector = postgres.Open(cfg.Storage.Postgres.DSN)
	}

	logLevel := logger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// sqlite 单文件，串行写入
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	return db, nil
}
