// Package database 数据库操作
package database

import (
	"database/sql"
	"fmt"

	"arcana/pkg/database/migrations"
	"arcana/pkg/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB 对象
var DB *gorm.DB
var SQLDB *sql.DB

// Connect 连接数据库
func Connect(dbConfig gorm.Dialector, _logger gormlogger.Interface) error {
	// 使用 gorm.Open 连接数据库
	db, err := gorm.Open(dbConfig, &gorm.Config{
		Logger: _logger,
	})
	if err != nil {
		logger.ErrorString("数据库", "连接", err.Error())
		return fmt.Errorf("failed to connect database: %w", err)
	}

	// 获取底层的 sqlDB
	sqlDB, err := db.DB()
	if err != nil {
		logger.ErrorString("数据库", "获取底层SQL", err.Error())
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	DB, SQLDB = db, sqlDB
	return nil
}

// AutoMigrate 自动迁移所有数据表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(migrations.RegisterTables()...)
}

// OpenInMemory 打开一个以 name 区分的内存 SQLite 数据库并完成迁移
// 单连接，避免共享缓存下的表锁
func OpenInMemory(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
