package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// 迁移脚本随二进制一起嵌入发布，部署无需携带 SQL 文件
//
//go:embed migrations/*.sql
var schemaFS embed.FS

// RunMigrations 将 campus-core 数据库结构升级到最新版本
// 服务启动时调用，幂等：结构已是最新时直接返回
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(schemaFS, "migrations")
	if err != nil {
		return fmt.Errorf("读取内嵌迁移脚本失败: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("初始化 postgres 迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "campus_core", driver)
	if err != nil {
		return fmt.Errorf("构建迁移实例失败: %w", err)
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("数据库结构已是最新，跳过迁移")
	case err != nil:
		return fmt.Errorf("应用数据库迁移失败: %w", err)
	default:
		version, dirty, _ := m.Version()
		if dirty {
			logger.Warn("迁移版本处于 dirty 状态，需人工修复", zap.Uint("version", version))
		} else {
			logger.Info("数据库迁移完成", zap.Uint("version", version))
		}
	}

	return nil
}
