package app

import (
	"database/sql"

	"github.com/allwinajith/elms/internal/config"
	"github.com/allwinajith/elms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections of one process.
type Infra struct {
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
}

// Connect opens postgres and, when REDIS_ADDR is set, redis.
func Connect(cfg *config.Config, withRedis bool) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	infra := &Infra{GormDB: gormDB, DB: sqlDB}

	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		if rdb == nil {
			zap.L().Warn("REDIS_ADDR not set; leave type cache and idempotency keys disabled")
		}
		infra.Redis = rdb
	}

	return infra, nil
}

// BuildApp connects the infrastructure and mounts every module on router.
// The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	infra, err := Connect(cfg, true)
	if err != nil {
		return nil, err
	}

	if err := registerModules(router, cfg, infra); err != nil {
		infra.Close()
		return nil, err
	}

	return infra.Close, nil
}
