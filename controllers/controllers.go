package controllers

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/The-Hackers-Corner/thc-website/services"
)

var (
	db          *gorm.DB
	submissions *services.SubmissionService
	ranking     *services.RankingService
	stats       *services.StatsService
)

// Init 注入数据库句柄并组装各服务，必须在注册路由前调用
func Init(gdb *gorm.DB, rdb *redis.Client) {
	db = gdb
	submissions = services.NewSubmissionService(gdb)
	ranking = services.NewRankingService(gdb, rdb)
	stats = services.NewStatsService(gdb, ranking)
}
