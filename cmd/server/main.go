package main

import (
	"log"

	"github.com/dabipages/internal/config"
	"github.com/dabipages/internal/db"
	"github.com/dabipages/internal/handler"
	"github.com/dabipages/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 设置并运行 Gin 服务器
	api := handler.NewAPI(db.DB, cfg)
	r := router.Setup(cfg, api)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
