package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr   string
	Port         string
	APIKey       string
	DatabasePath string
	SiteName     string
	StaticDir    string
	GinMode      string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
// PAGES_API_KEY 是唯一的写入凭证，没有默认值，缺失时拒绝启动。
func Load() (AppConfig, error) {
	apiKey := strings.TrimSpace(os.Getenv("PAGES_API_KEY"))
	if apiKey == "" {
		return AppConfig{}, errors.New("PAGES_API_KEY is required")
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "dabipages.db"
	}

	siteName := strings.TrimSpace(os.Getenv("SITE_NAME"))
	if siteName == "" {
		siteName = "Dabby"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "web/static"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	return AppConfig{
		ListenAddr:   listenAddr,
		Port:         port,
		APIKey:       apiKey,
		DatabasePath: databasePath,
		SiteName:     siteName,
		StaticDir:    staticDir,
		GinMode:      ginMode,
	}, nil
}
