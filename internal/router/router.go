package router

import (
	"strings"

	"github.com/dabipages/internal/config"
	"github.com/dabipages/internal/handler"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Setup 配置 Gin 引擎和路由。
// 公共读取路径不做鉴权；所有写操作集中在带 API key 中间件的分组里。
func Setup(cfg config.AppConfig, api *handler.API) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	r.Use(requestID())
	r.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// 静态文件服务，与页面存储互相独立
	r.Static("/static", cfg.StaticDir)

	// 公共页面
	r.GET("/pages", api.ShowPageIndex)
	r.GET("/pages/:slug", api.ShowPage)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/pages", api.ListPages)
		apiGroup.GET("/pages/:slug", api.GetPage)

		// 需要认证的写入路由
		auth := apiGroup.Group("")
		auth.Use(api.RequireAPIKey())
		{
			auth.POST("/pages", api.CreatePage)
			auth.PUT("/pages/:slug", api.UpdatePage)
			auth.PATCH("/pages/:slug", api.UpdatePage)
			auth.DELETE("/pages/:slug", api.DeletePage)
		}
	}

	return r
}

// requestID tags every response with an identifier for log correlation,
// reusing an inbound X-Request-ID when the caller supplies one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
