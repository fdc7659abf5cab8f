package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/db"
)

// HealthCheck 检查数据库连通性，并报告尚未创建的单例页面。
// 缺失的页面会在首次访问时创建，因此不影响健康状态。
func (a *API) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "database": "down"})
		return
	}

	missing, err := a.pages.Missing(ctx)
	if err != nil {
		respondInternal(c, err, "health check pages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
		"pages": gin.H{
			"provisioned": len(db.PageKinds) - len(missing),
			"missing":     missing,
		},
	})
}
