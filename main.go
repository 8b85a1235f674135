package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"candidatesync/backend/bitrix"
	"candidatesync/backend/config"
	"candidatesync/backend/middlewares"
	"candidatesync/backend/pipeline"
	"candidatesync/backend/routes"
)

func main() {
    cfg := config.Load()
    setupLogging(cfg.LogLevel)

    crm := bitrix.New(cfg.WebhookURL)
    exp := pipeline.NewExporter(crm, cfg.ExportDir, cfg.ExportBaseName)
    imp := pipeline.NewImporter(crm)

    r := gin.Default()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	r.Use(middlewares.RequestID())
	routes.Register(r, cfg, exp, imp)
	logrus.Printf("server on :%s", cfg.Port)
	r.Run(":" + cfg.Port)
}

func setupLogging(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
