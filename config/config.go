package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
    Port           string
    WebhookURL     string // pre-authorized CRM webhook base address
    ExportDir      string
    ExportBaseName string
    ImportFile     string // default spreadsheet for the import endpoint
    LogLevel       string
}

func Load() Config {
    _ = godotenv.Load()
    cfg := Config{
        Port:           get("PORT", "8080"),
        WebhookURL:     must("BITRIX_WEBHOOK_URL"),
        ExportDir:      get("EXPORT_DIR", "."),
        ExportBaseName: get("EXPORT_BASE_NAME", "candidates"),
        ImportFile:     get("IMPORT_FILE", "test_crm.xlsx"),
        LogLevel:       get("LOG_LEVEL", "info"),
    }
    return cfg
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		logrus.Fatalf("missing required env: %s", k)
	}
	return v
}
