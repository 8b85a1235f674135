package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("BITRIX_WEBHOOK_URL", "https://example.bitrix24.ru/rest/1/hook/")
	defer os.Unsetenv("BITRIX_WEBHOOK_URL")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.ExportDir != "." {
		t.Errorf("ExportDir = %q, want %q", cfg.ExportDir, ".")
	}
	if cfg.ExportBaseName != "candidates" {
		t.Errorf("ExportBaseName = %q, want %q", cfg.ExportBaseName, "candidates")
	}
	if cfg.ImportFile != "test_crm.xlsx" {
		t.Errorf("ImportFile = %q, want %q", cfg.ImportFile, "test_crm.xlsx")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("BITRIX_WEBHOOK_URL", "https://example.bitrix24.ru/rest/1/hook/")
	os.Setenv("PORT", "9090")
	os.Setenv("EXPORT_DIR", "/tmp/exports")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("BITRIX_WEBHOOK_URL")
		os.Unsetenv("PORT")
		os.Unsetenv("EXPORT_DIR")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.ExportDir != "/tmp/exports" {
		t.Errorf("ExportDir = %q, want %q", cfg.ExportDir, "/tmp/exports")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.WebhookURL != "https://example.bitrix24.ru/rest/1/hook/" {
		t.Errorf("WebhookURL = %q", cfg.WebhookURL)
	}
}
