package ports

import (
	"context"
)

type ProxyConfig struct {
	Enabled  bool
	Server   string
	Port     int32
	Username string
	Password string
}

type AccountConfig struct {
	Name       string
	Username   string
	Password   string
	DeviceSeed string
	LangCode   string
	Proxy      *ProxyConfig
}

type AccountConfigRepo interface {
	// Возвращает список доступных аккаунтов (по именам директорий)
	ListAccounts(ctx context.Context) ([]string, error)

	// Загружает конфиг для конкретного аккаунта
	GetAccountConfig(ctx context.Context, name string) (*AccountConfig, error)
}
