package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

const (
	// Порт по умолчанию для HTTP (непривилегированный).
	defaultServerPort = "8080"

	// Каталог с миграциями схемы БД по умолчанию.
	defaultMigrationsPath = "migrations"

	// Переменные окружения.
	envServerPort     = "SERVER_PORT"
	envTLSCertFile    = "TLS_CERT_FILE"
	envTLSKeyFile     = "TLS_KEY_FILE"
	envDatabaseDSN    = "DATABASE_DSN"
	envJWTSecretKey   = "JWT_SECRET_KEY" //nolint:gosec // Ложное срабатывание, это имя переменной окружения
	envMigrationsPath = "MIGRATIONS_PATH"
)

// config хранит конфигурацию сервера.
type config struct {
	Port           string
	CertFile       string
	KeyFile        string
	DatabaseDSN    string
	JWTSecretKey   string
	MigrationsPath string
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
func parseFlags() (*config, error) {
	cfg := &config{}

	// Определяем флаги
	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт для запуска сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.CertFile, "cert-file", "",
		fmt.Sprintf("Путь к файлу TLS-сертификата, опционально (env: %s)", envTLSCertFile))
	flag.StringVar(&cfg.KeyFile, "key-file", "",
		fmt.Sprintf("Путь к файлу TLS-ключа, опционально (env: %s)", envTLSKeyFile))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecretKey, "jwt-secret", "",
		fmt.Sprintf("Секретный ключ для подписи JWT токенов (env: %s)", envJWTSecretKey))
	flag.StringVar(&cfg.MigrationsPath, "migrations-path", "",
		fmt.Sprintf("Каталог с миграциями схемы БД (env: %s, default: %s)", envMigrationsPath, defaultMigrationsPath))

	// Парсим флаги
	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	if cfg.Port == "" {
		if value, ok := os.LookupEnv(envServerPort); ok {
			cfg.Port = value
		} else {
			cfg.Port = defaultServerPort
		}
	}
	if cfg.CertFile == "" {
		if value, ok := os.LookupEnv(envTLSCertFile); ok {
			cfg.CertFile = value
		}
	}
	if cfg.KeyFile == "" {
		if value, ok := os.LookupEnv(envTLSKeyFile); ok {
			cfg.KeyFile = value
		}
	}
	if cfg.DatabaseDSN == "" {
		if value, ok := os.LookupEnv(envDatabaseDSN); ok {
			cfg.DatabaseDSN = value
		}
	}
	if cfg.JWTSecretKey == "" {
		if value, ok := os.LookupEnv(envJWTSecretKey); ok {
			cfg.JWTSecretKey = value
		}
	}
	if cfg.MigrationsPath == "" {
		if value, ok := os.LookupEnv(envMigrationsPath); ok {
			cfg.MigrationsPath = value
		} else {
			cfg.MigrationsPath = defaultMigrationsPath
		}
	}

	// Проверяем обязательные параметры
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecretKey == "" {
		return nil, errors.New("не указан секретный ключ JWT (--jwt-secret или " + envJWTSecretKey + ")")
	}

	// TLS-сертификат и ключ либо указаны оба, либо не указан ни один
	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return nil, errors.New("TLS-сертификат и ключ должны быть указаны вместе (--cert-file и --key-file)")
	}

	return cfg, nil
}
