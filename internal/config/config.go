package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	SQLite   SQLiteConfig
	JWT      JWTConfig
	CORS     CORSConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	Mode         string `mapstructure:"mode"` // "debug" или "release"
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// SQLiteConfig содержит настройки локального хранилища для
// варианта развертывания «обработчик на вызов»
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// JWTConfig содержит настройки JWT
type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	ExpirationHrs int    `mapstructure:"expirationHrs"`
}

// CORSConfig содержит список разрешенных origin-ов
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Validate проверяет, что конфигурация PostgreSQL достаточна для подключения
func (d *DatabaseConfig) Validate() error {
	if d.Host == "" || d.DBName == "" || d.User == "" {
		return fmt.Errorf("database configuration (host, dbname, user) is incomplete (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	return nil
}

// Load загружает конфигурацию из файла и переменных окружения.
// Секрет подписи токенов обязателен: без него загрузка завершается ошибкой.
func Load(configPath string) (*Config, error) {
	vip := viper.New() // отдельный экземпляр, чтобы избежать глобального состояния

	// Значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 10)
	vip.SetDefault("server.mode", "debug")
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("sqlite.path", "/tmp/vocab_app.db")
	vip.SetDefault("jwt.expirationHrs", 24)

	// Привязываем переменные окружения явно
	_ = vip.BindEnv("server.port", "SERVER_PORT")
	_ = vip.BindEnv("server.mode", "SERVER_MODE")
	_ = vip.BindEnv("database.host", "DATABASE_HOST")
	_ = vip.BindEnv("database.port", "DATABASE_PORT")
	_ = vip.BindEnv("database.user", "DATABASE_USER")
	_ = vip.BindEnv("database.password", "DATABASE_PASSWORD")
	_ = vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	_ = vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	_ = vip.BindEnv("sqlite.path", "SQLITE_PATH")
	_ = vip.BindEnv("jwt.secret", "JWT_SECRET")
	_ = vip.BindEnv("jwt.expirationHrs", "JWT_EXPIRATIONHRS")
	_ = vip.BindEnv("cors.allow_origins", "CORS_ALLOW_ORIGINS")

	if configPath != "" {
		vip.SetConfigFile(configPath)
		// Отсутствие файла не фатально: значения могут прийти из окружения
		if err := vip.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT signing secret is required (check JWT_SECRET env var)")
	}

	return &cfg, nil
}
