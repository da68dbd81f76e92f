package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App          AppConfig
	HTTP         HTTPConfig
	InventoryAPI InventoryAPIConfig
	Console      ConsoleConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InventoryAPIConfig conexión con el API REST de inventario.
// La URL base queda fija al arrancar; los endpoints se anexan a ella.
type InventoryAPIConfig struct {
	BaseURL    string
	Timeout    time.Duration
	JWTSecret  string // vacío = sin header Authorization
	JWTIssuer  string
	JWTSubject string
}

// ConsoleConfig opciones de presentación.
type ConsoleConfig struct {
	Locale   string        // BCP 47, ej. es-CO
	ToastTTL time.Duration // auto-cierre de notificaciones
	DocsFile string        // swagger.json servido en /docs; vacío = deshabilitado
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, INVENTORY_API_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-console"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		InventoryAPI: InventoryAPIConfig{
			BaseURL:    strings.TrimRight(getString(v, "INVENTORY_API_BASE_URL", "http://localhost:8080/api/inventario"), "/"),
			Timeout:    time.Duration(getInt(v, "INVENTORY_API_TIMEOUT_SECONDS", 15)) * time.Second,
			JWTSecret:  getString(v, "INVENTORY_API_JWT_SECRET", ""),
			JWTIssuer:  getString(v, "INVENTORY_API_JWT_ISSUER", "inventario-console"),
			JWTSubject: getString(v, "INVENTORY_API_JWT_SUBJECT", "consola-admin"),
		},
		Console: ConsoleConfig{
			Locale:   getString(v, "CONSOLE_LOCALE", "es-CO"),
			ToastTTL: time.Duration(getInt(v, "TOAST_TTL_SECONDS", 5)) * time.Second,
			DocsFile: getString(v, "DOCS_FILE", "./docs/swagger.json"),
		},
	}

	u, err := url.Parse(cfg.InventoryAPI.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("config: INVENTORY_API_BASE_URL inválida: %q", cfg.InventoryAPI.BaseURL)
	}
	if cfg.InventoryAPI.Timeout <= 0 {
		return nil, fmt.Errorf("config: INVENTORY_API_TIMEOUT_SECONDS debe ser positivo")
	}
	if cfg.Console.ToastTTL <= 0 {
		return nil, fmt.Errorf("config: TOAST_TTL_SECONDS debe ser positivo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
