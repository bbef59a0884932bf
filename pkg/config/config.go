package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App          AppConfig
	JWT          JWTConfig
	HTTP         HTTPConfig
	Simulation   SimulationConfig
	Notification NotificationConfig
	Workflow     WorkflowConfig
	Seed         bool // carga los registros de demostración al arrancar
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SimulationConfig retardos de los dispositivos simulados (lector biométrico, consulta de CA, descarga).
// En producción se reemplazan por drivers reales; la lógica de negocio no depende de estos valores.
type SimulationConfig struct {
	BiometricScan    time.Duration
	BiometricCapture time.Duration
	CAValidation     time.Duration
	ReportDownload   time.Duration
}

// NotificationConfig controla el auto-descarte de las notificaciones.
type NotificationConfig struct {
	TTL time.Duration
}

// WorkflowConfig parámetros de la confirmación biométrica de procesos.
type WorkflowConfig struct {
	ConfirmationTTL time.Duration // una confirmación abierta más tiempo que esto se descarta
}

const devJWTSecret = "epi-console-dev-secret"

// ErrMissingJWTSecret se devuelve cuando APP_ENV=production y no hay JWT_SECRET.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET es obligatorio en producción")

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, SIM_*, etc.
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
			Name:     getString(v, "APP_NAME", "epi-console"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "epi-console"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Simulation: SimulationConfig{
			BiometricScan:    getMillis(v, "SIM_BIOMETRIC_SCAN_MS", 2000),
			BiometricCapture: getMillis(v, "SIM_BIOMETRIC_CAPTURE_MS", 2000),
			CAValidation:     getMillis(v, "SIM_CA_VALIDATION_MS", 1500),
			ReportDownload:   getMillis(v, "SIM_REPORT_DOWNLOAD_MS", 1000),
		},
		Notification: NotificationConfig{
			TTL: time.Duration(getInt(v, "NOTIFICATION_TTL_SECONDS", 10)) * time.Second,
		},
		Workflow: WorkflowConfig{
			ConfirmationTTL: time.Duration(getInt(v, "CONFIRMATION_TTL_SECONDS", 900)) * time.Second,
		},
		Seed: getBool(v, "SEED_MOCK_DATA", true),
	}

	if cfg.JWT.Secret == "" {
		if cfg.App.Env == "production" {
			return nil, ErrMissingJWTSecret
		}
		cfg.JWT.Secret = devJWTSecret
	}
	return cfg, nil
}

// UsingDevSecret informa si se está usando el secreto JWT de desarrollo.
func (c *Config) UsingDevSecret() bool {
	return c.JWT.Secret == devJWTSecret
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

func getMillis(v *viper.Viper, key string, def int) time.Duration {
	ms := getInt(v, key, def)
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}
