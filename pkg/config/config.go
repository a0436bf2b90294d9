package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config regroupe la configuration de l'application (lecture via Viper depuis env et optionnellement fichier).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Auth    AuthConfig
	Reco    RecoConfig
}

// AppConfig configuration générale de l'application.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuration du serveur HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr renvoie l'adresse d'écoute (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig configuration du stockage de session.
// FilePath est l'emplacement du fichier JSON qui tient lieu de slot durable :
// une seule clé, une seule identité, comme le localStorage du front d'origine.
type SessionConfig struct {
	FilePath string
}

// AuthConfig latences simulées du service d'authentification mock
// (en millisecondes dans l'environnement; les tests les mettent à zéro).
type AuthConfig struct {
	LoginDelay    time.Duration
	RegisterDelay time.Duration
}

// RecoConfig latence simulée de l'assistant de recommandation.
type RecoConfig struct {
	Delay time.Duration
}

// Load lit la configuration depuis les variables d'environnement (et optionnellement depuis fichier).
// Les env vars ont priorité. Noms attendus : APP_ENV, HTTP_PORT, SESSION_FILE, AUTH_LOGIN_DELAY_MS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optionnel : fichier de configuration (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // on ignore l'erreur si le fichier n'existe pas

	// Tente aussi config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // on ignore l'erreur si le fichier n'existe pas

	// Bind des variables d'environnement (Viper les lit automatiquement avec AutomaticEnv)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "phynteck"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			FilePath: getString(v, "SESSION_FILE", "session.json"),
		},
		Auth: AuthConfig{
			LoginDelay:    time.Duration(getInt(v, "AUTH_LOGIN_DELAY_MS", 1000)) * time.Millisecond,
			RegisterDelay: time.Duration(getInt(v, "AUTH_REGISTER_DELAY_MS", 2000)) * time.Millisecond,
		},
		Reco: RecoConfig{
			Delay: time.Duration(getInt(v, "RECO_DELAY_MS", 1500)) * time.Millisecond,
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
