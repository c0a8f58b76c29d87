package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Data        DataConfig        `mapstructure:"data"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	CORS        CORSConfig        `mapstructure:"cors"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Propagation PropagationConfig `mapstructure:"propagation"`
	Recruiters  []string          `mapstructure:"recruiters"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DataConfig holds the location of the persisted tables.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// JWTConfig holds token issuance configuration.
type JWTConfig struct {
	Secret            string `mapstructure:"secret"`
	ExpirationMinutes int    `mapstructure:"expiration_minutes"`
}

// Expiration returns the token lifetime as a duration.
func (j JWTConfig) Expiration() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig is the credential table. Passwords may be bcrypt hashes or
// plain text; the login service detects which by the "$2" hash prefix.
type AuthConfig struct {
	Users []UserCredential `mapstructure:"users"`
}

// UserCredential is one login identity with its screen permissions.
type UserCredential struct {
	Username    string   `mapstructure:"username"`
	Password    string   `mapstructure:"password"`
	Permissions []string `mapstructure:"permissions"`
}

// PropagationConfig settles the two propagation behaviors that vary by
// deployment: whether job-status propagation also fires when a candidate
// is created, and which status a job reopens to when a candidate's
// validation is reverted.
type PropagationConfig struct {
	OnCreate     bool   `mapstructure:"on_create"`
	ReopenStatus string `mapstructure:"reopen_status"`
}

// Load configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app/config")
	viper.AddConfigPath("/app")

	// --- Set Default Values ---
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("data.dir", "data")
	viper.SetDefault("jwt.secret", "change-me")
	viper.SetDefault("jwt.expiration_minutes", 480)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	viper.SetDefault("propagation.on_create", false)
	viper.SetDefault("propagation.reopen_status", "Reaberta")
	viper.SetDefault("recruiters", []string{"Lorrayne", "Kaline", "Nikole", "Leila", "Julia"})

	// --- Read Config File (Optional) ---
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %v", err)
		}
	}

	// --- Bind Environment Variables ---
	viper.SetEnvPrefix("PARMA")
	viper.AutomaticEnv()
	viper.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	// --- Unmarshal Config ---
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// The credential table ships with a stock user set so a fresh
	// checkout is usable; deployments override it in config.yaml.
	if len(cfg.Auth.Users) == 0 {
		cfg.Auth.Users = defaultUsers()
	}

	// --- Manual Override from Specific Environment Variables (Highest Priority) ---
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}

	// Handle CORS_ALLOWED_ORIGINS env var (comma-separated string -> slice)
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.CORS.AllowedOrigins {
			cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	log.Printf("Configuration loaded: Server Port=%d, Data Dir=%s, Allowed Origins=%v",
		cfg.Server.Port, cfg.Data.Dir, cfg.CORS.AllowedOrigins)

	return &cfg, nil
}

func defaultUsers() []UserCredential {
	all := []string{"clientes", "vagas", "candidatos", "comercial", "logs"}
	recruiting := []string{"vagas", "candidatos"}
	sales := []string{"clientes", "vagas", "candidatos", "comercial"}
	return []UserCredential{
		{Username: "admin", Password: "Parma!123@", Permissions: all},
		{Username: "andre", Password: "And!123@", Permissions: sales},
		{Username: "lorrayne", Password: "Lrn!123@", Permissions: recruiting},
		{Username: "nikole", Password: "Nkl!123@", Permissions: recruiting},
		{Username: "julia", Password: "Jla!123@", Permissions: recruiting},
		{Username: "ricardo", Password: "Rcd!123@", Permissions: sales},
	}
}
