package config

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Configuration concentra tudo que o processo precisa. É carregada uma vez
// no main e injetada explicitamente nos componentes — nada de estado global.
type Configuration struct {
	ApiPort    string `json:"api_port"`
	MongoURL   string `json:"mongo_url"`
	DbName     string `json:"db_name"`
	CorsOrigin string `json:"cors_origin"`

	Security struct {
		AccessTokenSecret     string `json:"access_token_secret"`
		RefreshTokenSecret    string `json:"refresh_token_secret"`
		AccessTokenTTLMinutes int    `json:"access_token_ttl_minutes"`
		RefreshTokenTTLDays   int    `json:"refresh_token_ttl_days"`
		OtpTTLHours           int    `json:"otp_ttl_hours"`
	} `json:"security"`

	Mail struct {
		SMTPHost string `json:"smtp_host"`
		SMTPPort int    `json:"smtp_port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"mail"`
}

// Get carrega o config.json (se existir), aplica overrides de ambiente para
// segredos e preenche defaults.
func Get(path string) Configuration {
	var c Configuration

	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := json.Unmarshal(b, &c); err != nil {
				log.Fatal(err)
			}
		} else if !os.IsNotExist(err) {
			log.Fatal(err)
		}
	}

	// segredos podem vir do ambiente sem rebuild
	c.MongoURL = getenv("MONGODB_URL", c.MongoURL)
	c.Security.AccessTokenSecret = getenv("ACCESS_TOKEN_SECRET", c.Security.AccessTokenSecret)
	c.Security.RefreshTokenSecret = getenv("REFRESH_TOKEN_SECRET", c.Security.RefreshTokenSecret)
	c.Mail.Username = getenv("EMAIL", c.Mail.Username)
	c.Mail.Password = getenv("PASS", c.Mail.Password)

	// defaults (pra evitar zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.MongoURL == "" {
		c.MongoURL = "mongodb://localhost:27017"
	}
	if c.DbName == "" {
		c.DbName = "blogapi"
	}
	if c.Security.AccessTokenSecret == "" {
		c.Security.AccessTokenSecret = "CHANGE_ME_ACCESS"
	}
	if c.Security.RefreshTokenSecret == "" {
		c.Security.RefreshTokenSecret = "CHANGE_ME_REFRESH"
	}
	if c.Security.AccessTokenTTLMinutes <= 0 {
		c.Security.AccessTokenTTLMinutes = 60
	}
	if c.Security.RefreshTokenTTLDays <= 0 {
		c.Security.RefreshTokenTTLDays = 10
	}
	if c.Security.OtpTTLHours <= 0 {
		c.Security.OtpTTLHours = 24
	}
	if c.Mail.SMTPHost == "" {
		c.Mail.SMTPHost = "smtp.gmail.com"
	}
	if c.Mail.SMTPPort <= 0 {
		c.Mail.SMTPPort = 587
	}
	if c.Mail.From == "" {
		c.Mail.From = c.Mail.Username
	}

	return c
}

func (c Configuration) AccessTokenTTL() time.Duration {
	return time.Duration(c.Security.AccessTokenTTLMinutes) * time.Minute
}

func (c Configuration) RefreshTokenTTL() time.Duration {
	return time.Duration(c.Security.RefreshTokenTTLDays) * 24 * time.Hour
}

func (c Configuration) OtpTTL() time.Duration {
	return time.Duration(c.Security.OtpTTLHours) * time.Hour
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
