package config

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port        string   `mapstructure:"port"`
		Env         string   `mapstructure:"env"`
		BaseURL     string   `mapstructure:"base_url"`
		CORSOrigins []string `mapstructure:"cors_origins"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret      string        `mapstructure:"jwt_secret"`
		TokenLifespan  time.Duration `mapstructure:"token_lifespan"`
		ResetTokenTTL  time.Duration `mapstructure:"reset_token_ttl"`
		ResetURLFormat string        `mapstructure:"reset_url_format"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
		Folder    string `mapstructure:"folder"`
	} `mapstructure:"cloudinary"`
	LLM struct {
		Provider    string        `mapstructure:"provider"`
		OpenAIKey   string        `mapstructure:"openai_api_key"`
		OpenAIModel string        `mapstructure:"openai_model"`
		OpenAIBase  string        `mapstructure:"openai_base_url"`
		GeminiKey   string        `mapstructure:"gemini_api_key"`
		GeminiModel string        `mapstructure:"gemini_model"`
		Temperature float64       `mapstructure:"temperature"`
		MaxTokens   int           `mapstructure:"max_tokens"`
		Timeout     time.Duration `mapstructure:"timeout"`
	} `mapstructure:"llm"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
	Cache struct {
		PageTTL time.Duration `mapstructure:"page_ttl"`
	} `mapstructure:"cache"`
	Image struct {
		MaxWidth    int   `mapstructure:"max_width"`
		JPEGQuality int   `mapstructure:"jpeg_quality"`
		MaxBytes    int64 `mapstructure:"max_bytes"`
		MaxPixels   int64 `mapstructure:"max_pixels"`
	} `mapstructure:"image"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.base_url", "http://localhost:8080")
	v.SetDefault("kafka.group_id", "page-revalidator-group")
	v.SetDefault("auth.token_lifespan", 24*time.Hour)
	v.SetDefault("auth.reset_token_ttl", time.Hour)
	v.SetDefault("auth.reset_url_format", "http://localhost:3000/reset-password?token=%s")
	v.SetDefault("cloudinary.folder", "interview-images")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.openai_model", "gpt-4")
	v.SetDefault("llm.gemini_model", "gemini-2.5-flash")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 1500)
	v.SetDefault("llm.timeout", 60*time.Second)
	v.SetDefault("cache.page_ttl", 5*time.Minute)
	v.SetDefault("image.max_width", 1200)
	v.SetDefault("image.jpeg_quality", 80)
	v.SetDefault("image.max_bytes", 10<<20)
	v.SetDefault("image.max_pixels", 40_000_000)
}

// LoadConfig reads .env and config.yaml from path, then applies environment overrides.
func LoadConfig(path string) (cfg Config, err error) {
	if path == "" {
		path = "."
	}

	if err = godotenv.Load(filepath.Join(path, ".env")); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	setDefaults(v)
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.base_url", "APP_BASE_URL")
	v.BindEnv("app.cors_origins", "CORS_ORIGINS")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	v.BindEnv("llm.provider", "LLM_PROVIDER")
	v.BindEnv("llm.openai_api_key", "OPENAI_API_KEY")
	v.BindEnv("llm.openai_base_url", "OPENAI_BASE_URL")
	v.BindEnv("llm.gemini_api_key", "GEMINI_API_KEY")
	v.BindEnv("jaeger.otlp_endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")

	err = v.Unmarshal(&cfg)
	if err != nil {
		return
	}

	// KAFKA_BROKERS / CORS_ORIGINS arrive as a single comma separated string from env.
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)
	cfg.App.CORSOrigins = splitList(cfg.App.CORSOrigins)
	return
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
