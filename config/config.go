package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Settings holds the non-connection knobs shared by the services.
type Settings struct {
	HTTPAddr          string
	QRSize            int
	Locale            language.Tag
	CurrencySymbol    string
	OrderEventsTopic  string
	NotifyGroupID     string
	SideDishCacheTTL  time.Duration
	NotificationLimit int
	ActivityTTL       time.Duration
}

func Load() Settings {
	locale, err := language.Parse(getEnv("APP_LOCALE", "pl-PL"))
	if err != nil {
		locale = language.Polish
	}

	return Settings{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8081"),
		QRSize:            getInt("QR_SIZE", 256),
		Locale:            locale,
		CurrencySymbol:    getEnv("CURRENCY_SYMBOL", "zł"),
		OrderEventsTopic:  getEnv("ORDER_EVENTS_TOPIC", "order-events"),
		NotifyGroupID:     getEnv("NOTIFY_GROUP_ID", "notify-svc"),
		SideDishCacheTTL:  getDuration("SIDE_DISH_CACHE_TTL", 10*time.Minute),
		NotificationLimit: getInt("NOTIFICATION_LIMIT", 50),
		ActivityTTL:       getDuration("ACTIVITY_TTL", 7*24*time.Hour),
	}
}

func MustInitLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	return logger
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
