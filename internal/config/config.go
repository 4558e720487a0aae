package config

import (
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	DBDriver     string // sqlite or postgres
	DBDSN        string
	RedisAddr    string
	Compression  string // codec for the article sections column
	SnapshotCron string
}

// LoadConfig reads habitat.yml if present, with HABITAT_* environment
// variables taking precedence. Every key has a workable local default.
func LoadConfig() *Config {
	viper.SetConfigName("habitat")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./.tmp")

	viper.SetDefault("db.driver", "sqlite")
	viper.SetDefault("db.dsn", ".tmp/habitat.db")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("compression", "nop")
	viper.SetDefault("jobs.snapshot", "@every 10m")

	viper.SetEnvPrefix("habitat")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debugf("config: no config file, using defaults: %v", err)
	}

	return &Config{
		DBDriver:     viper.GetString("db.driver"),
		DBDSN:        viper.GetString("db.dsn"),
		RedisAddr:    viper.GetString("redis.addr"),
		Compression:  viper.GetString("compression"),
		SnapshotCron: viper.GetString("jobs.snapshot"),
	}
}

// GetDb opens the configured database.
func GetDb(cnf *Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cnf.DBDriver {
	case "postgres":
		dialector = postgres.Open(cnf.DBDSN)
	default:
		dialector = sqlite.Open(cnf.DBDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logrus.Fatalf("config: opening %s database: %v", cnf.DBDriver, err)
	}

	return db
}
