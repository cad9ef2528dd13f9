package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default) | TEST | QA | PROD
		Build    string
		AppName  string

		Server struct {
			Host            string
			Port            int
			DebugHost       string
			ShutdownTimeout time.Duration
		}

		Database struct {
			Engine        string
			Name          string
			User          string
			Password      string
			AdminUser     string
			AdminPassword string
			Host          string
			Port          int
			DisableTLS    bool
		}

		Rollbar struct {
			Token string
		}

		Grid GridConfig

		Snapshot struct {
			// cron spec for the persistence snapshot job; empty disables it
			Schedule string
		}
	}

	// GridConfig parameterizes the weekly calendar grid. The schedule core
	// never hard-codes these; they all flow in from here.
	GridConfig struct {
		StartHour       int   // first hour shown on the grid (wall clock)
		EndHour         int   // last hour shown on the grid (wall clock)
		HourHeight      int   // pixels per hour
		DefaultDuration int   // minutes assigned to a freshly clicked session
		PresetDurations []int // class-length presets; snapping passes these through
		MinDuration     int   // minutes; resize floor
		SnapQuantum     int   // minutes; finalized values round to this
		RestrictedDays  []string
		RestrictionHour int // wall-clock hour before which restricted days refuse sessions
	}
)

func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) DatabaseAddress() string {
	return fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
}

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Course Scheduler")
	v.SetDefault("build", "dev")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.debugHost", "localhost:4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)

	v.SetDefault("database.engine", "postgres")
	v.SetDefault("database.name", "scheduler")
	v.SetDefault("database.user", "scheduler")
	v.SetDefault("database.password", "")
	v.SetDefault("database.adminUser", "")
	v.SetDefault("database.adminPassword", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.disableTLS", true)

	v.SetDefault("rollbar.token", "")

	v.SetDefault("grid.startHour", 8)
	v.SetDefault("grid.endHour", 18)
	v.SetDefault("grid.hourHeight", 100)
	v.SetDefault("grid.defaultDuration", 80)
	v.SetDefault("grid.presetDurations", []int{50, 80})
	v.SetDefault("grid.minDuration", 30)
	v.SetDefault("grid.snapQuantum", 30)
	v.SetDefault("grid.restrictedDays", []string{"Wednesday", "Thursday", "Friday"})
	v.SetDefault("grid.restrictionHour", 9)

	v.SetDefault("snapshot.schedule", "@every 5m")

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetDefault("env", env)
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		log.Fatalf("config.viper.Unmarshal: %v", err)
	}
	return &conf
}
