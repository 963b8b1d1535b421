package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Logger  LoggerConfig
	Lookup  LookupConfig
	Dataset DatasetConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Env   string
	Level string
}

// BoundaryLayerConfig describes one district-boundary layer: the query
// endpoint and the ordered attribute-name chain tried when extracting the
// district identifier from a returned feature (first non-empty wins).
type BoundaryLayerConfig struct {
	URL        string
	Attributes []string
}

// LookupConfig holds the external geocoding and GIS endpoints used by
// address resolution.
type LookupConfig struct {
	GeocoderURL    string
	RequestTimeout time.Duration
	Legislative    BoundaryLayerConfig
	Congressional  BoundaryLayerConfig
	CountyCouncil  BoundaryLayerConfig
	School         BoundaryLayerConfig
}

type DatasetConfig struct {
	CandidatesPath string
}

type SessionConfig struct {
	TTL time.Duration
}

// LoadConfig reads config.yaml (optional) plus .env and environment
// overrides, falling back to built-in defaults for everything else.
func LoadConfig() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults and environment variables cover every key; only a
		// malformed file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		Lookup: LookupConfig{
			GeocoderURL:    viper.GetString("lookup.geocoder_url"),
			RequestTimeout: viper.GetDuration("lookup.request_timeout") * time.Second,
			Legislative: BoundaryLayerConfig{
				URL:        viper.GetString("lookup.layers.legislative.url"),
				Attributes: viper.GetStringSlice("lookup.layers.legislative.attributes"),
			},
			Congressional: BoundaryLayerConfig{
				URL:        viper.GetString("lookup.layers.congressional.url"),
				Attributes: viper.GetStringSlice("lookup.layers.congressional.attributes"),
			},
			CountyCouncil: BoundaryLayerConfig{
				URL:        viper.GetString("lookup.layers.county_council.url"),
				Attributes: viper.GetStringSlice("lookup.layers.county_council.attributes"),
			},
			School: BoundaryLayerConfig{
				URL:        viper.GetString("lookup.layers.school.url"),
				Attributes: viper.GetStringSlice("lookup.layers.school.attributes"),
			},
		},
		Dataset: DatasetConfig{
			CandidatesPath: viper.GetString("dataset.candidates_path"),
		},
		Session: SessionConfig{
			TTL: viper.GetDuration("session.ttl") * time.Hour,
		},
	}

	// Explicit overrides for the deployment-critical values.
	if address := os.Getenv("REDIS_ADDRESS"); address != "" {
		config.Redis.Address = address
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Redis.Password = password
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if path := os.Getenv("CANDIDATES_PATH"); path != "" {
		config.Dataset.CandidatesPath = path
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)

	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")

	viper.SetDefault("lookup.geocoder_url",
		"https://geocode.arcgis.com/arcgis/rest/services/World/GeocodeServer")
	viper.SetDefault("lookup.request_timeout", 10)

	const districtsBase = "https://gismaps.kingcounty.gov/arcgis/rest/services/Districts/KingCo_Electoral_Districts/MapServer"
	viper.SetDefault("lookup.layers.legislative.url", districtsBase+"/2")
	viper.SetDefault("lookup.layers.legislative.attributes", []string{"LEGDST"})
	viper.SetDefault("lookup.layers.congressional.url", districtsBase+"/1")
	viper.SetDefault("lookup.layers.congressional.attributes", []string{"CONGDST"})
	viper.SetDefault("lookup.layers.county_council.url", districtsBase+"/0")
	viper.SetDefault("lookup.layers.county_council.attributes", []string{"KCCDST"})
	viper.SetDefault("lookup.layers.school.url", districtsBase+"/3")
	viper.SetDefault("lookup.layers.school.attributes", []string{"NAME", "SCHDST", "DSTNUM"})

	viper.SetDefault("dataset.candidates_path", "data/candidates.csv")

	viper.SetDefault("session.ttl", 720) // hours
}
