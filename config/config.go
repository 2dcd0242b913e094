package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Handlers struct {
		Prometheus struct {
			Port      string `mapstructure:"port"`
			CertFile  string `mapstructure:"certFile"`
			KeyFile   string `mapstructure:"keyFile"`
			EnableTLS bool   `mapstructure:"enableTLS"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Services struct {
		Gemini struct {
			APIKey          string  // from GOOGLE_GEMINI_API_KEY, never file-based
			Model           string  `mapstructure:"model"`
			Temperature     float32 `mapstructure:"temperature"`
			MaxOutputTokens int32   `mapstructure:"maxOutputTokens"`
		} `mapstructure:"gemini"`
		GoogleMaps struct {
			APIKey  string        // from GOOGLE_MAPS_API_KEY, never file-based
			Timeout time.Duration `mapstructure:"timeout"`
		} `mapstructure:"googleMaps"`
	} `mapstructure:"services"`
	Itinerary struct {
		GeocodeConcurrency int64         `mapstructure:"geocodeConcurrency"`
		GeocodeTimeout     time.Duration `mapstructure:"geocodeTimeout"`
	} `mapstructure:"itinerary"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}

	// Credentials come from the environment only and flow into the service
	// constructors from here. No package keeps credential state of its own.
	config.Services.Gemini.APIKey = os.Getenv("GOOGLE_GEMINI_API_KEY")
	config.Services.GoogleMaps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")

	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
