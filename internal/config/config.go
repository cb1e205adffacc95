package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/studio-autostop/internal/adapters/jupyter"
	"github.com/bnema/studio-autostop/internal/adapters/metadata"
	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/bnema/studio-autostop/internal/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "AUTOSTOP"
	FileName   = "autostop"
	ConfigFlag = "config"
)

// Config holds one run's settings. Values are layered flags > env >
// config file > defaults.
type Config struct {
	Time              int    `mapstructure:"time"`
	Port              int    `mapstructure:"port"`
	IgnoreConnections bool   `mapstructure:"ignore_connections"`
	Region            string `mapstructure:"region"`

	Jupyter  JupyterConfig  `mapstructure:"jupyter"`
	Metadata MetadataConfig `mapstructure:"metadata"`
	Activity ActivityConfig `mapstructure:"activity"`
	Log      logger.Config  `mapstructure:"log"`
}

type JupyterConfig struct {
	URL                string        `mapstructure:"url"`
	Scheme             string        `mapstructure:"scheme"`
	Host               string        `mapstructure:"host"`
	BasePath           string        `mapstructure:"base_path"`
	Token              string        `mapstructure:"token"`
	Timeout            time.Duration `mapstructure:"timeout"`
	ProbeContents      bool          `mapstructure:"probe_contents"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
}

type MetadataConfig struct {
	Path string `mapstructure:"path"`
}

type ActivityConfig struct {
	Root    string `mapstructure:"root"`
	Exclude string `mapstructure:"exclude"`
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"time":               "time",
	"port":               "port",
	"ignore-connections": "ignore_connections",
	"region":             "region",
}

func Default() *Config {
	port, _ := strconv.Atoi(jupyter.DefaultPort)

	return &Config{
		Port: port,
		Jupyter: JupyterConfig{
			Scheme:             jupyter.DefaultScheme,
			Host:               jupyter.DefaultHost,
			BasePath:           jupyter.DefaultBasePath,
			ProbeContents:      true,
			InsecureSkipVerify: true,
		},
		Metadata: MetadataConfig{Path: metadata.DefaultPath},
		Activity: ActivityConfig{Exclude: domain.DefaultExcludedFile},
		Log: logger.Config{
			Level:  "info",
			Format: logger.FormatAuto,
			Output: "stderr",
		},
	}
}

// Load reads configuration. flags may be nil. The config file comes from
// the --config flag, then AUTOSTOP_CONFIG, then the search path.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := Default()
	setDefaults(v, cfg)

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if path := configFile(flags); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(FileName)
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("time", cfg.Time)
	v.SetDefault("port", cfg.Port)
	v.SetDefault("ignore_connections", cfg.IgnoreConnections)
	v.SetDefault("region", cfg.Region)

	v.SetDefault("jupyter.url", cfg.Jupyter.URL)
	v.SetDefault("jupyter.scheme", cfg.Jupyter.Scheme)
	v.SetDefault("jupyter.host", cfg.Jupyter.Host)
	v.SetDefault("jupyter.base_path", cfg.Jupyter.BasePath)
	v.SetDefault("jupyter.token", cfg.Jupyter.Token)
	v.SetDefault("jupyter.timeout", cfg.Jupyter.Timeout)
	v.SetDefault("jupyter.probe_contents", cfg.Jupyter.ProbeContents)
	v.SetDefault("jupyter.insecure_skip_verify", cfg.Jupyter.InsecureSkipVerify)

	v.SetDefault("metadata.path", cfg.Metadata.Path)
	v.SetDefault("activity.root", cfg.Activity.Root)
	v.SetDefault("activity.exclude", cfg.Activity.Exclude)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.output", cfg.Log.Output)
}

func configFile(flags *pflag.FlagSet) string {
	if flags != nil {
		if flag := flags.Lookup(ConfigFlag); flag != nil {
			if value := strings.TrimSpace(flag.Value.String()); value != "" {
				return value
			}
		}
	}

	return strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG"))
}

// searchPaths lists config directories, lowest precedence first.
func searchPaths() []string {
	paths := []string{filepath.Join("/etc", FileName)}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, FileName))
	}
	return append(paths, ".")
}

// Policy builds the idleness policy. A missing or non-positive time
// yields domain.ErrMissingThreshold.
func (c *Config) Policy() (domain.Policy, error) {
	policy, err := domain.NewPolicy(c.Time, c.IgnoreConnections)
	if err != nil {
		return domain.Policy{}, err
	}

	if exclude := strings.TrimSpace(c.Activity.Exclude); exclude != "" {
		policy.ExcludedFile = exclude
	}

	return policy, nil
}

func (c *Config) JupyterClient() jupyter.Config {
	return jupyter.Config{
		BaseURL:            c.Jupyter.URL,
		Scheme:             c.Jupyter.Scheme,
		Host:               c.Jupyter.Host,
		Port:               strconv.Itoa(c.Port),
		BasePath:           c.Jupyter.BasePath,
		Token:              c.Jupyter.Token,
		Timeout:            c.Jupyter.Timeout,
		InsecureSkipVerify: c.Jupyter.InsecureSkipVerify,
	}
}
