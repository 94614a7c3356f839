package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix = "FPKIT"

	LogLevel = "log-level"
	Input    = "input"
	Format   = "format"
	Strict   = "strict"
	MaxTotal = "max-total"
	Blocked  = "blocked"

	defaultLogLevel = "info"
	defaultFormat   = "json"
	defaultMaxTotal = 10000.0
)

// Config is the resolved runner configuration.
type Config struct {
	LogLevel string
	Input    string
	Format   string
	Strict   bool
	MaxTotal float64
	Blocked  []string
}

// Load reads configFile (if any), the FPKIT_* environment and the command
// flags, flags winning over file and environment. A nil logger discards
// messages.
func Load(cmd *cobra.Command, configFile string, logger *zap.Logger) (Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Sugar()

	v := viper.New()

	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(LogLevel, defaultLogLevel)
	v.SetDefault(MaxTotal, defaultMaxTotal)

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			log.Errorw("cannot read config file", "file", configFile, "error", err)
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
		log.Infof("using config file: %v", v.ConfigFileUsed())
	}

	if cmd != nil {
		bindFlags(cmd, v)
	}

	cfg := Config{
		LogLevel: v.GetString(LogLevel),
		Input:    v.GetString(Input),
		Format:   strings.ToLower(v.GetString(Format)),
		Strict:   v.GetBool(Strict),
		MaxTotal: v.GetFloat64(MaxTotal),
		Blocked:  splitList(v.GetStringSlice(Blocked)),
	}

	if cfg.Format == "" {
		cfg.Format = formatFromPath(cfg.Input)
	}

	return cfg, nil
}

// bindFlags makes viper see explicitly set flags.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			v.Set(f.Name, flagValue(f))
		}
	})
}

func flagValue(f *pflag.Flag) any {
	if sv, ok := f.Value.(pflag.SliceValue); ok {
		return sv.GetSlice()
	}
	return f.Value.String()
}

// splitList splits comma separated entries, as FPKIT_BLOCKED=a,b arrives as
// a single element.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		for _, part := range strings.Split(e, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func formatFromPath(path string) string {
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return "yaml"
	}
	return defaultFormat
}
