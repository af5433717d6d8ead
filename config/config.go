package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath           = "data-path"
	ConfigLexiconPath        = "lexicon-path"
	ConfigLexiconType        = "lexicon-type"
	ConfigLexiconEncoding    = "lexicon-encoding"
	ConfigBoardLayout        = "board-layout"
	ConfigLetterDistribution = "letter-distribution"
	ConfigRackCapacity       = "rack-capacity"
	ConfigBingoBonus         = "bingo-bonus"
	ConfigDebug              = "debug"
	ConfigCPUProfile         = "cpu-profile"
	ConfigOutputFormat       = "output-format"
	ConfigFile               = "config"
)

// Config wraps a viper instance. Values come from (in increasing priority)
// defaults, an optional YAML file, XWORDSOLVER_* environment variables and
// command-line flags.
type Config struct {
	*viper.Viper
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDataPath, "./data")
	c.SetDefault(ConfigLexiconPath, "")
	c.SetDefault(ConfigLexiconType, "dawg")
	c.SetDefault(ConfigLexiconEncoding, "utf-8")
	c.SetDefault(ConfigBoardLayout, "standard")
	c.SetDefault(ConfigLetterDistribution, "english")
	c.SetDefault(ConfigRackCapacity, 7)
	c.SetDefault(ConfigBingoBonus, 50)
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigOutputFormat, "text")
}

// Load parses the passed-in command-line arguments on top of the
// environment and defaults. Arguments that are not flags are left alone so
// that the caller can treat them as a command.
func (c *Config) Load(args []string) ([]string, error) {
	if c.Viper == nil {
		c.Viper = viper.New()
		c.setDefaults()
	}
	fs := pflag.NewFlagSet("xwordsolver", pflag.ContinueOnError)
	fs.String(ConfigDataPath, c.GetString(ConfigDataPath), "directory holding board layouts and letter distributions")
	fs.String(ConfigLexiconPath, c.GetString(ConfigLexiconPath), "word list, one word per line")
	fs.String(ConfigLexiconType, c.GetString(ConfigLexiconType), "lexicon implementation: dawg or trie")
	fs.String(ConfigLexiconEncoding, c.GetString(ConfigLexiconEncoding), "word list encoding: utf-8 or latin1")
	fs.String(ConfigBoardLayout, c.GetString(ConfigBoardLayout), "board layout name or path")
	fs.String(ConfigLetterDistribution, c.GetString(ConfigLetterDistribution), "letter distribution name or path")
	fs.Int(ConfigRackCapacity, c.GetInt(ConfigRackCapacity), "number of tiles on a full rack")
	fs.Int(ConfigBingoBonus, c.GetInt(ConfigBingoBonus), "bonus for using a full rack")
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "debug logging on")
	fs.String(ConfigCPUProfile, c.GetString(ConfigCPUProfile), "write a CPU profile to this file")
	fs.String(ConfigOutputFormat, c.GetString(ConfigOutputFormat), "solver output: text or yaml")
	fs.String(ConfigFile, "", "optional YAML config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	c.SetEnvPrefix("XWORDSOLVER")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cf, _ := fs.GetString(ConfigFile); cf != "" {
		c.SetConfigFile(cf)
		c.SetConfigType("yaml")
		if err := c.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cf, err)
		}
		log.Debug().Str("file", cf).Msg("read config file")
	}
	if err := c.BindPFlags(fs); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// AdjustRelativePaths makes the data path absolute with respect to the
// directory of the executable, if it was not given as an absolute path.
func (c *Config) AdjustRelativePaths(basepath string) {
	dp := c.GetString(ConfigDataPath)
	if !filepath.IsAbs(dp) {
		c.Set(ConfigDataPath, filepath.Join(basepath, dp))
	}
}

// SanitizedSettings returns the settings for logging purposes.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}

// LayoutPath resolves a board layout setting. Bare names are looked up
// under <data-path>/boards.
func (c *Config) LayoutPath() string {
	return c.resolve(c.GetString(ConfigBoardLayout), "boards")
}

// DistributionPath resolves a letter distribution setting. Bare names are
// looked up under <data-path>/letterdistributions.
func (c *Config) DistributionPath() string {
	return c.resolve(c.GetString(ConfigLetterDistribution), "letterdistributions")
}

func (c *Config) resolve(name, subdir string) string {
	if strings.ContainsRune(name, filepath.Separator) || filepath.Ext(name) != "" {
		return name
	}
	return filepath.Join(c.GetString(ConfigDataPath), subdir, strings.ToLower(name)+".txt")
}
