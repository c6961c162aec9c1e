// Package config holds the runtime knobs for the referee. Values come from
// defaults, the SCRABBLER_ environment, and an optional config file, in
// increasing order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// DataPath is the directory holding letter distribution files. If a
	// named distribution is not found there, the built-in one is used.
	DataPath               string
	LetterDistributionName string
	DictionaryPath         string
	BoardLayoutName        string
	BingoBonus             int
	FirstMoveBonus         int
	ScorelessTurnLimit     int
	MaxConsecutiveFaults   int
	MoveTimeout            time.Duration
	Debug                  bool
}

// Load builds a Config from defaults, environment, and the given config
// file (which may be empty).
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("data-path", "./data")
	v.SetDefault("letter-distribution", "english")
	v.SetDefault("dictionary-path", "")
	v.SetDefault("board-layout", "CrosswordGame")
	v.SetDefault("bingo-bonus", 50)
	v.SetDefault("first-move-bonus", 0)
	v.SetDefault("scoreless-turn-limit", 6)
	v.SetDefault("max-consecutive-faults", 3)
	v.SetDefault("move-timeout", 30*time.Second)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("scrabbler")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	c := &Config{
		DataPath:               v.GetString("data-path"),
		LetterDistributionName: v.GetString("letter-distribution"),
		DictionaryPath:         v.GetString("dictionary-path"),
		BoardLayoutName:        v.GetString("board-layout"),
		BingoBonus:             v.GetInt("bingo-bonus"),
		FirstMoveBonus:         v.GetInt("first-move-bonus"),
		ScorelessTurnLimit:     v.GetInt("scoreless-turn-limit"),
		MaxConsecutiveFaults:   v.GetInt("max-consecutive-faults"),
		MoveTimeout:            v.GetDuration("move-timeout"),
		Debug:                  v.GetBool("debug"),
	}
	return c, nil
}

// Default returns a Config with only the built-in defaults. It cannot fail;
// it is the one tests should use.
func Default() *Config {
	c, err := Load("")
	if err != nil {
		// No config file is read, so Load cannot error here.
		panic(err)
	}
	return c
}
