package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

type Config struct {
	Professions uint64 `mapstructure:"professions"`
	Candidates  uint64 `mapstructure:"candidates"` // Zero means the number of candidates is given on the command line
}

func DefaultConfig() Config {
	return Config{Professions: Professions}
}

// ConfigFromJson reads a JSON configuration file. Keys that are absent keep their default value; unknown keys are rejected
func ConfigFromJson(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	return ProcessRawConfig(configJson)
}

func ProcessRawConfig(rawConfig map[string]any) (Config, error) {
	config := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		DecodeHook:  rejectFractionalCounts,
		Result:      &config,
	})
	if err != nil {
		return Config{}, err
	}

	if err := decoder.Decode(rawConfig); err != nil {
		return Config{}, ConfigurationError{err.Error()}
	}
	return config, config.Validate()
}

func (config Config) Validate() error {
	if config.Professions != Professions {
		return ConfigurationError{fmt.Sprintf("the encoding is specialized to exactly %d professions, got %d", Professions, config.Professions)}
	}
	return nil
}

// JSON numbers arrive as float64, which mapstructure would otherwise truncate into the unsigned fields
func rejectFractionalCounts(from reflect.Kind, to reflect.Kind, data any) (any, error) {
	if from != reflect.Float64 || to != reflect.Uint64 {
		return data, nil
	}
	if value := data.(float64); value != math.Trunc(value) {
		return nil, fmt.Errorf("%v is not a whole number", value)
	}
	return data, nil
}
