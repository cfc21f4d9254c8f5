package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/prepbuddy/prepbuddy/internal/api"
	"github.com/prepbuddy/prepbuddy/internal/calendar"
	"github.com/prepbuddy/prepbuddy/internal/notify"
	"github.com/prepbuddy/prepbuddy/internal/pubsub"
	"github.com/prepbuddy/prepbuddy/internal/repo"
	"github.com/prepbuddy/prepbuddy/internal/storage"
	"github.com/prepbuddy/prepbuddy/pkg/environment"
	"github.com/prepbuddy/prepbuddy/pkg/errors"
)

type Config struct {
	Environment environment.Env  `yaml:"Environment"`
	Mongo       repo.MongoConfig `yaml:"Mongo"`
	Calendar    calendar.Config  `yaml:"Calendar"`
	Drive       storage.Config   `yaml:"Drive"`
	Kafka       pubsub.Config    `yaml:"Kafka"`
	Telegram    notify.Config    `yaml:"Telegram"`
	API         api.Config       `yaml:"API"`
}

func loadConfig() (*Config, error) {
	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read \"config.yaml\"")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if envFromFlags := getEnvFromFlags(); envFromFlags != nil {
		cfg.Environment = *envFromFlags
	}

	return &cfg, nil
}

func getEnvFromFlags() *environment.Env {
	raw := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()
	if raw == nil || *raw == "" {
		return nil
	}

	env := environment.FromString(*raw)
	return &env
}
