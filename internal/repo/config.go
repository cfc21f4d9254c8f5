package repo

import (
	"time"
)

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Sources struct {
		Interviews string `yaml:"interviews"`
		Users      string `yaml:"users"`
	} `yaml:"sources"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}
