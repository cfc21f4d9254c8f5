package notify

import "time"

type Config struct {
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"pollInterval"`
}

func (c Config) Enabled() bool {
	return c.Token != ""
}
