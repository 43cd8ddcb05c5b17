package config

import (
	"time"

	"github.com/caarlos0/env"

	"github.com/ReconfigureIO/converge/service/mail"
)

type Config struct {
	ProgramName string         `env:"CONVERGE_NAME" envDefault:"converge"`
	DbUrl       string         `env:"DATABASE_URL"`
	RedisUrl    string         `env:"REDIS_URL"`
	Port        string         `env:"PORT" envDefault:"8080"`
	Converge    ConvergeConfig `env:"CONVERGE"`
	Queue       QueueConfig
	Newswire    NewswireConfig
	Mail        mail.ServiceConfig
}

type ConvergeConfig struct {
	Env           string `env:"CONVERGE_ENV" envDefault:"development"`
	LogzioToken   string `env:"LOGZIO_TOKEN"`
	PluginCatalog string `env:"CONVERGE_PLUGIN_CATALOG"`
	// MemoryStore keeps the queue and messages in process memory instead
	// of Postgres and Redis.
	MemoryStore bool `env:"CONVERGE_MEMORY_STORE"`
}

type QueueConfig struct {
	PollInterval time.Duration `env:"QUEUE_POLL_INTERVAL" envDefault:"5s"`
	Concurrent   int           `env:"QUEUE_CONCURRENT" envDefault:"4"`
	// StaleAfter is how long an item may stay claimed before a starting
	// worker returns it to the queue.
	StaleAfter time.Duration `env:"QUEUE_STALE_AFTER" envDefault:"1h"`
}

type NewswireConfig struct {
	FetchEvery time.Duration `env:"NEWSWIRE_FETCH_EVERY" envDefault:"15m"`
}

func ParseEnvConfig() (*Config, error) {
	conf := Config{}

	err := env.Parse(&conf)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Converge)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Queue)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Newswire)
	if err != nil {
		return nil, err
	}

	err = env.Parse(&conf.Mail)
	if err != nil {
		return nil, err
	}

	return &conf, nil
}
