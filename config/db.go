package config

import (
	"time"

	"github.com/cenkalti/backoff"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
)

type GormLogger struct{}

func (*GormLogger) Print(v ...interface{}) {
	if v[0] == "sql" {
		log.WithFields(log.Fields{"module": "gorm", "type": "sql"}).Print(v[3])
	}
	if v[0] == "log" {
		log.WithFields(log.Fields{"module": "gorm", "type": "log"}).Print(v[2])
	}
}

// connectTimeout bounds how long SetupDB waits for the database.
const connectTimeout = time.Minute

// ConnectDB opens the database, retrying with exponential backoff until
// it answers or connectTimeout passes.
func ConnectDB(conf *Config) (*gorm.DB, error) {
	var db *gorm.DB
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = connectTimeout

	err := backoff.RetryNotify(func() error {
		var err error
		db, err = gorm.Open("postgres", conf.DbUrl)
		return err
	}, b, func(err error, wait time.Duration) {
		log.WithError(err).WithField("wait", wait).Warn("database not ready")
	})
	if err != nil {
		return nil, err
	}

	db.SetLogger(&GormLogger{})
	if conf.Converge.Env != "production" {
		db.LogMode(true)
	}
	return db, nil
}

func SetupDB(conf *Config) *gorm.DB {
	db, err := ConnectDB(conf)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return db
}
