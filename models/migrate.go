package models

import (
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gormigrate.v1"
)

const (
	sqlQueueEligibleIndex = `
CREATE INDEX IF NOT EXISTS idx_queue_items_eligible
ON queue_items (status, scheduled_for)
`
)

var migrations = []*gormigrate.Migration{
	{
		ID: "201810170900",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&QueueItem{},
				&BackgroundTask{},
				&ActionLog{},
				&Notification{},
			).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.DropTableIfExists(
				&QueueItem{},
				&BackgroundTask{},
				&ActionLog{},
				&Notification{},
			).Error
		},
	},
	{
		ID: "201810170930",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&PluginConfiguration{},
				&ContentItem{},
				&WorkflowStep{},
				&WorkflowStepAction{},
				&Edition{},
				&Placement{},
				&EditionActionConfig{},
				&NewswireService{},
				&NewswireItem{},
			).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.DropTableIfExists(
				&NewswireItem{},
				&NewswireService{},
				&EditionActionConfig{},
				&Placement{},
				&Edition{},
				&WorkflowStepAction{},
				&WorkflowStep{},
				&ContentItem{},
				&PluginConfiguration{},
			).Error
		},
	},
	{
		ID: "201810171015",
		Migrate: func(tx *gorm.DB) error {
			return tx.Exec(sqlQueueEligibleIndex).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("DROP INDEX IF EXISTS idx_queue_items_eligible").Error
		},
	},
}

// MigrateAll brings the schema up to date.
func MigrateAll(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations)
	if err := m.Migrate(); err != nil {
		return err
	}
	log.WithField("migrations", len(migrations)).Info("migration did run successfully")
	return nil
}
