package models

//go:generate mockgen -source=edition.go -package=models -destination=edition_mock.go

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Edition is a publishable bundle of placed content items for an outlet.
type Edition struct {
	ID              int64       `gorm:"primary_key" json:"id"`
	OutletID        int64       `gorm:"index" json:"outlet_id"`
	Name            string      `json:"name"`
	PublicationDate time.Time   `json:"publication_date"`
	Open            bool        `json:"open"`
	Closed          *time.Time  `json:"closed,omitempty"`
	Placements      []Placement `json:"placements,omitempty" gorm:"ForeignKey:EditionID"`
}

// Placement places a content item at a position within an edition section.
type Placement struct {
	ID            int64       `gorm:"primary_key" json:"id"`
	EditionID     int64       `gorm:"index" json:"edition_id"`
	ContentItemID int64       `json:"content_item_id"`
	ContentItem   ContentItem `json:"content_item" gorm:"ForeignKey:ContentItemID"`
	Section       string      `json:"section"`
	Start         int         `json:"start"`
	Position      int         `json:"position"`
}

// EditionActionConfig binds an edition action plugin configuration to an outlet.
type EditionActionConfig struct {
	ID                    int64               `gorm:"primary_key" json:"id"`
	OutletID              int64               `gorm:"index" json:"outlet_id"`
	Label                 string              `json:"label"`
	PluginConfigurationID int64               `json:"plugin_configuration_id"`
	PluginConfiguration   PluginConfiguration `json:"plugin_configuration" gorm:"ForeignKey:PluginConfigurationID"`
	// ManualAction actions only run when triggered, not on close.
	ManualAction bool `json:"manual_action"`
	Sort         int  `json:"sort"`
}

// EditionRepo handles editions and their actions.
type EditionRepo interface {
	// ByID returns an edition with placements and their content preloaded.
	ByID(id int64) (Edition, error)
	// Action returns an edition action with its plugin configuration.
	Action(id int64) (EditionActionConfig, error)
	// ActionsForOutlet returns the actions of an outlet ordered by sort.
	ActionsForOutlet(outletID int64) ([]EditionActionConfig, error)
	// Close marks an edition closed.
	Close(edition *Edition, at time.Time) error
}

type editionRepo struct{ db *gorm.DB }

// EditionDataSource returns the data source for editions.
func EditionDataSource(db *gorm.DB) EditionRepo {
	return &editionRepo{db: db}
}

func (repo *editionRepo) ByID(id int64) (Edition, error) {
	var edition Edition
	err := repo.db.Preload("Placements", func(db *gorm.DB) *gorm.DB {
		return db.Order("section, start, position")
	}).Preload("Placements.ContentItem").First(&edition, "id = ?", id).Error
	return edition, notFound(err)
}

func (repo *editionRepo) Action(id int64) (EditionActionConfig, error) {
	var action EditionActionConfig
	err := repo.db.Preload("PluginConfiguration").First(&action, "id = ?", id).Error
	return action, notFound(err)
}

func (repo *editionRepo) ActionsForOutlet(outletID int64) ([]EditionActionConfig, error) {
	var actions []EditionActionConfig
	err := repo.db.Preload("PluginConfiguration").
		Where("outlet_id = ?", outletID).
		Order("sort").
		Find(&actions).Error
	return actions, err
}

func (repo *editionRepo) Close(edition *Edition, at time.Time) error {
	edition.Open = false
	edition.Closed = &at
	return repo.db.Model(edition).Updates(map[string]interface{}{
		"open":   false,
		"closed": at,
	}).Error
}
