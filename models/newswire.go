package models

//go:generate mockgen -source=newswire.go -package=models -destination=newswire_mock.go

import (
	"time"

	"github.com/jinzhu/gorm"
)

// NewswireService is an external feed polled for items.
type NewswireService struct {
	ID         int64      `gorm:"primary_key" json:"id"`
	Name       string     `json:"name"`
	DecoderKey string     `gorm:"not null" json:"decoder_key"`
	Active     bool       `gorm:"index" json:"active"`
	LastFetch  *time.Time `json:"last_fetch,omitempty"`
	Properties string     `gorm:"type:text" json:"-"`
}

// Values decodes the decoder configuration of the service.
func (s NewswireService) Values() (map[string][]string, error) {
	return PluginConfiguration{Properties: s.Properties}.Values()
}

// NewswireItem is an item received from a newswire service.
type NewswireItem struct {
	ID                int64     `gorm:"primary_key" json:"id"`
	NewswireServiceID int64     `gorm:"unique_index:idx_newswire_external" json:"newswire_service_id"`
	ExternalID        string    `gorm:"unique_index:idx_newswire_external" json:"external_id"`
	Title             string    `json:"title"`
	Summary           string    `gorm:"type:text" json:"summary"`
	URL               string    `json:"url"`
	Published         time.Time `json:"published"`
	Received          time.Time `json:"received"`
}

// NewswireRepo handles newswire services and their items.
type NewswireRepo interface {
	ByID(id int64) (NewswireService, error)
	// Active returns all active services.
	Active() ([]NewswireService, error)
	// Store saves items not seen before and returns the number stored.
	Store(service NewswireService, items []NewswireItem) (int, error)
	// MarkFetched sets the last fetch time of a service.
	MarkFetched(service *NewswireService, at time.Time) error
}

type newswireRepo struct{ db *gorm.DB }

// NewswireDataSource returns the data source for newswire services.
func NewswireDataSource(db *gorm.DB) NewswireRepo {
	return &newswireRepo{db: db}
}

func (repo *newswireRepo) ByID(id int64) (NewswireService, error) {
	var service NewswireService
	err := repo.db.First(&service, "id = ?", id).Error
	return service, notFound(err)
}

func (repo *newswireRepo) Active() ([]NewswireService, error) {
	var services []NewswireService
	err := repo.db.Where("active = ?", true).Order("id").Find(&services).Error
	return services, err
}

func (repo *newswireRepo) Store(service NewswireService, items []NewswireItem) (int, error) {
	stored := 0
	for _, item := range items {
		item.NewswireServiceID = service.ID
		var count int
		err := repo.db.Model(&NewswireItem{}).
			Where("newswire_service_id = ? AND external_id = ?", service.ID, item.ExternalID).
			Count(&count).Error
		if err != nil {
			return stored, err
		}
		if count > 0 {
			continue
		}
		if item.Received.IsZero() {
			item.Received = time.Now()
		}
		if err := repo.db.Create(&item).Error; err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

func (repo *newswireRepo) MarkFetched(service *NewswireService, at time.Time) error {
	service.LastFetch = &at
	return repo.db.Model(service).Update("last_fetch", at).Error
}
