package models

//go:generate mockgen -source=plugin.go -package=models -destination=plugin_mock.go

import (
	"github.com/jinzhu/gorm"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PluginConfiguration is a named, user editable property set bound to one
// plugin instance.
type PluginConfiguration struct {
	ID         int64  `gorm:"primary_key" json:"id"`
	PluginKey  string `gorm:"not null;index" json:"plugin_key"`
	Name       string `json:"name"`
	Active     bool   `json:"active"`
	Properties string `gorm:"type:text" json:"-"`
}

// Values decodes the stored properties. Single valued properties are
// stored as one element lists.
func (p PluginConfiguration) Values() (map[string][]string, error) {
	values := map[string][]string{}
	if p.Properties == "" {
		return values, nil
	}
	err := json.UnmarshalFromString(p.Properties, &values)
	return values, err
}

// SetValues encodes values into the stored properties.
func (p *PluginConfiguration) SetValues(values map[string][]string) error {
	s, err := json.MarshalToString(values)
	if err != nil {
		return err
	}
	p.Properties = s
	return nil
}

// PluginConfigRepo handles plugin configurations.
type PluginConfigRepo interface {
	ByID(id int64) (PluginConfiguration, error)
}

type pluginConfigRepo struct{ db *gorm.DB }

// PluginConfigDataSource returns the data source for plugin configurations.
func PluginConfigDataSource(db *gorm.DB) PluginConfigRepo {
	return &pluginConfigRepo{db: db}
}

func (repo *pluginConfigRepo) ByID(id int64) (PluginConfiguration, error) {
	var conf PluginConfiguration
	err := repo.db.First(&conf, "id = ?", id).Error
	return conf, notFound(err)
}
