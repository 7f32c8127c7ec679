package infrastructure

import (
	"errors"
	"log"

	"github.com/minutary/minutary/internal/webserver/model"
	"gorm.io/gorm"
)

// DatabaseStore persists key-value pairs in the application database, so
// per-user state like the search history survives restarts.
type DatabaseStore struct {
	DB *gorm.DB
}

func (d *DatabaseStore) Get(key string) (string, bool) {
	var entry model.KeyValue

	result := d.DB.Where("key = ?", key).First(&entry)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", false
	}
	if result.Error != nil {
		log.Printf("error reading key %s: %s\n", key, result.Error)
		return "", false
	}
	return entry.Value, true
}

func (d *DatabaseStore) Set(key, value string) error {
	entry := model.KeyValue{Key: key, Value: value}
	if result := d.DB.Save(&entry); result.Error != nil {
		log.Printf("error writing key %s: %s\n", key, result.Error)
		return result.Error
	}
	return nil
}

func (d *DatabaseStore) Remove(key string) error {
	var entry model.KeyValue

	result := d.DB.Where("key = ?", key).Delete(&entry)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("error removing key %s: %s\n", key, result.Error)
		return result.Error
	}
	return nil
}
