// Package zone provides storage operations for zones and their RRsets.
package zone

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/db/models"
)

const (
	idQueryPattern    = "id = ?"
	rrsetQueryPattern = "zone_id = ? AND name = ? AND type = ?"
)

var (
	// ErrZoneNotFound is returned when a zone is not found.
	ErrZoneNotFound = errors.New("zone not found")
	// ErrZoneIDEmpty is returned when a zone id is empty.
	ErrZoneIDEmpty = errors.New("zone id cannot be empty")
	// ErrZoneAlreadyExists is returned when attempting to create a zone that already exists.
	ErrZoneAlreadyExists = errors.New("zone already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List retrieves all zones ordered by name, without records.
func List(db *gorm.DB) ([]models.Zone, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	zones := []models.Zone{}
	if result := db.Order("name").Find(&zones); result.Error != nil {
		return nil, result.Error
	}

	return zones, nil
}

// Get retrieves a zone including its records.
func Get(db *gorm.DB, id string) (*models.Zone, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if id == "" {
		return nil, ErrZoneIDEmpty
	}

	var zone models.Zone

	result := db.Preload("Records", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("name, type, id")
	}).Where(idQueryPattern, id).First(&zone)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}

		return nil, result.Error
	}

	if zone.Records == nil {
		zone.Records = []models.Record{}
	}

	return &zone, nil
}

// Count returns the number of zones.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if result := db.Model(&models.Zone{}).Count(&count); result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Create stores a new zone together with its records.
func Create(db *gorm.DB, zone *models.Zone) error {
	if db == nil {
		return ErrDBNil
	}

	if zone == nil || zone.ID == "" {
		return ErrZoneIDEmpty
	}

	var existing models.Zone

	result := db.Where(idQueryPattern, zone.ID).First(&existing)
	if result.Error == nil {
		return ErrZoneAlreadyExists
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	return db.Create(zone).Error
}

// ReplaceRRset replaces all records sharing name and type in the zone and bumps
// the zone serial. An empty records slice deletes the RRset.
func ReplaceRRset(db *gorm.DB, zoneID, name, rrType string, records []models.Record) error {
	if db == nil {
		return ErrDBNil
	}

	if zoneID == "" {
		return ErrZoneIDEmpty
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var zone models.Zone
		if result := tx.Where(idQueryPattern, zoneID).First(&zone); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrZoneNotFound
			}

			return result.Error
		}

		if err := tx.Where(rrsetQueryPattern, zoneID, name, rrType).Delete(&models.Record{}).Error; err != nil {
			return err
		}

		for i := range records {
			records[i].ID = 0
			records[i].ZoneID = zoneID
			records[i].Name = name
			records[i].Type = rrType
		}

		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}

		return tx.Model(&zone).Update("serial", zone.Serial+1).Error
	})
}

// DeleteRRset removes all records sharing name and type in the zone.
func DeleteRRset(db *gorm.DB, zoneID, name, rrType string) error {
	return ReplaceRRset(db, zoneID, name, rrType, nil)
}
