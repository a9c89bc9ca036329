// Package models contains database model definitions.
package models

// Zone is an authoritative zone served by the mock API. ID is the canonical
// zone name, e.g. example.org., and Kind one of Native, Master or Slave.
type Zone struct {
	ID             string   `gorm:"primaryKey"`
	Name           string   `gorm:"unique"`
	Kind           string   `gorm:"column:kind"`
	DNSSEC         bool     `gorm:"column:dnssec"`
	Account        string   `gorm:"column:account"`
	Masters        []string `gorm:"serializer:json"`
	Serial         int64    `gorm:"column:serial"`
	NotifiedSerial int64    `gorm:"column:notified_serial"`
	SOAEdit        string   `gorm:"column:soa_edit"`
	SOAEditAPI     string   `gorm:"column:soa_edit_api"`
	Records        []Record `gorm:"constraint:OnDelete:CASCADE"`
}
