package models

// Record is a single resource record of a Zone.
type Record struct {
	ID       uint64 `gorm:"primaryKey"`
	ZoneID   string `gorm:"index:idx_rrset"`
	Name     string `gorm:"index:idx_rrset"`
	Type     string `gorm:"index:idx_rrset"`
	TTL      uint32 `gorm:"column:ttl"`
	Disabled bool   `gorm:"column:disabled"`
	Content  string `gorm:"column:content"`
	SetPTR   bool   `gorm:"column:set_ptr"`
}
