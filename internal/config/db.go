package config

// DB holds the database configuration settings of the mock server.
type DB struct {
	GormEngine string // sqlite, mysql or postgres
	Path       string // sqlite database file
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
}
