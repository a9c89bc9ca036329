package config

import (
	"errors"
)

var (
	// ErrAPIHostEmpty error if config API.Host is empty.
	ErrAPIHostEmpty = errors.New("config API.Host can not be empty")

	// ErrAPIPortOutOfRange error if config API.Port is not a TCP port.
	ErrAPIPortOutOfRange = errors.New("config API.Port must be between 1 and 65535")

	// ErrAPIProtocol error if config API.Protocol is neither http nor https.
	ErrAPIProtocol = errors.New("config API.Protocol must be http or https")

	// ErrMockListenEmpty error if config Mock.Listen is empty.
	ErrMockListenEmpty = errors.New("config Mock.Listen can not be empty")

	// ErrUnsupportedEngine error if config Mock.DB.GormEngine is unknown.
	ErrUnsupportedEngine = errors.New("config Mock.DB.GormEngine must be sqlite, mysql or postgres")
)
