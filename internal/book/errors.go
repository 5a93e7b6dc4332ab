package book

import (
	"errors"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Sentinel errors returned by the collection store.
var (
	ErrNotFound        = errors.New(config.ErrNotFound)
	ErrPhoneNotFound   = errors.New(config.ErrPhoneNotFound)
	ErrInvalidArgument = errors.New(config.ErrInvalidArgument)
	ErrPersistence     = errors.New(config.ErrPersistence)
)
