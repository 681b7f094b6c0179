package environments

import "errors"

var (
	ErrEmptyCatalog      = errors.New("environments: catalog has no environments")
	ErrInvalidDescriptor = errors.New("environments: invalid environment descriptor")
	ErrDuplicateID       = errors.New("environments: duplicate environment id")
	ErrUnknownDefault    = errors.New("environments: default id not present in catalog")
)
