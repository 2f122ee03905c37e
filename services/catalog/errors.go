package catalog

import "errors"

// ErrExperienceNotFound signals no experience exists for the requested ID.
var ErrExperienceNotFound = errors.New("experience not found")
