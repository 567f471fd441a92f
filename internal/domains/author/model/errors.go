package model

import (
	"fmt"

	"library-catalog/internal/shared"
)

var ErrAuthorNotFound = fmt.Errorf("author %w", shared.ErrNotFound)
