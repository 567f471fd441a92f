package model

import (
	"fmt"

	"library-catalog/internal/shared"
)

var ErrBookInstanceNotFound = fmt.Errorf("book copy %w", shared.ErrNotFound)
