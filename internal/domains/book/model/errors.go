package model

import (
	"fmt"

	"library-catalog/internal/shared"
)

var ErrBookNotFound = fmt.Errorf("book %w", shared.ErrNotFound)
