package application_test

import (
	"context"
	"time"
)

var (
	ctx = context.Background()

	// a friday.
	fixedNow = time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
)

func clock() time.Time { return fixedNow }
