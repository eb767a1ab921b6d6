package application_test

import "context"

var ctx = context.Background()
