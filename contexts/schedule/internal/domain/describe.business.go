package domain

import (
	"strings"
	"sync"

	crondesc "github.com/lnquy/cron"
)

var describer = struct { //nolint:gochecknoglobals // the locales are loaded once
	mu   sync.Mutex
	load func() (*crondesc.ExpressionDescriptor, error)
}{
	load: sync.OnceValues(func() (*crondesc.ExpressionDescriptor, error) {
		return crondesc.NewDescriptor( //nolint:wrapcheck // only fails for unknown locales
			crondesc.Use24HourTimeFormat(true),
			crondesc.DayOfWeekStartsAtOne(false),
			crondesc.Verbose(false),
			crondesc.SetLocales(crondesc.Locale_en),
		)
	}),
}

// Describe returns the expression in plain English, e.g. "At 09:30, Monday through Friday".
// Descriptors are described by the fields they expand to.
func (e Expression) Describe() string {
	if len(e.Fields) == 0 {
		return "Every " + e.Every.String()
	}

	desc, err := describer.load()
	if err != nil {
		return e.Raw
	}

	values := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		values = append(values, f.Value)
	}

	describer.mu.Lock()
	defer describer.mu.Unlock()

	description, err := desc.ToDescription(strings.Join(values, " "), crondesc.Locale_en)
	if err != nil {
		return e.Raw
	}

	return description
}
