// Package domain parses, explains and builds cron expressions.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // timezones work without a system database

	"github.com/robfig/cron/v3"
)

var (
	ErrInvalidExpression = errors.New("invalid cron expression")
	ErrInvalidTimezone   = errors.New("invalid timezone")
)

const (
	FieldSecond     = "second"
	FieldMinute     = "minute"
	FieldHour       = "hour"
	FieldDayOfMonth = "dayOfMonth"
	FieldMonth      = "month"
	FieldDayOfWeek  = "dayOfWeek"
)

// descriptors are expanded into their fields, @every has no fields.
var descriptors = map[string]string{ //nolint:gochecknoglobals
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@midnight": "0 0 * * *",
	"@hourly":   "0 * * * *",
}

type Field struct {
	Name  string
	Value string
}

// Expression is a parsed cron expression.
type Expression struct {
	Raw string
	// Fields are the normalised fields, starting with seconds if they are enabled.
	// They are empty for @every expressions.
	Fields []Field
	// Every is the interval of an @every expression.
	Every time.Duration

	schedule cron.Schedule
}

// ParseExpression accepts five fields or, with seconds, six fields and all descriptors.
func ParseExpression(expr string, seconds bool) (Expression, error) {
	raw := strings.Join(strings.Fields(expr), " ")
	if raw == "" {
		return Expression{}, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	if strings.HasPrefix(raw, "TZ=") || strings.HasPrefix(raw, "CRON_TZ=") {
		return Expression{}, fmt.Errorf("%w: set the timezone separately", ErrInvalidExpression)
	}

	opts := cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor
	if seconds {
		opts |= cron.Second
	}

	schedule, err := cron.NewParser(opts).Parse(raw)
	if err != nil {
		return Expression{}, fmt.Errorf("%w: %s", ErrInvalidExpression, err.Error())
	}

	e := Expression{Raw: raw, schedule: schedule}

	if every, ok := schedule.(cron.ConstantDelaySchedule); ok {
		e.Every = every.Delay

		return e, nil
	}

	fields := strings.Fields(raw)
	if expanded, ok := descriptors[strings.ToLower(raw)]; ok {
		fields = strings.Fields(expanded)
		if seconds {
			fields = append([]string{"0"}, fields...)
		}
	}

	names := []string{FieldMinute, FieldHour, FieldDayOfMonth, FieldMonth, FieldDayOfWeek}
	if seconds {
		names = append([]string{FieldSecond}, names...)
	}

	for i, name := range names {
		e.Fields = append(e.Fields, Field{Name: name, Value: strings.ToUpper(fields[i])})
	}

	return e, nil
}

// Next returns up to n activation times after from, in the location of from.
// Expressions that never fire again, e.g. on February 30th, return fewer times.
func (e Expression) Next(from time.Time, n int) []time.Time {
	times := make([]time.Time, 0, n)

	next := from
	for range n {
		next = e.schedule.Next(next)
		if next.IsZero() {
			break
		}

		times = append(times, next)
	}

	return times
}

// Field returns the value of the named field or "*".
func (e Expression) Field(name string) string {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value
		}
	}

	return "*"
}

// LoadLocation resolves an IANA timezone name, empty is UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}

	return loc, nil
}

// BuildFields are the parts of an expression, an empty part matches every value.
type BuildFields struct {
	Second     string
	Minute     string
	Hour       string
	DayOfMonth string
	Month      string
	DayOfWeek  string
}

// Build joins the fields into an expression. The seconds field is only added, if it is set.
func Build(f BuildFields) string {
	parts := []string{f.Minute, f.Hour, f.DayOfMonth, f.Month, f.DayOfWeek}
	if f.Second != "" {
		parts = append([]string{f.Second}, parts...)
	}

	for i, p := range parts {
		p = strings.Join(strings.Fields(p), "")
		if p == "" {
			p = "*"
		}

		parts[i] = p
	}

	return strings.Join(parts, " ")
}
