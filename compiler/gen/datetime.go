package gen

import (
	"strings"
)

// DateTimeProvider is a family of Kotlin date and time types together with
// the Exposed extension functions that declare columns of those types.
type DateTimeProvider struct {
	// Name is the configuration spelling of the provider.
	Name string
	// Date is the Kotlin type of date columns.
	Date TypeRef
	// DateTime is the Kotlin type of timestamp columns.
	DateTime TypeRef
	// DateAccessor declares date columns.
	DateAccessor Accessor
	// DateTimeAccessor declares timestamp columns.
	DateTimeAccessor Accessor
}

// Date-time providers shipped with Exposed.
var (
	JavaTime = &DateTimeProvider{
		Name:             "java-time",
		Date:             Ref("java.time.LocalDate"),
		DateTime:         Ref("java.time.LocalDateTime"),
		DateAccessor:     Accessor{ID: AccessorDate, Name: "date", Package: "org.jetbrains.exposed.sql.javatime"},
		DateTimeAccessor: Accessor{ID: AccessorDateTime, Name: "datetime", Package: "org.jetbrains.exposed.sql.javatime"},
	}
	KotlinDateTime = &DateTimeProvider{
		Name:             "kotlin-datetime",
		Date:             Ref("kotlinx.datetime.LocalDate"),
		DateTime:         Ref("kotlinx.datetime.Instant"),
		DateAccessor:     Accessor{ID: AccessorDate, Name: "date", Package: "org.jetbrains.exposed.sql.kotlin.datetime"},
		DateTimeAccessor: Accessor{ID: AccessorDateTime, Name: "timestamp", Package: "org.jetbrains.exposed.sql.kotlin.datetime"},
	}
	JodaTime = &DateTimeProvider{
		Name:             "joda-time",
		Date:             Ref("org.joda.time.DateTime"),
		DateTime:         Ref("org.joda.time.DateTime"),
		DateAccessor:     Accessor{ID: AccessorDate, Name: "date", Package: "org.jetbrains.exposed.sql.jodatime"},
		DateTimeAccessor: Accessor{ID: AccessorDateTime, Name: "datetime", Package: "org.jetbrains.exposed.sql.jodatime"},
	}
)

var dateTimeProviders = map[string]*DateTimeProvider{
	"java-time":       JavaTime,
	"javatime":        JavaTime,
	"kotlin-datetime": KotlinDateTime,
	"kotlindatetime":  KotlinDateTime,
	"joda-time":       JodaTime,
	"jodatime":        JodaTime,
}

// LookupDateTime returns the provider registered under name. The empty
// name selects JavaTime.
func LookupDateTime(name string) (*DateTimeProvider, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return JavaTime, nil
	}
	if p, ok := dateTimeProviders[key]; ok {
		return p, nil
	}
	return nil, NewConfigError("DateTime", name, "unknown date-time provider; use java-time, kotlin-datetime, or joda-time")
}

// Accessor returns the provider's accessor for AccessorDate or
// AccessorDateTime.
func (p *DateTimeProvider) Accessor(id AccessorID) (Accessor, bool) {
	switch id {
	case AccessorDate:
		return p.DateAccessor, true
	case AccessorDateTime:
		return p.DateTimeAccessor, true
	default:
		return Accessor{}, false
	}
}

// String returns the provider name.
func (p *DateTimeProvider) String() string { return p.Name }
