package entity

// CalendarEvent is a provider event passed through as-is.
type CalendarEvent map[string]any

// ID returns the provider event id, or "" when absent.
func (e CalendarEvent) ID() string {
	return e.str("id")
}

// Subject returns the event subject, or "" when absent.
func (e CalendarEvent) Subject() string {
	return e.str("subject")
}

// Start returns the raw start object ({dateTime, timeZone}).
func (e CalendarEvent) Start() map[string]any {
	v, _ := e["start"].(map[string]any)

	return v
}

// End returns the raw end object ({dateTime, timeZone}).
func (e CalendarEvent) End() map[string]any {
	v, _ := e["end"].(map[string]any)

	return v
}

func (e CalendarEvent) str(key string) string {
	v, _ := e[key].(string)

	return v
}

// EventList is a fetched collection of events. A successful fetch with zero
// events is an empty non-nil list.
type EventList []CalendarEvent
