package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contact"
)

// CalendarExporter renders the birthdays of a record set as an iCalendar feed.
type CalendarExporter struct {
	Clock Clock

	// ReminderTrigger is an ISO8601 duration such as "-P1D". Empty disables alarms.
	ReminderTrigger string

	// FormatSummary lets callers inject localized event titles.
	FormatSummary func(name string, age int) string
}

// Export builds the calendar. It returns the encoded feed and the number of
// events it contains.
func (g *CalendarExporter) Export(ctx context.Context, records []*contact.Record) ([]byte, int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Local time drives the year window; DTSTAMP is stamped in UTC.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	count := 0
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if !r.Birthday.IsSet() {
			continue
		}
		for _, e := range g.createEvents(r, now) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
			count++
		}
	}

	// An empty VCALENDAR fails encoding; serve the minimal valid stub instead.
	if count == 0 {
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), count, nil
}

// ExportFile writes the calendar to path.
func (g *CalendarExporter) ExportFile(ctx context.Context, path string, records []*contact.Record) (int, error) {
	data, count, err := g.Export(ctx, records)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return 0, fmt.Errorf("%s: %w", config.ErrICalWrite, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyPath, path,
		config.LogKeyCount, count)
	return count, nil
}

// createEvents generates events for the previous, current and next year,
// never before the year of birth.
func (g *CalendarExporter) createEvents(r *contact.Record, now time.Time) []*ical.Event {
	birth := r.Birthday.Date()
	loc := now.Location()

	var events []*ical.Event
	for _, y := range []int{now.Year() - 1, now.Year(), now.Year() + 1} {
		if y < birth.Year() {
			continue
		}
		age := y - birth.Year()

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, r.ID, y, config.ICalDomain))

		summary := fmt.Sprintf(config.FallbackSummaryAge, r.Name, age)
		if g.FormatSummary != nil {
			summary = g.FormatSummary(r.Name.String(), age)
		}
		event.Props.SetText(config.PropSummary, summary)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(time.Date(y, birth.Month(), birth.Day(), 0, 0, 0, 0, loc))
		event.Props.Set(dtStartProp)

		if g.ReminderTrigger != "" {
			addAlarm(event, g.ReminderTrigger, summary)
		}
		events = append(events, event)
	}
	return events
}

// addAlarm appends a DISPLAY alarm to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set the value directly to avoid a VALUE=TEXT parameter.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
