// Package ical converts events to and from iCalendar files.
package ical

import (
	"fmt"
	"io"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/javiermolinar/agenda/internal/event"
)

// ProductID identifies agenda as the producer of exported calendars.
const ProductID = "-//agenda//agenda//EN"

// uidNamespace scopes the name-based UIDs of exported events.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/javiermolinar/agenda"))

// UID returns the stable iCalendar UID of an event. Exporting the same event
// twice yields the same UID so calendar clients update instead of duplicating.
func UID(id int64) string {
	return uuid.NewSHA1(uidNamespace, []byte(strconv.FormatInt(id, 10))).String() + "@agenda"
}

// Export writes events as all-day VEVENTs.
func Export(w io.Writer, events []*event.Event, now time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)

	for _, e := range events {
		day, err := e.Day()
		if err != nil {
			return fmt.Errorf("event %d: %w", e.ID, err)
		}
		start := day.Time(time.UTC)

		ve := cal.AddEvent(UID(e.ID))
		ve.SetSummary(e.Title)
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(start.AddDate(0, 0, 1))
		ve.SetDtStampTime(now.UTC())
		if !e.CreatedAt.IsZero() {
			ve.SetCreatedTime(e.CreatedAt.UTC())
		}
		if !e.UpdatedAt.IsZero() {
			ve.SetModifiedAt(e.UpdatedAt.UTC())
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}
