package simulation

import (
	"testing"
	"time"

	"cakesim/models"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestClassifyNewYear(t *testing.T) {
	dt := Classify(date("2025-01-01"))
	if dt.Kind != models.DayHoliday {
		t.Fatalf("expected holiday on Jan 1, got %v", dt)
	}
	if dt.Holiday != NewYearName {
		t.Fatalf("expected %q, got %q", NewYearName, dt.Holiday)
	}
}

func TestClassifyAroundNewYear(t *testing.T) {
	before := Classify(date("2024-12-31"))
	if before.Kind != models.DayBeforeHoliday || before.Holiday != NewYearName {
		t.Fatalf("expected day before %q, got %v", NewYearName, before)
	}

	after := Classify(date("2025-01-02"))
	if after.Kind != models.DayAfterHoliday || after.Holiday != NewYearName {
		t.Fatalf("expected day after %q, got %v", NewYearName, after)
	}
}

func TestClassifyLabourDay(t *testing.T) {
	dt := Classify(date("2025-05-01"))
	if dt.Kind != models.DayHoliday {
		t.Fatalf("expected holiday on May 1, got %v", dt)
	}
}

// Easter weekend 2025: Good Friday Apr 18, Easter Monday Apr 21. The
// Saturday between classifies as "day after" and the Sunday as "day
// before", exercising the previous-day-first precedence.
func TestClassifyEasterWeekendPrecedence(t *testing.T) {
	saturday := Classify(date("2025-04-19"))
	if saturday.Kind != models.DayAfterHoliday {
		t.Fatalf("expected day after for Easter Saturday, got %v", saturday)
	}

	sunday := Classify(date("2025-04-20"))
	if sunday.Kind != models.DayBeforeHoliday {
		t.Fatalf("expected day before for Easter Sunday, got %v", sunday)
	}
}

func TestClassifyNormalDay(t *testing.T) {
	dt := Classify(date("2025-07-15"))
	if dt.Kind != models.DayNormal {
		t.Fatalf("expected normal day, got %v", dt)
	}
	if dt.String() != "normal" {
		t.Fatalf("expected canonical form \"normal\", got %q", dt.String())
	}
}

func TestDayTypeString(t *testing.T) {
	dt := models.DayType{Kind: models.DayBeforeHoliday, Holiday: "Neujahr"}
	if dt.String() != "day before Neujahr" {
		t.Fatalf("unexpected canonical form %q", dt.String())
	}
	if dt.IsClosure() {
		t.Fatalf("day before a holiday must not be a closure")
	}
	if !(models.DayType{Kind: models.DayHoliday, Holiday: "Neujahr"}).IsClosure() {
		t.Fatalf("holiday must be a closure")
	}
}
