package locale

import (
	"testing"
	"time"
)

func TestGet(t *testing.T) {
	if got := Get("unexpEventFlea", English); got != "Fleamarket on same street" {
		t.Fatalf("unexpected translation %q", got)
	}
	if got := Get("unexpEventFlea", German); got != "Flohmarkt in der Straße" {
		t.Fatalf("unexpected translation %q", got)
	}
}

func TestGetFallsBackToGerman(t *testing.T) {
	if got, want := Get("holidayevent", "Français"), Get("holidayevent", German); got != want {
		t.Fatalf("unknown language should fall back to German, got %q", got)
	}
}

func TestGetUnknownKey(t *testing.T) {
	if got := Get("noSuchKey", English); got != "noSuchKey" {
		t.Fatalf("unknown key should be returned as-is, got %q", got)
	}
}

func TestWeekday(t *testing.T) {
	if got := Weekday(time.Wednesday, German); got != "Mittwoch" {
		t.Fatalf("unexpected weekday label %q", got)
	}
	if got := Weekday(time.Wednesday, English); got != "Wednesday" {
		t.Fatalf("unexpected weekday label %q", got)
	}
}

func TestSupported(t *testing.T) {
	if !Supported(German) || !Supported(English) {
		t.Fatal("both bundled languages must be supported")
	}
	if Supported("Français") {
		t.Fatal("unknown language reported as supported")
	}
}
