package domain

import (
	"testing"
	"time"
)

func TestFormatStoreTime(t *testing.T) {
	if got, want := FormatStoreTime(0), time.Date(2001, 1, 1, 0, 0, 0, 0, time.Local).Format("2006-01-02T15:04:05"); got != want {
		t.Fatalf("epoch origin = %q, want %q", got, want)
	}

	// one hour one minute one second after the epoch, sub second truncated
	ns := int64((time.Hour + time.Minute + time.Second + 999*time.Millisecond))
	want := time.Date(2001, 1, 1, 1, 1, 1, 0, time.Local).Format("2006-01-02T15:04:05")
	if got := FormatStoreTime(ns); got != want {
		t.Fatalf("FormatStoreTime = %q, want %q", got, want)
	}
}

func TestRecordSenderLabels(t *testing.T) {
	self := MessageRecord{DateRaw: 0, Text: "hi", FromSelf: true}.Record("Amy Li")
	if self.Sender != SenderSelf {
		t.Fatalf("sender = %q, want %q", self.Sender, SenderSelf)
	}
	other := MessageRecord{DateRaw: 0, Text: "hey", FromSelf: false}.Record("Amy Li")
	if other.Sender != "Amy Li" {
		t.Fatalf("sender = %q, want contact label", other.Sender)
	}
	if other.Text != "hey" || other.Timestamp == "" {
		t.Fatalf("record = %+v", other)
	}
}
