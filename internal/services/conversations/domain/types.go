// Package domain holds conversation types shared by repo, service, and transport
package domain

import "time"

// SenderSelf labels messages authored by the store owner
const SenderSelf = "self"

// MessageRecord is one message row as read from the store
type MessageRecord struct {
	// DateRaw is nanoseconds since the store epoch
	DateRaw int64

	// Text is the message body, never empty for extracted rows
	Text string

	// FromSelf is the store's authorship flag
	FromSelf bool
}

// ExportRecord is one entry of the export artifact
// field order is part of the artifact contract
type ExportRecord struct {
	Timestamp string `json:"timestamp"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
}

// ExportInput names the conversation to export and where to put it
type ExportInput struct {
	// Name is the free text contact name to resolve
	Name string

	// Out is the artifact path, "" picks the default timestamped name
	Out string
}

// ExportResult reports a finished export
type ExportResult struct {
	// Path is where the artifact was written
	Path string

	// Messages is the number of records exported
	Messages int

	// ExportID tags this run in responses and logs
	ExportID string
}

// storeEpoch is 2001-01-01 in the machine's zone, matching how the
// store records dates on the host it lives on
var storeEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.Local)

// FormatStoreTime converts store nanoseconds to a local ISO-8601 second timestamp
func FormatStoreTime(ns int64) string {
	return storeEpoch.Add(time.Duration(ns)).Format("2006-01-02T15:04:05")
}

// Record labels one store row for the export artifact
func (m MessageRecord) Record(contactLabel string) ExportRecord {
	sender := contactLabel
	if m.FromSelf {
		sender = SenderSelf
	}
	return ExportRecord{
		Timestamp: FormatStoreTime(m.DateRaw),
		Sender:    sender,
		Text:      m.Text,
	}
}
