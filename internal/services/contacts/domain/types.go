// Package domain holds contact types shared by repo, service, and transport
package domain

// Contact is one row of the address book snapshot
type Contact struct {
	// Name is the display name as exported, trimmed
	Name string

	// Phone is the stored identity, phone number or Apple ID email
	Phone string
}
