// Package models defines the records persisted by the storefront: cars, users
// and bookings. JSON field names match the slot layout, validate tags are
// checked whenever records are read back from storage.
package models
