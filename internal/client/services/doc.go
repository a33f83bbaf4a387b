// Package services contains the storefront application services used by the
// CLI: the session/auth manager, catalog browsing, checkout, the bookings
// view and the admin dashboard. All persistent state goes through a
// RecordStore.
package services
