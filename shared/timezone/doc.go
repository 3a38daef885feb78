// Package timezone provides clinic-local time utilities.
//
// Appointment slots, calendar posts and response metadata are always rendered
// in the clinic's timezone, configured via the APP_TIMEZONE environment
// variable (standard IANA names such as "UTC" or "Asia/Jakarta"). The location
// is loaded once when the package is imported.
package timezone
