// Package cache provides a persistent translation memory backed by SQLite,
// so repeated runs over similar spreadsheets reuse earlier translations.
package cache
