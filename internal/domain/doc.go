// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (container and signing-result records), the typed
// error kinds every fallible operation reports, and contracts (interfaces) only.
package domain
