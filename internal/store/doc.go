// Package store defines the persistence interfaces consumed by the
// service layer, along with the shared error vocabulary and transaction
// helper. Implementations live in internal/platform/postgres.
package store
