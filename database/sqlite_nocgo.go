//go:build !cgo

package database

const embeddedSQLAvailable = false
