//go:build cgo

package database

// go-sqlite3 需要 cgo
const embeddedSQLAvailable = true
