// Package expiration provides the time-to-live policy of a pocketcache.Cache.
//
// An Expiration is one of a closed set of variants: Seconds(n), Minutes(n), Hours(n)
// or Default. Every variant resolves to a whole number of seconds, and Default
// resolves to one hour. The zero value of Expiration is Default.
//
// Expirations can be written in configuration files as "30s", "5m", "3h" or
// "default"; see Parse.
package expiration
