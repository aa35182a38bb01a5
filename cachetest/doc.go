// Package cachetest provides generic test cases for pocketcache.Store implementations,
// and a controllable clock for testing expiration without sleeping.
package cachetest
