//go:build !globdebug

package glob

const debugChecks = false
