//go:build !msort_debug

package msort

const debugChecks = false
