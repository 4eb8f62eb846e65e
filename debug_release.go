//go:build !capypdf_debug

package capypdf

const debugAssertsEnabled = false
