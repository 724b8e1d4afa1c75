//go:build !darwin && !windows

package i18n

// SystemLocale returns "". Elsewhere the locale variables are the only source.
func SystemLocale() string { return "" }
