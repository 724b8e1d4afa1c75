package i18n

import "golang.org/x/sys/windows"

// SystemLocale returns the first preferred Windows UI language, such as
// "zh-CN", or "" when it cannot be read.
func SystemLocale() string {
	langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if err != nil || len(langs) == 0 {
		return ""
	}
	return langs[0]
}
