// Package timezone keeps all time handling in the application timezone.
//
//	now := timezone.Now()
//	formatted := timezone.Format(now, constant.DateFormat)
//	t, err := timezone.Parse(constant.DateFormat, value)
//
// The location comes from the APP_TIMEZONE environment variable (IANA names
// such as "UTC" or "Asia/Kolkata") and is loaded when the package is
// imported.
package timezone
