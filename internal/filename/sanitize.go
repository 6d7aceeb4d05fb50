package filename

import (
	"regexp"
	"unicode/utf8"
)

// MaxLength is the byte limit most filesystems put on a single path element.
const MaxLength = 255

var (
	illegalChars    = regexp.MustCompile(`[/?<>\\:*|"]`)
	controlChars    = regexp.MustCompile(`[\x00-\x1f\x{80}-\x{9f}]`)
	onlyDots        = regexp.MustCompile(`^\.+$`)
	windowsReserved = regexp.MustCompile(`(?i)^(con|prn|aux|nul|com[0-9]|lpt[0-9])(\..*)?$`)
	windowsTrailing = regexp.MustCompile(`[. ]+$`)
)

// Sanitize strips everything that is not allowed in a filename on common
// filesystems: path separators and other reserved characters, control
// characters, names consisting only of dots, Windows device names and
// trailing dots or spaces. The result is cut to MaxLength bytes.
func Sanitize(name string) string {
	name = illegalChars.ReplaceAllString(name, "")
	name = controlChars.ReplaceAllString(name, "")
	name = onlyDots.ReplaceAllString(name, "")
	name = windowsReserved.ReplaceAllString(name, "")
	name = windowsTrailing.ReplaceAllString(name, "")
	return truncate(name, MaxLength)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
