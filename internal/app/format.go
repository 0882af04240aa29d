package app

import (
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// plural formats a count with its noun, "1 album" or "1,204 albums".
func plural(n int, singular, pluralForm string) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, singular, pluralForm)
}
