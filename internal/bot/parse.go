package bot

import (
	"regexp"
	"strconv"
	"strings"
)

// Rating requires a comma before the number or a /10 suffix, so that
// "Дюна 2" is a title, not a rating of 2.
var (
	watchedCommaRe = regexp.MustCompile(`^(.+?),\s*(\d+)(?:/10)?$`)
	watchedSlashRe = regexp.MustCompile(`^(.+?)\s+(\d+)/10$`)
)

// parseWatched splits the text after "посмотрели" into a title and an
// optional rating. hasRating is false when no rating could be read;
// the title is then the whole trimmed text.
func parseWatched(text string) (title string, rating int, hasRating bool) {
	text = strings.TrimSpace(text)

	m := watchedCommaRe.FindStringSubmatch(text)
	if m == nil {
		m = watchedSlashRe.FindStringSubmatch(text)
	}
	if m == nil {
		return text, 0, false
	}

	r, err := strconv.Atoi(m[2])
	if err != nil {
		return text, 0, false
	}
	return strings.TrimSpace(m[1]), r, true
}
