package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
)

var tokenPattern = regexp.MustCompile(`#(\d+)`)

// NextToken derives the next queue token from the tokens already
// issued for a date (and session, when the caller scopes the list).
// It takes the highest numeric suffix seen and returns "#max+1";
// entries that do not match "#N" contribute nothing, and an empty
// list yields "#1".
//
// The sequence is recomputed from a snapshot on every call, never
// persisted: two concurrent bookings reading the same snapshot can
// derive the same token. True uniqueness needs a transactional
// counter or unique index in the persistence layer.
func NextToken(tokens []string) string {
	max := 0
	for _, tok := range tokens {
		m := tokenPattern.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("#%d", max+1)
}
