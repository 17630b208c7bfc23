package ids

import (
	"fmt"
	"regexp"
	"strconv"
)

// Next returns <prefix>-<max+1>, zero padded to two digits. IDs that do not
// match ^<prefix>-(\d+)$ are ignored. Nothing is persisted, so deleting the
// highest record frees its number.
func Next(prefix string, existing []string) string {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-(\d+)$`)

	max := 0
	for _, id := range existing {
		m := re.FindStringSubmatch(id)
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
	return fmt.Sprintf("%s-%02d", prefix, max+1)
}
