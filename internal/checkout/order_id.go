package checkout

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	orderIDPrefix = "NS"
	suffixLen     = 5
	base36        = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewOrderID returns "NS" + unix millis + five random uppercase base-36 characters.
// Identifiers are statistically unlikely to collide but not guaranteed unique.
func NewOrderID(now time.Time) string {
	var b strings.Builder
	b.WriteString(orderIDPrefix)
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return strings.ToUpper(b.String())
}
