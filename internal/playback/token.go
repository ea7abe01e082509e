package playback

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// TokenSource hands out cache-busting tokens. Successive tokens never repeat.
type TokenSource interface {
	Next() string
}

// ClockTokens derives tokens from the wall clock plus a counter, so two calls
// within the same clock tick still differ.
type ClockTokens struct {
	seq atomic.Uint64
	Now func() time.Time
}

func (c *ClockTokens) Next() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	n := c.seq.Add(1)
	return strconv.FormatInt(now().UnixMilli(), 10) + "-" + strconv.FormatUint(n, 10)
}

// SequenceTokens yields prefix1, prefix2, ...
type SequenceTokens struct {
	Prefix string
	n      atomic.Uint64
}

func (s *SequenceTokens) Next() string {
	return s.Prefix + strconv.FormatUint(s.n.Add(1), 10)
}

// BustURL appends the token as the "t" query parameter.
func BustURL(src, token string) string {
	sep := "?"
	if strings.Contains(src, "?") {
		sep = "&"
	}
	return src + sep + "t=" + token
}
