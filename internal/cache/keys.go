package cache

import (
	"fmt"
	"time"
)

const (
	postKeyPrefix = "post:%d"
	// FeedKey caches the anonymous full-feed response.
	FeedKey = "feed:posts"
)

const (
	PostTTL = 5 * time.Minute
	// FeedTTL is short: the feed embeds engagement counts that churn quickly.
	FeedTTL = 30 * time.Second
)

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}
