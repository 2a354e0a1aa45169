package clients

import "time"

const (
	MAX_RETRIES     = 3
	RETRY_DELAY     = 250 * time.Millisecond
	DEFAULT_TIMEOUT = 60 * time.Second
	USER_AGENT      = "textlens-client/1.0 (+https://github.com/spacesedan/textlens)"
)
