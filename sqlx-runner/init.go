package runner

import (
	"time"

	"github.com/mgutz/logxi/v1"
)

var logger log.Logger

// LogQueriesThreshold is the threshold for logging "slow" queries. Zero
// disables slow query logging.
var LogQueriesThreshold time.Duration

// ConnectTimeout bounds how long Open keeps retrying the first ping.
var ConnectTimeout = 30 * time.Second

func init() {
	logger = log.New("tabledat:sqlx")
}
