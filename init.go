package tabledat

import (
	"github.com/mgutz/logxi/v1"
	"github.com/mgutz/tabledat/common"
)

var logger log.Logger

// bufPool recycles the buffers statements are assembled in.
var bufPool = common.NewBufferPool(256)

// defaultEvents receives events from tables created without WithEvents.
var defaultEvents EventReceiver

func init() {
	logger = log.New("tabledat")
	defaultEvents = NewLogEventReceiver(logger)
}
