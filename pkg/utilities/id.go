package utilities

import (
	"os"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/segmentio/ksuid"
)

// nodes caches one snowflake node per node ID. A node must be reused across
// calls, otherwise two IDs generated in the same millisecond collide.
var nodes sync.Map // int64 -> *snowflake.Node

// NewKSUID generates a new globally unique KSUID string.
func NewKSUID() string {
	return ksuid.New().String()
}

// NewSnowflakeID generates a snowflake ID string using the node ID from
// SNOWFLAKE_NODE, defaulting to node 1 when unset or unparsable.
func NewSnowflakeID() string {
	nodeID, err := strconv.ParseInt(os.Getenv("SNOWFLAKE_NODE"), 10, 64)
	if err != nil {
		nodeID = 1
	}
	return NewSnowflakeIDWithNode(nodeID)
}

// NewSnowflakeIDWithNode generates a snowflake ID string using the provided node ID.
// If the node cannot be initialized (out of range), it falls back to a KSUID string.
func NewSnowflakeIDWithNode(nodeID int64) string {
	if n, ok := nodes.Load(nodeID); ok {
		return n.(*snowflake.Node).Generate().String()
	}
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return NewKSUID()
	}
	n, _ := nodes.LoadOrStore(nodeID, node)
	return n.(*snowflake.Node).Generate().String()
}
