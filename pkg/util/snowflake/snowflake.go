package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"hexachats_server/internal/config"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// Init sets up the snowflake node. Call once at startup.
func Init() {
	nodeOnce.Do(func() {
		machineID := config.GetConfig().SnowflakeConfig.MachineID
		if machineID < 0 || machineID > 1023 {
			machineID = 1
			zap.L().Warn("invalid machineId in config, using default value 1")
		}
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			zap.L().Fatal("failed to initialize snowflake node", zap.Error(err))
		}
	})
}

// GenerateID returns a new snowflake id.
func GenerateID() int64 {
	if node == nil {
		Init()
	}
	return node.Generate().Int64()
}

// GenerateIDString returns a new snowflake id as a string, avoiding
// JavaScript precision loss on int64 values.
func GenerateIDString() string {
	if node == nil {
		Init()
	}
	return node.Generate().String()
}
