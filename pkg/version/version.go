package version

import (
	"fmt"
)

// 以下变量值在构建时通过 --ldflags 注入
var (
	// Version 版本号
	Version = ""
	// GitCommit CommitID
	GitCommit = ""
	// BuildTime 构建时间
	BuildTime = ""
)

// GetVersion 获取版本信息
func GetVersion() string {
	return fmt.Sprintf("\nVersion  : %s\nCommit   : %s\nBuildTime: %s", Version, GitCommit, BuildTime)
}
