package ginx

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	// MaxLimit 排行榜单次最大数量
	MaxLimit = 50
	// DefaultLimit 排行榜默认数量
	DefaultLimit = 10
	// MinLimit 排行榜单次最小数量
	MinLimit = 1
)

// GetLimitFromQuery ...
func GetLimitFromQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return DefaultLimit
	}
	limit = lo.Min([]int{MaxLimit, limit})
	return lo.Max([]int{MinLimit, limit})
}
