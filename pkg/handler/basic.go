package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binjuhor/likepost/pkg/utils/ginx"
)

func Get404(c *gin.Context) {
	ginx.SetErrResp(c, http.StatusNotFound, "NotFound", "resource not found")
}

func GetHealthz(c *gin.Context) {
	ginx.SetResp(c, http.StatusOK, "ok")
}
