package score

import (
	"github.com/gin-gonic/gin"

	"defense-management-system/internal/global/response"
	"defense-management-system/tools"
)

func (m *ModuleScore) List(c *gin.Context) {
	page, size := tools.ParsePage(c.Query("page"), c.Query("size"))
	response.Page(c, nil, 0, page, size)
}
