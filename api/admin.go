package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

// adminRefreshSnapshots is an internal only api to trigger the task that
// recomputes venue activity snapshots
func (s *Server) adminRefreshSnapshots(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "refresh_venue_snapshots",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
