package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/http/middleware"
	"github.com/Wajeehathabbu2206/CabBookingSystem/internal/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS for the HTTP surface is handled by middleware; the stats feed
	// carries no sensitive data, so any origin may subscribe.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (a *App) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, a.dashboardService().Snapshot())
}

// DashboardLive upgrades to a websocket and pushes a stats frame on connect
// and then once per refresh interval. The feed only reads; the collections
// are never written from here.
func (a *App) DashboardLive(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", "websocket upgrade failed: "+err.Error())
		return
	}

	reqID := middleware.GetRequestID(c)
	utils.LogEvent(reqID, "dashboard", "live_connect", "client="+c.ClientIP())

	a.streamDashboard(conn, reqID)
}

func (a *App) streamDashboard(conn *websocket.Conn, reqID string) {
	defer conn.Close()

	// drain client frames so close messages are noticed
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	dash := a.dashboardService()
	if err := conn.WriteJSON(dash.Snapshot()); err != nil {
		return
	}

	refresh := a.Env.DashboardRefresh
	if refresh <= 0 {
		refresh = 5 * time.Second
	}
	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			utils.LogEvent(reqID, "dashboard", "live_disconnect", "client closed")
			return
		case <-ticker.C:
			if err := conn.WriteJSON(dash.Snapshot()); err != nil {
				utils.LogEvent(reqID, "dashboard", "live_disconnect", "write failed: "+err.Error())
				return
			}
		}
	}
}
