package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agro/pkg/app"
	"agro/pkg/httpx"
)

type SyncCtrl struct{ app *app.App }

func New(a *app.App) *SyncCtrl { return &SyncCtrl{app: a} }

// Trigger runs a reconciliation pass. Offline is reported distinctly
// from a sync that failed while online.
func (ct *SyncCtrl) Trigger(c echo.Context) error {
	if !ct.app.IsOnline() {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "offline, cannot sync",
		})
	}
	if err := ct.app.SyncData(c.Request().Context()); err != nil {
		return httpx.Error(c, err)
	}
	pending, err := ct.app.HasPendingSync()
	if err != nil {
		return httpx.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"synced":       true,
		"pending_sync": pending,
	})
}

func (ct *SyncCtrl) Status(c echo.Context) error {
	pendingCols, err := ct.app.PendingCollections()
	if err != nil {
		return httpx.Error(c, err)
	}
	mon := ct.app.Monitor()
	status := map[string]any{
		"online":              mon.Online(),
		"pending_sync":        len(pendingCols) > 0,
		"pending_collections": pendingCols,
		"last_online":         mon.LastOnline(),
		"last_offline":        mon.LastOffline(),
	}
	if rtt := mon.Quality(); rtt != nil {
		status["rtt_ms"] = rtt.Milliseconds()
	}
	return c.JSON(http.StatusOK, status)
}
