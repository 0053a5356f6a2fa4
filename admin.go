package geoweb

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gerayyy/qingflow-geo-web/content"
	"github.com/gerayyy/qingflow-geo-web/views"
)

// The admin surface is read-only: content arrives exclusively through the
// publish webhook, so the dashboard only inspects what is stored.

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.siteView(), false, CsrfToken(c)))
	}
	items, err := a.Store.ListAll()
	if err != nil {
		return err
	}
	return Render(c, views.AdminDashboard(a.siteView(), items, c.QueryParam("msg"), CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	return Render(c, views.AdminLogin(a.siteView(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// handleAdminArticle shows one article in any status with its stored
// payload pretty-printed, which is the quickest way to debug a webhook
// submission.
func (a *App) handleAdminArticle(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	article, err := a.Store.GetAny(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	raw, err := json.MarshalIndent(article, "", "  ")
	if err != nil {
		return err
	}
	return Render(c, views.AdminArticle(a.siteView(), article, string(raw), CsrfToken(c)))
}
