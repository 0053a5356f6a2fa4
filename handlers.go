package geoweb

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gerayyy/qingflow-geo-web/content"
	"github.com/gerayyy/qingflow-geo-web/pagination"
	"github.com/gerayyy/qingflow-geo-web/views"
)

// siteView projects the app configuration into the shape templates need.
func (a *App) siteView() views.SiteConfig {
	return views.SiteConfig{
		Name:           a.Config.Name,
		URL:            a.Config.URL,
		Description:    a.Config.Description,
		Author:         a.Config.Author,
		OrgName:        a.Config.Organization.Name,
		OrgURL:         a.Config.Organization.URL,
		OrgLogoURL:     a.Config.Organization.LogoURL,
		AppName:        a.Config.Organization.AppName,
		AppCategory:    a.Config.Organization.AppCategory,
		AppDescription: a.Config.Organization.AppDescription,
	}
}

func (a *App) handleHome(c echo.Context) error {
	return Render(c, views.Home(a.siteView()))
}

func (a *App) handleBlogIndex(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	items, total, err := a.Store.ListPublishedPage(page, a.Config.PageSize)
	if err != nil {
		return err
	}
	pv := pagination.Paginate(page, total, a.Config.PageSize)
	return Render(c, views.BlogIndex(items, pv, a.siteView()))
}

func (a *App) handleArticle(c echo.Context) error {
	slug := c.Param("slug")
	article, err := a.Cache.GetArticle(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteView()))
		}
		return err
	}
	return Render(c, views.ArticlePage(article, a.siteView()))
}

func (a *App) handleSitemap(c echo.Context) error {
	items, err := a.Cache.List()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, items)
}

func (a *App) handleFeed(c echo.Context) error {
	items, err := a.Cache.List()
	if err != nil {
		return err
	}
	return a.renderRSS(c, items)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteView()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.siteView()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
