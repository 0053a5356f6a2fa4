package geoweb

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gerayyy/qingflow-geo-web/content"
)

// publishedArticle is the success payload's article envelope.
type publishedArticle struct {
	ID     int64          `json:"id"`
	Slug   string         `json:"slug"`
	Title  string         `json:"title"`
	Status content.Status `json:"status"`
}

type publishResponse struct {
	Success bool             `json:"success"`
	Post    publishedArticle `json:"post"`
	Message string           `json:"message"`
}

type publishErrorResponse struct {
	Error   string          `json:"error"`
	Message string          `json:"message,omitempty"`
	Details []content.Issue `json:"details,omitempty"`
}

// handleWebhookPublish is the sole external write path. Each gate
// short-circuits: credential check, payload decode, schema validation,
// publishedAt stamp, upsert. Validation happens fully before any
// repository call, so no partial write is possible.
func (a *App) handleWebhookPublish(c echo.Context) error {
	ip := c.RealIP()
	if !a.webhookLimiter.Check(ip) {
		return c.JSON(http.StatusTooManyRequests, publishErrorResponse{Error: "Too many requests"})
	}

	// Constant-time compare: the credential check must not leak key
	// prefixes through response timing.
	key := c.Request().Header.Get("x-api-key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(a.Config.APISecretKey)) != 1 {
		a.webhookLimiter.Record(ip)
		return c.JSON(http.StatusUnauthorized, publishErrorResponse{Error: "Unauthorized"})
	}

	var req content.PublishRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, publishErrorResponse{
			Error:   "Validation failed",
			Details: []content.Issue{decodeIssue(err)},
		})
	}

	if err := req.Validate(); err != nil {
		var verr *content.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, publishErrorResponse{
				Error:   "Validation failed",
				Details: verr.Issues,
			})
		}
		return err
	}

	// Every webhook call is a fresh publish event: publishedAt is always
	// stamped with the current time, including on re-publishes of an
	// existing slug.
	article, err := a.Store.Upsert(req.Input(time.Now().UTC()))
	if err != nil {
		c.Logger().Errorf("publish %s: %v", req.Slug, err)
		return c.JSON(http.StatusInternalServerError, publishErrorResponse{
			Error:   "Internal server error",
			Message: "Failed to publish article",
		})
	}
	a.Cache.Invalidate()

	return c.JSON(http.StatusOK, publishResponse{
		Success: true,
		Post: publishedArticle{
			ID:     article.ID,
			Slug:   article.Slug,
			Title:  article.Title,
			Status: article.Status,
		},
		Message: "Article published successfully",
	})
}

// decodeIssue maps a JSON decode failure onto the validation issue shape
// so malformed bodies and schema violations report through one channel.
func decodeIssue(err error) content.Issue {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return content.Issue{
			Path:    typeErr.Field,
			Message: fmt.Sprintf("expected %s", typeErr.Type),
		}
	}
	return content.Issue{Message: "invalid JSON body"}
}
