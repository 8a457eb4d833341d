package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/threatintel-platform/backend/internal/events"
	"github.com/threatintel-platform/backend/internal/logging"
)

// HTTPErrorHandler renders every failure as {"detail": <string>} so error
// responses keep a constant shape regardless of where they originate.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := "Internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			detail = m
		default:
			detail = fmt.Sprintf("%v", m)
		}
	}

	if werr := c.JSON(code, echo.Map{"detail": detail}); werr != nil {
		logging.FromContext(c.Request().Context()).Error("error response write failed", "error", werr)
	}
}

// publish sends an audit event best-effort; a failed publish is logged and
// never fails the request.
func publish(c echo.Context, p *events.Producer, key string, event map[string]any) {
	ctx := c.Request().Context()
	if err := p.Publish(ctx, key, event); err != nil {
		logging.FromContext(ctx).Error("audit event publish failed", "error", err)
	}
}
