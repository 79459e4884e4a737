package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"delivery-api/internal/generated/servers"
	"delivery-api/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	problemContentType = "application/problem+json"
	problemBaseURI     = "https://delivery-api.com/problems/"
)

// NewProblemHandler renders every handler error as an RFC 7807 problem document.
// Domain errors are classified with errs.KindOf; 5xx errors are logged.
func NewProblemHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		problem := toProblem(err)
		problem.Instance = ctx.Request().URL.Path

		if problem.Status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", ctx.Request().Method),
				zap.String("path", problem.Instance),
				zap.Error(err),
			)
		}

		if writeErr := writeProblem(ctx, problem); writeErr != nil {
			logger.Error("failed to write problem response", zap.Error(writeErr))
		}
	}
}

func toProblem(err error) servers.Problem {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return servers.Problem{
			Type:        problemBaseURI + "validation-error",
			Title:       "Validation Error",
			Status:      http.StatusBadRequest,
			Detail:      "One or more fields have validation errors",
			FieldErrors: validationErr.Fields,
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fromHTTPError(httpErr)
	}

	switch errs.KindOf(err) {
	case errs.KindInvalidArgument, errs.KindInvalidState:
		return servers.Problem{
			Type:   problemBaseURI + "business-rule-violation",
			Title:  "Business Rule Violation",
			Status: http.StatusBadRequest,
			Detail: err.Error(),
		}
	case errs.KindNotFound:
		return servers.Problem{
			Type:   problemBaseURI + "resource-not-found",
			Title:  "Resource Not Found",
			Status: http.StatusNotFound,
			Detail: err.Error(),
		}
	case errs.KindConflict:
		return servers.Problem{
			Type:   problemBaseURI + "conflict",
			Title:  "Conflict",
			Status: http.StatusConflict,
			Detail: err.Error(),
		}
	default:
		return internalProblem()
	}
}

func fromHTTPError(httpErr *echo.HTTPError) servers.Problem {
	switch {
	case httpErr.Code == http.StatusNotFound:
		return servers.Problem{
			Type:   problemBaseURI + "resource-not-found",
			Title:  "Resource Not Found",
			Status: http.StatusNotFound,
			Detail: fmt.Sprint(httpErr.Message),
		}
	case httpErr.Code >= http.StatusInternalServerError:
		return internalProblem()
	default:
		return servers.Problem{
			Type:   problemBaseURI + "validation-error",
			Title:  http.StatusText(httpErr.Code),
			Status: httpErr.Code,
			Detail: fmt.Sprint(httpErr.Message),
		}
	}
}

func internalProblem() servers.Problem {
	return servers.Problem{
		Type:   problemBaseURI + "internal-server-error",
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: "An unexpected error occurred",
	}
}

func writeProblem(ctx echo.Context, problem servers.Problem) error {
	body, err := json.Marshal(problem)
	if err != nil {
		return err
	}

	if ctx.Request().Method == http.MethodHead {
		return ctx.NoContent(problem.Status)
	}
	return ctx.Blob(problem.Status, problemContentType, body)
}
