package http

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CallerHeader carries the id of the authenticated user.
const CallerHeader = "X-User-ID"

func callerID(c echo.Context) (kernel.UserID, error) {
	return kernel.NewUserID(c.Request().Header.Get(CallerHeader))
}

func orderIDParam(c echo.Context) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return kernel.UUIDFromString(id.String())
}

func userIDParam(c echo.Context) (kernel.UserID, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UserID{}, errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	return kernel.NewUserID(id)
}

// limitParam returns 0 when the limit is absent; queries apply their default.
func limitParam(c echo.Context) (int, error) {
	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("limit", err)
	}
	if limit == nil {
		return 0, nil
	}
	return *limit, nil
}

func roleParam(c echo.Context) (string, error) {
	var role string
	if err := runtime.BindQueryParameter("form", true, true, "role", c.QueryParams(), &role); err != nil {
		return "", errs.NewValueIsRequiredErrorWithCause("role", err)
	}
	return role, nil
}
