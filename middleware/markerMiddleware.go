package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo"

	"iris/api/contexts"
)

/*
	Echo middleware to ensure a valid `rsid` path parameter was provided
*/
func MandateRsidAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ic := c.(*contexts.IrisContext)

		// check for rsid path parameter
		rsid := strings.ToLower(c.Param("rsid"))
		if len(rsid) == 0 {
			// if no id was provided return an error
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'rsid' path parameter!")
		}

		// verify: dbSNP identifiers are 'rs' followed by digits
		if !strings.HasPrefix(rsid, "rs") {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'rsid' path parameter! Identifiers begin with 'rs'")
		}

		if _, conversionErr := strconv.Atoi(rsid[2:]); conversionErr != nil {
			// if invalid rsid
			return echo.NewHTTPError(http.StatusBadRequest, "Error converting 'rsid' path parameter! Check your input")
		}

		ic.Rsid = rsid
		return next(c)
	}
}
