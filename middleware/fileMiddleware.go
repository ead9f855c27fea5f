package middleware

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo"

	"iris/api/contexts"
	parsingService "iris/api/services/parsing"
)

/*
	Echo middleware to ensure a valid `file` HTTP query parameter was
	provided, naming a genotype file inside the configured directory
*/
func MandateFileAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ic := c.(*contexts.IrisContext)

		fileQP := c.QueryParam("file")
		if len(fileQP) == 0 {
			// if no file was provided return an error
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'file' query parameter for analysis!")
		}

		// disallow path traversal outside the genotype directory
		if strings.Contains(fileQP, "..") || filepath.Base(fileQP) != fileQP {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'file' query parameter! Please only specify a filename")
		}

		if !parsingService.HasSupportedExtension(fileQP) {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Invalid 'file' query parameter! Supported extensions : %s", strings.Join(parsingService.GenotypeFileExtensions, ", ")))
		}

		ic.Filename = fileQP
		return next(c)
	}
}
