package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo"

	"iris/api/contexts"
)

/*
	Echo middleware to validate an optional `genotype` HTTP query parameter
	(a two-letter allele pair, e.g. "AG")
*/
func ValidateOptionalGenotypeAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ic := c.(*contexts.IrisContext)

		genotypeQP := strings.ToUpper(c.QueryParam("genotype"))
		if len(genotypeQP) > 0 {
			if len(genotypeQP) != 2 {
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid genotype query %s ! Please provide a two-letter allele pair", genotypeQP))
			}

			for _, letter := range strings.Split(genotypeQP, "") {
				if !strings.Contains("ACGT", letter) {
					return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid genotype query %s ! Alleles must be one of A, C, G, T", genotypeQP))
				}
			}

			ic.Genotype = genotypeQP
		}

		return next(c)
	}
}
