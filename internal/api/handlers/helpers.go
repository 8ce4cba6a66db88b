package handlers

import (
	"net/http"

	"github.com/pratik-mahalle/fraudguard/internal/domain/risk"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/errors"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/utils"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/validator"
)

// writeError sends err as an API error. Errors that are not AppErrors
// become internal errors.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteError(w, errors.As(err))
}

// validate checks a request DTO and writes a validation error on failure
func validate(w http.ResponseWriter, v *validator.Validator, req interface{}) bool {
	if errs := v.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Invalid request", errs))
		return false
	}
	return true
}

// riskQuery builds a search query from validated parameters
func riskQuery(search, filter string) risk.Query {
	f, err := risk.ParseFilter(filter)
	if err != nil {
		f = risk.FilterAll
	}
	return risk.Query{Search: search, Risk: f}
}
