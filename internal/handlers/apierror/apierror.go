// Package apierror turns service errors into huma errors.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/card-history-server/internal/cardapi"
	"github.com/carson-networks/card-history-server/internal/history"
	"github.com/carson-networks/card-history-server/internal/operator"
	"github.com/carson-networks/card-history-server/internal/validation"
)

// FromService maps err to a huma error. A 4xx answer from the card service
// keeps its status and message; anything the card service could not handle
// becomes a 502 and an unreachable card service a 503.
func FromService(err error, fallback string) huma.StatusError {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return huma.NewError(http.StatusBadRequest, "validation failed", fieldErrs)
	}

	var statusErr *cardapi.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
			return huma.NewError(statusErr.StatusCode, statusErr.Message)
		}
		return huma.NewError(http.StatusBadGateway, statusErr.Message)
	}

	var decodeErr *cardapi.DecodeError
	if errors.As(err, &decodeErr) {
		return huma.NewError(http.StatusBadGateway, "unexpected card service response", err)
	}

	var networkErr *cardapi.NetworkError
	if errors.As(err, &networkErr) || errors.Is(err, operator.ErrStopped) {
		return huma.NewError(http.StatusServiceUnavailable, history.ErrConnection.Error(), err)
	}

	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
