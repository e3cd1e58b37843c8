package cbadv

import (
	"fmt"
	"regexp"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
)

var htmlTagPattern = regexp.MustCompile("<[/]?[a-zA-Z-]+.*?>")

// ErrorResponse is the error payload the exchange returns on non-2xx
// responses, e.g. {"error":"INVALID_ARGUMENT","message":"..."}.
type ErrorResponse struct {
	*requestgen.Response

	Code    string `json:"error"`
	Message string `json:"message"`
	Details string `json:"error_details"`
}

func (r *ErrorResponse) Error() string {
	return fmt.Sprintf("%s %s: %d %s %s",
		r.Response.Response.Request.Method,
		r.Response.Response.Request.URL.String(),
		r.Response.Response.StatusCode,
		r.Code,
		r.Message,
	)
}

// ToErrorResponse parses the exchange error payload out of a failed response.
// Callers usually reach here by pulling *requestgen.ErrResponse out of a
// request error with errors.As and passing its Response in.
func ToErrorResponse(response *requestgen.Response) (errorResponse *ErrorResponse, err error) {
	errorResponse = &ErrorResponse{Response: response}

	contentType := response.Header.Get("content-type")
	switch contentType {
	case "text/json", "application/json", "application/json; charset=utf-8":
		var err = response.DecodeJSON(errorResponse)
		if err != nil {
			return errorResponse, errors.Wrapf(err, "failed to decode json for response: %d %s", response.StatusCode, string(response.Body))
		}
		return errorResponse, nil
	case "text/html":
		// convert 5xx errors from the gateway HTML page
		errorResponse.Message = htmlTagPattern.ReplaceAllLiteralString(string(response.Body), "")
		return errorResponse, nil
	case "text/plain":
		errorResponse.Message = string(response.Body)
		return errorResponse, nil
	}

	return errorResponse, fmt.Errorf("unexpected response content type %s", contentType)
}
