package todosdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-success response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("todo api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("todo api: %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse builds an APIError from an envelope body, falling back
// to the raw body when it is not JSON.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var env MessageResponse
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Message = env.Message
	} else if len(body) > 0 {
		apiErr.Message = string(body)
	}
	return apiErr
}
