// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/taxconf/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := responseDetail(resp)

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidJSON, detail)
	case resp.StatusCode() == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrBodyTooLarge, detail)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), detail)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), detail)
	}
}

// responseDetail prefers the message of a JSON status response and falls
// back to the raw body, then to the status text.
func responseDetail(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var status models.StatusResponse
	if err := json.Unmarshal([]byte(body), &status); err == nil && status.Message != "" {
		return status.Message
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
