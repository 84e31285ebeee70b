package emr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"clinic-front-desk/config"
	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/queue"

	"github.com/sirupsen/logrus"
)

// RemoteError is a rejection from the remote record store (a 4xx/5xx with a
// message). Transport failures are returned as wrapped plain errors instead.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("emr: remote rejected request (%d): %s", e.StatusCode, e.Message)
}

// Client talks to the remote EMR over its REST surface. It implements
// repository.AppointmentAPI.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(cfg config.EMRConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// FetchAppointments loads the appointment window for a date scope. Single
// dates are sent as from==to; a zero scope sends no range parameters and
// gets the remote default window.
func (c *Client) FetchAppointments(ctx context.Context, scope queue.DateSelection) ([]entity.Appointment, error) {
	params := url.Values{}
	switch scope.Kind {
	case queue.SelectionSingle:
		params.Set("from", scope.Date)
		params.Set("to", scope.Date)
	case queue.SelectionRange:
		params.Set("from", scope.Start)
		params.Set("to", scope.End)
	}

	path := "/api/appointments"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out struct {
		Appointments []entity.Appointment `json:"appointments"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Appointments, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) error {
	path := fmt.Sprintf("/api/appointments/%s/status", url.PathEscape(id))
	body := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

func (c *Client) UpdateAppointmentPayment(ctx context.Context, id string, status entity.PaymentStatus) (*entity.BillReceipt, error) {
	path := fmt.Sprintf("/api/appointments/%s/payment-status", url.PathEscape(id))
	body := map[string]string{"paymentStatus": string(status)}

	var receipt entity.BillReceipt
	if err := c.do(ctx, http.MethodPatch, path, body, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *Client) UpdateBillPayment(ctx context.Context, billID string, status entity.PaymentStatus) (*entity.BillReceipt, error) {
	path := fmt.Sprintf("/api/bills/%s/payment-status", url.PathEscape(billID))
	body := map[string]string{"paymentStatus": string(status)}

	var receipt entity.BillReceipt
	if err := c.do(ctx, http.MethodPatch, path, body, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// do sends one request and decodes the response into out (when non-nil).
// Non-2xx responses become *RemoteError carrying the remote message when one
// is present.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("emr: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("emr: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("emr: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("emr: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remoteErr := &RemoteError{StatusCode: resp.StatusCode, Message: "remote request failed"}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &payload); err == nil && payload.Message != "" {
			remoteErr.Message = payload.Message
		}
		c.log.Warnf("EMR rejected %s %s: %d %s", method, path, resp.StatusCode, remoteErr.Message)
		return remoteErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("emr: decode response: %w", err)
		}
	}
	return nil
}
