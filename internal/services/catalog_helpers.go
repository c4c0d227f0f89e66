package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	apperrors "github.com/amaumene/cinetro/internal/errors"
	"github.com/amaumene/cinetro/internal/models"
)

const (
	defaultContactSuccess = "Your message has been sent successfully! We will get back to you soon."
	defaultContactFailure = "Failed to send message"
	maxErrorBody          = 64 << 10
)

// getJSON fetches path and decodes the body into out. failMsg is the user-facing
// prefix of every error it returns.
func (c *Catalog) getJSON(ctx context.Context, path, failMsg string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint(path), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(ctx, req, failMsg)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warnf("[Catalog] %s %s returned %d", req.Method, req.URL.Path, resp.StatusCode)
		return errors.WithStack(apperrors.NewStatusError(failMsg, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Errorf("[Catalog] failed to decode %s: %v", req.URL.Path, err)
		return errors.WithStack(apperrors.NewDecodeError(failMsg, err))
	}
	return nil
}

func (c *Catalog) postContact(ctx context.Context, form models.ContactForm) (*models.ContactResponse, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode contact form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint("contact/"), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build contact request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(ctx, req, defaultContactFailure)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out models.ContactResponse
	// A body that is not JSON still leaves the status to decide the outcome.
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := out.Error
		if msg == "" {
			msg = defaultContactFailure
		}
		c.logger.Warnf("[Catalog] contact submission rejected with %d: %s", resp.StatusCode, msg)
		return nil, &apperrors.CatalogError{
			Type:    apperrors.ErrorTypeHTTPStatus,
			Message: msg,
			Status:  resp.StatusCode,
		}
	}

	if out.Message == "" {
		out.Message = defaultContactSuccess
	}
	c.logger.Infof("[Catalog] contact message from %s delivered", form.Email)
	return &out, nil
}

// do waits for the rate limiter and sends req, mapping transport failures.
func (c *Catalog) do(ctx context.Context, req *http.Request, failMsg string) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, errors.WithStack(apperrors.NewNetworkError(failMsg, err))
	}

	c.logger.Debugf("[Catalog] %s %s", req.Method, req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("[Catalog] %s %s failed: %v", req.Method, req.URL.Path, err)
		return nil, errors.WithStack(apperrors.NewNetworkError(failMsg, err))
	}
	return resp, nil
}
