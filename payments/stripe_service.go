package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mainamike/course_marketplace/payouts"
)

const stripeAPIBase = "https://api.stripe.com/v1"

// StripeClient issues Connect transfers. It is constructed once in main
// and handed to the payout engine; there is no package-level instance.
type StripeClient struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		secretKey: secretKey,
		baseURL:   stripeAPIBase,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

type stripeTransfer struct {
	ID string `json:"id"`
}

type stripeErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateTransfer sends one transfer to a connected account. Only a 4xx
// response counts as a definite rejection; a 5xx, like any transport
// failure or timeout, is reported as unknown outcome because the request
// may still have been applied on Stripe's side.
func (c *StripeClient) CreateTransfer(ctx context.Context, amountCents int64, currency, destination, idempotencyKey, memo string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	form.Set("destination", destination)
	form.Set("description", memo)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/transfers", c.baseURL), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.secretKey))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", payouts.ErrTransferTimeout
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		var stripeErr stripeErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&stripeErr); decodeErr != nil || stripeErr.Error.Message == "" {
			return "", &payouts.TransferRejectedError{Reason: resp.Status}
		}
		return "", &payouts.TransferRejectedError{Reason: stripeErr.Error.Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", payouts.ErrTransferTimeout
	}

	var transfer stripeTransfer
	if err := json.NewDecoder(resp.Body).Decode(&transfer); err != nil {
		return "", payouts.ErrTransferTimeout
	}

	return transfer.ID, nil
}
