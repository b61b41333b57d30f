package cryptopay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

// Client Crypto Pay API mijozi
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient yangi Crypto Pay mijozini yaratish
func NewClient(token, baseURL string) *Client {
	return &Client{
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type invoiceResult struct {
	InvoiceID int64  `json:"invoice_id"`
	PayURL    string `json:"pay_url"`
	Status    string `json:"status"`
}

type apiResponse struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
}

// CreateInvoice yangi hisob yaratish
func (c *Client) CreateInvoice(ctx context.Context, amount float64, currency, description, payload string) (*entity.Invoice, error) {
	form := url.Values{}
	form.Set("asset", currency)
	form.Set("amount", fmt.Sprintf("%.2f", amount))
	form.Set("description", description)
	form.Set("payload", payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/createInvoice", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Crypto-Pay-API-Token", c.token)

	var result invoiceResult
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("createInvoice: %w", err)
	}

	return &entity.Invoice{
		ID:        result.InvoiceID,
		Payload:   payload,
		Amount:    amount,
		Currency:  currency,
		PayURL:    result.PayURL,
		Status:    entity.InvoiceStatus(result.Status),
		CreatedAt: time.Now(),
	}, nil
}

// GetInvoiceStatus hisob holatini so'rash
func (c *Client) GetInvoiceStatus(ctx context.Context, invoiceID int64) (entity.InvoiceStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/getInvoice?invoice_id=%d", c.baseURL, invoiceID), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Crypto-Pay-API-Token", c.token)

	var result invoiceResult
	if err := c.do(req, &result); err != nil {
		return "", fmt.Errorf("getInvoice: %w", err)
	}

	return entity.InvoiceStatus(result.Status), nil
}

// do so'rovni bajarish va javobni parse qilish
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provayder %d qaytardi: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("javobni parse qilib bo'lmadi: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("API error: %s", truncate(string(body), 200))
	}

	return json.Unmarshal(apiResp.Result, out)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
