package cryptopay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

func TestCreateInvoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/createInvoice" {
			t.Errorf("kutilmagan path: %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("POST kutilgan edi, keldi %q", r.Method)
		}
		if got := r.Header.Get("Crypto-Pay-API-Token"); got != "test-token" {
			t.Errorf("token header noto'g'ri: %q", got)
		}

		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("asset"); got != "USDT" {
			t.Errorf("asset = %q, kutilgan USDT", got)
		}
		if got := r.PostForm.Get("amount"); got != "3.00" {
			t.Errorf("amount = %q, kutilgan 3.00", got)
		}
		if got := r.PostForm.Get("payload"); got != "order-1" {
			t.Errorf("payload = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"invoice_id":123,"pay_url":"https://t.me/CryptoBot?start=abc","status":"active"}}`))
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)

	invoice, err := client.CreateInvoice(context.Background(), 3, "USDT", "Премиум", "order-1")
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	if invoice.ID != 123 {
		t.Fatalf("invoice ID = %d, kutilgan 123", invoice.ID)
	}
	if invoice.PayURL != "https://t.me/CryptoBot?start=abc" {
		t.Fatalf("PayURL = %q", invoice.PayURL)
	}
	if invoice.Status != entity.InvoiceStatusActive {
		t.Fatalf("status = %q, kutilgan active", invoice.Status)
	}
}

func TestGetInvoiceStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/getInvoice" {
			t.Errorf("kutilmagan path: %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("invoice_id"); got != "123" {
			t.Errorf("invoice_id = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"invoice_id":123,"status":"paid"}}`))
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)

	status, err := client.GetInvoiceStatus(context.Background(), 123)
	if err != nil {
		t.Fatalf("GetInvoiceStatus: %v", err)
	}
	if status != entity.InvoiceStatusPaid {
		t.Fatalf("status = %q, kutilgan paid", status)
	}
}

func TestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false,"error":{"code":401,"name":"UNAUTHORIZED"}}`))
	}))
	defer server.Close()

	client := NewClient("bad-token", server.URL)

	if _, err := client.GetInvoiceStatus(context.Background(), 123); err == nil {
		t.Fatalf("ok=false javobi uchun xato kutilgan edi")
	}
}

func TestHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)

	if _, err := client.GetInvoiceStatus(context.Background(), 123); err == nil {
		t.Fatalf("500 javobi uchun xato kutilgan edi")
	}
}
