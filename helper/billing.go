package helper

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"waitify/config"
	"waitify/model"
)

// BillingProvider talks to the hosted subscription/billing service: signed
// hosted-checkout URLs plus JSON lookups for subscriptions and invoices.
type BillingProvider struct {
	BaseURL    string
	APIKey     string
	HashSecret string
	ReturnURL  string
	httpClient *http.Client
}

func NewBillingProvider() *BillingProvider {
	return &BillingProvider{
		BaseURL:    config.Config("BILLING_URL"),
		APIKey:     config.Config("BILLING_API_KEY"),
		HashSecret: config.Config("BILLING_HASH_SECRET"),
		ReturnURL:  config.Config("APP_URL") + "/subscription",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// BuildCheckoutURL creates the hosted checkout page URL for a plan upgrade.
func (b *BillingProvider) BuildCheckoutURL(planId, billingRef string) (string, error) {
	params := url.Values{}
	params.Add("api_key", b.APIKey)
	params.Add("plan", planId)
	params.Add("customer", billingRef)
	params.Add("return_url", b.ReturnURL)
	params.Add("created", time.Now().Format("20060102150405"))

	query := params.Encode()
	signature := b.sign(query)

	return b.BaseURL + "/checkout?" + query + "&signature=" + signature, nil
}

// FetchSubscription returns the provider's view of a business. An empty
// billing ref means the business never subscribed and resolves to the free
// tier rather than an error.
func (b *BillingProvider) FetchSubscription(billingRef string) (*model.SubscriptionStatus, error) {
	if billingRef == "" {
		return &model.SubscriptionStatus{Plan: "free", Active: false}, nil
	}

	var status model.SubscriptionStatus
	if err := b.getJSON("/v1/subscriptions/"+url.PathEscape(billingRef), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// FetchInvoices lists invoice summaries for a business.
func (b *BillingProvider) FetchInvoices(billingRef string) ([]model.Invoice, error) {
	if billingRef == "" {
		return []model.Invoice{}, nil
	}

	var invoices []model.Invoice
	if err := b.getJSON("/v1/invoices?customer="+url.QueryEscape(billingRef), &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (b *BillingProvider) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, b.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+b.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("billing provider responded %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (b *BillingProvider) sign(data string) string {
	h := hmac.New(sha512.New, []byte(b.HashSecret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
