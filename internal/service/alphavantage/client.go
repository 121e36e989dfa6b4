// Package alphavantage implements the financial-data source against the
// Alpha Vantage REST API (company overview, balance sheet, income statement).
package alphavantage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/models"
	drepo "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/internal/domain/repository"
	xhttp "github.com/Demo-Project-Fintech/Cred-Scorer-hackathon/pkg/http"
)

const defaultBaseURL = "https://www.alphavantage.co"

// Client implements repository.FinancialSource backed by Alpha Vantage.
type Client struct {
	apiKey  string
	baseURL string
	client  *xhttp.Client
}

// New creates an Alpha Vantage client. An empty apiKey leaves the source
// unavailable; callers degrade instead of failing at construction.
func New(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// Available reports whether an API key is configured.
func (c *Client) Available() bool { return c.apiKey != "" }

type overviewResp struct {
	Name                       string `json:"Name"`
	Sector                     string `json:"Sector"`
	Industry                   string `json:"Industry"`
	MarketCapitalization       string `json:"MarketCapitalization"`
	Beta                       string `json:"Beta"`
	PERatio                    string `json:"PERatio"`
	PriceToBookRatio           string `json:"PriceToBookRatio"`
	QuarterlyRevenueGrowthYOY  string `json:"QuarterlyRevenueGrowthYOY"`
	QuarterlyEarningsGrowthYOY string `json:"QuarterlyEarningsGrowthYOY"`
}

type balanceReport struct {
	TotalCurrentAssets          string `json:"totalCurrentAssets"`
	TotalCurrentLiabilities     string `json:"totalCurrentLiabilities"`
	CashAndShortTermInvestments string `json:"cashAndShortTermInvestments"`
	CurrentNetReceivables       string `json:"currentNetReceivables"`
	TotalAssets                 string `json:"totalAssets"`
	ShortLongTermDebtTotal      string `json:"shortLongTermDebtTotal"`
	TotalShareholderEquity      string `json:"totalShareholderEquity"`
}

type balanceResp struct {
	QuarterlyReports []balanceReport `json:"quarterlyReports"`
	AnnualReports    []balanceReport `json:"annualReports"`
}

type incomeReport struct {
	TotalRevenue    string `json:"totalRevenue"`
	NetIncome       string `json:"netIncome"`
	OperatingIncome string `json:"operatingIncome"`
}

type incomeResp struct {
	AnnualReports []incomeReport `json:"annualReports"`
}

// Fundamentals fetches the raw financial fields for a ticker.
func (c *Client) Fundamentals(ctx context.Context, ticker string) (*models.CompanyRecord, error) {
	if !c.Available() {
		return nil, fmt.Errorf("alphavantage: no api key: %w", models.ErrDataUnavailable)
	}

	var ov overviewResp
	if err := c.query(ctx, "OVERVIEW", ticker, &ov); err != nil {
		return nil, fmt.Errorf("alphavantage overview %s: %w", ticker, err)
	}
	// Alpha Vantage answers 200 with an empty object for unknown symbols.
	if ov.Name == "" {
		return nil, fmt.Errorf("alphavantage: unknown symbol %s: %w", ticker, models.ErrDataUnavailable)
	}

	rec := &models.CompanyRecord{
		Ticker:            ticker,
		Name:              ov.Name,
		Sector:            ov.Sector,
		Industry:          ov.Industry,
		MarketCap:         parseFloat(ov.MarketCapitalization),
		Beta:              parseFloat(ov.Beta),
		PriceToEarnings:   parseFloat(ov.PERatio),
		PriceToBook:       parseFloat(ov.PriceToBookRatio),
		RevenueGrowthPct:  parseFloat(ov.QuarterlyRevenueGrowthYOY) * 100,
		EarningsGrowthPct: parseFloat(ov.QuarterlyEarningsGrowthYOY) * 100,
		FetchedAt:         time.Now(),
	}

	var bs balanceResp
	if err := c.query(ctx, "BALANCE_SHEET", ticker, &bs); err != nil {
		return nil, fmt.Errorf("alphavantage balance sheet %s: %w", ticker, err)
	}
	if rep, ok := latestBalance(bs); ok {
		rec.CurrentAssets = parseFloat(rep.TotalCurrentAssets)
		rec.CurrentLiabilities = parseFloat(rep.TotalCurrentLiabilities)
		rec.QuickAssets = parseFloat(rep.CashAndShortTermInvestments) + parseFloat(rep.CurrentNetReceivables)
		rec.TotalAssets = parseFloat(rep.TotalAssets)
		rec.TotalDebt = parseFloat(rep.ShortLongTermDebtTotal)
		rec.TotalEquity = parseFloat(rep.TotalShareholderEquity)
	}

	var is incomeResp
	if err := c.query(ctx, "INCOME_STATEMENT", ticker, &is); err != nil {
		return nil, fmt.Errorf("alphavantage income statement %s: %w", ticker, err)
	}
	if len(is.AnnualReports) > 0 {
		rep := is.AnnualReports[0]
		rec.Revenue = parseFloat(rep.TotalRevenue)
		rec.NetIncome = parseFloat(rep.NetIncome)
		rec.OperatingIncome = parseFloat(rep.OperatingIncome)
	}

	return rec, nil
}

func (c *Client) query(ctx context.Context, function, symbol string, dest interface{}) error {
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/query",
		QueryParams: map[string][]string{
			"function": {function},
			"symbol":   {symbol},
			"apikey":   {c.apiKey},
		},
	}, dest)
	if err != nil {
		return fmt.Errorf("%v: %w", err, models.ErrDataUnavailable)
	}
	return nil
}

func latestBalance(bs balanceResp) (balanceReport, bool) {
	if len(bs.QuarterlyReports) > 0 {
		return bs.QuarterlyReports[0], true
	}
	if len(bs.AnnualReports) > 0 {
		return bs.AnnualReports[0], true
	}
	return balanceReport{}, false
}

// parseFloat handles Alpha Vantage's stringly-typed numbers; "None", "-" and
// empty strings come back as 0.
func parseFloat(s string) float64 {
	if s == "" || s == "None" || s == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

var _ drepo.FinancialSource = (*Client)(nil)
