// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	gojson "github.com/goccy/go-json"
	"github.com/penny-vault/pvscreen/data"
	"github.com/rs/zerolog/log"
)

const (
	yahooQuoteSummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s"

	// yahoo blocks the default Go user agent
	yahooUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// Yahoo fetches fundamentals from the Yahoo Finance quoteSummary API.
type Yahoo struct {
	client *resty.Client
}

func (yahoo *Yahoo) Name() string {
	return "yahoo"
}

func (yahoo *Yahoo) Description() string {
	return `Yahoo Finance provides free quotes and company fundamentals for all US stock exchanges. No API key is required but request rates must be kept low as a courtesy to the shared service.`
}

func (yahoo *Yahoo) ConfigDescription() map[string]string {
	return map[string]string{
		"rateLimit": "What is the maximum number of requests per minute?",
	}
}

// Private interface

// yahooValue is the raw/fmt wrapper yahoo uses for every numeric field.
// Only the raw value is of interest; a missing key leaves Raw nil.
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				Sector              string `json:"sector"`
				Industry            string `json:"industry"`
				Country             string `json:"country"`
				LongBusinessSummary string `json:"longBusinessSummary"`
			} `json:"assetProfile"`

			Price struct {
				LongName           string     `json:"longName"`
				ShortName          string     `json:"shortName"`
				RegularMarketPrice yahooValue `json:"regularMarketPrice"`
				MarketCap          yahooValue `json:"marketCap"`
			} `json:"price"`

			SummaryDetail struct {
				DividendRate     yahooValue `json:"dividendRate"`
				DividendYield    yahooValue `json:"dividendYield"`
				FiveYearAvgYield yahooValue `json:"fiveYearAvgDividendYield"`
				Beta             yahooValue `json:"beta"`
			} `json:"summaryDetail"`

			FinancialData struct {
				CurrentPrice    yahooValue `json:"currentPrice"`
				ProfitMargins   yahooValue `json:"profitMargins"`
				ReturnOnEquity  yahooValue `json:"returnOnEquity"`
				EarningsGrowth  yahooValue `json:"earningsGrowth"`
				FreeCashflow    yahooValue `json:"freeCashflow"`
				Ebit            yahooValue `json:"ebit"`
				InterestExpense yahooValue `json:"interestExpense"`
				DebtToEquity    yahooValue `json:"debtToEquity"`
			} `json:"financialData"`

			DefaultKeyStatistics struct {
				SharesOutstanding yahooValue `json:"sharesOutstanding"`
				SharesShort       yahooValue `json:"sharesShort"`
				BookValue         yahooValue `json:"bookValue"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`

		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (yahoo *Yahoo) restyClient() *resty.Client {
	if yahoo.client == nil {
		yahoo.client = resty.New().
			SetHeader("User-Agent", yahooUserAgent).
			SetHeader("Accept", "application/json").
			SetTimeout(30 * time.Second)
	}

	return yahoo.client
}

// Fetch retrieves a single fundamentals snapshot from yahoo. Tickers
// using the BRK/A convention are reformatted to yahoo's BRK-A form.
func (yahoo *Yahoo) Fetch(ctx context.Context, ticker string) (*data.FundamentalsSnapshot, error) {
	yahooTicker := strings.ReplaceAll(ticker, "/", "-")
	url := fmt.Sprintf(yahooQuoteSummaryURL, yahooTicker)

	resp, err := yahoo.restyClient().R().
		SetContext(ctx).
		SetQueryParam("modules", "assetProfile,price,summaryDetail,financialData,defaultKeyStatistics").
		Get(url)
	if err != nil {
		log.Error().Err(err).Str("Ticker", ticker).Msg("resty returned an error when querying quote summary")
		return nil, fmt.Errorf("%w: %s", ErrFetch, err.Error())
	}

	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTicker, ticker)
	}

	if resp.StatusCode() >= 300 {
		log.Error().Int("StatusCode", resp.StatusCode()).Str("Ticker", ticker).
			Str("URL", resp.Request.URL).Msg("yahoo returned an invalid HTTP response")
		return nil, fmt.Errorf("%w: status code %d", ErrFetch, resp.StatusCode())
	}

	var summary yahooQuoteSummary
	if err := gojson.Unmarshal(resp.Body(), &summary); err != nil {
		log.Error().Err(err).Str("Ticker", ticker).Msg("could not parse yahoo quote summary response")
		return nil, fmt.Errorf("%w: %s", ErrFetch, err.Error())
	}

	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnknownTicker, ticker, summary.QuoteSummary.Error.Description)
	}

	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTicker, ticker)
	}

	result := summary.QuoteSummary.Result[0]

	name := result.Price.LongName
	if name == "" {
		name = result.Price.ShortName
	}

	currentPrice := result.FinancialData.CurrentPrice.Raw
	if currentPrice == nil {
		currentPrice = result.Price.RegularMarketPrice.Raw
	}

	return &data.FundamentalsSnapshot{
		Ticker:          ticker,
		Name:            name,
		Sector:          result.AssetProfile.Sector,
		Industry:        result.AssetProfile.Industry,
		Country:         result.AssetProfile.Country,
		BusinessSummary: result.AssetProfile.LongBusinessSummary,

		MarketCap:    result.Price.MarketCap.Raw,
		CurrentPrice: currentPrice,

		ProfitMargin:   result.FinancialData.ProfitMargins.Raw,
		ReturnOnEquity: result.FinancialData.ReturnOnEquity.Raw,
		EarningsGrowth: result.FinancialData.EarningsGrowth.Raw,

		FreeCashFlow:    result.FinancialData.FreeCashflow.Raw,
		EBIT:            result.FinancialData.Ebit.Raw,
		InterestExpense: result.FinancialData.InterestExpense.Raw,
		DebtToEquity:    result.FinancialData.DebtToEquity.Raw,

		SharesOutstanding: result.DefaultKeyStatistics.SharesOutstanding.Raw,
		SharesShort:       result.DefaultKeyStatistics.SharesShort.Raw,
		DividendRate:      result.SummaryDetail.DividendRate.Raw,
		DividendYield:     result.SummaryDetail.DividendYield.Raw,
		FiveYearAvgYield:  result.SummaryDetail.FiveYearAvgYield.Raw,

		BookValue: result.DefaultKeyStatistics.BookValue.Raw,
		Beta:      result.SummaryDetail.Beta.Raw,

		FetchTime: time.Now(),
	}, nil
}
