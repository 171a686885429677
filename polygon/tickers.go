// Copyright 2023 PolygonApi Authors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package polygon

import (
	"context"
	"encoding/json"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

// tickersPath is the reference tickers endpoint under the base URL.
const tickersPath = "/v3/reference/tickers"

// TickerRecord is the raw wire representation of a single ticker. Every
// field is optional; the server may omit any of them.
type TickerRecord struct {
	Ticker          string `json:"ticker,omitempty"`
	Name            string `json:"name,omitempty"`
	Active          bool   `json:"active,omitempty"`
	Market          string `json:"market,omitempty"`
	Locale          string `json:"locale,omitempty"`
	PrimaryExchange string `json:"primary_exchange,omitempty"`
	Type            string `json:"type,omitempty"`
	CIK             string `json:"cik,omitempty"`
	CompositeFIGI   string `json:"composite_figi,omitempty"`
	ShareClassFIGI  string `json:"share_class_figi,omitempty"`
	CurrencyName    string `json:"currency_name,omitempty"`
	LastUpdatedUTC  string `json:"last_updated_utc,omitempty"`
}

// TickersPage is the format of a single page of tickers. A non-empty NextURL
// means more pages exist; an empty one means this is the last page.
type TickersPage struct {
	Count     int            `json:"count,omitempty"`
	NextURL   string         `json:"next_url,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Results   []TickerRecord `json:"results"`
	Status    string         `json:"status,omitempty"`
}

// Values substituted for missing fields when normalizing raw records.
const (
	NoSymbol = "NO SYMBOL"
	NoName   = "NO NAME"
)

// Ticker is the normalized ("neat") projection of a TickerRecord consumed by
// callers that only care about the symbol and the display name.
type Ticker struct {
	Symbol string
	Name   string
}

// DisplayName returns the ticker's name, falling back to the symbol for
// records that carry none.
func (t Ticker) DisplayName() string {
	if t.Name == "" {
		return t.Symbol
	}
	return t.Name
}

// Neat converts a raw record into its normalized form, substituting the
// NoSymbol and NoName sentinels for missing fields.
func (r TickerRecord) Neat() Ticker {
	t := Ticker{Symbol: r.Ticker, Name: r.Name}
	if t.Symbol == "" {
		t.Symbol = NoSymbol
	}
	if t.Name == "" {
		t.Name = NoName
	}
	return t
}

// TestTickersPage generates the JSON string in the format returned by the
// tickers API. For use in tests.
func TestTickersPage(results []TickerRecord, nextURL string) (string, error) {
	bytes, err := json.Marshal(&TickersPage{
		Count:   len(results),
		NextURL: nextURL,
		Results: results,
		Status:  "OK",
	})
	return string(bytes), err
}

// readPage executes the query using the Client from the context and
// downloads one page of results.
func (q *TickersQuery) readPage(ctx context.Context, page *TickersPage) error {
	client := GetClient(ctx)
	if client == nil {
		return errors.Reason("TickersQuery.Read: no client in context")
	}
	return client.fetchJSON(ctx, client.baseURL+tickersPath, q.Values(), page)
}

// readPageURL downloads one page of results from the ready-to-use absolute
// next_url returned by a previous page. The URI already carries all query
// parameters; only the auth header is applied on top.
func readPageURL(ctx context.Context, uri string, page *TickersPage) error {
	client := GetClient(ctx)
	if client == nil {
		return errors.Reason("readPageURL: no client in context")
	}
	return client.fetchJSON(ctx, uri, nil, page)
}

// TickerIterator iterates over query results record by record. Paging is
// handled transparently. Pages are fetched strictly sequentially, since each
// request's URI depends on the previous response.
type TickerIterator struct {
	context   context.Context
	query     *TickersQuery
	page      TickersPage
	index     int  // the result element for Next() to return
	pageCount int  // which page number we're on, for logging
	started   bool // if at least one Next call was ever made
}

// newTickerIterator creates a new iterator.
func newTickerIterator(ctx context.Context, query *TickersQuery) *TickerIterator {
	return &TickerIterator{context: ctx, query: query}
}

// Read sets up the iterator over the resulting ticker records, which will
// execute the query as needed and handle paging transparently.
func (q *TickersQuery) Read(ctx context.Context) *TickerIterator {
	return newTickerIterator(ctx, q)
}

// nextPage fetches and populates the iterator with the next page of results.
// When there are no more pages to load, or loading a page results in an
// error, the first return value becomes false. The error is returned exactly
// as the fetch produced it, so its kind remains inspectable by the caller.
func (it *TickerIterator) nextPage() (bool, error) {
	if it.started && it.page.NextURL == "" {
		return false, nil
	}
	next := it.page.NextURL
	// Clear the page, in case the decoder doesn't overwrite some parts.
	it.page = TickersPage{}
	var err error
	if it.started {
		err = readPageURL(it.context, next, &it.page)
	} else {
		err = it.query.readPage(it.context, &it.page)
	}
	it.started = true
	if err != nil {
		return false, err
	}
	it.index = 0
	it.pageCount++
	logging.Infof(it.context,
		"Polygon: fetched page %d with %d tickers; next_url: %q",
		it.pageCount, len(it.page.Results), it.page.NextURL)
	return true, nil
}

// Next loads the next record. If there are no more records, the second value
// is false. A page with no results but a non-empty next_url does not end the
// iteration; paging continues until a record or the end of the chain.
func (it *TickerIterator) Next() (TickerRecord, bool, error) {
	if it.query == nil {
		return TickerRecord{}, false, nil
	}
	for !it.started || it.index >= len(it.page.Results) {
		if ok, err := it.nextPage(); !ok {
			return TickerRecord{}, false, err
		}
	}
	r := it.page.Results[it.index]
	it.index++
	return r, true, nil
}

// AllActiveTickers downloads every actively traded ticker with the server's
// default page size and returns the normalized records in page order. Any
// mid-pagination failure aborts the whole call with that page's error; no
// partial result is ever returned.
func AllActiveTickers(ctx context.Context) ([]Ticker, error) {
	it := NewTickersQuery().Active(true).Read(ctx)
	var tickers []Ticker
	for {
		r, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tickers = append(tickers, r.Neat())
	}
	return tickers, nil
}
