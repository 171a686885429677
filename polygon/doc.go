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

// Package polygon implements a typed client for the Polygon.io reference
// data REST API.
//
// Official documentation is at https://polygon.io/docs/stocks .
//
// The tickers endpoint returns at most a single page of results per request.
// When more results are available, the response carries a next_url: an
// absolute, directly fetchable URI for the next page. This package follows
// the next_url chain transparently in TickerIterator, so callers see one
// continuous stream of records.
//
// The API key is injected into the context with UseClient and attached to
// every request as a bearer token. The HTTP client itself is owned by the
// fetch package and is shared across calls.
package polygon
