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
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stockparfait/errors"

	. "github.com/smartystreets/goconvey/convey"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestClient(t *testing.T) {
	t.Parallel()

	Convey("Client context injection", t, func() {
		Convey("no client in an empty context", func() {
			So(GetClient(context.Background()), ShouldBeNil)
		})
	})

	Convey("authClient adds the bearer token", t, func() {
		var got *http.Request
		rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			got = req
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("{}")),
			}, nil
		})
		c := authClient("secret", &http.Client{Transport: rt})
		req, err := http.NewRequest("GET", "https://api.polygon.io/x", nil)
		So(err, ShouldBeNil)
		req.Header.Set("X-Custom", "kept")
		resp, err := c.Do(req)
		So(err, ShouldBeNil)
		resp.Body.Close()
		So(got.Header.Get("Authorization"), ShouldEqual, "Bearer secret")
		So(got.Header.Get("X-Custom"), ShouldEqual, "kept")
		// The caller's request stays unmodified.
		So(req.Header.Get("Authorization"), ShouldEqual, "")
	})

	Convey("Error kinds", t, func() {
		cause := errors.Reason("connection reset")

		Convey("TransportError", func() {
			err := &TransportError{URL: "https://api.polygon.io/x", Err: cause}
			So(err.Error(), ShouldContainSubstring,
				"failed to fetch https://api.polygon.io/x")
			So(err.Unwrap(), ShouldEqual, cause)
		})

		Convey("DeserializationError", func() {
			err := &DeserializationError{URL: "https://api.polygon.io/x", Err: cause}
			So(err.Error(), ShouldContainSubstring,
				"failed to parse response from https://api.polygon.io/x")
			So(err.Unwrap(), ShouldEqual, cause)
		})
	})

	Convey("readPage requires a client in the context", t, func() {
		var page TickersPage
		err := NewTickersQuery().readPage(context.Background(), &page)
		So(err, ShouldNotBeNil)
		err = readPageURL(context.Background(), "https://api.polygon.io/x", &page)
		So(err, ShouldNotBeNil)
	})
}
