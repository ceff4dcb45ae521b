package openf1_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"f1predictor/internal/openf1"
)

func TestClient(t *testing.T) {
	Convey("Given an OpenF1 endpoint", t, func() {
		Convey("When the response is a well-formed array", func() {
			var gotPath, gotYear string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotYear = r.URL.Query().Get("year")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[{"meeting_key":1230,"meeting_name":"Chinese Grand Prix","date_start":"2026-03-13T03:30:00+00:00","year":2026}]`))
			}))
			defer ts.Close()

			Convey("Then it decodes into typed records", func() {
				meetings, err := openf1.New(ts.URL).Meetings(2026)
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/meetings")
				So(gotYear, ShouldEqual, "2026")
				So(meetings, ShouldHaveLength, 1)
				So(meetings[0].MeetingKey, ShouldEqual, 1230)
				So(meetings[0].MeetingName, ShouldEqual, "Chinese Grand Prix")
			})
		})

		Convey("When the upstream answers non-2xx", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusTooManyRequests)
			}))
			defer ts.Close()

			Convey("Then the error wraps ErrUpstreamUnavailable with the status", func() {
				_, err := openf1.New(ts.URL).Sessions(1230)
				So(errors.Is(err, openf1.ErrUpstreamUnavailable), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "status 429")
			})
		})

		Convey("When the body is not valid JSON", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>maintenance</html>"))
			}))
			defer ts.Close()

			Convey("Then the decode failure maps to ErrUpstreamUnavailable", func() {
				_, err := openf1.New(ts.URL).Drivers(9004)
				So(errors.Is(err, openf1.ErrUpstreamUnavailable), ShouldBeTrue)
			})
		})

		Convey("When the host is unreachable", func() {
			Convey("Then the network error maps to ErrUpstreamUnavailable", func() {
				_, err := openf1.New("http://127.0.0.1:1").Positions(9004)
				So(errors.Is(err, openf1.ErrUpstreamUnavailable), ShouldBeTrue)
			})
		})
	})
}
