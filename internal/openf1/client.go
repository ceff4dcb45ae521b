// Package openf1 is a thin typed client for the OpenF1 telemetry API
// (https://openf1.org). Every endpoint returns a flat JSON array; the
// client does one GET per call and decodes it, nothing more.
package openf1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrUpstreamUnavailable marks a failed call to the telemetry API:
// network error, non-2xx status or a body that does not decode. The
// wrapped message carries the underlying detail.
var ErrUpstreamUnavailable = errors.New("openf1 upstream unavailable")

// Meeting is one Grand Prix (or test) weekend.
type Meeting struct {
	MeetingKey  int    `json:"meeting_key"`
	MeetingName string `json:"meeting_name"`
	DateStart   string `json:"date_start"`
	Year        int    `json:"year"`
}

// Session is one track session inside a meeting ("Race", "Qualifying",
// "Sprint", practice sessions, ...).
type Session struct {
	SessionKey  int    `json:"session_key"`
	SessionName string `json:"session_name"`
	DateStart   string `json:"date_start"`
}

// Driver is one roster entry scoped to a session.
type Driver struct {
	DriverNumber int    `json:"driver_number"`
	NameAcronym  string `json:"name_acronym"`
	TeamName     string `json:"team_name"`
}

// Position is one timestamped position update for one driver. A
// session emits many of these per driver; the final classification is
// derived by keeping the latest per driver.
type Position struct {
	DriverNumber int    `json:"driver_number"`
	Position     int    `json:"position"`
	Date         string `json:"date"`
}

// RaceControlMessage is one race-control event (flags, safety car
// deployments, stewarding notes). Upstream is inconsistent about which
// of Category, Flag and Message carries the signal, so consumers match
// on all three.
type RaceControlMessage struct {
	Category string `json:"category"`
	Flag     string `json:"flag"`
	Message  string `json:"message"`
}

// Client calls the OpenF1 REST API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for the given base URL (e.g.
// "https://api.openf1.org/v1").
func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: &http.Client{}}
}

// Meetings lists all meetings of a season, in upstream order.
func (c *Client) Meetings(year int) ([]Meeting, error) {
	var out []Meeting
	err := c.get("/meetings", url.Values{"year": {fmt.Sprint(year)}}, &out)
	return out, err
}

// Sessions lists the sessions of a meeting.
func (c *Client) Sessions(meetingKey int) ([]Session, error) {
	var out []Session
	err := c.get("/sessions", url.Values{"meeting_key": {fmt.Sprint(meetingKey)}}, &out)
	return out, err
}

// Drivers lists the driver roster of a session.
func (c *Client) Drivers(sessionKey int) ([]Driver, error) {
	var out []Driver
	err := c.get("/drivers", url.Values{"session_key": {fmt.Sprint(sessionKey)}}, &out)
	return out, err
}

// Positions lists every position update recorded during a session.
func (c *Client) Positions(sessionKey int) ([]Position, error) {
	var out []Position
	err := c.get("/position", url.Values{"session_key": {fmt.Sprint(sessionKey)}}, &out)
	return out, err
}

// RaceControl lists the race-control messages of a session.
func (c *Client) RaceControl(sessionKey int) ([]RaceControlMessage, error) {
	var out []RaceControlMessage
	err := c.get("/race_control", url.Values{"session_key": {fmt.Sprint(sessionKey)}}, &out)
	return out, err
}

func (c *Client) get(path string, query url.Values, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	resp, err := c.HTTP.Get(u)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrUpstreamUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: GET %s: status %d: %s", ErrUpstreamUnavailable, path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: decode: %v", ErrUpstreamUnavailable, path, err)
	}
	return nil
}
