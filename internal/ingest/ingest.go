// Package ingest turns raw OpenF1 telemetry into the normalized
// per-round Result consumed by scoring. The pipeline is all-or-nothing:
// any upstream failure aborts before anything is written, so a stored
// result is always fully populated.
package ingest

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"f1predictor/internal/db"
	"f1predictor/internal/openf1"
	"f1predictor/internal/season"
)

var (
	// ErrRoundNotFound means the season has no meeting at that round index.
	ErrRoundNotFound = errors.New("round not found in season meetings")

	// ErrIncompleteSession means the meeting exists but its race session
	// does not (yet) — the weekend has not been run.
	ErrIncompleteSession = errors.New("race session not available")
)

// FetchResult resolves round to an OpenF1 meeting, derives the final
// classifications of its sessions and normalizes everything into a
// Result. Nothing is persisted; see FetchAndStore.
func FetchResult(c *openf1.Client, year, round int) (*db.Result, error) {
	meetings, err := c.Meetings(year)
	if err != nil {
		return nil, err
	}

	// Pre-season tests appear in the meeting list but are not rounds.
	races := make([]openf1.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if strings.Contains(strings.ToLower(m.MeetingName), "test") {
			continue
		}
		races = append(races, m)
	}
	sort.SliceStable(races, func(i, j int) bool { return races[i].DateStart < races[j].DateStart })

	if round < 1 || round > len(races) {
		return nil, fmt.Errorf("%w: round %d of %d meetings", ErrRoundNotFound, round, len(races))
	}
	meeting := races[round-1]

	sessions, err := c.Sessions(meeting.MeetingKey)
	if err != nil {
		return nil, err
	}
	race, ok := findSession(sessions, "Race")
	if !ok {
		return nil, fmt.Errorf("%w: meeting %d (%s)", ErrIncompleteSession, meeting.MeetingKey, meeting.MeetingName)
	}
	quali, hasQuali := findSession(sessions, "Qualifying")
	sprint, hasSprint := findSession(sessions, "Sprint")

	roster, err := c.Drivers(race.SessionKey)
	if err != nil {
		return nil, err
	}
	codeOf := make(map[int]string, len(roster))
	teamOf := make(map[int]string, len(roster))
	for _, d := range roster {
		codeOf[d.DriverNumber] = d.NameAcronym
		teamOf[d.DriverNumber] = d.TeamName
	}

	racePos, err := c.Positions(race.SessionKey)
	if err != nil {
		return nil, err
	}
	classified := Classify(racePos)

	res := &db.Result{
		Round:       round,
		Retirements: retirementEstimate(len(classified)),
		FetchedAt:   time.Now().UTC(),
	}

	podium := [3]string{}
	for i := 0; i < 3 && i < len(classified); i++ {
		podium[i] = codeOf[classified[i].DriverNumber]
	}
	res.PodiumP1, res.PodiumP2, res.PodiumP3 = podium[0], podium[1], podium[2]

	res.BestTR = BestOfRest(classified, teamOf)

	if hasQuali {
		qualiPos, err := c.Positions(quali.SessionKey)
		if err != nil {
			return nil, err
		}
		if qc := Classify(qualiPos); len(qc) > 0 {
			res.Pole = codeOf[qc[0].DriverNumber]
		}
	}

	if hasSprint {
		sprintPos, err := c.Positions(sprint.SessionKey)
		if err != nil {
			return nil, err
		}
		if sc := Classify(sprintPos); len(sc) > 0 {
			res.SprintWin = codeOf[sc[0].DriverNumber]
		}
	}

	msgs, err := c.RaceControl(race.SessionKey)
	if err != nil {
		return nil, err
	}
	scEvents := CountInterruptions(msgs)
	res.SCCount = season.BucketSCCount(scEvents)

	res.Meta = datatypes.JSONMap{
		"meeting_key":      meeting.MeetingKey,
		"meeting_name":     meeting.MeetingName,
		"race_session_key": race.SessionKey,
		"sc_events":        scEvents,
		"classified":       len(classified),
	}
	if hasQuali {
		res.Meta["qualifying_session_key"] = quali.SessionKey
	}
	if hasSprint {
		res.Meta["sprint_session_key"] = sprint.SessionKey
	}

	return res, nil
}

// FetchAndStore runs FetchResult and upserts the outcome, replacing any
// previously stored result for the round.
func FetchAndStore(gdb *gorm.DB, c *openf1.Client, year, round int) (*db.Result, error) {
	res, err := FetchResult(c, year, round)
	if err != nil {
		return nil, err
	}
	if err := db.UpsertResult(gdb, res); err != nil {
		return nil, fmt.Errorf("store result for round %d: %w", round, err)
	}
	return res, nil
}

// Classify reduces a raw position time series to the final standings:
// the most recent record per driver wins, non-positive positions are
// dropped, and the survivors are sorted by position ascending.
func Classify(positions []openf1.Position) []openf1.Position {
	latest := make(map[int]openf1.Position, len(positions))
	for _, p := range positions {
		cur, seen := latest[p.DriverNumber]
		if !seen || p.Date >= cur.Date {
			latest[p.DriverNumber] = p
		}
	}

	out := make([]openf1.Position, 0, len(latest))
	for _, p := range latest {
		if p.Position > 0 {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// CountInterruptions counts race-control messages that indicate a
// safety car, virtual safety car or red flag. Upstream message schemas
// are inconsistent, so this matches substrings over the lower-cased
// category, flag and text rather than a closed enum.
func CountInterruptions(msgs []openf1.RaceControlMessage) int {
	n := 0
	for _, m := range msgs {
		// Category says "SafetyCar", message says "SAFETY CAR DEPLOYED";
		// match both spellings.
		text := strings.ToLower(m.Category + " " + m.Flag + " " + m.Message)
		if strings.Contains(text, "safety car") ||
			strings.Contains(text, "safetycar") ||
			strings.Contains(text, "red flag") ||
			strings.EqualFold(m.Flag, "RED") {
			n++
		}
	}
	return n
}

// BestOfRest returns the team of the first classified driver outside
// the dominant four, or "" when every classified car belongs to them.
func BestOfRest(classified []openf1.Position, teamOf map[int]string) string {
	for _, p := range classified {
		team := teamOf[p.DriverNumber]
		if team == "" || season.IsDominantTeam(team) {
			continue
		}
		return team
	}
	return ""
}

func retirementEstimate(classified int) int {
	if classified >= season.GridSize {
		return 0
	}
	return season.GridSize - classified
}

func findSession(sessions []openf1.Session, name string) (openf1.Session, bool) {
	for _, s := range sessions {
		if s.SessionName == name {
			return s, true
		}
	}
	return openf1.Session{}, false
}
