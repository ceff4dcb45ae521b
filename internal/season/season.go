// Package season holds the immutable reference data for the 2026
// championship: the race calendar, the driver roster and the team tiers.
// The tables are fixed at compile time and never mutated at runtime.
package season

import "strings"

// Race is one round of the season calendar. Start and End are the
// Friday and Sunday of the race weekend in YYYY-MM-DD.
type Race struct {
	Round     int    `json:"round"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Start     string `json:"start"`
	End       string `json:"end"`
	HasSprint bool   `json:"has_sprint"`
}

// Driver is one entry of the season roster. Acronym matches the
// name_acronym field OpenF1 reports for the driver.
type Driver struct {
	Acronym string `json:"acronym"`
	Name    string `json:"name"`
	Team    string `json:"team"`
}

// Races is the 2026 calendar, ordered by round.
var Races = []Race{
	{Round: 1, Name: "Australian Grand Prix", Location: "Melbourne", Start: "2026-03-06", End: "2026-03-08"},
	{Round: 2, Name: "Chinese Grand Prix", Location: "Shanghai", Start: "2026-03-13", End: "2026-03-15", HasSprint: true},
	{Round: 3, Name: "Japanese Grand Prix", Location: "Suzuka", Start: "2026-03-27", End: "2026-03-29"},
	{Round: 4, Name: "Bahrain Grand Prix", Location: "Sakhir", Start: "2026-04-10", End: "2026-04-12"},
	{Round: 5, Name: "Saudi Arabian Grand Prix", Location: "Jeddah", Start: "2026-04-17", End: "2026-04-19"},
	{Round: 6, Name: "Miami Grand Prix", Location: "Miami", Start: "2026-05-01", End: "2026-05-03", HasSprint: true},
	{Round: 7, Name: "Canadian Grand Prix", Location: "Montréal", Start: "2026-05-22", End: "2026-05-24", HasSprint: true},
	{Round: 8, Name: "Monaco Grand Prix", Location: "Monte Carlo", Start: "2026-06-05", End: "2026-06-07"},
	{Round: 9, Name: "Spanish Grand Prix", Location: "Barcelona", Start: "2026-06-12", End: "2026-06-14"},
	{Round: 10, Name: "Austrian Grand Prix", Location: "Spielberg", Start: "2026-06-26", End: "2026-06-28"},
	{Round: 11, Name: "British Grand Prix", Location: "Silverstone", Start: "2026-07-03", End: "2026-07-05", HasSprint: true},
	{Round: 12, Name: "Belgian Grand Prix", Location: "Spa-Francorchamps", Start: "2026-07-17", End: "2026-07-19"},
	{Round: 13, Name: "Hungarian Grand Prix", Location: "Budapest", Start: "2026-07-24", End: "2026-07-26"},
	{Round: 14, Name: "Dutch Grand Prix", Location: "Zandvoort", Start: "2026-08-21", End: "2026-08-23", HasSprint: true},
	{Round: 15, Name: "Italian Grand Prix", Location: "Monza", Start: "2026-09-04", End: "2026-09-06"},
	{Round: 16, Name: "Spanish Grand Prix", Location: "Madrid", Start: "2026-09-11", End: "2026-09-13"},
	{Round: 17, Name: "Azerbaijan Grand Prix", Location: "Baku", Start: "2026-09-24", End: "2026-09-26"},
	{Round: 18, Name: "Singapore Grand Prix", Location: "Marina Bay", Start: "2026-10-09", End: "2026-10-11", HasSprint: true},
	{Round: 19, Name: "United States Grand Prix", Location: "Austin", Start: "2026-10-23", End: "2026-10-25"},
	{Round: 20, Name: "Mexico City Grand Prix", Location: "Mexico City", Start: "2026-10-30", End: "2026-11-01"},
	{Round: 21, Name: "São Paulo Grand Prix", Location: "São Paulo", Start: "2026-11-06", End: "2026-11-08"},
	{Round: 22, Name: "Las Vegas Grand Prix", Location: "Las Vegas", Start: "2026-11-19", End: "2026-11-21"},
	{Round: 23, Name: "Qatar Grand Prix", Location: "Lusail", Start: "2026-11-27", End: "2026-11-29"},
	{Round: 24, Name: "Abu Dhabi Grand Prix", Location: "Yas Marina", Start: "2026-12-04", End: "2026-12-06"},
}

// Drivers is the 2026 roster. Acronyms must match OpenF1's name_acronym.
var Drivers = []Driver{
	{Acronym: "VER", Name: "Max Verstappen", Team: "Oracle Red Bull Racing"},
	{Acronym: "HAD", Name: "Isack Hadjar", Team: "Oracle Red Bull Racing"},
	{Acronym: "LEC", Name: "Charles Leclerc", Team: "Ferrari"},
	{Acronym: "HAM", Name: "Lewis Hamilton", Team: "Ferrari"},
	{Acronym: "NOR", Name: "Lando Norris", Team: "McLaren"},
	{Acronym: "PIA", Name: "Oscar Piastri", Team: "McLaren"},
	{Acronym: "RUS", Name: "George Russell", Team: "Mercedes"},
	{Acronym: "ANT", Name: "Kimi Antonelli", Team: "Mercedes"},
	{Acronym: "ALO", Name: "Fernando Alonso", Team: "Aston Martin"},
	{Acronym: "STR", Name: "Lance Stroll", Team: "Aston Martin"},
	{Acronym: "GAS", Name: "Pierre Gasly", Team: "Alpine"},
	{Acronym: "COL", Name: "Franco Colapinto", Team: "Alpine"},
	{Acronym: "SAI", Name: "Carlos Sainz Jr.", Team: "Williams"},
	{Acronym: "ALB", Name: "Alexander Albon", Team: "Williams"},
	{Acronym: "LAW", Name: "Liam Lawson", Team: "Racing Bulls"},
	{Acronym: "LIN", Name: "Arvid Lindblad", Team: "Racing Bulls"},
	{Acronym: "HUL", Name: "Nico Hülkenberg", Team: "Audi"},
	{Acronym: "BOR", Name: "Gabriel Bortoleto", Team: "Audi"},
	{Acronym: "OCO", Name: "Esteban Ocon", Team: "Haas F1 Team"},
	{Acronym: "BEA", Name: "Oliver Bearman", Team: "Haas F1 Team"},
	{Acronym: "PER", Name: "Sergio Pérez", Team: "Cadillac"},
	{Acronym: "BOT", Name: "Valtteri Bottas", Team: "Cadillac"},
}

// DominantTeams are the four top teams excluded from the
// best-of-the-rest category. Matching is by substring so that the
// full OpenF1 team names ("Oracle Red Bull Racing", "Scuderia
// Ferrari HP", ...) hit regardless of sponsor prefixes.
var DominantTeams = []string{"Red Bull", "Ferrari", "McLaren", "Mercedes"}

// SCBuckets are the valid safety-car / red-flag count buckets a
// prediction may carry.
var SCBuckets = []string{"0", "1-2", "3+"}

// GridSize is the number of cars on the grid; the retirement estimate
// assumes a full grid started.
const GridSize = 20

// RaceByRound returns the calendar entry for round, if it exists.
func RaceByRound(round int) (Race, bool) {
	for _, r := range Races {
		if r.Round == round {
			return r, true
		}
	}
	return Race{}, false
}

// IsDominantTeam reports whether teamName belongs to one of the four
// dominant teams.
func IsDominantTeam(teamName string) bool {
	for _, t := range DominantTeams {
		if strings.Contains(teamName, t) {
			return true
		}
	}
	return false
}

// ValidDriver reports whether code is an acronym on the season roster.
func ValidDriver(code string) bool {
	for _, d := range Drivers {
		if d.Acronym == code {
			return true
		}
	}
	return false
}

// ValidTeam reports whether name is a team on the season roster.
func ValidTeam(name string) bool {
	for _, d := range Drivers {
		if d.Team == name {
			return true
		}
	}
	return false
}

// ValidSCBucket reports whether v is one of the SCBuckets labels.
func ValidSCBucket(v string) bool {
	for _, b := range SCBuckets {
		if v == b {
			return true
		}
	}
	return false
}

// BucketSCCount quantizes a raw safety-car / red-flag event count into
// its bucket label.
func BucketSCCount(n int) string {
	switch {
	case n <= 0:
		return "0"
	case n <= 2:
		return "1-2"
	default:
		return "3+"
	}
}
