package gamedata

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// JobClass is an adventurer's job. The set is closed; stats come from an
// immutable table indexed by the enum value.
type JobClass int

const (
	JobWarrior JobClass = iota
	JobMage
	JobPriest
	JobThief
	JobArcher

	jobCount
)

// BaseStats are the creation-time stats shared by jobs and enemy templates.
type BaseStats struct {
	HP      int
	Attack  int
	Defense int
	Magic   int
	Speed   int
}

type jobDef struct {
	name  string
	color string
	stats BaseStats
}

var jobTable = [jobCount]jobDef{
	JobWarrior: {name: "Warrior", color: "#C0392B", stats: BaseStats{HP: 100, Attack: 15, Defense: 12, Magic: 3, Speed: 8}},
	JobMage:    {name: "Mage", color: "#5DADE2", stats: BaseStats{HP: 60, Attack: 5, Defense: 5, Magic: 20, Speed: 10}},
	JobPriest:  {name: "Priest", color: "#F7DC6F", stats: BaseStats{HP: 70, Attack: 7, Defense: 8, Magic: 15, Speed: 9}},
	JobThief:   {name: "Thief", color: "#A569BD", stats: BaseStats{HP: 75, Attack: 12, Defense: 7, Magic: 5, Speed: 18}},
	JobArcher:  {name: "Archer", color: "#52BE80", stats: BaseStats{HP: 80, Attack: 13, Defense: 8, Magic: 6, Speed: 12}},
}

// DefaultJob is used when a job name cannot be resolved.
const DefaultJob = JobWarrior

// Jobs returns every job in table order.
func Jobs() []JobClass {
	jobs := make([]JobClass, 0, jobCount)
	for j := JobClass(0); j < jobCount; j++ {
		jobs = append(jobs, j)
	}
	return jobs
}

// Valid reports whether j is one of the defined jobs.
func (j JobClass) Valid() bool {
	return j >= 0 && j < jobCount
}

// String returns the job name.
func (j JobClass) String() string {
	if !j.Valid() {
		return "Unknown"
	}
	return jobTable[j].name
}

// Stats returns the job's base stats. Out-of-range values read the
// DefaultJob row.
func (j JobClass) Stats() BaseStats {
	if !j.Valid() {
		return jobTable[DefaultJob].stats
	}
	return jobTable[j].stats
}

// TCellColor returns the display color used by the ranking viewer.
func (j JobClass) TCellColor() tcell.Color {
	if !j.Valid() {
		return tcell.ColorWhite
	}
	color, err := ParseHexColor(jobTable[j].color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ParseJob resolves a job name case-insensitively. Unknown names return
// DefaultJob and false so callers can report the fallback.
func ParseJob(name string) (JobClass, bool) {
	key := normalizeName(name)
	for j := JobClass(0); j < jobCount; j++ {
		if normalizeName(jobTable[j].name) == key {
			return j, true
		}
	}
	return DefaultJob, false
}

// normalizeName folds case and drops separators so "Dark Mage",
// "dark_mage" and "DarkMage" compare equal.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
