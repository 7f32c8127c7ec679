package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/minutary/minutary/internal/querysyntax"
)

// State is the canonical filter object the rest of the application works
// with. Participants, Categories and Status are always non-nil, Tags and
// Folders stay nil when absent; the URL codec relies on that asymmetry to
// round-trip states without inventing keys. DateFrom and DateTo are set
// together or not at all, with DateFrom <= DateTo. Duration bounds are
// minutes.
type State struct {
	DateFrom     *time.Time
	DateTo       *time.Time
	Participants []string
	Categories   []string
	Status       []string
	Tags         []string
	Folders      []string
	DurationMin  *int
	DurationMax  *int
}

// IsZero reports whether no filter is active.
func (s State) IsZero() bool {
	return s.DateFrom == nil && s.DateTo == nil &&
		len(s.Participants) == 0 && len(s.Categories) == 0 &&
		len(s.Status) == 0 && len(s.Tags) == 0 && len(s.Folders) == 0 &&
		s.DurationMin == nil && s.DurationMax == nil
}

// Codec resolves parsed search syntax into filter state. The clock is
// injectable so the date presets can be tested against a frozen instant.
type Codec struct {
	now func() time.Time
}

func NewCodec() *Codec {
	return NewCodecWithClock(time.Now)
}

func NewCodecWithClock(now func() time.Time) *Codec {
	return &Codec{now: now}
}

// FromSyntax resolves date presets and duration ranges into concrete
// values. Unparseable dates and durations are silently skipped, never an
// error; callers fall back to "no filter".
func (c *Codec) FromSyntax(syntax querysyntax.Syntax) State {
	state := State{
		Participants: append([]string{}, syntax.Participants...),
		Categories:   append([]string{}, syntax.Categories...),
		Status:       append([]string{}, syntax.Status...),
	}
	if syntax.Tags != nil {
		state.Tags = append([]string{}, syntax.Tags...)
	}
	if syntax.Folders != nil {
		state.Folders = append([]string{}, syntax.Folders...)
	}

	c.resolveDate(&state, syntax.Date)
	resolveDuration(&state, syntax.Duration)

	return state
}

func (c *Codec) resolveDate(state *State, value string) {
	if value == "" {
		return
	}
	switch strings.ToLower(value) {
	case "today":
		from, to := dayBounds(c.now())
		state.DateFrom, state.DateTo = &from, &to
	case "yesterday":
		from, to := dayBounds(c.now().AddDate(0, 0, -1))
		state.DateFrom, state.DateTo = &from, &to
	case "week":
		// Two separate clock reads, so From and To may differ by a few
		// nanoseconds beyond the seven days.
		from := c.now().AddDate(0, 0, -7)
		to := c.now()
		state.DateFrom, state.DateTo = &from, &to
	default:
		parsed, err := dateparse.ParseIn(value, c.now().Location())
		if err != nil {
			return
		}
		from, to := dayBounds(parsed)
		state.DateFrom, state.DateTo = &from, &to
	}
}

func resolveDuration(state *State, value string) {
	switch {
	case value == "":
	case strings.HasPrefix(value, ">"):
		if min, err := strconv.Atoi(value[1:]); err == nil {
			state.DurationMin = &min
		}
	case strings.HasPrefix(value, "<"):
		if max, err := strconv.Atoi(value[1:]); err == nil {
			state.DurationMax = &max
		}
	case strings.Contains(value, "-"):
		parts := strings.SplitN(value, "-", 2)
		if min, err := strconv.Atoi(parts[0]); err == nil {
			state.DurationMin = &min
		}
		if max, err := strconv.Atoi(parts[1]); err == nil {
			state.DurationMax = &max
		}
	}
}

func dayBounds(t time.Time) (from, to time.Time) {
	year, month, day := t.Date()
	from = time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	to = time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return from, to
}
