package filter_test

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/minutary/minutary/internal/filter"
	"github.com/minutary/minutary/internal/querysyntax"
)

func TestToURLValuesSkipsAbsentFields(t *testing.T) {
	params := filter.ToURLValues(filter.State{
		Participants: []string{},
		Tags:         []string{},
		Folders:      []string{},
	})

	for _, key := range []string{"from", "to", "participants", "categories", "durMin", "durMax", "status", "tags", "folders"} {
		if params.Has(key) {
			t.Errorf("expected %q to be absent, got %q", key, params.Get(key))
		}
	}
}

func TestRoundTrip(t *testing.T) {
	min, max := 15, 90
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 23, 59, 59, 0, time.UTC)

	for _, tcase := range []struct {
		name  string
		state filter.State
	}{
		{
			name: "Tags and duration minimum",
			state: filter.State{
				Participants: []string{},
				Categories:   []string{},
				Status:       []string{},
				Tags:         []string{"a", "b"},
				DurationMin:  &min,
			},
		},
		{
			name: "Every field",
			state: filter.State{
				DateFrom:     &from,
				DateTo:       &to,
				Participants: []string{"john", "jane"},
				Categories:   []string{"standup"},
				Status:       []string{"done", "draft"},
				Tags:         []string{"q3"},
				Folders:      []string{"archive"},
				DurationMin:  &min,
				DurationMax:  &max,
			},
		},
		{
			name: "Empty state",
			state: filter.State{
				Participants: []string{},
				Categories:   []string{},
				Status:       []string{},
			},
		},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			decoded := filter.FromURLValues(filter.ToURLValues(tcase.state))
			if !reflect.DeepEqual(decoded, tcase.state) {
				t.Errorf("expected %+v, got %+v", tcase.state, decoded)
			}
		})
	}
}

func TestRoundTripFromSyntax(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	codec := filter.NewCodecWithClock(func() time.Time { return now })

	state := codec.FromSyntax(querysyntax.Parse("budget p:john t:a t:b d:today dur:30-60"))
	decoded := filter.FromURLValues(filter.ToURLValues(state))

	if !reflect.DeepEqual(decoded.Participants, state.Participants) {
		t.Errorf("expected participants %v, got %v", state.Participants, decoded.Participants)
	}
	if !reflect.DeepEqual(decoded.Tags, state.Tags) {
		t.Errorf("expected tags %v, got %v", state.Tags, decoded.Tags)
	}
	if decoded.DurationMin == nil || *decoded.DurationMin != 30 {
		t.Error("expected duration minimum to survive exactly")
	}
	if decoded.DurationMax == nil || *decoded.DurationMax != 60 {
		t.Error("expected duration maximum to survive exactly")
	}
	if decoded.DateFrom == nil || !decoded.DateFrom.Equal(state.DateFrom.Truncate(time.Second)) {
		t.Errorf("expected date from %v to survive to the second, got %v", state.DateFrom, decoded.DateFrom)
	}
	if decoded.DateTo == nil || !decoded.DateTo.Equal(state.DateTo.Truncate(time.Second)) {
		t.Errorf("expected date to %v to survive to the second, got %v", state.DateTo, decoded.DateTo)
	}
}

func TestFromURLValuesEdgeCases(t *testing.T) {
	t.Run("empty list value decodes to one empty element", func(t *testing.T) {
		params := url.Values{}
		params.Set("tags", "")
		state := filter.FromURLValues(params)
		if len(state.Tags) != 1 || state.Tags[0] != "" {
			t.Errorf("expected one empty tag, got %v", state.Tags)
		}
	})

	t.Run("missing list keys keep the asymmetry", func(t *testing.T) {
		state := filter.FromURLValues(url.Values{})
		if state.Participants == nil || state.Categories == nil || state.Status == nil {
			t.Error("expected participants, categories and status to default to empty")
		}
		if state.Tags != nil || state.Folders != nil {
			t.Error("expected tags and folders to stay nil")
		}
	})

	t.Run("unparseable values are skipped", func(t *testing.T) {
		params := url.Values{}
		params.Set("from", "not-a-date")
		params.Set("durMin", "many")
		state := filter.FromURLValues(params)
		if state.DateFrom != nil {
			t.Errorf("expected no date from, got %v", state.DateFrom)
		}
		if state.DurationMin != nil {
			t.Errorf("expected no duration minimum, got %d", *state.DurationMin)
		}
	})
}
