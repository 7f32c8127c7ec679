package filter

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Query string keys used to sync filter state with the address bar.
const (
	paramFrom         = "from"
	paramTo           = "to"
	paramParticipants = "participants"
	paramCategories   = "categories"
	paramDurationMin  = "durMin"
	paramDurationMax  = "durMax"
	paramStatus       = "status"
	paramTags         = "tags"
	paramFolders      = "folders"
)

// ParamNames returns the query string keys the URL codec manages.
func ParamNames() []string {
	return []string{
		paramFrom, paramTo, paramParticipants, paramCategories,
		paramDurationMin, paramDurationMax, paramStatus, paramTags, paramFolders,
	}
}

// ToURLValues serializes a filter state to query parameters. A key is only
// emitted when its field is meaningfully present: dates and duration bounds
// when set, list fields when non-empty. Dates are encoded as UTC RFC 3339.
func ToURLValues(state State) url.Values {
	params := url.Values{}

	if state.DateFrom != nil {
		params.Set(paramFrom, state.DateFrom.UTC().Format(time.RFC3339))
	}
	if state.DateTo != nil {
		params.Set(paramTo, state.DateTo.UTC().Format(time.RFC3339))
	}
	setList(params, paramParticipants, state.Participants)
	setList(params, paramCategories, state.Categories)
	if state.DurationMin != nil {
		params.Set(paramDurationMin, strconv.Itoa(*state.DurationMin))
	}
	if state.DurationMax != nil {
		params.Set(paramDurationMax, strconv.Itoa(*state.DurationMax))
	}
	setList(params, paramStatus, state.Status)
	setList(params, paramTags, state.Tags)
	setList(params, paramFolders, state.Folders)

	return params
}

// FromURLValues is the inverse of ToURLValues. Missing keys leave their
// fields at the defaults (nil dates and bounds, empty participants,
// categories and status, nil tags and folders); a present but empty list
// value decodes to a single empty element, as comma splitting dictates.
// Unparseable dates or numbers are silently skipped.
func FromURLValues(params url.Values) State {
	state := State{
		Participants: getList(params, paramParticipants),
		Categories:   getList(params, paramCategories),
		Status:       getList(params, paramStatus),
	}
	if state.Participants == nil {
		state.Participants = []string{}
	}
	if state.Categories == nil {
		state.Categories = []string{}
	}
	if state.Status == nil {
		state.Status = []string{}
	}

	if params.Has(paramFrom) {
		if from, err := time.Parse(time.RFC3339, params.Get(paramFrom)); err == nil {
			state.DateFrom = &from
		}
	}
	if params.Has(paramTo) {
		if to, err := time.Parse(time.RFC3339, params.Get(paramTo)); err == nil {
			state.DateTo = &to
		}
	}
	if params.Has(paramDurationMin) {
		if min, err := strconv.Atoi(params.Get(paramDurationMin)); err == nil {
			state.DurationMin = &min
		}
	}
	if params.Has(paramDurationMax) {
		if max, err := strconv.Atoi(params.Get(paramDurationMax)); err == nil {
			state.DurationMax = &max
		}
	}
	state.Tags = getList(params, paramTags)
	state.Folders = getList(params, paramFolders)

	return state
}

func setList(params url.Values, key string, values []string) {
	if len(values) == 0 {
		return
	}
	params.Set(key, strings.Join(values, ","))
}

func getList(params url.Values, key string) []string {
	if !params.Has(key) {
		return nil
	}
	return strings.Split(params.Get(key), ",")
}
