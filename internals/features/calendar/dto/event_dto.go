// file: internals/features/calendar/dto/event_dto.go
package dto

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	model "schoolcal_backend/internals/features/calendar/model"
)

// Sentinel department yang berarti "tanpa filter"; tidak boleh ikut WHERE.
const DepartmentAll = "See All"

var reClock = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

/* =========================================================
   Requests: CREATE
   ========================================================= */

type CreateEventRequest struct {
	DateKey     string  `json:"dateKey" validate:"required"`
	Title       string  `json:"title" validate:"required,max=160"`
	Time        string  `json:"time" validate:"required"`
	Department  string  `json:"department" validate:"required,max=120"`
	Description *string `json:"description" validate:"omitempty"`
}

func (r *CreateEventRequest) Normalize() {
	r.DateKey = strings.TrimSpace(r.DateKey)
	r.Title = strings.TrimSpace(r.Title)
	r.Time = strings.TrimSpace(r.Time)
	r.Department = strings.TrimSpace(r.Department)
	r.Description = trimPtr(r.Description)
}

func (r *CreateEventRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if _, ok := ParseDateKey(r.DateKey); !ok {
		return errors.New("dateKey must be YYYY-MM-DD")
	}
	if !reClock.MatchString(r.Time) {
		return errors.New("time must be HH:MM")
	}
	return nil
}

func (r *CreateEventRequest) ToModel() model.EventModel {
	date, _ := ParseDateKey(r.DateKey)
	return model.EventModel{
		EventDate:        date,
		EventTitle:       r.Title,
		EventTime:        r.Time,
		EventDepartment:  r.Department,
		EventDescription: r.Description,
	}
}

/* =========================================================
   Query: LIST (range + optional department)
   ========================================================= */

type ListEventsQuery struct {
	StartDate  string `query:"startDate" validate:"required"`
	EndDate    string `query:"endDate" validate:"required"`
	Department string `query:"department"`
}

func (q *ListEventsQuery) Normalize() {
	q.StartDate = strings.TrimSpace(q.StartDate)
	q.EndDate = strings.TrimSpace(q.EndDate)
	q.Department = strings.TrimSpace(q.Department)
}

// DepartmentFilter: "" dan sentinel "See All" berarti tanpa filter.
func (q *ListEventsQuery) DepartmentFilter() (string, bool) {
	if q.Department == "" || q.Department == DepartmentAll {
		return "", false
	}
	return q.Department, true
}

/* =========================================================
   Responses & aggregation
   ========================================================= */

type EventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Time        string  `json:"time"`
	Department  string  `json:"department"`
	Description *string `json:"description"`
}

func FromModelEvent(m model.EventModel) EventResponse {
	return EventResponse{
		ID:          m.EventID,
		Title:       m.EventTitle,
		Time:        FormatClock(m.EventTime),
		Department:  m.EventDepartment,
		Description: m.EventDescription,
	}
}

// GroupEvents: flat rows → sparse map "YYYY-MM-DD" → events, jam ascending.
// Sorting di sini tidak bergantung ORDER BY dari store.
func GroupEvents(rows []model.EventModel) map[string][]EventResponse {
	out := make(map[string][]EventResponse)
	for _, m := range rows {
		k := DateKey(m.EventDate)
		out[k] = append(out[k], FromModelEvent(m))
	}
	for _, evs := range out {
		sort.SliceStable(evs, func(i, j int) bool { return evs[i].Time < evs[j].Time })
	}
	return out
}
