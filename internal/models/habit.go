package models

import "time"

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

type Habit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon,omitempty"`
	Frequency   Frequency `json:"frequency"`
	Target      float64   `json:"target"`
	Unit        string    `json:"unit,omitempty"`
	IsActive    bool      `json:"isActive"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// the list endpoint nests entries as habitEntries, the detail endpoint as entries
	HabitEntries []Entry `json:"habitEntries,omitempty"`
	EntryList    []Entry `json:"entries,omitempty"`
}

// Entries returns whichever entry list the API populated.
func (h Habit) Entries() []Entry {
	if h.HabitEntries != nil {
		return h.HabitEntries
	}
	return h.EntryList
}

type Entry struct {
	ID        string    `json:"id,omitempty"`
	HabitID   string    `json:"habitId,omitempty"`
	Date      string    `json:"date"`
	Value     float64   `json:"value"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type CreateHabitData struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon,omitempty"`
	Frequency   Frequency `json:"frequency"`
	Target      float64   `json:"target"`
	Unit        string    `json:"unit,omitempty"`
}

type UpdateHabitData struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Color       *string    `json:"color,omitempty"`
	Icon        *string    `json:"icon,omitempty"`
	Frequency   *Frequency `json:"frequency,omitempty"`
	Target      *float64   `json:"target,omitempty"`
	Unit        *string    `json:"unit,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
}
