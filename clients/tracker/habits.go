package tracker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"

	"habitdash/internal/models"
)

func (c *Client) GetHabits(ctx context.Context) ([]models.Habit, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "habits", nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	var habits []models.Habit
	if err := c.do(c.authed, req, &habits); err != nil {
		return nil, fmt.Errorf("error getting habits: %w", err)
	}
	return habits, nil
}

func (c *Client) GetHabit(ctx context.Context, id string) (models.Habit, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "habits/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Habit{}, fmt.Errorf("unable to create request: %w", err)
	}

	var habit models.Habit
	if err := c.do(c.authed, req, &habit); err != nil {
		return models.Habit{}, fmt.Errorf("error getting habit %s: %w", id, err)
	}
	return habit, nil
}

func (c *Client) CreateHabit(ctx context.Context, data models.CreateHabitData) (models.Habit, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "habits", data)
	if err != nil {
		return models.Habit{}, fmt.Errorf("unable to create request: %w", err)
	}

	var habit models.Habit
	if err := c.do(c.authed, req, &habit); err != nil {
		return models.Habit{}, fmt.Errorf("error creating habit: %w", err)
	}
	return habit, nil
}

func (c *Client) UpdateHabit(ctx context.Context, id string, data models.UpdateHabitData) (models.Habit, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "habits/"+url.PathEscape(id), data)
	if err != nil {
		return models.Habit{}, fmt.Errorf("unable to create request: %w", err)
	}

	var habit models.Habit
	if err := c.do(c.authed, req, &habit); err != nil {
		return models.Habit{}, fmt.Errorf("error updating habit %s: %w", id, err)
	}
	return habit, nil
}

func (c *Client) DeleteHabit(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "habits/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("unable to create request: %w", err)
	}
	if err := c.do(c.authed, req, nil); err != nil {
		return fmt.Errorf("error deleting habit %s: %w", id, err)
	}
	return nil
}

// MarkComplete logs a completion for habitID on date (YYYY-MM-DD).
func (c *Client) MarkComplete(ctx context.Context, habitID, date string) (models.Entry, error) {
	req, err := c.newRequest(
		ctx,
		http.MethodPost,
		fmt.Sprintf("habits/%s/entries", url.PathEscape(habitID)),
		markEntryRequest{Date: date, Completed: true},
	)
	if err != nil {
		return models.Entry{}, fmt.Errorf("unable to create request: %w", err)
	}

	var entry models.Entry
	if err := c.do(c.authed, req, &entry); err != nil {
		return models.Entry{}, fmt.Errorf("error marking habit complete: %w", err)
	}
	return entry, nil
}

func (c *Client) MarkIncomplete(ctx context.Context, habitID, date string) error {
	req, err := c.newRequest(
		ctx,
		http.MethodDelete,
		fmt.Sprintf("habits/%s/entries/%s", url.PathEscape(habitID), url.PathEscape(date)),
		nil,
	)
	if err != nil {
		return fmt.Errorf("unable to create request: %w", err)
	}
	if err := c.do(c.authed, req, nil); err != nil {
		return fmt.Errorf("error marking habit incomplete: %w", err)
	}
	return nil
}

func (c *Client) GetEntries(ctx context.Context, habitID string, filter *EntryFilterOptions) ([]models.Entry, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("habits/%s/entries", url.PathEscape(habitID)), nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	if filter != nil {
		v, err := query.Values(filter)
		if err != nil {
			return nil, fmt.Errorf("unable to encode filter: %w", err)
		}
		req.URL.RawQuery = v.Encode()
	}

	var entries []models.Entry
	if err := c.do(c.authed, req, &entries); err != nil {
		return nil, fmt.Errorf("error getting entries: %w", err)
	}
	return entries, nil
}
