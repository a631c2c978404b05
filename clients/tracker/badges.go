package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"habitdash/internal/models"
)

func (c *Client) GetBadges(ctx context.Context) (models.BadgeResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "badges", nil)
	if err != nil {
		return models.BadgeResponse{}, fmt.Errorf("unable to create request: %w", err)
	}

	var badges models.BadgeResponse
	if err := c.do(c.authed, req, &badges); err != nil {
		return models.BadgeResponse{}, fmt.Errorf("error getting badges: %w", err)
	}
	return badges, nil
}

// AwardBadge returns the raw award payload; its shape is not fixed by the API.
func (c *Client) AwardBadge(ctx context.Context, badgeID string) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "badges", awardBadgeRequest{BadgeID: badgeID})
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	var raw json.RawMessage
	if err := c.do(c.authed, req, &raw); err != nil {
		return nil, fmt.Errorf("error awarding badge: %w", err)
	}
	return raw, nil
}
