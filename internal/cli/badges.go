package cli

import (
	"habitdash/internal/analytics"
	"habitdash/internal/models"
)

var badgeGlyphs = map[models.BadgeIcon]string{
	models.IconStar:         "★",
	models.IconFlame:        "🔥",
	models.IconTarget:       "◎",
	models.IconTrendingUp:   "↗",
	models.IconCrown:        "♛",
	models.IconCheckCircle2: "✔",
	models.IconTrophy:       "🏆",
	models.IconAward:        "🏅",
	models.IconZap:          "⚡",
	models.IconHeart:        "♥",
	models.IconBookOpen:     "📖",
	models.IconClock:        "◷",
	models.IconMoon:         "☾",
	models.IconUsers:        "👥",
	models.IconUserCheck:    "☑",
	models.IconUserPlus:     "+",
}

func badgeGlyph(b models.Badge) string {
	return badgeGlyphs[b.BadgeIcon()]
}

type BadgesCmd struct {
	Category string `help:"Only show badges in this category." default:"all"`
}

func (c *BadgesCmd) Run(ctx *Context) error {
	resp, err := ctx.API.GetBadges(ctx.Ctx)
	if err != nil {
		return err
	}

	earned, locked := analytics.PartitionBadges(resp.Badges, c.Category)
	rows := make([][]string, 0, len(earned)+len(locked))
	for _, b := range earned {
		rows = append(rows, badgeRow(b, "earned"))
	}
	for _, b := range locked {
		rows = append(rows, badgeRow(b, "locked"))
	}
	if len(rows) == 0 {
		ctx.printf("No badges in %q.\n", c.Category)
	} else {
		ctx.printTable([]string{"", "badge", "category", "points", "status"}, rows)
	}

	stats := resp.UserStats
	ctx.printf("%d earned, %d points, %s\n", stats.BadgesEarned, stats.TotalPoints, analytics.RankForPoints(stats.TotalPoints))
	return nil
}

func badgeRow(b models.Badge, status string) []string {
	return []string{badgeGlyph(b), b.Name, b.Category, itoa(b.Points), status}
}
