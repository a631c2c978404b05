package models

type Badge struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Threshold   *int    `json:"threshold,omitempty"`
	Earned      bool    `json:"earned"`
	EarnedDate  *string `json:"earnedDate,omitempty"`
	Rarity      string  `json:"rarity"`
	Color       string  `json:"color"`
	Points      int     `json:"points"`
	Requirement string  `json:"requirement,omitempty"`
}

type BadgeStats struct {
	TotalPoints     int `json:"totalPoints"`
	BadgesEarned    int `json:"badgesEarned"`
	CurrentStreak   int `json:"currentStreak"`
	HabitsCompleted int `json:"habitsCompleted"`
}

type BadgeResponse struct {
	Badges    []Badge    `json:"badges"`
	UserStats BadgeStats `json:"userStats"`
}

const BadgeCategoryAll = "all"

// BadgeIcon is the closed set of icon identifiers the API may send.
type BadgeIcon string

const (
	IconStar         BadgeIcon = "Star"
	IconFlame        BadgeIcon = "Flame"
	IconTarget       BadgeIcon = "Target"
	IconTrendingUp   BadgeIcon = "TrendingUp"
	IconCrown        BadgeIcon = "Crown"
	IconCheckCircle2 BadgeIcon = "CheckCircle2"
	IconTrophy       BadgeIcon = "Trophy"
	IconAward        BadgeIcon = "Award"
	IconZap          BadgeIcon = "Zap"
	IconHeart        BadgeIcon = "Heart"
	IconBookOpen     BadgeIcon = "BookOpen"
	IconClock        BadgeIcon = "Clock"
	IconMoon         BadgeIcon = "Moon"
	IconUsers        BadgeIcon = "Users"
	IconUserCheck    BadgeIcon = "UserCheck"
	IconUserPlus     BadgeIcon = "UserPlus"
)

var badgeIcons = []BadgeIcon{
	IconStar, IconFlame, IconTarget, IconTrendingUp, IconCrown, IconCheckCircle2,
	IconTrophy, IconAward, IconZap, IconHeart, IconBookOpen, IconClock,
	IconMoon, IconUsers, IconUserCheck, IconUserPlus,
}

// ParseBadgeIcon maps an API icon name onto the known set, falling back to IconAward.
func ParseBadgeIcon(name string) (BadgeIcon, bool) {
	for _, icon := range badgeIcons {
		if string(icon) == name {
			return icon, true
		}
	}
	return IconAward, false
}

func (b Badge) BadgeIcon() BadgeIcon {
	icon, _ := ParseBadgeIcon(b.Icon)
	return icon
}
