package scheduler

import (
	"time"

	"github.com/julianstephens/routinely/internal/models"
)

// WeekendBlocks returns the fixed schedule for Saturday or Sunday. It does
// not depend on routine items. Weekdays yield no blocks.
func WeekendBlocks(weekday time.Weekday) []models.ScheduleBlock {
	switch weekday {
	case time.Saturday:
		return []models.ScheduleBlock{
			{
				Title:     "Weekly review & consolidation",
				StartTime: "09:00",
				EndTime:   "11:00",
				Subject:   "Weekly review",
				Notes:     "Go back over everything covered this week and tie loose ends together.",
			},
			{
				Title:     "Error-log compilation",
				StartTime: "14:00",
				EndTime:   "15:30",
				Subject:   "Error log",
				Notes:     "Collect this week's mistakes and write down the fix for each one.",
			},
		}
	case time.Sunday:
		return []models.ScheduleBlock{
			{
				Title:     "Next-week planning",
				StartTime: "10:00",
				EndTime:   "11:00",
				Subject:   "Planning",
				Notes:     "Set goals for the coming week and adjust the daily hours if needed.",
			},
		}
	default:
		return []models.ScheduleBlock{}
	}
}
