package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/utils"
)

// Allocate places one weekday's items into sequential blocks. The cursor
// starts at 09:00; each block starts at max(cursor, focus floor) and the
// cursor then advances to the block end plus a 30 minute rest. Placement is
// greedy and single pass: a later item can only push its own start later.
func (s *Scheduler) Allocate(items []models.RoutineItem, dayIndex int, weekday time.Weekday) []models.ScheduleBlock {
	if s.opts.EnforceConstraints {
		items = constrainedItems(items, weekday)
	}

	activity := ActivityType(dayIndex)
	blocks := make([]models.ScheduleBlock, 0, len(items))

	cursor := constants.AllocatorStartMin
	for _, item := range items {
		start := cursor
		if floor, ok := item.PrimaryFocus().FloorMinutes(); ok && floor > start {
			start = floor
		}

		duration := item.DurationMinutes()
		if s.opts.EnforceConstraints {
			start = avoidWindow(item, weekday, start, duration)
		}
		// Hours past 23 are not wrapped so a late block still sorts after its predecessor.
		end := start + duration

		blocks = append(blocks, models.ScheduleBlock{
			Title:     fmt.Sprintf("%s - %s", item.Subject, activity),
			StartTime: utils.FormatMinutes(start),
			EndTime:   utils.FormatMinutes(end),
			Subject:   item.Subject,
			Notes:     StudyNote(item.Subject, activity, dayIndex),
		})

		cursor = end + constants.RestGapMin
	}

	return blocks
}

// constrainedItems keeps the items selected for weekday, highest priority
// first. Input order is preserved within a priority.
func constrainedItems(items []models.RoutineItem, weekday time.Weekday) []models.RoutineItem {
	var kept []models.RoutineItem
	for _, item := range items {
		if item.ParticipatesOn(weekday) {
			kept = append(kept, item)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Priority.Rank() < kept[j].Priority.Rank()
	})
	return kept
}

// avoidWindow moves start past the item's unavailable window when the block
// [start, start+duration) would overlap it.
func avoidWindow(item models.RoutineItem, weekday time.Weekday, start, duration int) int {
	window, ok := item.UnavailableOn(weekday)
	if !ok {
		return start
	}
	wStart, wEnd, err := window.Minutes()
	if err != nil {
		return start
	}
	if start < wEnd && start+duration > wStart {
		return wEnd
	}
	return start
}
