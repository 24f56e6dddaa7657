package narrative

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/models"
)

// Strategies are the fixed bullet points closing every summary.
var Strategies = []string{
	"Keep each block focused on one subject and silence notifications.",
	"Use the 30 minute rests to move, hydrate and step away from the screen.",
	"Log mistakes as you go so the weekend review has material to work with.",
	"Adjust daily hours after the first week rather than abandoning the plan.",
}

// ClosingNote is appended when a plan runs longer than LongPlanThresholdDays.
const ClosingNote = "This is a longer plan. Expect a dip in motivation midway and lean on the weekly review to stay on track."

var focusLabels = map[models.FocusTime]string{
	models.FocusMorning:   "morning (from 08:00)",
	models.FocusForenoon:  "forenoon (from 09:00)",
	models.FocusAfternoon: "afternoon (from 14:00)",
	models.FocusEvening:   "evening (from 18:00)",
	models.FocusNight:     "night (flexible start)",
}

const primaryText = `Your {{.Duration}}-day routine is ready.
Subjects: {{.Subjects}}
Daily study load: {{.TotalHours}} hours
Best focus window: {{.FocusLabel}}
{{if .Recommendation}}
Coach's take: {{.Recommendation}}
{{end}}
How to make it stick:
{{range .Strategies}}- {{.}}
{{end}}{{if .ClosingNote}}
{{.ClosingNote}}
{{end}}`

const fallbackText = `Routine overview ({{.Duration}} days)
Covering: {{.Subjects}}
Total hours per day: {{.TotalHours}}
Preferred focus time: {{.FocusLabel}}

Strategies:
{{range .Strategies}}- {{.}}
{{end}}{{if .ClosingNote}}
{{.ClosingNote}}
{{end}}`

const promptText = `Write two or three encouraging sentences for a student starting a {{.Duration}}-day study routine.
Subjects: {{.Subjects}}
Hours per day: {{.TotalHours}}
Preferred focus time: {{.FocusLabel}}`

// Data is the input rendered by every summary template.
type Data struct {
	Duration       int
	Subjects       string
	TotalHours     string
	FocusLabel     string
	Strategies     []string
	ClosingNote    string
	Recommendation string
}

// Builder renders plan summaries from templates. The primary template is
// used when a text provider contributed a recommendation, the fallback
// template otherwise. Both carry the same information.
type Builder struct {
	primary  *template.Template
	fallback *template.Template
	prompt   *template.Template
}

func NewBuilder() *Builder {
	return &Builder{
		primary:  template.Must(template.New("primary").Parse(primaryText)),
		fallback: template.Must(template.New("fallback").Parse(fallbackText)),
		prompt:   template.Must(template.New("prompt").Parse(promptText)),
	}
}

// NewData collects the summary inputs. A zero focus falls back to forenoon.
func NewData(items []models.RoutineItem, duration int, focus models.FocusTime) Data {
	subjects := make([]string, 0, len(items))
	total := 0.0
	for _, item := range items {
		subjects = append(subjects, item.Subject)
		hours := item.DailyHours
		if hours <= 0 {
			hours = constants.DefaultDailyHours
		}
		total += hours
	}

	data := Data{
		Duration:   duration,
		Subjects:   strings.Join(subjects, ", "),
		TotalHours: strconv.FormatFloat(total, 'f', -1, 64),
		FocusLabel: FocusLabel(focus),
		Strategies: Strategies,
	}
	if data.Subjects == "" {
		data.Subjects = "none yet"
	}
	if duration > constants.LongPlanThresholdDays {
		data.ClosingNote = ClosingNote
	}
	return data
}

// Summarize renders the fallback template. It never fails.
func (b *Builder) Summarize(items []models.RoutineItem, duration int, focus models.FocusTime) string {
	return b.Fallback(NewData(items, duration, focus))
}

// Primary renders the primary template, or the fallback if rendering fails.
func (b *Builder) Primary(data Data) string {
	out, err := render(b.primary, data)
	if err != nil {
		return b.Fallback(data)
	}
	return out
}

func (b *Builder) Fallback(data Data) string {
	out, err := render(b.fallback, data)
	if err != nil {
		return fmt.Sprintf("Routine overview (%d days): %s", data.Duration, data.Subjects)
	}
	return out
}

// Prompt renders the user message sent to a text provider.
func (b *Builder) Prompt(data Data) (string, error) {
	return render(b.prompt, data)
}

func render(tmpl *template.Template, data Data) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// DominantFocus returns the first item's first focus preference, or forenoon.
func DominantFocus(items []models.RoutineItem) models.FocusTime {
	if len(items) == 0 {
		return models.FocusForenoon
	}
	return items[0].PrimaryFocus()
}

// FocusLabel returns the human readable label for focus.
func FocusLabel(focus models.FocusTime) string {
	if label, ok := focusLabels[focus]; ok {
		return label
	}
	return focusLabels[models.FocusForenoon]
}
