package planner

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a career-pathway planner for working adults.

Rules:
- Order the given missing skills into a learning sequence, foundations before skills that build on them.
- Use only skills from the "Missing skills" list, spelled exactly as given. Never invent, merge, or rename skills.
- Estimate realistic study hours per skill for a busy adult learning part-time.
- Keep reasons to one sentence each; the rationale to two or three sentences.
- If the list is longer than the requested maximum, plan the most foundational skills and leave the rest out.`

// buildUserMessage constructs the user message from PlanInput and Config limits.
func buildUserMessage(input PlanInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target job: %s\n", input.TargetJobTitle)
	fmt.Fprintf(&b, "Missing skills: %s\n", strings.Join(input.MissingSkills, ", "))

	if len(input.KnownSkills) > 0 {
		fmt.Fprintf(&b, "Already has: %s\n", strings.Join(input.KnownSkills, ", "))
	}
	if input.WeeklyStudyHours > 0 {
		fmt.Fprintf(&b, "Study budget: %d hours per week\n", input.WeeklyStudyHours)
	}
	if cfg.MaxPlanSkills > 0 {
		fmt.Fprintf(&b, "Plan at most %d skills.\n", cfg.MaxPlanSkills)
	}

	return b.String()
}
