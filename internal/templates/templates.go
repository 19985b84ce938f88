// Package templates holds the pre-filled card scaffolds offered to new
// members so common task types start with usable descriptions and
// acceptance criteria.
package templates

// CardTemplate is one scaffold the UI can instantiate a card from.
type CardTemplate struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	TaskType           string `json:"task_type"`
	Description        string `json:"description"`
	AcceptanceCriteria string `json:"acceptance_criteria"`
	Priority           string `json:"priority"`
	IsOnboarding       bool   `json:"is_onboarding"`
}

var cardTemplates = []CardTemplate{
	{
		ID:       "design",
		Name:     "Design Task",
		TaskType: "Design",
		Description: "1. Review requirements/constraints\n" +
			"2. Create initial sketches/CAD model\n" +
			"3. Get feedback from team lead\n" +
			"4. Finalize design with dimensions",
		AcceptanceCriteria: "- [ ] CAD model uploaded to Drive\n" +
			"- [ ] Drawing with key dimensions\n" +
			"- [ ] Lead reviewed and approved\n" +
			"- [ ] Link added to this card",
		Priority: "P2",
	},
	{
		ID:       "build",
		Name:     "Build Task",
		TaskType: "Build",
		Description: "1. Gather materials from inventory\n" +
			"2. Follow build instructions/CAD\n" +
			"3. Take photos during assembly\n" +
			"4. Log any issues encountered",
		AcceptanceCriteria: "- [ ] Part built to spec\n" +
			"- [ ] Photo(s) of completed work\n" +
			"- [ ] Any issues logged\n" +
			"- [ ] Cleaned up workspace",
		Priority:     "P2",
		IsOnboarding: true,
	},
	{
		ID:       "test",
		Name:     "Test Task",
		TaskType: "Test",
		Description: "1. Set up test environment\n" +
			"2. Follow test procedure\n" +
			"3. Record all data points\n" +
			"4. Document any anomalies",
		AcceptanceCriteria: "- [ ] Test data logged (spreadsheet/photo)\n" +
			"- [ ] Pass/fail result recorded\n" +
			"- [ ] Next steps identified if failed\n" +
			"- [ ] Equipment returned/cleaned",
		Priority: "P1",
	},
	{
		ID:       "procurement",
		Name:     "Procurement Task",
		TaskType: "Procurement",
		Description: "1. Identify exact part needed (link/PN)\n" +
			"2. Check budget with lead\n" +
			"3. Submit purchase request\n" +
			"4. Track delivery",
		AcceptanceCriteria: "- [ ] Part link/PN in Inputs\n" +
			"- [ ] Price confirmed under budget\n" +
			"- [ ] Order placed (screenshot)\n" +
			"- [ ] Delivery tracked",
		Priority: "P2",
	},
	{
		ID:       "docs",
		Name:     "Documentation / Report",
		TaskType: "Docs",
		Description: "1. Gather data/photos/results\n" +
			"2. Write draft in Google Docs\n" +
			"3. Get peer review\n" +
			"4. Submit final version",
		AcceptanceCriteria: "- [ ] Document drafted\n" +
			"- [ ] Reviewed by 1+ teammate\n" +
			"- [ ] Final version linked\n" +
			"- [ ] Shared with team",
		Priority:     "P3",
		IsOnboarding: true,
	},
	{
		ID:       "research",
		Name:     "Research Task",
		TaskType: "Docs",
		Description: "1. Define research question\n" +
			"2. Find 3+ sources (papers, videos, forums)\n" +
			"3. Summarize key findings\n" +
			"4. Present to team (5 min)",
		AcceptanceCriteria: "- [ ] Research summary (1 page)\n" +
			"- [ ] Sources linked\n" +
			"- [ ] Key takeaways listed\n" +
			"- [ ] Shared in Discord/meeting",
		Priority:     "P3",
		IsOnboarding: true,
	},
}

// All returns every card template.
func All() []CardTemplate {
	return cardTemplates
}

// ByID returns the template with the given id, or nil.
func ByID(id string) *CardTemplate {
	for i := range cardTemplates {
		if cardTemplates[i].ID == id {
			return &cardTemplates[i]
		}
	}
	return nil
}

// Onboarding returns the templates flagged for onboarding cards.
func Onboarding() []CardTemplate {
	var out []CardTemplate
	for _, t := range cardTemplates {
		if t.IsOnboarding {
			out = append(out, t)
		}
	}
	return out
}
