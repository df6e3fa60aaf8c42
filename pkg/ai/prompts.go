package ai

import (
	"fmt"
	"strings"
)

// Prompt construction for every provider operation. All adapters share these
// builders; vendors differ only in how the round-trip is made.

const classifySystemPrompt = `You are a document-type classifier. Inspect the document title and purpose and decide which structural template fits best.
Respond with ONLY a JSON object, no explanation:
{"type": "announcement" | "presentation" | "generic", "audience": "string", "tone": "string"}`

func BuildClassifyPrompt(title, purpose string) (string, string) {
	user := fmt.Sprintf("Title: %s\nPurpose: %s", title, purpose)
	return classifySystemPrompt, user
}

const outlineSystemPrompt = `You are a professional document planner. Produce a clear, human-readable outline (a "plan") in markdown: numbered top-level sections, each with a one-sentence description of what it covers. Do not write the document itself.`

func BuildOutlinePrompt(req OutlineRequest) (string, string) {
	var sb strings.Builder
	sb.WriteString("Propose an outline for a document with the following details:\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", req.Title))
	sb.WriteString(fmt.Sprintf("Purpose: %s\n", req.Purpose))

	if len(req.DataSources) > 0 {
		sb.WriteString("\n<structural_template>\n")
		sb.WriteString("Documents of this type usually follow this section structure. Adapt it, do not copy it blindly:\n")
		for i, s := range req.DataSources {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, s))
		}
		sb.WriteString("</structural_template>\n")
	}

	if len(req.References) > 0 {
		sb.WriteString("\n<available_references>\n")
		sb.WriteString("The author attached these reference resources. Plan sections that can draw on them:\n")
		for _, r := range req.References {
			sb.WriteString(fmt.Sprintf("- %s\n", r))
		}
		sb.WriteString("</available_references>\n")
	}

	return outlineSystemPrompt, sb.String()
}

const refineSystemPrompt = `You are a professional editor refining a document outline. Apply the user's feedback with minimal necessary changes and return the COMPLETE revised outline in the same markdown format. Return only the outline.`

func BuildRefinePrompt(planText, feedback string) (string, string) {
	var sb strings.Builder
	sb.WriteString("<current_plan>\n")
	sb.WriteString(planText)
	sb.WriteString("\n</current_plan>\n\n")
	sb.WriteString("Feedback to apply:\n")
	sb.WriteString(feedback)
	return refineSystemPrompt, sb.String()
}

const finalizeSystemPrompt = `You convert an approved document outline into structured section descriptors.
Respond with ONLY a JSON object in exactly this shape:
{
  "sections": [
    {
      "title": "string",
      "description": "string",
      "objective": "string",
      "key_points": ["string"],
      "estimated_length": "string",
      "target_audience": "string"
    }
  ]
}
Every section must have a non-empty title and description.`

func BuildFinalizePrompt(planText string) (string, string) {
	user := fmt.Sprintf("Convert this approved plan into section descriptors:\n\n%s", planText)
	return finalizeSystemPrompt, user
}

const sectionSystemPrompt = `You are a professional writer producing one section of a larger document. Write polished prose in markdown. Output ONLY the section content: no preamble, no headings repeating the section title, no commentary.`

func BuildSectionPrompt(req SectionRequest) (string, string) {
	var sb strings.Builder
	sb.WriteString("<document>\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", req.DocumentTitle))
	sb.WriteString(fmt.Sprintf("Purpose: %s\n", req.DocumentPurpose))
	sb.WriteString("</document>\n\n")

	sb.WriteString("<section>\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", req.SectionTitle))
	sb.WriteString(fmt.Sprintf("Description: %s\n", req.SectionDescription))
	if req.Objective != "" {
		sb.WriteString(fmt.Sprintf("Objective: %s\n", req.Objective))
	}
	if req.TargetAudience != "" {
		sb.WriteString(fmt.Sprintf("Target audience: %s\n", req.TargetAudience))
	}
	if req.EstimatedLength != "" {
		sb.WriteString(fmt.Sprintf("Target length: %s\n", req.EstimatedLength))
	}
	if len(req.KeyPoints) > 0 {
		sb.WriteString("Key points the section MUST cover:\n")
		for _, kp := range req.KeyPoints {
			sb.WriteString(fmt.Sprintf("- %s\n", kp))
		}
	}
	sb.WriteString("</section>\n")

	writeNeighbor(&sb, "preceding_section", req.Previous)
	writeNeighbor(&sb, "following_section", req.Next)
	writeSnippets(&sb, req.Snippets)

	sb.WriteString("\nWrite the section now.")
	return sectionSystemPrompt, sb.String()
}

func writeNeighbor(sb *strings.Builder, tag string, n *NeighborSection) {
	if n == nil || n.Content == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("\n<%s title=%q>\n", tag, n.Title))
	sb.WriteString(n.Content)
	sb.WriteString(fmt.Sprintf("\n</%s>\n", tag))
	sb.WriteString("Maintain narrative continuity with this adjacent section.\n")
}

func writeSnippets(sb *strings.Builder, snippets []ContextSnippet) {
	if len(snippets) == 0 {
		return
	}
	sb.WriteString("\n<reference_material>\n")
	sb.WriteString("Ground factual claims in these excerpts where relevant:\n")
	for _, s := range snippets {
		sb.WriteString(fmt.Sprintf("\n--- SOURCE: %s ---\n", s.Source))
		sb.WriteString(s.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("</reference_material>\n")
}

const scoreSystemPrompt = `You are a strict content reviewer. Score the given section draft from 1 to 100 considering clarity, relevance to its description, completeness and flow. Respond with ONLY the integer. No words, no punctuation.`

func BuildScorePrompt(sectionTitle, sectionDescription, content string) (string, string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Section: %s\n", sectionTitle))
	sb.WriteString(fmt.Sprintf("Description: %s\n\n", sectionDescription))
	sb.WriteString("<draft>\n")
	sb.WriteString(content)
	sb.WriteString("\n</draft>")
	return scoreSystemPrompt, sb.String()
}

const improveSystemPrompt = `You are a professional editor revising one section of a larger document. Apply ALL required improvements. Preserve every key point the current draft covers; improvements add to the draft, they never drop required content. Output ONLY the revised section content in markdown.`

func BuildImprovePrompt(req ImproveRequest) (string, string) {
	var sb strings.Builder
	sb.WriteString("<document>\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", req.DocumentTitle))
	sb.WriteString(fmt.Sprintf("Purpose: %s\n", req.DocumentPurpose))
	sb.WriteString("</document>\n\n")

	sb.WriteString("<section>\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", req.SectionTitle))
	sb.WriteString(fmt.Sprintf("Description: %s\n", req.SectionDescription))
	if req.EstimatedLength != "" {
		sb.WriteString(fmt.Sprintf("Target length: %s\n", req.EstimatedLength))
	}
	if len(req.KeyPoints) > 0 {
		sb.WriteString("Key points that MUST remain covered:\n")
		for _, kp := range req.KeyPoints {
			sb.WriteString(fmt.Sprintf("- %s\n", kp))
		}
	}
	sb.WriteString("</section>\n\n")

	sb.WriteString("<current_draft>\n")
	sb.WriteString(req.CurrentContent)
	sb.WriteString("\n</current_draft>\n\n")

	sb.WriteString("Required improvements:\n")
	for i, imp := range req.Improvements {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, imp))
	}

	writeSnippets(&sb, req.Snippets)

	sb.WriteString("\nRewrite the section now.")
	return improveSystemPrompt, sb.String()
}

const evaluateSystemPrompt = `You are a rigorous document reviewer. Evaluate the assembled document and respond with ONLY a JSON object in exactly this shape, every score an integer from 1 to 100:
{
  "overall_score": 0,
  "categories": {
    "readability": 0,
    "relevance": 0,
    "completeness": 0,
    "factual_support": 0,
    "persuasiveness": 0,
    "consistency": 0
  },
  "improvements": ["string"],
  "detailed_feedback": "markdown string"
}`

func BuildEvaluatePrompt(req EvaluationRequest) (string, string) {
	var sb strings.Builder
	sb.WriteString("<document>\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", req.Title))
	sb.WriteString(fmt.Sprintf("Purpose: %s\n", req.Purpose))
	sb.WriteString("</document>\n")

	for _, s := range req.Sections {
		sb.WriteString(fmt.Sprintf("\n--- SECTION: %s ---\n", s.Title))
		sb.WriteString(s.Content)
		sb.WriteString("\n")
	}

	sb.WriteString("\nEvaluate the document now.")
	return evaluateSystemPrompt, sb.String()
}
