package service

import (
	"fmt"
	"strings"

	"love-by-flavour/internal/domain"
	"love-by-flavour/internal/flavour"
)

// Tipos de analisis cacheables. El tag forma parte de la clave de cache.
const (
	AnalysisTypePatterns      = "pattern_analysis"
	AnalysisTypeCompatibility = "compatibility"
	AnalysisTypeExInsight     = "ex_insight"
)

func flavourBlurb(f flavour.Flavour) string {
	if p, ok := flavour.ProfileFor(f); ok {
		return fmt.Sprintf("%s (%q): %s", p.Label, p.Tagline, p.Summary)
	}
	return string(f)
}

func buildPatternsPrompt(userFlavour flavour.Flavour, traits flavour.TraitVector, partners []domain.Partner) string {
	var sb strings.Builder
	sb.WriteString(`You are a relationship psychologist for the dating app "Love by Flavour". Users and their ex-partners are typed as dessert-flavour personality archetypes.

Analyze this user's dating history and:
- Name the recurring pattern in who they pick and why it keeps repeating.
- Point at the attachment dynamic driving it (anxious, avoidant, secure).
- Give ONE concrete thing to do differently next time.
- Return ONLY a JSON object with this format:
{
  "pattern": "short name of the pattern",
  "explanation": "2-3 sentences in second person",
  "attachment_dynamic": "one sentence",
  "advice": "one concrete action"
}

`)
	fmt.Fprintf(&sb, "User flavour: %s\n", flavourBlurb(userFlavour))
	fmt.Fprintf(&sb, "User traits (0-10): openness=%d conscientiousness=%d extraversion=%d agreeableness=%d neuroticism=%d anxious=%d avoidant=%d\n",
		traits.Openness, traits.Conscientiousness, traits.Extraversion, traits.Agreeableness, traits.Neuroticism, traits.Anxious, traits.Avoidant)

	sb.WriteString("Ex-partners, newest first:\n")
	for _, p := range partners {
		fmt.Fprintf(&sb, "- %s: %s", p.Nickname, flavourBlurb(p.Flavour))
		if p.Notes != "" {
			fmt.Fprintf(&sb, " Notes from the user: %s", p.Notes)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func buildCompatibilityPrompt(a, b flavour.Flavour) string {
	score, _ := flavour.Compatibility(a, b)
	return fmt.Sprintf(`You are a relationship psychologist for the dating app "Love by Flavour". Users are typed as dessert-flavour personality archetypes.

Explain the match between these two flavours. Our static matrix scores this pair %d/10; agree or push back, but justify it.
- Return ONLY a JSON object with this format:
{
  "score": 7,
  "headline": "one punchy sentence",
  "strengths": ["...", "..."],
  "frictions": ["...", "..."],
  "verdict": "2-3 sentences"
}

Flavour A: %s
Flavour B: %s`, score, flavourBlurb(a), flavourBlurb(b))
}

func buildExInsightPrompt(partner domain.Partner) string {
	var sb strings.Builder
	sb.WriteString(`You are a relationship psychologist for the dating app "Love by Flavour". Users log their ex-partners typed as dessert-flavour personality archetypes.

Give the user an honest read on this ex:
- Why the relationship probably played out the way it did.
- What this ex needed that the user may not have seen.
- Return ONLY a JSON object with this format:
{
  "read": "2-3 sentences in second person",
  "their_needs": "one sentence",
  "closure": "one kind, direct sentence"
}

`)
	fmt.Fprintf(&sb, "Ex-partner %q: %s\n", partner.Nickname, flavourBlurb(partner.Flavour))
	fmt.Fprintf(&sb, "Their traits (0-10): openness=%d conscientiousness=%d extraversion=%d agreeableness=%d neuroticism=%d anxious=%d avoidant=%d\n",
		partner.Traits.Openness, partner.Traits.Conscientiousness, partner.Traits.Extraversion,
		partner.Traits.Agreeableness, partner.Traits.Neuroticism, partner.Traits.Anxious, partner.Traits.Avoidant)
	if partner.Notes != "" {
		fmt.Fprintf(&sb, "Notes from the user: %s\n", partner.Notes)
	}
	return sb.String()
}
