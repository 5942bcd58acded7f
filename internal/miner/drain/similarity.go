package drain

// similarityFunc scores how well a candidate token sequence matches an
// existing cluster template, returning the similarity score and the
// number of template positions that are already parameters (wildcards),
// used to break ties among equally-similar clusters in favor of the
// more specific (fewer-parameter) template.
type similarityFunc func(template, tokens []string) (score float64, paramCount int)

// drainSimilarity is the classic Drain metric: the fraction of
// positions where the template token equals the candidate token.
// Positions that are already "<*>" never count as equal but still
// count towards the length; they are tallied as the parameter count.
func drainSimilarity(template, tokens []string) (float64, int) {
	if len(template) != len(tokens) {
		return 0, 0
	}
	equal := 0
	params := 0
	for i, t := range template {
		if t == wildcardKey {
			params++
			continue
		}
		if t == tokens[i] {
			equal++
		}
	}
	if len(template) == 0 {
		return 1, 0
	}
	return float64(equal) / float64(len(template)), params
}

// jaccardSimilarity implements JaccardDrain's variant: the classic set
// Jaccard index over the two token sequences, scaled by a fixed 1.3x
// gain to compensate for Jaccard's tendency to under-score sequences
// that differ only in a couple of parameter tokens, clamped back to
// 1.0 so the gain can never push a score above "identical". Unlike
// drainSimilarity, this is defined for sequences of any length —
// JaccardDrain's tree can hand fastMatch candidates whose template is
// shorter or longer than the probed line.
func jaccardSimilarity(template, tokens []string) (float64, int) {
	if len(template) == 0 {
		return 1, 0
	}
	params := 0
	for _, t := range template {
		if t == wildcardKey {
			params++
		}
	}

	candidate := tokens
	if len(template) == len(tokens) && params > 0 {
		filtered := make([]string, 0, len(tokens))
		for i, t := range tokens {
			if template[i] != wildcardKey {
				filtered = append(filtered, t)
			}
		}
		candidate = filtered
	}

	tplSet := make(map[string]struct{}, len(template))
	for _, t := range template {
		tplSet[t] = struct{}{}
	}
	tokSet := make(map[string]struct{}, len(candidate))
	for _, t := range candidate {
		tokSet[t] = struct{}{}
	}

	intersection := 0
	union := make(map[string]struct{}, len(tplSet)+len(tokSet))
	for t := range tplSet {
		union[t] = struct{}{}
		if _, ok := tokSet[t]; ok {
			intersection++
		}
	}
	for t := range tokSet {
		union[t] = struct{}{}
	}
	if len(union) == 0 {
		return 1, params
	}

	jaccard := float64(intersection) / float64(len(union))
	gained := jaccard * 1.3
	if gained > 1.0 {
		gained = 1.0
	}
	return gained, params
}

// jaccardMergeTemplate implements JaccardDrain's template-update rule.
// newTokens is the line being added, template the existing cluster's
// rendered template. For equal-length sequences this wildcards the
// positions where they disagree, same as Drain. For differing lengths
// it keeps the longer of the two sequences and wildcards any of its
// tokens absent from the intersection of both token sets.
func jaccardMergeTemplate(newTokens, template []string) []string {
	set1 := make(map[string]struct{}, len(newTokens))
	for _, t := range newTokens {
		set1[t] = struct{}{}
	}
	inter := make(map[string]struct{})
	for _, t := range template {
		if _, ok := set1[t]; ok {
			inter[t] = struct{}{}
		}
	}

	if len(newTokens) == len(template) {
		out := append([]string(nil), template...)
		for i := range newTokens {
			if newTokens[i] != template[i] {
				out[i] = wildcardKey
			}
		}
		return out
	}

	longer := newTokens
	if len(template) > len(newTokens) {
		longer = template
	}
	out := append([]string(nil), longer...)
	for i, t := range out {
		if _, ok := inter[t]; !ok {
			out[i] = wildcardKey
		}
	}
	return out
}
