package redirects

// applyTrailingSlash rewrites every candidate destination to the policy's
// canonical form so that validation and filtering compare like with like.
// Sources are left alone on purpose.
func applyTrailingSlash(candidates []candidate, policy TrailingSlash) []candidate {
	if policy.normalize() == TrailingSlashKeep {
		return candidates
	}
	out := make([]candidate, len(candidates))
	for i, c := range candidates {
		c.To = policy.Apply(c.To)
		out[i] = c
	}
	return out
}
