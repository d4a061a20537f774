package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"depextract/internal/policies"
	"depextract/internal/types"
)

// InstalledNone is the installed version shown for absent targets.
const InstalledNone = "-"

// Validate checks every dependency of every non-platform identity against the
// namespace. When a target id has several members the first one added is
// used.
func Validate(ctx context.Context, ns *Namespace, filter types.ResultFilter) types.DependencyGraph {
	graph := types.DependencyGraph{
		Platform:     ns.Platform(),
		Duplicates:   ns.Duplicates(),
		Filter:       filter,
		AllSatisfied: true,
		ModCount:     ns.ModCount(),
	}

	for _, id := range ns.IDs() {
		if isPlatformID(id) {
			continue
		}
		for _, identity := range ns.Lookup(id) {
			results := validateIdentity(ns, identity)
			if !policies.Retain(filter, results) {
				continue
			}
			for _, result := range results {
				if !result.Placeholder && !result.Satisfied {
					graph.AllSatisfied = false
				}
			}
			graph.Identities = append(graph.Identities, types.IdentityResults{
				Identity: identity,
				Results:  results,
			})
		}
	}

	log.Ctx(ctx).Info().
		Int("mods", graph.ModCount).
		Int("shown", len(graph.Identities)).
		Bool("all_satisfied", graph.AllSatisfied).
		Msg("dependencies validated")
	return graph
}

func validateIdentity(ns *Namespace, identity types.ModIdentity) []types.SatisfactionResult {
	if len(identity.Dependencies) == 0 {
		return []types.SatisfactionResult{{Satisfied: true, Placeholder: true}}
	}
	deps := append([]types.Dependency(nil), identity.Dependencies...)
	sort.SliceStable(deps, func(i, j int) bool {
		return CompareModIDs(deps[i].TargetID, deps[j].TargetID) < 0
	})

	results := make([]types.SatisfactionResult, 0, len(deps))
	for i := range deps {
		dep := &deps[i]
		result := types.SatisfactionResult{
			Dependency:       dep,
			InstalledVersion: InstalledNone,
		}
		if members := ns.Lookup(dep.TargetID); len(members) > 0 {
			target := members[0]
			result.Installed = true
			result.InstalledVersion = target.Version.String()
			result.InRange = dep.Range.Contains(target.Version)
		}
		result.Satisfied = policies.IsSatisfied(dep.Severity, result.Installed, result.InRange)
		results = append(results, result)
	}
	return results
}
