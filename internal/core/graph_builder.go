package core

import (
	"context"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"depextract/internal/types"
	"depextract/internal/version"
)

// GraphBuilder accumulates identities while archives are scanned. It is not
// safe for concurrent use.
type GraphBuilder struct {
	entries map[string][]types.ModIdentity
	order   []string
	frozen  bool
}

func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{entries: map[string][]types.ModIdentity{}}
}

func (b *GraphBuilder) Add(identities ...types.ModIdentity) {
	if b.frozen {
		return
	}
	for _, identity := range identities {
		if _, ok := b.entries[identity.ID]; !ok {
			b.order = append(b.order, identity.ID)
		}
		b.entries[identity.ID] = append(b.entries[identity.ID], identity)
	}
}

// Freeze adds the platform identities and returns the immutable namespace.
// The builder accepts no further identities afterwards.
func (b *GraphBuilder) Freeze(ctx context.Context, platform types.PlatformVersions) *Namespace {
	b.frozen = true

	entries := make(map[string][]types.ModIdentity, len(b.entries)+2)
	modCount := 0
	for id, members := range b.entries {
		assert.NotEmpty(ctx, id, "mod id must be set")
		if isPlatformID(id) {
			continue
		}
		entries[id] = append([]types.ModIdentity(nil), members...)
		modCount += len(members)
	}
	entries[types.PlatformMinecraftID] = []types.ModIdentity{platformIdentity(types.PlatformMinecraftID, "Minecraft", platform.Minecraft)}
	entries[types.PlatformNeoForgeID] = []types.ModIdentity{platformIdentity(types.PlatformNeoForgeID, "NeoForge", platform.NeoForge)}

	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return CompareModIDs(ids[i], ids[j]) < 0
	})

	ns := &Namespace{
		entries:  entries,
		ids:      ids,
		platform: platform,
		modCount: modCount,
	}
	ns.duplicates = findDuplicates(ctx, ns)
	return ns
}

func platformIdentity(id string, name string, raw string) types.ModIdentity {
	return types.ModIdentity{
		ID:          id,
		DisplayName: name,
		Version:     version.Parse(raw),
		Kind:        types.ModKindMod,
	}
}

func isPlatformID(id string) bool {
	return id == types.PlatformMinecraftID || id == types.PlatformNeoForgeID
}

// findDuplicates reports ids with more than one member. Groups made up only
// of embedded archives are dropped; nested copies are deduplicated by the
// loader at runtime.
func findDuplicates(ctx context.Context, ns *Namespace) []types.DuplicateGroup {
	var groups []types.DuplicateGroup
	for _, id := range ns.ids {
		members := ns.entries[id]
		if isPlatformID(id) || len(members) < 2 {
			continue
		}
		allEmbedded := true
		for i, member := range members {
			if i > 0 {
				log.Ctx(ctx).Warn().
					Str("mod", id).
					Str("archive", member.FileName).
					Str("previous", members[0].FileName).
					Msg("found duplicated mod")
			}
			if !member.Embedded {
				allEmbedded = false
			}
		}
		if allEmbedded {
			continue
		}
		groups = append(groups, types.DuplicateGroup{
			ID:      id,
			Members: append([]types.ModIdentity(nil), members...),
		})
	}
	return groups
}

// Namespace is the frozen id to identities multi-map. Only
// GraphBuilder.Freeze produces one.
type Namespace struct {
	entries    map[string][]types.ModIdentity
	ids        []string
	duplicates []types.DuplicateGroup
	platform   types.PlatformVersions
	modCount   int
}

// IDs returns every id in display order.
func (n *Namespace) IDs() []string {
	return append([]string(nil), n.ids...)
}

// Lookup returns the identities registered under id, in insertion order.
func (n *Namespace) Lookup(id string) []types.ModIdentity {
	return append([]types.ModIdentity(nil), n.entries[id]...)
}

func (n *Namespace) Duplicates() []types.DuplicateGroup {
	return append([]types.DuplicateGroup(nil), n.duplicates...)
}

func (n *Namespace) Platform() types.PlatformVersions {
	return n.platform
}

// ModCount excludes the platform identities.
func (n *Namespace) ModCount() int {
	return n.modCount
}

// CompareModIDs orders minecraft first, then neoforge, then the rest
// lexicographically.
func CompareModIDs(a string, b string) int {
	if a == b {
		return 0
	}
	for _, first := range []string{types.PlatformMinecraftID, types.PlatformNeoForgeID} {
		if a == first {
			return -1
		}
		if b == first {
			return 1
		}
	}
	if a < b {
		return -1
	}
	return 1
}
