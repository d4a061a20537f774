package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"depextract/internal/policies"
	"depextract/internal/ports"
	"depextract/internal/shared"
	"depextract/internal/types"
	"depextract/internal/version"
)

const (
	attrAutomaticModuleName   = "Automatic-Module-Name"
	attrImplementationTitle   = "Implementation-Title"
	attrImplementationVersion = "Implementation-Version"
	attrModType               = "FMLModType"

	jarVersionPlaceholder = "${file.jarVersion}"
	languageLoaderService = "META-INF/services/net.neoforged.neoforgespi.language.IModLanguageLoader"
	providerNameMethod    = "name"
	providerNameDesc      = "()Ljava/lang/String;"

	defaultProviderVersion = "0.0"
	noVersionLabel         = "NONE"
)

type resolveInput struct {
	archive    ports.ArchiveHandle
	manifest   *types.Manifest
	nested     bool
	embedding  *types.EmbeddingMetadata
	sourcePath string
}

// resolveTier returns the identities found in an archive and whether it
// claimed the archive. Later tiers are not consulted once one claims it.
type resolveTier func(ctx context.Context, in resolveInput) ([]types.ModIdentity, bool)

type IdentityResolver struct {
	Descriptor ports.DescriptorPort
	Manifest   ports.ManifestPort
	ClassFile  ports.ClassFilePort
}

func NewIdentityResolver(descriptor ports.DescriptorPort, manifest ports.ManifestPort, classFile ports.ClassFilePort) IdentityResolver {
	return IdentityResolver{
		Descriptor: descriptor,
		Manifest:   manifest,
		ClassFile:  classFile,
	}
}

// Resolve derives the identities contained in one archive. The second
// result reports whether any tier recognised the archive.
func (r IdentityResolver) Resolve(ctx context.Context, archive ports.ArchiveHandle, nested bool, embedding *types.EmbeddingMetadata, sourcePath string) ([]types.ModIdentity, bool) {
	logger := log.Ctx(ctx).With().Str("archive", archive.Name()).Logger()
	ctx = logger.WithContext(ctx)

	in := resolveInput{
		archive:    archive,
		manifest:   r.readManifest(ctx, archive),
		nested:     nested,
		embedding:  embedding,
		sourcePath: sourcePath,
	}
	for _, tier := range []resolveTier{r.descriptorTier, r.languageProviderTier, r.libraryTier} {
		if identities, handled := tier(ctx, in); handled {
			return identities, true
		}
	}
	logger.Warn().Msg("mod definition not found, skipping")
	return nil, false
}

func (r IdentityResolver) readManifest(ctx context.Context, archive ports.ArchiveHandle) *types.Manifest {
	if !archive.Exists(types.ManifestPath) {
		return nil
	}
	data, err := archive.ReadFile(types.ManifestPath)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to read manifest")
		return nil
	}
	manifest, err := r.Manifest.ParseManifest(data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to parse manifest")
		return nil
	}
	return &manifest
}

func (r IdentityResolver) descriptorTier(ctx context.Context, in resolveInput) ([]types.ModIdentity, bool) {
	path := ""
	for _, candidate := range []string{types.DescriptorPath, types.LegacyDescriptorPath} {
		if in.archive.Exists(candidate) {
			path = candidate
			break
		}
	}
	if path == "" {
		return nil, false
	}
	logger := log.Ctx(ctx)

	data, err := in.archive.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read mod descriptor")
		return nil, true
	}
	descriptor, err := r.Descriptor.ParseDescriptor(data)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse mod definition")
		return nil, true
	}
	if descriptor.DependenciesKind != "" {
		logger.Warn().
			Str("kind", descriptor.DependenciesKind).
			Msg("descriptor declares dependencies as something other than a table, ignoring them")
	}

	var identities []types.ModIdentity
	for _, mod := range descriptor.Mods {
		if strings.TrimSpace(mod.ModID) == "" {
			logger.Error().Msg("mod entry without modId, skipping")
			continue
		}
		identities = append(identities, types.ModIdentity{
			FileName:     in.archive.Name(),
			ID:           mod.ModID,
			DisplayName:  mod.DisplayName,
			Version:      descriptorVersion(mod, in.manifest),
			Dependencies: buildDependencies(logger, mod.ModID, descriptor.Dependencies[mod.ModID]),
			Kind:         types.ModKindMod,
			Embedded:     in.nested,
			SourcePath:   in.sourcePath,
		})
	}
	if len(identities) == 0 {
		logger.Error().Msg("failed to parse mod definition")
		return nil, true
	}
	logger.Debug().Int("mods", len(identities)).Msg("found mods in archive")
	return identities, true
}

func descriptorVersion(mod types.DescriptorMod, manifest *types.Manifest) version.Version {
	if !mod.HasVersion {
		return version.Invalid()
	}
	raw := mod.Version
	if raw == jarVersionPlaceholder {
		value, ok := manifest.Get(attrImplementationVersion)
		if !ok || strings.TrimSpace(value) == "" {
			return version.Invalid()
		}
		raw = value
	}
	return version.Parse(raw)
}

func buildDependencies(logger *zerolog.Logger, modID string, entries []types.DescriptorDependency) []types.Dependency {
	deps := make([]types.Dependency, 0, len(entries))
	for _, entry := range entries {
		rng, err := version.ParseRange(entry.VersionRange)
		if err != nil {
			logger.Error().
				Err(err).
				Str("dependency", entry.ModID).
				Str("range", entry.VersionRange).
				Str("mod", modID).
				Msg("dependency has an invalid version range")
			rng = nil
		}

		severity := types.SeverityRequired
		switch {
		case entry.HasType:
			parsed, err := policies.ParseSeverity(entry.Type)
			if err != nil {
				logger.Error().
					Err(err).
					Str("dependency", entry.ModID).
					Str("mod", modID).
					Msg("dependency has an invalid type, skipping")
				continue
			}
			severity = parsed
		case entry.Mandatory != nil:
			severity = policies.SeverityFromMandatory(*entry.Mandatory)
		}

		deps = append(deps, types.Dependency{
			TargetID:  entry.ModID,
			RangeSpec: entry.VersionRange,
			Range:     rng,
			Severity:  severity,
			Ordering:  entry.Ordering,
			Side:      entry.Side,
		})
	}
	return deps
}

func (r IdentityResolver) languageProviderTier(ctx context.Context, in resolveInput) ([]types.ModIdentity, bool) {
	if !in.manifest.Is(attrModType, string(types.ModKindLanguageProvider)) {
		return nil, false
	}
	logger := log.Ctx(ctx)

	displayName := nonBlank(in.manifest, attrImplementationTitle)
	if displayName == "" {
		displayName = nonBlank(in.manifest, attrAutomaticModuleName)
	}
	if displayName == "" {
		logger.Warn().Msg("cannot determine name of language provider, skipping")
		return nil, true
	}

	id, ok := r.providerNameFromBytecode(ctx, in.archive)
	if !ok {
		if auto := nonBlank(in.manifest, attrAutomaticModuleName); auto != "" {
			id = auto
		} else {
			id = strings.ToLower(displayName)
		}
	}

	raw, ok := in.manifest.Get(attrImplementationVersion)
	if !ok {
		raw = defaultProviderVersion
	}
	return []types.ModIdentity{{
		FileName:    in.archive.Name(),
		ID:          id,
		DisplayName: displayName,
		Version:     version.Parse(raw),
		Kind:        types.ModKindLanguageProvider,
		Embedded:    in.nested,
		SourcePath:  in.sourcePath,
	}}, true
}

func (r IdentityResolver) providerNameFromBytecode(ctx context.Context, archive ports.ArchiveHandle) (string, bool) {
	logger := log.Ctx(ctx)
	if !archive.Exists(languageLoaderService) {
		logger.Error().Msg("language provider has no language loader service file")
		return "", false
	}
	service, err := archive.ReadFile(languageLoaderService)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read language loader service file")
		return "", false
	}
	classEntry, ok := shared.ServiceClassEntry(service)
	if !ok {
		logger.Error().Msg("language loader service file names no class")
		return "", false
	}
	if !archive.Exists(classEntry) {
		logger.Error().Str("class", classEntry).Msg("language loader class is missing")
		return "", false
	}
	code, err := archive.ReadFile(classEntry)
	if err != nil {
		logger.Error().Err(err).Str("class", classEntry).Msg("failed to read language loader class")
		return "", false
	}
	name, err := r.ClassFile.ReturnedStringConstant(code, providerNameMethod, providerNameDesc)
	if err != nil {
		logger.Error().Err(err).Str("class", classEntry).Msg("failed to locate language provider name")
		return "", false
	}
	if strings.TrimSpace(name) == "" {
		logger.Error().Str("class", classEntry).Msg("language provider name is blank")
		return "", false
	}
	return name, true
}

func (r IdentityResolver) libraryTier(ctx context.Context, in resolveInput) ([]types.ModIdentity, bool) {
	if !in.nested && !in.manifest.Is(attrModType, string(types.ModKindGameLibrary), string(types.ModKindLibrary)) {
		return nil, false
	}

	name := nonBlank(in.manifest, attrAutomaticModuleName)
	if name == "" {
		name = nonBlank(in.manifest, attrImplementationTitle)
	}
	if name == "" {
		name = in.archive.Name()
	}

	ver := version.Unknown(noVersionLabel)
	if value, ok := in.manifest.Get(attrImplementationVersion); ok {
		ver = version.Parse(value)
	} else if in.embedding != nil && strings.TrimSpace(in.embedding.Version) != "" {
		ver = version.Parse(in.embedding.Version)
	}

	kind := types.ModKindGameLibrary
	if value, ok := in.manifest.Get(attrModType); ok && value != "" {
		kind = types.ModKind(value)
	}

	log.Ctx(ctx).Debug().Str("library", name).Msg("archive treated as library")
	return []types.ModIdentity{{
		FileName:    in.archive.Name(),
		ID:          shared.LibraryID(name),
		DisplayName: name,
		Version:     ver,
		Kind:        kind,
		Embedded:    in.nested,
		SourcePath:  in.sourcePath,
	}}, true
}

func nonBlank(manifest *types.Manifest, name string) string {
	value, _ := manifest.Get(name)
	return strings.TrimSpace(value)
}
