package adapters

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depextract/internal/ports"
	"depextract/internal/types"
)

const (
	// SBOMFileName is the SPDX document written next to the dependency report.
	SBOMFileName         = "mods.spdx.json"
	DefaultSBOMNamespace = "https://depextract.dev/spdx/modpacks"
)

// SBOMWriterAdapter writes the reported mods as an SPDX 2.3 document. Each
// reported identity becomes a package; installed dependencies become
// DEPENDS_ON relationships and embedded mods are CONTAINED_BY the archive
// that carries them.
type SBOMWriterAdapter struct {
	Dir           string
	NamespaceBase string
}

func NewSBOMWriterAdapter(dir string) SBOMWriterAdapter {
	return SBOMWriterAdapter{Dir: dir, NamespaceBase: DefaultSBOMNamespace}
}

type spdxCreationInfo struct {
	Created  string   `json:"created"`
	Creators []string `json:"creators"`
}

type spdxPackage struct {
	SPDXID           string `json:"SPDXID"`
	Name             string `json:"name"`
	VersionInfo      string `json:"versionInfo"`
	PackageFileName  string `json:"packageFileName,omitempty"`
	DownloadLocation string `json:"downloadLocation"`
	LicenseConcluded string `json:"licenseConcluded"`
	LicenseDeclared  string `json:"licenseDeclared"`
	Supplier         string `json:"supplier"`
	Comment          string `json:"comment,omitempty"`
}

type spdxRelationship struct {
	SpdxElementID      string `json:"spdxElementId"`
	RelationshipType   string `json:"relationshipType"`
	RelatedSpdxElement string `json:"relatedSpdxElement"`
}

type spdxDocument struct {
	SPDXVersion       string             `json:"spdxVersion"`
	DataLicense       string             `json:"dataLicense"`
	SPDXID            string             `json:"SPDXID"`
	Name              string             `json:"name"`
	DocumentNamespace string             `json:"documentNamespace"`
	CreationInfo      spdxCreationInfo   `json:"creationInfo"`
	Packages          []spdxPackage      `json:"packages"`
	Relationships     []spdxRelationship `json:"relationships"`
	DocumentDescribes []string           `json:"documentDescribes"`
}

func (a SBOMWriterAdapter) WriteSBOM(report types.DependencyReport, createdAt string) error {
	if strings.TrimSpace(a.Dir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	created, err := parseSBOMCreated(createdAt)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}

	if created.IsZero() {
		created = time.Now().UTC()
	}
	packName := fmt.Sprintf("minecraft-%s-neoforge-%s", report.Platform.Minecraft, report.Platform.NeoForge)
	doc := spdxDocument{
		SPDXVersion:       "SPDX-2.3",
		DataLicense:       "CC0-1.0",
		SPDXID:            "SPDXRef-DOCUMENT",
		Name:              "depextract modpack " + packName,
		DocumentNamespace: fmt.Sprintf("%s/%s-%d", a.namespaceBase(), packName, created.Unix()),
		CreationInfo: spdxCreationInfo{
			Created:  created.Format(time.RFC3339),
			Creators: []string{"Tool: depextract"},
		},
		Packages:          []spdxPackage{},
		Relationships:     []spdxRelationship{},
		DocumentDescribes: []string{},
	}

	// First package per id is the dependency target, matching the validator.
	byID := map[string]string{}
	topLevel := map[string]string{}
	seen := map[string]struct{}{}
	for _, mod := range report.Mods {
		spdxID := spdxPackageID(mod.ID, mod.Version, mod.Source, mod.Embedded)
		if _, dup := seen[spdxID]; dup {
			continue
		}
		seen[spdxID] = struct{}{}
		if _, ok := byID[mod.ID]; !ok {
			byID[mod.ID] = spdxID
		}
		if !mod.Embedded {
			if _, ok := topLevel[mod.Source]; !ok {
				topLevel[mod.Source] = spdxID
			}
		}
		doc.Packages = append(doc.Packages, spdxPackage{
			SPDXID:           spdxID,
			Name:             mod.ID,
			VersionInfo:      mod.Version,
			PackageFileName:  filepath.Base(mod.Source),
			DownloadLocation: "NOASSERTION",
			LicenseConcluded: "NOASSERTION",
			LicenseDeclared:  "NOASSERTION",
			Supplier:         "NOASSERTION",
			Comment:          string(mod.Kind),
		})
		doc.DocumentDescribes = append(doc.DocumentDescribes, spdxID)
		doc.Relationships = append(doc.Relationships, spdxRelationship{
			SpdxElementID:      "SPDXRef-DOCUMENT",
			RelationshipType:   "DESCRIBES",
			RelatedSpdxElement: spdxID,
		})
	}

	for _, mod := range report.Mods {
		spdxID := spdxPackageID(mod.ID, mod.Version, mod.Source, mod.Embedded)
		if mod.Embedded {
			if parent, ok := topLevel[mod.Source]; ok {
				doc.Relationships = append(doc.Relationships, spdxRelationship{
					SpdxElementID:      spdxID,
					RelationshipType:   "CONTAINED_BY",
					RelatedSpdxElement: parent,
				})
			}
		}
		for _, dep := range mod.Dependencies {
			target, ok := byID[dep.ID]
			if !ok || !dep.Installed || dep.Type == types.SeverityIncompatible {
				continue
			}
			rel := spdxRelationship{
				SpdxElementID:      spdxID,
				RelationshipType:   "DEPENDS_ON",
				RelatedSpdxElement: target,
			}
			if dep.Type == types.SeverityOptional {
				rel = spdxRelationship{
					SpdxElementID:      target,
					RelationshipType:   "OPTIONAL_DEPENDENCY_OF",
					RelatedSpdxElement: spdxID,
				}
			}
			doc.Relationships = append(doc.Relationships, rel)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal sbom payload").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path(), data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write sbom file").
			WithCause(err)
	}
	return nil
}

func (a SBOMWriterAdapter) Path() string {
	return filepath.Join(a.Dir, SBOMFileName)
}

func (a SBOMWriterAdapter) namespaceBase() string {
	base := strings.TrimRight(strings.TrimSpace(a.NamespaceBase), "/")
	if base == "" {
		return DefaultSBOMNamespace
	}
	return base
}

func spdxPackageID(id string, version string, source string, embedded bool) string {
	seed := fmt.Sprintf("%s@%s:%s:%t", id, version, source, embedded)
	hash := sha256.Sum256([]byte(seed))
	return "SPDXRef-Package-" + hex.EncodeToString(hash[:8])
}

var _ ports.SBOMPort = SBOMWriterAdapter{}
