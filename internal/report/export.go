package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/pool"

	"github.com/kapu/pachinko-persona-lab/internal/constants"
	"github.com/kapu/pachinko-persona-lab/internal/domain"
	"github.com/kapu/pachinko-persona-lab/internal/util"
)

// Kind selects an export artifact.
type Kind string

const (
	KindSimple   Kind = "simple"
	KindDetailed Kind = "detailed"
	KindSlides   Kind = "slides"
)

// AllKinds lists every artifact in display order.
var AllKinds = []Kind{KindSimple, KindDetailed, KindSlides}

const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// ParseKind accepts the export names used by the CLI and the HTTP API.
func ParseKind(raw string) (Kind, error) {
	switch Kind(util.Normalize(raw)) {
	case KindSimple:
		return KindSimple, nil
	case KindDetailed:
		return KindDetailed, nil
	case KindSlides, "html":
		return KindSlides, nil
	default:
		return "", fmt.Errorf("unknown export kind %q", raw)
	}
}

// FileName derives the download name from the persona name: whitespace
// runs become "_", then the kind suffix is appended.
func FileName(name string, kind Kind) string {
	base := util.JoinWhitespace(name, "_")
	switch kind {
	case KindSimple:
		return base + "_simple_report.txt"
	case KindSlides:
		return base + "_Presentation.html"
	default:
		return base + "_detailed_report.txt"
	}
}

// Artifact is one rendered export held in memory.
type Artifact struct {
	Kind        Kind
	FileName    string
	ContentType string
	Body        []byte
}

// Export renders p as kind.
func Export(p *domain.PersonaRecord, kind Kind) (Artifact, error) {
	artifact := Artifact{Kind: kind, FileName: FileName(p.Name, kind)}
	switch kind {
	case KindSimple:
		artifact.ContentType = ContentTypeText
		artifact.Body = []byte(Summary(p))
	case KindDetailed:
		artifact.ContentType = ContentTypeText
		artifact.Body = []byte(Detailed(p))
	case KindSlides:
		body, err := SlidesHTML(p)
		if err != nil {
			return Artifact{}, fmt.Errorf("render slides: %w", err)
		}
		artifact.ContentType = ContentTypeHTML
		artifact.Body = body
	default:
		return Artifact{}, fmt.Errorf("unknown export kind %q", kind)
	}
	return artifact, nil
}

// WriteAll renders and writes the given kinds into dir concurrently and
// returns the written paths in the order of kinds.
func WriteAll(ctx context.Context, dir string, p *domain.PersonaRecord, kinds ...Kind) ([]string, error) {
	if len(kinds) == 0 {
		kinds = AllKinds
	}
	if err := os.MkdirAll(dir, os.FileMode(constants.ExportConfig.DirMode)); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	paths := make([]string, len(kinds))
	wp := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(constants.ExportConfig.MaxConcurrentWrites)

	for idx, kind := range kinds {
		idx, kind := idx, kind
		wp.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			artifact, err := Export(p, kind)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, artifact.FileName)
			if err := os.WriteFile(path, artifact.Body, os.FileMode(constants.ExportConfig.FileMode)); err != nil {
				return fmt.Errorf("write %s: %w", artifact.FileName, err)
			}
			paths[idx] = path
			return nil
		})
	}

	if err := wp.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
