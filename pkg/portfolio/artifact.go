package portfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jain881/AIFolio/pkg/cv"
)

// dataMarker is where the CV blob lands inside the template's entry page.
// When the marker is absent the blob is injected before </head> instead.
const dataMarker = "<!-- portfolio:data -->"

// Artifacts materializes portfolio directories from a base template site and
// answers existence/path questions about them.
type Artifacts struct {
	templateDir string
	rootDir     string
}

func NewArtifacts(templateDir, rootDir string) *Artifacts {
	return &Artifacts{templateDir: templateDir, rootDir: rootDir}
}

// Dir returns the on-disk directory for an artifact id.
func (a *Artifacts) Dir(id string) string {
	return filepath.Join(a.rootDir, id)
}

// Exists reports whether the artifact directory is still on disk. Artifacts
// can be deleted out-of-band; the publisher self-heals stale mappings
// through this check.
func (a *Artifacts) Exists(id string) bool {
	if id == "" {
		return false
	}
	info, err := os.Stat(a.Dir(id))
	return err == nil && info.IsDir()
}

// Create copies the template site into a fresh directory for id and injects
// the CV record plus theme selector as initialization data into the entry
// page, reachable by the served page as window.__PORTFOLIO_DATA__.
func (a *Artifacts) Create(id string, rec cv.Record, theme string) error {
	dst := a.Dir(id)
	if err := copyDir(a.templateDir, dst); err != nil {
		a.Remove(id)
		return fmt.Errorf("materialize artifact: %w", err)
	}
	if err := a.injectData(dst, rec, theme); err != nil {
		a.Remove(id)
		return err
	}
	return nil
}

// Remove deletes the artifact directory. Best effort.
func (a *Artifacts) Remove(id string) {
	if id == "" {
		return
	}
	_ = os.RemoveAll(a.Dir(id))
}

func (a *Artifacts) injectData(dir string, rec cv.Record, theme string) error {
	entry := filepath.Join(dir, "index.html")
	page, err := os.ReadFile(entry)
	if err != nil {
		return fmt.Errorf("read entry page: %w", err)
	}

	payload, err := json.Marshal(map[string]any{
		"cv":    rec,
		"theme": theme,
	})
	if err != nil {
		return fmt.Errorf("marshal portfolio data: %w", err)
	}
	blob := "<script>window.__PORTFOLIO_DATA__ = " + string(payload) + ";</script>"

	html := string(page)
	switch {
	case strings.Contains(html, dataMarker):
		html = strings.Replace(html, dataMarker, blob, 1)
	case strings.Contains(html, "</head>"):
		html = strings.Replace(html, "</head>", blob+"</head>", 1)
	default:
		html += blob
	}
	if err := os.WriteFile(entry, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write entry page: %w", err)
	}
	return nil
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
