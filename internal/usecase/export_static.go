package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"

	"github.com/3-lines-studio/flashlearn/internal/assets"
	"github.com/3-lines-studio/flashlearn/internal/core"
)

var ErrExport = errors.New("export failed")

const (
	NotFoundFile = "404.html"
	ManifestFile = "manifest.json"
)

type ExportInput struct {
	OutDir string
}

type ExportOutput struct {
	Manifest *core.Manifest
	Files    []string
	// Changed lists route paths whose output differs from the previous
	// export in the same directory.
	Changed []string
	Error   error
}

type ExportService struct {
	site   Site
	fs     FileSystem
	output CLIOutput
}

func NewExportService(site Site, fs FileSystem, output CLIOutput) *ExportService {
	return &ExportService{
		site:   site,
		fs:     fs,
		output: output,
	}
}

// ExportStatic writes every route, the not-found page, the assets and a
// manifest into input.OutDir.
func (s *ExportService) ExportStatic(ctx context.Context, input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: fmt.Errorf("%w: output directory is required", ErrExport)}
	}

	previous := s.previousManifest(input.OutDir)
	manifest := core.NewManifest()
	var files []string

	s.output.PrintStep("Rendering pages")
	for _, route := range s.site.Routes() {
		if err := ctx.Err(); err != nil {
			return ExportOutput{Error: err}
		}

		body, status, err := s.site.Render(route.Path)
		if err != nil {
			return ExportOutput{Error: fmt.Errorf("%w: render %s: %v", ErrExport, route.Path, err)}
		}
		if status != http.StatusOK {
			return ExportOutput{Error: fmt.Errorf("%w: render %s: status %d", ErrExport, route.Path, status)}
		}

		rel := core.ExportFileForPath(route.Path)
		if err := s.write(input.OutDir, rel, body); err != nil {
			return ExportOutput{Error: err}
		}

		manifest.Entries[route.Path] = core.ManifestEntry{
			Name: route.Name,
			HTML: rel,
			Hash: core.HashContent(body),
		}
		files = append(files, rel)
	}

	notFound, err := s.site.RenderNotFound()
	if err != nil {
		return ExportOutput{Error: fmt.Errorf("%w: render not-found page: %v", ErrExport, err)}
	}
	if err := s.write(input.OutDir, NotFoundFile, notFound); err != nil {
		return ExportOutput{Error: err}
	}
	manifest.NotFound = NotFoundFile
	files = append(files, NotFoundFile)

	s.output.PrintStep("Copying assets")
	assetFiles, err := s.copyAssets(input.OutDir, manifest)
	if err != nil {
		return ExportOutput{Error: err}
	}
	files = append(files, assetFiles...)

	data, err := manifest.Encode()
	if err != nil {
		return ExportOutput{Error: fmt.Errorf("%w: encode manifest: %v", ErrExport, err)}
	}
	if err := s.write(input.OutDir, ManifestFile, data); err != nil {
		return ExportOutput{Error: err}
	}
	files = append(files, ManifestFile)

	return ExportOutput{
		Manifest: manifest,
		Files:    files,
		Changed:  manifest.Changed(previous),
	}
}

// previousManifest reads the manifest left by an earlier export, or nil.
func (s *ExportService) previousManifest(outDir string) *core.Manifest {
	path := filepath.Join(outDir, ManifestFile)
	if !s.fs.FileExists(path) {
		return nil
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.output.PrintWarning("Ignoring previous %s: %v", ManifestFile, err)
		return nil
	}
	prev, err := core.ParseManifest(data)
	if err != nil {
		s.output.PrintWarning("Ignoring previous %s: %v", ManifestFile, err)
		return nil
	}
	return prev
}

func (s *ExportService) copyAssets(outDir string, manifest *core.Manifest) ([]string, error) {
	fsys := s.site.Assets()
	if fsys == nil {
		return nil, nil
	}

	names, err := assets.Files(fsys)
	if err != nil {
		return nil, fmt.Errorf("%w: list assets: %v", ErrExport, err)
	}

	var written []string
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: read asset %s: %v", ErrExport, name, err)
		}

		rel := path.Join(path.Base(assets.Prefix), name)
		if err := s.write(outDir, rel, data); err != nil {
			return nil, err
		}
		manifest.Assets[assets.Href(name)] = core.HashContent(data)
		written = append(written, rel)
	}
	return written, nil
}

func (s *ExportService) write(outDir, rel string, data []byte) error {
	dest := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := s.fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("%w: create directory for %s: %v", ErrExport, rel, err)
	}
	if err := s.fs.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrExport, rel, err)
	}
	s.output.PrintFile(rel)
	return nil
}
