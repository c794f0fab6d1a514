package app

import (
	"go.uber.org/zap"

	"bslpack/internal/assemble"
	"bslpack/internal/export"
	"bslpack/internal/ident"
	"bslpack/internal/render"
	"bslpack/internal/xmltext"
)

// Build runs the export pipeline: read the three sources, assemble the
// module text, escape it, render the document and write it out.
func (a *App) Build() (export.Summary, error) {
	module := a.Sources.Read(a.Config.ModulePath)
	exports := a.Sources.Read(a.Config.ExportsPath)
	extensions := a.Sources.Read(a.Config.ExtensionsPath)

	moduleText := assemble.Module(module, exports, extensions)
	id := ident.New()
	a.Log.Debug("module assembled",
		zap.String("uuid", id),
		zap.Int("chars", export.ModuleSize(moduleText)))

	doc, err := render.Document(id, xmltext.Escape(moduleText))
	if err != nil {
		return export.Summary{}, err
	}
	if err := a.Writer.Write(a.Config.OutputPath, doc); err != nil {
		return export.Summary{}, err
	}

	return export.Summary{
		Path:       a.Config.OutputPath,
		UUID:       id,
		ModuleSize: export.ModuleSize(moduleText),
	}, nil
}
