package features

import (
	"os"

	"github.com/felipesanches/fontc/backend/orchestration"
	"github.com/felipesanches/fontc/core"
	"github.com/felipesanches/fontc/ir"
)

// FeatureWork is the feature-compilation work unit. It reads the frontend IR,
// injects synthesized kerning into the authored features, runs the external
// compiler and commits the resulting table fragments to build state.
type FeatureWork struct {
	compiler Compiler
}

var _ orchestration.Work = (*FeatureWork)(nil)

// NewFeatureWork creates the work unit around an external feature compiler.
func NewFeatureWork(compiler Compiler) *FeatureWork {
	return &FeatureWork{compiler: compiler}
}

// Id identifies this unit within a build generation.
func (w *FeatureWork) Id() orchestration.WorkId {
	return orchestration.WorkFeatureCompile
}

// ReadAccess declares the build-state entries Exec reads.
func (w *FeatureWork) ReadAccess() orchestration.Access {
	return orchestration.AccessSet(
		orchestration.WorkStaticMetadata,
		orchestration.WorkGlyphOrder,
		orchestration.WorkKerning,
		orchestration.WorkFeatures,
	)
}

// AlsoCompletes declares the output group produced together with this unit.
// The scheduler treats all three as completed atomically when Exec returns.
func (w *FeatureWork) AlsoCompletes() []orchestration.WorkId {
	return []orchestration.WorkId{
		orchestration.WorkGpos,
		orchestration.WorkGsub,
		orchestration.WorkGdef,
	}
}

// compile hands the effective features to the external compiler.
// Must not be called for the Empty variant.
func (w *FeatureWork) compile(meta *ir.StaticMetadata, feats ir.Features, glyphs GlyphMap) (*Compilation, error) {
	varInfo := NewFeaVariationInfo(meta)
	req := &CompileRequest{
		Glyphs:  glyphs,
		VarInfo: varInfo,
	}
	switch feats.Kind() {
	case ir.FeaturesFile:
		req.Root = feats.Path()
		req.ProjectRoot = feats.IncludeDir()
	case ir.FeaturesMemory:
		// root "" is the in-memory sentinel; includes fall through to disk
		req.Root = ""
		req.Resolver = &InMemoryResolver{
			ContentPath: "",
			Content:     feats.Content(),
			IncludeDir:  feats.IncludeDir(),
		}
		req.ProjectRoot = feats.IncludeDir()
	default:
		panic("compile must not be called for empty features")
	}
	return w.compiler.Compile(req)
}

// writeDebugFea dumps merged feature source for postmortem inspection.
// Best-effort: write failures are logged, never propagated.
func writeDebugFea(ctx *orchestration.Context, isError bool, why string, feaContent string) {
	if !ctx.Flags.EmitDebug {
		if isError {
			tracer().Infof("debug fea not written for %q because emit-debug is off", why)
		}
		return
	}
	debugFile := ctx.DebugFeatureFile()
	err := os.MkdirAll(ctx.DebugDir(), 0755)
	if err == nil {
		err = os.WriteFile(debugFile, []byte(feaContent), 0644)
	}
	switch {
	case err != nil:
		tracer().Errorf("%s; failed to write fea to %q: %v", why, debugFile, err)
	case isError:
		tracer().Infof("%s; fea written to %q", why, debugFile)
	default:
		tracer().Debugf("fea written to %q", debugFile)
	}
}

// Exec runs feature compilation to completion, synchronously. No retries:
// all failures here are structural, not transient.
func (w *FeatureWork) Exec(ctx *orchestration.Context) error {
	meta := ctx.StaticMetadata.MustGet()
	glyphOrder := ctx.GlyphOrder.MustGet()
	kerning := ctx.Kerning.MustGet()

	feats := ctx.Features.MustGet()
	if !kerning.IsEmpty() {
		kernFea, err := CreateKerningFea(kerning)
		if err != nil {
			return err
		}
		feats, err = ir.MergeKerning(feats, kernFea)
		if err != nil {
			return err
		}
	}

	if !feats.IsEmpty() {
		glyphs := NewGlyphMap(glyphOrder)
		result, err := w.compile(meta, feats, glyphs)
		if err != nil || ctx.Flags.EmitDebug {
			if feats.Kind() == ir.FeaturesMemory {
				why := "emit-debug"
				if err != nil {
					why = "compile failed"
				}
				writeDebugFea(ctx, err != nil, why, feats.Content())
			}
		}
		if err != nil {
			return err
		}

		tracer().Debugf("built features, gpos? %v gsub? %v gdef? %v",
			result.Gpos != nil, result.Gsub != nil, result.Gdef != nil)
		if result.Gpos != nil {
			ctx.Gpos.Set(result.Gpos)
		}
		if result.Gsub != nil {
			ctx.Gsub.Set(result.Gsub)
		}
		if result.Gdef != nil {
			ctx.Gdef.Set(result.Gdef)
		}
	} else {
		tracer().Debugf("no fea source, dull compile")
	}

	// Enables the assumption that if the marker exists, features were compiled
	if ctx.Flags.EmitIR {
		marker := ctx.MarkerFile(w.Id())
		if err := os.WriteFile(marker, []byte("1"), 0644); err != nil {
			return core.WrapError(err, core.EIO, "cannot write completion marker %s", marker)
		}
	}
	return nil
}
