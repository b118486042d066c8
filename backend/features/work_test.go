package features

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"

	"github.com/felipesanches/fontc/backend/orchestration"
	"github.com/felipesanches/fontc/core/coords"
	"github.com/felipesanches/fontc/ir"
)

// --- Test Suite Preparation ------------------------------------------------

type fakeCompiler struct {
	req    *CompileRequest
	result *Compilation
	err    error
}

func (c *fakeCompiler) Compile(req *CompileRequest) (*Compilation, error) {
	c.req = req
	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

type FeatureWorkEnviron struct {
	suite.Suite
	meta *ir.StaticMetadata
}

// listen for 'go test' command --> run test methods
func TestFeatureWork(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	suite.Run(t, new(FeatureWorkEnviron))
}

// run once, before test suite methods
func (env *FeatureWorkEnviron) SetupSuite() {
	env.meta = weightVariableMetadata(env.T(), 300, 400, 700)
}

// newContext seeds build state the way the frontend would have left it.
func (env *FeatureWorkEnviron) newContext(flags orchestration.Flags, kerning *ir.Kerning,
	feats ir.Features) *orchestration.Context {
	//
	ctx := orchestration.NewContext(env.T().TempDir(), flags)
	ctx.StaticMetadata.Set(env.meta)
	ctx.GlyphOrder.Set(ir.NewGlyphOrder().Add(".notdef", "A", "Aacute", "V", "W"))
	ctx.Kerning.Set(kerning)
	ctx.Features.Set(feats)
	return ctx
}

// --- Tests -----------------------------------------------------------------

func (env *FeatureWorkEnviron) TestDeclaredContract() {
	work := NewFeatureWork(&fakeCompiler{})
	env.Equal(orchestration.WorkFeatureCompile, work.Id())
	acc := work.ReadAccess()
	for _, id := range []orchestration.WorkId{
		orchestration.WorkStaticMetadata, orchestration.WorkGlyphOrder,
		orchestration.WorkKerning, orchestration.WorkFeatures,
	} {
		env.True(acc.Contains(id), "expected read access to %s", id)
	}
	env.Equal([]orchestration.WorkId{
		orchestration.WorkGpos, orchestration.WorkGsub, orchestration.WorkGdef,
	}, work.AlsoCompletes())
}

func (env *FeatureWorkEnviron) TestEmptyFeaturesDullCompile() {
	compiler := &fakeCompiler{}
	ctx := env.newContext(orchestration.Flags{}, ir.NewKerning(), ir.EmptyFeatures())
	env.NoError(NewFeatureWork(compiler).Exec(ctx))
	env.Nil(compiler.req, "expected the compiler not to run without feature source")
	env.False(ctx.Gpos.IsSet())
	env.False(ctx.Gsub.IsSet())
	env.False(ctx.Gdef.IsSet())
}

func (env *FeatureWorkEnviron) TestKerningAloneTriggersCompile() {
	compiler := &fakeCompiler{result: &Compilation{Gpos: []byte{0xca, 0xfe}}}
	kerning := ir.NewKerning().AddKern(ir.Glyph("A"), ir.Glyph("V"),
		coords.NewLocationValues().Set(wght(0), -100))
	ctx := env.newContext(orchestration.Flags{}, kerning, ir.EmptyFeatures())
	env.NoError(NewFeatureWork(compiler).Exec(ctx))
	//
	env.Require().NotNil(compiler.req)
	env.Equal("", compiler.req.Root, "expected the in-memory sentinel root")
	resolver, ok := compiler.req.Resolver.(*InMemoryResolver)
	env.Require().True(ok, "expected an in-memory overlay")
	env.Contains(resolver.Content, "# fontc generated kerning")
	env.Contains(resolver.Content, "feature kern {")
	env.NotNil(compiler.req.VarInfo)
	env.Len(compiler.req.Glyphs, 5)
	//
	gpos, set := ctx.Gpos.Get()
	env.True(set, "expected the gpos fragment to be committed")
	env.Equal([]byte{0xca, 0xfe}, gpos)
	env.False(ctx.Gsub.IsSet(), "expected absent fragments to stay unwritten")
	env.False(ctx.Gdef.IsSet())
}

func (env *FeatureWorkEnviron) TestAuthoredFileMergesWithKerning() {
	dir := env.T().TempDir()
	feaFile := filepath.Join(dir, "features.fea")
	env.Require().NoError(os.WriteFile(feaFile, []byte("# authored\n"), 0644))
	//
	compiler := &fakeCompiler{result: &Compilation{}}
	kerning := ir.NewKerning().AddKern(ir.Glyph("A"), ir.Glyph("V"),
		coords.NewLocationValues().Set(wght(0), -100))
	ctx := env.newContext(orchestration.Flags{}, kerning, ir.FileFeatures(feaFile, dir))
	env.NoError(NewFeatureWork(compiler).Exec(ctx))
	//
	env.Require().NotNil(compiler.req)
	resolver, ok := compiler.req.Resolver.(*InMemoryResolver)
	env.Require().True(ok, "expected file features plus kerning to become memory features")
	env.True(strings.HasPrefix(resolver.Content, "# authored\n"))
	env.Contains(resolver.Content, "# fontc generated kerning")
	env.Equal(dir, resolver.IncludeDir)
	env.Equal(dir, compiler.req.ProjectRoot)
}

func (env *FeatureWorkEnviron) TestFileFeaturesPassThrough() {
	dir := env.T().TempDir()
	feaFile := filepath.Join(dir, "features.fea")
	env.Require().NoError(os.WriteFile(feaFile, []byte("# authored\n"), 0644))
	//
	compiler := &fakeCompiler{result: &Compilation{Gsub: []byte{1}}}
	ctx := env.newContext(orchestration.Flags{}, ir.NewKerning(), ir.FileFeatures(feaFile, dir))
	env.NoError(NewFeatureWork(compiler).Exec(ctx))
	//
	env.Require().NotNil(compiler.req)
	env.Equal(feaFile, compiler.req.Root, "expected disk-based sources to keep their path")
	env.Nil(compiler.req.Resolver)
	env.True(ctx.Gsub.IsSet())
}

func (env *FeatureWorkEnviron) TestCompileFailureDumpsDebugFea() {
	compiler := &fakeCompiler{err: errors.New("parse error at 3:14")}
	kerning := ir.NewKerning().AddKern(ir.Glyph("A"), ir.Glyph("V"),
		coords.NewLocationValues().Set(wght(0), -100))
	ctx := env.newContext(orchestration.Flags{EmitDebug: true}, kerning, ir.EmptyFeatures())
	err := NewFeatureWork(compiler).Exec(ctx)
	env.Require().Error(err)
	env.Contains(err.Error(), "parse error")
	//
	dumped, rerr := os.ReadFile(ctx.DebugFeatureFile())
	env.Require().NoError(rerr, "expected the merged source to be dumped for postmortem")
	env.Contains(string(dumped), "feature kern {")
	env.False(ctx.Gpos.IsSet())
}

func (env *FeatureWorkEnviron) TestEmitDebugOnSuccess() {
	compiler := &fakeCompiler{result: &Compilation{}}
	kerning := ir.NewKerning().AddKern(ir.Glyph("A"), ir.Glyph("V"),
		coords.NewLocationValues().Set(wght(0), -100))
	ctx := env.newContext(orchestration.Flags{EmitDebug: true}, kerning, ir.EmptyFeatures())
	env.NoError(NewFeatureWork(compiler).Exec(ctx))
	_, err := os.Stat(ctx.DebugFeatureFile())
	env.NoError(err, "expected a debug dump even on success when emit-debug is on")
}

func (env *FeatureWorkEnviron) TestCompletionMarker() {
	compiler := &fakeCompiler{}
	ctx := env.newContext(orchestration.Flags{EmitIR: true}, ir.NewKerning(), ir.EmptyFeatures())
	work := NewFeatureWork(compiler)
	env.NoError(work.Exec(ctx))
	content, err := os.ReadFile(ctx.MarkerFile(work.Id()))
	env.Require().NoError(err, "expected a completion marker even for a dull compile")
	env.Equal("1", string(content))
}
