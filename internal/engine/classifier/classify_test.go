package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rake/internal/core/domain"
	"go.trai.ch/rake/internal/engine/classifier"
)

func TestClassify_Statements(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		verb   domain.Verb
		params string
	}{
		{name: "puts text", line: `    puts "Simple echo task..."`, verb: domain.VerbPrintText, params: "Simple echo task..."},
		{name: "puts with placeholder", line: `  puts "#{greeting} there"`, verb: domain.VerbPrintText, params: "#{greeting} there"},
		{name: "bare puts", line: "    puts", verb: domain.VerbPrintText, params: ""},
		{name: "puts struct json", line: "  puts point.to_h.to_json", verb: domain.VerbPrintText, params: "#{point}"},
		{name: "sleep", line: "  sleep 250", verb: domain.VerbSleepMillis, params: "250"},
		{name: "sleep with parens", line: "  sleep(10)", verb: domain.VerbSleepMillis, params: "10"},
		{name: "pwd", line: "  Dir.pwd", verb: domain.VerbPrintWorkingDir, params: ""},
		{name: "puts pwd", line: "  puts Dir.pwd", verb: domain.VerbPrintWorkingDir, params: ""},
		{name: "chdir literal", line: `  Dir.chdir "src"`, verb: domain.VerbChangeWorkingDir, params: "src"},
		{name: "chdir literal in parens", line: `  Dir.chdir("src")`, verb: domain.VerbChangeWorkingDir, params: "src"},
		{name: "chdir expression", line: "  Dir.chdir(dir)", verb: domain.VerbChangeWorkingDir, params: "#{dir}"},
		{name: "sh", line: `    sh "cargo build --release"`, verb: domain.VerbRunShell, params: "cargo build --release"},
		{name: "ruby", line: `    ruby "script.rb"`, verb: domain.VerbRunShell, params: "ruby script.rb"},
		{name: "delete literal", line: `    File.delete("Cargo.lock")`, verb: domain.VerbDeleteFile, params: "Cargo.lock"},
		{name: "delete expression", line: "        File.delete(target)", verb: domain.VerbDeleteFile, params: "#{target}"},
		{name: "copy variables", line: "  FileUtils.copy(src, dst)", verb: domain.VerbCopyFile, params: "#{src} #{dst}"},
		{name: "cp alias with literals", line: `  FileUtils.cp("a.txt", "b.txt")`, verb: domain.VerbCopyFile, params: "a.txt b.txt"},
		{name: "write is reserved", line: `  File.write("out.txt", "data")`, verb: domain.VerbWriteFile, params: `"out.txt", "data"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := classifier.Classify(tt.line)
			require.Len(t, facts, 1, "facts: %+v", facts)
			assert.Equal(t, classifier.KindStatement, facts[0].Kind)
			assert.Equal(t, tt.verb, facts[0].Verb)
			assert.Equal(t, tt.params, facts[0].Params)
		})
	}
}

func TestClassify_Headers(t *testing.T) {
	t.Run("plain header", func(t *testing.T) {
		facts := classifier.Classify("task :default do")
		require.Len(t, facts, 1)
		assert.Equal(t, classifier.KindTaskHeader, facts[0].Kind)
		assert.Equal(t, "default", facts[0].Name)
	})

	t.Run("dependency header", func(t *testing.T) {
		facts := classifier.Classify("task :upx => [:default] do")
		require.Len(t, facts, 1)
		assert.Equal(t, classifier.KindDepHeader, facts[0].Kind)
		assert.Equal(t, "upx", facts[0].Name)
		assert.Equal(t, "default", facts[0].Value)
	})

	t.Run("dependency header without brackets", func(t *testing.T) {
		facts := classifier.Classify("task :clean => :cleanupx do")
		require.Len(t, facts, 1)
		assert.Equal(t, classifier.KindDepHeader, facts[0].Kind)
		assert.Equal(t, "cleanupx", facts[0].Value)
	})

	t.Run("bare dependency header", func(t *testing.T) {
		facts := classifier.Classify("task :all => [:build]")
		require.Len(t, facts, 1)
		assert.Equal(t, classifier.KindBareDepHeader, facts[0].Kind)
		assert.Equal(t, "all", facts[0].Name)
		assert.Equal(t, "build", facts[0].Value)
	})

	t.Run("ignore marker also matches the header", func(t *testing.T) {
		facts := classifier.Classify("task :wip do #[ignore]")
		require.Len(t, facts, 2)
		assert.Equal(t, classifier.KindTaskHeader, facts[0].Kind)
		assert.Equal(t, classifier.KindIgnoreHeader, facts[1].Kind)
		assert.Equal(t, "wip", facts[1].Name)
	})
}

func TestClassify_Declarations(t *testing.T) {
	t.Run("assignment", func(t *testing.T) {
		facts := classifier.Classify(`    target = "rrake.exe"`)
		require.Len(t, facts, 1)
		assert.Equal(t, classifier.KindAssign, facts[0].Kind)
		assert.Equal(t, "target", facts[0].Name)
		assert.Equal(t, "rrake.exe", facts[0].Value)
	})

	t.Run("assignment without spaces", func(t *testing.T) {
		facts := classifier.Classify(`tp="target/release/rrake"`)
		require.Len(t, facts, 1)
		assert.Equal(t, "target/release/rrake", facts[0].Value)
	})

	t.Run("struct type", func(t *testing.T) {
		facts := classifier.Classify("Point = Struct.new(:x, :y)")
		require.Len(t, facts, 1)
		assert.Equal(t, classifier.KindStructType, facts[0].Kind)
		assert.Equal(t, "Point", facts[0].Name)
		assert.Equal(t, []string{":x", ":y"}, facts[0].Items)
	})

	t.Run("struct instance", func(t *testing.T) {
		facts := classifier.Classify(`origin = Point.new("0", 1, )`)
		require.Len(t, facts, 1)
		assert.Equal(t, classifier.KindStructInstance, facts[0].Kind)
		assert.Equal(t, "origin", facts[0].Name)
		assert.Equal(t, "Point", facts[0].Value)
		assert.Equal(t, []string{"0", "1"}, facts[0].Items)
	})

	t.Run("comparison is not an assignment", func(t *testing.T) {
		assert.Empty(t, classifier.Classify(`    if name == "x" then`))
	})

	t.Run("hash rocket is not an assignment", func(t *testing.T) {
		facts := classifier.Classify(`x => "y"`)
		assert.Empty(t, facts)
	})
}

func TestClassify_BlocksAndComments(t *testing.T) {
	assert.Equal(t, []classifier.Fact{{Kind: classifier.KindComment}}, classifier.Classify(`#target = "./rrake"`))
	assert.Equal(t, []classifier.Fact{{Kind: classifier.KindComment}}, classifier.Classify(`    # sh "rm -rf /"`))
	assert.Equal(t, []classifier.Fact{{Kind: classifier.KindBlockEnd}}, classifier.Classify("end"))
	assert.Equal(t, []classifier.Fact{{Kind: classifier.KindBlockEnd}}, classifier.Classify("end\r"))
	assert.Empty(t, classifier.Classify("    end"))
	assert.Equal(t, []classifier.Fact{{Kind: classifier.KindPlatformGuard}}, classifier.Classify("if OS.windows? then"))
	assert.Empty(t, classifier.Classify("require 'os'"))
	assert.Empty(t, classifier.Classify("   "))
}

func TestClassify_MultipleShapes(t *testing.T) {
	facts := classifier.Classify(`if OS.windows? then target = "rrake.exe"`)
	require.Len(t, facts, 1)
	assert.Equal(t, classifier.KindPlatformGuard, facts[0].Kind)

	// Statements are anchored at the start of the line.
	facts = classifier.Classify(`task :hello do puts "hi"`)
	require.Len(t, facts, 1)
	assert.Equal(t, classifier.KindTaskHeader, facts[0].Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "dep-header", classifier.KindDepHeader.String())
	assert.Equal(t, "unknown", classifier.Kind(99).String())
}
