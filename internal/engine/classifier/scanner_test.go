package classifier_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rake/internal/core/domain"
	"go.trai.ch/rake/internal/core/ports/mocks"
	"go.trai.ch/rake/internal/engine/classifier"
	"go.uber.org/mock/gomock"
)

func source(lines ...string) *domain.Source {
	return &domain.Source{Path: "Rakefile", Digest: "abc", Text: strings.Join(lines, "\n")}
}

func newScanner(t *testing.T, recognized bool) *classifier.Scanner {
	t.Helper()
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)
	platform.EXPECT().Recognized().Return(recognized).AnyTimes()
	return classifier.NewScanner(platform)
}

func TestScanner_Scan_Tasks(t *testing.T) {
	src := source(
		`require 'os'`,                   // 0
		``,                               // 1
		`task :default do`,               // 2
		`    sh "cargo build --release"`, // 3
		`end`,                            // 4
		`task :upx => [:default] do`,     // 5
		`    File.delete(target)`,        // 6
		`    sh "upx -9 #{tp}"`,          // 7
		`end`,                            // 8
		`task :echo do`,                  // 9
		`    puts "Simple echo task..."`, // 10
		`    puts`,                       // 11
		`end`,                            // 12
	)

	rf := newScanner(t, true).Scan(src)

	assert.Equal(t, "Rakefile", rf.Path)
	assert.Equal(t, "abc", rf.Digest)
	assert.Equal(t, []domain.Task{
		{Name: "default", Command: domain.VerbRunShell, Params: "cargo build --release", SourceLine: 3},
		{Name: "upx", Depends: "default", Command: domain.VerbDeleteFile, Params: "#{target}", SourceLine: 6},
		{Name: "upx", Depends: "default", Command: domain.VerbRunShell, Params: "upx -9 #{tp}", SourceLine: 7},
		{Name: "echo", Command: domain.VerbPrintText, Params: "Simple echo task...", SourceLine: 10},
		{Name: "echo", Command: domain.VerbPrintText, Params: "", SourceLine: 11},
	}, rf.Tasks)
}

func TestScanner_Scan_BareDependencyHeader(t *testing.T) {
	rf := newScanner(t, true).Scan(source(
		`task :build do`,
		`  sh "make"`,
		`end`,
		`task :all => [:build]`,
	))

	require.Len(t, rf.Tasks, 2)
	assert.Equal(t, domain.Task{Name: "all", Depends: "build", Command: domain.VerbNone, SourceLine: 3}, rf.Tasks[1])
	assert.Equal(t, []string{"build", "all"}, rf.TaskNames())
}

func TestScanner_Scan_IgnoredTask(t *testing.T) {
	rf := newScanner(t, true).Scan(source(
		`task :wip do #[ignore]`,
		`  sh "rm -rf build"`,
		`  puts "never"`,
		`end`,
		`task :ok do`,
		`  puts "yes"`,
		`end`,
	))

	require.Len(t, rf.Tasks, 1)
	assert.Equal(t, "ok", rf.Tasks[0].Name)
	assert.Equal(t, "yes", rf.Tasks[0].Params)
}

func TestScanner_Scan_Variables(t *testing.T) {
	rf := newScanner(t, true).Scan(source(
		`#target = "./rrake"`,
		`target = "first"`,
		`target = "second"`,
		`greeting = "hi"`,
	))

	assert.Equal(t, []domain.Variable{
		{Key: "target", Value: "first"},
		{Key: "target", Value: "second"},
		{Key: "greeting", Value: "hi"},
	}, rf.Variables)
}

func TestScanner_Scan_PlatformGuard(t *testing.T) {
	lines := []string{
		`if OS.windows? then`,
		`    target = "rrake.exe"`,
		`end`,
	}

	t.Run("recognized platform never opens the block", func(t *testing.T) {
		rf := newScanner(t, true).Scan(source(lines...))
		assert.Equal(t, []domain.BlockTransition{{Line: 0, InBlock: false}}, rf.Blocks)
		assert.Equal(t, []domain.Variable{{Key: "target", Value: "rrake.exe"}}, rf.Variables)
	})

	t.Run("unrecognized platform opens and closes the block", func(t *testing.T) {
		rf := newScanner(t, false).Scan(source(lines...))
		assert.Equal(t, []domain.BlockTransition{
			{Line: 0, InBlock: true},
			{Line: 2, InBlock: false},
		}, rf.Blocks)
	})
}

func TestScanner_Scan_Structs(t *testing.T) {
	t.Run("instance registers a struct-backed variable", func(t *testing.T) {
		rf := newScanner(t, true).Scan(source(
			`Point = Struct.new(:a, :b)`,
			`p = Point.new(1, 2)`,
			`task :show do`,
			`  puts p.to_h.to_json`,
			`end`,
		))

		require.Len(t, rf.Structs, 2)
		assert.False(t, rf.Structs[0].IsInstance())
		assert.Equal(t, domain.StructDef{
			TypeName:      "Point",
			Fields:        []string{":a", ":b"},
			BoundVariable: "p",
			Values:        []string{"1", "2"},
		}, rf.Structs[1])
		assert.Equal(t, []domain.Variable{{Key: "p", Value: domain.StructBacked}}, rf.Variables)
		require.Len(t, rf.Tasks, 1)
		assert.Equal(t, "#{p}", rf.Tasks[0].Params)
	})

	t.Run("unknown type is skipped", func(t *testing.T) {
		rf := newScanner(t, true).Scan(source(`p = Missing.new(1, 2)`))
		assert.Empty(t, rf.Structs)
		assert.Empty(t, rf.Variables)
	})

	t.Run("known variable is not re-registered outside a block", func(t *testing.T) {
		rf := newScanner(t, true).Scan(source(
			`p = "plain"`,
			`Point = Struct.new(:a)`,
			`p = Point.new(1)`,
		))
		assert.Equal(t, []domain.Variable{{Key: "p", Value: "plain"}}, rf.Variables)
		assert.Len(t, rf.Structs, 2)
	})

	t.Run("known variable is re-registered inside a block", func(t *testing.T) {
		rf := newScanner(t, false).Scan(source(
			`p = "plain"`,
			`Point = Struct.new(:a)`,
			`if OS.haiku? then`,
			`p = Point.new(1)`,
			`end`,
		))
		assert.Equal(t, []domain.Variable{
			{Key: "p", Value: "plain"},
			{Key: "p", Value: domain.StructBacked},
		}, rf.Variables)
	})
}
